package gui

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	sliderTrackHeight = 6
	sliderKnobRadius  = 10
)

// slider is a horizontal track with a knob snapping to integer values.
// Geometry is assigned by the owning scene before input handling, so
// the widget follows window resizes for free.
type slider struct {
	label    string
	min, max int
	value    int

	x, y, width float64
	dragging    bool
}

func newSlider(label string, min, max, value int) *slider {
	s := &slider{label: label, min: min, max: max}
	s.setValue(value)
	return s
}

func (s *slider) setValue(v int) {
	s.value = min(max(v, s.min), s.max)
}

func (s *slider) knobX() float64 {
	if s.max == s.min {
		return s.x
	}
	frac := float64(s.value-s.min) / float64(s.max-s.min)
	return s.x + frac*s.width
}

// handleMouse processes presses and drags, reporting whether the value
// changed this frame.
func (s *slider) handleMouse() bool {
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		fx >= s.x-sliderKnobRadius && fx <= s.x+s.width+sliderKnobRadius &&
		math.Abs(fy-s.y) <= 2*sliderKnobRadius {
		s.dragging = true
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.dragging = false
	}
	if !s.dragging {
		return false
	}

	frac := (fx - s.x) / s.width
	old := s.value
	s.setValue(s.min + int(math.Round(frac*float64(s.max-s.min))))
	return s.value != old
}

func (s *slider) draw(screen *ebiten.Image) {
	face := fontFace(16)
	text.Draw(screen, fmt.Sprintf("%s: %d", s.label, s.value),
		face, int(s.x), int(s.y)-2*sliderKnobRadius, colorLabel)

	vector.DrawFilledRect(screen,
		float32(s.x), float32(s.y-sliderTrackHeight/2),
		float32(s.width), sliderTrackHeight, colorTrack, true)
	vector.DrawFilledCircle(screen,
		float32(s.knobX()), float32(s.y), sliderKnobRadius, colorKnob, true)
}

// button is a labelled click target.
type button struct {
	label               string
	x, y, width, height float64
}

func (b *button) clicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	fx, fy := float64(mx), float64(my)
	return fx >= b.x && fx <= b.x+b.width && fy >= b.y && fy <= b.y+b.height
}

func (b *button) draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen,
		float32(b.x), float32(b.y), float32(b.width), float32(b.height),
		colorModalBox, true)
	vector.StrokeRect(screen,
		float32(b.x), float32(b.y), float32(b.width), float32(b.height),
		outlineWidth, colorOutline, true)

	face := fontFace(18)
	bounds := text.BoundString(face, b.label)
	tx := b.x + (b.width-float64(bounds.Dx()))/2
	ty := b.y + (b.height+float64(bounds.Dy()))/2
	text.Draw(screen, b.label, face, int(tx), int(ty), colorLabel)
}
