package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vancomm/hexsweeper/internal/mines"
)

func TestFontSizeFor(t *testing.T) {
	tests := []struct {
		apothem float64
		want    int
	}{
		{10, 11},
		{14.9, 16},
		{15, 10},
		{35.5, 24},
		{50, 35},
		{50.1, 30},
		{120, 30},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, fontSizeFor(test.apothem),
			"apothem %g", test.apothem)
	}
}

func TestFillColorFor(t *testing.T) {
	assert.Equal(t, colorHidden, fillColorFor(mines.StateHidden))
	assert.Equal(t, colorFlagged, fillColorFor(mines.StateFlagged))
	assert.Equal(t, colorSafe, fillColorFor(mines.StateSafe))
	assert.Equal(t, colorAdjacent, fillColorFor(mines.StateAdjacent))
	assert.Equal(t, colorMine, fillColorFor(mines.StateMine))
}

func TestSliderClampsValue(t *testing.T) {
	s := newSlider("size", 2, 15, 99)
	assert.Equal(t, 15, s.value)

	s.setValue(0)
	assert.Equal(t, 2, s.value)

	s.setValue(9)
	assert.Equal(t, 9, s.value)
}

func TestSliderKnobPosition(t *testing.T) {
	s := newSlider("size", 2, 15, 2)
	s.x, s.width = 40, 130

	assert.Equal(t, 40.0, s.knobX())

	s.setValue(15)
	assert.Equal(t, 170.0, s.knobX())

	s.setValue(9)
	assert.InDelta(t, 40.0+130.0*7.0/13.0, s.knobX(), 1e-9)
}

func TestRescaleMines(t *testing.T) {
	// easy fraction carried to a bigger board
	assert.Equal(t, 36, rescaleMines(8, 60, 270))
	// saturated boards stay saturated
	assert.Equal(t, 6, rescaleMines(60, 60, 6))
	// never below one mine
	assert.Equal(t, 1, rescaleMines(1, 60, 6))
	assert.Equal(t, 1, rescaleMines(0, 0, 6))
}
