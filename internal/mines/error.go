package mines

import "fmt"

// ConfigError is the engine's only validated failure: the requested
// mine count does not leave a single safe tile on the board.
type ConfigError struct {
	Size               int
	RequestedMineCount int
	MaxAllowed         int
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	return fmt.Sprintf(
		"invalid mine count: a board of size %d holds %d tiles but %d mines were requested; at most %d fit, as one tile must stay safe for the game to be winnable",
		e.Size, e.MaxAllowed+1, e.RequestedMineCount, e.MaxAllowed,
	)
}
