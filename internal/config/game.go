package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// GameConfig holds settings for starting and running a game.
type GameConfig struct {
	// StartFEN is a FEN placement (optionally followed by the side to move)
	// to start from instead of the standard position.
	StartFEN string

	// HighlightChecks marks a checked king in rendered output
	HighlightChecks bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		HighlightChecks: true,
	}
}

// Validate performs the cheap structural check on StartFEN; full parsing
// happens when the board is built.
func (g *GameConfig) Validate() error {
	fields := strings.Fields(g.StartFEN)
	if len(fields) == 0 {
		return nil
	}
	if n := strings.Count(fields[0], "/"); n != 7 {
		return fmt.Errorf("start position has %d rank separators, want 7: %w",
			n, errors.ErrInvalidConfig)
	}
	return nil
}
