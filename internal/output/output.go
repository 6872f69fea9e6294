// Package output renders positions as text diagrams, JSON snapshots and
// SVG images.
package output

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Options controls how a board is drawn.
type Options struct {
	Unicode         bool
	ShowCoordinates bool
	SquareSize      int
	HighlightChecks bool

	// Selection is the pending first-click square, if any.
	Selection *chess.Square

	// Targets are squares to mark as legal destinations of the selection.
	Targets []chess.Square
}

// OptionsFromConfig builds rendering options from the output and game
// configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := Options{
		Unicode:         true,
		ShowCoordinates: true,
		SquareSize:      config.DefaultSquareSize,
		HighlightChecks: true,
	}
	if cfg == nil {
		return opts
	}
	if cfg.Output != nil {
		opts.Unicode = cfg.Output.Unicode
		opts.ShowCoordinates = cfg.Output.ShowCoordinates
		opts.SquareSize = cfg.Output.SquareSize
	}
	if cfg.Game != nil {
		opts.HighlightChecks = cfg.Game.HighlightChecks
	}
	return opts
}

// withSelection returns opts carrying g's pending selection and the legal
// destinations of the selected piece.
func withSelection(opts Options, g *game.Game) Options {
	sel, ok := g.Selection()
	if !ok {
		return opts
	}
	opts.Selection = &sel
	opts.Targets = g.LegalDestinations(sel)
	return opts
}

func (o Options) isSelected(sq chess.Square) bool {
	return o.Selection != nil && *o.Selection == sq
}

func (o Options) isTarget(sq chess.Square) bool {
	return slices.Contains(o.Targets, sq)
}
