package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// OutputFormat selects how the board is rendered.
type OutputFormat int

const (
	Text OutputFormat = iota // Plain text diagram
	JSON                     // JSON snapshot
	SVG                      // SVG image
)

// String returns the flag spelling of the format.
func (f OutputFormat) String() string {
	switch f {
	case JSON:
		return "json"
	case SVG:
		return "svg"
	default:
		return "text"
	}
}

// ParseOutputFormat converts a flag value to an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "svg":
		return SVG, nil
	}
	return Text, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to board rendering.
type OutputConfig struct {
	// Format specifies the rendering (text, JSON or SVG)
	Format OutputFormat

	// Unicode uses chess glyphs in text diagrams instead of FEN letters
	Unicode bool

	// ShowCoordinates prints file letters and rank numbers around the diagram
	ShowCoordinates bool

	// SquareSize is the edge length of one square in SVG output, in pixels
	SquareSize int

	// SVGFile, when set, receives an SVG snapshot after every accepted move
	SVGFile string
}

// Square sizes accepted for SVG output.
const (
	MinSquareSize     = 16
	MaxSquareSize     = 256
	DefaultSquareSize = 60
)

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          Text,
		Unicode:         true,
		ShowCoordinates: true,
		SquareSize:      DefaultSquareSize,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.SquareSize < MinSquareSize || o.SquareSize > MaxSquareSize {
		return fmt.Errorf("square size %d outside [%d,%d]: %w",
			o.SquareSize, MinSquareSize, MaxSquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
