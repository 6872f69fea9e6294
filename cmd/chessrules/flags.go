// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Position options
	startFEN = flag.String("fen", "", "Start from this FEN placement and side to move (default: standard position)")

	// Output options
	outputFormat     = flag.String("format", "text", "Board output format: text, json or svg")
	jsonOutput       = flag.Bool("json", false, "Print JSON snapshots instead of board diagrams (same as -format json)")
	asciiBoard       = flag.Bool("ascii", false, "Draw pieces as FEN letters instead of chess glyphs")
	showCoords       = flag.Bool("coords", true, "Label files and ranks around the board")
	svgFile          = flag.String("svg", "", "Rewrite this SVG file with the board after every accepted move")
	squareSize       = flag.Int("square", config.DefaultSquareSize, "SVG square size in pixels")
	noCheckHighlight = flag.Bool("nocheckhighlight", false, "Don't tint the square of a king in check")

	// Batch analysis
	analyseFile  = flag.String("analyse", "", "Evaluate each line of this file (FEN [| moves]) and exit")
	workers      = flag.Int("workers", 0, "Number of worker goroutines for -analyse (0 = auto-detect based on CPU cores)")
	maxPositions = flag.Int("maxpositions", 0, "Maximum positions remembered for duplicate detection (0 = unlimited)")

	// Logging
	verbosity = flag.Int("v", 1, "Log verbosity: 0 nothing, 1 results, 2 every move")
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")

	// Other options
	quiet   = flag.Bool("q", false, "Quiet mode (same as -v 0)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	applyGameFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	return nil
}

// applyOutputFlags configures board rendering.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	if *jsonOutput {
		format = config.JSON
	}
	cfg.Output.Format = format
	cfg.Output.Unicode = !*asciiBoard
	cfg.Output.ShowCoordinates = *showCoords
	cfg.Output.SVGFile = *svgFile
	cfg.Output.SquareSize = *squareSize
	return nil
}

// applyGameFlags configures the starting position and highlighting.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.StartFEN = *startFEN
	cfg.Game.HighlightChecks = !*noCheckHighlight
}
