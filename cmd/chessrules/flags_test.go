package main

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(jsonOutput, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyFlags_Defaults(t *testing.T) {
	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() = %v", err)
	}

	if cfg.Output.Format != config.Text {
		t.Errorf("Format = %v; want text", cfg.Output.Format)
	}
	if !cfg.Output.Unicode {
		t.Error("Unicode = false; want true")
	}
	if !cfg.Output.ShowCoordinates {
		t.Error("ShowCoordinates = false; want true")
	}
	if cfg.Output.SquareSize != config.DefaultSquareSize {
		t.Errorf("SquareSize = %d; want %d", cfg.Output.SquareSize, config.DefaultSquareSize)
	}
	if !cfg.Game.HighlightChecks {
		t.Error("HighlightChecks = false; want true")
	}
	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d; want 1", cfg.Verbosity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v; want nil", err)
	}
}

func TestApplyOutputFlags(t *testing.T) {
	defer saveRestoreBool(jsonOutput, true)()
	defer saveRestoreBool(asciiBoard, true)()
	defer saveRestoreBool(showCoords, false)()
	defer saveRestoreString(svgFile, "board.svg")()
	defer saveRestoreInt(squareSize, 32)()

	cfg := config.NewConfig()
	if err := applyOutputFlags(cfg); err != nil {
		t.Fatalf("applyOutputFlags() = %v", err)
	}

	if cfg.Output.Format != config.JSON {
		t.Errorf("Format = %v; want json", cfg.Output.Format)
	}
	if cfg.Output.Unicode {
		t.Error("Unicode = true; want false with -ascii")
	}
	if cfg.Output.ShowCoordinates {
		t.Error("ShowCoordinates = true; want false")
	}
	if cfg.Output.SVGFile != "board.svg" {
		t.Errorf("SVGFile = %q; want board.svg", cfg.Output.SVGFile)
	}
	if cfg.Output.SquareSize != 32 {
		t.Errorf("SquareSize = %d; want 32", cfg.Output.SquareSize)
	}
}

func TestApplyOutputFlags_Format(t *testing.T) {
	tests := []struct {
		name   string
		format string
		json   bool
		want   config.OutputFormat
	}{
		{"text", "text", false, config.Text},
		{"svg", "svg", false, config.SVG},
		{"json", "json", false, config.JSON},
		{"-json overrides -format", "svg", true, config.JSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreString(outputFormat, tt.format)()
			defer saveRestoreBool(jsonOutput, tt.json)()

			cfg := config.NewConfig()
			if err := applyOutputFlags(cfg); err != nil {
				t.Fatalf("applyOutputFlags() = %v", err)
			}
			if cfg.Output.Format != tt.want {
				t.Errorf("Format = %v; want %v", cfg.Output.Format, tt.want)
			}
		})
	}
}

func TestApplyFlags_UnknownFormat(t *testing.T) {
	defer saveRestoreString(outputFormat, "pgn")()

	testutil.AssertErrorIs(t, applyFlags(config.NewConfig()), errors.ErrInvalidConfig)
}

func TestApplyGameFlags(t *testing.T) {
	defer saveRestoreString(startFEN, "4k3/8/8/8/8/8/8/4K3 b")()
	defer saveRestoreBool(noCheckHighlight, true)()

	cfg := config.NewConfig()
	applyGameFlags(cfg)

	if cfg.Game.StartFEN != "4k3/8/8/8/8/8/8/4K3 b" {
		t.Errorf("StartFEN = %q", cfg.Game.StartFEN)
	}
	if cfg.Game.HighlightChecks {
		t.Error("HighlightChecks = true; want false with -nocheckhighlight")
	}
}

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name  string
		v     int
		quiet bool
		want  int
	}{
		{"default", 1, false, 1},
		{"chatty", 2, false, 2},
		{"quiet overrides -v", 2, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreInt(verbosity, tt.v)()
			defer saveRestoreBool(quiet, tt.quiet)()

			cfg := config.NewConfig()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags() = %v", err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_InvalidSquareSizeFailsValidation(t *testing.T) {
	defer saveRestoreInt(squareSize, 4)()

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		t.Fatalf("applyFlags() = %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil; want error for 4px squares")
	}
}
