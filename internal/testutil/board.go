package testutil

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MustBoard builds a board from a FEN placement and side to move.
// It calls t.Fatal if the FEN does not parse.
func MustBoard(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

// Sq parses an algebraic square name, failing the test on error.
func Sq(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}

// AssertPieceAt fails unless the board holds want on the named square.
func AssertPieceAt(t testing.TB, board *chess.Board, square string, want chess.Piece) {
	t.Helper()
	if got := board.Get(Sq(t, square)); got != want {
		t.Errorf("piece on %s = %v, want %v", square, got, want)
	}
}

// AssertSquares fails unless got names exactly the squares in want,
// given as space-separated algebraic names. Order is ignored.
func AssertSquares(t testing.TB, got []chess.Square, want string) {
	t.Helper()
	names := make([]string, len(got))
	for i, sq := range got {
		names[i] = sq.String()
	}
	sortNames := cmpopts.SortSlices(func(a, b string) bool { return a < b })
	if diff := cmp.Diff(strings.Fields(want), names, sortNames, cmpopts.EquateEmpty()); diff != "" {
		fail(t, fmt.Sprintf("squares mismatch (-want +got):\n%s", diff))
	}
}

// QuietConfig returns a config whose output and log go to buffers, with
// the log buffer returned for inspection.
func QuietConfig(verbosity int) (*config.Config, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutput(&out).
		WithLog(&log).
		WithVerbosity(verbosity).
		Build()
	return cfg, &log
}
