package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

var terminalFENs = []struct {
	name   string
	fen    string
	colour chess.Colour
	want   Status
}{
	{"initial position", InitialFEN, chess.White, Ongoing},
	{"queen check with escapes", "4q3/8/8/8/8/8/8/4K3 w", chess.White, Check},
	{"queen and king mate", "7k/6Q1/5K2/8/8/8/8/8 b", chess.Black, Checkmate},
	{"two rooks mate", "k7/8/8/8/8/8/1R6/R6K b", chess.Black, Checkmate},
	{"queen stalemate", "k7/2Q5/8/8/8/8/8/7K b", chess.Black, Stalemate},
	{"bare king with no moves is stalemate, not checkmate", "7k/5Q2/6K1/8/8/8/8/8 b", chess.Black, Stalemate},
	{"checker can be captured", "7k/6Q1/8/8/8/8/8/K7 b", chess.Black, Check},
	{"no king at all", "8/8/8/8/8/8/8/R6K b", chess.Black, Stalemate},
}

func TestEvaluate(t *testing.T) {
	for _, tt := range terminalFENs {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			if got := Evaluate(board, tt.colour); got != tt.want {
				t.Errorf("Evaluate(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestIsCheckmateAndIsStalemate(t *testing.T) {
	for _, tt := range terminalFENs {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)

			mate := IsCheckmate(board, tt.colour)
			stale := IsStalemate(board, tt.colour)

			if mate && stale {
				t.Fatal("IsCheckmate and IsStalemate are both true")
			}
			if mate != (tt.want == Checkmate) {
				t.Errorf("IsCheckmate(%v) = %v, want %v", tt.colour, mate, tt.want == Checkmate)
			}
			if stale != (tt.want == Stalemate) {
				t.Errorf("IsStalemate(%v) = %v, want %v", tt.colour, stale, tt.want == Stalemate)
			}
		})
	}
}

// TestTerminalPredicates_MutuallyExclusive checks both colours of a spread
// of positions, including ones that could not arise in play.
func TestTerminalPredicates_MutuallyExclusive(t *testing.T) {
	fens := []string{
		InitialFEN,
		"k3q3/8/8/4r3/8/3n4/8/4K3 w",
		"8/8/8/8/8/8/3k4/4K3 w",
		"KQ6/QQ6/8/8/8/8/8/7k b",
		"8/8/8/8/8/8/8/8 w",
	}
	for _, fen := range fens {
		board := mustBoard(t, fen)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			if IsCheckmate(board, colour) && IsStalemate(board, colour) {
				t.Errorf("%s: %v is both checkmated and stalemated", fen, colour)
			}
		}
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status   Status
		want     string
		terminal bool
	}{
		{Ongoing, "ongoing", false},
		{Check, "check", false},
		{Checkmate, "checkmate", true},
		{Stalemate, "stalemate", true},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
		if got := tt.status.IsTerminal(); got != tt.terminal {
			t.Errorf("%v.IsTerminal() = %v, want %v", tt.status, got, tt.terminal)
		}
	}
}
