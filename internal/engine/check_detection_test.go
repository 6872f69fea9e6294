package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position white", InitialFEN, chess.White, false},
		{"initial position black", InitialFEN, chess.Black, false},
		{"queen on the file", "4q3/8/8/8/8/8/8/4K3 w", chess.White, true},
		{"queen and rook on the file", "k3q3/8/8/4r3/8/8/8/4K3 w", chess.White, true},
		{"queen behind own and enemy pieces", "k3q3/4p3/8/8/8/8/4P3/4K3 w", chess.White, true},
		{"rook on the rank", "k7/8/8/8/8/8/8/r3K3 w", chess.White, true},
		{"bishop on the diagonal", "k7/8/8/b7/8/8/8/4K3 w", chess.White, true},
		{"knight", "k7/8/8/8/8/3n4/8/4K3 w", chess.White, true},
		{"black pawn attacks diagonally", "k7/8/8/8/8/8/3p4/4K3 w", chess.White, true},
		{"black pawn in front does not attack", "k7/8/8/8/8/8/4p3/4K3 w", chess.White, false},
		{"white pawn attacks black king", "8/8/8/8/8/3k4/4P3/4K3 b", chess.Black, true},
		{"white pawn behind black king does not attack", "8/8/8/8/8/4P3/3k4/5K2 b", chess.Black, false},
		{"adjacent king", "8/8/8/8/8/8/3k4/4K3 w", chess.White, true},
		{"own pieces never check", "k7/8/8/8/8/8/8/Q3K3 w", chess.White, false},
		{"knight not on a knight square", "k7/8/8/8/8/8/3n4/4K3 w", chess.White, false},
		{"no king", "k7/8/8/8/8/8/8/r7 w", chess.White, false},
		{"empty board", "8/8/8/8/8/8/8/8 w", chess.Black, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			if got := IsInCheck(board, tt.colour); got != tt.want {
				t.Errorf("IsInCheck(%v) = %v, want %v", tt.colour, got, tt.want)
			}
		})
	}
}

func TestAttackers(t *testing.T) {
	board := mustBoard(t, "k3q3/8/8/4r3/8/3n4/8/4K3 w")

	got := Attackers(board, chess.White)
	want := []chess.Square{sq("e8"), sq("e5"), sq("d3")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Attackers(White) mismatch (-want +got):\n%s", diff)
	}

	if got := Attackers(board, chess.Black); len(got) != 0 {
		t.Errorf("Attackers(Black) = %v, want none", got)
	}

	noKing := mustBoard(t, "k7/8/8/8/8/8/8/r7 w")
	if got := Attackers(noKing, chess.White); got != nil {
		t.Errorf("Attackers without a king = %v, want nil", got)
	}
}
