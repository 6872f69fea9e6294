package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func movePairs(names ...string) []chess.MovePair {
	var moves []chess.MovePair
	for i := 0; i+1 < len(names); i += 2 {
		moves = append(moves, chess.MovePair{From: sq(names[i]), To: sq(names[i+1])})
	}
	return moves
}

func TestAllLegalMoves_KingInCheck(t *testing.T) {
	// Only king moves off the e-file escape the rook.
	board := mustBoard(t, "k3r3/8/8/8/8/8/8/4K3 w")

	got := AllLegalMoves(board, chess.White)
	want := movePairs("e1", "d2", "e1", "f2", "e1", "d1", "e1", "f1")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AllLegalMoves(White) mismatch (-want +got):\n%s", diff)
	}
}

func TestAllLegalMoves_InterposingDoesNotHelp(t *testing.T) {
	// Sliding pieces are not obstructed, so putting the rook on the e-file
	// does not answer the check; capturing the checker does.
	board := mustBoard(t, "R3r2k/8/8/8/8/8/8/4K3 w")

	got := AllLegalMoves(board, chess.White)
	want := movePairs("a8", "e8", "e1", "d2", "e1", "f2", "e1", "d1", "e1", "f1")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AllLegalMoves(White) mismatch (-want +got):\n%s", diff)
	}
}

func TestAllLegalMoves_Idempotent(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w",
		"R3r2k/8/8/8/8/8/8/4K3 w",
		"7k/6Q1/5K2/8/8/8/8/8 b",
	}

	for _, fen := range fens {
		fen := fen
		t.Run(fen, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, fen)
			before := *board

			for _, colour := range []chess.Colour{chess.White, chess.Black} {
				first := AllLegalMoves(board, colour)
				second := AllLegalMoves(board, colour)
				if diff := cmp.Diff(first, second); diff != "" {
					t.Errorf("AllLegalMoves(%v) not stable (-first +second):\n%s", colour, diff)
				}
				if *board != before {
					t.Fatalf("AllLegalMoves(%v) left the board modified", colour)
				}
			}
		})
	}
}

func TestAllLegalMoves_RestoresCapturedPieces(t *testing.T) {
	// Every white piece has captures available; each must be undone exactly.
	board := mustBoard(t, "k7/8/2p1p3/3Q4/2p1p3/8/8/7K w")
	before := *board

	moves := AllLegalMoves(board, chess.White)
	if len(moves) == 0 {
		t.Fatal("AllLegalMoves(White) returned no moves")
	}
	if *board != before {
		t.Error("board changed after simulating captures")
	}
	if got := board.Count(chess.Black); got != 5 {
		t.Errorf("Count(Black) = %d, want 5", got)
	}
}

func TestAllLegalMoves_OnlyOwnPieces(t *testing.T) {
	board := chess.NewInitialBoard()

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, m := range AllLegalMoves(board, colour) {
			if p := board.Get(m.From); p.Colour != colour {
				t.Errorf("AllLegalMoves(%v) produced %v moving a %v", colour, m, p)
			}
			if !IsLegalMove(board, m.From, m.To) {
				t.Errorf("AllLegalMoves(%v) produced %v which IsLegalMove rejects", colour, m)
			}
		}
	}
}

func TestAllLegalMoves_OpeningContainsPawnPushes(t *testing.T) {
	board := chess.NewInitialBoard()
	moves := AllLegalMoves(board, chess.White)

	seen := make(map[chess.MovePair]bool, len(moves))
	for _, m := range moves {
		seen[m] = true
	}
	for _, want := range movePairs("e2", "e4", "e2", "e3", "g1", "f3", "b1", "c3", "a1", "a7") {
		if !seen[want] {
			t.Errorf("AllLegalMoves(White) missing %v", want)
		}
	}
	if seen[chess.MovePair{From: sq("e1"), To: sq("e2")}] {
		t.Error("AllLegalMoves(White) contains e1-e2 onto own pawn")
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial position", InitialFEN, chess.White, true},
		{"stalemated king", "k7/2Q5/8/8/8/8/8/7K b", chess.Black, false},
		{"mated king", "7k/6Q1/5K2/8/8/8/8/8 b", chess.Black, false},
		{"no pieces", "8/8/8/8/8/8/8/7K b", chess.Black, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			got := HasLegalMoves(board, tt.colour)
			if got != tt.want {
				t.Errorf("HasLegalMoves(%v) = %v, want %v", tt.colour, got, tt.want)
			}
			if got != (len(AllLegalMoves(board, tt.colour)) > 0) {
				t.Error("HasLegalMoves disagrees with AllLegalMoves")
			}
		})
	}
}

func TestLegalMovesFrom(t *testing.T) {
	board := mustBoard(t, "k3r3/8/8/8/8/8/8/R3K3 w")

	got := LegalMovesFrom(board, sq("e1"))
	want := []chess.Square{sq("d2"), sq("f2"), sq("d1"), sq("f1")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LegalMovesFrom(e1) mismatch (-want +got):\n%s", diff)
	}

	// The rook cannot help: the only checker it could take is out of line.
	if got := LegalMovesFrom(board, sq("a1")); len(got) != 0 {
		t.Errorf("LegalMovesFrom(a1) = %v, want none", got)
	}
	if got := LegalMovesFrom(board, sq("c4")); got != nil {
		t.Errorf("LegalMovesFrom(empty) = %v, want nil", got)
	}
}

func TestIsKingSafeMove(t *testing.T) {
	board := mustBoard(t, "k3r3/8/8/8/8/8/8/4K3 w")

	if IsKingSafeMove(board, sq("e1"), sq("e2")) {
		t.Error("IsKingSafeMove(e1, e2) = true, want false: e2 is on the rook's file")
	}
	if !IsKingSafeMove(board, sq("e1"), sq("d1")) {
		t.Error("IsKingSafeMove(e1, d1) = false, want true")
	}
	if IsKingSafeMove(board, sq("e1"), sq("e3")) {
		t.Error("IsKingSafeMove(e1, e3) = true, want false: not a king move")
	}
}
