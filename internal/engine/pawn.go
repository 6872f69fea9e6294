package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// canPawnMove checks a pawn step, double step or diagonal capture.
// There is no en passant and no promotion.
func canPawnMove(board *chess.Board, colour chess.Colour, from, to chess.Square) bool {
	dir := colour.Forward()
	rowDiff := to.Row - from.Row
	colDiff := abs(to.Col - from.Col)
	target := board.Get(to)

	switch {
	case colDiff == 0 && rowDiff == dir:
		return target.IsEmpty()

	case colDiff == 0 && rowDiff == 2*dir:
		if from.Row != colour.PawnRow() {
			return false
		}
		middle := chess.Sq(from.Row+dir, from.Col)
		return target.IsEmpty() && board.Get(middle).IsEmpty()

	case colDiff == 1 && rowDiff == dir:
		// Same-colour targets were already rejected by the caller.
		return !target.IsEmpty()
	}

	return false
}
