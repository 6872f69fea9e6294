package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// canPieceMove checks the movement pattern of a non-pawn piece.
// Sliding pieces are judged purely by geometry: pieces standing between
// from and to do not block the move.
func canPieceMove(kind chess.Kind, from, to chess.Square) bool {
	rowDiff := abs(to.Row - from.Row)
	colDiff := abs(to.Col - from.Col)

	switch kind {
	case chess.Knight:
		return (rowDiff == 1 && colDiff == 2) || (rowDiff == 2 && colDiff == 1)

	case chess.Bishop:
		return isDiagonal(rowDiff, colDiff)

	case chess.Rook:
		return isStraight(rowDiff, colDiff)

	case chess.Queen:
		return isDiagonal(rowDiff, colDiff) || isStraight(rowDiff, colDiff)

	case chess.King:
		return rowDiff <= 1 && colDiff <= 1 && rowDiff+colDiff > 0
	}

	return false
}

func isDiagonal(rowDiff, colDiff int) bool {
	return rowDiff == colDiff && rowDiff != 0
}

// isStraight is true when exactly one of the deltas is zero.
func isStraight(rowDiff, colDiff int) bool {
	return (rowDiff == 0) != (colDiff == 0)
}
