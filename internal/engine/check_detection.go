package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked by any
// opposing piece. A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return false
	}

	attacked := false
	forEachPiece(board, colour.Opposite(), func(from chess.Square) bool {
		attacked = AttacksSquare(board, from, kingSq)
		return !attacked
	})
	return attacked
}

// Attackers returns the squares of the opposing pieces giving check to the
// given colour's king, in row-major order.
func Attackers(board *chess.Board, colour chess.Colour) []chess.Square {
	kingSq, ok := board.FindKing(colour)
	if !ok {
		return nil
	}

	var squares []chess.Square
	forEachPiece(board, colour.Opposite(), func(from chess.Square) bool {
		if AttacksSquare(board, from, kingSq) {
			squares = append(squares, from)
		}
		return true
	})
	return squares
}

// forEachPiece calls fn for every square holding a piece of the given
// colour, in row-major order, until fn returns false.
func forEachPiece(board *chess.Board, colour chess.Colour, fn func(chess.Square) bool) {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if !fn(chess.Sq(row, col)) {
				return
			}
		}
	}
}
