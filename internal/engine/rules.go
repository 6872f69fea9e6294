// Package engine provides move validation, check detection and
// checkmate/stalemate evaluation over a chess.Board.
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// IsLegalMove reports whether the piece on from may move to to under the
// movement rules, without regard to the safety of its own king.
// It never mutates the board. Squares off the board, an empty from square,
// a same-colour target and any king target are rejected.
func IsLegalMove(board *chess.Board, from, to chess.Square) bool {
	if !reaches(board, from, to) {
		return false
	}
	// Kings are never captured; the game ends by checkmate instead.
	return board.Get(to).Kind != chess.King
}

// AttacksSquare reports whether the piece on from could land on target.
// It applies the same rules as IsLegalMove except the king-capture ban,
// so it answers "is the king standing on target attacked by from".
func AttacksSquare(board *chess.Board, from, target chess.Square) bool {
	return reaches(board, from, target)
}

// reaches holds the movement rules shared by IsLegalMove and AttacksSquare.
func reaches(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}

	piece := board.Get(from)
	if piece.IsEmpty() {
		return false
	}

	target := board.Get(to)
	if !target.IsEmpty() && target.Colour == piece.Colour {
		return false
	}

	if piece.Kind == chess.Pawn {
		return canPawnMove(board, piece.Colour, from, to)
	}
	return canPieceMove(piece.Kind, from, to)
}
