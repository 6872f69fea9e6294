package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// AllLegalMoves returns every move of the given colour that obeys the
// movement rules and does not leave that colour's king in check.
// Moves are ordered row-major by source square, then by destination.
//
// Each candidate is played on the board and taken back again, so the
// board must not be observed by anything else for the duration of the
// call. On return it is exactly as it was.
func AllLegalMoves(board *chess.Board, colour chess.Colour) []chess.MovePair {
	var moves []chess.MovePair
	forEachPiece(board, colour, func(from chess.Square) bool {
		for _, to := range legalDestinations(board, from, colour) {
			moves = append(moves, chess.MovePair{From: from, To: to})
		}
		return true
	})
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	found := false
	forEachPiece(board, colour, func(from chess.Square) bool {
		for row := 0; row < chess.BoardSize && !found; row++ {
			for col := 0; col < chess.BoardSize && !found; col++ {
				found = IsKingSafeMove(board, from, chess.Sq(row, col))
			}
		}
		return !found
	})
	return found
}

// LegalMovesFrom returns the legal destinations of the piece on from.
// An empty square yields no destinations.
func LegalMovesFrom(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	return legalDestinations(board, from, piece.Colour)
}

// IsKingSafeMove reports whether from-to obeys the movement rules and
// leaves the mover's own king out of check.
func IsKingSafeMove(board *chess.Board, from, to chess.Square) bool {
	if !IsLegalMove(board, from, to) {
		return false
	}
	return tryMove(board, from, to, board.Get(from).Colour)
}

func legalDestinations(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var squares []chess.Square
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			to := chess.Sq(row, col)
			if IsLegalMove(board, from, to) && tryMove(board, from, to, colour) {
				squares = append(squares, to)
			}
		}
	}
	return squares
}

// tryMove plays from-to on the board, checks whether the mover's king is
// safe, and restores both squares exactly, including any captured piece.
func tryMove(board *chess.Board, from, to chess.Square, colour chess.Colour) bool {
	captured := board.MovePiece(from, to)
	safe := !IsInCheck(board, colour)
	board.UndoMove(from, to, captured)
	return safe
}
