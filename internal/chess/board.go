package chess

// Board represents the 8x8 grid and whose turn it is.
type Board struct {
	// Squares indexed [row][col]; row 0 is Black's back rank.
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{ToMove: White}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}

	b.ToMove = White
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// Get returns the piece on sq. Squares off the board read as empty.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece on sq. Squares off the board are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// MovePiece relocates whatever stands on from to to and vacates from.
// It performs no legality checking. The previous occupant of to is
// returned so that the caller can undo the move exactly.
func (b *Board) MovePiece(from, to Square) Piece {
	moved := b.Get(from)
	captured := b.Get(to)
	b.Set(to, moved)
	b.Set(from, NoPiece)
	return captured
}

// UndoMove reverses a MovePiece(from, to) that returned captured.
func (b *Board) UndoMove(from, to Square, captured Piece) {
	b.Set(from, b.Get(to))
	b.Set(to, captured)
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Count returns the number of pieces of the given colour.
func (b *Board) Count(colour Colour) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.Squares[row][col]; !p.IsEmpty() && p.Colour == colour {
				n++
			}
		}
	}
	return n
}

// CountPiece returns the number of squares holding exactly piece.
func (b *Board) CountPiece(piece Piece) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				n++
			}
		}
	}
	return n
}

// FindKing scans the board for the king of the given colour.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := Piece{Colour: colour, Kind: King}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// MovePair represents a source-destination square pair for move generation.
type MovePair struct {
	From Square
	To   Square
}

// String returns the pair as "e2-e4".
func (m MovePair) String() string {
	return m.From.String() + "-" + m.To.String()
}
