// Package chess provides core chess types and operations.
package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a pawn step: -1 for White, +1 for Black.
// Row 0 is Black's back rank, so White pawns advance toward it.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// PawnRow returns the row a colour's pawns start on.
func (c Colour) PawnRow() int {
	if c == White {
		return 6
	}
	return 1
}

// Kind represents a chess piece type.
type Kind int

const (
	Empty Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Piece is a coloured piece. The zero value is the empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Colour: White, Kind: kind}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Colour: Black, Kind: kind}
}

// IsEmpty reports whether p is the empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// String returns e.g. "White Knight", or "Empty".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return '.'
	}
	l := p.Kind.Letter()
	if p.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// Symbol returns the Unicode chess glyph for the piece.
func (p Piece) Symbol() string {
	if p.IsEmpty() {
		return " "
	}
	white := []string{"", "♙", "♘", "♗", "♖", "♕", "♔"}
	black := []string{"", "♟", "♞", "♝", "♜", "♛", "♚"}
	if p.Colour == White {
		return white[p.Kind]
	}
	return black[p.Kind]
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	ColBase  = 'a'
	RankBase = '1'
)

// Square is a board coordinate. Row 0 is Black's back rank (rank 8) and
// row 7 is White's back rank (rank 1); Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for Square{Row: row, Col: col}.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// String returns the algebraic name of the square, e.g. "e2".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte(ColBase + s.Col), byte(RankBase + BoardSize - 1 - s.Row)})
}

// ParseSquare converts an algebraic square name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    name,
			Expected: "file and rank",
		}
	}
	file, rank := name[0], name[1]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	if file < ColBase || file >= ColBase+BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    name,
			Column:   1,
			Expected: "file a-h",
			Got:      string(name[0]),
		}
	}
	if rank < RankBase || rank >= RankBase+BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    name,
			Column:   2,
			Expected: "rank 1-8",
			Got:      string(rank),
		}
	}
	return Square{Row: BoardSize - 1 - int(rank-RankBase), Col: int(file - ColBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on error.
// It is intended for tests and package-level tables.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}
