package output

import (
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WriteText draws the board as an 8-line diagram with Black's back rank
// on top. Pieces are Unicode glyphs or FEN letters; empty squares are dots.
func WriteText(w io.Writer, board *chess.Board, opts Options) error {
	var sb strings.Builder

	if opts.ShowCoordinates {
		writeFiles(&sb)
	}
	for row := 0; row < chess.BoardSize; row++ {
		rank := byte(chess.RankBase + chess.BoardSize - 1 - row)
		if opts.ShowCoordinates {
			sb.WriteByte(rank)
			sb.WriteByte(' ')
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(glyph(board.Get(chess.Sq(row, col)), opts.Unicode))
		}
		if opts.ShowCoordinates {
			sb.WriteByte(' ')
			sb.WriteByte(rank)
		}
		sb.WriteByte('\n')
	}
	if opts.ShowCoordinates {
		writeFiles(&sb)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeFiles(sb *strings.Builder) {
	sb.WriteString(" ")
	for col := 0; col < chess.BoardSize; col++ {
		sb.WriteByte(' ')
		sb.WriteByte(byte(chess.ColBase + col))
	}
	sb.WriteByte('\n')
}

func glyph(p chess.Piece, unicode bool) string {
	if p.IsEmpty() {
		return "."
	}
	if unicode {
		return p.Symbol()
	}
	return string(p.Letter())
}
