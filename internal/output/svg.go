package output

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Square fills used by WriteSVG.
const (
	LightFill     = "#f0d9b5"
	DarkFill      = "#b58863"
	CheckFill     = "#e06666"
	SelectionFill = "#f6f669"
	TargetFill    = "#9fc5e8"
)

// WriteSVG draws the board as an SVG image. a8 is the top-left square.
// A king in check, the selected square and its legal targets are tinted.
func WriteSVG(w io.Writer, board *chess.Board, opts Options) error {
	size := opts.SquareSize
	if size < config.MinSquareSize || size > config.MaxSquareSize {
		size = config.DefaultSquareSize
	}
	margin := 0
	if opts.ShowCoordinates {
		margin = size / 2
	}
	side := chess.BoardSize*size + 2*margin

	checked := checkedKings(board, opts)

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(side, side)
	canvas.Title("board, " + board.ToMove.String() + " to move")

	canvas.Gid("squares")
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			fill := LightFill
			if (row+col)%2 == 1 {
				fill = DarkFill
			}
			switch {
			case checked[sq]:
				fill = CheckFill
			case opts.isSelected(sq):
				fill = SelectionFill
			case opts.isTarget(sq):
				fill = TargetFill
			}
			canvas.Rect(margin+col*size, margin+row*size, size, size, "fill:"+fill)
		}
	}
	canvas.Gend()

	pieceStyle := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx", size*3/4)
	canvas.Gid("pieces")
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Get(chess.Sq(row, col))
			if p.IsEmpty() {
				continue
			}
			canvas.Text(margin+col*size+size/2, margin+row*size+size/2, p.Symbol(), pieceStyle)
		}
	}
	canvas.Gend()

	if opts.ShowCoordinates {
		labelStyle := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx", size/3)
		canvas.Gid("coordinates")
		for i := 0; i < chess.BoardSize; i++ {
			file := string(rune(chess.ColBase + i))
			rank := string(rune(chess.RankBase + chess.BoardSize - 1 - i))
			canvas.Text(margin+i*size+size/2, side-margin/2, file, labelStyle)
			canvas.Text(margin/2, margin+i*size+size/2, rank, labelStyle)
		}
		canvas.Gend()
	}

	canvas.End()
	return ew.err
}

func checkedKings(board *chess.Board, opts Options) map[chess.Square]bool {
	checked := make(map[chess.Square]bool)
	if !opts.HighlightChecks {
		return checked
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if !engine.IsInCheck(board, c) {
			continue
		}
		if sq, ok := board.FindKing(c); ok {
			checked[sq] = true
		}
	}
	return checked
}

// errWriter keeps the first write error; svgo does not report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
