package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SelectionResult reports the effect of a first click.
type SelectionResult struct {
	Selected bool
	Square   chess.Square
}

// MoveResult reports the effect of a move attempt. Captured is the empty
// piece when nothing was taken; GameOver is nil while play continues.
type MoveResult struct {
	Accepted bool
	Captured chess.Piece
	Status   engine.Status
	GameOver *Outcome
}

// ClickPhase is the state of the two-click protocol.
type ClickPhase int

const (
	AwaitingFirstClick ClickPhase = iota
	AwaitingSecondClick
)

// ClickResult reports the effect of a click. Move is set when the click
// was a second click.
type ClickResult struct {
	Phase     ClickPhase // phase after the click
	Selection SelectionResult
	Move      *MoveResult
}

// Phase returns where the two-click protocol currently stands.
func (g *Game) Phase() ClickPhase {
	if g.selection != nil {
		return AwaitingSecondClick
	}
	return AwaitingFirstClick
}

// SelectSquare handles a first click. A piece of the side to move becomes
// the selection, replacing any earlier one. An empty square, an opponent's
// piece, an off-board square or a finished game leave the state unchanged.
func (g *Game) SelectSquare(sq chess.Square) SelectionResult {
	if g.IsOver() || !sq.Valid() || !g.ownsPiece(sq) {
		return SelectionResult{}
	}
	g.selection = &sq
	g.cfg.Logf(2, "%s selects %s\n", g.board.ToMove, sq)
	return SelectionResult{Selected: true, Square: sq}
}

// AttemptMove plays from-to for the side to move. The move is accepted
// when from holds a piece of the side to move, the movement rules allow
// it, and the mover's king is not left in check. An accepted move mutates
// the board, passes the turn and checks whether the opponent is mated or
// stalemated. A rejected move changes nothing. The selection is cleared
// either way.
func (g *Game) AttemptMove(from, to chess.Square) MoveResult {
	g.selection = nil

	if err := g.validate(from, to); err != nil {
		g.cfg.Logf(2, "%v\n", err)
		return MoveResult{}
	}

	mover := g.board.ToMove
	piece := g.board.Get(from)
	captured := g.board.MovePiece(from, to)
	g.board.ToMove = mover.Opposite()

	status := engine.Evaluate(g.board, g.board.ToMove)
	g.history = append(g.history, MoveRecord{
		Ply:      len(g.history) + 1,
		Colour:   mover,
		Piece:    piece,
		From:     from,
		To:       to,
		Captured: captured,
		Status:   status,
	})
	g.logMove(g.history[len(g.history)-1])
	g.checkTerminal(status)

	return MoveResult{
		Accepted: true,
		Captured: captured,
		Status:   status,
		GameOver: g.Outcome(),
	}
}

// Move is AttemptMove reporting a rejection as an error, for front ends
// that read moves from text rather than clicks.
func (g *Game) Move(from, to chess.Square) (MoveResult, error) {
	if err := g.validate(from, to); err != nil {
		g.selection = nil
		return MoveResult{}, err
	}
	return g.AttemptMove(from, to), nil
}

// Click drives the two-click protocol: the first click selects, the
// second attempts a move from the selection and always clears it.
func (g *Game) Click(sq chess.Square) ClickResult {
	if g.selection == nil {
		sel := g.SelectSquare(sq)
		return ClickResult{Phase: g.Phase(), Selection: sel}
	}
	from := *g.selection
	res := g.AttemptMove(from, sq)
	return ClickResult{
		Phase:     g.Phase(),
		Selection: SelectionResult{Selected: true, Square: from},
		Move:      &res,
	}
}

// validate returns nil when from-to may be played now.
func (g *Game) validate(from, to chess.Square) error {
	moveErr := func(err error) error {
		return &errors.MoveError{
			Err:  err,
			Ply:  len(g.history) + 1,
			From: from.String(),
			To:   to.String(),
		}
	}

	switch {
	case g.IsOver():
		return moveErr(errors.ErrGameOver)
	case !from.Valid() || !to.Valid():
		return moveErr(errors.ErrInvalidSquare)
	case !g.ownsPiece(from):
		return moveErr(errors.Wrapf(errors.ErrIllegalMove, "no %s piece on %s", g.board.ToMove, from))
	case !engine.IsLegalMove(g.board, from, to):
		return moveErr(errors.ErrIllegalMove)
	case !engine.IsKingSafeMove(g.board, from, to):
		return moveErr(errors.Wrapf(errors.ErrIllegalMove, "%s king would be in check", g.board.ToMove))
	}
	return nil
}

func (g *Game) logMove(m MoveRecord) {
	capture := ""
	if !m.Captured.IsEmpty() {
		capture = " takes " + m.Captured.String()
	}
	g.cfg.Logf(2, "%d. %s %s-%s%s (%s)\n", m.Ply, m.Piece, m.From, m.To, capture, m.Status)
}
