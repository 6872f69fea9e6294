// Package game runs a two-player session on top of the rules engine:
// turn ownership, the two-click selection protocol used by front ends,
// and detection of the end of the game.
//
// A Game is not safe for concurrent use. Legal-move generation plays
// candidate moves on the live board and takes them back, so callers that
// share a Game between goroutines must serialize every call.
package game

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Result classifies how a game ended.
type Result int

const (
	CheckmateResult Result = iota + 1
	StalemateResult
)

// String returns the lower-case name of the result.
func (r Result) String() string {
	switch r {
	case CheckmateResult:
		return "checkmate"
	case StalemateResult:
		return "stalemate"
	}
	return "none"
}

// Outcome describes a finished game. Winner is meaningful for checkmate only.
type Outcome struct {
	Result Result
	Winner chess.Colour
}

// Message returns the announcement shown to players.
func (o Outcome) Message() string {
	if o.Result == CheckmateResult {
		return "Checkmate! " + o.Winner.String() + " wins!"
	}
	return "Stalemate! The game is a draw!"
}

// MoveRecord is one accepted move.
type MoveRecord struct {
	Ply      int
	Colour   chess.Colour
	Piece    chess.Piece
	From     chess.Square
	To       chess.Square
	Captured chess.Piece
	Status   engine.Status // status of the opponent after the move
}

// Game holds the board, the pending selection and the game's outcome.
type Game struct {
	cfg       *config.Config
	board     *chess.Board
	selection *chess.Square
	outcome   *Outcome
	history   []MoveRecord
}

// New starts a game from the standard position with White to move.
func New(cfg *config.Config) *Game {
	return NewFromBoard(cfg, chess.NewInitialBoard())
}

// NewFromBoard starts a game from an arbitrary position. The board is
// owned by the game from then on. If the side to move has no legal move
// the game is over before the first move.
func NewFromBoard(cfg *config.Config, board *chess.Board) *Game {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g := &Game{cfg: cfg, board: board}
	g.checkTerminal(engine.Evaluate(board, board.ToMove))
	return g
}

// NewFromConfig starts from cfg.Game.StartFEN, or the standard position
// when no start position is configured.
func NewFromConfig(cfg *config.Config) (*Game, error) {
	if cfg == nil || cfg.Game.StartFEN == "" {
		return New(cfg), nil
	}
	board, err := engine.NewBoardFromFEN(cfg.Game.StartFEN)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}
	return NewFromBoard(cfg, board), nil
}

// PieceAt returns the piece on sq for rendering.
func (g *Game) PieceAt(sq chess.Square) chess.Piece {
	return g.board.Get(sq)
}

// SideToMove returns the colour whose turn it is.
func (g *Game) SideToMove() chess.Colour {
	return g.board.ToMove
}

// Board returns a copy of the current board.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// Selection returns the pending first-click square, if any.
func (g *Game) Selection() (chess.Square, bool) {
	if g.selection == nil {
		return chess.Square{}, false
	}
	return *g.selection, true
}

// Outcome returns how the game ended, or nil while it is in progress.
func (g *Game) Outcome() *Outcome {
	if g.outcome == nil {
		return nil
	}
	o := *g.outcome
	return &o
}

// IsOver reports whether checkmate or stalemate has been reached.
func (g *Game) IsOver() bool {
	return g.outcome != nil
}

// Status evaluates the position for the side to move.
func (g *Game) Status() engine.Status {
	return engine.Evaluate(g.board, g.board.ToMove)
}

// History returns the accepted moves in order.
func (g *Game) History() []MoveRecord {
	out := make([]MoveRecord, len(g.history))
	copy(out, g.history)
	return out
}

// LegalMoves returns every legal move of the side to move.
// It is empty once the game is over.
func (g *Game) LegalMoves() []chess.MovePair {
	if g.IsOver() {
		return nil
	}
	return engine.AllLegalMoves(g.board, g.board.ToMove)
}

// LegalDestinations returns where the piece on from may go, provided it
// belongs to the side to move.
func (g *Game) LegalDestinations(from chess.Square) []chess.Square {
	if g.IsOver() || !g.ownsPiece(from) {
		return nil
	}
	return engine.LegalMovesFrom(g.board, from)
}

func (g *Game) ownsPiece(sq chess.Square) bool {
	p := g.board.Get(sq)
	return !p.IsEmpty() && p.Colour == g.board.ToMove
}

// checkTerminal records the outcome when status ends the game.
// The winner of a checkmate is the side that is not to move.
func (g *Game) checkTerminal(status engine.Status) {
	switch status {
	case engine.Checkmate:
		g.outcome = &Outcome{Result: CheckmateResult, Winner: g.board.ToMove.Opposite()}
	case engine.Stalemate:
		g.outcome = &Outcome{Result: StalemateResult}
	default:
		return
	}
	g.cfg.Logf(1, "%s\n", g.outcome.Message())
}
