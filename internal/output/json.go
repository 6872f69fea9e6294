package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// Snapshot is the JSON form of a game position.
type Snapshot struct {
	FEN        string      `json:"fen"`
	ToMove     string      `json:"toMove"` // "white" or "black"
	Status     string      `json:"status"`
	Winner     string      `json:"winner,omitempty"`
	Pieces     []JSONPiece `json:"pieces"`
	History    []JSONMove  `json:"history,omitempty"`
	LegalMoves []string    `json:"legalMoves,omitempty"`
}

// JSONPiece is one occupied square.
type JSONPiece struct {
	Square string `json:"square"`
	Color  string `json:"color"`
	Kind   string `json:"kind"`
}

// JSONMove is one accepted move.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Color    string `json:"color"`
	Piece    string `json:"piece"`
	From     string `json:"from"`
	To       string `json:"to"`
	Captured string `json:"captured,omitempty"`
	Status   string `json:"status,omitempty"`
}

// NewSnapshot captures the current state of g.
func NewSnapshot(g *game.Game) *Snapshot {
	board := g.Board()
	s := &Snapshot{
		FEN:    engine.BoardToFEN(board),
		ToMove: colorName(board.ToMove),
		Status: g.Status().String(),
		Pieces: piecesOf(board),
	}

	if out := g.Outcome(); out != nil && out.Result == game.CheckmateResult {
		s.Winner = colorName(out.Winner)
	}

	for _, m := range g.History() {
		jm := JSONMove{
			Ply:   m.Ply,
			Color: colorName(m.Colour),
			Piece: kindName(m.Piece.Kind),
			From:  m.From.String(),
			To:    m.To.String(),
		}
		if !m.Captured.IsEmpty() {
			jm.Captured = kindName(m.Captured.Kind)
		}
		if m.Status != engine.Ongoing {
			jm.Status = m.Status.String()
		}
		s.History = append(s.History, jm)
	}

	for _, m := range g.LegalMoves() {
		s.LegalMoves = append(s.LegalMoves, m.String())
	}
	return s
}

// WriteJSON writes s as indented JSON followed by a newline.
func WriteJSON(w io.Writer, s *Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

func piecesOf(board *chess.Board) []JSONPiece {
	pieces := make([]JSONPiece, 0, 32)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := chess.Sq(row, col)
			p := board.Get(sq)
			if p.IsEmpty() {
				continue
			}
			pieces = append(pieces, JSONPiece{
				Square: sq.String(),
				Color:  colorName(p.Colour),
				Kind:   kindName(p.Kind),
			})
		}
	}
	return pieces
}

func colorName(c chess.Colour) string {
	return strings.ToLower(c.String())
}

func kindName(k chess.Kind) string {
	return strings.ToLower(k.String())
}
