// session.go - Interactive play on stdin
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const commandHelp = `Commands:
  e2 e4        move (also e2e4 or e2-e4)
  e2           click a square: select a piece, then click its destination
  select e2    select the piece on e2
  moves        list legal moves (of the selected piece, if any)
  board        show the board
  fen          show the position as FEN
  help         show this help
  quit         leave the game
`

// session holds the state of one interactive game.
type session struct {
	cfg    *config.Config
	game   *game.Game
	out    io.Writer
	writer output.PositionWriter
}

// run plays a game from commands read from in until the game ends, the
// input is exhausted or the player quits.
func run(in io.Reader, cfg *config.Config) error {
	g, err := game.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	s := &session{
		cfg:    cfg,
		game:   g,
		out:    cfg.OutputFile,
		writer: output.NewWriter(cfg.OutputFile, cfg),
	}
	defer s.writer.Close() //nolint:errcheck // writers hold nothing pending

	if err := s.afterMove(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for !g.IsOver() && scanner.Scan() {
		quit, err := s.handle(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading commands: %w", err)
	}

	if g.IsOver() {
		cfg.Logf(1, "%d move(s) played\n", len(g.History()))
	}
	return nil
}

// handle executes one command line. It reports whether the player quit.
func (s *session) handle(line string) (bool, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(s.out, commandHelp)
		return false, nil
	case "board":
		return false, s.show()
	case "fen":
		fmt.Fprintln(s.out, engine.BoardToFEN(s.game.Board()))
		return false, nil
	case "moves":
		s.listMoves()
		return false, nil
	case "select":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "Usage: select <square>")
			return false, nil
		}
		return false, s.selectSquare(fields[1])
	}

	from, to, err := parseMoveFields(fields)
	if err != nil {
		fmt.Fprintf(s.out, "Unrecognised input %q: %v\n", line, err)
		return false, nil
	}
	if to == nil {
		return false, s.click(from)
	}
	return false, s.move(from, *to)
}

// parseMoveFields accepts "e2", "e2 e4", "e2e4" and "e2-e4". The second
// square is nil for a single square.
func parseMoveFields(fields []string) (chess.Square, *chess.Square, error) {
	var names []string
	switch {
	case len(fields) == 2:
		names = fields
	case len(fields) == 1 && len(fields[0]) == 2:
		names = fields
	case len(fields) == 1:
		joined := strings.Replace(fields[0], "-", "", 1)
		if len(joined) != 4 {
			return chess.Square{}, nil, fmt.Errorf("expected one or two squares: %w", errors.ErrInvalidSquare)
		}
		names = []string{joined[:2], joined[2:]}
	default:
		return chess.Square{}, nil, fmt.Errorf("expected one or two squares: %w", errors.ErrInvalidSquare)
	}

	from, err := chess.ParseSquare(names[0])
	if err != nil {
		return chess.Square{}, nil, err
	}
	if len(names) == 1 {
		return from, nil, nil
	}
	to, err := chess.ParseSquare(names[1])
	if err != nil {
		return chess.Square{}, nil, err
	}
	return from, &to, nil
}

func (s *session) selectSquare(name string) error {
	sq, err := chess.ParseSquare(name)
	if err != nil {
		fmt.Fprintf(s.out, "%v\n", err)
		return nil
	}
	if res := s.game.SelectSquare(sq); !res.Selected {
		fmt.Fprintf(s.out, "Nothing of %s's to select on %s\n", s.game.SideToMove(), sq)
		return nil
	}
	fmt.Fprintf(s.out, "Selected %s on %s\n", s.game.PieceAt(sq), sq)
	return s.writeSVG()
}

func (s *session) click(sq chess.Square) error {
	res := s.game.Click(sq)
	if res.Move == nil {
		if !res.Selection.Selected {
			fmt.Fprintf(s.out, "Nothing of %s's to select on %s\n", s.game.SideToMove(), sq)
			return nil
		}
		fmt.Fprintf(s.out, "Selected %s on %s\n", s.game.PieceAt(sq), sq)
		return s.writeSVG()
	}
	if !res.Move.Accepted {
		fmt.Fprintf(s.out, "Illegal move %s-%s\n", res.Selection.Square, sq)
		return s.writeSVG()
	}
	return s.afterMove()
}

func (s *session) move(from, to chess.Square) error {
	if _, err := s.game.Move(from, to); err != nil {
		fmt.Fprintf(s.out, "Illegal move: %v\n", err)
		return nil
	}
	return s.afterMove()
}

// afterMove shows the position and refreshes the SVG file.
func (s *session) afterMove() error {
	if err := s.show(); err != nil {
		return err
	}
	return s.writeSVG()
}

func (s *session) listMoves() {
	var names []string
	if sel, ok := s.game.Selection(); ok {
		for _, to := range s.game.LegalDestinations(sel) {
			names = append(names, chess.MovePair{From: sel, To: to}.String())
		}
	} else {
		for _, m := range s.game.LegalMoves() {
			names = append(names, m.String())
		}
	}
	if len(names) == 0 {
		fmt.Fprintln(s.out, "No legal moves")
		return
	}
	fmt.Fprintln(s.out, strings.Join(names, " "))
}

// show writes the position in the configured format.
func (s *session) show() error {
	return s.writer.WritePosition(s.game)
}

// writeSVG rewrites the -svg file, if one is configured.
func (s *session) writeSVG() error {
	path := s.cfg.Output.SVGFile
	if path == "" {
		return nil
	}
	file, err := os.Create(path) //nolint:gosec // G304: CLI tool writes a user-specified file
	if err != nil {
		return fmt.Errorf("creating SVG file: %w", err)
	}
	if err := output.NewSVGWriter(file, s.cfg).WritePosition(s.game); err != nil {
		file.Close() //nolint:errcheck,gosec // write error takes precedence
		return fmt.Errorf("writing SVG file %s: %w", path, err)
	}
	return file.Close()
}
