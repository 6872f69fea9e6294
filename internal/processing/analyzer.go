// Package processing evaluates batches of positions. Each input line holds
// a FEN placement and side to move, optionally followed by "|" and a
// sequence of moves written as square pairs (e2e4 or e2-e4) to be played
// from that position.
package processing

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// MoveSeparator divides the position from the moves on an input line.
const MoveSeparator = "|"

// PositionAnalysis holds the evaluation of one input line.
type PositionAnalysis struct {
	Line        int
	FEN         string // final position
	ToMove      chess.Colour
	Status      engine.Status
	LegalMoves  int
	Checkers    []chess.Square
	Hash        uint64
	PliesPlayed int

	// MaxRepetitions is the highest number of times any position occurred
	// while the moves were replayed.
	MaxRepetitions int

	// Duplicate is set when an earlier line reached the same final position.
	Duplicate bool

	// Err is set for an unparsable line or the first rejected move.
	Err error
}

// Batch is the outcome of AnalyzeAll.
type Batch struct {
	Analyses []*PositionAnalysis // in input order

	Workers   int   // goroutines used
	Processed int64 // lines evaluated before completion or cancellation

	// Distinct final positions remembered and repeats found by the
	// duplicate detector.
	Unique     int
	Duplicates int
}

// Summary totals a batch.
type Summary struct {
	Total      int
	Invalid    int
	Unique     int
	Duplicates int
	ByStatus   map[engine.Status]int
}

// ReadItems reads one work item per non-blank line of r. Lines starting
// with '#' are comments.
func ReadItems(r io.Reader) ([]worker.WorkItem, error) {
	var items []worker.WorkItem
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, worker.WorkItem{Input: line, Line: lineNum, Index: len(items)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}
	return items, nil
}

// ParseLine splits an input line into its FEN and its moves.
func ParseLine(line string) (string, []chess.MovePair, error) {
	fen, rest, found := strings.Cut(line, MoveSeparator)
	fen = strings.TrimSpace(fen)
	if !found {
		return fen, nil, nil
	}

	var moves []chess.MovePair
	for _, tok := range strings.Fields(rest) {
		m, err := ParseMove(tok)
		if err != nil {
			return "", nil, err
		}
		moves = append(moves, m)
	}
	return fen, moves, nil
}

// ParseMove reads a square pair such as "e2e4" or "e2-e4".
func ParseMove(tok string) (chess.MovePair, error) {
	s := strings.Replace(tok, "-", "", 1)
	if len(s) != 4 {
		return chess.MovePair{}, &errors.ParseError{
			Err:      errors.ErrInvalidSquare,
			Input:    tok,
			Expected: "two squares",
		}
	}
	from, err := chess.ParseSquare(s[:2])
	if err != nil {
		return chess.MovePair{}, err
	}
	to, err := chess.ParseSquare(s[2:])
	if err != nil {
		return chess.MovePair{}, err
	}
	return chess.MovePair{From: from, To: to}, nil
}

// AnalyzeLine evaluates one work item. It builds its own board, so it may
// run concurrently with other calls.
func AnalyzeLine(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Item: item}
	a := &PositionAnalysis{Line: item.Line}
	result.Analysis = a

	fen, moves, err := ParseLine(item.Input)
	if err != nil {
		a.Err = err
		result.Err = err
		return result
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		a.Err = err
		result.Err = err
		return result
	}

	quiet := config.NewConfigBuilder().WithVerbosity(0).Build()
	g := game.NewFromBoard(quiet, board)
	seen := map[uint64]int{hashing.GenerateZobristHash(board): 1}
	a.MaxRepetitions = 1

	for _, m := range moves {
		if _, err := g.Move(m.From, m.To); err != nil {
			a.Err = err
			break
		}
		a.PliesPlayed++
		key := hashing.GenerateZobristHash(g.Board())
		seen[key]++
		if seen[key] > a.MaxRepetitions {
			a.MaxRepetitions = seen[key]
		}
	}

	final := g.Board()
	result.Board = final
	a.FEN = engine.BoardToFEN(final)
	a.ToMove = final.ToMove
	a.Status = engine.Evaluate(final, final.ToMove)
	a.LegalMoves = len(engine.AllLegalMoves(final, final.ToMove))
	a.Checkers = engine.Attackers(final, final.ToMove)
	a.Hash = hashing.GenerateZobristHash(final)
	return result
}

// AnalyzeAll evaluates items on numWorkers goroutines and returns the
// analyses in input order. Final positions repeated from an earlier line
// are marked as duplicates; maxPositions bounds the positions remembered
// for that (0 = unlimited). If ctx is cancelled first, the batch carries
// only the worker and processed counts and ctx's error is returned.
func AnalyzeAll(ctx context.Context, items []worker.WorkItem, numWorkers, maxPositions int) (*Batch, error) {
	pool := worker.NewPool(ctx, numWorkers, len(items), AnalyzeLine)
	results, err := pool.Run(items)
	batch := &Batch{Workers: pool.NumWorkers(), Processed: pool.Processed()}
	if err != nil {
		return batch, err
	}

	// Marking happens in input order so the first occurrence is never
	// the duplicate.
	detector := hashing.NewDuplicateDetector(maxPositions)
	batch.Analyses = make([]*PositionAnalysis, len(results))
	for i, res := range results {
		batch.Analyses[i] = res.Analysis.(*PositionAnalysis)
		if res.Board != nil {
			batch.Analyses[i].Duplicate = detector.CheckAndAdd(res.Board)
		}
	}
	batch.Unique = detector.UniqueCount()
	batch.Duplicates = detector.DuplicateCount()
	return batch, nil
}

// Summarize totals the batch.
func Summarize(b *Batch) Summary {
	s := Summary{
		Total:      len(b.Analyses),
		Unique:     b.Unique,
		Duplicates: b.Duplicates,
		ByStatus:   make(map[engine.Status]int),
	}
	for _, a := range b.Analyses {
		if a.FEN == "" {
			s.Invalid++
			continue
		}
		s.ByStatus[a.Status]++
	}
	return s
}

// String formats the analysis as one report line.
func (a *PositionAnalysis) String() string {
	if a.FEN == "" {
		return fmt.Sprintf("line %d: %v", a.Line, a.Err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "line %d: %s: %s, %d legal move(s)", a.Line, a.FEN, a.Status, a.LegalMoves)
	if len(a.Checkers) > 0 {
		names := make([]string, len(a.Checkers))
		for i, sq := range a.Checkers {
			names[i] = sq.String()
		}
		fmt.Fprintf(&sb, ", checked by %s", strings.Join(names, " "))
	}
	if a.PliesPlayed > 0 {
		fmt.Fprintf(&sb, ", after %d ply", a.PliesPlayed)
	}
	if a.MaxRepetitions >= 3 {
		fmt.Fprintf(&sb, ", position repeated %d times", a.MaxRepetitions)
	}
	if a.Duplicate {
		sb.WriteString(", duplicate")
	}
	if a.Err != nil {
		fmt.Fprintf(&sb, " (stopped: %v)", a.Err)
	}
	return sb.String()
}
