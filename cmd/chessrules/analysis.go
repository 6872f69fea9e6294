// analysis.go - Batch evaluation of positions (-analyse)
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/processing"
)

// jsonAnalysis is the JSON form of one analysed line.
type jsonAnalysis struct {
	Line        int      `json:"line"`
	FEN         string   `json:"fen,omitempty"`
	ToMove      string   `json:"toMove,omitempty"`
	Status      string   `json:"status,omitempty"`
	LegalMoves  int      `json:"legalMoves"`
	Checkers    []string `json:"checkers,omitempty"`
	Hash        string   `json:"hash,omitempty"`
	PliesPlayed int      `json:"pliesPlayed,omitempty"`
	Repetitions int      `json:"repetitions,omitempty"`
	Duplicate   bool     `json:"duplicate,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// runAnalysis evaluates every line of r and writes one report per line.
func runAnalysis(ctx context.Context, r io.Reader, cfg *config.Config, numWorkers, maxPositions int) error {
	items, err := processing.ReadItems(r)
	if err != nil {
		return err
	}

	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	batch, err := processing.AnalyzeAll(ctx, items, numWorkers, maxPositions)
	if err != nil {
		cfg.Logf(1, "Interrupted after %d of %d position(s)\n", batch.Processed, len(items))
		return fmt.Errorf("analysis interrupted: %w", err)
	}
	cfg.Logf(2, "Analysed %d position(s) with %d worker(s)\n", batch.Processed, batch.Workers)

	if cfg.Output.Format == config.JSON {
		if err := writeAnalysesJSON(cfg.OutputFile, batch.Analyses); err != nil {
			return err
		}
	} else {
		for _, a := range batch.Analyses {
			if _, err := fmt.Fprintln(cfg.OutputFile, a); err != nil {
				return err
			}
		}
	}

	reportStatistics(cfg, processing.Summarize(batch))
	return nil
}

func writeAnalysesJSON(w io.Writer, analyses []*processing.PositionAnalysis) error {
	out := make([]jsonAnalysis, 0, len(analyses))
	for _, a := range analyses {
		ja := jsonAnalysis{
			Line:      a.Line,
			Duplicate: a.Duplicate,
		}
		if a.Err != nil {
			ja.Error = a.Err.Error()
		}
		if a.FEN != "" {
			ja.FEN = a.FEN
			ja.ToMove = a.ToMove.String()
			ja.Status = a.Status.String()
			ja.LegalMoves = a.LegalMoves
			ja.Hash = fmt.Sprintf("%016x", a.Hash)
			ja.PliesPlayed = a.PliesPlayed
			ja.Repetitions = a.MaxRepetitions
			for _, sq := range a.Checkers {
				ja.Checkers = append(ja.Checkers, sq.String())
			}
		}
		out = append(out, ja)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// reportStatistics logs the batch totals.
func reportStatistics(cfg *config.Config, s processing.Summary) {
	cfg.Logf(1, "%d position(s): %d ongoing, %d check, %d checkmate, %d stalemate, %d invalid, %d duplicate(s).\n",
		s.Total,
		s.ByStatus[engine.Ongoing],
		s.ByStatus[engine.Check],
		s.ByStatus[engine.Checkmate],
		s.ByStatus[engine.Stalemate],
		s.Invalid,
		s.Duplicates)
	cfg.Logf(2, "%d distinct final position(s) remembered.\n", s.Unique)
}
