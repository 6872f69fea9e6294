// chessrules is a two-player chess rules checker for the terminal. It reads
// moves from stdin, rejects illegal ones, and announces checkmate or
// stalemate. With -analyse it evaluates a file of positions instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	os.Exit(realMain())
}

// realMain runs the program and returns the exit status, so deferred
// cleanup runs before the process exits.
func realMain() int {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		return 0
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		return 0
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Set up logging
	closeLog, err := setupLogFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if *analyseFile != "" {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := analyseFromFile(ctx, *analyseFile, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := run(os.Stdin, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// setupLogFile points cfg.LogFile at the file named by -L (appending) or,
// failing that, -l (truncating). -L wins when both are given. The returned
// func closes the file.
func setupLogFile(cfg *config.Config) (func(), error) {
	var (
		file *os.File
		err  error
	)
	switch {
	case *appendLog != "":
		file, err = os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", *appendLog, err)
		}
	case *logFile != "":
		file, err = os.Create(*logFile)
		if err != nil {
			return nil, fmt.Errorf("creating log file %s: %w", *logFile, err)
		}
	default:
		return func() {}, nil
	}

	cfg.LogFile = file
	return func() {
		file.Close() //nolint:errcheck,gosec // nothing left to report to
	}, nil
}

// analyseFromFile runs the batch analysis on the named file ("-" for stdin).
func analyseFromFile(ctx context.Context, name string, cfg *config.Config) error {
	if name == "-" {
		return runAnalysis(ctx, os.Stdin, cfg, *workers, *maxPositions)
	}
	file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer file.Close() //nolint:errcheck // read-only file

	return runAnalysis(ctx, file, cfg, *workers, *maxPositions)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Two players take turns entering moves on stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n%s", commandHelp)
	fmt.Fprintf(os.Stderr, "\nRules: no castling, en passant or promotion; sliding pieces are not blocked\n")
	fmt.Fprintf(os.Stderr, "by pieces in between; a king can never be captured.\n")
}
