package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/config"
	"github.com/Tubbz-alt/ChessGame-3/internal/engine"
	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
	"github.com/Tubbz-alt/ChessGame-3/internal/worker"
)

// runEval evaluates every FEN of cfg.EvalFile and prints one tab-separated
// line per position: FEN, score and status. Positions that fail to load are
// reported and make the run fail once all lines are printed.
func runEval(ctx context.Context, cfg *config.Config) error {
	file, err := os.Open(cfg.EvalFile)
	if err != nil {
		return err
	}
	defer file.Close()

	fens, err := readFENs(file)
	if err != nil {
		return errors.Wrapf(err, "reading %s", cfg.EvalFile)
	}
	cfg.Logf(config.Verbose, "Evaluating %d positions", len(fens))

	results, err := worker.EvaluateAll(ctx, fens, cfg.Game, cfg.Workers)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			cfg.Logf(config.Quiet, "%s: %v", cfg.EvalFile, r.Err)
			continue
		}
		fmt.Fprintf(cfg.OutputFile, "%s\t%d\t%s\n", r.FEN, r.Game.Score(), evalStatus(r.Game))
	}

	cfg.Logf(config.Normal, "Evaluated %d positions", len(results)-failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d positions did not load: %w", failed, len(results), errors.ErrInvalidFEN)
	}
	return nil
}

// readFENs returns the non-blank lines of r, skipping # comments.
func readFENs(r io.Reader) ([]string, error) {
	var fens []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, scanner.Err()
}

// evalStatus is the one-word status column of the eval output.
func evalStatus(g *engine.Game) string {
	switch {
	case g.MateTo() != chess.NoColour:
		return "mate"
	case g.IsInsufficientMaterial():
		return "insufficient"
	case g.IsStaleMate():
		return "stalemate"
	case g.IsDraw():
		return "draw"
	case g.CheckTo() != chess.NoColour:
		return "check"
	}
	return "-"
}
