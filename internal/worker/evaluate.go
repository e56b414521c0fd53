package worker

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/Tubbz-alt/ChessGame-3/internal/config"
	"github.com/Tubbz-alt/ChessGame-3/internal/engine"
)

// EvaluateFunc returns an EvalFunc that starts a game from the position FEN
// under settings. The game carries the status flags and evaluation.
func EvaluateFunc(settings config.GameSettings) EvalFunc {
	return func(pos Position) Result {
		s := settings
		s.FEN = pos.FEN
		g, err := engine.InitGameWithSettings(s)
		return Result{FEN: pos.FEN, Index: pos.Index, Game: g, Err: err}
	}
}

// EvaluateAll evaluates every FEN on workers goroutines and returns the
// results in input order. A FEN that fails to parse is reported in its
// result, not as an error; only cancellation of ctx aborts the batch.
// workers < 1 means one per CPU.
func EvaluateAll(ctx context.Context, fens []string, settings config.GameSettings, workers int) ([]Result, error) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	pool := NewPool(EvaluateFunc(settings), WithWorkers(workers), WithBufferSize(2*workers))
	pool.Start()

	results := make([]Result, len(fens))
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer pool.Close()
		for i, fen := range fens {
			if err := ctx.Err(); err != nil {
				pool.Stop()
				return err
			}
			pool.Submit(Position{FEN: fen, Index: i})
		}
		return nil
	})

	g.Go(func() error {
		for r := range pool.Results() {
			results[r.Index] = r
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
