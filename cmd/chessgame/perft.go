package main

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/Tubbz-alt/ChessGame-3/internal/config"
	"github.com/Tubbz-alt/ChessGame-3/internal/engine"
	"github.com/Tubbz-alt/ChessGame-3/internal/hashing"
)

// runPerft counts the positions reachable from the configured start. With
// Divide it prints one line per root move, sorted by move text.
func runPerft(ctx context.Context, cfg *config.Config) error {
	g, err := engine.InitGameWithSettings(cfg.Game)
	if err != nil {
		return err
	}
	depth := cfg.Perft.Depth
	start := time.Now()

	if cfg.Perft.Divide {
		divide := g.PerftDivide(depth)
		moves := maps.Keys(divide)
		slices.Sort(moves)

		var total uint64
		for _, m := range moves {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", m, divide[m])
			total += divide[m]
		}
		fmt.Fprintf(cfg.OutputFile, "\nMoves: %d\nNodes: %d\n", len(moves), total)
		cfg.Logf(config.Normal, "perft %d divided in %v", depth, time.Since(start))
		return nil
	}

	var nodes uint64
	if cfg.Perft.Workers == 1 {
		nodes = g.RunPerfTest(depth)
	} else {
		cache := hashing.NewPerftCache(cfg.Perft.CacheSize)
		board := g.Board()
		nodes, err = engine.PerftParallel(ctx, &board, g.Rules(), depth, cfg.Perft.Workers, cache)
		if err != nil {
			return err
		}
		hits, misses := cache.Stats()
		cfg.Logf(config.Verbose, "perft cache: %d entries, %d hits, %d misses", cache.Len(), hits, misses)
	}

	fmt.Fprintf(cfg.OutputFile, "Nodes: %d\n", nodes)
	cfg.Logf(config.Normal, "perft %d in %v", depth, time.Since(start))
	return nil
}
