package engine

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/hashing"
)

// Perft counts the leaf positions reachable in exactly depth plies.
func Perft(board *chess.Board, rules Rules, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(board, rules)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := *board
		applyInPlace(&child, m)
		nodes += Perft(&child, rules, depth-1)
	}
	return nodes
}

// PerftDivide returns the perft count below each root move, keyed by the
// move text.
func PerftDivide(board *chess.Board, rules Rules, depth int) map[string]uint64 {
	divide := make(map[string]uint64)
	if depth <= 0 {
		return divide
	}
	for _, m := range LegalMoves(board, rules) {
		child := *board
		applyInPlace(&child, m)
		divide[m.String()] = Perft(&child, rules, depth-1)
	}
	return divide
}

// PerftParallel splits the root moves across at most workers goroutines.
// Subtrees share the node-count cache, which may be nil. Cancelling ctx
// stops the count and returns the context error.
func PerftParallel(ctx context.Context, board *chess.Board, rules Rules, depth, workers int, cache *hashing.PerftCache) (uint64, error) {
	if depth <= 1 {
		return Perft(board, rules, depth), nil
	}
	if cache == nil {
		cache = hashing.NewPerftCache(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	var total atomic.Uint64
	for _, m := range LegalMoves(board, rules) {
		child := *board
		applyInPlace(&child, m)
		g.Go(func() error {
			n, err := perftCached(ctx, &child, rules, depth-1, cache)
			if err != nil {
				return err
			}
			total.Add(n)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}
	return total.Load(), nil
}

// perftCached is Perft with memoisation and cancellation.
func perftCached(ctx context.Context, board *chess.Board, rules Rules, depth int, cache *hashing.PerftCache) (uint64, error) {
	if depth <= 1 {
		return Perft(board, rules, depth), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	key := hashing.Zobrist(board)
	if n, ok := cache.Get(key, depth); ok {
		return n, nil
	}

	var nodes uint64
	for _, m := range LegalMoves(board, rules) {
		child := *board
		applyInPlace(&child, m)
		n, err := perftCached(ctx, &child, rules, depth-1, cache)
		if err != nil {
			return 0, err
		}
		nodes += n
	}

	cache.Put(key, depth, nodes)
	return nodes, nil
}
