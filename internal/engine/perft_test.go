package engine

import (
	"context"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/hashing"
	"github.com/Tubbz-alt/ChessGame-3/internal/testutil"
)

func TestPerft(t *testing.T) {
	for _, tc := range testutil.PerftCases {
		t.Run(tc.Name, func(t *testing.T) {
			board := mustParseFEN(t, tc.FEN)
			for i, want := range tc.Nodes {
				depth := i + 1
				if testing.Short() && want > 10000 {
					t.Skipf("depth %d skipped in short mode", depth)
				}
				if got := Perft(board, DefaultRules(), depth); got != want {
					t.Errorf("Perft(%d) = %d, want %d", depth, got, want)
				}
			}
		})
	}
}

func TestPerftParallelMatchesSerial(t *testing.T) {
	board := mustParseFEN(t, testutil.KiwipeteFEN)
	cache := hashing.NewPerftCache(0)

	got, err := PerftParallel(context.Background(), board, DefaultRules(), 3, 4, cache)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, uint64(97862))
	testutil.AssertTrue(t, cache.Len() > 0, "cache populated")

	// A second run is answered from the shared cache.
	again, err := PerftParallel(context.Background(), board, DefaultRules(), 3, 4, cache)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, again, got)
	hits, _ := cache.Stats()
	testutil.AssertTrue(t, hits > 0, "cache hits on second run")
}

func TestPerftParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PerftParallel(ctx, NewInitialBoard(), DefaultRules(), 4, 2, nil)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestPerftDivide(t *testing.T) {
	divide := PerftDivide(NewInitialBoard(), DefaultRules(), 2)

	testutil.AssertEqual(t, len(divide), 20)
	testutil.AssertEqual(t, divide["Pe2e4"], uint64(20))
	testutil.AssertEqual(t, divide["Nb1c3"], uint64(20))

	var total uint64
	for _, n := range divide {
		total += n
	}
	testutil.AssertEqual(t, total, uint64(400))
}

func TestGamePerft(t *testing.T) {
	g := mustInitGame(t, InitialFEN)
	testutil.AssertEqual(t, g.RunPerfTest(0), uint64(1))
	testutil.AssertEqual(t, g.RunPerfTest(1), uint64(20))
	testutil.AssertEqual(t, g.RunPerfTest(2), uint64(400))
	testutil.AssertEqual(t, g.RunPerfTest(3), uint64(8902))

	n, err := g.RunPerfTestParallel(context.Background(), 3, 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, n, uint64(8902))
	testutil.AssertEqual(t, len(g.PerftDivide(1)), 20)
}

// dragontoothmg is an independent bitboard move generator; both must agree
// on the exact set of legal moves.
func TestLegalMovesAgreeWithDragontooth(t *testing.T) {
	fens := []string{
		InitialFEN,
		testutil.KiwipeteFEN,
		testutil.EnPassantFEN,
		testutil.PromotionFEN,
		testutil.CastlingFEN,
		testutil.FoolsMateFEN,
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	}
	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			ours := uciMoves(mustParseFEN(t, fen))

			oracle := dragontoothmg.ParseFen(fen)
			var theirs []string
			for _, m := range oracle.GenerateLegalMoves() {
				theirs = append(theirs, strings.ToLower(m.String()))
			}
			slices.Sort(theirs)

			testutil.AssertEqual(t, ours, theirs)
		})
	}
}

func TestPerftAgreesWithDragontooth(t *testing.T) {
	fens := []string{
		testutil.KiwipeteFEN,
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
	}
	for _, fen := range fens {
		oracle := dragontoothmg.ParseFen(fen)
		want := dragontoothPerft(&oracle, 2)
		if got := Perft(mustParseFEN(t, fen), DefaultRules(), 2); got != want {
			t.Errorf("%s: Perft(2) = %d, dragontooth %d", fen, got, want)
		}
	}
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		unapply()
	}
	return nodes
}

func uciMoves(board *chess.Board) []string {
	var moves []string
	for _, m := range LegalMoves(board, DefaultRules()) {
		moves = append(moves, m.UCI())
	}
	slices.Sort(moves)
	return moves
}
