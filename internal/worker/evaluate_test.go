package worker

import (
	"context"
	"testing"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/config"
	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
	"github.com/Tubbz-alt/ChessGame-3/internal/testutil"
)

func TestEvaluateAll(t *testing.T) {
	fens := []string{
		testutil.InitialFEN,
		testutil.FoolsMateFEN,
		"not a fen",
		testutil.StalemateFEN,
		testutil.KingsOnlyFEN,
	}

	results, err := EvaluateAll(context.Background(), fens, config.DefaultGameSettings(), 3)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(results), len(fens))

	for i, r := range results {
		testutil.AssertEqual(t, r.Index, i)
		testutil.AssertEqual(t, r.FEN, fens[i])
	}

	testutil.AssertEqual(t, results[0].Game.Score(), 10)
	testutil.AssertEqual(t, results[1].Game.MateTo(), chess.White)
	testutil.AssertErrorIs(t, results[2].Err, errors.ErrInvalidFEN)
	testutil.AssertTrue(t, results[2].Game == nil, "no game for a bad FEN")
	testutil.AssertTrue(t, results[3].Game.IsStaleMate(), "stalemate flagged")
	testutil.AssertTrue(t, results[4].Game.IsInsufficientMaterial(), "bare kings")
}

func TestEvaluateAllDefaultsWorkers(t *testing.T) {
	results, err := EvaluateAll(context.Background(), []string{testutil.KiwipeteFEN}, config.DefaultGameSettings(), 0)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(results), 1)
	testutil.AssertNoError(t, results[0].Err)
}

func TestEvaluateAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EvaluateAll(ctx, []string{testutil.InitialFEN, testutil.KiwipeteFEN}, config.DefaultGameSettings(), 2)
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestEvaluateFuncUsesSettings(t *testing.T) {
	s := config.NewGameSettingsBuilder().WithCastled(true, false).Build()
	r := EvaluateFunc(s)(Position{FEN: testutil.InitialFEN, Index: 7})

	testutil.AssertNoError(t, r.Err)
	testutil.AssertEqual(t, r.Index, 7)
	board := r.Game.Board()
	testutil.AssertTrue(t, board.WhiteCastled, "castled flag carried over")
	testutil.AssertEqual(t, r.Game.Fen(), testutil.InitialFEN)
}
