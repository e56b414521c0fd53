package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Tubbz-alt/ChessGame-3/internal/config"
	"github.com/Tubbz-alt/ChessGame-3/internal/engine"
	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
	"github.com/Tubbz-alt/ChessGame-3/internal/testutil"
)

// testConfig returns a quiet config writing to buffers, printing neither
// board nor score after moves.
func testConfig() (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithOutput(&out).
		WithLog(&log).
		ShowBoard(false).
		Build()
	cfg.Output.ShowScore = false
	return cfg, &out, &log
}

func runScript(t *testing.T, cfg *config.Config, lines ...string) {
	t.Helper()
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	testutil.AssertNoError(t, run(context.Background(), cfg, in))
}

func TestRenderBoard(t *testing.T) {
	g, err := engine.InitGame("")
	testutil.AssertNoError(t, err)

	want := `  +-----------------+
8 | r n b q k b n r |
7 | p p p p p p p p |
6 | . . . . . . . . |
5 | . . . . . . . . |
4 | . . . . . . . . |
3 | . . . . . . . . |
2 | P P P P P P P P |
1 | R N B Q K B N R |
  +-----------------+
    a b c d e f g h
`
	testutil.AssertEqual(t, renderBoard(g, true), want)

	plain := renderBoard(g, false)
	testutil.AssertTrue(t, strings.HasPrefix(plain, "+-----------------+\n| r n b q k b n r |\n"), "no coordinates")
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want string
	}{
		{"ordinary", testutil.InitialFEN, ""},
		{"mate", testutil.FoolsMateFEN, "Mate! White is checkmated. Game over."},
		{"stalemate", testutil.StalemateFEN, "Stalemate. Game over."},
		{"bare kings", testutil.KingsOnlyFEN, "Draw by insufficient material. Game over."},
		{"check", "4k3/8/8/8/8/8/8/R3K2q w - - 0 1", "Check!"},
		{"fifty moves", "4k3/8/8/8/8/8/8/R3K3 w - - 100 80", "Draw by the fifty-move rule."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := engine.InitGame(tt.fen)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, statusText(g), tt.want)
		})
	}
}

func TestConsoleFoolsMate(t *testing.T) {
	cfg, out, _ := testConfig()
	runScript(t, cfg, "f2f3", "e7e5", "Pg2g4", "qd8h4", "a2a3", "fen", "quit")

	got := out.String()
	testutil.AssertContains(t, got, "Mate! White is checkmated. Game over.")
	testutil.AssertContains(t, got, "The game is over.")
	testutil.AssertContains(t, got, testutil.FoolsMateFEN)
}

func TestConsoleRejectsMoves(t *testing.T) {
	cfg, out, _ := testConfig()
	runScript(t, cfg, "e2e5", "xyz", "e7e5")

	got := out.String()
	testutil.AssertContains(t, got, "Illegal move: Pe2e5")
	testutil.AssertContains(t, got, "Invalid move:")
	testutil.AssertContains(t, got, "Illegal move: pe7e5")
}

func TestConsoleCommands(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.Workers = 2
	runScript(t, cfg, "moves", "moves g1", "moves z9", "perft 2", "perft 99", "score", "computer", "help", "e2e4", "history")

	got := out.String()
	testutil.AssertContains(t, got, "20 moves: ")
	testutil.AssertContains(t, got, "g1: f3 h3")
	testutil.AssertContains(t, got, `Bad square "z9"`)
	testutil.AssertContains(t, got, "Nodes: 400")
	testutil.AssertContains(t, got, "Depth must be 1..8")
	testutil.AssertContains(t, got, "Score: 10")
	testutil.AssertContains(t, got, "not implemented")
	testutil.AssertContains(t, got, "Commands:")
	testutil.AssertContains(t, got, "  1. Pe2e4")
}

func TestConsoleShowsPosition(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.Output.ShowBoard = true
	cfg.Output.ShowScore = true
	cfg.Output.ShowFEN = true
	runScript(t, cfg, "e2e4")

	got := out.String()
	testutil.AssertContains(t, got, "4 | . . . . P . . . |")
	testutil.AssertContains(t, got, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertContains(t, got, "Black> ")
}

func TestConsolePersistsAndResumes(t *testing.T) {
	dir := t.TempDir()

	cfg, _, _ := testConfig()
	cfg.Store.Path = dir
	cfg.Store.GameID = "club"
	runScript(t, cfg, "e2e4", "c7c5", "quit")

	cfg, out, log := testConfig()
	cfg.Store.Path = dir
	cfg.Store.GameID = "club"
	runScript(t, cfg, "history", "fen", "quit")

	testutil.AssertContains(t, log.String(), `Resumed game "club" after 2 moves`)
	testutil.AssertContains(t, out.String(), "  2. pc7c5")
	testutil.AssertContains(t, out.String(), "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2")

	cfg, out, _ = testConfig()
	cfg.Store.Path = dir
	cfg.Store.GameID = "club"
	cfg.Store.Restart = true
	runScript(t, cfg, "fen", "history", "quit")
	testutil.AssertContains(t, out.String(), testutil.InitialFEN)
	testutil.AssertFalse(t, strings.Contains(out.String(), "Pe2e4"), "history cleared")
}

func TestRunPerft(t *testing.T) {
	tests := []struct {
		name    string
		workers int
	}{
		{"serial", 1},
		{"parallel", 4},
		{"one per cpu", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, out, _ := testConfig()
			cfg.Perft.Depth = 3
			cfg.Perft.Workers = tt.workers
			testutil.AssertNoError(t, run(context.Background(), cfg, nil))
			testutil.AssertEqual(t, out.String(), "Nodes: 8902\n")
		})
	}
}

func TestRunPerftDivide(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.Perft.Depth = 2
	cfg.Perft.Divide = true
	testutil.AssertNoError(t, run(context.Background(), cfg, nil))

	got := out.String()
	testutil.AssertTrue(t, strings.HasPrefix(got, "Nb1a3: 20\nNb1c3: 20\n"), "sorted by move text")
	testutil.AssertContains(t, got, "Pe2e4: 20\n")
	testutil.AssertContains(t, got, "\nMoves: 20\nNodes: 400\n")
}

func TestRunEval(t *testing.T) {
	path := testutil.WriteLines(t, "positions.txt",
		"# start and mate",
		testutil.InitialFEN,
		"",
		testutil.FoolsMateFEN,
		testutil.StalemateFEN,
	)

	cfg, out, _ := testConfig()
	cfg.EvalFile = path
	cfg.Workers = 2
	testutil.AssertNoError(t, run(context.Background(), cfg, nil))

	want := testutil.InitialFEN + "\t10\t-\n" +
		testutil.FoolsMateFEN + "\t-32767\tmate\n" +
		testutil.StalemateFEN + "\t0\tstalemate\n"
	testutil.AssertEqual(t, out.String(), want)
}

func TestRunEvalBadFEN(t *testing.T) {
	path := testutil.WriteLines(t, "positions.txt", testutil.InitialFEN, "8/8/8 w - - 0 1")

	cfg, out, log := testConfig()
	cfg.EvalFile = path
	err := run(context.Background(), cfg, nil)

	testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
	testutil.AssertContains(t, out.String(), testutil.InitialFEN)
	testutil.AssertContains(t, log.String(), "positions.txt")
}

func TestRunEvalMissingFile(t *testing.T) {
	cfg, _, _ := testConfig()
	cfg.EvalFile = t.TempDir() + "/missing.txt"
	testutil.AssertTrue(t, run(context.Background(), cfg, nil) != nil, "missing file is an error")
}

func TestReadFENs(t *testing.T) {
	fens, err := readFENs(strings.NewReader("  a  \n\n# c\nb\n"))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, fens, []string{"a", "b"})
}
