package engine

import (
	"testing"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
)

func mustParseFEN(t testing.TB, fen string) *chess.Board {
	t.Helper()
	board, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return board
}

func mustParseMove(t testing.TB, text string) chess.MoveDescriptor {
	t.Helper()
	m, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return m
}

func mustInitGame(t testing.TB, fen string) *Game {
	t.Helper()
	g, err := InitGame(fen)
	if err != nil {
		t.Fatalf("InitGame(%q): %v", fen, err)
	}
	return g
}

// play applies the moves in order and fails if any is rejected.
func play(t testing.TB, g *Game, moves ...string) *Game {
	t.Helper()
	for _, text := range moves {
		next, err := g.Move(text)
		if err != nil {
			t.Fatalf("Move(%q): %v", text, err)
		}
		if next == g {
			t.Fatalf("Move(%q) rejected in %s", text, g.Fen())
		}
		g = next
	}
	return g
}

func squareNames(squares []chess.Square) []string {
	names := make([]string, len(squares))
	for i, sq := range squares {
		names[i] = sq.String()
	}
	return names
}

func mustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", name, err)
	}
	return sq
}
