package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Position fixtures shared by the engine, store and command tests.
const (
	InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// White to move and mated by the queen on h4.
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"

	// Black to move, not in check, without a legal move.
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"

	KingsOnlyFEN = "8/8/4k3/8/8/3K4/8/8 w - - 0 1"

	// Both sides keep all castling rights with empty back ranks.
	CastlingFEN = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"

	// Black has just played d7d5 next to the white pawn on e5.
	EnPassantFEN = "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3"

	// White pawn on b7 may capture or push to promote.
	PromotionFEN = "r3k3/1P6/8/8/8/8/8/4K3 w - - 0 1"

	// The well known perft position with castling, pins and en passant.
	KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
)

// PerftCase is a position with known node counts by depth.
type PerftCase struct {
	Name  string
	FEN   string
	Nodes []uint64 // Nodes[d-1] is the count at depth d
}

// PerftCases are published reference counts.
var PerftCases = []PerftCase{
	{"initial", InitialFEN, []uint64{20, 400, 8902, 197281}},
	{"kiwipete", KiwipeteFEN, []uint64{48, 2039, 97862}},
	{"rook endgame", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812, 43238}},
	{"promotions", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
}

// WriteLines writes lines to a new file in a test temp dir and returns its path.
func WriteLines(t *testing.T, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}
