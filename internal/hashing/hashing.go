// Package hashing provides Zobrist position keys and a concurrent perft cache.
package hashing

import (
	"math/rand"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
)

// Key is a Zobrist position key.
type Key uint64

// pieceSlots covers every packed Piece value.
const pieceSlots = 32

var (
	zobristPiece     [pieceSlots][chess.NumSquares]uint64
	zobristCastle    [4]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64
)

func init() {
	// Fixed seed so keys are stable across runs and processes.
	rnd := rand.New(rand.NewSource(0x5EED))

	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Zobrist computes the position key of a board. Clocks and the castled
// flags do not take part, so a repeated position maps to the same key.
func Zobrist(board *chess.Board) Key {
	var key uint64

	for sq, piece := range board.Squares {
		if piece != chess.Empty {
			key ^= zobristPiece[piece][sq]
		}
	}

	if board.ToMove == chess.Black {
		key ^= zobristSide
	}

	rights := [4]bool{
		board.Castling.WhiteKingside,
		board.Castling.WhiteQueenside,
		board.Castling.BlackKingside,
		board.Castling.BlackQueenside,
	}
	for i, set := range rights {
		if set {
			key ^= zobristCastle[i]
		}
	}

	if canCaptureEnPassant(board) {
		key ^= zobristEnPassant[board.EnPassant.X]
	}

	return Key(key)
}

// canCaptureEnPassant reports whether a pawn of the side to move stands
// beside the pawn that just made a double push. Without one the target
// square does not distinguish the position.
func canCaptureEnPassant(board *chess.Board) bool {
	target := board.EnPassant
	if !target.IsValid() {
		return false
	}
	pawn := chess.MakePiece(board.ToMove, chess.Pawn)
	y := target.Y - board.ToMove.PawnDirection()
	for _, dx := range []int{-1, 1} {
		sq := chess.Sq(target.X+dx, y)
		if sq.IsValid() && board.Get(sq) == pawn {
			return true
		}
	}
	return false
}

// CountRepetitions returns how many times key occurs in history.
func CountRepetitions(history []Key, key Key) int {
	n := 0
	for _, k := range history {
		if k == key {
			n++
		}
	}
	return n
}
