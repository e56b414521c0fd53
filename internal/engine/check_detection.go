package engine

import (
	"fmt"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
)

var (
	knightOffsets  = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs = [8][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king breaks an engine invariant and panics.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	return IsSquareAttacked(board, mustFindKing(board, colour), colour.Opposite())
}

// IsCheckTo reports whether the side to move is in check.
func IsCheckTo(board *chess.Board) bool {
	return IsInCheck(board, board.ToMove)
}

// mustFindKing returns the king square of the colour. Positions reach the
// engine only through ParseFEN, which guarantees one king per side.
func mustFindKing(board *chess.Board, colour chess.Colour) chess.Square {
	sq := board.KingSquare(colour)
	if !sq.IsValid() {
		panic(fmt.Errorf("no %v king on the board: %w", colour, errors.ErrInvariant))
	}
	return sq
}

// IsSquareAttacked returns true if the square is attacked by the given colour.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack from one rank behind their direction of travel.
	pawn := chess.MakePiece(byColour, chess.Pawn)
	behind := -byColour.PawnDirection()
	if board.Get(sq.Offset(-1, behind)) == pawn || board.Get(sq.Offset(1, behind)) == pawn {
		return true
	}

	knight := chess.MakePiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == knight {
			return true
		}
	}

	king := chess.MakePiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if board.Get(sq.Offset(off[0], off[1])) == king {
			return true
		}
	}

	queen := chess.MakePiece(byColour, chess.Queen)
	bishop := chess.MakePiece(byColour, chess.Bishop)
	for _, dir := range diagonalDirs {
		if piece := firstPieceAlong(board, sq, dir); piece == bishop || piece == queen {
			return true
		}
	}

	rook := chess.MakePiece(byColour, chess.Rook)
	for _, dir := range straightDirs {
		if piece := firstPieceAlong(board, sq, dir); piece == rook || piece == queen {
			return true
		}
	}

	return false
}

// firstPieceAlong returns the first piece met walking from sq in direction
// dir, or Empty if the ray leaves the board first.
func firstPieceAlong(board *chess.Board, sq chess.Square, dir [2]int) chess.Piece {
	for cur := sq.Offset(dir[0], dir[1]); cur.IsValid(); cur = cur.Offset(dir[0], dir[1]) {
		if piece := board.Get(cur); piece != chess.Empty {
			return piece
		}
	}
	return chess.Empty
}

// attacks reports whether the piece standing on from attacks the square to,
// regardless of what stands on to. Pins are ignored.
func attacks(board *chess.Board, from, to chess.Square) bool {
	piece := board.Get(from)
	if piece == chess.Empty || from == to {
		return false
	}
	dx, dy := to.X-from.X, to.Y-from.Y

	switch piece.Kind() {
	case chess.Pawn:
		return dy == piece.Colour().PawnDirection() && abs(dx) == 1
	case chess.Knight:
		return (abs(dx) == 1 && abs(dy) == 2) || (abs(dx) == 2 && abs(dy) == 1)
	case chess.King:
		return abs(dx) <= 1 && abs(dy) <= 1
	case chess.Bishop:
		return abs(dx) == abs(dy) && isPathClear(board, from, to)
	case chess.Rook:
		return (dx == 0 || dy == 0) && isPathClear(board, from, to)
	case chess.Queen:
		return (abs(dx) == abs(dy) || dx == 0 || dy == 0) && isPathClear(board, from, to)
	}
	return false
}
