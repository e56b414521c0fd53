package engine

import "github.com/Tubbz-alt/ChessGame-3/internal/chess"

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board, rules Rules) bool {
	return IsCheckTo(board) && !HasLegalMoves(board, rules)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board, rules Rules) bool {
	return !IsCheckTo(board) && !HasLegalMoves(board, rules)
}

// HasInsufficientMaterial reports whether neither side can deliver mate:
// no pawns, rooks or queens remain and the minor pieces are either absent,
// a single knight, or bishops that all stand on squares of one colour.
func HasInsufficientMaterial(board *chess.Board) bool {
	knights := 0
	var bishopsLight, bishopsDark int

	for i, piece := range board.Squares {
		switch piece.Kind() {
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		case chess.Knight:
			knights++
		case chess.Bishop:
			if chess.SquareAt(i).IsLight() {
				bishopsLight++
			} else {
				bishopsDark++
			}
		}
	}

	bishops := bishopsLight + bishopsDark
	switch {
	case knights == 0 && bishops == 0:
		return true
	case knights == 1 && bishops == 0:
		return true
	case knights == 0:
		return bishopsLight == 0 || bishopsDark == 0
	}
	return false
}
