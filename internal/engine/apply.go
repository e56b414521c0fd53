package engine

import "github.com/Tubbz-alt/ChessGame-3/internal/chess"

// ApplyMove applies a validated move and returns the resulting board.
// The input board is left untouched.
func ApplyMove(board *chess.Board, m chess.MoveDescriptor) *chess.Board {
	next := board.Copy()
	applyInPlace(next, m)
	return next
}

// IsCheckAfterMove simulates the move on a scratch copy and reports whether
// the mover's own king is attacked afterwards.
func IsCheckAfterMove(board *chess.Board, m chess.MoveDescriptor) bool {
	scratch := *board
	applyInPlace(&scratch, m)
	return IsInCheck(&scratch, m.Colour())
}

// applyInPlace mutates the board with the move. No legality checks are done.
func applyInPlace(board *chess.Board, m chess.MoveDescriptor) {
	colour := m.Colour()
	captured := board.Get(m.To)
	isPawn := m.Piece.Kind() == chess.Pawn

	// En passant: the captured pawn stands beside the origin, not on the target.
	if isPawn && m.DeltaX() != 0 && captured == chess.Empty && m.To == board.EnPassant {
		victimSq := chess.Sq(m.To.X, m.From.Y)
		captured = board.Get(victimSq)
		board.Set(victimSq, chess.Empty)
	}

	if m.IsCastling() {
		applyCastleRook(board, m)
		board.SetCastled(colour)
	}

	board.Set(m.From, chess.Empty)
	if m.Promotion != chess.Empty {
		board.Set(m.To, m.Promotion)
	} else {
		board.Set(m.To, m.Piece)
	}

	updateCastlingRights(board, m)

	board.EnPassant = chess.NoSquare
	if isPawn && abs(m.DeltaY()) == 2 {
		board.EnPassant = chess.Sq(m.From.X, m.From.Y+colour.PawnDirection())
	}

	if isPawn || captured != chess.Empty {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if colour == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()
	board.ClearAnnotations()
}

// applyCastleRook moves the rook that takes part in a castling king move.
func applyCastleRook(board *chess.Board, m chess.MoveDescriptor) {
	rookFrom, rookTo := castlingRookSquares(m.From.Y, m.To.X > m.From.X)
	board.Set(rookTo, board.Get(rookFrom))
	board.Set(rookFrom, chess.Empty)
}

// castlingRookSquares returns the rook's origin and destination for a castle
// on the given rank.
func castlingRookSquares(rank int, kingside bool) (from, to chess.Square) {
	if kingside {
		return chess.Sq(7, rank), chess.Sq(5, rank)
	}
	return chess.Sq(0, rank), chess.Sq(3, rank)
}

// updateCastlingRights clears rights when a king moves, a rook leaves its
// home corner or something is captured on a home corner.
func updateCastlingRights(board *chess.Board, m chess.MoveDescriptor) {
	if m.Piece.Kind() == chess.King {
		board.Castling.Clear(m.Colour())
	}
	clearCornerRight(board, m.From)
	clearCornerRight(board, m.To)
}

// clearCornerRight drops the castling right tied to a rook home corner.
func clearCornerRight(board *chess.Board, sq chess.Square) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		rank := colour.HomeRank()
		if sq.Y != rank {
			continue
		}
		switch sq.X {
		case 0:
			board.Castling.Set(colour, false, false)
		case 7:
			board.Castling.Set(colour, true, false)
		}
	}
}
