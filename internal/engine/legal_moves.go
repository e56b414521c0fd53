package engine

import "github.com/Tubbz-alt/ChessGame-3/internal/chess"

// LegalMoves returns every legal move of the side to move, in board order
// of the moving pieces. Promotions are expanded to queen, rook, bishop and
// knight.
func LegalMoves(board *chess.Board, rules Rules) []chess.MoveDescriptor {
	moves := make([]chess.MoveDescriptor, 0, 48)
	eachLegalMove(board, rules, func(m chess.MoveDescriptor) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(board *chess.Board, rules Rules) bool {
	found := false
	eachLegalMove(board, rules, func(chess.MoveDescriptor) bool {
		found = true
		return false
	})
	return found
}

// LegalDestinations returns the squares the piece on from may legally move
// to, in board order, with castling destinations appended last. A pawn
// reaching the last rank is tested as a queen promotion.
func LegalDestinations(board *chess.Board, rules Rules, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if piece == chess.Empty || piece.Colour() != board.ToMove {
		return nil
	}

	var reachable [chess.NumSquares]bool
	v := NewValidator(board, rules)
	for _, to := range candidateTargets(board, from) {
		m := chess.MoveDescriptor{Piece: piece, From: from, To: to}
		if piece.Kind() == chess.Pawn && to.Y == piece.Colour().Opposite().HomeRank() {
			m = m.WithPromotion(chess.Queen)
		}
		if v.CanMove(m) && !IsCheckAfterMove(board, m) {
			reachable[to.Index()] = true
		}
	}

	var dests []chess.Square
	for _, sq := range chess.AllSquares {
		if reachable[sq.Index()] {
			dests = append(dests, sq)
		}
	}
	return append(dests, castlingTargets(board, from)...)
}

// eachLegalMove calls fn for every legal move of the side to move until fn
// returns false.
func eachLegalMove(board *chess.Board, rules Rules, fn func(chess.MoveDescriptor) bool) {
	v := NewValidator(board, rules)
	board.EachPiece(func(p chess.PieceOnSquare) bool {
		if p.Piece.Colour() != board.ToMove {
			return true
		}
		for _, to := range candidateTargets(board, p.Square) {
			for _, m := range expandPromotions(chess.NewMoveDescriptor(p, to)) {
				if !v.CanMove(m) || IsCheckAfterMove(board, m) {
					continue
				}
				if !fn(m) {
					return false
				}
			}
		}
		if p.Piece.Kind() == chess.King {
			for _, to := range castlingTargets(board, p.Square) {
				if !fn(chess.NewMoveDescriptor(p, to)) {
					return false
				}
			}
		}
		return true
	})
}

// expandPromotions turns a pawn move onto the last rank into one move per
// promotion piece.
func expandPromotions(m chess.MoveDescriptor) []chess.MoveDescriptor {
	if m.Piece.Kind() != chess.Pawn || m.To.Y != m.Colour().Opposite().HomeRank() {
		return []chess.MoveDescriptor{m}
	}
	moves := make([]chess.MoveDescriptor, 0, len(chess.PromotionKinds))
	for _, kind := range chess.PromotionKinds {
		moves = append(moves, m.WithPromotion(kind))
	}
	return moves
}

// candidateTargets lists the squares a piece could reach by its movement
// pattern alone. The list is a superset of the legal targets and is
// filtered by the Validator and the king-safety check.
func candidateTargets(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	targets := make([]chess.Square, 0, 28)

	addOffsets := func(offsets [8][2]int) {
		for _, off := range offsets {
			if to := from.Offset(off[0], off[1]); to.IsValid() {
				targets = append(targets, to)
			}
		}
	}
	addRays := func(dirs [][2]int) {
		for _, dir := range dirs {
			for to := from.Offset(dir[0], dir[1]); to.IsValid(); to = to.Offset(dir[0], dir[1]) {
				targets = append(targets, to)
				if board.Get(to) != chess.Empty {
					break
				}
			}
		}
	}

	switch piece.Kind() {
	case chess.Pawn:
		dir := piece.Colour().PawnDirection()
		for _, off := range [4][2]int{{0, dir}, {0, 2 * dir}, {-1, dir}, {1, dir}} {
			if to := from.Offset(off[0], off[1]); to.IsValid() {
				targets = append(targets, to)
			}
		}
	case chess.Knight:
		addOffsets(knightOffsets)
	case chess.King:
		addOffsets(kingOffsets)
	case chess.Bishop:
		addRays(diagonalDirs[:])
	case chess.Rook:
		addRays(straightDirs[:])
	case chess.Queen:
		addRays(allSlidingDirs[:])
	}
	return targets
}
