package engine

import "github.com/Tubbz-alt/ChessGame-3/internal/chess"

// CastlingState is the outcome of resolving a two-square king move.
type CastlingState int

const (
	// CastlingNotApplicable means the move is not a castling attempt.
	CastlingNotApplicable CastlingState = iota
	// CastlingBlockedByRights means the side has lost the right to castle there.
	CastlingBlockedByRights
	// CastlingBlockedByOccupancy means a square between king and rook is occupied.
	CastlingBlockedByOccupancy
	// CastlingBlockedByCheck means the king is in check or would cross or
	// land on an attacked square.
	CastlingBlockedByCheck
	// CastlingLegal means the castle may be played.
	CastlingLegal
)

func (s CastlingState) String() string {
	switch s {
	case CastlingNotApplicable:
		return "not applicable"
	case CastlingBlockedByRights:
		return "blocked by rights"
	case CastlingBlockedByOccupancy:
		return "blocked by occupancy"
	case CastlingBlockedByCheck:
		return "blocked by check"
	case CastlingLegal:
		return "legal"
	default:
		return "unknown"
	}
}

// ResolveCastling decides whether a two-square king move is a legal castle.
// The checks run in order and stop at the first failure: rights, king not
// in check, empty squares between king and rook, then the king's transit
// and landing squares are not attacked.
func ResolveCastling(board *chess.Board, m chess.MoveDescriptor) CastlingState {
	colour := m.Colour()
	rank := colour.HomeRank()
	home := chess.Sq(4, rank)

	if !m.IsCastling() || m.Promotion != chess.Empty ||
		m.From != home || board.Get(home) != m.Piece || colour != board.ToMove {
		return CastlingNotApplicable
	}

	kingside := m.To.X > m.From.X
	rookFrom, _ := castlingRookSquares(rank, kingside)
	if !board.Castling.For(colour, kingside) || board.Get(rookFrom) != chess.MakePiece(colour, chess.Rook) {
		return CastlingBlockedByRights
	}

	if IsInCheck(board, colour) {
		return CastlingBlockedByCheck
	}

	if !isPathClear(board, home, rookFrom) {
		return CastlingBlockedByOccupancy
	}

	// Walk the king one step at a time on a scratch board.
	step := sign(m.DeltaX())
	scratch := *board
	scratch.ClearAnnotations()
	for cur := home; cur != m.To; {
		next := cur.Offset(step, 0)
		scratch.Set(next, m.Piece)
		scratch.Set(cur, chess.Empty)
		if IsInCheck(&scratch, colour) {
			return CastlingBlockedByCheck
		}
		cur = next
	}

	return CastlingLegal
}

// castlingTargets returns the king destinations that are legal castles.
func castlingTargets(board *chess.Board, from chess.Square) []chess.Square {
	king := board.Get(from)
	if king.Kind() != chess.King || king.Colour() != board.ToMove {
		return nil
	}
	var targets []chess.Square
	for _, dx := range [2]int{2, -2} {
		to := from.Offset(dx, 0)
		m := chess.MoveDescriptor{Piece: king, From: from, To: to}
		if ResolveCastling(board, m) == CastlingLegal {
			targets = append(targets, to)
		}
	}
	return targets
}
