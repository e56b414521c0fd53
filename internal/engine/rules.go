package engine

import (
	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/config"
)

// Rules holds the optional rules a game can switch off.
type Rules struct {
	EnPassant           bool
	FiftyMoves          bool
	ThreefoldRepetition bool
}

// DefaultRules enables every optional rule.
func DefaultRules() Rules {
	return Rules{EnPassant: true, FiftyMoves: true, ThreefoldRepetition: true}
}

// RulesFromSettings extracts the rule switches of the init settings.
func RulesFromSettings(s config.GameSettings) Rules {
	return Rules{
		EnPassant:           s.IsEnPassantRuleEnabled,
		FiftyMoves:          s.IsFiftyMovesRuleEnabled,
		ThreefoldRepetition: s.IsThreefoldRepetitionRuleEnabled,
	}
}

// Validator decides whether a move satisfies the movement rule of its piece.
// It borrows the board for the duration of a query and ignores whether the
// move leaves the mover's own king attacked.
type Validator struct {
	board *chess.Board
	rules Rules
}

// NewValidator wraps a board for legality queries.
func NewValidator(board *chess.Board, rules Rules) Validator {
	return Validator{board: board, rules: rules}
}

// CanMove reports whether m obeys the movement rules of the moving piece.
// Two-square king moves are castling and always return false here; they
// are resolved by ResolveCastling.
func (v Validator) CanMove(m chess.MoveDescriptor) bool {
	return v.canMoveFrom(m) && v.canMoveTo(m) && v.canPieceMove(m)
}

// canMoveFrom checks the source square holds the named piece of the side to move.
func (v Validator) canMoveFrom(m chess.MoveDescriptor) bool {
	return m.From.IsValid() &&
		m.Piece != chess.Empty &&
		v.board.Get(m.From) == m.Piece &&
		m.Piece.Colour() == v.board.ToMove
}

// canMoveTo checks the target is on the board and holds neither a friendly
// piece nor a king.
func (v Validator) canMoveTo(m chess.MoveDescriptor) bool {
	if !m.To.IsValid() || m.To == m.From {
		return false
	}
	target := v.board.Get(m.To)
	if target.Kind() == chess.King {
		return false
	}
	return target == chess.Empty || target.Colour() != m.Piece.Colour()
}

// canPieceMove dispatches to the movement rule of the piece kind.
func (v Validator) canPieceMove(m chess.MoveDescriptor) bool {
	if m.Piece.Kind() != chess.Pawn && m.Promotion != chess.Empty {
		return false
	}

	dx, dy := abs(m.DeltaX()), abs(m.DeltaY())

	switch m.Piece.Kind() {
	case chess.Pawn:
		return v.canPawnMove(m)

	case chess.Knight:
		return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)

	case chess.Bishop:
		return dx == dy && isPathClear(v.board, m.From, m.To)

	case chess.Rook:
		return (dx == 0 || dy == 0) && isPathClear(v.board, m.From, m.To)

	case chess.Queen:
		return (dx == dy || dx == 0 || dy == 0) && isPathClear(v.board, m.From, m.To)

	case chess.King:
		return dx <= 1 && dy <= 1
	}

	return false
}

// canPawnMove checks pushes, double pushes, captures, en passant and promotion.
func (v Validator) canPawnMove(m chess.MoveDescriptor) bool {
	colour := m.Piece.Colour()
	if !v.isPromotionValid(m) {
		return false
	}

	dir := colour.PawnDirection()
	dx, dy := m.DeltaX(), m.DeltaY()
	target := v.board.Get(m.To)

	switch {
	case dx == 0 && dy == dir:
		return target == chess.Empty

	case dx == 0 && dy == 2*dir:
		startRank := colour.HomeRank() + dir
		return m.From.Y == startRank &&
			v.board.Get(m.From.Offset(0, dir)) == chess.Empty &&
			target == chess.Empty

	case abs(dx) == 1 && dy == dir:
		if target != chess.Empty {
			return target.Colour() != colour
		}
		return v.isEnPassantCapture(m)
	}
	return false
}

// isPromotionValid requires a promotion exactly when the pawn reaches the
// last rank, to a queen, rook, bishop or knight of the mover's colour.
func (v Validator) isPromotionValid(m chess.MoveDescriptor) bool {
	lastRank := m.Piece.Colour().Opposite().HomeRank()
	if m.To.Y != lastRank {
		return m.Promotion == chess.Empty
	}
	return m.Promotion != chess.Empty &&
		m.Promotion.Colour() == m.Piece.Colour() &&
		chess.IsPromotionKind(m.Promotion.Kind())
}

// isEnPassantCapture checks a diagonal pawn step onto the en-passant target.
func (v Validator) isEnPassantCapture(m chess.MoveDescriptor) bool {
	if !v.rules.EnPassant || m.To != v.board.EnPassant {
		return false
	}
	victim := v.board.Get(chess.Sq(m.To.X, m.From.Y))
	return victim == chess.MakePiece(m.Piece.Colour().Opposite(), chess.Pawn)
}

// isPathClear checks that every square strictly between from and to is
// empty. The squares must share a rank, file or diagonal.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	dx := sign(to.X - from.X)
	dy := sign(to.Y - from.Y)

	for cur := from.Offset(dx, dy); cur != to; cur = cur.Offset(dx, dy) {
		if !cur.IsValid() {
			return false
		}
		if board.Get(cur) != chess.Empty {
			return false
		}
	}
	return true
}
