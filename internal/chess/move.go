package chess

import (
	"fmt"
	"strings"

	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
)

// MoveDescriptor is a parsed move: the moving piece, its source and target
// squares and an optional promotion piece. It holds no board reference.
type MoveDescriptor struct {
	Piece     Piece
	From      Square
	To        Square
	Promotion Piece
}

// MinMoveLen and MaxMoveLen bound the compact move text, e.g. "Pe2e4", "Pe7e8Q".
const (
	MinMoveLen = 5
	MaxMoveLen = 6
)

// ParseMove parses the compact move text <Piece><from><to>[promotion].
// The case of the piece letter encodes the colour; the promotion letter is
// taken in the mover's colour whatever its case.
func ParseMove(text string) (MoveDescriptor, error) {
	text = strings.TrimSpace(text)
	if len(text) < MinMoveLen || len(text) > MaxMoveLen {
		return MoveDescriptor{}, moveError(text, "expected <piece><from><to>[promotion]")
	}

	piece, ok := PieceFromLetter(text[0])
	if !ok {
		return MoveDescriptor{}, moveError(text, fmt.Sprintf("unknown piece letter %q", text[0]))
	}
	from, err := ParseSquare(text[1:3])
	if err != nil {
		return MoveDescriptor{}, moveError(text, "bad source square")
	}
	to, err := ParseSquare(text[3:5])
	if err != nil {
		return MoveDescriptor{}, moveError(text, "bad target square")
	}

	m := MoveDescriptor{Piece: piece, From: from, To: to}
	if len(text) == MaxMoveLen {
		promo, ok := PieceFromLetter(text[5])
		if !ok || !IsPromotionKind(promo.Kind()) {
			return MoveDescriptor{}, moveError(text, fmt.Sprintf("bad promotion letter %q", text[5]))
		}
		m.Promotion = MakePiece(piece.Colour(), promo.Kind())
	}
	return m, nil
}

func moveError(text, reason string) error {
	return &errors.MoveError{Err: errors.ErrInvalidMove, MoveText: text, Reason: reason}
}

// NewMoveDescriptor builds a move of the piece on a square to a target square.
func NewMoveDescriptor(from PieceOnSquare, to Square) MoveDescriptor {
	return MoveDescriptor{Piece: from.Piece, From: from.Square, To: to}
}

// WithPromotion returns a copy of the move promoting to the given kind.
func (m MoveDescriptor) WithPromotion(kind PieceKind) MoveDescriptor {
	m.Promotion = MakePiece(m.Piece.Colour(), kind)
	return m
}

// Colour returns the colour of the moving piece.
func (m MoveDescriptor) Colour() Colour {
	return m.Piece.Colour()
}

// IsCastling reports whether the move is a two-square king step along its rank.
func (m MoveDescriptor) IsCastling() bool {
	if m.Piece.Kind() != King || m.From.Y != m.To.Y {
		return false
	}
	dx := m.To.X - m.From.X
	return dx == 2 || dx == -2
}

// DeltaX returns the file distance travelled.
func (m MoveDescriptor) DeltaX() int {
	return m.To.X - m.From.X
}

// DeltaY returns the rank distance travelled.
func (m MoveDescriptor) DeltaY() int {
	return m.To.Y - m.From.Y
}

// String returns the compact move text, the inverse of ParseMove.
func (m MoveDescriptor) String() string {
	var sb strings.Builder
	sb.WriteByte(m.Piece.Letter())
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Promotion != Empty {
		sb.WriteByte(m.Promotion.Letter())
	}
	return sb.String()
}

// UCI returns the move in long algebraic notation, e.g. "e7e8q".
func (m MoveDescriptor) UCI() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(m.Promotion.Kind().Letter() + ('a' - 'A'))
	}
	return s
}
