package chess

import (
	"testing"

	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		text string
		want MoveDescriptor
	}{
		{"Pe2e4", MoveDescriptor{Piece: WhitePawn, From: Sq(4, 1), To: Sq(4, 3)}},
		{"Ng1f3", MoveDescriptor{Piece: WhiteKnight, From: Sq(6, 0), To: Sq(5, 2)}},
		{"pe7e5", MoveDescriptor{Piece: BlackPawn, From: Sq(4, 6), To: Sq(4, 4)}},
		{"Pe7e8Q", MoveDescriptor{Piece: WhitePawn, From: Sq(4, 6), To: Sq(4, 7), Promotion: WhiteQueen}},
		{"Pe7e8n", MoveDescriptor{Piece: WhitePawn, From: Sq(4, 6), To: Sq(4, 7), Promotion: WhiteKnight}},
		{"pa2a1r", MoveDescriptor{Piece: BlackPawn, From: Sq(0, 1), To: Sq(0, 0), Promotion: BlackRook}},
		{" Ke1g1 ", MoveDescriptor{Piece: WhiteKing, From: Sq(4, 0), To: Sq(6, 0)}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseMove(tt.text)
			if err != nil {
				t.Fatalf("ParseMove(%q) error: %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseMove(%q) = %+v; want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseMoveErrors(t *testing.T) {
	for _, text := range []string{"", "e2e4", "Xe2e4", "Pe2e9", "Pz2e4", "Pe7e8K", "Pe7e8P", "Pe7e8Qx"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseMove(text)
			if !errors.Is(err, errors.ErrInvalidMove) {
				t.Fatalf("ParseMove(%q) error = %v; want ErrInvalidMove", text, err)
			}
			var moveErr *errors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("ParseMove(%q) error should be a *MoveError", text)
			}
			if moveErr.MoveText != text || moveErr.Reason == "" {
				t.Errorf("ParseMove(%q) error = %+v; want the text and a reason", text, moveErr)
			}
		})
	}
}

func TestMoveDescriptorString(t *testing.T) {
	for _, text := range []string{"Pe2e4", "Pe7e8Q", "pb2a1n", "Ke1c1", "qd8h4"} {
		m, err := ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", text, err)
		}
		if got := m.String(); got != text {
			t.Errorf("String() = %q; want %q", got, text)
		}
	}

	m := MoveDescriptor{Piece: BlackPawn, From: Sq(6, 1), To: Sq(6, 0), Promotion: BlackQueen}
	if got := m.UCI(); got != "g2g1q" {
		t.Errorf("UCI() = %q; want g2g1q", got)
	}
}

func TestMoveDescriptorHelpers(t *testing.T) {
	castle := NewMoveDescriptor(PieceOnSquare{Piece: WhiteKing, Square: Sq(4, 0)}, Sq(2, 0))
	if !castle.IsCastling() {
		t.Error("Ke1c1 should be a castling move")
	}
	step := NewMoveDescriptor(PieceOnSquare{Piece: WhiteKing, Square: Sq(4, 0)}, Sq(5, 0))
	if step.IsCastling() {
		t.Error("Ke1f1 should not be a castling move")
	}
	rook := NewMoveDescriptor(PieceOnSquare{Piece: WhiteRook, Square: Sq(4, 0)}, Sq(6, 0))
	if rook.IsCastling() {
		t.Error("a rook move is never castling")
	}

	promo := NewMoveDescriptor(PieceOnSquare{Piece: BlackPawn, Square: Sq(1, 1)}, Sq(1, 0)).WithPromotion(Knight)
	if promo.Promotion != BlackKnight {
		t.Errorf("WithPromotion(Knight) = %v; want black knight", promo.Promotion)
	}
	if promo.DeltaY() != -1 || promo.DeltaX() != 0 || promo.Colour() != Black {
		t.Errorf("helpers on %v: dx=%d dy=%d colour=%v", promo, promo.DeltaX(), promo.DeltaY(), promo.Colour())
	}
}
