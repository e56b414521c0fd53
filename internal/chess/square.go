package chess

import (
	"fmt"

	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
)

// Square is a board coordinate: X is the file (0 = a), Y the rank (0 = 1).
type Square struct {
	X, Y int
}

// NoSquare is the invalid square, used where a square is absent.
var NoSquare = Square{X: -1, Y: -1}

// Sq is shorthand for Square{X: x, Y: y}.
func Sq(x, y int) Square {
	return Square{X: x, Y: y}
}

// IsValid reports whether both coordinates are on the board.
func (s Square) IsValid() bool {
	return s.X >= 0 && s.X < BoardSize && s.Y >= 0 && s.Y < BoardSize
}

// Index returns the row-major index of the square (rank first).
func (s Square) Index() int {
	return s.Y*BoardSize + s.X
}

// SquareAt returns the square with the given row-major index.
func SquareAt(index int) Square {
	return Square{X: index % BoardSize, Y: index / BoardSize}
}

// Offset returns the square shifted by (dx, dy). The result may be invalid.
func (s Square) Offset(dx, dy int) Square {
	return Square{X: s.X + dx, Y: s.Y + dy}
}

// IsLight reports whether the square is a light square (h1 is light).
func (s Square) IsLight() bool {
	return (s.X+s.Y)%2 == 1
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + s.X), byte('1' + s.Y)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	sq := Square{X: int(name[0]) - 'a', Y: int(name[1]) - '1'}
	if !sq.IsValid() {
		return NoSquare, fmt.Errorf("square %q: %w", name, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// AllSquares holds every square in row-major order: rank 1 to 8, file a to h.
var AllSquares = func() [NumSquares]Square {
	var squares [NumSquares]Square
	for i := range squares {
		squares[i] = SquareAt(i)
	}
	return squares
}()
