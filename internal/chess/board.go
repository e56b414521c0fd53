package chess

// CastlingRights holds the four independent castling flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// For returns the flag for the given colour and wing.
func (c CastlingRights) For(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return c.WhiteKingside
	case colour == White:
		return c.WhiteQueenside
	case colour == Black && kingside:
		return c.BlackKingside
	case colour == Black:
		return c.BlackQueenside
	}
	return false
}

// Set assigns the flag for the given colour and wing.
func (c *CastlingRights) Set(colour Colour, kingside, allowed bool) {
	switch {
	case colour == White && kingside:
		c.WhiteKingside = allowed
	case colour == White:
		c.WhiteQueenside = allowed
	case colour == Black && kingside:
		c.BlackKingside = allowed
	case colour == Black:
		c.BlackQueenside = allowed
	}
}

// Clear removes both rights of a colour.
func (c *CastlingRights) Clear(colour Colour) {
	c.Set(colour, true, false)
	c.Set(colour, false, false)
}

// Any reports whether the colour keeps at least one right.
func (c CastlingRights) Any(colour Colour) bool {
	return c.For(colour, true) || c.For(colour, false)
}

// SquareAnnotation is the evaluator's per-square bookkeeping.
type SquareAnnotation struct {
	AttackedValue int // sum of enemy action values attacking the square
	DefendedValue int // sum of friendly action values defending the square
	AttackedCount int
	DefendedCount int
	ValidMoves    int // legal destinations of the piece standing here
}

// Annotations is one evaluation pass worth of square annotations.
type Annotations [NumSquares]SquareAnnotation

// Board represents a chess position. Board is a value type: assigning it
// copies the whole position, which is how moves are simulated.
type Board struct {
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	Castling CastlingRights

	// Target square of an en-passant capture, NoSquare when none.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number.
	MoveNumber int

	// Whether each side has already castled in this game.
	WhiteCastled bool
	BlackCastled bool

	// Score is written only by the evaluator.
	Score int

	annotations *Annotations
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	return &Board{
		ToMove:     White,
		EnPassant:  NoSquare,
		MoveNumber: 1,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	*b = Board{}

	backRank := []PieceKind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x, kind := range backRank {
		b.Set(Sq(x, 0), W(kind))
		b.Set(Sq(x, 1), W(Pawn))
		b.Set(Sq(x, 6), B(Pawn))
		b.Set(Sq(x, 7), B(kind))
	}

	b.Castling = CastlingRights{true, true, true, true}
	b.ToMove = White
	b.EnPassant = NoSquare
	b.MoveNumber = 1
}

// Get returns the piece at the given square, Empty when off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.IsValid() {
		return Empty
	}
	return b.Squares[sq.Index()]
}

// Set places a piece at the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.IsValid() {
		b.Squares[sq.Index()] = piece
	}
}

// Copy creates a deep copy of the board without evaluation annotations.
func (b *Board) Copy() *Board {
	newBoard := *b
	newBoard.annotations = nil
	return &newBoard
}

// PieceOnSquare couples a piece with the square it stands on.
type PieceOnSquare struct {
	Piece  Piece
	Square Square
}

// EachPiece calls fn for every occupied square in row-major order, rank 1
// first. Iteration stops early when fn returns false.
func (b *Board) EachPiece(fn func(PieceOnSquare) bool) {
	for i, piece := range b.Squares {
		if piece == Empty {
			continue
		}
		if !fn(PieceOnSquare{Piece: piece, Square: SquareAt(i)}) {
			return
		}
	}
}

// Pieces returns all occupied squares in the order of EachPiece.
func (b *Board) Pieces() []PieceOnSquare {
	pieces := make([]PieceOnSquare, 0, 32)
	b.EachPiece(func(p PieceOnSquare) bool {
		pieces = append(pieces, p)
		return true
	})
	return pieces
}

// KingSquare finds the king of the given colour, NoSquare if there is none.
func (b *Board) KingSquare(colour Colour) Square {
	king := MakePiece(colour, King)
	for i, piece := range b.Squares {
		if piece == king {
			return SquareAt(i)
		}
	}
	return NoSquare
}

// Count returns how many times the piece appears on the board.
func (b *Board) Count(piece Piece) int {
	n := 0
	for _, p := range b.Squares {
		if p == piece {
			n++
		}
	}
	return n
}

// PieceCount returns the number of occupied squares.
func (b *Board) PieceCount() int {
	n := 0
	for _, p := range b.Squares {
		if p != Empty {
			n++
		}
	}
	return n
}

// HasCastled reports whether the colour has castled in this game.
func (b *Board) HasCastled(colour Colour) bool {
	if colour == White {
		return b.WhiteCastled
	}
	return b.BlackCastled
}

// SetCastled records that the colour has castled.
func (b *Board) SetCastled(colour Colour) {
	if colour == White {
		b.WhiteCastled = true
	} else {
		b.BlackCastled = true
	}
}

// Annotate starts a fresh evaluation pass and returns its annotations.
func (b *Board) Annotate() *Annotations {
	b.annotations = &Annotations{}
	return b.annotations
}

// Annotation returns the evaluation annotation of a square. It is the zero
// value when the board has not been evaluated since its last move.
func (b *Board) Annotation(sq Square) SquareAnnotation {
	if b.annotations == nil || !sq.IsValid() {
		return SquareAnnotation{}
	}
	return b.annotations[sq.Index()]
}

// ClearAnnotations drops the transient evaluation state.
func (b *Board) ClearAnnotations() {
	b.annotations = nil
}
