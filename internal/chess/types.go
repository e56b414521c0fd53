// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	NoColour Colour = iota
	White
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Opposite returns the opposite colour. NoColour has no opposite.
func (c Colour) Opposite() Colour {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoColour
	}
}

// Sign returns +1 for White, -1 for Black and 0 otherwise.
// Scores are always expressed from White's point of view.
func (c Colour) Sign() int {
	switch c {
	case White:
		return 1
	case Black:
		return -1
	default:
		return 0
	}
}

// PawnDirection returns the rank step of a pawn of this colour.
func (c Colour) PawnDirection() int {
	if c == Black {
		return -1
	}
	return 1
}

// HomeRank returns the rank index of the back rank of this colour.
func (c Colour) HomeRank() int {
	if c == Black {
		return BoardSize - 1
	}
	return 0
}

// PieceKind is the colourless type of a piece.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Letter returns the upper case FEN letter of the kind.
func (k PieceKind) Letter() byte {
	switch k {
	case Pawn:
		return 'P'
	case Knight:
		return 'N'
	case Bishop:
		return 'B'
	case Rook:
		return 'R'
	case Queen:
		return 'Q'
	case King:
		return 'K'
	default:
		return '.'
	}
}

// Value returns the material value of the kind in centipawns.
// The king carries no material value; its loss is expressed by mate scores.
func (k PieceKind) Value() int {
	switch k {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 325
	case Rook:
		return 500
	case Queen:
		return 975
	default:
		return 0
	}
}

// Piece is a coloured piece: the kind in the high bits and the colour in
// the low two bits. The zero value is Empty.
type Piece uint8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 2

// Empty is the piece value of an empty square.
const Empty Piece = 0

const (
	WhitePawn   = Piece(Pawn)<<PieceShift | Piece(White)
	WhiteKnight = Piece(Knight)<<PieceShift | Piece(White)
	WhiteBishop = Piece(Bishop)<<PieceShift | Piece(White)
	WhiteRook   = Piece(Rook)<<PieceShift | Piece(White)
	WhiteQueen  = Piece(Queen)<<PieceShift | Piece(White)
	WhiteKing   = Piece(King)<<PieceShift | Piece(White)
	BlackPawn   = Piece(Pawn)<<PieceShift | Piece(Black)
	BlackKnight = Piece(Knight)<<PieceShift | Piece(Black)
	BlackBishop = Piece(Bishop)<<PieceShift | Piece(Black)
	BlackRook   = Piece(Rook)<<PieceShift | Piece(Black)
	BlackQueen  = Piece(Queen)<<PieceShift | Piece(Black)
	BlackKing   = Piece(King)<<PieceShift | Piece(Black)
)

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind PieceKind) Piece {
	if colour == NoColour || kind == NoKind {
		return Empty
	}
	return Piece(kind)<<PieceShift | Piece(colour)
}

// W creates a white piece.
func W(kind PieceKind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind PieceKind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece kind.
func (p Piece) Kind() PieceKind {
	return PieceKind(p >> PieceShift)
}

// Colour extracts the colour of the piece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x03)
}

// IsEmpty reports whether the value denotes an empty square.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Value returns the material value of the piece.
func (p Piece) Value() int {
	return p.Kind().Value()
}

// Letter returns the FEN letter of the piece: upper case for White, lower
// case for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p == Empty {
		return "Empty"
	}
	return p.Colour().String() + " " + p.Kind().String()
}

// PieceFromLetter converts a FEN letter to a piece. Case encodes colour.
func PieceFromLetter(c byte) (Piece, bool) {
	switch c {
	case 'P':
		return WhitePawn, true
	case 'N':
		return WhiteKnight, true
	case 'B':
		return WhiteBishop, true
	case 'R':
		return WhiteRook, true
	case 'Q':
		return WhiteQueen, true
	case 'K':
		return WhiteKing, true
	case 'p':
		return BlackPawn, true
	case 'n':
		return BlackKnight, true
	case 'b':
		return BlackBishop, true
	case 'r':
		return BlackRook, true
	case 'q':
		return BlackQueen, true
	case 'k':
		return BlackKing, true
	default:
		return Empty, false
	}
}

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = [...]PieceKind{Queen, Rook, Bishop, Knight}

// IsPromotionKind reports whether a pawn may promote to k.
func IsPromotionKind(k PieceKind) bool {
	switch k {
	case Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// BoardSize is the number of files and ranks.
const BoardSize = 8

// NumSquares is the number of squares on the board.
const NumSquares = BoardSize * BoardSize

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
