// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = chess.InitialFEN

// fenFields is the number of space separated FEN fields.
const fenFields = 6

// ParseFEN creates a board from a FEN string. Parsing is strict: all six
// fields must be present and well formed, each side must have exactly
// one king and the side that just moved must not be left in check. Failures are *errors.FENError values wrapping errors.ErrInvalidFEN.
func ParseFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, fenError(fen, "field count", strconv.Itoa(len(parts)))
	}

	board := chess.NewBoard()

	if err := parsePiecePositions(board, fen, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(board, fen, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, fen, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, fen, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, fen, parts[4], parts[5]); err != nil {
		return nil, err
	}
	if IsInCheck(board, board.ToMove.Opposite()) {
		return nil, fenError(fen, "side not to move in check", parts[1])
	}

	return board, nil
}

func fenError(fen, field, got string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, FEN: fen, Field: field, Got: got}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, fen, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "rank count", strconv.Itoa(len(ranks)))
	}

	for i, rankText := range ranks {
		y := chess.BoardSize - 1 - i
		x := 0
		for j := 0; j < len(rankText); j++ {
			c := rankText[j]
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				if x > chess.BoardSize {
					return fenError(fen, "rank", rankText)
				}
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return fenError(fen, "piece letter", string(c))
			}
			if x >= chess.BoardSize {
				return fenError(fen, "rank", rankText)
			}
			board.Set(chess.Sq(x, y), piece)
			x++
		}
		if x != chess.BoardSize {
			return fenError(fen, "rank", rankText)
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.MakePiece(colour, chess.King)); n != 1 {
			return fenError(fen, colour.String()+" king count", strconv.Itoa(n))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, fen, side string) error {
	switch side {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError(fen, "side to move", side)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(board *chess.Board, fen, castling string) error {
	board.Castling = chess.CastlingRights{}
	if castling == "-" {
		return nil
	}

	seen := make(map[rune]bool, 4)
	for _, c := range castling {
		if seen[c] {
			return fenError(fen, "castling", castling)
		}
		seen[c] = true
		switch c {
		case 'K':
			board.Castling.WhiteKingside = true
		case 'Q':
			board.Castling.WhiteQueenside = true
		case 'k':
			board.Castling.BlackKingside = true
		case 'q':
			board.Castling.BlackQueenside = true
		default:
			return fenError(fen, "castling", castling)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, fen, target string) error {
	board.EnPassant = chess.NoSquare
	if target == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(target)
	if err != nil || (sq.Y != 2 && sq.Y != 5) {
		return fenError(fen, "en passant", target)
	}
	board.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, fen, halfmove, fullmove string) error {
	half, err := strconv.Atoi(halfmove)
	if err != nil || half < 0 {
		return fenError(fen, "halfmove clock", halfmove)
	}
	full, err := strconv.Atoi(fullmove)
	if err != nil || full < 1 {
		return fenError(fen, "fullmove number", fullmove)
	}
	board.HalfmoveClock = half
	board.MoveNumber = full
	return nil
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for y := chess.BoardSize - 1; y >= 0; y-- {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			piece := board.Get(chess.Sq(x, y))
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	start := sb.Len()
	if board.Castling.WhiteKingside {
		sb.WriteByte('K')
	}
	if board.Castling.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if board.Castling.BlackKingside {
		sb.WriteByte('k')
	}
	if board.Castling.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == start {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}
