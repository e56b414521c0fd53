package engine

import (
	"context"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/config"
	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
	"github.com/Tubbz-alt/ChessGame-3/internal/hashing"
)

// ChessGame is the contract a console, server or store binds to.
type ChessGame interface {
	Fen() string
	CheckTo() chess.Colour
	MateTo() chess.Colour
	IsStaleMate() bool
	Move(move string) (*Game, error)
	GetPieceAt(x, y int) (byte, error)
	GetAllValidMovesForPieceAt(x, y int) []string
	ComputerMove() (*Game, error)
	RunPerfTest(depth int) uint64
}

var _ ChessGame = (*Game)(nil)

// Game is an immutable snapshot of a game in progress. Every accepted move
// yields a new Game; the receiver never changes, so a Game may be read from
// several goroutines at once.
type Game struct {
	board    chess.Board
	settings config.GameSettings
	rules    Rules
	fen      string

	checkTo      chess.Colour
	mateTo       chess.Colour
	staleMate    bool
	insufficient bool
	endPhase     bool
	score        int

	// Zobrist keys of every position so far, this one last.
	history     []hashing.Key
	repetitions int
}

// InitGame starts a game from a FEN with every optional rule enabled.
// An empty FEN starts from the standard position.
func InitGame(fen string) (*Game, error) {
	s := config.DefaultGameSettings()
	s.FEN = fen
	return InitGameWithSettings(s)
}

// InitGameWithSettings starts a game from an init-settings record.
func InitGameWithSettings(s config.GameSettings) (*Game, error) {
	board, err := ParseFEN(s.StartFEN())
	if err != nil {
		return nil, err
	}
	board.WhiteCastled = s.IsWhiteCastled
	board.BlackCastled = s.IsBlackCastled
	s.FEN = s.StartFEN()

	return newGame(board, s, nil, false), nil
}

// newGame wraps a board and computes its status and evaluation. The
// history slice of the parent is copied, never appended to in place.
func newGame(board *chess.Board, s config.GameSettings, parentHistory []hashing.Key, endPhase bool) *Game {
	g := &Game{
		board:    *board,
		settings: s,
		rules:    RulesFromSettings(s),
	}
	g.board.ClearAnnotations()
	g.fen = BoardToFEN(&g.board)

	key := hashing.Zobrist(&g.board)
	g.history = make([]hashing.Key, len(parentHistory), len(parentHistory)+1)
	copy(g.history, parentHistory)
	g.history = append(g.history, key)
	g.repetitions = hashing.CountRepetitions(g.history, key)

	inCheck := IsCheckTo(&g.board)
	if inCheck {
		g.checkTo = g.board.ToMove
	}
	if !HasLegalMoves(&g.board, g.rules) {
		if inCheck {
			g.mateTo = g.board.ToMove
		} else {
			g.staleMate = true
		}
	}

	scratch := g.board
	eval := Evaluate(&scratch, EvalStatus{
		CheckTo:          g.checkTo,
		MateTo:           g.mateTo,
		IsStaleMate:      g.staleMate,
		IsEndOfGamePhase: endPhase,
		Repetitions:      g.repetitions,
		Rules:            g.rules,
	})
	g.board.Score = eval.Score
	g.score = eval.Score
	g.staleMate = eval.IsStaleMate
	g.insufficient = eval.IsInsufficientMaterial
	g.endPhase = eval.IsEndOfGamePhase

	return g
}

// Move plays a move given as `<Piece><from><to>[promotion]`, e.g. "Pe2e4"
// or "pe2e1q". Text that does not parse returns an *errors.MoveError.
// An illegal move is not an error: the receiver itself is returned.
func (g *Game) Move(move string) (*Game, error) {
	m, err := chess.ParseMove(move)
	if err != nil {
		return nil, err
	}
	if g.IsOver() || !g.isLegal(m) {
		return g, nil
	}
	return newGame(ApplyMove(&g.board, m), g.settings, g.history, g.endPhase), nil
}

// isLegal runs the full legality pipeline on a parsed move.
func (g *Game) isLegal(m chess.MoveDescriptor) bool {
	if g.board.Get(m.From) != m.Piece || m.Colour() != g.board.ToMove {
		return false
	}
	if m.IsCastling() {
		return ResolveCastling(&g.board, m) == CastlingLegal
	}
	return NewValidator(&g.board, g.rules).CanMove(m) && !IsCheckAfterMove(&g.board, m)
}

// GetPieceAt returns the FEN letter of the piece on (x, y), or '.' for an
// empty square.
func (g *Game) GetPieceAt(x, y int) (byte, error) {
	sq := chess.Sq(x, y)
	if !sq.IsValid() {
		return 0, errors.ErrInvalidSquare
	}
	piece := g.board.Get(sq)
	if piece == chess.Empty {
		return '.', nil
	}
	return piece.Letter(), nil
}

// GetAllValidMovesForPieceAt returns the algebraic names of the squares the
// piece on (x, y) can legally move to.
func (g *Game) GetAllValidMovesForPieceAt(x, y int) []string {
	sq := chess.Sq(x, y)
	if !sq.IsValid() || g.IsOver() {
		return nil
	}
	dests := LegalDestinations(&g.board, g.rules, sq)
	names := make([]string, len(dests))
	for i, d := range dests {
		names[i] = d.String()
	}
	return names
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []chess.MoveDescriptor {
	if g.IsOver() {
		return nil
	}
	return LegalMoves(&g.board, g.rules)
}

// ComputerMove is reserved for a search engine.
func (g *Game) ComputerMove() (*Game, error) {
	return nil, errors.ErrNotImplemented
}

// RunPerfTest counts the positions reachable in depth plies.
func (g *Game) RunPerfTest(depth int) uint64 {
	board := g.board
	return Perft(&board, g.rules, depth)
}

// RunPerfTestParallel is RunPerfTest split across goroutines.
func (g *Game) RunPerfTestParallel(ctx context.Context, depth, workers int) (uint64, error) {
	board := g.board
	return PerftParallel(ctx, &board, g.rules, depth, workers, hashing.NewPerftCache(0))
}

// PerftDivide returns the perft count below each legal move.
func (g *Game) PerftDivide(depth int) map[string]uint64 {
	board := g.board
	return PerftDivide(&board, g.rules, depth)
}

// Fen returns the position in Forsyth-Edwards Notation.
func (g *Game) Fen() string { return g.fen }

// CheckTo returns the colour in check, or NoColour.
func (g *Game) CheckTo() chess.Colour { return g.checkTo }

// MateTo returns the colour that is checkmated, or NoColour.
func (g *Game) MateTo() chess.Colour { return g.mateTo }

// IsStaleMate reports a stalemate or a dead position.
func (g *Game) IsStaleMate() bool { return g.staleMate }

// IsInsufficientMaterial reports that neither side can mate.
func (g *Game) IsInsufficientMaterial() bool { return g.insufficient }

// IsEndOfGamePhase reports that fewer than EndGamePieceCount pieces remain.
func (g *Game) IsEndOfGamePhase() bool { return g.endPhase }

// Score returns the evaluation, positive favouring White.
func (g *Game) Score() int { return g.score }

// Repetitions returns how often the current position has occurred.
func (g *Game) Repetitions() int { return g.repetitions }

// IsDraw reports stalemate, a dead position or a draw by an enabled
// repetition or fifty-move rule.
func (g *Game) IsDraw() bool {
	return g.staleMate ||
		(g.rules.ThreefoldRepetition && g.repetitions >= 3) ||
		(g.rules.FiftyMoves && g.board.HalfmoveClock/2 >= 50)
}

// IsOver reports that no further move can be played.
func (g *Game) IsOver() bool {
	return g.mateTo != chess.NoColour || g.staleMate
}

// Ply returns the number of half-moves played since the start of the game
// according to the move counters.
func (g *Game) Ply() int {
	ply := (g.board.MoveNumber - 1) * 2
	if g.board.ToMove == chess.Black {
		ply++
	}
	return ply
}

// Board returns a copy of the position.
func (g *Game) Board() chess.Board {
	return *g.board.Copy()
}

// Settings returns the settings the game was started with.
func (g *Game) Settings() config.GameSettings { return g.settings }

// Rules returns the optional rules in force.
func (g *Game) Rules() Rules { return g.rules }
