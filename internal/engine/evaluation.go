package engine

import "github.com/Tubbz-alt/ChessGame-3/internal/chess"

// Score bounds. Mate scores sit outside the range any positional
// accumulation is clamped to.
const (
	MateScore = 32767
	MaxScore  = MateScore - 1

	// EndGamePieceCount is the piece count below which the end phase starts.
	EndGamePieceCount = 10

	checkBonus        = 75
	checkEndGameBonus = 10
	castledBonus      = 40
	tempoBonus        = 10
	hangingMultiplier = 10
)

// isolatedPawnPenalty is indexed by file.
var isolatedPawnPenalty = [chess.BoardSize]int{12, 14, 16, 20, 20, 16, 14, 12}

// EvalStatus is the game state the evaluator needs besides the board.
type EvalStatus struct {
	CheckTo          chess.Colour
	MateTo           chess.Colour
	IsStaleMate      bool
	IsEndOfGamePhase bool
	Repetitions      int
	Rules            Rules
}

// Evaluation is the result of one evaluator pass.
type Evaluation struct {
	Score                  int
	IsStaleMate            bool
	IsInsufficientMaterial bool
	IsEndOfGamePhase       bool
}

// Evaluate scores the position, positive favouring White. It writes the
// score and the per-square annotations of this pass onto the board.
func Evaluate(board *chess.Board, s EvalStatus) Evaluation {
	result := Evaluation{
		IsStaleMate:      s.IsStaleMate,
		IsEndOfGamePhase: board.PieceCount() < EndGamePieceCount,
	}
	board.Score = 0

	if s.IsStaleMate ||
		(s.Rules.ThreefoldRepetition && s.Repetitions >= 3) ||
		(s.Rules.FiftyMoves && board.HalfmoveClock/2 >= 50) {
		return result
	}

	switch s.MateTo {
	case chess.White:
		board.Score = -MateScore
		result.Score = board.Score
		return result
	case chess.Black:
		board.Score = MateScore
		result.Score = board.Score
		return result
	}

	score := 0
	if s.CheckTo != chess.NoColour {
		penalty := checkBonus
		if s.IsEndOfGamePhase {
			penalty += checkEndGameBonus
		}
		score -= s.CheckTo.Sign() * penalty
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if board.HasCastled(colour) {
			score += colour.Sign() * castledBonus
		}
	}
	score += board.ToMove.Sign() * tempoBonus

	annotate(board, s.Rules)
	pass := pieceScorer{board: board, endGame: s.IsEndOfGamePhase}
	board.EachPiece(func(p chess.PieceOnSquare) bool {
		score += p.Piece.Colour().Sign() * pass.score(p)
		return true
	})
	score += pass.pawnStructure()

	if HasInsufficientMaterial(board) {
		result.IsStaleMate = true
		result.IsInsufficientMaterial = true
		return result
	}

	board.Score = clamp(score, -MaxScore, MaxScore)
	result.Score = board.Score
	return result
}

// actionValue is the weight a piece carries when it attacks or defends.
// Cheap attackers count more.
func actionValue(kind chess.PieceKind) int {
	switch kind {
	case chess.Pawn:
		return 6
	case chess.Knight, chess.Bishop:
		return 3
	case chess.Rook:
		return 2
	case chess.Queen, chess.King:
		return 1
	default:
		return 0
	}
}

// annotate fills the attacked, defended and mobility annotations of every
// occupied square. Mobility is counted for both colours by letting the side
// not to move play on a scratch board.
func annotate(board *chess.Board, rules Rules) {
	ann := board.Annotate()
	pieces := board.Pieces()

	for _, attacker := range pieces {
		weight := actionValue(attacker.Piece.Kind())
		for _, target := range pieces {
			if !attacks(board, attacker.Square, target.Square) {
				continue
			}
			a := &ann[target.Square.Index()]
			if attacker.Piece.Colour() == target.Piece.Colour() {
				a.DefendedValue += weight
				a.DefendedCount++
			} else {
				a.AttackedValue += weight
				a.AttackedCount++
			}
		}
	}

	flipped := *board
	flipped.ClearAnnotations()
	flipped.ToMove = board.ToMove.Opposite()
	flipped.EnPassant = chess.NoSquare

	for _, p := range pieces {
		view := board
		if p.Piece.Colour() != board.ToMove {
			view = &flipped
		}
		ann[p.Square.Index()].ValidMoves = len(LegalDestinations(view, rules, p.Square))
	}
}

// pieceScorer carries the per-colour counters of one evaluation pass.
type pieceScorer struct {
	board   *chess.Board
	endGame bool

	pawnFiles [3][chess.BoardSize]int // indexed by colour then file
	bishops   [3]int
}

// score returns the value of a single piece from its owner's point of view.
func (ps *pieceScorer) score(p chess.PieceOnSquare) int {
	a := ps.board.Annotation(p.Square)
	colour := p.Piece.Colour()

	score := p.Piece.Value() + a.DefendedValue - a.AttackedValue
	if a.DefendedValue < a.AttackedValue {
		score -= (a.AttackedValue - a.DefendedValue) * hangingMultiplier
	}
	score += a.ValidMoves

	switch p.Piece.Kind() {
	case chess.Pawn:
		score += ps.pawn(p, a)

	case chess.Knight:
		if ps.endGame {
			score -= 10
		}

	case chess.Bishop:
		ps.bishops[colour]++
		if ps.bishops[colour] >= 2 {
			score += 10
		}
		if ps.endGame {
			score += 10
		}

	case chess.Rook:
		if !ps.board.HasCastled(colour) && !ps.onCastlingCorner(p) {
			score -= 10
		}

	case chess.King:
		if a.ValidMoves < 2 {
			score -= 5
		}
		if !ps.board.HasCastled(colour) && !ps.board.Castling.Any(colour) {
			score -= 30
		}
	}

	return score + pieceSquareScore(p.Piece, p.Square, ps.endGame)
}

// onCastlingCorner reports whether a rook still stands on a home corner
// whose castling right is intact.
func (ps *pieceScorer) onCastlingCorner(p chess.PieceOnSquare) bool {
	colour := p.Piece.Colour()
	if p.Square.Y != colour.HomeRank() {
		return false
	}
	switch p.Square.X {
	case 0:
		return ps.board.Castling.For(colour, false)
	case 7:
		return ps.board.Castling.For(colour, true)
	}
	return false
}

// pawn scores edge and doubled pawns and feeds the per-file counters used
// by pawnStructure.
func (ps *pieceScorer) pawn(p chess.PieceOnSquare, a chess.SquareAnnotation) int {
	colour := p.Piece.Colour()
	file := p.Square.X
	files := &ps.pawnFiles[colour]
	score := 0

	if file == 0 || file == chess.BoardSize-1 {
		score -= 15
	}
	if files[file] > 0 {
		score -= 16
	}

	// Rank counted from the owner's side, 0 being the home rank.
	relRank := p.Square.Y
	if colour == chess.Black {
		relRank = chess.BoardSize - 1 - p.Square.Y
	}
	if a.AttackedValue == 0 {
		switch relRank {
		case 6:
			files[file] += 200
			if a.DefendedValue != 0 {
				files[file] += 50
			}
		case 5:
			files[file] += 100
			if a.DefendedValue != 0 {
				files[file] += 25
			}
		}
	}
	files[file] += 10

	return score
}

// pawnStructure scores isolated and passed pawns from the per-file
// counters, positive favouring White.
func (ps *pieceScorer) pawnStructure() int {
	score := 0
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		own := &ps.pawnFiles[colour]
		enemy := &ps.pawnFiles[colour.Opposite()]
		for file := 0; file < chess.BoardSize; file++ {
			if own[file] == 0 {
				continue
			}
			left := file > 0 && own[file-1] > 0
			right := file < chess.BoardSize-1 && own[file+1] > 0
			if !left && !right {
				score -= colour.Sign() * isolatedPawnPenalty[file]
			}
			if enemy[file] == 0 {
				score += colour.Sign() * own[file]
			}
		}
	}
	return score
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
