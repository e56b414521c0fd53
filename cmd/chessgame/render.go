package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/config"
	"github.com/Tubbz-alt/ChessGame-3/internal/engine"
)

// renderBoard draws the position as ASCII, rank 8 at the top. Empty squares
// are dots.
func renderBoard(g *engine.Game, coords bool) string {
	var sb strings.Builder
	border := "+-----------------+\n"
	if coords {
		border = "  " + border
	}

	sb.WriteString(border)
	for y := chess.BoardSize - 1; y >= 0; y-- {
		if coords {
			fmt.Fprintf(&sb, "%d ", y+1)
		}
		sb.WriteString("| ")
		for x := 0; x < chess.BoardSize; x++ {
			letter, _ := g.GetPieceAt(x, y)
			sb.WriteByte(letter)
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	if coords {
		sb.WriteString("    a b c d e f g h\n")
	}
	return sb.String()
}

// statusText describes how the game stands, or returns "" for an ordinary
// position.
func statusText(g *engine.Game) string {
	switch {
	case g.MateTo() != chess.NoColour:
		return fmt.Sprintf("Mate! %s is checkmated. Game over.", g.MateTo())
	case g.IsInsufficientMaterial():
		return "Draw by insufficient material. Game over."
	case g.IsStaleMate():
		return "Stalemate. Game over."
	case g.Rules().ThreefoldRepetition && g.Repetitions() >= 3:
		return "Draw by threefold repetition."
	case g.Rules().FiftyMoves && g.Board().HalfmoveClock/2 >= 50:
		return "Draw by the fifty-move rule."
	case g.CheckTo() != chess.NoColour:
		return "Check!"
	}
	return ""
}

// showPosition prints what the output settings ask for after a move.
func showPosition(w io.Writer, g *engine.Game, out *config.OutputConfig) {
	if out.ShowFEN {
		fmt.Fprintln(w, g.Fen())
	}
	if out.ShowBoard {
		fmt.Fprint(w, renderBoard(g, out.Coordinates))
	}
	if out.ShowScore {
		fmt.Fprintf(w, "Score: %d\n", g.Score())
	}
	if s := statusText(g); s != "" {
		fmt.Fprintln(w, s)
	}
}
