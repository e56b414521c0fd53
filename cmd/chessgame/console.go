package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/config"
	"github.com/Tubbz-alt/ChessGame-3/internal/engine"
	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
	"github.com/Tubbz-alt/ChessGame-3/internal/store"
)

const consoleHelp = `Commands:
  <move>        play a move: Pe2e4, pe7e8q or e2e4
  moves [sq]    list the legal moves, or the targets of the piece on sq
  board         print the board
  fen           print the position in FEN
  score         print the evaluation
  history       list the moves played
  perft <n>     count the positions n plies ahead
  computer      let the engine move
  new           start a new game
  help          show this text
  quit          leave (an empty line does too)
`

// console is an interactive game on a line-oriented terminal.
type console struct {
	cfg     *config.Config
	out     io.Writer
	game    *engine.Game
	history []store.CommittedMove

	// store is nil when games are not persisted.
	store  *store.Store
	gameID string
}

// runConsole plays a game reading commands from in until it is exhausted,
// an empty line is read or ctx is cancelled.
func runConsole(ctx context.Context, cfg *config.Config, in io.Reader) error {
	c, err := newConsole(cfg)
	if err != nil {
		return err
	}
	defer c.close()

	showPosition(c.out, c.game, cfg.Output)
	return c.loop(ctx, in)
}

// newConsole starts a fresh game or, with a store, resumes the stored one.
func newConsole(cfg *config.Config) (*console, error) {
	c := &console{cfg: cfg, out: cfg.OutputFile}

	if !cfg.Store.Enabled() {
		g, err := engine.InitGameWithSettings(cfg.Game)
		if err != nil {
			return nil, err
		}
		c.game = g
		return c, nil
	}

	s, err := store.Open(cfg.Store, cfg.LogFile, cfg.Verbosity)
	if err != nil {
		return nil, err
	}
	c.store = s
	c.gameID = cfg.Store.GameID

	if !cfg.Store.Restart {
		err = c.resume()
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, errors.ErrGameNotFound) {
			s.Close()
			return nil, err
		}
	}

	if err := c.restart(); err != nil {
		s.Close()
		return nil, err
	}
	return c, nil
}

// resume loads the stored game and its move list.
func (c *console) resume() error {
	g, err := c.store.Resume(c.gameID)
	if err != nil {
		return err
	}
	moves, err := c.store.Moves(c.gameID)
	if err != nil {
		return err
	}
	c.game, c.history = g, moves
	c.cfg.Logf(config.Normal, "Resumed game %q after %d moves", c.gameID, len(moves))
	return nil
}

// restart begins a new game from the configured settings, replacing any
// stored game with the same id.
func (c *console) restart() error {
	g, err := engine.InitGameWithSettings(c.cfg.Game)
	if err != nil {
		return err
	}
	if c.store != nil {
		if err := c.store.CreateGame(c.gameID, c.cfg.Game); err != nil {
			return err
		}
		c.cfg.Logf(config.Verbose, "Created game %q", c.gameID)
	}
	c.game, c.history = g, nil
	return nil
}

func (c *console) close() {
	if c.store == nil {
		return
	}
	if err := c.store.Close(); err != nil {
		c.cfg.Logf(config.Quiet, "Error closing store: %v", err)
	}
}

func (c *console) loop(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(c.out, "%s> ", c.game.Board().ToMove)
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			return nil
		}
		quit, err := c.execute(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// execute runs one console line. Mistakes in the line are reported to the
// user; only failures of the store are returned.
func (c *console) execute(ctx context.Context, line string) (quit bool, err error) {
	fields := strings.Fields(line)
	switch cmd := strings.ToLower(fields[0]); cmd {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		fmt.Fprint(c.out, consoleHelp)
	case "board":
		fmt.Fprint(c.out, renderBoard(c.game, c.cfg.Output.Coordinates))
	case "fen":
		fmt.Fprintln(c.out, c.game.Fen())
	case "score":
		fmt.Fprintf(c.out, "Score: %d\n", c.game.Score())
	case "moves":
		c.listMoves(fields[1:])
	case "history":
		c.listHistory()
	case "perft":
		c.perft(ctx, fields[1:])
	case "computer":
		if _, err := c.game.ComputerMove(); err != nil {
			fmt.Fprintf(c.out, "Computer move: %v\n", err)
		}
	case "new":
		if err := c.restart(); err != nil {
			return false, err
		}
		showPosition(c.out, c.game, c.cfg.Output)
	default:
		return false, c.play(fields[0])
	}
	return false, nil
}

// normalizeMove turns "e2e4" into "Pe2e4" by looking up the piece on the
// source square. Compact move text is returned unchanged.
func (c *console) normalizeMove(text string) string {
	if len(text) < 4 || text[1] < '1' || text[1] > '8' {
		return text
	}
	from, err := chess.ParseSquare(text[:2])
	if err != nil {
		return text
	}
	letter, err := c.game.GetPieceAt(from.X, from.Y)
	if err != nil || letter == '.' {
		return text
	}
	return string(letter) + text
}

func (c *console) play(text string) error {
	text = c.normalizeMove(text)
	next, err := c.game.Move(text)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid move: %v\n", err)
		return nil
	}
	if next == c.game {
		if c.game.IsOver() {
			fmt.Fprintln(c.out, "The game is over. Type \"new\" to play again.")
		} else {
			fmt.Fprintf(c.out, "Illegal move: %s\n", text)
		}
		return nil
	}

	committed := store.NewCommittedMove(c.game, next, text)
	if c.store != nil {
		if err := c.store.Append(c.gameID, committed); err != nil {
			return err
		}
	}
	c.cfg.Logf(config.Verbose, "ply %d: %s", committed.Ply, committed.Move)

	c.history = append(c.history, committed)
	c.game = next
	showPosition(c.out, c.game, c.cfg.Output)
	return nil
}

func (c *console) listMoves(args []string) {
	if len(args) == 0 {
		var moves []string
		for _, m := range c.game.LegalMoves() {
			moves = append(moves, m.String())
		}
		fmt.Fprintf(c.out, "%d moves: %s\n", len(moves), strings.Join(moves, " "))
		return
	}

	sq, err := chess.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "Bad square %q\n", args[0])
		return
	}
	targets := c.game.GetAllValidMovesForPieceAt(sq.X, sq.Y)
	fmt.Fprintf(c.out, "%s: %s\n", sq, strings.Join(targets, " "))
}

func (c *console) listHistory() {
	for _, m := range c.history {
		fmt.Fprintf(c.out, "%3d. %s\n", m.Ply, m.Move)
	}
}

func (c *console) perft(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "Usage: perft <depth>")
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 || depth > config.MaxPerftDepth {
		fmt.Fprintf(c.out, "Depth must be 1..%d\n", config.MaxPerftDepth)
		return
	}
	nodes, err := c.game.RunPerfTestParallel(ctx, depth, c.cfg.Workers)
	if err != nil {
		fmt.Fprintf(c.out, "Perft: %v\n", err)
		return
	}
	fmt.Fprintf(c.out, "Nodes: %d\n", nodes)
}
