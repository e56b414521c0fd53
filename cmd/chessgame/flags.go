// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/Tubbz-alt/ChessGame-3/internal/config"
)

var (
	// Position and rules
	fenFlag     = flag.String("fen", "", "Starting position in FEN (default: standard start)")
	whiteCastle = flag.Bool("white-castled", false, "White has already castled before the starting position")
	blackCastle = flag.Bool("black-castled", false, "Black has already castled before the starting position")
	noEnPassant = flag.Bool("no-ep", false, "Disable en passant captures")
	noFifty     = flag.Bool("no-50", false, "Disable the fifty-move rule")
	noThreefold = flag.Bool("no-3fold", false, "Disable threefold repetition")

	// Perft
	perftDepth = flag.Int("perft", 0, "Count move-generation nodes to depth N and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the node count below each root move")
	perftCache = flag.Int("perft-cache", 0, "Maximum perft cache entries (0 = unlimited)")
	workers    = flag.Int("j", 0, "Worker goroutines for -perft and -eval (0 = one per CPU, 1 = serial)")

	// Batch evaluation
	evalFile = flag.String("eval", "", "Evaluate every FEN in this file, one per line, and exit")

	// Persistence
	dbPath  = flag.String("db", "", "Store games in this directory")
	gameID  = flag.String("game", "default", "Game id to create or resume with -db")
	newGame = flag.Bool("new", false, "With -db, start the game afresh instead of resuming it")

	// Console output
	noBoard  = flag.Bool("noboard", false, "Don't print the board after each move")
	noScore  = flag.Bool("noscore", false, "Don't print the evaluation after each move")
	showFEN  = flag.Bool("showfen", false, "Print the FEN after each move")
	noCoords = flag.Bool("nocoords", false, "Don't label files and ranks")

	// Diagnostics
	verbose = flag.Bool("v", false, "Verbose diagnostics")
	quiet   = flag.Bool("q", false, "Report errors only")
	logFile = flag.String("log", "", "Write diagnostics to this file (default: stderr)")

	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	applyGameFlags(cfg)
	applyPerftFlags(cfg)
	applyStoreFlags(cfg)
	applyOutputFlags(cfg)
	applyVerbosityFlags(cfg)
	cfg.EvalFile = *evalFile
	cfg.Workers = *workers
}

// applyGameFlags builds the settings new games start from.
func applyGameFlags(cfg *config.Config) {
	cfg.Game = config.NewGameSettingsBuilder().
		WithFEN(*fenFlag).
		WithCastled(*whiteCastle, *blackCastle).
		WithEnPassant(!*noEnPassant).
		WithFiftyMoves(!*noFifty).
		WithThreefoldRepetition(!*noThreefold).
		Build()
}

// applyPerftFlags configures the perft run.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.Workers = *workers
	cfg.Perft.CacheSize = *perftCache
}

// applyStoreFlags configures persistence.
func applyStoreFlags(cfg *config.Config) {
	cfg.Store.Path = *dbPath
	cfg.Store.GameID = *gameID
	cfg.Store.Restart = *newGame
}

// applyOutputFlags configures what the console prints.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = !*noBoard
	cfg.Output.ShowScore = !*noScore
	cfg.Output.ShowFEN = *showFEN
	cfg.Output.Coordinates = !*noCoords
}

// applyVerbosityFlags sets the diagnostics level. -q wins over -v.
func applyVerbosityFlags(cfg *config.Config) {
	switch {
	case *quiet:
		cfg.Verbosity = config.Quiet
	case *verbose:
		cfg.Verbosity = config.Verbose
	default:
		cfg.Verbosity = config.Normal
	}
}
