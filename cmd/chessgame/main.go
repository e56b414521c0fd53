// chessgame plays, counts and evaluates chess positions from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/Tubbz-alt/ChessGame-3/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessgame version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	setupLogFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to the mode the configuration selects.
func run(ctx context.Context, cfg *config.Config, in io.Reader) error {
	switch {
	case cfg.EvalFile != "":
		return runEval(ctx, cfg)
	case cfg.Perft.Depth > 0:
		return runPerft(ctx, cfg)
	default:
		return runConsole(ctx, cfg, in)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: chessgame [options]

Without -perft or -eval, plays an interactive game on the console.
Enter moves as <Piece><from><to>[promotion] (Pe2e4, pe7e8q) or as
<from><to>[promotion] (e2e4). Type "help" for console commands.

Options:
`)
	flag.PrintDefaults()
}
