// Package config provides game settings and CLI configuration for chessgame.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
)

// Verbosity levels.
const (
	Quiet   = 0 // errors only
	Normal  = 1 // summaries
	Verbose = 2 // running commentary
)

// Config holds all program configuration.
type Config struct {
	Verbosity int

	// Game holds the settings new games start from.
	Game GameSettings

	Output *OutputConfig
	Perft  *PerftConfig
	Store  *StoreConfig

	// Workers is the number of goroutines used for batch evaluation.
	Workers int

	// EvalFile names a file of FENs to evaluate, one per line.
	EvalFile string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Normal,
		Game:       DefaultGameSettings(),
		Output:     NewOutputConfig(),
		Perft:      NewPerftConfig(),
		Store:      NewStoreConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the diagnostics writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logf writes a diagnostic line when the verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...any) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Validate checks the configuration and all sub-configurations.
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	if err := c.Store.Validate(); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers (%d) must not be negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
