package config

import (
	"fmt"

	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
)

// MaxPerftDepth bounds the depth accepted from the command line.
const MaxPerftDepth = 8

// PerftConfig holds settings for move-generation node counts.
type PerftConfig struct {
	// Depth in plies. Zero disables the perft run.
	Depth int

	// Divide prints the node count below each root move.
	Divide bool

	// Workers is the number of goroutines splitting the root moves.
	// Values below 2 run serially.
	Workers int

	// CacheSize caps the shared node-count cache. Zero is unlimited.
	CacheSize int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth (%d) outside 0..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.CacheSize < 0 {
		return fmt.Errorf("perft cache size (%d) must not be negative: %w", p.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}
