package config

import (
	"fmt"

	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
)

// StoreConfig holds settings for persisting games.
type StoreConfig struct {
	// Path is the database directory. Empty disables persistence.
	Path string

	// GameID names the game to create or resume.
	GameID string

	// Restart discards a stored game with the same id instead of resuming it.
	Restart bool

	// InMemory keeps the database in memory, for tests.
	InMemory bool
}

// NewStoreConfig creates a StoreConfig with default values.
func NewStoreConfig() *StoreConfig {
	return &StoreConfig{GameID: "default"}
}

// Enabled reports whether games are persisted.
func (s *StoreConfig) Enabled() bool {
	return s.Path != "" || s.InMemory
}

// Validate checks that the store configuration is valid.
func (s *StoreConfig) Validate() error {
	if s.Enabled() && s.GameID == "" {
		return fmt.Errorf("game id required when persistence is enabled: %w", errors.ErrInvalidConfig)
	}
	return nil
}
