package config

import (
	"fmt"
	"strings"

	"github.com/Tubbz-alt/ChessGame-3/internal/chess"
	"github.com/Tubbz-alt/ChessGame-3/internal/errors"
)

// GameSettings is the record a game is initialised from.
type GameSettings struct {
	// FEN is the starting position. Empty means the standard start.
	FEN string

	// Whether a side has already castled before the starting position.
	IsWhiteCastled bool
	IsBlackCastled bool

	// Optional rules
	IsEnPassantRuleEnabled           bool
	IsFiftyMovesRuleEnabled          bool
	IsThreefoldRepetitionRuleEnabled bool
}

// DefaultGameSettings returns the standard start with every rule enabled.
func DefaultGameSettings() GameSettings {
	return GameSettings{
		FEN:                              chess.InitialFEN,
		IsEnPassantRuleEnabled:           true,
		IsFiftyMovesRuleEnabled:          true,
		IsThreefoldRepetitionRuleEnabled: true,
	}
}

// StartFEN returns the FEN the game starts from, substituting the standard
// start for an empty FEN.
func (s GameSettings) StartFEN() string {
	if strings.TrimSpace(s.FEN) == "" {
		return chess.InitialFEN
	}
	return s.FEN
}

// Validate performs the cheap shape checks on the settings. Full FEN
// validation happens when the position is parsed.
func (s GameSettings) Validate() error {
	if n := len(strings.Fields(s.StartFEN())); n != 6 {
		return fmt.Errorf("start FEN has %d fields, want 6: %w", n, errors.ErrInvalidConfig)
	}
	return nil
}

// GameSettingsBuilder provides a fluent API for building GameSettings.
type GameSettingsBuilder struct {
	s GameSettings
}

// NewGameSettingsBuilder creates a builder starting from DefaultGameSettings.
func NewGameSettingsBuilder() *GameSettingsBuilder {
	return &GameSettingsBuilder{s: DefaultGameSettings()}
}

// Build returns the built settings.
func (b *GameSettingsBuilder) Build() GameSettings {
	return b.s
}

// WithFEN sets the starting position.
func (b *GameSettingsBuilder) WithFEN(fen string) *GameSettingsBuilder {
	b.s.FEN = fen
	return b
}

// WithCastled records which sides castled before the starting position.
func (b *GameSettingsBuilder) WithCastled(white, black bool) *GameSettingsBuilder {
	b.s.IsWhiteCastled = white
	b.s.IsBlackCastled = black
	return b
}

// WithEnPassant enables or disables en-passant captures.
func (b *GameSettingsBuilder) WithEnPassant(enabled bool) *GameSettingsBuilder {
	b.s.IsEnPassantRuleEnabled = enabled
	return b
}

// WithFiftyMoves enables or disables the fifty-move draw.
func (b *GameSettingsBuilder) WithFiftyMoves(enabled bool) *GameSettingsBuilder {
	b.s.IsFiftyMovesRuleEnabled = enabled
	return b
}

// WithThreefoldRepetition enables or disables the repetition draw.
func (b *GameSettingsBuilder) WithThreefoldRepetition(enabled bool) *GameSettingsBuilder {
	b.s.IsThreefoldRepetitionRuleEnabled = enabled
	return b
}
