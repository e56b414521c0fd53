package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGameSettings sets the settings new games start from.
func (b *ConfigBuilder) WithGameSettings(s GameSettings) *ConfigBuilder {
	b.cfg.Game = s
	return b
}

// WithPerft sets the perft depth and whether to divide by root move.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the worker count for perft and batch evaluation.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	b.cfg.Perft.Workers = n
	return b
}

// WithStore enables persistence in the given directory.
func (b *ConfigBuilder) WithStore(path, gameID string) *ConfigBuilder {
	b.cfg.Store.Path = path
	b.cfg.Store.GameID = gameID
	return b
}

// WithEvalFile sets the FEN batch file to evaluate.
func (b *ConfigBuilder) WithEvalFile(path string) *ConfigBuilder {
	b.cfg.EvalFile = path
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// ShowBoard controls whether the board is printed after each move.
func (b *ConfigBuilder) ShowBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}
