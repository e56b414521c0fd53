package config

// OutputConfig holds settings related to console output.
type OutputConfig struct {
	// ShowBoard prints the board after every move.
	ShowBoard bool

	// ShowScore prints the evaluation after every move.
	ShowScore bool

	// ShowFEN prints the FEN after every move.
	ShowFEN bool

	// Coordinates adds file and rank labels around the board.
	Coordinates bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowBoard:   true,
		ShowScore:   true,
		Coordinates: true,
	}
}
