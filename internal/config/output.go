package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// OutputFormat represents the notation moves are written in.
type OutputFormat int

const (
	SAN  OutputFormat = iota // Standard Algebraic Notation
	LALG                     // Long algebraic (e2e4)
)

// String returns the string representation of an output format.
func (f OutputFormat) String() string {
	switch f {
	case SAN:
		return "san"
	case LALG:
		return "lalg"
	}
	return "unknown"
}

// ParseOutputFormat converts a format name to an OutputFormat.
func ParseOutputFormat(name string) (OutputFormat, error) {
	switch name {
	case "san":
		return SAN, nil
	case "lalg", "uci":
		return LALG, nil
	}
	return SAN, fmt.Errorf("unknown output format %q: %w", name, errors.ErrInvalidConfig)
}

// minLineLength is the shortest line that still fits a numbered move.
const minLineLength = 16

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format specifies the move notation.
	Format OutputFormat

	// MaxLineLength is the maximum line length for movetext
	MaxLineLength uint

	// JSONFormat enables JSON output instead of movetext
	JSONFormat bool

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepResults controls whether game results are included
	KeepResults bool

	// ShowBoard prints the final position after each game
	ShowBoard bool

	// ShowStatus prints the final game status after each game
	ShowStatus bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:          SAN,
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepResults:     true,
		ShowStatus:      true,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength < minLineLength {
		return fmt.Errorf("line length %d is shorter than %d: %w",
			o.MaxLineLength, minLineLength, errors.ErrInvalidConfig)
	}
	if o.Format != SAN && o.Format != LALG {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
