package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// maxPerftDepth bounds the search; counts beyond it take hours.
const maxPerftDepth = 8

// PerftConfig holds settings for move-path enumeration.
type PerftConfig struct {
	// Depth is the number of plies to enumerate; 0 disables perft.
	Depth int

	// Divide reports the count below each root move.
	Divide bool

	// Workers is the number of goroutines sharing the root moves.
	Workers int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 || p.Depth > maxPerftDepth {
		return fmt.Errorf("perft depth %d outside 0..%d: %w", p.Depth, maxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("worker count %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
