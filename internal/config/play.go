package config

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// PlayConfig holds settings for replaying games.
type PlayConfig struct {
	// Promotion is the piece a pawn becomes when a move names none.
	Promotion chess.Kind

	// KeepBrokenGames writes a game up to its first illegal move
	// instead of dropping it.
	KeepBrokenGames bool

	// AllowMovesAfterEnd accepts moves after checkmate or a draw,
	// as long as they are legal in the position.
	AllowMovesAfterEnd bool
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Promotion: chess.Queen,
	}
}

// Validate checks that the play configuration is valid.
func (p *PlayConfig) Validate() error {
	if !p.Promotion.IsPromotionChoice() {
		return fmt.Errorf("promotion piece %v: %w", p.Promotion, errors.ErrInvalidConfig)
	}
	return nil
}
