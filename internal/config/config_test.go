package config

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// TestOutputConfig_Defaults verifies OutputConfig has sensible defaults
func TestOutputConfig_Defaults(t *testing.T) {
	cfg := NewOutputConfig()

	if cfg.Format != SAN {
		t.Errorf("Format = %v, want %v", cfg.Format, SAN)
	}
	if cfg.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.MaxLineLength)
	}
	if !cfg.KeepMoveNumbers {
		t.Error("KeepMoveNumbers should be true by default")
	}
	if !cfg.KeepResults {
		t.Error("KeepResults should be true by default")
	}
	if cfg.JSONFormat {
		t.Error("JSONFormat should be false by default")
	}
	if cfg.ShowBoard {
		t.Error("ShowBoard should be false by default")
	}
}

func TestPlayConfig_Defaults(t *testing.T) {
	cfg := NewPlayConfig()

	if cfg.Promotion != chess.Queen {
		t.Errorf("Promotion = %v, want Queen", cfg.Promotion)
	}
	if cfg.KeepBrokenGames {
		t.Error("KeepBrokenGames should be false by default")
	}
}

func TestPerftConfig_Defaults(t *testing.T) {
	cfg := NewPerftConfig()

	if cfg.Depth != 0 {
		t.Errorf("Depth = %d, want 0", cfg.Depth)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want at least 1", cfg.Workers)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(*Config) {}, false},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }, true},
		{"short lines", func(c *Config) { c.Output.MaxLineLength = 4 }, true},
		{"unknown format", func(c *Config) { c.Output.Format = OutputFormat(9) }, true},
		{"knight promotion", func(c *Config) { c.Play.Promotion = chess.Knight }, false},
		{"king promotion", func(c *Config) { c.Play.Promotion = chess.King }, true},
		{"pawn promotion", func(c *Config) { c.Play.Promotion = chess.Pawn }, true},
		{"deep perft", func(c *Config) { c.Perft.Depth = 5 }, false},
		{"negative perft", func(c *Config) { c.Perft.Depth = -1 }, true},
		{"too deep perft", func(c *Config) { c.Perft.Depth = maxPerftDepth + 1 }, true},
		{"no workers", func(c *Config) { c.Perft.Workers = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !stderrors.Is(err, errors.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    OutputFormat
		wantErr bool
	}{
		{"san", SAN, false},
		{"lalg", LALG, false},
		{"uci", LALG, false},
		{"pgn", SAN, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutputFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseOutputFormat(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	out := &bytes.Buffer{}
	log := &bytes.Buffer{}

	cfg.SetOutput(out)
	cfg.SetLog(log)

	if cfg.OutputFile != out {
		t.Error("SetOutput did not set OutputFile")
	}
	if cfg.LogFile != log {
		t.Error("SetLog did not set LogFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	cfg := NewConfigBuilder().
		WithOutputFormat(LALG).
		WithMaxLineLength(120).
		WithBoard(true).
		WithPromotion(chess.Rook).
		WithPerft(3, true).
		WithWorkers(2).
		Build()

	if cfg.Output.Format != LALG {
		t.Errorf("Format = %v, want LALG", cfg.Output.Format)
	}
	if cfg.Output.MaxLineLength != 120 {
		t.Errorf("MaxLineLength = %d, want 120", cfg.Output.MaxLineLength)
	}
	if !cfg.Output.ShowBoard {
		t.Error("ShowBoard should be true")
	}
	if cfg.Play.Promotion != chess.Rook {
		t.Errorf("Promotion = %v, want Rook", cfg.Play.Promotion)
	}
	if cfg.Perft.Depth != 3 || !cfg.Perft.Divide {
		t.Errorf("Perft = %+v, want depth 3 with divide", cfg.Perft)
	}
	if cfg.Perft.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Perft.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}
