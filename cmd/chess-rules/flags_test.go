package main

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(jsonOutput, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

// ---------------------------------------------------------------------------
// applyOutputFlags
// ---------------------------------------------------------------------------

func TestApplyOutputFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := config.NewConfig()
		if err := applyOutputFlags(cfg); err != nil {
			t.Fatalf("applyOutputFlags() error = %v", err)
		}
		if cfg.Output.Format != config.SAN {
			t.Errorf("Format = %v; want SAN", cfg.Output.Format)
		}
		if cfg.Output.MaxLineLength != 80 {
			t.Errorf("MaxLineLength = %d; want 80", cfg.Output.MaxLineLength)
		}
		if !cfg.Output.ShowStatus || !cfg.Output.KeepMoveNumbers || !cfg.Output.KeepResults {
			t.Errorf("status, numbers and results should be on by default: %+v", cfg.Output)
		}
	})

	t.Run("lalg with everything off", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "lalg")()
		defer saveRestoreInt(lineLength, 40)()
		defer saveRestoreBool(noStatus, true)()
		defer saveRestoreBool(noNumbers, true)()
		defer saveRestoreBool(noResults, true)()
		defer saveRestoreBool(showBoard, true)()
		defer saveRestoreBool(jsonOutput, true)()

		cfg := config.NewConfig()
		if err := applyOutputFlags(cfg); err != nil {
			t.Fatalf("applyOutputFlags() error = %v", err)
		}
		if cfg.Output.Format != config.LALG {
			t.Errorf("Format = %v; want LALG", cfg.Output.Format)
		}
		if cfg.Output.MaxLineLength != 40 {
			t.Errorf("MaxLineLength = %d; want 40", cfg.Output.MaxLineLength)
		}
		if cfg.Output.ShowStatus || cfg.Output.KeepMoveNumbers || cfg.Output.KeepResults {
			t.Errorf("status, numbers and results should be off: %+v", cfg.Output)
		}
		if !cfg.Output.ShowBoard || !cfg.Output.JSONFormat {
			t.Errorf("board and JSON should be on: %+v", cfg.Output)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		defer saveRestoreString(outputFormat, "epd")()
		err := applyOutputFlags(config.NewConfig())
		if !stderrors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("applyOutputFlags() error = %v; want ErrInvalidConfig", err)
		}
	})

	t.Run("negative line length", func(t *testing.T) {
		defer saveRestoreInt(lineLength, -1)()
		cfg := config.NewConfig()
		err := applyOutputFlags(cfg)
		if !stderrors.Is(err, errors.ErrInvalidConfig) {
			t.Errorf("applyOutputFlags() error = %v; want ErrInvalidConfig", err)
		}
		if cfg.Output.MaxLineLength != 80 {
			t.Errorf("MaxLineLength = %d; want default 80 left in place", cfg.Output.MaxLineLength)
		}
	})
}

// ---------------------------------------------------------------------------
// applyPlayFlags
// ---------------------------------------------------------------------------

func TestApplyPlayFlags(t *testing.T) {
	defer saveRestoreString(promotion, "N")()
	defer saveRestoreBool(keepBroken, true)()
	defer saveRestoreBool(afterEnd, true)()

	cfg := config.NewConfig()
	if err := applyPlayFlags(cfg); err != nil {
		t.Fatalf("applyPlayFlags() error = %v", err)
	}
	if cfg.Play.Promotion != chess.Knight {
		t.Errorf("Promotion = %v; want Knight", cfg.Play.Promotion)
	}
	if !cfg.Play.KeepBrokenGames || !cfg.Play.AllowMovesAfterEnd {
		t.Errorf("play flags not applied: %+v", cfg.Play)
	}
}

func TestParsePromotion(t *testing.T) {
	tests := []struct {
		in      string
		want    chess.Kind
		wantErr bool
	}{
		{"q", chess.Queen, false},
		{"R", chess.Rook, false},
		{"b", chess.Bishop, false},
		{"n", chess.Knight, false},
		{"k", chess.Empty, true},
		{"p", chess.Empty, true},
		{"", chess.Empty, true},
		{"qq", chess.Empty, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parsePromotion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePromotion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parsePromotion(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// applyPerftFlags
// ---------------------------------------------------------------------------

func TestApplyPerftFlags(t *testing.T) {
	t.Run("explicit workers", func(t *testing.T) {
		defer saveRestoreInt(perftDepth, 4)()
		defer saveRestoreBool(divide, true)()
		defer saveRestoreInt(workers, 3)()

		cfg := config.NewConfig()
		applyPerftFlags(cfg)
		if cfg.Perft.Depth != 4 || !cfg.Perft.Divide || cfg.Perft.Workers != 3 {
			t.Errorf("Perft = %+v; want depth 4, divide, 3 workers", cfg.Perft)
		}
	})

	t.Run("zero workers keeps the default", func(t *testing.T) {
		defer saveRestoreInt(workers, 0)()

		cfg := config.NewConfig()
		want := cfg.Perft.Workers
		applyPerftFlags(cfg)
		if cfg.Perft.Workers != want {
			t.Errorf("Workers = %d; want %d", cfg.Perft.Workers, want)
		}
	})
}

// ---------------------------------------------------------------------------
// applyFlags
// ---------------------------------------------------------------------------

func TestApplyFlags_Verbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, 1},
		{"quiet", true, false, 0},
		{"verbose", false, true, 2},
		{"quiet wins", true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()

			cfg := config.NewConfig()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags() error = %v", err)
			}
			if cfg.Verbosity != tt.want {
				t.Errorf("Verbosity = %d; want %d", cfg.Verbosity, tt.want)
			}
		})
	}
}

func TestApplyFlags_BadPromotion(t *testing.T) {
	defer saveRestoreString(promotion, "king")()
	if err := applyFlags(config.NewConfig()); err == nil {
		t.Error("applyFlags() expected error for bad promotion, got nil")
	}
}

func TestStartColour(t *testing.T) {
	if got := startColour(); got != chess.White {
		t.Errorf("startColour() = %v; want White", got)
	}
	defer saveRestoreBool(blackToMove, true)()
	if got := startColour(); got != chess.Black {
		t.Errorf("startColour() = %v; want Black", got)
	}
}
