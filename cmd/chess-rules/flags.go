// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	lineLength   = flag.Int("w", 80, "Maximum line length")
	outputFormat = flag.String("W", "san", "Move notation: san, lalg (uci)")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showBoard    = flag.Bool("board", false, "Print the final board after each game")
	noStatus     = flag.Bool("nostatus", false, "Don't print the final game status")
	noNumbers    = flag.Bool("nonumbers", false, "Don't output move numbers")
	noResults    = flag.Bool("noresults", false, "Don't output results")

	// Replay options
	promotion    = flag.String("promote", "q", "Piece a pawn becomes when a move names none: q, r, b, n")
	keepBroken   = flag.Bool("keepbroken", false, "Output games up to their first illegal move")
	afterEnd     = flag.Bool("afterend", false, "Accept legal moves after checkmate or a draw")
	positionFile = flag.String("position", "", "Board diagram file to start from instead of the initial position")
	blackToMove  = flag.Bool("black", false, "Black moves first in the -position diagram")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count move paths of this depth from the start position and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	workers    = flag.Int("workers", 0, "Number of perft workers (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("verbose", false, "Report per-game statistics")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) error {
	if err := applyOutputFlags(cfg); err != nil {
		return err
	}
	if err := applyPlayFlags(cfg); err != nil {
		return err
	}
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
	return nil
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) error {
	format, err := config.ParseOutputFormat(*outputFormat)
	if err != nil {
		return err
	}
	if *lineLength < 0 {
		return fmt.Errorf("line length %d is negative: %w", *lineLength, errors.ErrInvalidConfig)
	}
	cfg.Output.Format = format
	cfg.Output.MaxLineLength = uint(*lineLength)
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowStatus = !*noStatus
	cfg.Output.KeepMoveNumbers = !*noNumbers
	cfg.Output.KeepResults = !*noResults
	return nil
}

// applyPlayFlags configures replay settings.
func applyPlayFlags(cfg *config.Config) error {
	kind, err := parsePromotion(*promotion)
	if err != nil {
		return err
	}
	cfg.Play.Promotion = kind
	cfg.Play.KeepBrokenGames = *keepBroken
	cfg.Play.AllowMovesAfterEnd = *afterEnd
	return nil
}

// applyPerftFlags configures perft settings.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}

// parsePromotion accepts a single piece letter in either case.
func parsePromotion(s string) (chess.Kind, error) {
	if len(s) == 1 {
		if kind := chess.KindFromLetter(s[0]); kind.IsPromotionChoice() {
			return kind, nil
		}
	}
	return chess.Empty, fmt.Errorf("promotion piece %q: %w", s, errors.ErrInvalidConfig)
}

// startColour returns the side to move in a -position diagram.
func startColour() chess.Colour {
	if *blackToMove {
		return chess.Black
	}
	return chess.White
}
