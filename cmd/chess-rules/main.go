// chess-rules replays chess games written in coordinate notation, checking
// every move against the rules and reporting how each game stands.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := applyFlags(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	start := loadStartPosition()

	if cfg.Perft.Depth > 0 {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		err := runPerft(ctx, &start, cfg)
		stop()
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	totalGames, outputGames := processAllInputs(&start, cfg)

	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%d game(s) output out of %d.\n", outputGames, totalGames)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.SetLog(file)
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// loadStartPosition returns the position games and perft start from.
func loadStartPosition() engine.GameState {
	if *positionFile == "" {
		return engine.NewGame()
	}

	content, err := os.ReadFile(*positionFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading position file %s: %v\n", *positionFile, err)
		os.Exit(1)
	}
	start, err := processing.StartPosition(string(content), startColour())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in position file %s: %v\n", *positionFile, err)
		os.Exit(1)
	}
	return start
}

// processAllInputs processes all input files or stdin.
func processAllInputs(start *engine.GameState, cfg *config.Config) (totalGames, outputGames int) {
	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	defer func() {
		if err := writer.Close(); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error writing output: %v\n", err)
		}
	}()

	args := flag.Args()
	if len(args) == 0 {
		return processInput(os.Stdin, "stdin", start, cfg, writer)
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			continue
		}

		total, out := processInput(file, filename, start, cfg, writer)
		totalGames += total
		outputGames += out

		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
	return totalGames, outputGames
}

// processInput replays every game in one input and writes those that
// should be kept. Replay errors go to the log.
func processInput(r io.Reader, name string, start *engine.GameState, cfg *config.Config, writer output.GameWriter) (totalGames, outputGames int) {
	cfg.CurrentInputFile = name

	games, err := processing.ScanGames(r)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error reading %s: %v\n", name, err)
	}

	for i, text := range games {
		game := processing.Replay(start, text, i+1, cfg)
		totalGames++

		if game.Err != nil {
			fmt.Fprintf(cfg.LogFile, "%v (line %d)\n", game.Err, text.Line)
		}
		if cfg.Verbosity > 1 {
			reportAnalysis(cfg.LogFile, game, processing.AnalyzeGame(start, game))
		}
		if !processing.ShouldOutput(game, cfg) {
			continue
		}

		if err := writer.WriteGame(game); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error writing game %d: %v\n", game.Number, err)
			continue
		}
		outputGames++
	}
	return totalGames, outputGames
}

// reportAnalysis writes a one-line summary of a game to the log.
func reportAnalysis(w io.Writer, game *output.Game, a *processing.GameAnalysis) {
	fmt.Fprintf(w, "game %d: %d plies, %d captures (%d en passant), %d checks, %d castles, %d promotions, %s, material %+d (White lost %s, Black lost %s)\n",
		game.Number, a.Plies, a.Captures, a.EnPassants, a.Checks, a.Castles, a.Promotions, game.Status,
		a.MaterialDifference, output.KindLetters(a.MissingPieces(chess.White)), output.KindLetters(a.MissingPieces(chess.Black)))
}

// runPerft counts move paths from start and writes the total, preceded
// by the per-move counts in move order when dividing.
func runPerft(ctx context.Context, start *engine.GameState, cfg *config.Config) error {
	entries, err := worker.Divide(ctx, start, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return err
	}

	if cfg.Perft.Divide {
		counts := make(map[string]uint64, len(entries))
		for _, e := range entries {
			counts[e.Move.String()] = e.Nodes
		}
		moves := maps.Keys(counts)
		slices.Sort(moves)
		for _, m := range moves {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", m, counts[m])
		}
		fmt.Fprintln(cfg.OutputFile)
	}

	fmt.Fprintf(cfg.OutputFile, "perft(%d) = %d\n", cfg.Perft.Depth, worker.Total(entries))
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options] [input-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games, one per line, written as coordinate moves (e2e4 e7e5 g1f3 ...).\n")
	fmt.Fprintf(os.Stderr, "Each move is checked against the rules; the final status of every game is reported.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove notation (-W):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  lalg   Long algebraic (e2e4), also accepted as uci\n")
}
