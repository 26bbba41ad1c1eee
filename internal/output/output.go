// Package output writes replayed games as movetext or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// PlayedMove is one half-move of a replayed game.
type PlayedMove struct {
	Number uint
	Colour chess.Colour
	Move   chess.Move // promotion filled in as played
	SAN    string
}

// NewPlayedMove records a legal move in the position it is played from.
// It must be called before the move is applied.
func NewPlayedMove(state *engine.GameState, move chess.Move) PlayedMove {
	return PlayedMove{
		Number: state.MoveNumber,
		Colour: state.ToMove,
		Move:   move,
		SAN:    notation.SAN(state, move),
	}
}

// Game is a replayed game ready for output.
type Game struct {
	Number int // 1-based position in the input
	Moves  []PlayedMove
	Final  engine.GameState
	Status engine.Status

	// Err is the reason replay stopped early, if it did.
	Err error
}

// Result returns the score string of the game, "*" if unfinished or broken.
func (g *Game) Result() string {
	if g.Err != nil {
		return "*"
	}
	return g.Status.Result()
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a game's movetext, followed by the final board and
// status when configured.
func OutputGame(w io.Writer, game *Game, cfg *config.Config) {
	outputMoves(w, game, cfg)

	if cfg.Output.ShowBoard {
		fmt.Fprint(w, game.Final.Board.String())
	}
	if cfg.Output.ShowStatus {
		fmt.Fprintf(w, "Status: %s\n", game.Status)
	}
	fmt.Fprintln(w)
}

// outputMoves writes the numbered move list and the result.
func outputMoves(w io.Writer, game *Game, cfg *config.Config) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	for i, pm := range game.Moves {
		if cfg.Output.KeepMoveNumbers {
			switch {
			case pm.Colour == chess.White:
				ow.Write(fmt.Sprintf("%d.", pm.Number))
			case i == 0:
				ow.Write(fmt.Sprintf("%d...", pm.Number))
			}
		}
		ow.Write(formatMove(pm, cfg.Output.Format))
	}

	if cfg.Output.KeepResults {
		ow.Write(game.Result())
	}
	ow.NewLine()
}

// formatMove returns the move in the configured notation.
func formatMove(pm PlayedMove, format config.OutputFormat) string {
	if format == config.LALG {
		return pm.Move.String()
	}
	return pm.SAN
}
