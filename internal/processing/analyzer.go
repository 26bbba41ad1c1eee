package processing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// GameAnalysis counts notable events in a replayed game.
type GameAnalysis struct {
	Plies      int
	Captures   int
	EnPassants int
	Checks     int
	Castles    int
	Promotions int

	HasUnderpromotion       bool
	HasInsufficientMaterial bool

	// Material at the end of the game, against each side's starting set.
	WhiteMissing       []chess.Kind
	BlackMissing       []chess.Kind
	MaterialDifference int // positive when White is ahead
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// MissingPieces returns the kinds the given side had lost by the end.
func (ga *GameAnalysis) MissingPieces(colour chess.Colour) []chess.Kind {
	if colour == chess.White {
		return ga.WhiteMissing
	}
	return ga.BlackMissing
}

// AnalyzeGame replays a game's recorded moves from start and tallies
// what happened. Moves are assumed legal, as Replay leaves them.
func AnalyzeGame(start *engine.GameState, game *output.Game) *GameAnalysis {
	analysis := &GameAnalysis{}
	state := *start

	for _, pm := range game.Moves {
		move := pm.Move
		piece := state.Board.Get(move.From)
		target := state.Board.Get(move.To)

		switch {
		case !target.IsEmpty():
			analysis.Captures++
		case piece.Kind == chess.Pawn && move.From.Col != move.To.Col:
			analysis.Captures++
			analysis.EnPassants++
		case piece.Kind == chess.King && (move.To.Col-move.From.Col == 2 || move.From.Col-move.To.Col == 2):
			analysis.Castles++
		}

		if !engine.Play(&state, move) {
			break
		}
		analysis.Plies++

		if move.Promotion != chess.Empty {
			analysis.Promotions++
			if move.Promotion != chess.Queen {
				analysis.HasUnderpromotion = true
			}
		}
		if engine.IsInCheck(&state.Board, state.ToMove) {
			analysis.Checks++
		}
	}

	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(&state.Board)
	analysis.WhiteMissing = state.Board.MissingPieces(chess.White)
	analysis.BlackMissing = state.Board.MissingPieces(chess.Black)
	analysis.MaterialDifference = state.Board.MaterialDifference()
	return analysis
}
