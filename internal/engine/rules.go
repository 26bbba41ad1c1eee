package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Status is the derived condition of a game. It is computed on demand from
// a GameState and never stored.
type Status int

const (
	Normal Status = iota
	WhiteInCheck
	BlackInCheck
	WhiteCheckmated
	BlackCheckmated
	Stalemate
	DrawnByMaterial
)

// String returns the string representation of a status.
func (s Status) String() string {
	names := []string{"Normal", "WhiteInCheck", "BlackInCheck", "WhiteCheckmated", "BlackCheckmated", "Stalemate", "DrawnByMaterial"}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsOver returns true if the status ends the game.
func (s Status) IsOver() bool {
	return s == WhiteCheckmated || s == BlackCheckmated || s == Stalemate || s == DrawnByMaterial
}

// Result returns the game result in the usual score notation, or "*" if
// the game is still in progress.
func (s Status) Result() string {
	switch s {
	case WhiteCheckmated:
		return "0-1"
	case BlackCheckmated:
		return "1-0"
	case Stalemate, DrawnByMaterial:
		return "1/2-1/2"
	}
	return "*"
}

// GameStatus derives the status of a position. Checkmate of either side
// takes precedence over a draw, and a draw over a plain check.
func GameStatus(state *GameState) Status {
	if IsCheckmated(state, chess.White) {
		return WhiteCheckmated
	}
	if IsCheckmated(state, chess.Black) {
		return BlackCheckmated
	}
	if HasInsufficientMaterial(&state.Board) {
		return DrawnByMaterial
	}
	if IsStalemate(state) {
		return Stalemate
	}
	if IsInCheck(&state.Board, chess.White) {
		return WhiteInCheck
	}
	if IsInCheck(&state.Board, chess.Black) {
		return BlackInCheck
	}
	return Normal
}

// IsCheckmated returns true if player's king is in check and none of
// player's pieces has a legal move.
func IsCheckmated(state *GameState, player chess.Colour) bool {
	return IsInCheck(&state.Board, player) && !HasLegalMoves(state, player)
}

// IsStalemate returns true if the side to move is not in check but has no legal move.
func IsStalemate(state *GameState) bool {
	colour := state.ToMove
	return !IsInCheck(&state.Board, colour) && !HasLegalMoves(state, colour)
}

// IsDrawn returns true if any draw condition holds: insufficient material
// or stalemate. The conditions are independent and may overlap.
func IsDrawn(state *GameState) bool {
	return HasInsufficientMaterial(&state.Board) || IsStalemate(state)
}

// HasInsufficientMaterial returns true if neither side can mate.
// Only two cases are recognised:
// - K vs K
// - K+B or K+N vs K
func HasInsufficientMaterial(board *chess.Board) bool {
	white := board.PiecesOf(chess.White)
	black := board.PiecesOf(chess.Black)

	// K vs K
	if len(white) == 1 && len(black) == 1 {
		return true
	}

	// K+minor vs K
	if len(white) == 2 && len(black) == 1 {
		return hasMinorPiece(white)
	}
	if len(black) == 2 && len(white) == 1 {
		return hasMinorPiece(black)
	}

	return false
}

// hasMinorPiece returns true if any placement is a bishop or knight.
func hasMinorPiece(placements []chess.Placement) bool {
	for _, pl := range placements {
		if pl.Piece.Kind == chess.Bishop || pl.Piece.Kind == chess.Knight {
			return true
		}
	}
	return false
}
