package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked.
// A board without that king is never in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, found := board.Find(chess.Piece{Kind: chess.King, Colour: colour})
	if !found {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour could move onto
// sq by its pseudo-legal movement pattern. It is meant for occupied
// squares: on an empty square a pawn push counts and a pawn diagonal does not.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			piece := board.Squares[row][col]
			if piece.IsEmpty() || piece.Colour != byColour {
				continue
			}
			if attackedSquares(piece, chess.Sq(row, col), board).Contains(sq) {
				return true
			}
		}
	}
	return false
}
