package processing

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StartPosition builds a game state from a board diagram. Castling
// rights are granted wherever a king and rook still stand on their home
// squares, and no en passant capture is available.
func StartPosition(diagram string, toMove chess.Colour) (engine.GameState, error) {
	board, err := chess.ParseBoard(diagram)
	if err != nil {
		return engine.GameState{}, err
	}
	if err := checkKings(&board); err != nil {
		return engine.GameState{}, err
	}
	return engine.NewGameFromBoard(board, toMove, InferCastling(&board)), nil
}

// checkKings requires exactly one king per side.
func checkKings(board *chess.Board) error {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kings := 0
		for _, pl := range board.PiecesOf(colour) {
			if pl.Piece.Kind == chess.King {
				kings++
			}
		}
		if kings != 1 {
			return fmt.Errorf("%v has %d kings: %w", colour, kings, errors.ErrInvalidBoard)
		}
	}
	return nil
}

// InferCastling returns the castling rights consistent with the piece
// placement alone.
func InferCastling(board *chess.Board) engine.CastlingRights {
	var rights engine.CastlingRights
	homeRook := func(row, col int, colour chess.Colour) bool {
		return board.Get(chess.Sq(row, col)) == chess.Piece{Kind: chess.Rook, Colour: colour}
	}

	if board.Get(chess.Sq(chess.WhiteBackRank, 4)) == chess.W(chess.King) {
		rights.WhiteKingside = homeRook(chess.WhiteBackRank, 7, chess.White)
		rights.WhiteQueenside = homeRook(chess.WhiteBackRank, 0, chess.White)
	}
	if board.Get(chess.Sq(chess.BlackBackRank, 4)) == chess.B(chess.King) {
		rights.BlackKingside = homeRook(chess.BlackBackRank, 7, chess.Black)
		rights.BlackQueenside = homeRook(chess.BlackBackRank, 0, chess.Black)
	}
	return rights
}
