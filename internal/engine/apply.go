package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ApplyMove moves piece from one square to another and updates all derived
// state: castling rook relocation, promotion, en passant capture, the en
// passant target, castling rights, the move number and the side to move.
//
// The move is only made if piece stands on from, belongs to the side to
// move, and to is one of its pseudo-legal destinations. Otherwise the state
// is left untouched and false is returned. Callers that need full legality
// should pick moves from LegalMoves.
//
// promotion selects the piece a pawn becomes on the far rank; chess.Empty
// or any other non-promotable kind means a queen.
func ApplyMove(state *GameState, piece chess.Piece, from, to chess.Square, promotion chess.Kind) bool {
	if piece.IsEmpty() || piece.Colour != state.ToMove {
		return false
	}
	if !from.OnBoard() || !to.OnBoard() || state.Board.Get(from) != piece {
		return false
	}
	if !PossibleMoves(piece, from, &state.Board, state.EnPassant, state.Castling).Contains(to) {
		return false
	}

	makeMove(state, piece, from, to, promotion)
	return true
}

// Play applies a move for whatever piece stands on its from square.
// Returns true if the move was applied.
func Play(state *GameState, move chess.Move) bool {
	return ApplyMove(state, state.Board.Get(move.From), move.From, move.To, move.Promotion)
}

// makeMove applies an already validated move.
func makeMove(state *GameState, piece chess.Piece, from, to chess.Square, promotion chess.Kind) {
	board := &state.Board
	colour := piece.Colour

	// Castling moves the rook first, while the squares still look as they
	// did when the move was generated.
	if side, ok := castlingSideFor(piece, from, to, board, state.Castling); ok {
		row := homeRow(colour)
		board.Set(chess.Sq(row, side.rookFrom), chess.NoPiece)
		board.Set(chess.Sq(row, side.rookTo), chess.Piece{Kind: chess.Rook, Colour: colour})
	}

	// Move the piece
	board.Set(from, chess.NoPiece)
	board.Set(to, piece)

	last := chess.Move{From: from, To: to}
	if piece.Kind == chess.Pawn {
		if to.Row == promotionRow(colour) {
			last.Promotion = promotionKind(promotion)
			board.Set(to, chess.Piece{Kind: last.Promotion, Colour: colour})
		}
		if isEnPassantCapture(piece, from, to, state.EnPassant) {
			board.Set(chess.Sq(from.Row, to.Col), chess.NoPiece)
		}
	}

	state.EnPassant = NoEnPassant
	if isDoublePawnStep(piece, from, to) {
		state.EnPassant = EnPassantOn(from.Col)
	}

	updateCastlingRights(&state.Castling, piece, from, to)

	if colour == chess.Black {
		state.MoveNumber++
	}
	state.ToMove = colour.Opposite()
	state.LastMove = last
	state.HasLastMove = true
}
