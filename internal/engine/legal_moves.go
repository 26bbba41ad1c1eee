package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// LegalMoves returns the destinations of piece on from that do not leave
// its own king in check. Each pseudo-legal candidate is played on a scratch
// copy of the state and kept only if the king is safe afterwards.
//
// The piece need not belong to the side to move; its moves are then judged
// as if it were its turn, without any en passant option.
func LegalMoves(state *GameState, piece chess.Piece, from chess.Square) chess.SquareSet {
	if piece.IsEmpty() || !from.OnBoard() || state.Board.Get(from) != piece {
		return 0
	}

	base := *state
	if piece.Colour != base.ToMove {
		base.ToMove = piece.Colour
		base.EnPassant = NoEnPassant
	}

	candidates := PossibleMoves(piece, from, &base.Board, base.EnPassant, base.Castling)
	moves := preventSelfCheck(&base, piece, from, candidates)

	// A king in check must be rescued; the same simulation decides which
	// moves do so.
	if IsInCheck(&base.Board, piece.Colour) {
		moves = preventSelfCheck(&base, piece, from, moves)
	}
	return moves
}

// preventSelfCheck drops every candidate after which the mover's king is attacked.
func preventSelfCheck(base *GameState, piece chess.Piece, from chess.Square, candidates chess.SquareSet) chess.SquareSet {
	moves := candidates
	for rest := candidates; !rest.IsEmpty(); {
		var to chess.Square
		to, rest = rest.Pop()
		if !leavesKingSafe(base, piece, from, to) {
			moves = moves.Remove(to)
		}
	}
	return moves
}

// leavesKingSafe plays one move on a copy of the state and reports
// whether the mover's king is out of check afterwards.
func leavesKingSafe(base *GameState, piece chess.Piece, from, to chess.Square) bool {
	scratch := *base
	makeMove(&scratch, piece, from, to, chess.Queen)
	return !IsInCheck(&scratch.Board, piece.Colour)
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(state *GameState, colour chess.Colour) bool {
	for _, pl := range state.Board.PiecesOf(colour) {
		if !LegalMoves(state, pl.Piece, pl.Square).IsEmpty() {
			return true
		}
	}
	return false
}

// AllLegalMoves lists every legal move of the side to move, piece by piece
// in board order. Promotions are listed once, without a promotion choice.
func AllLegalMoves(state *GameState) []chess.Move {
	var moves []chess.Move
	for _, pl := range state.Board.PiecesOf(state.ToMove) {
		for rest := LegalMoves(state, pl.Piece, pl.Square); !rest.IsEmpty(); {
			var to chess.Square
			to, rest = rest.Pop()
			moves = append(moves, chess.Move{From: pl.Square, To: to})
		}
	}
	return moves
}
