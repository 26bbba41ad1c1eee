package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// PossibleMoves returns the pseudo-legal destinations of piece standing on
// from: squares it may reach by its movement pattern and occupancy rules,
// without regard to whether the move leaves its own king in check.
//
// An empty piece or an off-board square yields the empty set.
func PossibleMoves(piece chess.Piece, from chess.Square, board *chess.Board, ep EnPassant, castling CastlingRights) chess.SquareSet {
	if piece.IsEmpty() || !from.OnBoard() {
		return 0
	}

	switch piece.Kind {
	case chess.Pawn:
		return pawnMoves(piece, from, board, ep)

	case chess.Knight:
		return stepTo(piece, from, board, knightOffsets)

	case chess.Bishop:
		return castRays(piece, from, board, diagonalDirs)

	case chess.Rook:
		return castRays(piece, from, board, straightDirs)

	case chess.Queen:
		return castRays(piece, from, board, allDirs)

	case chess.King:
		return stepTo(piece, from, board, allDirs) | castlingMoves(piece, from, board, castling)
	}

	return 0
}

// attackedSquares returns the squares a piece threatens. Castling and en
// passant never capture a king, so they are left out; this also keeps
// castling generation, which itself asks about check, from recursing.
func attackedSquares(piece chess.Piece, from chess.Square, board *chess.Board) chess.SquareSet {
	return PossibleMoves(piece, from, board, NoEnPassant, CastlingRights{})
}
