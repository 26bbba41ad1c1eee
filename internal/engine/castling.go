package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// kingHomeCol is the e-file, where both kings start.
const kingHomeCol = 4

// castleSide describes one castling direction by column.
type castleSide struct {
	kingTo   int   // where the king lands
	rookFrom int   // the rook's home column
	rookTo   int   // where the rook lands; also the square the king crosses
	between  []int // squares that must be empty
}

var (
	kingsideCastle  = castleSide{kingTo: 6, rookFrom: 7, rookTo: 5, between: []int{5, 6}}
	queensideCastle = castleSide{kingTo: 2, rookFrom: 0, rookTo: 3, between: []int{1, 2, 3}}
)

// homeRow returns the back rank of a colour.
func homeRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.WhiteBackRank
	}
	return chess.BlackBackRank
}

// castlingMoves returns the king destinations for each castling option
// that is currently available.
//
// Each option needs the right, empty squares between king and rook, the
// rook on its home square, the king not in check, and the square the king
// crosses not attacked. The landing square is left to the legality filter,
// which rejects any move ending in check.
func castlingMoves(king chess.Piece, from chess.Square, board *chess.Board, castling CastlingRights) chess.SquareSet {
	row := homeRow(king.Colour)
	if from != chess.Sq(row, kingHomeCol) {
		return 0
	}

	var moves chess.SquareSet
	if castling.Kingside(king.Colour) && canCastle(king, board, kingsideCastle) {
		moves = moves.Add(chess.Sq(row, kingsideCastle.kingTo))
	}
	if castling.Queenside(king.Colour) && canCastle(king, board, queensideCastle) {
		moves = moves.Add(chess.Sq(row, queensideCastle.kingTo))
	}
	return moves
}

// canCastle checks the positional preconditions of one castling option.
func canCastle(king chess.Piece, board *chess.Board, side castleSide) bool {
	row := homeRow(king.Colour)
	for _, col := range side.between {
		if !board.IsEmptyAt(chess.Sq(row, col)) {
			return false
		}
	}
	if board.Get(chess.Sq(row, side.rookFrom)) != (chess.Piece{Kind: chess.Rook, Colour: king.Colour}) {
		return false
	}
	if IsInCheck(board, king.Colour) {
		return false
	}

	crossing := *board
	crossing.Set(chess.Sq(row, kingHomeCol), chess.NoPiece)
	crossing.Set(chess.Sq(row, side.rookTo), king)
	return !IsInCheck(&crossing, king.Colour)
}

// castlingSideFor returns the castling option a king move corresponds to,
// if any. It mirrors the checks made when the move was generated so that
// an ordinary one-square king move is never mistaken for castling.
func castlingSideFor(king chess.Piece, from, to chess.Square, board *chess.Board, castling CastlingRights) (castleSide, bool) {
	row := homeRow(king.Colour)
	if king.Kind != chess.King || from != chess.Sq(row, kingHomeCol) || to.Row != row {
		return castleSide{}, false
	}

	rook := chess.Piece{Kind: chess.Rook, Colour: king.Colour}
	for _, option := range []struct {
		allowed bool
		side    castleSide
	}{
		{castling.Kingside(king.Colour), kingsideCastle},
		{castling.Queenside(king.Colour), queensideCastle},
	} {
		side := option.side
		if !option.allowed || to.Col != side.kingTo {
			continue
		}
		if board.Get(chess.Sq(row, side.rookFrom)) != rook {
			continue
		}
		open := true
		for _, col := range side.between {
			if !board.IsEmptyAt(chess.Sq(row, col)) {
				open = false
				break
			}
		}
		if open {
			return side, true
		}
	}
	return castleSide{}, false
}

// Rook home squares, one per castling right.
var (
	whiteKingsideRook  = chess.Sq(chess.WhiteBackRank, 7)
	whiteQueensideRook = chess.Sq(chess.WhiteBackRank, 0)
	blackKingsideRook  = chess.Sq(chess.BlackBackRank, 7)
	blackQueensideRook = chess.Sq(chess.BlackBackRank, 0)
)

// updateCastlingRights removes the rights invalidated by a move.
// A king move clears both rights of its side. A move from or onto a rook's
// home square clears that rook's right, which covers both the rook moving
// away and the rook being captured where it stands.
func updateCastlingRights(rights *CastlingRights, piece chess.Piece, from, to chess.Square) {
	if piece.Kind == chess.King {
		if piece.Colour == chess.White {
			rights.WhiteKingside = false
			rights.WhiteQueenside = false
		} else {
			rights.BlackKingside = false
			rights.BlackQueenside = false
		}
	}
	clearRookRight(rights, from)
	clearRookRight(rights, to)
}

// clearRookRight clears the right guarded by a rook home square.
func clearRookRight(rights *CastlingRights, sq chess.Square) {
	switch sq {
	case whiteKingsideRook:
		rights.WhiteKingside = false
	case whiteQueensideRook:
		rights.WhiteQueenside = false
	case blackKingsideRook:
		rights.BlackKingside = false
	case blackQueensideRook:
		rights.BlackQueenside = false
	}
}
