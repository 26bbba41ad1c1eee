package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnDirection returns the row step of a pawn: White moves towards row 0.
func pawnDirection(colour chess.Colour) int {
	if colour == chess.White {
		return -1
	}
	return 1
}

// pawnStartRow returns the row pawns of the colour start on.
func pawnStartRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.WhiteBackRank - 1
	}
	return chess.BlackBackRank + 1
}

// enPassantRow returns the row a pawn must stand on to capture en passant.
func enPassantRow(colour chess.Colour) int {
	if colour == chess.White {
		return 3
	}
	return 4
}

// promotionRow returns the far rank for pawns of the colour.
func promotionRow(colour chess.Colour) int {
	if colour == chess.White {
		return chess.BlackBackRank
	}
	return chess.WhiteBackRank
}

// pawnMoves generates pawn pushes, double pushes, captures and en passant.
func pawnMoves(pawn chess.Piece, from chess.Square, board *chess.Board, ep EnPassant) chess.SquareSet {
	var moves chess.SquareSet
	dir := pawnDirection(pawn.Colour)

	// Pushes only onto empty squares; the double step also needs the
	// intermediate square empty.
	one := from.Offset(dir, 0)
	if board.IsEmptyAt(one) {
		moves = moves.Add(one)
		two := from.Offset(2*dir, 0)
		if from.Row == pawnStartRow(pawn.Colour) && board.IsEmptyAt(two) {
			moves = moves.Add(two)
		}
	}

	// Diagonal captures only onto enemy pieces
	for _, dc := range [2]int{-1, 1} {
		target := from.Offset(dir, dc)
		if pawn.IsEnemyOf(board.Get(target)) {
			moves = moves.Add(target)
		}
	}

	if ep.Valid && from.Row == enPassantRow(pawn.Colour) && abs(from.Col-ep.Col) == 1 {
		moves = moves.Add(chess.Sq(from.Row+dir, ep.Col))
	}

	return moves
}

// isEnPassantCapture reports whether a pawn move from -> to takes a pawn en passant.
func isEnPassantCapture(pawn chess.Piece, from, to chess.Square, ep EnPassant) bool {
	return pawn.Kind == chess.Pawn &&
		ep.Valid &&
		from.Row == enPassantRow(pawn.Colour) &&
		to.Row == from.Row+pawnDirection(pawn.Colour) &&
		to.Col == ep.Col &&
		from.Col != to.Col
}

// isDoublePawnStep reports whether a pawn move is a two-square advance from its start row.
func isDoublePawnStep(pawn chess.Piece, from, to chess.Square) bool {
	return pawn.Kind == chess.Pawn &&
		from.Row == pawnStartRow(pawn.Colour) &&
		to.Row == from.Row+2*pawnDirection(pawn.Colour) &&
		from.Col == to.Col
}

// promotionKind resolves the piece a pawn becomes. Anything other than a
// valid choice promotes to a queen.
func promotionKind(choice chess.Kind) chess.Kind {
	if choice.IsPromotionChoice() {
		return choice
	}
	return chess.Queen
}
