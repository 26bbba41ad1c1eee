// Package notation renders moves in standard algebraic notation (SAN).
package notation

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Castling symbols.
const (
	KingsideCastle  = "O-O"
	QueensideCastle = "O-O-O"
)

// SAN returns the algebraic form of a move in the given position, e.g.
// "Nbd7", "exd6", "b8=Q+" or "O-O". The move is expected to be legal;
// an empty from square yields "". Only check and mate are marked; a move
// that ends the game in a draw carries no suffix.
func SAN(state *engine.GameState, move chess.Move) string {
	piece := state.Board.Get(move.From)
	if piece.IsEmpty() {
		return ""
	}

	var sb strings.Builder
	switch {
	case isCastling(piece, move):
		if move.To.Col > move.From.Col {
			sb.WriteString(KingsideCastle)
		} else {
			sb.WriteString(QueensideCastle)
		}
	case piece.Kind == chess.Pawn:
		if move.From.Col != move.To.Col {
			sb.WriteByte(move.From.File())
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if isPromotion(piece, move.To) {
			sb.WriteByte('=')
			sb.WriteByte(promotionOf(move).Letter())
		}
	default:
		sb.WriteByte(piece.Kind.Letter())
		sb.WriteString(disambiguation(state, piece, move))
		if !state.Board.IsEmptyAt(move.To) {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
	}

	sb.WriteString(checkSuffix(state, move))
	return sb.String()
}

// isCastling reports whether a king move spans two files.
func isCastling(piece chess.Piece, move chess.Move) bool {
	if piece.Kind != chess.King || move.From.Row != move.To.Row {
		return false
	}
	d := move.To.Col - move.From.Col
	return d == 2 || d == -2
}

func isPromotion(pawn chess.Piece, to chess.Square) bool {
	if pawn.Colour == chess.White {
		return to.Row == chess.BlackBackRank
	}
	return to.Row == chess.WhiteBackRank
}

// promotionOf returns the piece a promoting move produces; queen unless chosen.
func promotionOf(move chess.Move) chess.Kind {
	if move.Promotion.IsPromotionChoice() {
		return move.Promotion
	}
	return chess.Queen
}

// disambiguation returns the from-square qualifier needed when another
// piece of the same kind and colour can also reach the destination.
// The file is preferred, then the rank, then both.
func disambiguation(state *engine.GameState, piece chess.Piece, move chess.Move) string {
	if piece.Kind == chess.King {
		return ""
	}

	var rivals []chess.Square
	for _, pl := range state.Board.PiecesOf(piece.Colour) {
		if pl.Piece != piece || pl.Square == move.From {
			continue
		}
		if engine.LegalMoves(state, pl.Piece, pl.Square).Contains(move.To) {
			rivals = append(rivals, pl.Square)
		}
	}
	if len(rivals) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range rivals {
		if sq.Col == move.From.Col {
			sameFile = true
		}
		if sq.Row == move.From.Row {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(move.From.File())
	case !sameRank:
		return string(move.From.Rank())
	default:
		return move.From.String()
	}
}

// checkSuffix plays the move on a copy and returns "#", "+" or "".
func checkSuffix(state *engine.GameState, move chess.Move) string {
	next := *state
	if !engine.Play(&next, move) {
		return ""
	}
	opponent := next.ToMove
	if !engine.IsInCheck(&next.Board, opponent) {
		return ""
	}
	if engine.IsCheckmated(&next, opponent) {
		return "#"
	}
	return "+"
}
