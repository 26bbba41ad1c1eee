package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Perft counts the leaf positions reached by playing every legal move
// sequence of the given depth. Promotions count once each (as a queen),
// matching the one-destination-per-square shape of LegalMoves.
func Perft(state *GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	var nodes uint64
	for _, pl := range state.Board.PiecesOf(state.ToMove) {
		moves := LegalMoves(state, pl.Piece, pl.Square)
		if depth == 1 {
			nodes += uint64(moves.Len())
			continue
		}
		for rest := moves; !rest.IsEmpty(); {
			var to chess.Square
			to, rest = rest.Pop()
			next := *state
			makeMove(&next, pl.Piece, pl.Square, to, chess.Queen)
			nodes += Perft(&next, depth-1)
		}
	}
	return nodes
}

// DivideEntry is the perft count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide runs Perft separately below each legal root move.
func Divide(state *GameState, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := AllLegalMoves(state)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		entries = append(entries, DivideEntry{Move: m, Nodes: PerftAfter(state, m, depth-1)})
	}
	return entries
}

// PerftAfter plays one legal move on a copy of the state and counts the
// leaves below it. It is the unit of work when a perft is split across
// goroutines: each call touches only its own copy.
func PerftAfter(state *GameState, move chess.Move, depth int) uint64 {
	next := *state
	if !Play(&next, move) {
		return 0
	}
	return Perft(&next, depth)
}
