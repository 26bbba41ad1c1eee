package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MustBoard parses a board diagram and calls t.Fatal if it is malformed.
// Diagrams use the same layout as Board.String: rank 8 first, one
// character per square, '.' for an empty square.
func MustBoard(t testing.TB, diagram string) chess.Board {
	t.Helper()
	board, err := chess.ParseBoard(diagram)
	if err != nil {
		t.Fatalf("failed to parse board diagram: %v\n%s", err, diagram)
	}
	return board
}

// MustSquare parses a square name such as "e4".
func MustSquare(t testing.TB, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("failed to parse square %q: %v", name, err)
	}
	return sq
}

// MustSquares parses a space separated list of square names into a set.
func MustSquares(t testing.TB, names string) chess.SquareSet {
	t.Helper()
	var set chess.SquareSet
	for _, name := range strings.Fields(names) {
		set = set.Add(MustSquare(t, name))
	}
	return set
}

// MustMoves parses coordinate-notation moves such as "e2e4" or "e7e8q".
func MustMoves(t testing.TB, moves ...string) []chess.Move {
	t.Helper()
	parsed := make([]chess.Move, 0, len(moves))
	for _, text := range moves {
		m, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("failed to parse move: %v", err)
		}
		parsed = append(parsed, m)
	}
	return parsed
}
