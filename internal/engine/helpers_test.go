package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

// mustPlay plays coordinate moves on state, failing the test on the first
// move that is not legal.
func mustPlay(t testing.TB, state *GameState, moves ...string) {
	t.Helper()
	for _, m := range testutil.MustMoves(t, moves...) {
		piece := state.Board.Get(m.From)
		if !LegalMoves(state, piece, m.From).Contains(m.To) {
			t.Fatalf("%s is not legal in\n%s", m, state)
		}
		if !Play(state, m) {
			t.Fatalf("Play(%s) = false", m)
		}
	}
}

// position builds a state from a diagram.
func position(t testing.TB, diagram string, toMove chess.Colour, castling CastlingRights) GameState {
	t.Helper()
	return NewGameFromBoard(testutil.MustBoard(t, diagram), toMove, castling)
}

// mirror flips the board top to bottom and swaps the colours of all pieces.
func mirror(state GameState) GameState {
	var m GameState
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := state.Board.Squares[chess.BoardSize-1-row][col]
			if !p.IsEmpty() {
				p.Colour = p.Colour.Opposite()
			}
			m.Board.Squares[row][col] = p
		}
	}
	m.Castling = CastlingRights{
		WhiteKingside:  state.Castling.BlackKingside,
		WhiteQueenside: state.Castling.BlackQueenside,
		BlackKingside:  state.Castling.WhiteKingside,
		BlackQueenside: state.Castling.WhiteQueenside,
	}
	m.EnPassant = state.EnPassant
	m.ToMove = state.ToMove.Opposite()
	m.MoveNumber = state.MoveNumber
	return m
}

// mirrorSquare maps a square to its counterpart on the mirrored board.
func mirrorSquare(sq chess.Square) chess.Square {
	return chess.Sq(chess.BoardSize-1-sq.Row, sq.Col)
}

// Well known test positions.
const (
	kiwipeteDiagram = `
r...k..r
p.ppqpb.
bn..pnp.
...PN...
.p..P...
..N..Q.p
PPPBBPPP
R...K..R
`
	endgameDiagram = `
........
..p.....
...p....
KP.....r
.R...p.k
........
....P.P.
........
`
	promotionsDiagram = `
r...k..r
Pppp.ppp
.b...nbN
nP......
BBP.P...
q....N..
Pp.P..PP
R..Q.RK.
`
)

func kiwipete(t testing.TB) GameState {
	t.Helper()
	return position(t, kiwipeteDiagram, chess.White, AllCastlingRights())
}
