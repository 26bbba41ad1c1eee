package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestCastling_Generation(t *testing.T) {
	tests := []struct {
		name     string
		diagram  string
		castling CastlingRights
		want     string // legal king destinations from e1
	}{
		{
			name: "both sides open",
			diagram: `
....k...
........
........
........
........
........
........
R...K..R
`,
			castling: AllCastlingRights(),
			want:     "c1 d1 f1 g1 d2 e2 f2",
		},
		{
			name: "no rights",
			diagram: `
....k...
........
........
........
........
........
........
R...K..R
`,
			want: "d1 f1 d2 e2 f2",
		},
		{
			name: "pieces in the way",
			diagram: `
....k...
........
........
........
........
........
........
RN..K.NR
`,
			castling: AllCastlingRights(),
			want:     "d1 f1 d2 e2 f2",
		},
		{
			name: "crossing square attacked",
			diagram: `
....k...
........
........
........
........
.....r..
........
R...K..R
`,
			castling: AllCastlingRights(),
			want:     "c1 d1 d2 e2",
		},
		{
			name: "landing square attacked",
			diagram: `
....k...
........
........
........
........
......r.
........
R...K..R
`,
			castling: AllCastlingRights(),
			want:     "c1 d1 f1 d2 e2 f2",
		},
		{
			name: "rook's path attacked on queenside",
			diagram: `
....k...
........
........
........
........
.r......
........
R...K..R
`,
			castling: AllCastlingRights(),
			want:     "c1 d1 f1 g1 d2 e2 f2",
		},
		{
			name: "in check",
			diagram: `
....k...
........
........
........
........
....r...
........
R...K..R
`,
			castling: AllCastlingRights(),
			want:     "d1 f1 d2 f2",
		},
		{
			name: "rook missing",
			diagram: `
....k...
........
........
........
........
........
........
....K..R
`,
			castling: AllCastlingRights(),
			want:     "d1 f1 g1 d2 e2 f2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := position(t, tt.diagram, chess.White, tt.castling)
			e1 := testutil.MustSquare(t, "e1")
			got := LegalMoves(&state, chess.W(chess.King), e1)
			testutil.AssertEqual(t, got.Squares(), testutil.MustSquares(t, tt.want).Squares())

			// Black sees the same thing on the mirrored board.
			m := mirror(state)
			e8 := testutil.MustSquare(t, "e8")
			mgot := LegalMoves(&m, chess.B(chess.King), e8)
			var want chess.SquareSet
			for _, sq := range got.Squares() {
				want = want.Add(mirrorSquare(sq))
			}
			testutil.AssertEqual(t, mgot.Squares(), want.Squares(), "mirrored")
		})
	}
}

func TestCastling_KingOffHomeSquare(t *testing.T) {
	state := position(t, `
....k...
........
........
........
........
........
........
R....K.R
`, chess.White, AllCastlingRights())

	f1 := testutil.MustSquare(t, "f1")
	got := PossibleMoves(chess.W(chess.King), f1, &state.Board, state.EnPassant, state.Castling)
	testutil.AssertFalse(t, got.Contains(testutil.MustSquare(t, "h1")))
	testutil.AssertFalse(t, got.Contains(testutil.MustSquare(t, "d1")))
	testutil.AssertEqual(t, got.Len(), 5)
}

func TestCastling_RookRelocation(t *testing.T) {
	diagram := `
r...k..r
........
........
........
........
........
........
R...K..R
`
	tests := []struct {
		name   string
		toMove chess.Colour
		move   string
		want   string
	}{
		{
			name:   "white kingside",
			toMove: chess.White,
			move:   "e1g1",
			want: `
r...k..r
........
........
........
........
........
........
R....RK.
`,
		},
		{
			name:   "white queenside",
			toMove: chess.White,
			move:   "e1c1",
			want: `
r...k..r
........
........
........
........
........
........
..KR...R
`,
		},
		{
			name:   "black kingside",
			toMove: chess.Black,
			move:   "e8g8",
			want: `
r....rk.
........
........
........
........
........
........
R...K..R
`,
		},
		{
			name:   "black queenside",
			toMove: chess.Black,
			move:   "e8c8",
			want: `
..kr...r
........
........
........
........
........
........
R...K..R
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := position(t, diagram, tt.toMove, AllCastlingRights())
			mustPlay(t, &state, tt.move)
			testutil.AssertEqual(t, state.Board, testutil.MustBoard(t, tt.want))
			testutil.AssertFalse(t, state.Castling.Kingside(tt.toMove), "kingside right cleared")
			testutil.AssertFalse(t, state.Castling.Queenside(tt.toMove), "queenside right cleared")
			testutil.AssertTrue(t, state.Castling.Kingside(tt.toMove.Opposite()), "opponent keeps kingside right")
			testutil.AssertTrue(t, state.Castling.Queenside(tt.toMove.Opposite()), "opponent keeps queenside right")
		})
	}
}

func TestCastling_RightsUpdates(t *testing.T) {
	t.Run("king move clears both", func(t *testing.T) {
		state := NewGame()
		mustPlay(t, &state, "e2e4", "e7e5", "e1e2")
		testutil.AssertEqual(t, state.Castling, CastlingRights{BlackKingside: true, BlackQueenside: true})

		mustPlay(t, &state, "e8e7", "e2e1")
		testutil.AssertTrue(t, state.Castling.None(), "rights never come back")
	})

	t.Run("rook move clears its side", func(t *testing.T) {
		state := NewGame()
		mustPlay(t, &state, "h2h4", "a7a5", "h1h3", "a8a6")
		testutil.AssertEqual(t, state.Castling, CastlingRights{WhiteQueenside: true, BlackKingside: true})
	})

	t.Run("rook captured on its home square", func(t *testing.T) {
		diagram := `
r...k..r
........
........
........
........
........
.B....B.
R...K...
`
		rights := CastlingRights{WhiteQueenside: true, BlackKingside: true, BlackQueenside: true}

		state := position(t, diagram, chess.White, rights)
		mustPlay(t, &state, "b2h8")
		testutil.AssertEqual(t, state.Castling, CastlingRights{WhiteQueenside: true, BlackQueenside: true})

		state = position(t, diagram, chess.White, rights)
		mustPlay(t, &state, "g2a8")
		testutil.AssertEqual(t, state.Castling, CastlingRights{WhiteQueenside: true, BlackKingside: true})

		state = position(t, diagram, chess.White, rights)
		mustPlay(t, &state, "a1a2")
		testutil.AssertEqual(t, state.Castling, CastlingRights{BlackKingside: true, BlackQueenside: true})
	})
}
