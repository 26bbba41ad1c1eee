package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// direction is a (row, column) step.
type direction [2]int

var (
	diagonalDirs = []direction{{-1, -1}, {1, 1}, {1, -1}, {-1, 1}}
	straightDirs = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allDirs      = append(append([]direction{}, diagonalDirs...), straightDirs...)

	knightOffsets = []direction{{2, 1}, {1, 2}, {2, -1}, {1, -2}, {-2, 1}, {-1, 2}, {-2, -1}, {-1, -2}}
)

// castRays walks each direction square by square. Empty squares are
// destinations; the first occupied square ends the ray and is included
// only if it holds an enemy piece.
func castRays(piece chess.Piece, from chess.Square, board *chess.Board, dirs []direction) chess.SquareSet {
	var moves chess.SquareSet
	for _, dir := range dirs {
		sq := from.Offset(dir[0], dir[1])
		for sq.OnBoard() {
			target := board.Get(sq)
			if !target.IsEmpty() {
				if piece.IsEnemyOf(target) {
					moves = moves.Add(sq)
				}
				break // Blocked
			}
			moves = moves.Add(sq)
			sq = sq.Offset(dir[0], dir[1])
		}
	}
	return moves
}

// stepTo collects single-step destinations that are on the board and
// not occupied by a friendly piece.
func stepTo(piece chess.Piece, from chess.Square, board *chess.Board, offsets []direction) chess.SquareSet {
	var moves chess.SquareSet
	for _, off := range offsets {
		sq := from.Offset(off[0], off[1])
		if sq.OnBoard() && !piece.IsFriendOf(board.Get(sq)) {
			moves = moves.Add(sq)
		}
	}
	return moves
}
