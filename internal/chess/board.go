package chess

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board is a fixed 8x8 grid of pieces indexed as Squares[row][col].
// It is a plain value: assigning a Board copies it.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// backRank is the piece order on both back ranks, a-file to h-file.
var backRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard creates an empty board.
func NewBoard() Board {
	return Board{}
}

// InitialBoard returns the standard chess starting position.
func InitialBoard() Board {
	var b Board
	for col := 0; col < BoardSize; col++ {
		b.Squares[BlackBackRank][col] = B(backRank[col])
		b.Squares[BlackBackRank+1][col] = B(Pawn)
		b.Squares[WhiteBackRank-1][col] = W(Pawn)
		b.Squares[WhiteBackRank][col] = W(backRank[col])
	}
	return b
}

// Get returns the piece at the given square, or NoPiece if the square is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.OnBoard() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// IsEmptyAt returns true if the square is on the board and holds no piece.
func (b *Board) IsEmptyAt(sq Square) bool {
	return sq.OnBoard() && b.Squares[sq.Row][sq.Col].IsEmpty()
}

// Placement is a piece together with the square it stands on.
type Placement struct {
	Piece  Piece
	Square Square
}

// PiecesOf returns every piece of the given colour in board order.
func (b *Board) PiecesOf(colour Colour) []Placement {
	var placements []Placement
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			p := b.Squares[row][col]
			if !p.IsEmpty() && p.Colour == colour {
				placements = append(placements, Placement{Piece: p, Square: Sq(row, col)})
			}
		}
	}
	return placements
}

// startingSet is how many of each kind a side begins with, kings aside,
// in the order missing pieces are listed.
var startingSet = []struct {
	kind  Kind
	count int
}{{Pawn, 8}, {Rook, 2}, {Bishop, 2}, {Knight, 2}, {Queen, 1}}

// MissingPieces returns the kinds a side no longer has compared with the
// starting set. Pieces beyond the starting count, as after a promotion,
// do not offset anything else.
func (b *Board) MissingPieces(colour Colour) []Kind {
	var have [NumKinds]int
	for _, pl := range b.PiecesOf(colour) {
		have[pl.Piece.Kind]++
	}
	var missing []Kind
	for _, s := range startingSet {
		for n := have[s.kind]; n < s.count; n++ {
			missing = append(missing, s.kind)
		}
	}
	return missing
}

// MaterialDifference returns the value of Black's missing pieces minus
// the value of White's. A positive result means White is ahead.
func (b *Board) MaterialDifference() int {
	diff := 0
	for _, k := range b.MissingPieces(Black) {
		diff += k.Value()
	}
	for _, k := range b.MissingPieces(White) {
		diff -= k.Value()
	}
	return diff
}

// Find returns the first square holding the given piece.
func (b *Board) Find(piece Piece) (Square, bool) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == piece {
				return Sq(row, col), true
			}
		}
	}
	return Square{}, false
}

// String renders the board as eight lines of piece letters, Black's back
// rank first. Empty squares are shown as '.'.
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(BoardSize * (BoardSize + 1))
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(b.Squares[row][col].Letter())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard reads a board in the format produced by String.
// Blank lines and lines starting with '#' are skipped; '.' and ' ' both
// denote an empty square. A row that is not exactly eight characters wide
// is read with its surrounding whitespace removed.
func ParseBoard(diagram string) (Board, error) {
	var b Board
	row := 0
	lineNum := 0
	scanner := bufio.NewScanner(strings.NewReader(diagram))
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if row >= BoardSize {
			return Board{}, &errors.ParseError{
				Err:  errors.ErrInvalidBoard,
				Line: lineNum,
				Got:  "extra row",
			}
		}
		if len(line) != BoardSize {
			// indented or padded rows; spaces inside a row stay empty squares
			line = trimmed
		}
		if len(line) != BoardSize {
			return Board{}, &errors.ParseError{
				Err:      errors.ErrInvalidBoard,
				Line:     lineNum,
				Expected: fmt.Sprintf("%d squares", BoardSize),
				Got:      fmt.Sprintf("%d", len(line)),
			}
		}
		for col := 0; col < BoardSize; col++ {
			letter := line[col]
			if letter == '.' || letter == ' ' {
				continue
			}
			piece := PieceFromLetter(letter)
			if piece.IsEmpty() {
				return Board{}, &errors.ParseError{
					Err:      errors.ErrInvalidBoard,
					Line:     lineNum,
					Column:   col + 1,
					Expected: "piece letter",
					Got:      fmt.Sprintf("%q", letter),
				}
			}
			b.Squares[row][col] = piece
		}
		row++
	}
	if row != BoardSize {
		return Board{}, &errors.ParseError{
			Err:      errors.ErrInvalidBoard,
			Line:     lineNum,
			Expected: fmt.Sprintf("%d rows", BoardSize),
			Got:      fmt.Sprintf("%d", row),
		}
	}
	return b, nil
}

// MustParseBoard is like ParseBoard but panics on error.
// It is intended for fixed positions in tests and examples.
func MustParseBoard(diagram string) Board {
	b, err := ParseBoard(diagram)
	if err != nil {
		panic(err)
	}
	return b
}
