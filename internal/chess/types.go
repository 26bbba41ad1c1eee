// Package chess provides core chess types and operations.
package chess

import (
	"fmt"
	"math/bits"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind represents a chess piece type. The zero value is an empty square.
type Kind int

const (
	Empty Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter (either case) to a Kind.
// Returns Empty if the letter is not a piece.
func KindFromLetter(letter byte) Kind {
	switch letter {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return Empty
}

// Value returns the conventional material value of a kind: 1 for a pawn,
// 3 for a knight or bishop, 5 for a rook and 9 for a queen. Kings and
// empty squares are worth 0.
func (k Kind) Value() int {
	switch k {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// IsPromotionChoice returns true if a pawn may promote to this kind.
func (k Kind) IsPromotionChoice() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// Piece is a kind tagged with the colour that owns it.
// The zero value is an empty square.
type Piece struct {
	Kind   Kind
	Colour Colour
}

// NoPiece is the content of an empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(kind Kind) Piece {
	return Piece{Kind: kind, Colour: White}
}

// B creates a black piece.
func B(kind Kind) Piece {
	return Piece{Kind: kind, Colour: Black}
}

// IsEmpty returns true if the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == Empty
}

// IsFriendOf returns true if both pieces are present and share a colour.
func (p Piece) IsFriendOf(other Piece) bool {
	return !p.IsEmpty() && !other.IsEmpty() && p.Colour == other.Colour
}

// IsEnemyOf returns true if both pieces are present and have different colours.
func (p Piece) IsEnemyOf(other Piece) bool {
	return !p.IsEmpty() && !other.IsEmpty() && p.Colour != other.Colour
}

// Letter returns the board letter for the piece: uppercase for White,
// lowercase for Black and '.' for an empty square.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.IsEmpty() || p.Colour == White {
		return letter
	}
	return letter + ('a' - 'A')
}

// String returns a readable name such as "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Kind.String()
}

// PieceFromLetter converts a board letter to a piece.
// Uppercase letters are White, lowercase Black; anything else is empty.
func PieceFromLetter(letter byte) Piece {
	kind := KindFromLetter(letter)
	if kind == Empty {
		return NoPiece
	}
	if letter >= 'a' && letter <= 'z' {
		return B(kind)
	}
	return W(kind)
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	// BlackBackRank and WhiteBackRank are the home rows of each side.
	BlackBackRank = 0
	WhiteBackRank = BoardSize - 1

	ColBase = 'a'
)

// Square is a (row, column) pair. Row 0 is Black's back rank and
// row 7 is White's; column 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// Sq is shorthand for constructing a square.
func Sq(row, col int) Square {
	return Square{Row: row, Col: col}
}

// OnBoard returns true if the square lies within the 8x8 board.
func (s Square) OnBoard() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square displaced by the given row and column deltas.
// The result may be off the board.
func (s Square) Offset(dRow, dCol int) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

// Index returns the 0-63 index of the square (row-major from a8).
func (s Square) Index() int {
	return s.Row*BoardSize + s.Col
}

// File returns the file letter ('a'-'h') of the square.
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// Rank returns the rank digit ('1'-'8') of the square.
func (s Square) Rank() byte {
	return byte('8' - s.Row)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.OnBoard() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{s.File(), s.Rank()})
}

// ParseSquare converts an algebraic square name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return Square{}, fmt.Errorf("square %q: want file and rank: %w", name, errors.ErrInvalidMove)
	}
	file, rank := name[0], name[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Square{}, fmt.Errorf("square %q: out of range: %w", name, errors.ErrInvalidMove)
	}
	return Square{Row: int('8' - rank), Col: int(file - ColBase)}, nil
}

// SquareSet is a set of board squares stored as a 64-bit mask.
// It is a value type and never allocates.
type SquareSet uint64

// Add returns the set with the square included. Off-board squares are ignored.
func (s SquareSet) Add(sq Square) SquareSet {
	if !sq.OnBoard() {
		return s
	}
	return s | 1<<uint(sq.Index())
}

// Remove returns the set without the square.
func (s SquareSet) Remove(sq Square) SquareSet {
	if !sq.OnBoard() {
		return s
	}
	return s &^ (1 << uint(sq.Index()))
}

// Contains reports whether the square is a member of the set.
func (s SquareSet) Contains(sq Square) bool {
	return sq.OnBoard() && s&(1<<uint(sq.Index())) != 0
}

// Len returns the number of squares in the set.
func (s SquareSet) Len() int {
	return bits.OnesCount64(uint64(s))
}

// IsEmpty returns true if the set has no members.
func (s SquareSet) IsEmpty() bool {
	return s == 0
}

// Pop returns the lowest-indexed member and the set without it.
// Calling Pop on an empty set returns the zero Square and the empty set.
func (s SquareSet) Pop() (Square, SquareSet) {
	if s == 0 {
		return Square{}, 0
	}
	idx := bits.TrailingZeros64(uint64(s))
	return Square{Row: idx / BoardSize, Col: idx % BoardSize}, s & (s - 1)
}

// Squares returns the members in index order (a8 first, h1 last).
func (s SquareSet) Squares() []Square {
	squares := make([]Square, 0, s.Len())
	for rest := uint64(s); rest != 0; rest &= rest - 1 {
		idx := bits.TrailingZeros64(rest)
		squares = append(squares, Square{Row: idx / BoardSize, Col: idx % BoardSize})
	}
	return squares
}
