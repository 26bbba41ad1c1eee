// Package engine implements the chess rules: pseudo-legal move generation,
// check detection, legality filtering, move application and game-end detection.
//
// Every query takes a GameState snapshot and returns a fresh result. The only
// mutator is ApplyMove, which updates the one state it is handed. Illegal or
// malformed requests are never errors: queries return empty sets and
// ApplyMove leaves the state unchanged.
package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// CastlingRights holds the four independent castling permissions.
// A right only ever goes from true to false over a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns the rights at the start of a game.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Kingside reports the kingside right for a colour.
func (c CastlingRights) Kingside(colour chess.Colour) bool {
	if colour == chess.White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside reports the queenside right for a colour.
func (c CastlingRights) Queenside(colour chess.Colour) bool {
	if colour == chess.White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// None returns true if no castling right remains for either side.
func (c CastlingRights) None() bool {
	return !c.WhiteKingside && !c.WhiteQueenside && !c.BlackKingside && !c.BlackQueenside
}

// EnPassant is the file a pawn has just double-stepped through.
// It is only meaningful for the half-move immediately following that step.
type EnPassant struct {
	Valid bool
	Col   int
}

// NoEnPassant is the en passant state when the last move was not a double pawn step.
var NoEnPassant = EnPassant{}

// EnPassantOn returns an en passant target on the given column.
func EnPassantOn(col int) EnPassant {
	return EnPassant{Valid: true, Col: col}
}

// GameState is the complete rules state of a game. It holds no pointers,
// so plain assignment produces an independent copy.
type GameState struct {
	Board     chess.Board
	Castling  CastlingRights
	EnPassant EnPassant

	// Who has the next move.
	ToMove chess.Colour

	// The current full-move number. It starts at 1 and is incremented
	// after each of Black's moves.
	MoveNumber uint

	// The start and end squares of the most recent move, for presentation.
	LastMove    chess.Move
	HasLastMove bool
}

// NewGame returns the standard starting position with White to move.
func NewGame() GameState {
	return GameState{
		Board:      chess.InitialBoard(),
		Castling:   AllCastlingRights(),
		ToMove:     chess.White,
		MoveNumber: 1,
	}
}

// NewGameFromBoard returns a state for an arbitrary position.
// Castling rights are taken as given; the caller is responsible for them
// being consistent with the piece placement.
func NewGameFromBoard(board chess.Board, toMove chess.Colour, castling CastlingRights) GameState {
	return GameState{
		Board:      board,
		Castling:   castling,
		ToMove:     toMove,
		MoveNumber: 1,
	}
}

// Clone returns an independent copy of the state.
func (g *GameState) Clone() GameState {
	return *g
}

// String renders the board followed by the side to move.
func (g GameState) String() string {
	return g.Board.String() + g.ToMove.String() + " to move\n"
}
