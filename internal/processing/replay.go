// Package processing reads games in coordinate notation, replays them
// through the rules engine, and analyses the result.
package processing

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

// GameText is the raw move list of one game and where it came from.
type GameText struct {
	Line  int // 1-based line number in the input
	Moves []string
}

// ScanGames reads one game per line. Blank lines and lines starting
// with '#' are skipped.
func ScanGames(r io.Reader) ([]GameText, error) {
	var games []GameText
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		games = append(games, GameText{Line: line, Moves: SplitMoves(text)})
	}
	if err := scanner.Err(); err != nil {
		return games, errors.Wrap(err, "reading games")
	}
	return games, nil
}

// SplitMoves splits a line of movetext into move tokens, dropping move
// numbers such as "12." or "12..." and trailing result markers.
func SplitMoves(line string) []string {
	var moves []string
	for _, tok := range strings.Fields(line) {
		if isResult(tok) {
			continue
		}
		if i := strings.IndexByte(tok, '.'); i >= 0 {
			if !isMoveNumber(tok[:i]) {
				moves = append(moves, tok)
				continue
			}
			// "1.e4" style: keep what follows the dots
			tok = strings.TrimLeft(tok[i:], ".")
			if tok == "" {
				continue
			}
		}
		moves = append(moves, tok)
	}
	return moves
}

func isMoveNumber(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isResult checks if a token is a game result marker.
func isResult(tok string) bool {
	switch tok {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	default:
		return false
	}
}

// Replay plays a game's moves from start and records each one as played.
// Replay stops at the first move that cannot be parsed, is illegal, or
// comes after the game has ended; game.Err then says why and which ply.
func Replay(start *engine.GameState, text GameText, number int, cfg *config.Config) *output.Game {
	game := &output.Game{Number: number}
	state := *start

	for i, moveText := range text.Moves {
		fail := func(err error) {
			game.Err = &errors.GameError{
				Err:      err,
				GameNum:  number,
				PlyNum:   i + 1,
				MoveText: moveText,
				File:     cfg.CurrentInputFile,
			}
		}

		move, err := chess.ParseMove(moveText)
		if err != nil {
			fail(err)
			break
		}
		if !cfg.Play.AllowMovesAfterEnd && engine.GameStatus(&state).IsOver() {
			fail(errors.ErrGameOver)
			break
		}

		piece := state.Board.Get(move.From)
		if piece.IsEmpty() || piece.Colour != state.ToMove ||
			!engine.LegalMoves(&state, piece, move.From).Contains(move.To) {
			fail(errors.ErrIllegalMove)
			break
		}

		move.Promotion = promotionFor(piece, move, cfg.Play.Promotion)
		game.Moves = append(game.Moves, output.NewPlayedMove(&state, move))
		engine.Play(&state, move)
	}

	game.Final = state
	game.Status = engine.GameStatus(&state)
	return game
}

// promotionFor returns the promotion a move carries once played: the
// chosen piece for a pawn reaching the far rank (fallback if none was
// named), and nothing for any other move.
func promotionFor(piece chess.Piece, move chess.Move, fallback chess.Kind) chess.Kind {
	if piece.Kind != chess.Pawn {
		return chess.Empty
	}
	farRank := chess.BlackBackRank
	if piece.Colour == chess.Black {
		farRank = chess.WhiteBackRank
	}
	if move.To.Row != farRank {
		return chess.Empty
	}
	if move.Promotion.IsPromotionChoice() {
		return move.Promotion
	}
	return fallback
}

// ShouldOutput reports whether a replayed game is written: complete games
// always are, broken ones only when configured.
func ShouldOutput(game *output.Game, cfg *config.Config) bool {
	return game.Err == nil || cfg.Play.KeepBrokenGames
}
