package output

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Number     int          `json:"number"`
	Moves      []JSONMove   `json:"moves,omitempty"`
	Result     string       `json:"result"`
	Status     string       `json:"status"`
	PlyCount   int          `json:"plyCount"`
	ToMove     string       `json:"toMove"`
	FinalBoard []string     `json:"finalBoard,omitempty"`
	Material   JSONMaterial `json:"material"`
	Error      string       `json:"error,omitempty"`
}

// JSONMaterial lists the pieces each side has lost by the final position.
type JSONMaterial struct {
	WhiteLost  string `json:"whiteLost"`
	BlackLost  string `json:"blackLost"`
	Difference int    `json:"difference"` // positive when White is ahead
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Promotion  string `json:"promotion,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a replayed game to JSON format.
func GameToJSON(game *Game, showBoard bool) *JSONGame {
	jg := &JSONGame{
		Number:   game.Number,
		Moves:    make([]JSONMove, 0, len(game.Moves)),
		Result:   game.Result(),
		Status:   game.Status.String(),
		PlyCount: len(game.Moves),
		ToMove:   colorName(game.Final.ToMove),
		Material: JSONMaterial{
			WhiteLost:  KindLetters(game.Final.Board.MissingPieces(chess.White)),
			BlackLost:  KindLetters(game.Final.Board.MissingPieces(chess.Black)),
			Difference: game.Final.Board.MaterialDifference(),
		},
	}

	for _, pm := range game.Moves {
		jm := JSONMove{
			MoveNumber: int(pm.Number),
			Color:      colorName(pm.Colour),
			SAN:        pm.SAN,
			UCI:        pm.Move.String(),
			From:       pm.Move.From.String(),
			To:         pm.Move.To.String(),
		}
		if pm.Move.Promotion != chess.Empty {
			jm.Promotion = strings.ToLower(pm.Move.Promotion.String())
		}
		jg.Moves = append(jg.Moves, jm)
	}

	if showBoard {
		jg.FinalBoard = strings.Split(strings.TrimSuffix(game.Final.Board.String(), "\n"), "\n")
	}
	if game.Err != nil {
		jg.Error = game.Err.Error()
	}
	return jg
}

// colorName returns the lowercase name of a colour.
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// KindLetters joins the letters of the given kinds, e.g. "PPN", or
// returns "-" for none.
func KindLetters(kinds []chess.Kind) string {
	if len(kinds) == 0 {
		return "-"
	}
	letters := make([]byte, len(kinds))
	for i, k := range kinds {
		letters[i] = k.Letter()
	}
	return string(letters)
}
