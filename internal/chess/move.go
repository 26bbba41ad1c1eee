package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Move is a source-destination square pair with an optional promotion choice.
type Move struct {
	From Square
	To   Square

	// The piece a pawn promotes to (Empty if not a promotion or unspecified).
	Promotion Kind
}

// String returns the move in coordinate notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// ParseMove parses coordinate notation such as "e2e4", "e2-e4" or "e7e8q".
func ParseMove(text string) (Move, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), "-", "")
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("move %q: want coordinate notation like e2e4: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return Move{}, errors.Wrapf(err, "move %q", text)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		m.Promotion = KindFromLetter(s[4])
		if !m.Promotion.IsPromotionChoice() {
			return Move{}, fmt.Errorf("move %q: invalid promotion piece %q: %w", text, s[4], errors.ErrInvalidMove)
		}
	}
	return m, nil
}
