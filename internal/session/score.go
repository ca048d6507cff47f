package session

import (
	"fmt"

	"github.com/krishanu7/battleship-console/internal/game"
)

// Score counts round wins for the lifetime of the process.
type Score struct {
	Human int
	Bot   int
}

func (s *Score) Record(winner game.Side) {
	switch winner {
	case game.Human:
		s.Human++
	case game.Bot:
		s.Bot++
	}
}

func (s Score) String() string {
	switch {
	case s.Human > s.Bot:
		return fmt.Sprintf("Score %d:%d in your favour", s.Human, s.Bot)
	case s.Human < s.Bot:
		return fmt.Sprintf("Score %d:%d in the computer's favour", s.Bot, s.Human)
	default:
		return fmt.Sprintf("The score is tied %d:%d", s.Bot, s.Human)
	}
}
