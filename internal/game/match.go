package game

import (
	"fmt"
	"io"
)

type Side int

const (
	Human Side = iota
	Bot
)

func (s Side) String() string {
	switch s {
	case Human:
		return "Human"
	case Bot:
		return "Bot"
	default:
		return "Unknown"
	}
}

func (s Side) other() Side {
	if s == Human {
		return Bot
	}
	return Human
}

type Stage int

const (
	StageAwaitingHuman Stage = iota
	StageAwaitingBot
	StageGameOver
)

func (s Stage) String() string {
	switch s {
	case StageAwaitingHuman:
		return "AwaitingHuman"
	case StageAwaitingBot:
		return "AwaitingBot"
	case StageGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Match runs the turns of one game. The human always moves first.
type Match struct {
	sides  [2]*Combatant
	out    io.Writer
	stage  Stage
	winner Side
}

func NewMatch(human, bot *Combatant, out io.Writer) *Match {
	return &Match{
		sides: [2]*Combatant{Human: human, Bot: bot},
		out:   out,
		stage: StageAwaitingHuman,
	}
}

func (m *Match) Stage() Stage {
	return m.stage
}

func (m *Match) Combatant(side Side) *Combatant {
	return m.sides[side]
}

// Winner is only meaningful once the match is over.
func (m *Match) Winner() Side {
	return m.winner
}

func (m *Match) mover() Side {
	if m.stage == StageAwaitingBot {
		return Bot
	}
	return Human
}

// Play alternates turns until one fleet is sunk and returns the winner.
// A recoverable error repeats the same player's turn; other errors end the
// match.
func (m *Match) Play() (Side, error) {
	m.render()
	for m.stage != StageGameOver {
		side := m.mover()
		if side == Human {
			fmt.Fprintln(m.out, "Your turn:")
		} else {
			fmt.Fprintln(m.out, "Computer's turn:")
		}

		won, err := m.sides[side].Fire(m.sides[side.other()])
		if err != nil {
			if !IsRecoverable(err) {
				return side, err
			}
			fmt.Fprintln(m.out, err)
			continue
		}
		m.render()

		switch {
		case won:
			m.stage = StageGameOver
			m.winner = side
		case side == Human:
			m.stage = StageAwaitingBot
		default:
			m.stage = StageAwaitingHuman
		}
	}
	return m.winner, nil
}

func (m *Match) render() {
	fmt.Fprint(m.out, SideBySide(
		"Your board:", m.sides[Human].Board,
		"Computer's board:", m.sides[Bot].Board,
	))
}
