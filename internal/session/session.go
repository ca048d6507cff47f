package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/krishanu7/battleship-console/internal/console"
	"github.com/krishanu7/battleship-console/internal/game"
)

// BotID identifies the computer in recorded results.
const BotID = "bot"

// Result describes one finished round.
type Result struct {
	GameID     string    `json:"gameId"`
	Winner     game.Side `json:"-"`
	WinnerID   string    `json:"winner"`
	LoserID    string    `json:"loser"`
	HumanShots int       `json:"humanShots"`
	BotShots   int       `json:"botShots"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Recorder receives the result of every finished round.
type Recorder interface {
	RecordResult(ctx context.Context, result Result) error
}

// Players builds fresh players for each round.
type Players struct {
	Human   func() game.Player
	Bot     func() game.Player
	HumanID string
}

type Session struct {
	con       *console.Console
	log       *zap.Logger
	players   Players
	recorders []Recorder
	score     Score
}

func New(con *console.Console, log *zap.Logger, players Players, recorders ...Recorder) *Session {
	if players.HumanID == "" {
		players.HumanID = "player"
	}
	return &Session{
		con:       con,
		log:       log,
		players:   players,
		recorders: recorders,
	}
}

func (s *Session) Score() Score {
	return s.score
}

// Run plays rounds until the player quits, ctx is done or a round fails.
// Quitting is not an error.
func (s *Session) Run(ctx context.Context) error {
	s.con.Println("Welcome to Battleship")
	s.con.Println()
	s.con.Println("Enter 0 at any time to leave the game")

	var runErr error
	for ctx.Err() == nil {
		err := s.playRound(ctx)
		if err == nil {
			s.con.Println(s.score)
			s.con.Println()
			s.con.Println("Play again?")
			s.con.Println()
			continue
		}
		if errors.Is(err, console.ErrQuit) || ctx.Err() != nil {
			s.log.Info("player left the session", zap.Int("humanWins", s.score.Human), zap.Int("botWins", s.score.Bot))
			break
		}
		s.log.Error("round failed", zap.Error(err))
		s.con.Println("Something went wrong")
		s.con.Println()
		runErr = err
		break
	}

	s.con.Println("Game over. See you again")
	return runErr
}

func (s *Session) playRound(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("round panicked: %v", r)
		}
	}()

	gameID := uuid.NewString()
	startedAt := time.Now()
	s.log.Info("round started", zap.String("gameId", gameID))

	human, err := game.NewCombatant(s.players.Human(), true)
	if err != nil {
		return err
	}
	bot, err := game.NewCombatant(s.players.Bot(), false)
	if err != nil {
		return err
	}

	winner, err := game.NewMatch(human, bot, s.con.Writer()).Play()
	if err != nil {
		return err
	}

	s.score.Record(winner)
	result := Result{
		GameID:     gameID,
		Winner:     winner,
		HumanShots: human.Shots(),
		BotShots:   bot.Shots(),
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
	}
	if winner == game.Human {
		s.con.Println("You won")
		result.WinnerID, result.LoserID = s.players.HumanID, BotID
	} else {
		s.con.Println("The computer won")
		result.WinnerID, result.LoserID = BotID, s.players.HumanID
	}
	s.log.Info("round finished",
		zap.String("gameId", gameID),
		zap.Stringer("winner", winner),
		zap.Int("humanShots", result.HumanShots),
		zap.Int("botShots", result.BotShots),
	)

	s.record(ctx, result)
	return nil
}

func (s *Session) record(ctx context.Context, result Result) {
	for _, r := range s.recorders {
		if err := r.RecordResult(ctx, result); err != nil {
			s.log.Warn("failed to record result", zap.String("gameId", result.GameID), zap.Error(err))
		}
	}
}
