package leaderboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/krishanu7/battleship-console/db"
	"github.com/krishanu7/battleship-console/internal/session"
)

const (
	initialElo = 1500
	eloK       = 32
)

type Service struct {
	db  *sql.DB
	log *zap.Logger
}

func NewService(db *sql.DB, log *zap.Logger) *Service {
	return &Service{db: db, log: log}
}

type LeaderboardEntry struct {
	PlayerID  string `json:"player_id"`
	Username  string `json:"username"`
	Wins      int    `json:"wins"`
	Losses    int    `json:"losses"`
	Elo       int    `json:"elo"`
	UpdatedAt string `json:"updated_at"`
}

func (s *Service) GetLeaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.player_id, COALESCE(u.username, s.player_id), s.wins, s.losses, s.elo, s.updated_at
		FROM stats s
		LEFT JOIN users u ON s.player_id = u.id::text
		ORDER BY s.elo DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var leaderboard []LeaderboardEntry
	for rows.Next() {
		var entry LeaderboardEntry
		if err := rows.Scan(&entry.PlayerID, &entry.Username, &entry.Wins, &entry.Losses, &entry.Elo, &entry.UpdatedAt); err != nil {
			return nil, err
		}
		leaderboard = append(leaderboard, entry)
	}
	return leaderboard, rows.Err()
}

// RecordResult updates wins, losses and ELO of both sides of a round. The
// rows are locked while read so concurrent results are applied in turn.
func (s *Service) RecordResult(ctx context.Context, result session.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin stats update: %w", err)
	}
	defer tx.Rollback()

	winnerStats, err := getStats(ctx, tx, result.WinnerID)
	if err != nil {
		return fmt.Errorf("failed to get winner stats: %w", err)
	}
	loserStats, err := getStats(ctx, tx, result.LoserID)
	if err != nil {
		return fmt.Errorf("failed to get loser stats: %w", err)
	}

	newWinnerElo, newLoserElo := UpdateElo(winnerStats.Elo, loserStats.Elo)

	const upsert = `INSERT INTO stats (player_id, wins, losses, elo, updated_at) VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (player_id) DO UPDATE SET wins = $2, losses = $3, elo = $4, updated_at = now()`
	if _, err := tx.ExecContext(ctx, upsert, result.WinnerID, winnerStats.Wins+1, winnerStats.Losses, newWinnerElo); err != nil {
		return fmt.Errorf("failed to update winner stats: %w", err)
	}
	if _, err := tx.ExecContext(ctx, upsert, result.LoserID, loserStats.Wins, loserStats.Losses+1, newLoserElo); err != nil {
		return fmt.Errorf("failed to update loser stats: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stats update: %w", err)
	}

	s.log.Info("updated stats",
		zap.String("winner", result.WinnerID), zap.Int("winnerElo", newWinnerElo),
		zap.String("loser", result.LoserID), zap.Int("loserElo", newLoserElo),
	)
	return nil
}

func getStats(ctx context.Context, tx *sql.Tx, playerID string) (db.PlayerStats, error) {
	var stats db.PlayerStats
	err := tx.QueryRowContext(ctx, "SELECT player_id, wins, losses, elo FROM stats WHERE player_id = $1 FOR UPDATE", playerID).
		Scan(&stats.PlayerID, &stats.Wins, &stats.Losses, &stats.Elo)
	if errors.Is(err, sql.ErrNoRows) {
		return db.PlayerStats{PlayerID: playerID, Elo: initialElo}, nil
	}
	return stats, err
}

// UpdateElo returns the new ratings of the winner and the loser.
func UpdateElo(winnerElo, loserElo int) (int, int) {
	expectedWinner := 1 / (1 + math.Pow(10, float64(loserElo-winnerElo)/400))
	expectedLoser := 1 / (1 + math.Pow(10, float64(winnerElo-loserElo)/400))
	return winnerElo + int(eloK*(1-expectedWinner)), loserElo + int(eloK*(0-expectedLoser))
}
