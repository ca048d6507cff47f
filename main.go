package main

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/krishanu7/battleship-console/config"
	"github.com/krishanu7/battleship-console/db"
	"github.com/krishanu7/battleship-console/internal/auth"
	"github.com/krishanu7/battleship-console/internal/console"
	"github.com/krishanu7/battleship-console/internal/game"
	"github.com/krishanu7/battleship-console/internal/leaderboard"
	"github.com/krishanu7/battleship-console/internal/notify"
	"github.com/krishanu7/battleship-console/internal/session"
	"github.com/krishanu7/battleship-console/pkg/logger"
	rdbPkg "github.com/krishanu7/battleship-console/pkg/redis"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.LoadConfig()
	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to set up logging:", err)
		return 1
	}
	defer log.Sync()
	if !cfg.EnvFileLoaded {
		log.Debug("No .env file found. Using environment variables.")
	}

	// Ctrl+C leaves the session the same way the quit input does.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	humanID := cfg.PlayerName
	var recorders []session.Recorder

	if cfg.DBUrl != "" {
		conn, playerID, err := openLeaderboard(ctx, cfg, log)
		if err != nil {
			log.Warn("leaderboard disabled", zap.Error(err))
			fmt.Fprintln(os.Stderr, "Leaderboard disabled:", err)
		} else {
			defer conn.Close()
			humanID = playerID
			recorders = append(recorders, leaderboard.NewService(conn, log))
		}
	}

	if cfg.RedisAddr != "" {
		rdb, err := rdbPkg.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			log.Warn("notifications disabled", zap.Error(err))
		} else {
			defer rdb.Close()
			log.Info("Connected to Redis", zap.String("addr", cfg.RedisAddr))
			recorders = append(recorders, notify.NewPublisher(rdb, cfg.RedisChannel, log))
		}
	}

	// One random source for the whole process.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	con := console.NewContext(ctx, os.Stdin, os.Stdout)

	s := session.New(con, log, session.Players{
		Human:   func() game.Player { return game.NewHumanPlayer(con) },
		Bot:     func() game.Player { return game.NewBotPlayer(rng) },
		HumanID: humanID,
	}, recorders...)

	if err := s.Run(ctx); err != nil {
		return 1
	}
	return 0
}

// openLeaderboard connects to Postgres and signs the player in, returning
// the player's ID for recorded results.
func openLeaderboard(ctx context.Context, cfg config.Config, log *zap.Logger) (*sql.DB, string, error) {
	conn, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, "", fmt.Errorf("failed to connect database: %w", err)
	}
	playerID, err := signIn(ctx, conn, cfg, log)
	if err != nil {
		conn.Close()
		return nil, "", err
	}
	return conn, playerID, nil
}

// signIn prepares the schema and resolves the ID results are recorded
// under. Without a password the profile is local and its name is the ID.
func signIn(ctx context.Context, conn *sql.DB, cfg config.Config, log *zap.Logger) (string, error) {
	if _, err := conn.ExecContext(ctx, db.Schema); err != nil {
		return "", fmt.Errorf("failed to prepare schema: %w", err)
	}

	if cfg.PlayerPassword == "" {
		log.Info("playing with a local profile", zap.String("player", cfg.PlayerName))
		return cfg.PlayerName, nil
	}

	authService := auth.NewService(conn, cfg.JWTSecret)
	token, err := authService.Authenticate(ctx, cfg.PlayerName, cfg.PlayerPassword)
	if err != nil {
		return "", fmt.Errorf("failed to sign in %s: %w", cfg.PlayerName, err)
	}
	playerID, err := authService.ParseToken(token)
	if err != nil {
		return "", err
	}
	log.Info("signed in", zap.String("player", cfg.PlayerName), zap.String("playerId", playerID))
	return playerID, nil
}
