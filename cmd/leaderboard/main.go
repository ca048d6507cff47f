package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/krishanu7/battleship-console/config"
	"github.com/krishanu7/battleship-console/internal/leaderboard"
	"github.com/krishanu7/battleship-console/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	limit := flag.Int("limit", 10, "number of players to show")
	flag.Parse()

	cfg := config.LoadConfig()
	log, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to set up logging:", err)
		return 1
	}
	defer log.Sync()

	if cfg.DBUrl == "" {
		log.Error("DB_URL is not set")
		return 1
	}
	conn, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		log.Error("Failed to connect database", zap.Error(err))
		return 1
	}
	defer conn.Close()

	entries, err := leaderboard.NewService(conn, log).GetLeaderboard(context.Background(), *limit)
	if err != nil {
		log.Error("Failed to load leaderboard", zap.Error(err))
		return 1
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tPLAYER\tWINS\tLOSSES\tELO")
	for i, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\n", i+1, e.Username, e.Wins, e.Losses, e.Elo)
	}
	w.Flush()
	return 0
}
