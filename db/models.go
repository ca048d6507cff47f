package db

import "github.com/google/uuid"

type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Password  string    `json:"-" db:"password"` // Hashed password
	CreatedAt string    `json:"created_at" db:"created_at"`
}

type PlayerStats struct {
	PlayerID string `json:"player_id" db:"player_id"`
	Wins     int    `json:"wins" db:"wins"`
	Losses   int    `json:"losses" db:"losses"`
	Elo      int    `json:"elo" db:"elo"`
}

// Schema creates the tables used by the auth and leaderboard services.
const Schema = `
CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY,
	username   TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS stats (
	player_id  TEXT PRIMARY KEY,
	wins       INTEGER NOT NULL DEFAULT 0,
	losses     INTEGER NOT NULL DEFAULT 0,
	elo        INTEGER NOT NULL DEFAULT 1500,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
