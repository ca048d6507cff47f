package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBUrl          string
	JWTSecret      string
	RedisAddr      string
	RedisPassword  string
	RedisChannel   string
	PlayerName     string
	PlayerPassword string
	LogLevel       string
	LogFile        string

	// EnvFileLoaded is false when no .env file was found.
	EnvFileLoaded bool
}

func LoadConfig() Config {
	err := godotenv.Load()

	return Config{
		DBUrl:          os.Getenv("DB_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisChannel:   getenv("REDIS_CHANNEL", "notifications"),
		PlayerName:     getenv("PLAYER_NAME", "player"),
		PlayerPassword: os.Getenv("PLAYER_PASSWORD"),
		LogLevel:       getenv("LOG_LEVEL", "warn"),
		LogFile:        getenv("LOG_FILE", "stderr"),
		EnvFileLoaded:  err == nil,
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
