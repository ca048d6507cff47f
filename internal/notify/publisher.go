package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/krishanu7/battleship-console/internal/session"
)

const TypeGameOver = "game_over"

type Notification struct {
	Type   string         `json:"type"`
	Result session.Result `json:"result"`
}

// Publisher announces finished rounds on a Redis pub/sub channel.
type Publisher struct {
	rdb     *redis.Client
	channel string
	log     *zap.Logger
}

func NewPublisher(rdb *redis.Client, channel string, log *zap.Logger) *Publisher {
	return &Publisher{
		rdb:     rdb,
		channel: channel,
		log:     log,
	}
}

func (p *Publisher) RecordResult(ctx context.Context, result session.Result) error {
	payload, err := json.Marshal(Notification{Type: TypeGameOver, Result: result})
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if err := p.rdb.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish %s notification: %w", TypeGameOver, err)
	}
	p.log.Debug("published notification",
		zap.String("type", TypeGameOver),
		zap.String("gameId", result.GameID),
		zap.String("channel", p.channel),
	)
	return nil
}
