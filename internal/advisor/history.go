package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cloudwego/eino/schema"
	"github.com/redis/go-redis/v9"

	errx "github.com/nstore-core/server/internal/core/error"
	logx "github.com/nstore-core/server/pkg/logger"
)

// History stores the chat widget's display transcript per session so a
// reload keeps the conversation on screen. It does not feed the advisor:
// every Advise call stands on its own.
type History interface {
	Append(ctx context.Context, sessionID string, msg *schema.Message) error
	Load(ctx context.Context, sessionID string) ([]*schema.Message, error)
	Clear(ctx context.Context, sessionID string) error
}

// RedisHistory keeps each transcript in a Redis list with a sliding TTL.
type RedisHistory struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisHistory(rdb redis.Cmdable, ttl time.Duration) *RedisHistory {
	return &RedisHistory{rdb: rdb, ttl: ttl}
}

func (h *RedisHistory) sessionKey(sessionID string) string {
	return fmt.Sprintf("nstore:advice:%s:messages", sessionID)
}

func (h *RedisHistory) Append(ctx context.Context, sessionID string, msg *schema.Message) error {
	b, err := json.Marshal(msg)
	if err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to marshal chat message")
		return fmt.Errorf("marshal chat message: %w", err)
	}
	key := h.sessionKey(sessionID)

	if err := h.rdb.RPush(ctx, key, b).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push chat message to redis")
		return errx.WrapRedis(err)
	}
	// extend TTL on touch
	if h.ttl > 0 {
		if err := h.rdb.Expire(ctx, key, h.ttl).Err(); err != nil {
			logx.Error().Err(err).Str("key", key).Msg("failed to set expire on transcript")
			return errx.WrapRedis(err)
		}
	}
	return nil
}

func (h *RedisHistory) Load(ctx context.Context, sessionID string) ([]*schema.Message, error) {
	key := h.sessionKey(sessionID)

	rows, err := h.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*schema.Message{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load transcript from redis")
		return nil, errx.WrapRedis(err)
	}

	msgs := make([]*schema.Message, 0, len(rows))
	for i, s := range rows {
		var m schema.Message
		if err := json.Unmarshal([]byte(s), &m); err != nil {
			logx.Error().Err(err).Str("sessionID", sessionID).Int("index", i).Msg("failed to unmarshal chat message")
			return nil, fmt.Errorf("unmarshal chat message at index %d: %w", i, err)
		}
		msgs = append(msgs, &m)
	}
	return msgs, nil
}

func (h *RedisHistory) Clear(ctx context.Context, sessionID string) error {
	key := h.sessionKey(sessionID)
	if err := h.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete transcript from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ History = (*RedisHistory)(nil)
