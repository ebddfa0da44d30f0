package dao

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"customer-service-agent/model"
)

// SessionCache keeps the most recent turns of each session in redis so the
// history endpoint can answer without hitting the database. It is a cache:
// the conversation log in sqlite stays the source of truth, and every
// operation here is best-effort from the agent's point of view.
type SessionCache struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
	limit     int
}

func NewSessionCache(addr, password string, db, limit int) *SessionCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if limit <= 0 {
		limit = 50
	}
	return &SessionCache{
		client:    client,
		keyPrefix: "csagent:session:",
		ttl:       24 * time.Hour,
		limit:     limit,
	}
}

// Append pushes one turn onto the session's list, trimming it to the
// configured limit and refreshing the TTL.
func (c *SessionCache) Append(ctx context.Context, turn *model.ConversationTurn) error {
	if turn == nil {
		return fmt.Errorf("%w: turn is nil", ErrInvalidParam)
	}
	if turn.SessionID == "" {
		return fmt.Errorf("%w: sessionID is empty", ErrInvalidParam)
	}

	data, err := json.Marshal(turn)
	if err != nil {
		return err
	}

	key := c.keyPrefix + turn.SessionID
	pipe := c.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.LTrim(ctx, key, int64(-c.limit), -1)
	pipe.Expire(ctx, key, c.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Recent returns the cached turns for a session, oldest first. A missing
// session yields an empty slice, not an error.
func (c *SessionCache) Recent(ctx context.Context, sessionID string) ([]model.ConversationTurn, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is empty", ErrInvalidParam)
	}

	key := c.keyPrefix + sessionID
	items, err := c.client.LRange(ctx, key, 0, -1).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	turns := make([]model.ConversationTurn, 0, len(items))
	for _, item := range items {
		var turn model.ConversationTurn
		if err := json.Unmarshal([]byte(item), &turn); err != nil {
			// Skip rows written by an incompatible version.
			continue
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func (c *SessionCache) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionID is empty", ErrInvalidParam)
	}
	return c.client.Del(ctx, c.keyPrefix+sessionID).Err()
}

func (c *SessionCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *SessionCache) Close() error {
	return c.client.Close()
}
