package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domerr "github.com/SiyahKale0/ucuzyol/internal/domain/errors"
	"github.com/SiyahKale0/ucuzyol/internal/domain/models"
)

// Redis stores cached tickets in Redis, letting multiple search
// instances share one backend quota.
type Redis struct {
	redis *redis.Client
}

func NewRedis(redisClient *redis.Client) *Redis {
	return &Redis{redis: redisClient}
}

func (r *Redis) Get(ctx context.Context, key string) ([]models.Ticket, error) {
	data, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domerr.ErrTicketsNotCached
		}
		return nil, fmt.Errorf("redis get tickets: %w", err)
	}

	var tickets []models.Ticket
	if err := json.Unmarshal([]byte(data), &tickets); err != nil {
		return nil, fmt.Errorf("unmarshal cached tickets: %w", err)
	}
	return tickets, nil
}

func (r *Redis) Set(ctx context.Context, key string, tickets []models.Ticket, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(tickets)
	if err != nil {
		return fmt.Errorf("marshal tickets for cache: %w", err)
	}
	if err := r.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set tickets: %w", err)
	}
	return nil
}
