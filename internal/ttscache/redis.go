package ttscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/joyjoykids/feedback-backend/internal/logger"
)

const (
	redisKeyPrefix = "tts:audio:"
	DefaultTTL     = 24 * time.Hour
)

// Redis is a shared audio store so replicas reuse synthesized clips.
// Errors degrade to cache misses; the TTS route never fails because the
// cache is down.
type Redis struct {
	log    *logger.Logger
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration, log *logger.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{
		log:    log.With("component", "TTSRedisCache"),
		client: client,
		ttl:    ttl,
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			r.log.Warn("Redis get failed, treating as miss", "error", err)
		}
		return nil, false
	}
	return raw, true
}

func (r *Redis) Set(ctx context.Context, key string, audio []byte) {
	if len(audio) == 0 {
		return
	}
	if err := r.client.Set(ctx, redisKeyPrefix+key, audio, r.ttl).Err(); err != nil {
		r.log.Warn("Redis set failed", "error", err)
	}
}
