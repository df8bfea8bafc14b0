package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	e "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/errors"
	"github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/logging"
	ratelimiter "github.com/Shouganaii/tdd-clean-go-api/internal/core/domain/rate_limiter"
	"github.com/go-redis/redis/v9"
)

// Redis counts requests in fixed windows. It fails open on Redis errors so
// that a broken Redis does not take the API down with it.
type Redis struct {
	redisClient *redis.Client
	log         logging.Logger
	now         func() time.Time
}

func NewRedis(redisClient *redis.Client, log logging.Logger, now func() time.Time) *Redis {
	if redisClient == nil {
		panic(e.NewNilArgumentError("redisClient"))
	}
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &Redis{redisClient: redisClient, log: log, now: now}
}

func (r *Redis) CheckLimit(ctx context.Context, key string, limit ratelimiter.Limit) ratelimiter.Result {
	windowKey, expiry := r.windowKey(key, limit.Interval)

	cmds, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, windowKey)
		pipe.Expire(ctx, windowKey, expiry)
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return ratelimiter.NotAllowed()
	}
	if err != nil {
		r.log.Error(ctx, "Could not check rate limit, Redis request failed.", logging.Entry("err", err))
		return ratelimiter.Allowed()
	}

	count := cmds[0].(*redis.IntCmd).Val()
	if count > int64(limit.Value) {
		return ratelimiter.NotAllowed()
	}
	return ratelimiter.Allowed()
}

func (r *Redis) windowKey(key string, interval ratelimiter.Interval) (string, time.Duration) {
	switch interval {
	case ratelimiter.Hour:
		return fmt.Sprintf("%s::h%d", key, r.now().Hour()), time.Hour
	case ratelimiter.Minute:
		return fmt.Sprintf("%s::m%d", key, r.now().Minute()), time.Minute
	}
	panic("invalid rate limiting interval")
}
