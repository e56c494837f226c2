package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Domenick1991/flighttime/config"
	"github.com/Domenick1991/flighttime/internal/kafka"
	"github.com/redis/go-redis/v9"
)

// LookupStats is a snapshot of the lookup counters.
type LookupStats struct {
	Total  int64
	Hits   int64
	Misses int64
}

type RedisStats struct {
	client *redis.Client
}

func NewRedisStats(cfg config.RedisConfig) *RedisStats {
	return &RedisStats{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (s *RedisStats) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStats) RecordLookup(ctx context.Context, event kafka.LookupEvent) error {
	pipe := s.client.TxPipeline()
	pipe.Incr(ctx, totalKey())
	if event.Found {
		pipe.Incr(ctx, hitsKey())
		pipe.Incr(ctx, flightKey(event.FlightID))
	} else {
		pipe.Incr(ctx, missesKey())
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *RedisStats) Snapshot(ctx context.Context) (LookupStats, error) {
	vals, err := s.client.MGet(ctx, totalKey(), hitsKey(), missesKey()).Result()
	if err != nil {
		return LookupStats{}, err
	}
	return LookupStats{
		Total:  toInt(vals[0]),
		Hits:   toInt(vals[1]),
		Misses: toInt(vals[2]),
	}, nil
}

func (s *RedisStats) Close() error {
	return s.client.Close()
}

func toInt(v interface{}) int64 {
	str, ok := v.(string)
	if !ok {
		return 0
	}
	n, _ := strconv.ParseInt(str, 10, 64)
	return n
}

func totalKey() string {
	return "stats:lookups:total"
}

func hitsKey() string {
	return "stats:lookups:hit"
}

func missesKey() string {
	return "stats:lookups:miss"
}

func flightKey(flightID string) string {
	return fmt.Sprintf("stats:flight:%s", flightID)
}
