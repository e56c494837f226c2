package cache

import (
	"context"
	"testing"

	"github.com/Domenick1991/flighttime/config"
	"github.com/Domenick1991/flighttime/internal/kafka"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStats(t *testing.T) (*RedisStats, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	stats := NewRedisStats(config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = stats.Close() })
	return stats, mr
}

func TestRedisStats_RecordLookup_Hit(t *testing.T) {
	stats, mr := newTestStats(t)
	ctx := context.Background()

	err := stats.RecordLookup(ctx, kafka.LookupEvent{Type: kafka.LookupEventType, FlightID: "AI101", Found: true, Time: "10:30 AM"})
	require.NoError(t, err)

	mr.CheckGet(t, "stats:lookups:total", "1")
	mr.CheckGet(t, "stats:lookups:hit", "1")
	mr.CheckGet(t, "stats:flight:AI101", "1")
	assert.False(t, mr.Exists("stats:lookups:miss"))
}

func TestRedisStats_RecordLookup_Miss(t *testing.T) {
	stats, mr := newTestStats(t)
	ctx := context.Background()

	err := stats.RecordLookup(ctx, kafka.LookupEvent{Type: kafka.LookupEventType, FlightID: "ZZ999"})
	require.NoError(t, err)

	mr.CheckGet(t, "stats:lookups:total", "1")
	mr.CheckGet(t, "stats:lookups:miss", "1")
	assert.False(t, mr.Exists("stats:lookups:hit"))
	assert.False(t, mr.Exists("stats:flight:ZZ999"))
}

func TestRedisStats_Snapshot(t *testing.T) {
	stats, _ := newTestStats(t)
	ctx := context.Background()

	events := []kafka.LookupEvent{
		{FlightID: "AI101", Found: true},
		{FlightID: "BA202", Found: true},
		{FlightID: "AI101", Found: true},
		{FlightID: "ZZ999"},
	}
	for _, e := range events {
		require.NoError(t, stats.RecordLookup(ctx, e))
	}

	snapshot, err := stats.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, LookupStats{Total: 4, Hits: 3, Misses: 1}, snapshot)
}

func TestRedisStats_Snapshot_Empty(t *testing.T) {
	stats, _ := newTestStats(t)

	snapshot, err := stats.Snapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, LookupStats{}, snapshot)
}

func TestRedisStats_Ping(t *testing.T) {
	stats, mr := newTestStats(t)
	require.NoError(t, stats.Ping(context.Background()))

	mr.Close()
	assert.Error(t, stats.Ping(context.Background()))
}

func TestRedisStats_RecordLookup_ServerDown(t *testing.T) {
	stats, mr := newTestStats(t)
	mr.Close()

	err := stats.RecordLookup(context.Background(), kafka.LookupEvent{FlightID: "AI101", Found: true})
	assert.Error(t, err)
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "stats:lookups:total", totalKey())
	assert.Equal(t, "stats:lookups:hit", hitsKey())
	assert.Equal(t, "stats:lookups:miss", missesKey())
	assert.Equal(t, "stats:flight:AI101", flightKey("AI101"))
}

func TestToInt(t *testing.T) {
	assert.Equal(t, int64(42), toInt("42"))
	assert.Equal(t, int64(0), toInt(nil))
	assert.Equal(t, int64(0), toInt("nope"))
}
