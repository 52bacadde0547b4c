package results

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"vrp-instance-service/internal/ports"
)

func newStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func record(instance string, value float64, defined bool) ports.ResultRecord {
	return ports.ResultRecord{
		RunID:        "run",
		Instance:     instance,
		Solver:       "greedy",
		Defined:      defined,
		Value:        value,
		SolutionTime: 1500 * time.Millisecond,
		Status:       "Feasible",
	}
}

func TestRedisStoreKeepsBest(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	improved, err := s.Record(ctx, record("A-n32-k5", 800, true))
	require.NoError(t, err)
	require.True(t, improved)

	improved, err = s.Record(ctx, record("A-n32-k5", 850, true))
	require.NoError(t, err)
	require.False(t, improved)

	improved, err = s.Record(ctx, record("A-n32-k5", 784, true))
	require.NoError(t, err)
	require.True(t, improved)

	// Ties do not replace the stored best.
	improved, err = s.Record(ctx, record("A-n32-k5", 784, true))
	require.NoError(t, err)
	require.False(t, improved)

	best, err := s.Best(ctx, "A-n32-k5")
	require.NoError(t, err)
	require.Equal(t, 784.0, best.Value)
	require.Equal(t, 1500*time.Millisecond, best.SolutionTime)
	require.False(t, best.RecordedAt.IsZero())
}

func TestRedisStoreIgnoresUndefinedForBest(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	improved, err := s.Record(ctx, record("C101", 0, false))
	require.NoError(t, err)
	require.False(t, improved)

	_, err = s.Best(ctx, "C101")
	require.True(t, errors.Is(err, ports.ErrNoResult))

	recent, err := s.Recent(ctx, "C101", 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	require.False(t, recent[0].Defined)
}

func TestRedisStoreRecentIsBounded(t *testing.T) {
	s, mr := newStore(t)
	s.WithHistory(3)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, record("XH-n4-k2", float64(100-i), true))
		require.NoError(t, err)
	}

	recent, err := s.Recent(ctx, "XH-n4-k2", 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	require.Equal(t, 96.0, recent[0].Value)
	require.Equal(t, 98.0, recent[2].Value)

	items, err := mr.List("vrp:results:runs:XH-n4-k2")
	require.NoError(t, err)
	require.Len(t, items, 3)

	recent, err = s.Recent(ctx, "XH-n4-k2", 0)
	require.NoError(t, err)
	require.Empty(t, recent)
}

func TestRedisStoreErrors(t *testing.T) {
	s, mr := newStore(t)
	ctx := context.Background()

	_, err := s.Record(ctx, record(" ", 1, true))
	require.Error(t, err)

	_, err = s.Best(ctx, "unknown")
	require.True(t, errors.Is(err, ports.ErrNoResult))

	require.NoError(t, mr.Set("vrp:results:best:corrupt", "not msgpack"))
	_, err = s.Best(ctx, "corrupt")
	require.Error(t, err)

	mr.Close()
	_, err = s.Record(ctx, record("A-n32-k5", 1, true))
	require.Error(t, err)
}
