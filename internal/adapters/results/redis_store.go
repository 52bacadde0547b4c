package results

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"vrp-instance-service/internal/platform/obs"
	"vrp-instance-service/internal/ports"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	defaultPrefix  = "vrp:results"
	defaultHistory = 50
	maxTxRetries   = 3
)

// RedisStore keeps, per instance, the best defined result and a bounded
// history of recent runs. Records are msgpack encoded.
//
//	<prefix>:best:<instance>  string
//	<prefix>:runs:<instance>  list, newest first
type RedisStore struct {
	client  *redis.Client
	prefix  string
	history int64
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: defaultPrefix, history: defaultHistory}
}

// WithHistory sets how many runs are kept per instance.
func (s *RedisStore) WithHistory(n int) *RedisStore {
	if n > 0 {
		s.history = int64(n)
	}
	return s
}

func (s *RedisStore) bestKey(instance string) string { return s.prefix + ":best:" + instance }
func (s *RedisStore) runsKey(instance string) string { return s.prefix + ":runs:" + instance }

// Record appends r to the history and replaces the best record when r is
// defined and strictly better. The compare-and-set runs under WATCH.
func (s *RedisStore) Record(ctx context.Context, r ports.ResultRecord) (improved bool, err error) {
	defer obs.Time(ctx, "results.Record")(&err)

	if s.client == nil {
		return false, errors.New("record result: redis client is nil")
	}
	if strings.TrimSpace(r.Instance) == "" {
		return false, errors.New("record result: instance must not be empty")
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = time.Now().UTC()
	}

	b, err := msgpack.Marshal(&r)
	if err != nil {
		return false, fmt.Errorf("record result: encode: %w", err)
	}

	bestKey, runsKey := s.bestKey(r.Instance), s.runsKey(r.Instance)

	txf := func(tx *redis.Tx) error {
		improved = false
		if r.Defined {
			cur, err := decode(tx.Get(ctx, bestKey).Bytes())
			switch {
			case errors.Is(err, redis.Nil):
				improved = true
			case err != nil:
				return err
			default:
				improved = r.Value < cur.Value
			}
		}

		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.LPush(ctx, runsKey, b)
			pipe.LTrim(ctx, runsKey, 0, s.history-1)
			if improved {
				pipe.Set(ctx, bestKey, b, 0)
			}
			return nil
		})
		return err
	}

	for i := 0; i < maxTxRetries; i++ {
		err = s.client.Watch(ctx, txf, bestKey)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return false, fmt.Errorf("record result %q: %w", r.Instance, err)
	}
	return improved, nil
}

func (s *RedisStore) Best(ctx context.Context, instance string) (_ ports.ResultRecord, err error) {
	defer obs.Time(ctx, "results.Best")(&err)

	if s.client == nil {
		return ports.ResultRecord{}, errors.New("best result: redis client is nil")
	}

	r, err := decode(s.client.Get(ctx, s.bestKey(instance)).Bytes())
	if errors.Is(err, redis.Nil) {
		return ports.ResultRecord{}, fmt.Errorf("best result %q: %w", instance, ports.ErrNoResult)
	}
	if err != nil {
		return ports.ResultRecord{}, fmt.Errorf("best result %q: %w", instance, err)
	}
	return r, nil
}

func (s *RedisStore) Recent(ctx context.Context, instance string, limit int) (_ []ports.ResultRecord, err error) {
	defer obs.Time(ctx, "results.Recent")(&err)

	if s.client == nil {
		return nil, errors.New("recent results: redis client is nil")
	}
	if limit <= 0 {
		return []ports.ResultRecord{}, nil
	}

	raw, err := s.client.LRange(ctx, s.runsKey(instance), 0, int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("recent results %q: %w", instance, err)
	}

	out := make([]ports.ResultRecord, 0, len(raw))
	for _, item := range raw {
		r, err := decode([]byte(item), nil)
		if err != nil {
			return nil, fmt.Errorf("recent results %q: %w", instance, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func decode(b []byte, err error) (ports.ResultRecord, error) {
	var r ports.ResultRecord
	if err != nil {
		return r, err
	}
	if err := msgpack.Unmarshal(b, &r); err != nil {
		return r, fmt.Errorf("decode result: %w", err)
	}
	return r, nil
}
