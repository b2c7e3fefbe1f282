package coverage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"beacon/internal/local/metrics"
	"beacon/internal/local/models"
	id "beacon/pkg/domain"
	"beacon/pkg/platform/sentinel"
)

const coverageKeyPrefix = "local:coverage:"

// RedisStore keeps the latest coverage record per project in Redis so every
// instance shares one cache. The TTL only bounds storage; freshness comes from
// DeleteByProject being called on every mutation.
type RedisStore struct {
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithTTL sets key expiry. Zero keeps keys until deleted.
func WithTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		if ttl >= 0 {
			s.ttl = ttl
		}
	}
}

// WithMetrics records lookup latency.
func WithMetrics(m *metrics.Metrics) RedisOption {
	return func(s *RedisStore) {
		s.metrics = m
	}
}

// NewRedis constructs a Redis-backed coverage store.
func NewRedis(client *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func coverageKey(projectID id.ProjectID) string {
	return coverageKeyPrefix + projectID.String()
}

func (s *RedisStore) FindLatest(ctx context.Context, projectID id.ProjectID) (*models.CoverageRecord, error) {
	start := time.Now()
	defer func() { s.metrics.ObserveCacheLookup("redis", time.Since(start)) }()

	raw, err := s.client.Get(ctx, coverageKey(projectID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get coverage: %w", err)
	}
	var rec models.CoverageRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode coverage: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Save(ctx context.Context, record *models.CoverageRecord) error {
	if record == nil {
		return fmt.Errorf("coverage record is required")
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode coverage: %w", err)
	}
	if err := s.client.Set(ctx, coverageKey(id.ProjectID(record.ProjectID)), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("set coverage: %w", err)
	}
	return nil
}

func (s *RedisStore) DeleteByProject(ctx context.Context, projectID id.ProjectID) error {
	if err := s.client.Del(ctx, coverageKey(projectID)).Err(); err != nil {
		return fmt.Errorf("delete coverage: %w", err)
	}
	return nil
}
