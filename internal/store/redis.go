package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/donaldgifford/quicklist/internal/config"
	domain "github.com/donaldgifford/quicklist/pkg/types"
)

// maxHistory bounds the listing history kept by the Redis and file drivers.
const maxHistory = 1000

// RedisStore implements Store on a single Redis database. The credential is a
// JSON string; the listing history is a capped list, newest first.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to Redis. Addr may be host:port or a redis:// URL.
func NewRedisStore(ctx context.Context, cfg config.RedisConfig, opts ...Option) (*RedisStore, error) {
	var redisOpts *redis.Options
	if strings.HasPrefix(cfg.Addr, "redis://") || strings.HasPrefix(cfg.Addr, "rediss://") {
		parsed, err := redis.ParseURL(cfg.Addr)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		redisOpts = parsed
	} else {
		redisOpts = &redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	client := redis.NewClient(redisOpts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return NewRedisStoreFromClient(client, cfg.Prefix, opts...), nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client, prefix string, opts ...Option) *RedisStore {
	o := buildOptions(opts)
	if prefix == "" {
		prefix = "quicklist"
	}
	return &RedisStore{
		client: client,
		prefix: prefix + ":" + o.instance,
	}
}

func (s *RedisStore) credentialKey() string { return s.prefix + ":credential" }
func (s *RedisStore) listingsKey() string   { return s.prefix + ":listings" }

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping verifies the Redis connection is alive.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Migrate is a no-op; Redis keys need no schema.
func (*RedisStore) Migrate(context.Context) error {
	return nil
}

// GetCredential returns the stored credential or domain.ErrNoCredential.
func (s *RedisStore) GetCredential(ctx context.Context) (*domain.Credential, error) {
	raw, err := s.client.Get(ctx, s.credentialKey()).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoCredential
	}
	if err != nil {
		return nil, fmt.Errorf("reading credential: %w", err)
	}

	c := &domain.Credential{}
	if err := json.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("decoding credential: %w", err)
	}
	return c, nil
}

// SaveCredential replaces the stored credential with a single SET.
func (s *RedisStore) SaveCredential(ctx context.Context, c *domain.Credential) error {
	c.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding credential: %w", err)
	}
	if err := s.client.Set(ctx, s.credentialKey(), raw, 0).Err(); err != nil {
		return fmt.Errorf("writing credential: %w", err)
	}
	return nil
}

// DeleteCredential removes the stored credential, if any.
func (s *RedisStore) DeleteCredential(ctx context.Context) error {
	if err := s.client.Del(ctx, s.credentialKey()).Err(); err != nil {
		return fmt.Errorf("deleting credential: %w", err)
	}
	return nil
}

// SaveLastListing pushes l onto the history list and trims it.
func (s *RedisStore) SaveLastListing(ctx context.Context, l *domain.LastListing) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("encoding listing: %w", err)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, s.listingsKey(), raw)
		pipe.LTrim(ctx, s.listingsKey(), 0, maxHistory-1)
		return nil
	})
	if err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

// GetLastListing returns the most recent listing or domain.ErrNoLastListing.
func (s *RedisStore) GetLastListing(ctx context.Context) (*domain.LastListing, error) {
	raw, err := s.client.LIndex(ctx, s.listingsKey(), 0).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoLastListing
	}
	if err != nil {
		return nil, fmt.Errorf("reading last listing: %w", err)
	}

	l := &domain.LastListing{}
	if err := json.Unmarshal(raw, l); err != nil {
		return nil, fmt.Errorf("decoding listing: %w", err)
	}
	return l, nil
}

// ListListings loads the capped history and filters it in memory.
func (s *RedisStore) ListListings(
	ctx context.Context,
	q *ListingQuery,
) ([]domain.LastListing, int, error) {
	if q == nil {
		q = &ListingQuery{}
	}

	raws, err := s.client.LRange(ctx, s.listingsKey(), 0, -1).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("reading listings: %w", err)
	}

	all := make([]domain.LastListing, 0, len(raws))
	for _, raw := range raws {
		var l domain.LastListing
		if err := json.Unmarshal([]byte(raw), &l); err != nil {
			return nil, 0, fmt.Errorf("decoding listing: %w", err)
		}
		all = append(all, l)
	}

	page, total := q.Apply(all)
	return page, total, nil
}
