package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrKeyNotFound is returned when a key id is absent even after a refresh.
var ErrKeyNotFound = errors.New("signing key not found")

type jwksFetcher interface {
	Fetch(ctx context.Context) ([]byte, error)
}

type invalidator interface {
	Invalidate(ctx context.Context) error
}

// KeySource looks up a signing key by key id.
type KeySource interface {
	Get(ctx context.Context, kid string) (SigningKey, error)
}

// KeyCache is the process-wide cache of the provider's signing keys.
//
// A lookup is served from memory while the cache is younger than ttl. A miss
// or an expired cache triggers one fetch that replaces the whole key map.
// Concurrent refreshes collapse into a single fetch. A failed fetch is
// returned to the caller and the previous key map is kept, but it is never
// used to satisfy the request that triggered the failed refresh.
//
// The shared fetch is detached from the caller that started it, so one
// canceled request does not fail the others waiting on the same refresh.
type KeyCache struct {
	fetcher jwksFetcher
	ttl     time.Duration
	now     func() time.Time
	log     *slog.Logger

	group singleflight.Group

	mu        sync.RWMutex
	keys      map[string]SigningKey
	fetchedAt time.Time
}

// refreshTimeout bounds a shared fetch once it no longer follows its caller.
const refreshTimeout = 10 * time.Second

// NewKeyCache creates a cache over fetcher.
func NewKeyCache(fetcher jwksFetcher, ttl time.Duration, logger *slog.Logger) *KeyCache {
	return &KeyCache{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
		log:     logger.With("component", "key_cache"),
	}
}

// Get returns the key for kid, refreshing the key set on miss or expiry.
func (c *KeyCache) Get(ctx context.Context, kid string) (SigningKey, error) {
	c.mu.RLock()
	key, ok := c.keys[kid]
	age := c.now().Sub(c.fetchedAt)
	loaded := c.keys != nil
	c.mu.RUnlock()

	fresh := loaded && age < c.ttl
	if ok && fresh {
		return key, nil
	}

	if err := c.refresh(ctx, fresh); err != nil {
		return SigningKey{}, err
	}

	c.mu.RLock()
	key, ok = c.keys[kid]
	c.mu.RUnlock()
	if !ok {
		return SigningKey{}, fmt.Errorf("kid %q: %w", kid, ErrKeyNotFound)
	}
	return key, nil
}

// Invalidate forgets all cached keys.
func (c *KeyCache) Invalidate() {
	c.mu.Lock()
	c.keys = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}

func (c *KeyCache) refresh(ctx context.Context, onMiss bool) error {
	ch := c.group.DoChan("jwks", func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		if inv, ok := c.fetcher.(invalidator); ok && onMiss {
			if err := inv.Invalidate(fetchCtx); err != nil {
				c.log.WarnContext(fetchCtx, "shared jwks invalidation failed", slog.String("error", err.Error()))
			}
		}

		raw, err := c.fetcher.Fetch(fetchCtx)
		if err != nil {
			return nil, fmt.Errorf("refresh signing keys: %w", err)
		}
		keys, skipped, err := parseJWKS(raw)
		if err != nil {
			return nil, fmt.Errorf("refresh signing keys: %w", err)
		}
		for kid, kerr := range skipped {
			c.log.WarnContext(fetchCtx, "skipping malformed signing key",
				slog.String("kid", kid),
				slog.String("error", kerr.Error()),
			)
		}

		c.mu.Lock()
		c.keys = keys
		c.fetchedAt = c.now()
		c.mu.Unlock()

		c.log.DebugContext(fetchCtx, "signing keys refreshed", slog.Int("keys", len(keys)))
		return nil, nil
	})

	select {
	case res := <-ch:
		return res.Err
	case <-ctx.Done():
		return fmt.Errorf("refresh signing keys: %w", ctx.Err())
	}
}

// StaticKeys is a fixed KeySource, used where the key set is known up front.
type StaticKeys map[string]SigningKey

// Get returns the key for kid or ErrKeyNotFound.
func (s StaticKeys) Get(_ context.Context, kid string) (SigningKey, error) {
	key, ok := s[kid]
	if !ok {
		return SigningKey{}, fmt.Errorf("kid %q: %w", kid, ErrKeyNotFound)
	}
	return key, nil
}
