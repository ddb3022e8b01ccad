package profile

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/galaxy/pkg/cache"
	"github.com/matzehuels/galaxy/pkg/observability"
)

// DefaultFetchTimeout bounds one shared lookup in the inner store.
const DefaultFetchTimeout = 10 * time.Second

// CacheOptions configures a CachedStore.
type CacheOptions struct {
	Keyer     cache.Keyer
	DetailTTL time.Duration
	ItemsTTL  time.Duration
	Backoff   cache.Backoff

	// FetchTimeout bounds a lookup shared by concurrent callers. It runs
	// detached from any single caller's cancellation.
	FetchTimeout time.Duration

	Hooks  observability.Hooks
	Logger *log.Logger
}

// CachedStore caches the detail records and item sequence of another store
// by key. Concurrent lookups of the same key share one call to the inner
// store; a caller that gives up does not cancel the call for the others.
// Missing profiles are not cached.
type CachedStore struct {
	inner  Store
	cache  cache.Cache
	opts   CacheOptions
	hooks  observability.CacheHooks
	logger *log.Logger
	group  singleflight.Group
}

// NewCachedStore wraps inner with c.
func NewCachedStore(inner Store, c cache.Cache, opts CacheOptions) *CachedStore {
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.DetailTTL <= 0 {
		opts.DetailTTL = cache.TTLDetail
	}
	if opts.ItemsTTL <= 0 {
		opts.ItemsTTL = cache.TTLItems
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultFetchTimeout
	}
	if opts.Backoff.Attempts <= 0 {
		opts.Backoff = cache.DefaultBackoff
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &CachedStore{
		inner:  inner,
		cache:  c,
		opts:   opts,
		hooks:  opts.Hooks.Cache(),
		logger: logger,
	}
}

// Count implements Store. Counts are not cached.
func (s *CachedStore) Count(ctx context.Context) (int, error) {
	return s.inner.Count(ctx)
}

// Items implements Store.
func (s *CachedStore) Items(ctx context.Context) ([]Item, error) {
	var items []Item
	found, err := s.load(ctx, s.opts.Keyer.ItemsKey(), s.opts.ItemsTTL, &items, func(ctx context.Context) (any, error) {
		return s.inner.Items(ctx)
	})
	if err != nil || !found {
		return nil, err
	}
	return items, nil
}

// Detail implements Store.
func (s *CachedStore) Detail(ctx context.Context, id string) (*Detail, error) {
	var d Detail
	found, err := s.load(ctx, s.opts.Keyer.DetailKey(id), s.opts.DetailTTL, &d, func(ctx context.Context) (any, error) {
		rec, err := s.inner.Detail(ctx, id)
		if rec == nil {
			return nil, err
		}
		return rec, err
	})
	if err != nil || !found {
		return nil, err
	}
	return &d, nil
}

// load fills dst from the cache, or from fetch on a miss. It reports false
// when fetch returned nothing. Values travel through their JSON encoding so
// every caller gets its own copy.
func (s *CachedStore) load(ctx context.Context, key string, ttl time.Duration, dst any, fetch func(context.Context) (any, error)) (bool, error) {
	keyType := cache.KeyType(key)

	data, hit, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Debug("cache get failed", "key", key, "error", err)
	}
	if hit && json.Unmarshal(data, dst) == nil {
		s.hooks.OnCacheHit(ctx, keyType)
		return true, nil
	}
	s.hooks.OnCacheMiss(ctx, keyType)

	ch := s.group.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.FetchTimeout)
		defer cancel()

		var value any
		err := cache.RetryWithBackoff(fctx, s.opts.Backoff, func() error {
			var err error
			value, err = fetch(fctx)
			return err
		})
		if err != nil || value == nil {
			return nil, err
		}

		encoded, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		if err := s.cache.Set(fctx, key, encoded, ttl); err != nil {
			s.logger.Debug("cache set failed", "key", key, "error", err)
		} else {
			s.hooks.OnCacheSet(fctx, keyType, len(encoded))
		}
		return encoded, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil || res.Val == nil {
		return false, res.Err
	}
	if err := json.Unmarshal(res.Val.([]byte), dst); err != nil {
		return false, err
	}
	return true, nil
}

var _ Store = (*CachedStore)(nil)
