package config

import (
	"slices"

	"github.com/matzehuels/galaxy/pkg/errors"
)

// Validate reports the first invalid field.
func (c *Config) Validate() error {
	l := c.Layout
	switch {
	case l.Gap != nil && *l.Gap < 0:
		return invalid("layout.gap must be non-negative")
	case l.ResizeThreshold < 0:
		return invalid("layout.resize_threshold must be non-negative")
	case l.VirtualizeMinItems < 0:
		return invalid("layout.virtualize_min_items must be non-negative")
	case l.VirtualizeMaxTile < 0:
		return invalid("layout.virtualize_max_tile must be non-negative")
	case l.BufferRows < 0:
		return invalid("layout.buffer_rows must be non-negative")
	case l.Debounce < 0 || l.Frame < 0:
		return invalid("layout durations must be non-negative")
	}

	s := c.Spotlight
	switch {
	case s.InitialDelay < 0 || s.Interval < 0 || s.FetchTimeout < 0:
		return invalid("spotlight durations must be non-negative")
	case s.Attempts < 1:
		return invalid("spotlight.attempts must be at least 1")
	}

	t := c.Tooltip
	if t.Width < 0 || t.Height < 0 || t.Margin < 0 {
		return invalid("tooltip sizes must be non-negative")
	}

	switch c.Store.Driver {
	case StoreMemory:
		if c.Store.Synthetic < 0 {
			return invalid("store.synthetic must be non-negative")
		}
	case StoreMongo:
		if c.Store.MongoURI == "" {
			return invalid("store.mongo_uri is required for the mongo driver")
		}
	default:
		return invalid("store.driver must be %q or %q, got %q", StoreMemory, StoreMongo, c.Store.Driver)
	}

	if !slices.Contains([]string{CacheFile, CacheRedis, CacheNone}, c.Cache.Driver) {
		return invalid("cache.driver must be %q, %q or %q, got %q", CacheFile, CacheRedis, CacheNone, c.Cache.Driver)
	}
	if c.Cache.Driver == CacheRedis && c.Cache.RedisAddr == "" {
		return invalid("cache.redis_addr is required for the redis driver")
	}
	if c.Cache.DetailTTL < 0 || c.Cache.ItemsTTL < 0 {
		return invalid("cache ttls must be non-negative")
	}

	if c.Server.Addr == "" {
		return invalid("server.addr cannot be empty")
	}
	return nil
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}
