package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/galaxy/pkg/cache"
	"github.com/matzehuels/galaxy/pkg/config"
	"github.com/matzehuels/galaxy/pkg/galaxy"
	"github.com/matzehuels/galaxy/pkg/observability"
	"github.com/matzehuels/galaxy/pkg/profile"
)

// connectTimeout bounds connecting to MongoDB and Redis.
const connectTimeout = 10 * time.Second

// syntheticEpoch is the creation time of the first synthetic profile.
var syntheticEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// backend is the profile store selected by the configuration.
type backend struct {
	// Store is what views read from. For the mongo driver it is wrapped in
	// the configured detail cache.
	Store profile.Store

	// Memory is set for the memory driver so previews can grow and shrink
	// the galaxy.
	Memory *profile.MemoryStore

	// Mongo is set for the mongo driver.
	Mongo *profile.MongoStore

	cache cache.Cache
}

// openBackend connects the store and cache named by cfg.
func openBackend(ctx context.Context, cfg config.Config, logger *log.Logger, noCache bool) (*backend, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		mem := profile.NewMemoryStore(profile.Synthetic(cfg.Store.Synthetic, cfg.Store.Seed, syntheticEpoch)...)
		logger.Debug("memory store", "profiles", cfg.Store.Synthetic, "seed", cfg.Store.Seed)
		return &backend{Store: mem, Memory: mem}, nil

	case config.StoreMongo:
		cctx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		mongo, err := profile.ConnectMongo(cctx, cfg.Store.MongoURI, cfg.Store.Database)
		if err != nil {
			return nil, err
		}
		b := &backend{Mongo: mongo}

		c := cache.NewNullCache()
		if !noCache {
			if c, err = openCache(cctx, cfg.Cache); err != nil {
				_ = mongo.Close(context.Background())
				return nil, err
			}
		}
		b.cache = c
		b.Store = profile.NewCachedStore(mongo, c, profile.CacheOptions{
			Keyer:     keyer(cfg.Cache),
			DetailTTL: cfg.Cache.DetailTTL,
			ItemsTTL:  cfg.Cache.ItemsTTL,
			Hooks:     observability.NewLogHooks(logger),
			Logger:    logger,
		})
		logger.Debug("mongo store", "database", cfg.Store.Database, "cache", cfg.Cache.Driver)
		return b, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

// Close releases the store and cache connections.
func (b *backend) Close(ctx context.Context) error {
	var errs []error
	if b.cache != nil {
		errs = append(errs, b.cache.Close())
	}
	if b.Mongo != nil {
		errs = append(errs, b.Mongo.Close(ctx))
	}
	return errors.Join(errs...)
}

// openCache opens the detail cache named by cfg.
func openCache(ctx context.Context, cfg config.Cache) (cache.Cache, error) {
	switch cfg.Driver {
	case config.CacheNone:
		return cache.NewNullCache(), nil
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	default:
		dir, err := cacheDir(cfg)
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(dir)
	}
}

func keyer(cfg config.Cache) cache.Keyer {
	if cfg.Prefix == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(cache.NewDefaultKeyer(), cfg.Prefix)
}

// cacheDir returns the file cache directory: cache.dir when set, else the
// XDG cache directory.
func cacheDir(cfg config.Cache) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	return config.CacheDir()
}

// viewOptions maps cfg onto view options with the CLI's logger.
func viewOptions(cfg config.Config, logger *log.Logger) galaxy.Options {
	opts := galaxy.OptionsFromConfig(cfg)
	opts.Logger = logger
	opts.Hooks = observability.NewLogHooks(logger)
	return opts
}
