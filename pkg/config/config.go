// Package config loads the galaxy configuration file.
//
// The file is TOML (config.toml) or YAML (config.yaml / config.yml), chosen
// by extension. Every field is optional; zero values are replaced by the
// defaults in [Default]. Two environment variables override the file:
//
//	GALAXY_MONGO_URI   selects the MongoDB profile store
//	GALAXY_REDIS_ADDR  selects the Redis detail cache
//
// The default location follows the XDG base directory convention:
// $XDG_CONFIG_HOME/galaxy/config.toml, falling back to ~/.config/galaxy.
package config

import (
	"time"
)

const appName = "galaxy"

// Store drivers.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Cache drivers.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the complete configuration.
type Config struct {
	Layout    Layout    `toml:"layout" yaml:"layout"`
	Spotlight Spotlight `toml:"spotlight" yaml:"spotlight"`
	Tooltip   Tooltip   `toml:"tooltip" yaml:"tooltip"`
	Store     Store     `toml:"store" yaml:"store"`
	Cache     Cache     `toml:"cache" yaml:"cache"`
	Server    Server    `toml:"server" yaml:"server"`
}

// DefaultGap is the tile spacing used when the config leaves gap unset.
const DefaultGap = 1.0

// Layout configures the grid engine and the view's event coalescing.
type Layout struct {
	Gap                *float64      `toml:"gap" yaml:"gap"` // nil means DefaultGap; 0 is a gapless grid
	ResizeThreshold    float64       `toml:"resize_threshold" yaml:"resize_threshold"`
	VirtualizeMinItems int           `toml:"virtualize_min_items" yaml:"virtualize_min_items"`
	VirtualizeMaxTile  float64       `toml:"virtualize_max_tile" yaml:"virtualize_max_tile"`
	BufferRows         int           `toml:"buffer_rows" yaml:"buffer_rows"`
	Debounce           time.Duration `toml:"debounce" yaml:"debounce"`
	Frame              time.Duration `toml:"frame" yaml:"frame"`
}

// Spotlight configures the rotation.
type Spotlight struct {
	Disabled     bool          `toml:"disabled" yaml:"disabled"`
	InitialDelay time.Duration `toml:"initial_delay" yaml:"initial_delay"`
	Interval     time.Duration `toml:"interval" yaml:"interval"`
	FetchTimeout time.Duration `toml:"fetch_timeout" yaml:"fetch_timeout"`
	Attempts     int           `toml:"attempts" yaml:"attempts"`
}

// Tooltip configures the spotlight tooltip box.
type Tooltip struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
	Margin float64 `toml:"margin" yaml:"margin"`
}

// Store selects the profile store.
type Store struct {
	Driver    string `toml:"driver" yaml:"driver"`
	MongoURI  string `toml:"mongo_uri" yaml:"mongo_uri"`
	Database  string `toml:"database" yaml:"database"`
	Synthetic int    `toml:"synthetic" yaml:"synthetic"`
	Seed      uint64 `toml:"seed" yaml:"seed"`
}

// Cache selects the detail cache.
type Cache struct {
	Driver        string        `toml:"driver" yaml:"driver"`
	Dir           string        `toml:"dir" yaml:"dir"`
	RedisAddr     string        `toml:"redis_addr" yaml:"redis_addr"`
	RedisPassword string        `toml:"redis_password" yaml:"redis_password"`
	RedisDB       int           `toml:"redis_db" yaml:"redis_db"`
	Prefix        string        `toml:"prefix" yaml:"prefix"`
	DetailTTL     time.Duration `toml:"detail_ttl" yaml:"detail_ttl"`
	ItemsTTL      time.Duration `toml:"items_ttl" yaml:"items_ttl"`
}

// Server configures the HTTP API.
type Server struct {
	Addr              string        `toml:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `toml:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `toml:"shutdown_timeout" yaml:"shutdown_timeout"`
	AllowedOrigins    []string      `toml:"allowed_origins" yaml:"allowed_origins"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	var c Config
	c.SetDefaults()
	return c
}

// SetDefaults fills zero-valued fields with their defaults.
func (c *Config) SetDefaults() {
	l := &c.Layout
	if l.Gap == nil {
		gap := DefaultGap
		l.Gap = &gap
	}
	if l.ResizeThreshold == 0 {
		l.ResizeThreshold = 0.5
	}
	if l.VirtualizeMinItems == 0 {
		l.VirtualizeMinItems = 2000
	}
	if l.VirtualizeMaxTile == 0 {
		l.VirtualizeMaxTile = 8
	}
	if l.BufferRows == 0 {
		l.BufferRows = 5
	}
	if l.Debounce == 0 {
		l.Debounce = 100 * time.Millisecond
	}
	if l.Frame == 0 {
		l.Frame = 16 * time.Millisecond
	}

	s := &c.Spotlight
	if s.InitialDelay == 0 {
		s.InitialDelay = 2 * time.Second
	}
	if s.Interval == 0 {
		s.Interval = 5 * time.Second
	}
	if s.FetchTimeout == 0 {
		s.FetchTimeout = 3 * time.Second
	}
	if s.Attempts == 0 {
		s.Attempts = 10
	}

	t := &c.Tooltip
	if t.Width == 0 {
		t.Width = 260
	}
	if t.Height == 0 {
		t.Height = 180
	}
	if t.Margin == 0 {
		t.Margin = 8
	}

	if c.Store.Driver == "" {
		c.Store.Driver = StoreMemory
	}
	if c.Store.Database == "" {
		c.Store.Database = appName
	}
	if c.Store.Synthetic == 0 {
		c.Store.Synthetic = 500
	}

	if c.Cache.Driver == "" {
		c.Cache.Driver = CacheFile
	}
	if c.Cache.DetailTTL == 0 {
		c.Cache.DetailTTL = 10 * time.Minute
	}
	if c.Cache.ItemsTTL == 0 {
		c.Cache.ItemsTTL = 30 * time.Second
	}

	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadHeaderTimeout == 0 {
		c.Server.ReadHeaderTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
}
