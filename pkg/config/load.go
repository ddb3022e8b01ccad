package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/galaxy/pkg/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvMongoURI  = "GALAXY_MONGO_URI"
	EnvRedisAddr = "GALAXY_REDIS_ADDR"
)

// Dir returns the configuration directory ($XDG_CONFIG_HOME/galaxy or
// ~/.config/galaxy).
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// CacheDir returns the cache directory ($XDG_CACHE_HOME/galaxy or
// ~/.cache/galaxy).
func CacheDir() (string, error) {
	if home := os.Getenv("XDG_CACHE_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// DefaultPath returns the path of the default configuration file.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the file at path, applies defaults and the environment, and
// validates the result. An empty path loads DefaultPath, and a missing
// default file yields the defaults.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}

	var c Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err) && !explicit:
	case os.IsNotExist(err):
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s not found", path)
	case err != nil:
		return Config{}, fmt.Errorf("read config: %w", err)
	default:
		if c, err = Parse(data, filepath.Ext(path)); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	ApplyEnv(&c, os.Getenv)
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Parse decodes a configuration document. ext selects the format: ".toml",
// ".yaml" or ".yml". Unknown keys are rejected. Defaults are not applied.
func Parse(data []byte, ext string) (Config, error) {
	var c Config
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), &c)
		if err != nil {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&c); err != nil && err != io.EOF {
			return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml")
		}
	default:
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unsupported config format %q", ext)
	}
	return c, nil
}

// ApplyEnv overrides c from the environment. A Mongo URI selects the mongo
// store and a Redis address selects the redis cache, unless the file chose
// a driver explicitly.
func ApplyEnv(c *Config, getenv func(string) string) {
	if uri := getenv(EnvMongoURI); uri != "" {
		c.Store.MongoURI = uri
		if c.Store.Driver == "" {
			c.Store.Driver = StoreMongo
		}
	}
	if addr := getenv(EnvRedisAddr); addr != "" {
		c.Cache.RedisAddr = addr
		if c.Cache.Driver == "" {
			c.Cache.Driver = CacheRedis
		}
	}
}

// Encode writes c as TOML, for `galaxy config` to print the effective
// configuration.
func Encode(c Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
