// Package config loads pathcover settings from a TOML file and the
// environment.
//
// Settings are resolved in order: defaults, then the config file
// (~/.config/pathcover/config.toml, honoring XDG_CONFIG_HOME), then
// PATHCOVER_* environment variables. Command-line flags are applied on top
// by the CLI.
//
// Example file:
//
//	[cache]
//	backend = "redis"
//	redis_addr = "localhost:6379"
//
//	[store]
//	backend = "mongo"
//	mongo_uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pathcover/pkg/errors"
)

// Backend names.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"

	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Environment variables that override file settings.
const (
	EnvRedisAddr = "PATHCOVER_REDIS_ADDR"
	EnvMongoURI  = "PATHCOVER_MONGO_URI"
	EnvAddr      = "PATHCOVER_ADDR"
	EnvCacheDir  = "PATHCOVER_CACHE_DIR"
)

// Config is the resolved configuration.
type Config struct {
	Cache  Cache  `toml:"cache"`
	Store  Store  `toml:"store"`
	Server Server `toml:"server"`
}

// Cache selects and configures the cache backend.
type Cache struct {
	Backend       string `toml:"backend"` // file, redis or none
	Dir           string `toml:"dir"`     // file backend directory; empty means the user cache dir
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// Store selects the result store used by the HTTP API.
type Store struct {
	Backend    string `toml:"backend"` // memory or mongo
	MongoURI   string `toml:"mongo_uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// Server configures the HTTP API.
type Server struct {
	Addr           string   `toml:"addr"`
	RequestTimeout Duration `toml:"request_timeout"`
	MaxBodyBytes   int64    `toml:"max_body_bytes"`
}

// Duration is a time.Duration that decodes from TOML strings like "30s".
type Duration struct{ time.Duration }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cache: Cache{Backend: CacheFile, RedisAddr: "localhost:6379"},
		Store: Store{
			Backend:    StoreMemory,
			MongoURI:   "mongodb://localhost:27017",
			Database:   "pathcover",
			Collection: "covers",
		},
		Server: Server{
			Addr:           ":8080",
			RequestTimeout: Duration{30 * time.Second},
			MaxBodyBytes:   8 << 20,
		},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, "pathcover", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "pathcover", "config.toml"), nil
}

// Load reads the config file at path on top of the defaults and applies
// environment overrides. An empty path means [Path]; a missing default file
// is not an error, but a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		switch {
		case os.IsNotExist(err) && !explicit:
		case os.IsNotExist(err):
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		default:
			return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config file %s", path)
		}
	}

	cfg.applyEnv(os.Getenv)
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvRedisAddr); v != "" {
		c.Cache.RedisAddr = v
		c.Cache.Backend = CacheRedis
	}
	if v := getenv(EnvCacheDir); v != "" {
		c.Cache.Dir = v
	}
	if v := getenv(EnvMongoURI); v != "" {
		c.Store.MongoURI = v
		c.Store.Backend = StoreMongo
	}
	if v := getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
}

// Validate checks backend names and limits.
func (c Config) Validate() error {
	if !slices.Contains([]string{CacheFile, CacheRedis, CacheNone}, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend %q (want file, redis or none)", c.Cache.Backend)
	}
	if !slices.Contains([]string{StoreMemory, StoreMongo}, c.Store.Backend) {
		return errors.New(errors.ErrCodeInvalidInput, "unknown store backend %q (want memory or mongo)", c.Store.Backend)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_body_bytes must be positive")
	}
	if c.Server.RequestTimeout.Duration <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.request_timeout must be positive")
	}
	return nil
}
