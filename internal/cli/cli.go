package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pathcover/pkg/cache"
	"github.com/matzehuels/pathcover/pkg/config"
	pio "github.com/matzehuels/pathcover/pkg/io"
	"github.com/matzehuels/pathcover/pkg/pipeline"
	"github.com/matzehuels/pathcover/pkg/store"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pathcover"

	// stdinName is the file argument that selects standard input.
	stdinName = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command results (cover text, JSON, tables). Status lines
	// and logs go to stderr so results can be piped.
	Out io.Writer

	// In is read when the input file is "-" or omitted.
	In io.Reader

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Out:    os.Stdout,
		In:     os.Stdin,
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the config file selected by --config.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "cache", cfg.Cache.Backend, "store", cfg.Store.Backend)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner over the configured cache. A nil
// keyer uses the default key layout.
func (c *CLI) newRunner(ctx context.Context, noCache bool, keyer cache.Keyer) *pipeline.Runner {
	return pipeline.NewRunner(c.newCache(ctx, noCache), keyer, c.Logger)
}

// newCache opens the configured cache backend. A backend that cannot be
// opened is logged and replaced by the null cache.
func (c *CLI) newCache(ctx context.Context, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	switch c.cfg.Cache.Backend {
	case config.CacheNone:
		return cache.NewNullCache()
	case config.CacheRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     c.cfg.Cache.RedisAddr,
			Password: c.cfg.Cache.RedisPassword,
			DB:       c.cfg.Cache.RedisDB,
			Prefix:   appName + ":",
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, caching disabled", "error", err)
			return cache.NewNullCache()
		}
		return rc
	}

	dir, err := c.cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "error", err)
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("file cache unavailable, caching disabled", "error", err)
		return cache.NewNullCache()
	}
	return fc
}

// newStore opens the configured result store.
func (c *CLI) newStore(ctx context.Context) (store.Store, error) {
	if c.cfg.Store.Backend == config.StoreMongo {
		return store.NewMongoStore(ctx, store.MongoOptions{
			URI:        c.cfg.Store.MongoURI,
			Database:   c.cfg.Store.Database,
			Collection: c.cfg.Store.Collection,
		})
	}
	return store.NewMemoryStore(), nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the file cache directory: the configured one, or the
// per-user cache directory (~/.cache/pathcover on Linux).
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

// =============================================================================
// Input Helpers
// =============================================================================

// openInput opens the named file, or standard input for "" and "-". The
// input format is format when set, otherwise guessed from the file name.
func (c *CLI) openInput(name, format string) (io.ReadCloser, string, error) {
	if format == "" {
		format = string(pio.DetectFormat(name))
	}
	if name == "" || name == stdinName {
		return io.NopCloser(c.In), format, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, "", err
	}
	return f, format, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}
