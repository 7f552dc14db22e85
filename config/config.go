// Package config loads a store setup from TOML.
//
//	namespace = "prices"
//	default_ttl = "10m"
//	provider = "ristretto"   # ristretto | bigcache | redis
//
//	[ristretto]
//	num_counters = 100000
//	max_cost = 67108864
//	buffer_items = 64
//
//	[bigcache]
//	life_window = "10m"
//	hard_max_cache_size_mb = 256
//
//	[redis]
//	addr = "127.0.0.1:6379"
//	db = 0
package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	goredis "github.com/redis/go-redis/v9"

	c "github.com/unkn0wn-root/beconv/codec"
	pr "github.com/unkn0wn-root/beconv/provider"
	"github.com/unkn0wn-root/beconv/provider/bigcache"
	"github.com/unkn0wn-root/beconv/provider/redis"
	"github.com/unkn0wn-root/beconv/provider/ristretto"
	"github.com/unkn0wn-root/beconv/store"
)

var ErrUnknownProvider = errors.New("config: unknown provider")

const (
	ProviderRistretto = "ristretto"
	ProviderBigcache  = "bigcache"
	ProviderRedis     = "redis"
)

type Config struct {
	Namespace  string        `toml:"namespace"`
	DefaultTTL time.Duration `toml:"default_ttl"`
	Provider   string        `toml:"provider"`
	Disabled   bool          `toml:"disabled"`

	Ristretto Ristretto `toml:"ristretto"`
	Bigcache  Bigcache  `toml:"bigcache"`
	Redis     Redis     `toml:"redis"`
}

type Ristretto struct {
	NumCounters int64 `toml:"num_counters"`
	MaxCost     int64 `toml:"max_cost"`
	BufferItems int64 `toml:"buffer_items"`
	Metrics     bool  `toml:"metrics"`
}

type Bigcache struct {
	LifeWindow         time.Duration `toml:"life_window"`
	CleanWindow        time.Duration `toml:"clean_window"`
	Shards             int           `toml:"shards"`
	HardMaxCacheSizeMB int           `toml:"hard_max_cache_size_mb"`
}

type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Default is the configuration a file overlays.
func Default() Config {
	return Config{
		DefaultTTL: 10 * time.Minute,
		Provider:   ProviderRistretto,
		Ristretto: Ristretto{
			NumCounters: 100_000,
			MaxCost:     64 << 20,
			BufferItems: 64,
		},
		Bigcache: Bigcache{
			LifeWindow:         10 * time.Minute,
			HardMaxCacheSizeMB: 32,
		},
		Redis: Redis{
			Addr: "127.0.0.1:6379",
		},
	}
}

// Load reads path, applies defaults and validates.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg.normalize()
}

// Parse is Load for an in-memory document.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg.normalize()
}

func (cfg Config) normalize() (Config, error) {
	cfg.Namespace = strings.TrimSpace(cfg.Namespace)
	cfg.Provider = strings.ToLower(strings.TrimSpace(cfg.Provider))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) Validate() error {
	if cfg.Namespace == "" {
		return errors.New("config: namespace is required")
	}
	if cfg.DefaultTTL < 0 {
		return fmt.Errorf("config: default_ttl must not be negative, got %s", cfg.DefaultTTL)
	}
	switch cfg.Provider {
	case ProviderRistretto:
		r := cfg.Ristretto
		if r.NumCounters <= 0 || r.MaxCost <= 0 || r.BufferItems <= 0 {
			return errors.New("config: ristretto num_counters, max_cost and buffer_items must be positive")
		}
	case ProviderBigcache:
		if cfg.Bigcache.LifeWindow <= 0 {
			return errors.New("config: bigcache life_window must be positive")
		}
	case ProviderRedis:
		if strings.TrimSpace(cfg.Redis.Addr) == "" {
			return errors.New("config: redis addr is required")
		}
	default:
		return fmt.Errorf("%w %q (expected ristretto, bigcache or redis)", ErrUnknownProvider, cfg.Provider)
	}
	return nil
}

// NewProvider builds the configured provider. The redis provider owns the
// client it creates and closes it on Close.
func (cfg Config) NewProvider(ctx context.Context) (pr.Provider, error) {
	var (
		p   pr.Provider
		err error
	)
	switch cfg.Provider {
	case ProviderRistretto:
		p, err = ristretto.New(ristretto.Config{
			NumCounters: cfg.Ristretto.NumCounters,
			MaxCost:     cfg.Ristretto.MaxCost,
			BufferItems: cfg.Ristretto.BufferItems,
			Metrics:     cfg.Ristretto.Metrics,
		})
	case ProviderBigcache:
		p, err = bigcache.New(ctx, bigcache.Config{
			LifeWindow:         cfg.Bigcache.LifeWindow,
			CleanWindow:        cfg.Bigcache.CleanWindow,
			Shards:             cfg.Bigcache.Shards,
			HardMaxCacheSizeMB: cfg.Bigcache.HardMaxCacheSizeMB,
		})
	case ProviderRedis:
		rdb := goredis.NewClient(&goredis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		p, err = redis.New(redis.Config{Client: rdb, CloseClient: true})
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownProvider, cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %s provider: %w", cfg.Provider, err)
	}
	return p, nil
}

// StoreOptions fills store.Options from cfg. Logger and Hooks are left for
// the caller.
func StoreOptions[V any](cfg Config, p pr.Provider, codec c.Codec[V]) store.Options[V] {
	return store.Options[V]{
		Namespace:  cfg.Namespace,
		Provider:   p,
		Codec:      codec,
		DefaultTTL: cfg.DefaultTTL,
		Disabled:   cfg.Disabled,
	}
}
