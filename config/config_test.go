package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unkn0wn-root/beconv/codec"
	"github.com/unkn0wn-root/beconv/provider/bigcache"
	"github.com/unkn0wn-root/beconv/provider/ristretto"
	"github.com/unkn0wn-root/beconv/store"
)

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse(`namespace = "prices"`)
	require.NoError(t, err)
	assert.Equal(t, "prices", cfg.Namespace)
	assert.Equal(t, 10*time.Minute, cfg.DefaultTTL)
	assert.Equal(t, ProviderRistretto, cfg.Provider)
	assert.Equal(t, int64(64), cfg.Ristretto.BufferItems)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beconv.toml")
	doc := `
namespace = " counters "
default_ttl = "90s"
provider = "BigCache"

[bigcache]
life_window = "5m"
hard_max_cache_size_mb = 32

[redis]
addr = "cache:6379"
db = 2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "counters", cfg.Namespace)
	assert.Equal(t, 90*time.Second, cfg.DefaultTTL)
	assert.Equal(t, ProviderBigcache, cfg.Provider)
	assert.Equal(t, 5*time.Minute, cfg.Bigcache.LifeWindow)
	assert.Equal(t, 32, cfg.Bigcache.HardMaxCacheSizeMB)
	assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidation(t *testing.T) {
	cases := map[string]string{
		"no namespace":     `provider = "ristretto"`,
		"negative ttl":     "namespace = \"n\"\ndefault_ttl = \"-1s\"",
		"bad ristretto":    "namespace = \"n\"\n[ristretto]\nmax_cost = 0",
		"bad bigcache":     "namespace = \"n\"\nprovider = \"bigcache\"\n[bigcache]\nlife_window = \"0s\"",
		"empty redis addr": "namespace = \"n\"\nprovider = \"redis\"\n[redis]\naddr = \" \"",
		"syntax":           `namespace = `,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(doc)
			assert.Error(t, err)
		})
	}

	_, err := Parse("namespace = \"n\"\nprovider = \"memcached\"")
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNewProvider(t *testing.T) {
	ctx := context.Background()

	cfg, err := Parse(`namespace = "n"`)
	require.NoError(t, err)
	p, err := cfg.NewProvider(ctx)
	require.NoError(t, err)
	assert.IsType(t, &ristretto.Provider{}, p)
	require.NoError(t, p.Close(ctx))

	cfg.Provider = ProviderBigcache
	p, err = cfg.NewProvider(ctx)
	require.NoError(t, err)
	assert.IsType(t, &bigcache.Provider{}, p)
	require.NoError(t, p.Close(ctx))

	cfg.Provider = "nope"
	_, err = cfg.NewProvider(ctx)
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestStoreOptionsBuildsWorkingStore(t *testing.T) {
	ctx := context.Background()
	cfg, err := Parse("namespace = \"n\"\nprovider = \"bigcache\"\ndefault_ttl = \"1m\"")
	require.NoError(t, err)
	p, err := cfg.NewProvider(ctx)
	require.NoError(t, err)

	opts := StoreOptions[int32](cfg, p, codec.Int32{})
	assert.Equal(t, time.Minute, opts.DefaultTTL)
	s, err := store.New(opts)
	require.NoError(t, err)
	defer s.Close(ctx)

	require.NoError(t, s.Set(ctx, "k", -1, 0))
	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int32(-1), got)
}
