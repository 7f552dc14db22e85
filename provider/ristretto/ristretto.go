// Package ristretto adapts dgraph-io/ristretto to provider.Provider. Entry
// cost is the framed length passed by the store, so MaxCost is a byte budget.
package ristretto

import (
	"context"
	"time"

	rc "github.com/dgraph-io/ristretto"
	"github.com/pkg/errors"

	pr "github.com/unkn0wn-root/beconv/provider"
)

type Provider struct {
	c *rc.Cache
	// wait makes Set block until the write is applied. Ristretto buffers
	// writes, so without it a Get right after Set may miss.
	wait bool
}

var _ pr.Provider = (*Provider)(nil)

type Config struct {
	NumCounters int64 // keys to track frequency of; ~10x the expected entry count
	MaxCost     int64 // byte budget
	BufferItems int64 // 64 is the ristretto recommendation
	Metrics     bool
	// SyncWrites waits for each Set to be applied before returning.
	SyncWrites bool
}

func (cfg Config) validate() error {
	switch {
	case cfg.NumCounters <= 0:
		return errors.New("ristretto: NumCounters must be positive")
	case cfg.MaxCost <= 0:
		return errors.New("ristretto: MaxCost must be positive")
	case cfg.BufferItems <= 0:
		return errors.New("ristretto: BufferItems must be positive")
	}
	return nil
}

func New(cfg Config) (*Provider, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, errors.Wrap(err, "ristretto: new cache")
	}
	return &Provider{c: c, wait: cfg.SyncWrites}, nil
}

func (p *Provider) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := p.c.Get(key)
	if !ok {
		return nil, false, nil
	}
	b, _ := v.([]byte)
	if b == nil {
		// not written by this provider
		p.c.Del(key)
		return nil, false, nil
	}
	return b, true, nil
}

func (p *Provider) Set(_ context.Context, key string, value []byte, cost int64, ttl time.Duration) (bool, error) {
	if cost <= 0 {
		cost = int64(len(value))
	}
	if ttl < 0 {
		ttl = 0
	}
	ok := p.c.SetWithTTL(key, value, cost, ttl)
	if ok && p.wait {
		p.c.Wait()
	}
	return ok, nil
}

func (p *Provider) Del(_ context.Context, key string) error {
	p.c.Del(key)
	return nil
}

func (p *Provider) Close(_ context.Context) error {
	p.c.Wait()
	p.c.Close()
	return nil
}

// Metrics exposes ristretto's counters when Config.Metrics is set.
func (p *Provider) Metrics() *rc.Metrics { return p.c.Metrics }
