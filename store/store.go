// Package store keeps typed values in a byte provider.
//
// Each value is encoded with a codec.Codec[V] and framed by internal/wire
// (magic, version, kind, length). Reads validate the frame and, when the
// codec is a fixed-width one, that the stored kind matches; entries that fail
// either check or do not decode are deleted and reported as misses.
//
//	s, _ := store.New(store.Options[int64]{
//	    Namespace: "counters",
//	    Provider:  p,
//	    Codec:     codec.Int64{},
//	})
//	_ = s.Set(ctx, "visits", 42, 0)
//	n, ok, err := s.Get(ctx, "visits")
package store

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/unkn0wn-root/beconv"
	c "github.com/unkn0wn-root/beconv/codec"
	"github.com/unkn0wn-root/beconv/internal/util"
	"github.com/unkn0wn-root/beconv/internal/wire"
	pr "github.com/unkn0wn-root/beconv/provider"
)

const defaultTTL = 10 * time.Minute

// Self-heal reasons passed to Hooks.SelfHeal.
const (
	ReasonCorrupt      = "corrupt"
	ReasonKindMismatch = "kind_mismatch"
	ReasonValueDecode  = "value_decode"
)

// SetCostFunc computes the provider cost of an entry. raw is the framed entry.
type SetCostFunc func(key string, raw []byte) int64

// Options tune the store. Namespace, Provider and Codec are required.
type Options[V any] struct {
	Namespace string // e.g. "prices", "counters"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Logger         beconv.Logger // nil => NopLogger
	Hooks          Hooks         // nil => NopHooks
	DefaultTTL     time.Duration // used when Set gets ttl == 0; 0 => 10m
	ComputeSetCost SetCostFunc   // default len(raw)
	Disabled       bool          // Get always misses, Set/Delete are no-ops
}

// Store is safe for concurrent use if its provider is.
type Store[V any] struct {
	ns         string
	provider   pr.Provider
	codec      c.Codec[V]
	kind       beconv.Kind
	log        beconv.Logger
	hooks      Hooks
	enabled    bool
	defaultTTL time.Duration
	cost       SetCostFunc
}

func New[V any](opts Options[V]) (*Store[V], error) {
	if opts.Provider == nil {
		return nil, errors.New("store: provider is required")
	}
	if opts.Codec == nil {
		return nil, errors.New("store: codec is required")
	}
	if opts.Namespace == "" {
		return nil, errors.New("store: namespace is required")
	}

	s := &Store[V]{
		ns:       opts.Namespace,
		provider: opts.Provider,
		codec:    opts.Codec,
		kind:     c.KindOf(opts.Codec),
		enabled:  !opts.Disabled,
	}
	s.log = util.Coalesce[beconv.Logger](opts.Logger, beconv.NopLogger{})
	s.hooks = util.Coalesce[Hooks](opts.Hooks, NopHooks{})
	s.defaultTTL = util.Coalesce(opts.DefaultTTL, defaultTTL)
	if opts.ComputeSetCost != nil {
		s.cost = opts.ComputeSetCost
	} else {
		s.cost = func(_ string, raw []byte) int64 { return int64(len(raw)) }
	}
	return s, nil
}

func (s *Store[V]) Enabled() bool { return s.enabled }

// Kind is the kind recorded with every entry (KindInvalid for codecs that
// do not declare one).
func (s *Store[V]) Kind() beconv.Kind { return s.kind }

func (s *Store[V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

// Get returns (zero, false, nil) on a miss, including entries it had to
// discard. Only provider failures are returned as errors.
func (s *Store[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	if !s.enabled {
		return zero, false, nil
	}
	k := s.storageKey(key)
	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		s.hooks.ProviderError("get", k, err)
		return zero, false, errors.Wrapf(err, "store: get %q", key)
	}
	if !ok {
		return zero, false, nil
	}
	kind, payload, err := wire.Decode(raw)
	if err != nil {
		s.selfHeal(ctx, k, ReasonCorrupt, err)
		return zero, false, nil
	}
	if kind != s.kind {
		s.selfHeal(ctx, k, ReasonKindMismatch,
			errors.Errorf("stored %s, codec %s", kind, s.kind))
		return zero, false, nil
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		s.selfHeal(ctx, k, ReasonValueDecode, err)
		return zero, false, nil
	}
	return v, true, nil
}

// GetMany looks up keys one by one. missing keeps the order of keys.
func (s *Store[V]) GetMany(ctx context.Context, keys []string) (map[string]V, []string, error) {
	out := make(map[string]V, len(keys))
	var missing []string
	for _, k := range keys {
		v, ok, err := s.Get(ctx, k)
		if err != nil {
			return out, missing, err
		}
		if ok {
			out[k] = v
		} else {
			missing = append(missing, k)
		}
	}
	return out, missing, nil
}

// Set stores value under key. ttl == 0 uses the default TTL. A provider that
// refuses the write under pressure is not an error.
func (s *Store[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	if !s.enabled {
		return nil
	}
	if ttl == 0 {
		ttl = s.defaultTTL
	}
	payload, err := s.codec.Encode(value)
	if err != nil {
		return errors.Wrapf(err, "store: encode %q", key)
	}
	k := s.storageKey(key)
	raw := wire.Encode(s.kind, payload)
	ok, err := s.provider.Set(ctx, k, raw, s.cost(k, raw), ttl)
	if err != nil {
		s.hooks.ProviderError("set", k, err)
		return errors.Wrapf(err, "store: set %q", key)
	}
	if !ok {
		s.hooks.ProviderSetRejected(k)
		s.log.Debug("Set rejected by provider (pressure)", beconv.Fields{"key": key, "bytes": len(raw)})
	}
	return nil
}

func (s *Store[V]) Delete(ctx context.Context, key string) error {
	if !s.enabled {
		return nil
	}
	k := s.storageKey(key)
	if err := s.provider.Del(ctx, k); err != nil {
		s.hooks.ProviderError("del", k, err)
		return errors.Wrapf(err, "store: delete %q", key)
	}
	return nil
}

func (s *Store[V]) selfHeal(ctx context.Context, storageKey, reason string, cause error) {
	s.hooks.SelfHeal(storageKey, reason)
	s.log.Warn("dropping unreadable entry", beconv.Fields{"key": storageKey, "reason": reason, "err": cause})
	if err := s.provider.Del(ctx, storageKey); err != nil {
		s.hooks.ProviderError("del", storageKey, err)
		s.log.Error("self-heal delete failed", beconv.Fields{"key": storageKey, "err": err})
	}
}

func (s *Store[V]) storageKey(key string) string {
	return util.StorageKey(s.ns, key)
}
