// Package promhooks counts store events in Prometheus.
//
//	h, err := promhooks.New(promhooks.Options{Registerer: prometheus.DefaultRegisterer})
//	s, _ := store.New(store.Options[int64]{..., Hooks: h})
package promhooks

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/unkn0wn-root/beconv/store"
)

type Options struct {
	Namespace string // metric namespace; "" => "beconv"
	// Registerer receives the collectors. nil => prometheus.DefaultRegisterer.
	Registerer prometheus.Registerer
}

type Hooks struct {
	selfHeals      *prometheus.CounterVec
	setRejected    prometheus.Counter
	providerErrors *prometheus.CounterVec
}

var _ store.Hooks = (*Hooks)(nil)

func New(opts Options) (*Hooks, error) {
	ns := opts.Namespace
	if ns == "" {
		ns = "beconv"
	}
	reg := opts.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	h := &Hooks{
		selfHeals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Subsystem: "store",
				Name:      "self_heals_total",
				Help:      "Entries deleted on read because they could not be decoded.",
			},
			[]string{"reason"},
		),
		setRejected: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: ns,
				Subsystem: "store",
				Name:      "provider_set_rejected_total",
				Help:      "Writes the provider refused under pressure.",
			},
		),
		providerErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Subsystem: "store",
				Name:      "provider_errors_total",
				Help:      "Provider failures by operation.",
			},
			[]string{"op"},
		),
	}
	for _, c := range []prometheus.Collector{h.selfHeals, h.setRejected, h.providerErrors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func (h *Hooks) SelfHeal(_, reason string)  { h.selfHeals.WithLabelValues(reason).Inc() }
func (h *Hooks) ProviderSetRejected(string) { h.setRejected.Inc() }
func (h *Hooks) ProviderError(op, _ string, _ error) {
	h.providerErrors.WithLabelValues(op).Inc()
}
