package sloghooks

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRedactsKeysByDefault(t *testing.T) {
	var buf bytes.Buffer
	h := New(newLogger(&buf), Options{})
	h.ProviderError("set", "v:prices:sku-1", errors.New("timeout"))

	out := buf.String()
	assert.Contains(t, out, "beconv.provider_error")
	assert.Contains(t, out, "op=set")
	assert.NotContains(t, out, "sku-1")
}

func TestCustomRedactor(t *testing.T) {
	var buf bytes.Buffer
	h := New(newLogger(&buf), Options{Redact: strings.ToUpper})
	h.ProviderSetRejected("v:ns:k")
	assert.Contains(t, buf.String(), "V:NS:K")
}

func TestSelfHealSampling(t *testing.T) {
	var buf bytes.Buffer
	h := New(newLogger(&buf), Options{SelfHealEvery: 3})
	for i := 0; i < 9; i++ {
		h.SelfHeal("k", "corrupt")
	}
	assert.Equal(t, 3, strings.Count(buf.String(), "beconv.self_heal"))
}

func TestNilLogger(t *testing.T) {
	h := New(nil, Options{})
	assert.NotPanics(t, func() {
		h.SelfHeal("k", "corrupt")
		h.ProviderSetRejected("k")
		h.ProviderError("del", "k", errors.New("x"))
	})
}
