package asynchook

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingHooks struct {
	mu      sync.Mutex
	heals   int
	rejects int
	errs    int
	block   chan struct{}
}

func (c *countingHooks) wait() {
	if c.block != nil {
		<-c.block
	}
}

func (c *countingHooks) SelfHeal(string, string) {
	c.wait()
	c.mu.Lock()
	c.heals++
	c.mu.Unlock()
}

func (c *countingHooks) ProviderSetRejected(string) {
	c.wait()
	c.mu.Lock()
	c.rejects++
	c.mu.Unlock()
}

func (c *countingHooks) ProviderError(string, string, error) {
	c.wait()
	c.mu.Lock()
	c.errs++
	c.mu.Unlock()
}

func TestCloseDrainsQueue(t *testing.T) {
	inner := &countingHooks{}
	h := New(inner, 2, 64)
	for i := 0; i < 10; i++ {
		h.SelfHeal("k", "corrupt")
	}
	h.ProviderSetRejected("k")
	h.ProviderError("get", "k", errors.New("down"))
	h.Close()

	assert.Equal(t, 10, inner.heals)
	assert.Equal(t, 1, inner.rejects)
	assert.Equal(t, 1, inner.errs)
	assert.Zero(t, h.Dropped())
}

func TestDropsWhenFull(t *testing.T) {
	inner := &countingHooks{block: make(chan struct{})}
	h := New(inner, 1, 1)
	// one event may be held by the worker and one by the queue; the rest drop
	for i := 0; i < 10; i++ {
		h.SelfHeal("k", "corrupt")
	}
	close(inner.block)
	h.Close()

	assert.GreaterOrEqual(t, h.Dropped(), uint64(8))
	assert.Equal(t, uint64(10), h.Dropped()+uint64(inner.heals))
}

func TestSendAfterCloseIsDropped(t *testing.T) {
	h := New(nil, 0, 0)
	h.Close()
	h.Close()
	assert.NotPanics(t, func() { h.SelfHeal("k", "corrupt") })
	assert.Equal(t, uint64(1), h.Dropped())
}
