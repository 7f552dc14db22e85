package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	assert.Equal(t, 10*time.Minute, Coalesce(time.Duration(0), 10*time.Minute))
	assert.Equal(t, time.Second, Coalesce(time.Second, 10*time.Minute))
	assert.Equal(t, "def", Coalesce("", "def"))
}

func TestStorageKey(t *testing.T) {
	assert.Equal(t, "v:prices:eur", StorageKey("prices", "eur"))
	assert.Equal(t, "v:a:b:c", StorageKey("a", "b:c"))
}
