package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 9, 10, 0, 0, 0, time.UTC)
	m := NewMemory()
	m.now = func() time.Time { return now }

	_, ok := m.Get(ctx, "k")
	assert.False(t, ok)

	m.Set(ctx, "k", []byte("v"), time.Minute)
	got, ok := m.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	now = now.Add(time.Minute)
	_, ok = m.Get(ctx, "k")
	assert.False(t, ok)

	m.Set(ctx, "forever", []byte("x"), 0)
	now = now.Add(24 * time.Hour)
	_, ok = m.Get(ctx, "forever")
	assert.True(t, ok)

	m.Delete(ctx, "forever")
	_, ok = m.Get(ctx, "forever")
	assert.False(t, ok)
}
