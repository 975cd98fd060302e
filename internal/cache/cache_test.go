package cache

import (
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_HitWithinTTL(t *testing.T) {
	c := New()
	c.Set("branches", []string{"main"}, time.Minute)

	got, ok := Get[[]string](c, "branches")
	require.True(t, ok)
	assert.Equal(t, []string{"main"}, got)
}

func TestCache_MissingKey(t *testing.T) {
	c := New()

	_, ok := Get[string](c, "nope")
	assert.False(t, ok)
}

func TestCache_ExpiresAfterTTL(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := New()
		c.Set("status", "clean", 2*time.Second)

		_, ok := Get[string](c, "status")
		require.True(t, ok)

		time.Sleep(3 * time.Second)

		_, ok = Get[string](c, "status")
		assert.False(t, ok)
	})
}

func TestCache_IndependentTTLs(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := New()
		c.Set("status", "clean", time.Second)
		c.Set("branch-graph", "graph", 10*time.Second)

		time.Sleep(2 * time.Second)

		_, ok := Get[string](c, "status")
		assert.False(t, ok)

		got, ok := Get[string](c, "branch-graph")
		require.True(t, ok)
		assert.Equal(t, "graph", got)
	})
}

func TestCache_ZeroTTLNeverCaches(t *testing.T) {
	c := New()
	c.Set("status", "clean", 0)

	_, ok := Get[string](c, "status")
	assert.False(t, ok)
}

func TestCache_SetReplacesValueAndDeadline(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		c := New()
		c.Set("status", "old", time.Second)

		time.Sleep(900 * time.Millisecond)
		c.Set("status", "new", time.Second)
		time.Sleep(500 * time.Millisecond)

		got, ok := Get[string](c, "status")
		require.True(t, ok)
		assert.Equal(t, "new", got)
	})
}

func TestCache_WrongTypeIsAMiss(t *testing.T) {
	c := New()
	c.Set("branches", []string{"main"}, time.Minute)

	_, ok := Get[int](c, "branches")
	assert.False(t, ok)
}

func TestCache_InvalidateBySubstring(t *testing.T) {
	c := New()
	c.Set("branches", "a", time.Minute)
	c.Set("branch-graph", "b", time.Minute)
	c.Set("status", "c", time.Minute)

	c.Invalidate("branch")

	_, ok := Get[string](c, "branches")
	assert.False(t, ok)
	_, ok = Get[string](c, "branch-graph")
	assert.False(t, ok)

	got, ok := Get[string](c, "status")
	require.True(t, ok)
	assert.Equal(t, "c", got)
}

func TestCache_InvalidateAll(t *testing.T) {
	c := New()
	c.Set("branches", "a", time.Minute)
	c.Set("status", "b", time.Minute)

	c.Invalidate("")

	_, ok := Get[string](c, "branches")
	assert.False(t, ok)
	_, ok = Get[string](c, "status")
	assert.False(t, ok)
}
