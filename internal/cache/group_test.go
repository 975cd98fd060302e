package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroup_CachesResult(t *testing.T) {
	g := NewGroup(New())
	var calls atomic.Int32

	build := func() (string, error) {
		calls.Add(1)
		return "graph", nil
	}

	first, err := Do(g, "branch-graph", time.Minute, build)
	require.NoError(t, err)
	assert.Equal(t, "graph", first)

	second, err := Do(g, "branch-graph", time.Minute, build)
	require.NoError(t, err)
	assert.Equal(t, "graph", second)

	assert.Equal(t, int32(1), calls.Load())
}

func TestGroup_CoalescesConcurrentBuilds(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		g := NewGroup(New())
		var calls atomic.Int32

		build := func() (string, error) {
			calls.Add(1)
			time.Sleep(100 * time.Millisecond)
			return "graph", nil
		}

		var wg sync.WaitGroup
		for range 5 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := Do(g, "branch-graph", time.Minute, build)
				assert.NoError(t, err)
				assert.Equal(t, "graph", got)
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})
}

func TestGroup_ErrorsAreNotCached(t *testing.T) {
	g := NewGroup(New())
	var calls atomic.Int32

	_, err := Do(g, "branch-graph", time.Minute, func() (string, error) {
		calls.Add(1)
		return "", errors.New("repository busy")
	})
	require.Error(t, err)

	got, err := Do(g, "branch-graph", time.Minute, func() (string, error) {
		calls.Add(1)
		return "graph", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "graph", got)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGroup_ZeroTTLAlwaysRebuilds(t *testing.T) {
	g := NewGroup(New())
	var calls atomic.Int32

	build := func() (string, error) {
		calls.Add(1)
		return "graph", nil
	}

	for range 3 {
		_, err := Do(g, "branch-graph", 0, build)
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), calls.Load())
}

func TestGroup_InvalidateForcesRebuild(t *testing.T) {
	g := NewGroup(New())
	var calls atomic.Int32

	build := func() (string, error) {
		calls.Add(1)
		return "graph", nil
	}

	_, err := Do(g, "branch-graph", time.Minute, build)
	require.NoError(t, err)

	g.Invalidate("branch")

	_, err = Do(g, "branch-graph", time.Minute, build)
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
