package registry

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("users", 1)
	require.NoError(t, err)
	assert.True(t, isNew)

	value, exists := r.Get("users")
	assert.True(t, exists)
	assert.Equal(t, 1, value)

	_, exists = r.Get("missing")
	assert.False(t, exists)
}

func TestRegistry_RegisterOverwrite(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("col", "a")
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = r.Register("col", "b")
	require.NoError(t, err)
	assert.False(t, isNew)

	value, _ := r.Get("col")
	assert.Equal(t, "b", value)
}

func TestRegistry_RegisterEmptyName(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	require.Error(t, err)
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("col", 1)
	require.NoError(t, err)

	deleted, err := r.Clear("col", nil)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, exists := r.Get("col")
	assert.False(t, exists)

	deleted, err = r.Clear("col", nil)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistry_ClearCleanupError(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("col", 1)
	require.NoError(t, err)

	_, err = r.Clear("col", func(int) error { return errors.New("cleanup failed") })
	require.Error(t, err)

	// Cleanup thất bại thì item vẫn còn trong registry
	_, exists := r.Get("col")
	assert.True(t, exists)
}

func TestRegistry_ClearAll(t *testing.T) {
	r := NewRegistry[int]()
	for _, name := range []string{"a", "b", "c"} {
		_, err := r.Register(name, 1)
		require.NoError(t, err)
	}

	count, err := r.ClearAll(nil)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, exists := r.Get("a")
	assert.False(t, exists)
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_, _ = r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			_, _ = r.Get("shared")
		}()
	}
	wg.Wait()

	_, exists := r.Get("shared")
	assert.True(t, exists)
}
