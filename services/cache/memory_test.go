package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryService(t *testing.T) {
	m := NewMemoryService()

	// Set a value
	err := m.Set("test_key", []byte("test_value"), time.Minute)
	assert.NoError(t, err)

	// Get the value
	value, err := m.Get("test_key")
	assert.NoError(t, err)
	assert.Equal(t, "test_value", string(value))

	// Delete the value
	err = m.Delete("test_key")
	assert.NoError(t, err)

	_, err = m.Get("test_key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryServiceExpiry(t *testing.T) {
	m := NewMemoryService()

	err := m.Set("test_key", []byte("test_value"), time.Nanosecond)
	assert.NoError(t, err)

	time.Sleep(time.Millisecond)
	_, err = m.Get("test_key")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNewPicksMemoryWithoutAddr(t *testing.T) {
	_, ok := New("").(*MemoryService)
	assert.True(t, ok)

	_, ok = New("localhost:11211").(*MemcacheService)
	assert.True(t, ok)
}
