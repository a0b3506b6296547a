package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/hackhub/pkg/api"
)

func TestDisplayCacheRoundTrip(t *testing.T) {
	cache, err := NewDisplayCache(16)
	require.NoError(t, err)

	themes := []api.Theme{{ID: "t-1", Name: "FinTech", Active: true}}
	cache.Put(DisplayKeyThemes, themes)

	var got []api.Theme
	assert.True(t, cache.Get(DisplayKeyThemes, &got))
	assert.Equal(t, themes, got)
}

func TestDisplayCacheMiss(t *testing.T) {
	cache, err := NewDisplayCache(16)
	require.NoError(t, err)

	var got []api.Theme
	assert.False(t, cache.Get(DisplayKeyThemes, &got))
}

func TestDisplayCacheInvalidate(t *testing.T) {
	cache, err := NewDisplayCache(16)
	require.NoError(t, err)
	cache.Put(DisplayKeyThemes, []api.Theme{{ID: "t-1"}})
	cache.Put(DisplayKeyProblems, []api.ProblemStatement{{ID: "p-1"}})

	cache.Invalidate(DisplayKeyThemes)

	var themes []api.Theme
	assert.False(t, cache.Get(DisplayKeyThemes, &themes))
	var problems []api.ProblemStatement
	assert.True(t, cache.Get(DisplayKeyProblems, &problems))
}

func TestDisplayCacheEvictsOldest(t *testing.T) {
	cache, err := NewDisplayCache(1)
	require.NoError(t, err)
	cache.Put("a", 1)
	cache.Put("b", 2)

	var v int
	assert.False(t, cache.Get("a", &v))
	assert.True(t, cache.Get("b", &v))
	assert.Equal(t, 2, v)
}
