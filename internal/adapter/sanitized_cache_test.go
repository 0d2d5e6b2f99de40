package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/subsume/internal/model"
)

func TestSanitizedCache_EntryPath(t *testing.T) {
	cache := NewSanitizedCache("cache")

	entry := cache.EntryPath("data/kills.csv", "0123456789abcdef0123")

	assert.Equal(t, m.Path(filepath.Join("cache", "kills.csv_0123456789ab_sanitized.gob")), entry)
	assert.Equal(t, m.Path(filepath.Join("cache", "kills.csv_abc_sanitized.gob")), cache.EntryPath("kills.csv", "abc"))
}

func TestSanitizedCache_StoreAndLoad(t *testing.T) {
	cache := NewSanitizedCache(m.Path(filepath.Join(t.TempDir(), "cache")))
	rows := [][]string{{"mutant", "test"}, {"m1", "t1"}, {"m2", "0"}}

	require.NoError(t, cache.Store("kills.csv", "feedface", rows))

	got, ok, err := cache.Load("kills.csv", "feedface")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, rows, got)
}

func TestSanitizedCache_MissOnOtherHash(t *testing.T) {
	cache := NewSanitizedCache(m.Path(t.TempDir()))

	require.NoError(t, cache.Store("kills.csv", "aaaa", [][]string{{"h"}}))

	got, ok, err := cache.Load("kills.csv", "bbbb")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestSanitizedCache_CorruptEntry(t *testing.T) {
	dir := t.TempDir()
	cache := NewSanitizedCache(m.Path(dir))

	entry := cache.EntryPath("kills.csv", "aaaa")
	require.NoError(t, os.WriteFile(string(entry), []byte("garbage"), 0o600))

	_, ok, err := cache.Load("kills.csv", "aaaa")
	require.Error(t, err)
	assert.False(t, ok)
}
