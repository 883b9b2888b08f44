// ABOUTME: Tests for the badger-backed settings store.
// ABOUTME: Verifies defaults, persistence across reopen, and install ID stability.

package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, dir string) *Store {
	t.Helper()
	store, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestDefaults(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	useMetric, err := store.UseMetric()
	require.NoError(t, err)
	assert.True(t, useMetric, "fresh install should default to metric")

	darkMode, err := store.DarkMode()
	require.NoError(t, err)
	assert.True(t, darkMode, "fresh install should default to dark mode")
}

func TestSetAndGet(t *testing.T) {
	store := openTestStore(t, t.TempDir())

	require.NoError(t, store.SetUseMetric(false))
	useMetric, err := store.UseMetric()
	require.NoError(t, err)
	assert.False(t, useMetric)

	require.NoError(t, store.SetDarkMode(false))
	darkMode, err := store.DarkMode()
	require.NoError(t, err)
	assert.False(t, darkMode)
}

func TestSettingsPersistAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, store.SetUseMetric(false))
	require.NoError(t, store.Close())

	store = openTestStore(t, dir)
	useMetric, err := store.UseMetric()
	require.NoError(t, err)
	assert.False(t, useMetric, "preference should survive reopen")
}

func TestInstallIDStable(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir)
	require.NoError(t, err)

	first, err := store.InstallID()
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := store.InstallID()
	require.NoError(t, err)
	assert.Equal(t, first, second, "install ID should not change between calls")

	require.NoError(t, store.Close())

	// Survives reopen too
	store = openTestStore(t, dir)
	third, err := store.InstallID()
	require.NoError(t, err)
	assert.Equal(t, first, third, "install ID should survive reopen")
}
