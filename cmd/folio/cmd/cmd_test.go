package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iiroan/folio/internal/ambient"
	"github.com/iiroan/folio/internal/config"
	"github.com/iiroan/folio/internal/prefs"
	"github.com/iiroan/folio/internal/storage"
)

func writeTestConfig(t *testing.T, backend string) (cfgPath, storePath string) {
	t.Helper()
	dir := t.TempDir()
	storePath = filepath.Join(dir, "preferences."+backend)
	c := config.DefaultConfig()
	c.Storage.Backend = backend
	c.Storage.Path = storePath
	cfgPath = filepath.Join(dir, "folio.yaml")
	require.NoError(t, c.Save(cfgPath))
	return cfgPath, storePath
}

func runFolio(t *testing.T, args ...string) error {
	t.Helper()
	prefsJSON = false
	storageKind = ""
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestPrefsSet_PersistsAcrossRuns(t *testing.T) {
	t.Setenv(ambient.EnvScheme, "dark")
	for _, backend := range []string{storage.KindFile, storage.KindSQLite} {
		t.Run(backend, func(t *testing.T) {
			cfgPath, storePath := writeTestConfig(t, backend)

			require.NoError(t, runFolio(t, "--config", cfgPath, "prefs", "set", "appearance=light", "display=party"))
			require.NoError(t, runFolio(t, "--config", cfgPath, "prefs", "get"))

			assert.Equal(t, prefs.Preferences{Appearance: prefs.Light, Display: prefs.Party}, store.Preferences())
			assert.Equal(t, prefs.Tags{Appearance: prefs.Light, Display: prefs.Party}, prefs.ResolveTags(store.Get()))
			_, err := os.Stat(storePath)
			assert.NoError(t, err)
		})
	}
}

func TestPrefsSet_InvalidLeavesStoreUntouched(t *testing.T) {
	t.Setenv(ambient.EnvScheme, "dark")
	cfgPath, storePath := writeTestConfig(t, storage.KindFile)

	err := runFolio(t, "--config", cfgPath, "prefs", "set", "appearance=dark", "display=rave")
	require.Error(t, err)
	assert.ErrorIs(t, err, prefs.ErrInvalidValue)

	_, statErr := os.Stat(storePath)
	assert.True(t, os.IsNotExist(statErr))
	assert.Equal(t, prefs.DefaultPreferences(), store.Preferences())
}

func TestPrefsReset(t *testing.T) {
	t.Setenv(ambient.EnvScheme, "light")
	cfgPath, _ := writeTestConfig(t, storage.KindFile)

	require.NoError(t, runFolio(t, "--config", cfgPath, "theme", "dark"))
	require.NoError(t, runFolio(t, "--config", cfgPath, "mode", "party"))
	require.NoError(t, runFolio(t, "--config", cfgPath, "prefs", "reset"))
	require.NoError(t, runFolio(t, "--config", cfgPath, "prefs", "tags"))

	assert.Equal(t, prefs.DefaultPreferences(), store.Preferences())
	assert.Equal(t, prefs.Light, store.Get().Resolved)
}

func TestStorageFallsBackToMemory(t *testing.T) {
	t.Setenv(ambient.EnvScheme, "dark")
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	c := config.DefaultConfig()
	c.Storage.Backend = storage.KindFile
	c.Storage.Path = filepath.Join(blocker, "preferences.yaml")
	cfgPath := filepath.Join(dir, "folio.yaml")
	require.NoError(t, c.Save(cfgPath))

	require.NoError(t, runFolio(t, "--config", cfgPath, "theme", "dark"))
	assert.Equal(t, prefs.Dark, store.Preferences().Appearance)
}

func TestSettingsDraft(t *testing.T) {
	c := config.DefaultConfig()
	draft := newSettingsDraft(c)
	assert.Equal(t, storage.KindFile, draft.backend)
	assert.Equal(t, prefs.System, draft.defaultAppearance)

	draft.backend = storage.KindSQLite
	draft.defaultDisplay = prefs.Party
	draft.dense = true
	next, err := draft.apply(c)
	require.NoError(t, err)
	assert.Equal(t, storage.KindSQLite, next.Storage.Backend)
	assert.Equal(t, "party", next.Preferences.DefaultDisplay)
	assert.True(t, next.UI.Dense)
	assert.Equal(t, storage.KindFile, c.Storage.Backend, "original config is not modified")

	draft.displayKey = draft.appearanceKey
	_, err = draft.apply(c)
	assert.Error(t, err)
}
