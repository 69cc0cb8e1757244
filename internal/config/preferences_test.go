package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenPreferencesCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	prefs, err := OpenPreferences(path)
	require.NoError(t, err)
	assert.Error(t, prefs.LoadIssue())
	assert.Equal(t, DefaultPreferences(), prefs.All())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestPreferencesPersistOnEveryChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")

	prefs, err := OpenPreferences(path)
	require.NoError(t, err)
	require.NoError(t, prefs.Set(PrefLastDirectory, `C:\lineups\2024`))
	require.NoError(t, prefs.Set("theme", "dark"))

	reopened, err := OpenPreferences(path)
	require.NoError(t, err)
	assert.NoError(t, reopened.LoadIssue())
	v, ok := reopened.Get(PrefLastDirectory)
	require.True(t, ok)
	assert.Equal(t, `C:\lineups\2024`, v)
	assert.Equal(t, []string{PrefAudienceSource, PrefLastDirectory, "theme"}, reopened.Keys())

	require.NoError(t, reopened.Delete("theme"))
	require.NoError(t, reopened.Delete("never-set"))

	again, err := OpenPreferences(path)
	require.NoError(t, err)
	_, ok = again.Get("theme")
	assert.False(t, ok)
}

func TestPreferencesRecoverFromBadFile(t *testing.T) {
	for name, content := range map[string]string{
		"empty":   "  \n",
		"corrupt": "{not: [yaml",
		"null":    "~\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "preferences.yaml")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			prefs, err := OpenPreferences(path)
			require.NoError(t, err)
			assert.Error(t, prefs.LoadIssue())
			assert.Equal(t, DefaultPreferences(), prefs.All())
			require.NoError(t, prefs.Set(PrefLastDirectory, "/data"))

			reopened, err := OpenPreferences(path)
			require.NoError(t, err)
			assert.NoError(t, reopened.LoadIssue())
		})
	}
}

func TestPreferencesRejectEmptyKey(t *testing.T) {
	prefs, err := OpenPreferences(filepath.Join(t.TempDir(), "preferences.yaml"))
	require.NoError(t, err)
	assert.Error(t, prefs.Set("  ", "x"))
}
