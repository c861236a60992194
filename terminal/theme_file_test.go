package terminal

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tempThemeFile(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "snake-theme")
	require.NoError(t, err)
	return filepath.Join(dir, "prefs", "theme"), func() { os.RemoveAll(dir) }
}

func TestThemeRemembered(t *testing.T) {
	path, cleanup := tempThemeFile(t)
	defer cleanup()

	require.Equal(t, DefaultTheme, LoadTheme(path))
	require.NoError(t, SaveTheme(path, "neon"))
	require.Equal(t, "neon", LoadTheme(path))
}

func TestSaveThemeRejectsUnknown(t *testing.T) {
	path, cleanup := tempThemeFile(t)
	defer cleanup()

	require.Error(t, SaveTheme(path, "plaid"))
	require.Equal(t, DefaultTheme, LoadTheme(path))
}

func TestLoadThemeIgnoresGarbage(t *testing.T) {
	path, cleanup := tempThemeFile(t)
	defer cleanup()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, ioutil.WriteFile(path, []byte("plaid\n"), 0644))
	require.Equal(t, DefaultTheme, LoadTheme(path))
}
