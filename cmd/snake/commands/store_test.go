package commands

import (
	"context"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withBackend(t *testing.T, name, args string) func() {
	oldBackend, oldArgs := backend, backendArgs
	backend, backendArgs = name, args
	return func() { backend, backendArgs = oldBackend, oldArgs }
}

func TestOpenStoreInMem(t *testing.T) {
	defer withBackend(t, "inmem", "")()

	store, closeStore, err := openStore()
	require.NoError(t, err)
	defer closeStore()

	best, err := store.SaveHighScore(context.Background(), scoreKey, 40)
	require.NoError(t, err)
	assert.Equal(t, 40, best)
}

func TestOpenStoreFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "snake-scores")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	defer withBackend(t, "file", dir)()

	store, closeStore, err := openStore()
	require.NoError(t, err)
	defer closeStore()

	_, err = store.SaveHighScore(context.Background(), scoreKey, 30)
	require.NoError(t, err)
	best, err := store.HighScore(context.Background(), scoreKey)
	require.NoError(t, err)
	assert.Equal(t, 30, best)
}

func TestOpenStoreInvalidBackend(t *testing.T) {
	defer withBackend(t, "carrier-pigeon", "")()

	_, closeStore, err := openStore()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "carrier-pigeon")
	closeStore()
}

func TestSetupLoggingRejectsBadLevel(t *testing.T) {
	old := logLevel
	defer func() { logLevel = old }()

	logLevel = "loud"
	assert.Error(t, setupLogging())
	logLevel = "debug"
	assert.NoError(t, setupLogging())
}
