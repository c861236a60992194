package filestore

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/battlesnakeio/arcade/scores"
	"github.com/battlesnakeio/arcade/scores/testsuite"
	"github.com/stretchr/testify/require"
)

func tempDir(t *testing.T) string {
	dir, err := ioutil.TempDir("", "snake-scores")
	require.NoError(t, err)
	return dir
}

func TestFileStore(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	testsuite.Suite(t, NewFileStore(dir), func() {})
}

func TestFileStoreWritesPlainText(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	s := NewFileStore(dir)
	_, err := s.SaveHighScore(context.Background(), scores.DefaultKey, 120)
	require.NoError(t, err)

	data, err := ioutil.ReadFile(filepath.Join(dir, scores.DefaultKey))
	require.NoError(t, err)
	require.Equal(t, "120\n", string(data))

	// No temp files left behind.
	files, err := ioutil.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	_, err := NewFileStore(dir).SaveHighScore(context.Background(), scores.DefaultKey, 40)
	require.NoError(t, err)

	score, err := NewFileStore(dir).HighScore(context.Background(), scores.DefaultKey)
	require.NoError(t, err)
	require.Equal(t, 40, score)
}

func TestFileStoreCorruptFile(t *testing.T) {
	dir := tempDir(t)
	defer os.RemoveAll(dir)

	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, "broken"), []byte("lots"), 0644))
	_, err := NewFileStore(dir).HighScore(context.Background(), "broken")
	require.Error(t, err)
}
