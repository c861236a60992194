package filestore

import (
	"context"
	"io/ioutil"
	"os"
	"os/user"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/battlesnakeio/arcade/scores"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func defaultDir() string {
	return path.Join(homeDir(), ".battlesnake/scores")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a file based store implementation (1 file per key,
// holding the score as decimal text).
func NewFileStore(directory string) scores.Store {
	if directory == "" {
		directory = defaultDir()
	}
	return &fileStore{directory: directory}
}

type fileStore struct {
	lock      sync.Mutex
	directory string
}

func (fs *fileStore) path(key string) string {
	return filepath.Join(fs.directory, filepath.Base(key))
}

func (fs *fileStore) read(key string) (int, error) {
	data, err := ioutil.ReadFile(fs.path(key))
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrapf(err, "unable to read high score %s", key)
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, errors.Wrapf(err, "corrupt high score file %s", fs.path(key))
	}
	return score, nil
}

func (fs *fileStore) HighScore(ctx context.Context, key string) (int, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	return fs.read(key)
}

func (fs *fileStore) SaveHighScore(ctx context.Context, key string, score int) (int, error) {
	if score < 0 {
		return 0, scores.ErrNegativeScore
	}

	fs.lock.Lock()
	defer fs.lock.Unlock()

	cur, err := fs.read(key)
	if err != nil {
		return 0, err
	}
	if score <= cur {
		return cur, nil
	}

	if err := os.MkdirAll(fs.directory, 0775); err != nil {
		return 0, errors.Wrap(err, "unable to create score directory")
	}

	// Write to a temp file and rename so a crash never leaves a half
	// written score behind.
	tmp, err := ioutil.TempFile(fs.directory, ".score-")
	if err != nil {
		return 0, errors.Wrap(err, "unable to create temp file")
	}
	defer func() {
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			log.WithError(rmErr).Warn("unable to remove temp score file")
		}
	}()

	if _, err := tmp.WriteString(strconv.Itoa(score) + "\n"); err != nil {
		tmp.Close()
		return 0, errors.Wrap(err, "unable to write high score")
	}
	if err := tmp.Close(); err != nil {
		return 0, errors.Wrap(err, "unable to write high score")
	}
	if err := os.Rename(tmp.Name(), fs.path(key)); err != nil {
		return 0, errors.Wrap(err, "unable to replace high score file")
	}
	return score, nil
}
