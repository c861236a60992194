// Package scores persists the high score between runs. The game core only
// ever sees a plain integer, stores decide where it lives.
package scores

import (
	"context"
	"errors"
	"sync"
)

// DefaultKey is the key the high score is stored under.
const DefaultKey = "snakeHighScore"

var (
	// ErrNegativeScore is returned when saving a score below zero.
	ErrNegativeScore = errors.New("scores: negative score")
)

// Store is the interface to the backend store. A key that was never
// written reads as zero.
type Store interface {
	// HighScore returns the stored high score for key.
	HighScore(ctx context.Context, key string) (int, error)
	// SaveHighScore stores score if it beats the stored value and returns
	// the value held afterwards. It never lowers a stored score.
	SaveHighScore(ctx context.Context, key string, score int) (int, error)
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{scores: map[string]int{}}
}

type inmem struct {
	scores map[string]int
	lock   sync.Mutex
}

func (in *inmem) HighScore(ctx context.Context, key string) (int, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	return in.scores[key], nil
}

func (in *inmem) SaveHighScore(ctx context.Context, key string, score int) (int, error) {
	if score < 0 {
		return 0, ErrNegativeScore
	}

	in.lock.Lock()
	defer in.lock.Unlock()

	if score > in.scores[key] {
		in.scores[key] = score
	}
	return in.scores[key], nil
}
