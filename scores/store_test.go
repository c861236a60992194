package scores_test

import (
	"context"
	"testing"

	"github.com/battlesnakeio/arcade/scores"
	"github.com/battlesnakeio/arcade/scores/testsuite"
	"github.com/stretchr/testify/require"
)

func TestInMemStore(t *testing.T) {
	testsuite.Suite(t, scores.InMemStore(), func() {})
}

type failingStore struct{ err error }

func (f failingStore) HighScore(context.Context, string) (int, error) { return 0, f.err }
func (f failingStore) SaveHighScore(context.Context, string, int) (int, error) {
	return 0, f.err
}

func TestInstrumentStorePassesErrors(t *testing.T) {
	s := scores.InstrumentStore(failingStore{err: scores.ErrNegativeScore})
	_, err := s.HighScore(context.Background(), scores.DefaultKey)
	require.Equal(t, scores.ErrNegativeScore, err)
	_, err = s.SaveHighScore(context.Background(), scores.DefaultKey, 10)
	require.Equal(t, scores.ErrNegativeScore, err)
}
