// Package testsuite holds the behaviour every scores.Store has to share.
package testsuite

import (
	"context"
	"sync"
	"testing"

	"github.com/battlesnakeio/arcade/scores"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreEmpty(t *testing.T, s scores.Store) {
	key := uuid.NewV4().String()

	score, err := s.HighScore(context.Background(), key)
	require.NoError(t, err)
	require.Equal(t, 0, score)
}

func testStoreOnlyRaises(t *testing.T, s scores.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	stored, err := s.SaveHighScore(ctx, key, 30)
	require.NoError(t, err)
	require.Equal(t, 30, stored)

	// Lower score leaves the stored value alone.
	stored, err = s.SaveHighScore(ctx, key, 10)
	require.NoError(t, err)
	require.Equal(t, 30, stored)

	stored, err = s.SaveHighScore(ctx, key, 50)
	require.NoError(t, err)
	require.Equal(t, 50, stored)

	score, err := s.HighScore(ctx, key)
	require.NoError(t, err)
	require.Equal(t, 50, score)
}

func testStoreKeysAreSeparate(t *testing.T, s scores.Store) {
	a, b := uuid.NewV4().String(), uuid.NewV4().String()
	ctx := context.Background()

	_, err := s.SaveHighScore(ctx, a, 20)
	require.NoError(t, err)

	score, err := s.HighScore(ctx, b)
	require.NoError(t, err)
	require.Equal(t, 0, score)
}

func testStoreRejectsNegative(t *testing.T, s scores.Store) {
	_, err := s.SaveHighScore(context.Background(), uuid.NewV4().String(), -10)
	require.Error(t, err)
}

func testStoreConcurrentWriters(t *testing.T, s scores.Store) {
	key := uuid.NewV4().String()
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(20)
	for i := 1; i <= 20; i++ {
		go func(score int) {
			defer wg.Done()
			_, err := s.SaveHighScore(ctx, key, score*10)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	score, err := s.HighScore(ctx, key)
	require.NoError(t, err)
	require.Equal(t, 200, score)
}

// Suite will execute the store testsuite.
func Suite(t *testing.T, s scores.Store, pretest func()) {
	s = scores.InstrumentStore(s)
	t.Run("Empty", func(t *testing.T) { pretest(); testStoreEmpty(t, s) })
	t.Run("OnlyRaises", func(t *testing.T) { pretest(); testStoreOnlyRaises(t, s) })
	t.Run("KeysAreSeparate", func(t *testing.T) { pretest(); testStoreKeysAreSeparate(t, s) })
	t.Run("RejectsNegative", func(t *testing.T) { pretest(); testStoreRejectsNegative(t, s) })
	t.Run("ConcurrentWriters", func(t *testing.T) { pretest(); testStoreConcurrentWriters(t, s) })
}
