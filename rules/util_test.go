package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// seqRand replays a fixed sequence of values, wrapping around.
type seqRand struct {
	values []int
	i      int
}

func (s *seqRand) Intn(n int) int {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.i%len(s.values)]
	s.i++
	return v % n
}

func newTestGame(t *testing.T, size int, body []Point, h Heading, food *Point) *Game {
	g, err := NewGame(GameConfig{Size: size, Spawner: NewFoodSpawner(&seqRand{})})
	require.NoError(t, err)
	g.Start()
	g.snake = NewSnake(body...)
	g.buffer.Reset(h)
	g.food = food
	return g
}
