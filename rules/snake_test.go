package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var board = Grid{Size: 20}

func TestSnakeAdvanceMoves(t *testing.T) {
	s := NewSnake(Point{X: 1, Y: 1}, Point{X: 1, Y: 2}, Point{X: 1, Y: 3})
	res := s.Advance(board, HeadingUp, nil)
	require.Equal(t, AdvanceResult{Outcome: OutcomeMoved}, res)
	require.Equal(t, []Point{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}}, s.Body)
}

func TestSnakeAdvanceEats(t *testing.T) {
	s := NewSnake(Point{X: 1, Y: 1}, Point{X: 1, Y: 2}, Point{X: 1, Y: 3})
	food := Point{X: 2, Y: 1}
	res := s.Advance(board, HeadingRight, &food)
	require.True(t, res.AteFood)
	require.Equal(t, OutcomeMoved, res.Outcome)
	require.Len(t, s.Body, 4)
	require.Equal(t, food, s.Head())
	require.Equal(t, Point{X: 1, Y: 3}, s.Tail())
}

func TestSnakeAdvanceWallCollision(t *testing.T) {
	cases := []struct {
		head Point
		h    Heading
	}{
		{Point{X: 0, Y: 5}, HeadingLeft},
		{Point{X: 19, Y: 5}, HeadingRight},
		{Point{X: 5, Y: 0}, HeadingUp},
		{Point{X: 5, Y: 19}, HeadingDown},
	}
	for _, c := range cases {
		s := NewSnake(c.head)
		res := s.Advance(board, c.h, nil)
		require.Equal(t, OutcomeWallCollision, res.Outcome)
		require.Equal(t, []Point{c.head}, s.Body, "snake must not move on collision")
	}
}

func TestSnakeAdvanceSelfCollision(t *testing.T) {
	s := NewSnake(
		Point{X: 5, Y: 5},
		Point{X: 4, Y: 5},
		Point{X: 4, Y: 6},
		Point{X: 5, Y: 6},
		Point{X: 6, Y: 6},
	)
	res := s.Advance(board, HeadingDown, nil)
	require.Equal(t, OutcomeSelfCollision, res.Outcome)
	require.Len(t, s.Body, 5)
}

func TestSnakeAdvanceIntoNeck(t *testing.T) {
	s := NewSnake(Point{X: 5, Y: 5}, Point{X: 5, Y: 6}, Point{X: 5, Y: 7})
	res := s.Advance(board, HeadingDown, nil)
	require.Equal(t, OutcomeSelfCollision, res.Outcome)
}

func TestSnakeAdvanceIntoTailCollides(t *testing.T) {
	// The tail has not moved yet when the head lands on it.
	s := NewSnake(Point{X: 1, Y: 1}, Point{X: 2, Y: 1}, Point{X: 2, Y: 2}, Point{X: 1, Y: 2})
	res := s.Advance(board, HeadingDown, nil)
	require.Equal(t, OutcomeSelfCollision, res.Outcome)
}

func TestOutcomeTerminal(t *testing.T) {
	require.False(t, OutcomeMoved.Terminal())
	require.True(t, OutcomeWallCollision.Terminal())
	require.True(t, OutcomeSelfCollision.Terminal())
	require.Equal(t, DeathCauseWallCollision, OutcomeWallCollision.String())
}

func TestSnakeCloneIsIndependent(t *testing.T) {
	s := NewSnake(Point{X: 3, Y: 3}, Point{X: 2, Y: 3})
	c := s.Clone()
	c.Body[0] = Point{X: 9, Y: 9}
	c.Advance(board, HeadingDown, nil)

	require.Equal(t, []Point{{X: 3, Y: 3}, {X: 2, Y: 3}}, s.Body)
}
