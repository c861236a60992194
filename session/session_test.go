package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/scores"
	"github.com/stretchr/testify/require"
)

// manualClock hands out tickers that share one channel the test writes to.
type manualClock struct {
	mu      sync.Mutex
	ch      chan time.Time
	tickers []*manualTicker
}

func newManualClock() *manualClock {
	return &manualClock{ch: make(chan time.Time)}
}

func (c *manualClock) NewTicker(time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTicker{ch: c.ch}
	c.tickers = append(c.tickers, t)
	return t
}

func (c *manualClock) created() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

func (c *manualClock) stopped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.tickers {
		if t.isStopped() {
			n++
		}
	}
	return n
}

type manualTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	stopped bool
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (t *manualTicker) isStopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// thenZero returns the given values in order, then zero forever.
type thenZero struct{ values []int }

func (r *thenZero) Intn(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v % n
}

type harness struct {
	t      *testing.T
	clock  *manualClock
	sess   *Session
	frames chan rules.Snapshot
	cancel context.CancelFunc
	done   chan error
}

func newHarness(t *testing.T, store scores.Store, foodRand ...int) *harness {
	h := &harness{
		t:      t,
		clock:  newManualClock(),
		frames: make(chan rules.Snapshot, 64),
		done:   make(chan error, 1),
	}
	sess, err := New(context.Background(), Config{
		Size:    20,
		Clock:   h.clock,
		Store:   store,
		Spawner: rules.NewFoodSpawner(&thenZero{values: foodRand}),
		Renderers: []Renderer{RendererFunc(func(s rules.Snapshot) error {
			h.frames <- s
			return nil
		})},
	})
	require.NoError(t, err)
	h.sess = sess

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.done <- sess.Run(ctx) }()
	return h
}

func (h *harness) next() rules.Snapshot {
	select {
	case s := <-h.frames:
		return s
	case <-time.After(time.Second):
		require.FailNow(h.t, "no snapshot rendered")
	}
	return rules.Snapshot{}
}

func (h *harness) tick() rules.Snapshot {
	select {
	case h.clock.ch <- time.Now():
	case <-time.After(time.Second):
		require.FailNow(h.t, "session did not accept tick")
	}
	return h.next()
}

func (h *harness) stop() {
	h.cancel()
	select {
	case err := <-h.done:
		require.Equal(h.t, context.Canceled, err)
	case <-time.After(time.Second):
		require.FailNow(h.t, "session did not stop")
	}
}

func TestSessionStartsImmediately(t *testing.T) {
	store := scores.InMemStore()
	_, err := store.SaveHighScore(context.Background(), scores.DefaultKey, 30)
	require.NoError(t, err)

	h := newHarness(t, store)
	defer h.stop()

	snap := h.next()
	require.Equal(t, rules.RunStateRunning, snap.State)
	require.Equal(t, 30, snap.HighScore)
	require.Equal(t, rules.Point{X: 10, Y: 10}, snap.Snake[0])
}

func TestSessionAppliesIntentBeforeTick(t *testing.T) {
	h := newHarness(t, scores.InMemStore())
	defer h.stop()
	h.next()

	h.sess.Submit(input.Direction(rules.HeadingDown))
	h.sess.Submit(input.Direction(rules.HeadingUp))
	snap := h.tick()
	require.Equal(t, rules.HeadingUp, snap.Heading)
	require.Equal(t, rules.Point{X: 10, Y: 9}, snap.Snake[0])
}

func TestSessionStopsTickerOnGameOverAndRestarts(t *testing.T) {
	h := newHarness(t, scores.InMemStore())
	defer h.stop()
	h.next()

	// Heading right from x=10 the snake leaves the board on the 10th tick.
	var snap rules.Snapshot
	for i := 0; i < 10; i++ {
		snap = h.tick()
	}
	require.Equal(t, rules.RunStateGameOver, snap.State)
	require.Equal(t, rules.DeathCauseWallCollision, snap.Cause)
	require.Equal(t, 1, h.clock.stopped())

	// Turning does nothing once the game is over.
	h.sess.Submit(input.Direction(rules.HeadingUp))
	h.sess.Submit(input.Restart())
	snap = h.next()
	require.Equal(t, rules.RunStateRunning, snap.State)
	require.Equal(t, 0, snap.Score)
	require.Equal(t, rules.HeadingRight, snap.Heading)
	require.Equal(t, 2, h.clock.created())

	snap = h.tick()
	require.Equal(t, rules.Point{X: 11, Y: 10}, snap.Snake[0])
}

func TestSessionSwipeRestartsFinishedGame(t *testing.T) {
	h := newHarness(t, scores.InMemStore())
	defer h.stop()
	h.next()

	for i := 0; i < 10; i++ {
		h.tick()
	}

	swipe, ok := input.ClassifySwipe(-80, 5, input.DefaultSwipeThreshold)
	require.True(t, ok)
	h.sess.Submit(swipe)
	snap := h.next()
	require.Equal(t, rules.RunStateRunning, snap.State)
	require.Equal(t, rules.HeadingRight, snap.Heading)
}

func TestSessionRestartIgnoredWhileRunning(t *testing.T) {
	h := newHarness(t, scores.InMemStore())
	defer h.stop()
	h.next()

	h.sess.Submit(input.Restart())
	snap := h.tick()
	require.Equal(t, 1, snap.Turn)
	require.Equal(t, 1, h.clock.created())
}

func TestSessionPersistsHighScore(t *testing.T) {
	store := scores.InMemStore()
	// First food lands right in front of the snake.
	h := newHarness(t, store, 11, 10)
	defer h.stop()
	h.next()

	snap := h.tick()
	require.Equal(t, 10, snap.Score)
	require.Equal(t, 10, snap.HighScore)
	require.Len(t, snap.Snake, 4)

	stored, err := store.HighScore(context.Background(), scores.DefaultKey)
	require.NoError(t, err)
	require.Equal(t, 10, stored)
}

type brokenStore struct{}

func (brokenStore) HighScore(context.Context, string) (int, error) {
	return 0, errors.New("store offline")
}

func (brokenStore) SaveHighScore(context.Context, string, int) (int, error) {
	return 0, errors.New("store offline")
}

func TestSessionSurvivesBrokenStore(t *testing.T) {
	h := newHarness(t, brokenStore{}, 11, 10)
	defer h.stop()

	snap := h.next()
	require.Equal(t, 0, snap.HighScore)

	snap = h.tick()
	require.Equal(t, 10, snap.HighScore)
	require.Equal(t, rules.RunStateRunning, snap.State)
}

func TestNewRejectsBadGrid(t *testing.T) {
	_, err := New(context.Background(), Config{Size: 2})
	require.Error(t, err)
}
