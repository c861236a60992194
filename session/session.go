// Package session drives a game in real time. It owns the game in a single
// goroutine, feeding it ticks from a clock and intents from input sources,
// and hands a snapshot to every renderer after each change.
package session

import (
	"context"
	"time"

	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/scores"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

const (
	intentQueueSize = 16
	storeTimeout    = time.Second
)

// Renderer consumes snapshots. Render is called from the session goroutine
// and should not block for long.
type Renderer interface {
	Render(rules.Snapshot) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(rules.Snapshot) error

// Render calls f(snap).
func (f RendererFunc) Render(snap rules.Snapshot) error { return f(snap) }

// Config holds what a session needs to run.
type Config struct {
	Size      int
	Interval  time.Duration
	Clock     Clock
	Store     scores.Store
	ScoreKey  string
	Spawner   *rules.FoodSpawner
	Renderers []Renderer
}

// Session runs one game until its context is cancelled.
type Session struct {
	game      *rules.Game
	clock     Clock
	interval  time.Duration
	store     scores.Store
	key       string
	renderers []Renderer
	intents   chan input.Intent

	runID string
	log   *log.Entry
}

// New reads the high score once and builds an idle game around it. A store
// that can't be read is logged and the high score starts at zero; saving
// never lowers a stored score so nothing is lost.
func New(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.Interval <= 0 {
		cfg.Interval = 100 * time.Millisecond
	}
	if cfg.Clock == nil {
		cfg.Clock = WallClock()
	}
	if cfg.Store == nil {
		cfg.Store = scores.InMemStore()
	}
	if cfg.ScoreKey == "" {
		cfg.ScoreKey = scores.DefaultKey
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	best, err := cfg.Store.HighScore(ctx, cfg.ScoreKey)
	if err != nil {
		log.WithError(err).WithField("key", cfg.ScoreKey).
			Warn("unable to read high score, starting from zero")
		best = 0
	}
	highScore.Set(float64(best))

	game, err := rules.NewGame(rules.GameConfig{
		Size:      cfg.Size,
		HighScore: best,
		Spawner:   cfg.Spawner,
	})
	if err != nil {
		return nil, err
	}

	return &Session{
		game:      game,
		clock:     cfg.Clock,
		interval:  cfg.Interval,
		store:     cfg.Store,
		key:       cfg.ScoreKey,
		renderers: cfg.Renderers,
		intents:   make(chan input.Intent, intentQueueSize),
		log:       log.NewEntry(log.StandardLogger()),
	}, nil
}

// AddRenderer registers r. It must be called before Run.
func (s *Session) AddRenderer(r Renderer) {
	s.renderers = append(s.renderers, r)
}

// Submit queues an intent for the session goroutine. It never blocks; when
// the queue is full the intent is dropped.
func (s *Session) Submit(in input.Intent) {
	select {
	case s.intents <- in:
	default:
		intentsDropped.Inc()
		log.WithField("intent", in.String()).Debug("input queue full, dropping intent")
	}
}

// Run starts the game and processes ticks and intents until ctx is done.
// The ticker is stopped while the game is over and started again on
// restart.
func (s *Session) Run(ctx context.Context) error {
	s.restart()

	ticker := s.clock.NewTicker(s.interval)
	ticks := ticker.C()
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("session stopped")
			return ctx.Err()

		case in := <-s.intents:
			if s.handle(in) && ticker == nil {
				ticker = s.clock.NewTicker(s.interval)
				ticks = ticker.C()
			}

		case <-ticks:
			// Input that arrived before this tick applies to it.
			s.drain()
			s.tick(ctx)
			if s.game.State() == rules.RunStateGameOver {
				ticker.Stop()
				ticker, ticks = nil, nil
			}
		}
	}
}

func (s *Session) drain() {
	for {
		select {
		case in := <-s.intents:
			s.handle(in)
		default:
			return
		}
	}
}

// handle applies a single intent and reports whether it started a new run.
func (s *Session) handle(in input.Intent) bool {
	state := s.game.State()
	switch {
	case in.Kind == input.KindRestart && state != rules.RunStateRunning,
		in.Kind == input.KindDirection && in.Gesture && state == rules.RunStateGameOver:
		s.restart()
		return true
	case in.Kind == input.KindDirection:
		if !s.game.ProposeDirection(in.Heading) {
			s.log.WithField("intent", in.String()).Debug("direction ignored")
		}
	}
	return false
}

func (s *Session) restart() {
	s.runID = uuid.NewV4().String()
	s.log = log.WithField("run", s.runID)
	s.game.Restart()
	runsStarted.Inc()
	s.log.WithField("highScore", s.game.HighScore()).Info("run started")
	s.render()
}

func (s *Session) tick(ctx context.Context) {
	res := s.game.Tick()
	if !res.Applied {
		return
	}
	ticksProcessed.Inc()

	if res.AteFood {
		foodEaten.Inc()
	}
	if res.NewHighScore {
		s.saveHighScore(ctx, s.game.HighScore())
	}
	if res.Outcome.Terminal() {
		gamesOver.WithLabelValues(res.Outcome.String()).Inc()
		snap := s.game.Snapshot()
		s.log.WithFields(log.Fields{
			"turn":  snap.Turn,
			"score": snap.Score,
			"cause": snap.Cause,
		}).Info("game over")
	}
	s.render()
}

func (s *Session) saveHighScore(ctx context.Context, score int) {
	highScore.Set(float64(score))

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	if _, err := s.store.SaveHighScore(ctx, s.key, score); err != nil {
		s.log.WithError(err).WithField("score", score).Error("unable to save high score")
	}
}

func (s *Session) render() {
	snap := s.game.Snapshot()
	for _, r := range s.renderers {
		if err := r.Render(snap); err != nil {
			s.log.WithError(err).Warn("render failed")
		}
	}
}
