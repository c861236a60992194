package rules

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

const (
	// DefaultGridSize is the side length of the board.
	DefaultGridSize = 20
	// MinGridSize is the smallest board that fits the starting snake.
	MinGridSize = 4
	// FoodReward is the score added for each food eaten.
	FoodReward = 10
	// StartLength is the length of the snake at the start of every run.
	StartLength = 3
	// StartHeading is the heading at the start of every run.
	StartHeading = HeadingRight
)

// GameConfig holds the fixed settings of a game.
type GameConfig struct {
	Size      int
	Reward    int
	HighScore int
	Spawner   *FoodSpawner
}

// Snapshot is a read only copy of the game state handed to renderers.
type Snapshot struct {
	Turn      int      `json:"turn"`
	State     RunState `json:"state"`
	Size      int      `json:"size"`
	Snake     []Point  `json:"snake"`
	Food      *Point   `json:"food"`
	Heading   Heading  `json:"heading"`
	Score     int      `json:"score"`
	HighScore int      `json:"highScore"`
	Cause     string   `json:"cause,omitempty"`
}

// TickResult describes what a single tick did.
type TickResult struct {
	// Applied is false when the game was not running and nothing changed.
	Applied      bool
	Outcome      Outcome
	AteFood      bool
	NewHighScore bool
}

// Game is the state machine for a single player game. It is not safe for
// concurrent use, callers serialise ticks and input.
type Game struct {
	grid    Grid
	reward  int
	spawner *FoodSpawner

	state     RunState
	turn      int
	snake     *Snake
	food      *Point
	buffer    *DirectionBuffer
	score     int
	highScore int
	cause     string
}

// NewGame creates an idle game. Zero values in cfg fall back to the
// defaults.
func NewGame(cfg GameConfig) (*Game, error) {
	if cfg.Size == 0 {
		cfg.Size = DefaultGridSize
	}
	if cfg.Size < MinGridSize {
		return nil, fmt.Errorf("rules: grid size %d is below the minimum of %d", cfg.Size, MinGridSize)
	}
	if cfg.Reward == 0 {
		cfg.Reward = FoodReward
	}
	if cfg.HighScore < 0 {
		return nil, fmt.Errorf("rules: negative high score %d", cfg.HighScore)
	}
	if cfg.Spawner == nil {
		cfg.Spawner = NewFoodSpawner(nil)
	}
	return &Game{
		grid:      Grid{Size: cfg.Size},
		reward:    cfg.Reward,
		spawner:   cfg.Spawner,
		state:     RunStateIdle,
		buffer:    NewDirectionBuffer(StartHeading),
		highScore: cfg.HighScore,
	}, nil
}

// Grid returns the board the game is played on.
func (g *Game) Grid() Grid { return g.grid }

// State returns the current lifecycle state.
func (g *Game) State() RunState { return g.state }

// Score returns the current run's score.
func (g *Game) Score() int { return g.score }

// HighScore returns the best score seen, including the current run.
func (g *Game) HighScore() int { return g.highScore }

// Start begins the first run. It behaves exactly like Restart.
func (g *Game) Start() { g.Restart() }

// Restart throws away the current run and starts a fresh one. The high
// score is kept.
func (g *Game) Restart() {
	c := g.grid.Center()
	body := make([]Point, StartLength)
	for i := range body {
		body[i] = Point{X: c.X - i, Y: c.Y}
	}
	g.snake = NewSnake(body...)
	g.buffer.Reset(StartHeading)
	g.score = 0
	g.turn = 0
	g.cause = ""
	g.state = RunStateRunning
	g.respawnFood()
}

// ProposeDirection queues h for the next tick. Reversals of the committed
// heading, and any input outside a running game, are ignored.
func (g *Game) ProposeDirection(h Heading) bool {
	if g.state != RunStateRunning {
		return false
	}
	return g.buffer.Propose(h)
}

// Tick advances a running game by one step. Ticks delivered to an idle or
// finished game are no-ops.
func (g *Game) Tick() TickResult {
	if g.state != RunStateRunning {
		return TickResult{}
	}

	heading := g.buffer.Commit()
	res := g.snake.Advance(g.grid, heading, g.food)
	tr := TickResult{Applied: true, Outcome: res.Outcome, AteFood: res.AteFood}

	if res.Outcome.Terminal() {
		g.state = RunStateGameOver
		g.cause = res.Outcome.String()
		log.WithFields(log.Fields{
			"turn":  g.turn,
			"score": g.score,
			"cause": g.cause,
		}).Debug("game over")
		return tr
	}

	g.turn++
	if res.AteFood {
		g.score += g.reward
		if g.score > g.highScore {
			g.highScore = g.score
			tr.NewHighScore = true
		}
		log.WithFields(log.Fields{
			"turn":  g.turn,
			"food":  *g.food,
			"score": g.score,
		}).Debug("snake ate")
		g.respawnFood()
	}
	return tr
}

func (g *Game) respawnFood() {
	p, ok := g.spawner.Spawn(g.grid, g.snake)
	if !ok {
		g.food = nil
		return
	}
	g.food = &p
}

// Snapshot copies the visible state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Turn:      g.turn,
		State:     g.state,
		Size:      g.grid.Size,
		Heading:   g.buffer.Committed(),
		Score:     g.score,
		HighScore: g.highScore,
		Cause:     g.cause,
	}
	if g.snake != nil {
		s.Snake = g.snake.Clone().Body
	}
	if g.food != nil {
		f := *g.food
		s.Food = &f
	}
	return s
}
