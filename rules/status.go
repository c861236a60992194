package rules

// RunState is the lifecycle state of a game.
type RunState string

const (
	// RunStateIdle is the state before the first start.
	RunStateIdle RunState = "idle"
	// RunStateRunning is a game in progress, ticks move the snake.
	RunStateRunning RunState = "running"
	// RunStateGameOver is a game that ended in a collision. Only a restart
	// leaves it.
	RunStateGameOver RunState = "game-over"
)
