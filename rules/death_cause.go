package rules

const (
	// DeathCauseWallCollision is when the snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when the snake's head runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
)
