package rules

// Outcome is the result of advancing the snake one cell.
type Outcome int

const (
	// OutcomeMoved means the head moved onto a free cell (or food).
	OutcomeMoved Outcome = iota
	// OutcomeWallCollision means the new head would be off the board.
	OutcomeWallCollision
	// OutcomeSelfCollision means the new head would land on the body.
	OutcomeSelfCollision
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMoved:
		return "moved"
	case OutcomeWallCollision:
		return DeathCauseWallCollision
	case OutcomeSelfCollision:
		return DeathCauseSnakeSelfCollision
	}
	return "unknown"
}

// Terminal reports whether the outcome ends the run.
func (o Outcome) Terminal() bool {
	return o == OutcomeWallCollision || o == OutcomeSelfCollision
}

// AdvanceResult bundles an outcome with whether food was eaten.
type AdvanceResult struct {
	Outcome Outcome
	AteFood bool
}

// Snake is the ordered list of occupied cells, Body[0] is the head.
type Snake struct {
	Body []Point
}

// NewSnake copies body into a new snake.
func NewSnake(body ...Point) *Snake {
	return &Snake{Body: append([]Point(nil), body...)}
}

// Head returns the first point in the body
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Tail returns the last point in the body
func (s *Snake) Tail() Point {
	return s.Body[len(s.Body)-1]
}

// Len is the number of cells the snake occupies.
func (s *Snake) Len() int {
	return len(s.Body)
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p Point) bool {
	for _, b := range s.Body {
		if b.Equal(p) {
			return true
		}
	}
	return false
}

// Advance moves the snake one cell in heading h. Collisions leave the body
// untouched. The self collision check runs against the body before the
// tail is dropped, so moving into the current tail cell is a collision.
func (s *Snake) Advance(grid Grid, h Heading, food *Point) AdvanceResult {
	head := s.Head().Add(h)
	if !grid.InBounds(head) {
		return AdvanceResult{Outcome: OutcomeWallCollision}
	}
	if s.Occupies(head) {
		return AdvanceResult{Outcome: OutcomeSelfCollision}
	}

	s.Body = append([]Point{head}, s.Body...)
	if food != nil && head.Equal(*food) {
		return AdvanceResult{Outcome: OutcomeMoved, AteFood: true}
	}
	s.Body = s.Body[:len(s.Body)-1]
	return AdvanceResult{Outcome: OutcomeMoved}
}

// Clone returns a deep copy.
func (s *Snake) Clone() *Snake {
	return NewSnake(s.Body...)
}
