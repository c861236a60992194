package rules

// Rand is the source of randomness used for picking cells. *rand.Rand
// satisfies it, as does the package level source.
type Rand interface {
	Intn(n int) int
}

// Grid is the square board the snake lives on. Size is the side length N,
// valid coordinates are 0 <= x,y < N.
type Grid struct {
	Size int
}

// InBounds reports whether p lies on the board.
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Size && p.Y >= 0 && p.Y < g.Size
}

// RandomPoint returns a uniformly random cell on the board.
func (g Grid) RandomPoint(r Rand) Point {
	return Point{X: r.Intn(g.Size), Y: r.Intn(g.Size)}
}

// Cells is the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Size * g.Size
}

// Center is the cell the snake's head starts on.
func (g Grid) Center() Point {
	return Point{X: g.Size / 2, Y: g.Size / 2}
}
