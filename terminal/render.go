// Package terminal plays the game in a terminal using termbox.
package terminal

import (
	"fmt"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	// cellWidth is the number of terminal columns per board cell, which
	// keeps the board roughly square.
	cellWidth = 2
	left      = 2
	top       = 2
)

// Renderer draws snapshots with termbox.
type Renderer struct {
	Theme Theme
}

// NewRenderer returns a renderer for the named theme, falling back to the
// default theme for unknown names.
func NewRenderer(theme string) *Renderer {
	t, ok := ThemeByName(theme)
	if !ok {
		t, _ = ThemeByName(DefaultTheme)
	}
	return &Renderer{Theme: t}
}

// Render draws a full frame.
func (r *Renderer) Render(snap rules.Snapshot) error {
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	width := snap.Size * cellWidth
	renderTitle(r.Theme, snap)
	renderBoard(r.Theme, width, snap.Size)
	if snap.Food != nil {
		renderFood(r.Theme, *snap.Food)
	}
	renderSnake(r.Theme, snap.Snake)
	if snap.State == rules.RunStateGameOver {
		renderGameOver(r.Theme, width, snap)
	}
	tbprint(left, top+snap.Size+3, r.Theme.Text, bgColor, "arrows/wasd to turn, space to restart, q to quit")

	return termbox.Flush()
}

func cellX(x int) int { return left + 1 + x*cellWidth }
func cellY(y int) int { return top + 1 + y }

func renderSnake(t Theme, body []rules.Point) {
	// Draw the tail first so the head wins if cells overlap.
	for i := len(body) - 1; i >= 0; i-- {
		color := t.Snake
		if i == 0 {
			color = t.Head
		}
		fill(cellX(body[i].X), cellY(body[i].Y), cellWidth, 1, termbox.Cell{Ch: ' ', Fg: color, Bg: color})
	}
}

func renderFood(t Theme, f rules.Point) {
	tbprint(cellX(f.X), cellY(f.Y), t.Food, bgColor, string(t.FoodRune))
}

func renderBoard(t Theme, width, height int) {
	right := left + width + 1
	bottom := top + height + 1
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left, i, '│', t.Border, bgColor)
		termbox.SetCell(right, i, '│', t.Border, bgColor)
	}

	termbox.SetCell(left, top, '┌', t.Border, bgColor)
	termbox.SetCell(left, bottom, '└', t.Border, bgColor)
	termbox.SetCell(right, top, '┐', t.Border, bgColor)
	termbox.SetCell(right, bottom, '┘', t.Border, bgColor)

	fill(left+1, top, width, 1, termbox.Cell{Ch: '─', Fg: t.Border, Bg: bgColor})
	fill(left+1, bottom, width, 1, termbox.Cell{Ch: '─', Fg: t.Border, Bg: bgColor})
}

func renderTitle(t Theme, snap rules.Snapshot) {
	tbprint(left, top-1, t.Text, bgColor,
		fmt.Sprintf("Snake! - Score %d - High Score %d", snap.Score, snap.HighScore))
}

func renderGameOver(t Theme, width int, snap rules.Snapshot) {
	midY := cellY(snap.Size / 2)
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d (%s)", snap.Score, snap.Cause),
		"Press Space to Restart",
	}
	for i, line := range lines {
		x := left + 1 + (width-runewidth.StringWidth(line))/2
		if x < left+1 {
			x = left + 1
		}
		tbprint(x, midY-1+i, termbox.ColorWhite|termbox.AttrBold, bgColor, line)
	}
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
