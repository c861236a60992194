package terminal

import (
	"sort"

	termbox "github.com/nsf/termbox-go"
)

// Theme is the colour set used to draw the board.
type Theme struct {
	Name     string
	Snake    termbox.Attribute
	Head     termbox.Attribute
	Food     termbox.Attribute
	Border   termbox.Attribute
	Text     termbox.Attribute
	FoodRune rune
}

// DefaultTheme is used when no theme is chosen.
const DefaultTheme = "retro"

var themes = map[string]Theme{
	"retro": {
		Name:     "retro",
		Snake:    termbox.ColorGreen,
		Head:     termbox.ColorWhite,
		Food:     termbox.ColorRed,
		Border:   termbox.ColorGreen,
		Text:     termbox.ColorGreen,
		FoodRune: '●',
	},
	"neon": {
		Name:     "neon",
		Snake:    termbox.ColorCyan,
		Head:     termbox.ColorWhite,
		Food:     termbox.ColorMagenta,
		Border:   termbox.ColorMagenta,
		Text:     termbox.ColorCyan,
		FoodRune: '◆',
	},
	"classic": {
		Name:     "classic",
		Snake:    termbox.ColorGreen,
		Head:     termbox.ColorYellow,
		Food:     termbox.ColorDefault,
		Border:   termbox.ColorDefault,
		Text:     termbox.ColorDefault,
		FoodRune: '🍎',
	},
	"mono": {
		Name:     "mono",
		Snake:    termbox.ColorWhite,
		Head:     termbox.ColorWhite | termbox.AttrBold,
		Food:     termbox.ColorWhite,
		Border:   termbox.ColorDefault,
		Text:     termbox.ColorDefault,
		FoodRune: '*',
	},
}

// ThemeByName looks up a theme.
func ThemeByName(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ThemeNames lists the available themes in alphabetical order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
