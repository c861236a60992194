package rules

import (
	"fmt"
	"strings"
)

// Heading is the direction the snake is moving in.
type Heading int

// Headings, the zero value is not a valid heading.
const (
	HeadingNone Heading = iota
	HeadingUp
	HeadingDown
	HeadingLeft
	HeadingRight
)

var headingNames = map[Heading]string{
	HeadingUp:    "up",
	HeadingDown:  "down",
	HeadingLeft:  "left",
	HeadingRight: "right",
}

// ParseHeading converts "up", "down", "left" or "right" (any case) into a
// heading.
func ParseHeading(s string) (Heading, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for h, name := range headingNames {
		if name == s {
			return h, true
		}
	}
	return HeadingNone, false
}

// Delta returns the unit grid offset for the heading, y grows downwards.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case HeadingUp:
		return 0, -1
	case HeadingDown:
		return 0, 1
	case HeadingLeft:
		return -1, 0
	case HeadingRight:
		return 1, 0
	}
	return 0, 0
}

// Opposite returns the 180 degree reversal of h.
func (h Heading) Opposite() Heading {
	switch h {
	case HeadingUp:
		return HeadingDown
	case HeadingDown:
		return HeadingUp
	case HeadingLeft:
		return HeadingRight
	case HeadingRight:
		return HeadingLeft
	}
	return HeadingNone
}

// Valid is false for HeadingNone and anything out of range.
func (h Heading) Valid() bool {
	_, ok := headingNames[h]
	return ok
}

func (h Heading) String() string {
	if name, ok := headingNames[h]; ok {
		return name
	}
	return "none"
}

// MarshalText encodes the heading by name.
func (h Heading) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

// UnmarshalText decodes a heading name.
func (h *Heading) UnmarshalText(text []byte) error {
	parsed, ok := ParseHeading(string(text))
	if !ok {
		return fmt.Errorf("rules: unknown heading %q", text)
	}
	*h = parsed
	return nil
}
