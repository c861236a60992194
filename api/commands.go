package api

import (
	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
)

// Command types accepted over the websocket.
const (
	CommandDirection = "direction"
	CommandSwipe     = "swipe"
	CommandRestart   = "restart"
)

// Command is a player action sent by a remote client.
type Command struct {
	Type      string  `json:"type"`
	Direction string  `json:"direction,omitempty"`
	DX        float64 `json:"dx,omitempty"`
	DY        float64 `json:"dy,omitempty"`
}

var errSwipeTooShort = errors.New("swipe below threshold")

// intent converts a command. Short swipes return errSwipeTooShort, which
// callers treat as a no-op rather than a bad request.
func (c Command) intent(swipeThreshold float64) (input.Intent, error) {
	switch c.Type {
	case CommandDirection:
		h, ok := rules.ParseHeading(c.Direction)
		if !ok {
			return input.Intent{}, errors.Errorf("unknown direction %q", c.Direction)
		}
		return input.Direction(h), nil
	case CommandSwipe:
		in, ok := input.ClassifySwipe(c.DX, c.DY, swipeThreshold)
		if !ok {
			return input.Intent{}, errSwipeTooShort
		}
		return in, nil
	case CommandRestart:
		return input.Restart(), nil
	}
	return input.Intent{}, errors.Errorf("unknown command type %q", c.Type)
}
