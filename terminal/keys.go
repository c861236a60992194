package terminal

import (
	"context"

	"github.com/battlesnakeio/arcade/input"
	"github.com/battlesnakeio/arcade/rules"
	termbox "github.com/nsf/termbox-go"
)

var arrowKeys = map[termbox.Key]rules.Heading{
	termbox.KeyArrowUp:    rules.HeadingUp,
	termbox.KeyArrowDown:  rules.HeadingDown,
	termbox.KeyArrowLeft:  rules.HeadingLeft,
	termbox.KeyArrowRight: rules.HeadingRight,
}

var letterKeys = map[rune]rules.Heading{
	'w': rules.HeadingUp,
	's': rules.HeadingDown,
	'a': rules.HeadingLeft,
	'd': rules.HeadingRight,
	'k': rules.HeadingUp,
	'j': rules.HeadingDown,
	'h': rules.HeadingLeft,
	'l': rules.HeadingRight,
}

// KeyIntent maps a key press to an intent. Space restarts.
func KeyIntent(ev termbox.Event) (input.Intent, bool) {
	if ev.Type != termbox.EventKey {
		return input.Intent{}, false
	}
	if h, ok := arrowKeys[ev.Key]; ok {
		return input.Direction(h), true
	}
	if ev.Key == termbox.KeySpace || ev.Ch == ' ' {
		return input.Restart(), true
	}
	if h, ok := letterKeys[ev.Ch]; ok {
		return input.Direction(h), true
	}
	return input.Intent{}, false
}

// IsQuit reports whether the key press should end the program.
func IsQuit(ev termbox.Event) bool {
	if ev.Type != termbox.EventKey {
		return false
	}
	return ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q'
}

// PollKeys reads keyboard events and submits intents to sink until the
// player quits, ctx is done or termbox reports an error. termbox must
// already be initialised.
func PollKeys(ctx context.Context, sink input.Sink) error {
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			termbox.Interrupt()
		case <-stop:
		}
	}()

	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			return ctx.Err()
		case termbox.EventError:
			return ev.Err
		case termbox.EventKey:
			if IsQuit(ev) {
				return nil
			}
			if in, ok := KeyIntent(ev); ok {
				sink.Submit(in)
			}
		}
	}
}
