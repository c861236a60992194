// Package input turns raw player input (keys, swipes, remote commands) into
// intents the session understands.
package input

import "github.com/battlesnakeio/arcade/rules"

// Kind is the type of an intent.
type Kind int

const (
	// KindDirection asks the snake to turn.
	KindDirection Kind = iota
	// KindRestart asks for a fresh run.
	KindRestart
)

// Intent is a single player action.
type Intent struct {
	Kind    Kind
	Heading rules.Heading
	// Gesture marks intents from swipes. A swipe on a finished game
	// restarts it, whichever way it points.
	Gesture bool
}

// Direction returns a turn intent.
func Direction(h rules.Heading) Intent {
	return Intent{Kind: KindDirection, Heading: h}
}

// Restart returns a restart intent.
func Restart() Intent {
	return Intent{Kind: KindRestart}
}

func (i Intent) String() string {
	if i.Kind == KindRestart {
		return "restart"
	}
	if i.Gesture {
		return "swipe-" + i.Heading.String()
	}
	return i.Heading.String()
}

// Sink accepts intents. A session is the usual sink.
type Sink interface {
	Submit(Intent)
}
