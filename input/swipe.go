package input

import "github.com/battlesnakeio/arcade/rules"

// DefaultSwipeThreshold is the minimum travel, on either axis, for a touch
// to count as a swipe.
const DefaultSwipeThreshold = 30

// ClassifySwipe turns a swipe vector into a direction intent. Swipes that
// travel less than threshold on both axes are ignored. The dominant axis
// picks horizontal or vertical, ties go vertical.
func ClassifySwipe(dx, dy, threshold float64) (Intent, bool) {
	ax, ay := abs(dx), abs(dy)
	if ax < threshold && ay < threshold {
		return Intent{}, false
	}

	var h rules.Heading
	if ax > ay {
		h = rules.HeadingLeft
		if dx > 0 {
			h = rules.HeadingRight
		}
	} else {
		h = rules.HeadingUp
		if dy > 0 {
			h = rules.HeadingDown
		}
	}
	return Intent{Kind: KindDirection, Heading: h, Gesture: true}, true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
