package rules

// DirectionBuffer sits between input and the tick loop. Input may arrive
// faster than ticks; only the latest surviving proposal is kept and it is
// applied once per tick by Commit.
type DirectionBuffer struct {
	committed Heading
	pending   Heading
}

// NewDirectionBuffer returns a buffer with h both committed and pending.
func NewDirectionBuffer(h Heading) *DirectionBuffer {
	return &DirectionBuffer{committed: h, pending: h}
}

// Propose stores h as the pending heading unless it reverses the committed
// heading, in which case it is dropped. Returns whether h was kept.
func (b *DirectionBuffer) Propose(h Heading) bool {
	if !h.Valid() || h == b.committed.Opposite() {
		return false
	}
	b.pending = h
	return true
}

// Commit makes the pending heading the committed one and returns it.
func (b *DirectionBuffer) Commit() Heading {
	b.committed = b.pending
	return b.committed
}

// Reset discards any pending proposal and commits h.
func (b *DirectionBuffer) Reset(h Heading) {
	b.committed = h
	b.pending = h
}

// Committed is the heading used for the last (or next, if nothing is
// pending) move.
func (b *DirectionBuffer) Committed() Heading { return b.committed }

// Pending is the heading that will be committed on the next tick.
func (b *DirectionBuffer) Pending() Heading { return b.pending }
