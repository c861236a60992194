package api

import (
	"sync"

	"github.com/battlesnakeio/arcade/rules"
)

// snapshotHolder keeps the latest snapshot and fans new ones out to
// websocket subscribers. Slow subscribers only ever see the newest frame.
type snapshotHolder struct {
	sync.RWMutex
	latest *rules.Snapshot
	subs   map[chan rules.Snapshot]struct{}
}

func newSnapshotHolder() *snapshotHolder {
	return &snapshotHolder{subs: map[chan rules.Snapshot]struct{}{}}
}

func (sh *snapshotHolder) publish(snap rules.Snapshot) {
	sh.Lock()
	defer sh.Unlock()

	sh.latest = &snap
	for ch := range sh.subs {
		replace(ch, snap)
	}
}

// replace puts snap on ch, discarding an unread older frame.
func replace(ch chan rules.Snapshot, snap rules.Snapshot) {
	select {
	case ch <- snap:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- snap:
	default:
	}
}

func (sh *snapshotHolder) get() (rules.Snapshot, bool) {
	sh.RLock()
	defer sh.RUnlock()

	if sh.latest == nil {
		return rules.Snapshot{}, false
	}
	return *sh.latest, true
}

func (sh *snapshotHolder) subscribe() (<-chan rules.Snapshot, func()) {
	sh.Lock()
	defer sh.Unlock()

	ch := make(chan rules.Snapshot, 1)
	if sh.latest != nil {
		ch <- *sh.latest
	}
	sh.subs[ch] = struct{}{}
	return ch, func() {
		sh.Lock()
		defer sh.Unlock()
		delete(sh.subs, ch)
	}
}

func (sh *snapshotHolder) count() int {
	sh.RLock()
	defer sh.RUnlock()

	return len(sh.subs)
}
