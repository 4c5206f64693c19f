package input

import (
	"time"
)

const (
	// DefaultInitialHold spans the delay before a terminal starts autorepeat,
	// which is 500ms on most desktops and 660ms on stock X11
	DefaultInitialHold = 700 * time.Millisecond
	// DefaultHoldTimeout is the window once autorepeat is flowing
	DefaultHoldTimeout = 150 * time.Millisecond
)

type keyState struct {
	last     time.Time
	repeated bool
}

// HeldTracker derives "key is held" state from press events
// Terminals deliver presses and autorepeats but no releases. A fresh press
// stays held for initialHold so the autorepeat delay is bridged; once a repeat
// arrives the key expires holdTimeout after the last one
// Not safe for concurrent use; owned by the frame loop
type HeldTracker struct {
	initialHold time.Duration
	holdTimeout time.Duration
	keys        map[Key]*keyState
	now         func() time.Time
}

// NewHeldTracker creates a tracker using the wall clock
// Non-positive durations fall back to DefaultInitialHold and DefaultHoldTimeout
func NewHeldTracker(initialHold, holdTimeout time.Duration) *HeldTracker {
	return NewHeldTrackerWithClock(initialHold, holdTimeout, time.Now)
}

// NewHeldTrackerWithClock creates a tracker with an injected time source
func NewHeldTrackerWithClock(initialHold, holdTimeout time.Duration, now func() time.Time) *HeldTracker {
	if initialHold <= 0 {
		initialHold = DefaultInitialHold
	}
	if holdTimeout <= 0 {
		holdTimeout = DefaultHoldTimeout
	}
	return &HeldTracker{
		initialHold: initialHold,
		holdTimeout: holdTimeout,
		keys:        make(map[Key]*keyState, 8),
		now:         now,
	}
}

func (h *HeldTracker) window(st *keyState) time.Duration {
	if st.repeated {
		return h.holdTimeout
	}
	return h.initialHold
}

// Press records a press or autorepeat of k
// A press inside the current window of k counts as a repeat
func (h *HeldTracker) Press(k Key) {
	now := h.now()
	if st, ok := h.keys[k]; ok && now.Sub(st.last) < h.window(st) {
		st.last = now
		st.repeated = true
		return
	}
	h.keys[k] = &keyState{last: now}
}

// Release drops k immediately, for backends that do report releases
func (h *HeldTracker) Release(k Key) {
	delete(h.keys, k)
}

// Clear releases every key, used on focus loss and pause
func (h *HeldTracker) Clear() {
	clear(h.keys)
}

// Snapshot returns the keys still within their hold window and expires the rest
func (h *HeldTracker) Snapshot() Snapshot {
	now := h.now()
	keys := make([]Key, 0, len(h.keys))
	for k, st := range h.keys {
		if now.Sub(st.last) >= h.window(st) {
			delete(h.keys, k)
			continue
		}
		keys = append(keys, k)
	}
	return NewSnapshot(keys...)
}
