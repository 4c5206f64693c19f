package input

import (
	"slices"
	"strings"
)

// Key names a physical key by its canonical lower-case name
// Arrow keys use "up"/"down"/"left"/"right", letters use the letter itself
type Key string

const (
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyW     Key = "w"
	KeyA     Key = "a"
	KeyS     Key = "s"
	KeyD     Key = "d"
)

// Snapshot is the set of keys held during a single frame
// Immutable after construction; safe to share between systems within a tick
type Snapshot struct {
	held map[Key]struct{}
}

// NewSnapshot builds a snapshot from held keys, duplicates are collapsed
func NewSnapshot(keys ...Key) Snapshot {
	held := make(map[Key]struct{}, len(keys))
	for _, k := range keys {
		held[Key(strings.ToLower(string(k)))] = struct{}{}
	}
	return Snapshot{held: held}
}

// Held reports whether k was down this frame, case-insensitive
func (s Snapshot) Held(k Key) bool {
	_, ok := s.held[Key(strings.ToLower(string(k)))]
	return ok
}

// Len returns the number of held keys
func (s Snapshot) Len() int {
	return len(s.held)
}

// Keys returns held keys in sorted order
func (s Snapshot) Keys() []Key {
	keys := make([]Key, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// String renders held keys as "a+up", or "-" when none
func (s Snapshot) String() string {
	if len(s.held) == 0 {
		return "-"
	}
	keys := s.Keys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = string(k)
	}
	return strings.Join(parts, "+")
}
