package input

import "github.com/lixenwraith/steer/vmath"

// Direction identifies one of the four movement axes
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// DirectionCount is the number of directions, and the handler chain length
const DirectionCount = 4

var directionNames = [DirectionCount]string{"up", "down", "left", "right"}

var directionUnits = [DirectionCount]vmath.Vec3F{
	vmath.V3FUp,
	vmath.V3FDown,
	vmath.V3FLeft,
	vmath.V3FRight,
}

func (d Direction) String() string {
	if d >= DirectionCount {
		return "invalid"
	}
	return directionNames[d]
}

// Valid reports whether d is one of the four defined directions
func (d Direction) Valid() bool {
	return d < DirectionCount
}

// Unit returns the world-space unit vector for d, zero for invalid values
func (d Direction) Unit() vmath.Vec3F {
	if d >= DirectionCount {
		return vmath.Vec3F{}
	}
	return directionUnits[d]
}

// DirectionMask is a bitset of directions, bit n set for Direction(n)
type DirectionMask uint8

func (m DirectionMask) With(d Direction) DirectionMask {
	return m | 1<<d
}

func (m DirectionMask) Has(d Direction) bool {
	return m&(1<<d) != 0
}

// Binding maps a direction to the keys that activate it
// Pure data: matched against a Snapshot, no engine callbacks
type Binding struct {
	Direction Direction
	Keys      []Key
}

// Matches reports whether any bound key is held in s
func (b Binding) Matches(s Snapshot) bool {
	for _, k := range b.Keys {
		if s.Held(k) {
			return true
		}
	}
	return false
}

// DefaultBindings returns the fixed direction bindings in chain order
// Up: up|w, Down: down|s, Left: left|a, Right: right|d
func DefaultBindings() []Binding {
	return []Binding{
		{Direction: DirUp, Keys: []Key{KeyUp, KeyW}},
		{Direction: DirDown, Keys: []Key{KeyDown, KeyS}},
		{Direction: DirLeft, Keys: []Key{KeyLeft, KeyA}},
		{Direction: DirRight, Keys: []Key{KeyRight, KeyD}},
	}
}
