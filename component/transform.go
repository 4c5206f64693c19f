package component

import (
	"github.com/lixenwraith/steer/vmath"
)

// TransformComponent holds an entity's world position
// Mutated in place by MovementSystem, read by renderers
type TransformComponent struct {
	Position vmath.Vec3F
}
