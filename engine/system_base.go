package engine

import (
	"github.com/mlange-42/ark/ecs"
)

// SystemBase provides common dependency for all system
// Embed in system struct to eliminate boilerplate
type SystemBase struct {
	World *World
}

// NewSystemBase initializes base dependency from world
// Call once in system constructor
func NewSystemBase(w *World) SystemBase {
	return SystemBase{World: w}
}

// ECS returns the underlying ark world for filter and mapper construction
func (b SystemBase) ECS() *ecs.World {
	return &b.World.ECS
}
