package engine

import (
	"fmt"
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/steer/component"
	"github.com/lixenwraith/steer/control"
	"github.com/lixenwraith/steer/vmath"
)

// System is an interface that all systems must implement
type System interface {
	Update(dt time.Duration)
	Priority() int // Lower values run first
}

// World owns the ark ECS world and the ordered system list
// Single-threaded: systems run on the frame loop goroutine only
type World struct {
	ECS     ecs.World
	systems []System

	players      *ecs.Map4[component.TransformComponent, control.Controllable, component.GlyphComponent, component.PlayerComponent]
	transforms   *ecs.Map[component.TransformComponent]
	controllable *ecs.Map[control.Controllable]
}

// NewWorld creates a new ECS world
func NewWorld() *World {
	w := &World{
		ECS:     ecs.NewWorld(),
		systems: make([]System, 0, 8),
	}
	w.players = ecs.NewMap4[component.TransformComponent, control.Controllable, component.GlyphComponent, component.PlayerComponent](&w.ECS)
	w.transforms = ecs.NewMap[component.TransformComponent](&w.ECS)
	w.controllable = ecs.NewMap[control.Controllable](&w.ECS)
	return w
}

// PlayerSpec describes a controllable entity to spawn
type PlayerSpec struct {
	Name        string
	Start       vmath.Vec3F
	Glyph       rune
	Style       tcell.Style
	Enabled     bool
	SpeedFactor float64
}

// SpawnPlayer creates an entity with transform, controllable, glyph and player components
// The controllable's handler chain is built here, before any system update
func (w *World) SpawnPlayer(spec PlayerSpec) (ecs.Entity, error) {
	ctrl, err := control.New(spec.Enabled, spec.SpeedFactor)
	if err != nil {
		return ecs.Entity{}, fmt.Errorf("spawn %q: %w", spec.Name, err)
	}

	e := w.players.NewEntity(
		&component.TransformComponent{Position: spec.Start},
		ctrl,
		&component.GlyphComponent{Rune: spec.Glyph, Style: spec.Style},
		&component.PlayerComponent{Name: spec.Name},
	)
	return e, nil
}

// Despawn removes e from the world, ignoring dead or zero entities
func (w *World) Despawn(e ecs.Entity) {
	if e.IsZero() || !w.ECS.Alive(e) {
		return
	}
	w.ECS.RemoveEntity(e)
}

// Transform returns the entity's transform, nil if absent or dead
func (w *World) Transform(e ecs.Entity) *component.TransformComponent {
	if e.IsZero() || !w.ECS.Alive(e) || !w.transforms.Has(e) {
		return nil
	}
	return w.transforms.Get(e)
}

// Controllable returns the entity's controllable, nil if absent or dead
func (w *World) Controllable(e ecs.Entity) *control.Controllable {
	if e.IsZero() || !w.ECS.Alive(e) || !w.controllable.Has(e) {
		return nil
	}
	return w.controllable.Get(e)
}

// AddSystem adds a system to the world, keeping priority order stable
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	slices.SortStableFunc(w.systems, func(a, b System) int {
		return a.Priority() - b.Priority()
	})
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	return slices.Clone(w.systems)
}

// Update runs all systems once
func (w *World) Update(dt time.Duration) {
	for _, system := range w.systems {
		system.Update(dt)
	}
}
