package system

import (
	"time"

	"github.com/mlange-42/ark/ecs"
	"go.uber.org/zap"

	"github.com/lixenwraith/steer/component"
	"github.com/lixenwraith/steer/control"
	"github.com/lixenwraith/steer/engine"
	"github.com/lixenwraith/steer/input"
	"github.com/lixenwraith/steer/parameter"
)

// KeySource yields the held-key snapshot for the current frame
type KeySource interface {
	Snapshot() input.Snapshot
}

// StepCue is notified when an entity starts moving
type StepCue interface {
	PlayStep()
}

// MovementSystem drives every Controllable entity from the frame's key snapshot
// One snapshot is taken per update and shared by all entities
type MovementSystem struct {
	engine.SystemBase

	keys   KeySource
	cue    StepCue
	logger *zap.Logger

	filter *ecs.Filter2[component.TransformComponent, control.Controllable]

	moving map[ecs.Entity]struct{}
	seen   map[ecs.Entity]struct{}
	last   input.Snapshot
}

// NewMovementSystem creates the system; nil logger disables logging
func NewMovementSystem(world *engine.World, keys KeySource, logger *zap.Logger) *MovementSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &MovementSystem{
		SystemBase: engine.NewSystemBase(world),
		keys:       keys,
		logger:     logger.Named("movement"),
		moving:     make(map[ecs.Entity]struct{}),
		seen:       make(map[ecs.Entity]struct{}),
	}
	s.filter = ecs.NewFilter2[component.TransformComponent, control.Controllable](s.ECS())
	return s
}

// SetStepCue attaches an optional movement-start cue
func (s *MovementSystem) SetStepCue(cue StepCue) {
	s.cue = cue
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

// LastSnapshot returns the keys seen by the most recent Update
func (s *MovementSystem) LastSnapshot() input.Snapshot {
	return s.last
}

func (s *MovementSystem) Update(dt time.Duration) {
	keys := s.keys.Snapshot()
	s.last = keys

	clear(s.seen)
	query := s.filter.Query()
	for query.Next() {
		transform, ctrl := query.Get()
		trace := ctrl.Update(keys, &transform.Position, dt)

		e := query.Entity()
		s.seen[e] = struct{}{}
		_, wasMoving := s.moving[e]

		switch {
		case trace.Moved() && !wasMoving:
			s.moving[e] = struct{}{}
			s.logger.Debug("movement started",
				zap.Uint32("entity", e.ID()),
				zap.Stringer("keys", keys),
				zap.Float64("x", transform.Position.X),
				zap.Float64("y", transform.Position.Y),
			)
			if s.cue != nil {
				s.cue.PlayStep()
			}

		case !trace.Moved() && wasMoving:
			delete(s.moving, e)
			s.logger.Debug("movement stopped",
				zap.Uint32("entity", e.ID()),
				zap.Float64("x", transform.Position.X),
				zap.Float64("y", transform.Position.Y),
			)
		}
	}

	// Drop entities that left the world or lost their components
	for e := range s.moving {
		if _, ok := s.seen[e]; !ok {
			delete(s.moving, e)
		}
	}
}
