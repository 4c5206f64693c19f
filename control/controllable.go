package control

import (
	"time"

	"github.com/lixenwraith/steer/input"
	"github.com/lixenwraith/steer/vmath"
)

// Controllable turns held keys into movement of its entity
// Stored as an ECS component next to the entity transform
type Controllable struct {
	// Enabled gates all input processing
	Enabled bool
	// SpeedFactor scales every directional displacement, in units per second
	SpeedFactor float64

	chain *Chain
}

// New builds an initialized Controllable with the default bindings
func New(enabled bool, speedFactor float64) (*Controllable, error) {
	c := &Controllable{Enabled: enabled, SpeedFactor: speedFactor}
	if err := c.Init(input.DefaultBindings()); err != nil {
		return nil, err
	}
	return c, nil
}

// Init constructs the handler chain, must run once before the first Update
func (c *Controllable) Init(bindings []input.Binding) error {
	chain, err := NewChain(bindings)
	if err != nil {
		return err
	}
	c.chain = chain
	return nil
}

// Initialized reports whether Init has built the chain
func (c *Controllable) Initialized() bool {
	return c.chain != nil
}

func (c *Controllable) SetEnabled(enabled bool) {
	c.Enabled = enabled
}

func (c *Controllable) SetSpeedFactor(speed float64) {
	c.SpeedFactor = speed
}

// Update runs one frame: no-op while disabled, otherwise walks the chain
// Panics if enabled and called before Init
func (c *Controllable) Update(keys input.Snapshot, pos *vmath.Vec3F, dt time.Duration) Trace {
	if !c.Enabled {
		return Trace{}
	}
	if c.chain == nil {
		panic("control: Controllable.Update called before Init")
	}
	return c.chain.Update(keys, pos, c.SpeedFactor, dt)
}
