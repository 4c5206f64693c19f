package control

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/steer/input"
	"github.com/lixenwraith/steer/vmath"
)

var (
	ErrChainLength    = errors.New("chain must have one node per direction")
	ErrChainOrder     = errors.New("chain nodes out of order")
	ErrChainEmptyKeys = errors.New("chain node has no keys")
)

// chainOrder is the fixed evaluation order of the handler chain
var chainOrder = [input.DirectionCount]input.Direction{
	input.DirUp,
	input.DirDown,
	input.DirLeft,
	input.DirRight,
}

// Handler is one direction's node: a key predicate and the axis it moves along
type Handler struct {
	Binding input.Binding
	Unit    vmath.Vec3F
}

// Chain is the ordered, immutable sequence of direction handlers
// Every node is evaluated every update; a match never stops the walk, so
// diagonal input adds up and opposite input cancels
type Chain struct {
	nodes [input.DirectionCount]Handler
}

// Trace records one walk of the chain
type Trace struct {
	Visited [input.DirectionCount]input.Direction
	Count   int                 // Nodes visited, 0 when the walk did not run
	Matched input.DirectionMask // Nodes whose predicate held
	Delta   vmath.Vec3F         // Displacement applied to the position
}

// Moved reports whether the walk displaced the position
func (t Trace) Moved() bool {
	return !vmath.V3FIsZero(t.Delta)
}

// NewChain validates bindings and builds the chain
// Bindings must list Up, Down, Left, Right in that order, each with at least one key
func NewChain(bindings []input.Binding) (*Chain, error) {
	if len(bindings) != input.DirectionCount {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrChainLength, len(bindings), input.DirectionCount)
	}

	c := &Chain{}
	for i, b := range bindings {
		if b.Direction != chainOrder[i] {
			return nil, fmt.Errorf("%w: node %d is %v, want %v", ErrChainOrder, i, b.Direction, chainOrder[i])
		}
		if len(b.Keys) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrChainEmptyKeys, b.Direction)
		}

		// Private copy of keys, callers may reuse their slice
		keys := make([]input.Key, len(b.Keys))
		copy(keys, b.Keys)

		c.nodes[i] = Handler{
			Binding: input.Binding{Direction: b.Direction, Keys: keys},
			Unit:    b.Direction.Unit(),
		}
	}
	return c, nil
}

// MustChain is NewChain that panics on invalid bindings
func MustChain(bindings []input.Binding) *Chain {
	c, err := NewChain(bindings)
	if err != nil {
		panic(fmt.Sprintf("control: %v", err))
	}
	return c
}

// Nodes returns a copy of the handler nodes in evaluation order
func (c *Chain) Nodes() []Handler {
	out := make([]Handler, len(c.nodes))
	copy(out, c.nodes[:])
	return out
}

// Update walks all nodes against keys and moves pos by the summed displacement
// Each matched node contributes Unit * dt * speed; the sum is applied once so
// opposite directions cancel exactly
func (c *Chain) Update(keys input.Snapshot, pos *vmath.Vec3F, speed float64, dt time.Duration) Trace {
	var tr Trace
	step := dt.Seconds() * speed

	for i := range c.nodes {
		node := &c.nodes[i]
		tr.Visited[tr.Count] = node.Binding.Direction
		tr.Count++

		if node.Binding.Matches(keys) {
			tr.Matched = tr.Matched.With(node.Binding.Direction)
			tr.Delta = vmath.V3FAdd(tr.Delta, vmath.V3FScale(node.Unit, step))
		}
	}

	*pos = vmath.V3FAdd(*pos, tr.Delta)
	return tr
}
