package nodes

import (
	"github.com/birdayz/dagflow"
	"github.com/birdayz/dagflow/graph"
)

// Component1 wraps a pure transform function as a component<(I), O>: a
// single input slot, feeding fn to produce the output each tick.
type Component1[I, O any] struct {
	name    string
	fn      func(I) O
	up      dagflow.Producer[I]
	current O
}

// NewComponent1 builds a Component1 from a one-argument transform.
func NewComponent1[I, O any](name string, fn func(I) O) *Component1[I, O] {
	return &Component1[I, O]{name: name, fn: fn}
}

func (c *Component1[I, O]) Name() string { return c.name }
func (c *Component1[I, O]) InputTypes() []dagflow.TypeToken {
	return []dagflow.TypeToken{dagflow.TokenOf[I]()}
}
func (c *Component1[I, O]) OutputType() dagflow.TypeToken { return dagflow.TokenOf[O]() }
func (c *Component1[I, O]) Value() O                      { return c.current }

func (c *Component1[I, O]) Connect(src dagflow.Node, slot int) error {
	if slot != 0 {
		return &graph.Error{Kind: graph.KindNoSuchSlot}
	}
	if src == nil {
		c.up = nil
		return nil
	}
	p, ok := src.(dagflow.Producer[I])
	if !ok {
		return &graph.Error{Kind: graph.KindConnectionTypeMismatch}
	}
	c.up = p
	return nil
}

func (c *Component1[I, O]) PollNext() dagflow.Poll {
	c.current = c.fn(c.up.Value())
	return dagflow.Ready
}
