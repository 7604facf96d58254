package nodes

import (
	"github.com/birdayz/dagflow"
	"github.com/birdayz/dagflow/graph"
)

// Component2 wraps a pure two-argument transform function as a
// component<(I0, I1), O>.
type Component2[I0, I1, O any] struct {
	name    string
	fn      func(I0, I1) O
	a       dagflow.Producer[I0]
	b       dagflow.Producer[I1]
	current O
}

// NewComponent2 builds a Component2 from a two-argument transform.
func NewComponent2[I0, I1, O any](name string, fn func(I0, I1) O) *Component2[I0, I1, O] {
	return &Component2[I0, I1, O]{name: name, fn: fn}
}

func (c *Component2[I0, I1, O]) Name() string { return c.name }
func (c *Component2[I0, I1, O]) InputTypes() []dagflow.TypeToken {
	return []dagflow.TypeToken{dagflow.TokenOf[I0](), dagflow.TokenOf[I1]()}
}
func (c *Component2[I0, I1, O]) OutputType() dagflow.TypeToken { return dagflow.TokenOf[O]() }
func (c *Component2[I0, I1, O]) Value() O                      { return c.current }

func (c *Component2[I0, I1, O]) Connect(src dagflow.Node, slot int) error {
	switch slot {
	case 0:
		if src == nil {
			c.a = nil
			return nil
		}
		p, ok := src.(dagflow.Producer[I0])
		if !ok {
			return &graph.Error{Kind: graph.KindConnectionTypeMismatch}
		}
		c.a = p
	case 1:
		if src == nil {
			c.b = nil
			return nil
		}
		p, ok := src.(dagflow.Producer[I1])
		if !ok {
			return &graph.Error{Kind: graph.KindConnectionTypeMismatch}
		}
		c.b = p
	default:
		return &graph.Error{Kind: graph.KindNoSuchSlot}
	}
	return nil
}

func (c *Component2[I0, I1, O]) PollNext() dagflow.Poll {
	c.current = c.fn(c.a.Value(), c.b.Value())
	return dagflow.Ready
}
