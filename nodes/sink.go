package nodes

import (
	"github.com/birdayz/dagflow"
	"github.com/birdayz/dagflow/graph"
)

// Sink wraps a user-supplied consume function as a sink<I>: a single
// input slot, Void output, no Value method.
type Sink[I any] struct {
	name    string
	consume func(I)
	up      dagflow.Producer[I]
}

// NewSink builds a Sink from a function called with every value its
// upstream produces.
func NewSink[I any](name string, consume func(I)) *Sink[I] {
	return &Sink[I]{name: name, consume: consume}
}

func (s *Sink[I]) Name() string                    { return s.name }
func (s *Sink[I]) InputTypes() []dagflow.TypeToken { return []dagflow.TypeToken{dagflow.TokenOf[I]()} }
func (s *Sink[I]) OutputType() dagflow.TypeToken    { return dagflow.Void }

func (s *Sink[I]) Connect(src dagflow.Node, slot int) error {
	if slot != 0 {
		return &graph.Error{Kind: graph.KindNoSuchSlot}
	}
	if src == nil {
		s.up = nil
		return nil
	}
	p, ok := src.(dagflow.Producer[I])
	if !ok {
		return &graph.Error{Kind: graph.KindConnectionTypeMismatch}
	}
	s.up = p
	return nil
}

func (s *Sink[I]) PollNext() dagflow.Poll {
	s.consume(s.up.Value())
	return dagflow.Ready
}
