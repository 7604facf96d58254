// Package nodes provides ready-to-embed node shapes for the common
// arities described in §4.1 of the node type system: sources, sinks,
// and one- and two-input components, each a thin functional wrapper
// the same way kstreams/kprocessor wraps a plain Go function as a
// Processor. Hand-rolled node types are never required; these exist
// purely for convenience. Validate offers the runtime part of the
// admissibility check for any node, wrapped or hand-rolled; CreateNode
// does not run it.
package nodes

import (
	"github.com/birdayz/dagflow"
	"github.com/birdayz/dagflow/graph"
)

// Source wraps a user-supplied poll function as a source<O>: no input
// slots, Connect always rejects.
type Source[O any] struct {
	name    string
	pollFn  func() (O, dagflow.Poll)
	current O
}

// NewSource builds a Source from a poll function returning the next
// value and its readiness.
func NewSource[O any](name string, pollFn func() (O, dagflow.Poll)) *Source[O] {
	return &Source[O]{name: name, pollFn: pollFn}
}

func (s *Source[O]) Name() string                    { return s.name }
func (s *Source[O]) InputTypes() []dagflow.TypeToken { return nil }
func (s *Source[O]) OutputType() dagflow.TypeToken    { return dagflow.TokenOf[O]() }
func (s *Source[O]) Value() O                         { return s.current }

func (s *Source[O]) Connect(dagflow.Node, int) error {
	return &graph.Error{Kind: graph.KindNoSuchSlot}
}

func (s *Source[O]) PollNext() dagflow.Poll {
	v, poll := s.pollFn()
	if poll == dagflow.Ready {
		s.current = v
	}
	return poll
}
