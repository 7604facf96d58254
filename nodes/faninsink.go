package nodes

import (
	"go.uber.org/multierr"

	"github.com/birdayz/dagflow"
	"github.com/birdayz/dagflow/graph"
)

// FanInSink is a sink<I> with several input slots instead of one,
// consuming a slice of values every tick. A write function that can
// fail partially per slot (e.g. writing each value to a different
// backing store) reports every failure via multierr.Append, the way
// internal/task.go aggregates per-store Close errors, rather than
// abandoning the rest of the batch on the first error.
type FanInSink[I any] struct {
	name    string
	write   func([]I) error
	ups     []dagflow.Producer[I]
	values  []I
	lastErr error
}

// NewFanInSink builds a FanInSink with the given fixed arity.
func NewFanInSink[I any](name string, arity int, write func([]I) error) *FanInSink[I] {
	return &FanInSink[I]{
		name:   name,
		write:  write,
		ups:    make([]dagflow.Producer[I], arity),
		values: make([]I, arity),
	}
}

func (s *FanInSink[I]) Name() string { return s.name }
func (s *FanInSink[I]) InputTypes() []dagflow.TypeToken {
	tok := dagflow.TokenOf[I]()
	inputs := make([]dagflow.TypeToken, len(s.ups))
	for i := range inputs {
		inputs[i] = tok
	}
	return inputs
}
func (s *FanInSink[I]) OutputType() dagflow.TypeToken { return dagflow.Void }

func (s *FanInSink[I]) Connect(src dagflow.Node, slot int) error {
	if slot < 0 || slot >= len(s.ups) {
		return &graph.Error{Kind: graph.KindNoSuchSlot}
	}
	if src == nil {
		s.ups[slot] = nil
		return nil
	}
	p, ok := src.(dagflow.Producer[I])
	if !ok {
		return &graph.Error{Kind: graph.KindConnectionTypeMismatch}
	}
	s.ups[slot] = p
	return nil
}

func (s *FanInSink[I]) PollNext() dagflow.Poll {
	for i, up := range s.ups {
		s.values[i] = up.Value()
	}
	if err := s.write(s.values); err != nil {
		// write errors don't fit a Poll; surface them to whatever holds
		// a reference to this sink via Err, mirroring how a source that
		// can fail would have no channel back to the scheduler either.
		s.lastErr = multierr.Append(s.lastErr, err)
	}
	return dagflow.Ready
}

// Err returns every error accumulated across PollNext calls, combined
// with multierr.Append, since the node contract's PollNext has no
// channel for reporting write failures back to the scheduler.
func (s *FanInSink[I]) Err() error {
	return s.lastErr
}
