package nodes

import (
	"fmt"
	"reflect"

	"github.com/birdayz/dagflow"
)

// Validate checks the concrete-node predicate of §4.1 against n: every
// non-sink node must expose a zero-argument Value method whose return
// type matches its declared OutputType. Go's compiler already enforces
// the rest of the predicate (InputTypes returning a tuple, Node's
// methods all being implemented) by refusing to compile a type that
// doesn't satisfy the dagflow.Node interface; this fills the one gap
// compile-time interface satisfaction can't reach, since Producer[O]
// is generic over the caller's O and a plain dagflow.Node value has
// that type erased.
//
// CreateNode does not call Validate itself — satisfying dagflow.Node
// is its only precondition, per §4.2 — but hosts assembling nodes from
// less-trusted sources (plugins, reflection-driven wiring) can call it
// first for an early, descriptive failure instead of a panic inside
// Connect.
func Validate(n dagflow.Node) error {
	if n.OutputType().IsVoid() {
		return nil
	}

	rv := reflect.ValueOf(n)
	method := rv.MethodByName("Value")
	if !method.IsValid() {
		return fmt.Errorf("nodes: %T has OutputType %s but no Value method", n, n.OutputType())
	}

	mt := method.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 {
		return fmt.Errorf("nodes: %T.Value has the wrong signature for a producer", n)
	}

	if got := dagflow.TypeTokenOf(mt.Out(0)); got != n.OutputType() {
		return fmt.Errorf("nodes: %T.Value returns %s, OutputType declares %s", n, got, n.OutputType())
	}

	return nil
}
