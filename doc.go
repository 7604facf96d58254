// Package dagflow defines the node contract for statically-typed,
// pull-based dataflow pipelines: directed acyclic graphs of heterogeneous
// computation nodes that pull values from their inputs, transform them,
// and expose results to whatever is pulling on them.
//
// This package is intentionally small: it only describes what a node
// is (§3/§4.1 of the design this library implements), not how a graph of
// nodes is registered, validated, or ticked — that lives in
// github.com/birdayz/dagflow/graph. Concrete, ready-to-embed node shapes
// for the common arities live in github.com/birdayz/dagflow/nodes.
//
// # Model
//
// A node has a fixed arity (the length of InputTypes), fixed at
// construction. A source has arity zero. A sink has OutputType() Void.
// Everything else is an interior component with both inputs and an
// output.
//
// Nodes never hand their output to the library directly. Instead, a
// downstream node's Connect method receives the upstream Node and is
// responsible for downcasting it to a Producer[O] of the type it expects
// (already guaranteed compatible by the caller, see graph.Connect) and
// storing that typed reference itself. The library only ever moves
// untyped Node references around; this is strategy (a) from the design
// notes: it avoids a homogeneous "any" value transport layer entirely.
package dagflow
