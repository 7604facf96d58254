// Package graph implements the graph registry, validator, and pull-based
// tick scheduler for dagflow pipelines: identifier allocation,
// connection/disconnection with typed slot checks, the structural
// validity predicate, and the step/run tick propagation.
//
// Package layout mirrors the teacher lineage's split between a
// build-time graph (kdag) and its validation/scheduling passes: graph.go
// holds the registry, errors.go the pipeline_error taxonomy, edit.go the
// editing protocol, validate.go the structural predicate, and
// schedule.go the tick scheduler.
package graph

import (
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"golang.org/x/exp/maps"

	"github.com/birdayz/dagflow"
)

// NodeID is a dense, monotonically allocated node identifier. The zero
// value never refers to a live node (allocation starts at 1).
type NodeID uint64

func (id NodeID) String() string {
	return fmt.Sprintf("%d", uint64(id))
}

// dependency is one outgoing edge: the downstream node id and the slot
// of that node the edge feeds.
type dependency struct {
	downstream NodeID
	slot       int
}

// entry is the per-node bookkeeping the registry owns alongside the
// user's Node value: which upstream feeds each of its input slots, and
// which downstream slots its own output feeds.
type entry struct {
	node dagflow.Node

	// connections: slot index -> upstream node id. Present iff filled.
	connections map[int]NodeID

	// dependencies: one entry per outgoing edge. Duplicates are legal
	// (the same upstream feeding two slots of the same downstream node
	// yields two entries).
	dependencies []dependency
}

// Pipeline owns a registry of nodes and provides the editing, validation,
// and scheduling API described in the specification. Pipeline is not
// thread-safe: concurrent calls to any method on the same instance are
// disallowed, matching the single-threaded execution model (see
// dagflow/graph's scheduler) and the teacher's own "Builder is NOT safe
// for concurrent use" stance.
type Pipeline struct {
	name string
	log  logr.Logger

	nodes  map[NodeID]*entry
	nextID NodeID
}

// New creates an empty, ready-to-use pipeline. Construction is
// infallible, matching §7 ("create_node and get_node never raise").
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		log:    logr.Discard(),
		nodes:  make(map[NodeID]*entry),
		nextID: 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.name != "" {
		p.log = p.log.WithName(p.name)
	}
	return p
}

// CreateNode registers n in the pipeline and returns its freshly
// allocated id. n must satisfy the concrete-node predicate (see package
// nodes' Validate); CreateNode does not itself re-derive that predicate
// beyond what Go's type system already guarantees by n implementing
// dagflow.Node — callers that build nodes through package nodes' helpers
// get the full predicate checked at construction time instead.
//
// Allocation never fails; this matches §4.2's "infallible" contract
// (out-of-memory is a fatal runtime condition, not a pipeline_error).
func (p *Pipeline) CreateNode(n dagflow.Node) NodeID {
	id := p.nextID
	p.nextID++

	p.nodes[id] = &entry{
		node:        n,
		connections: make(map[int]NodeID),
	}

	p.log.V(1).Info("node created", "id", id, "name", n.Name(), "arity", len(n.InputTypes()), "output", n.OutputType().String())
	return id
}

// GetNode returns a borrowed handle to the live node with the given id,
// or ok=false if id is unknown or has been erased. GetNode never fails.
func (p *Pipeline) GetNode(id NodeID) (dagflow.Node, bool) {
	e, ok := p.nodes[id]
	if !ok {
		return nil, false
	}
	return e.node, true
}

// NodeIDs returns a sorted snapshot of all live node ids. This is not
// part of the specification's core API; it is a read-only convenience
// for hosts enumerating the graph (see SPEC_FULL.md).
func (p *Pipeline) NodeIDs() []NodeID {
	ids := maps.Keys(p.nodes)
	slices.Sort(ids)
	return ids
}
