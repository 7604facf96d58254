package graph

import "github.com/birdayz/dagflow"

// Step executes exactly one tick: every sink, in ascending id order,
// demands a value from its upstream chain. Step returns true iff every
// sink observed Closed during this tick (the termination signal).
//
// Step never mutates graph structure and never panics on a structurally
// valid pipeline. It requires the pipeline be valid at entry (see
// IsValid); behaviour on an invalid graph is undefined, matching §4.4.
func (p *Pipeline) Step() bool {
	memo := make(map[NodeID]dagflow.Poll, len(p.nodes))

	allClosed := true
	for _, id := range p.NodeIDs() {
		e := p.nodes[id]
		if !e.node.OutputType().IsVoid() {
			continue
		}
		if p.demand(id, memo) != dagflow.Closed {
			allClosed = false
		}
	}

	p.log.V(1).Info("tick complete", "allSinksClosed", allClosed)
	return allClosed
}

// Run invokes Step repeatedly until it returns true.
func (p *Pipeline) Run() {
	for !p.Step() {
	}
}

// demand evaluates node id's poll result for the current tick, memoizing
// it so each node is polled at most once per Step call. Every upstream
// is demanded regardless of what earlier upstreams returned — map
// iteration order must never change which nodes get ticked this round
// — and only afterwards are the §4.4 combination rules applied: a node
// inherits Closed over Empty over Ready from its upstreams, without
// itself being polled, unless every upstream came back Ready.
func (p *Pipeline) demand(id NodeID, memo map[NodeID]dagflow.Poll) dagflow.Poll {
	if result, ok := memo[id]; ok {
		return result
	}

	e := p.nodes[id]

	sawClosed := false
	sawEmpty := false
	for _, up := range e.connections {
		switch p.demand(up, memo) {
		case dagflow.Closed:
			sawClosed = true
		case dagflow.Empty:
			sawEmpty = true
		}
	}

	var result dagflow.Poll
	switch {
	case sawClosed:
		result = dagflow.Closed
	case sawEmpty:
		result = dagflow.Empty
	default:
		result = e.node.PollNext()
	}

	memo[id] = result
	return result
}
