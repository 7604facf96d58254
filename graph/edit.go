package graph

import "fmt"

// Dependency is a snapshot of one outgoing edge: the downstream node id
// and the slot of that node the edge feeds.
type Dependency struct {
	Downstream NodeID
	Slot       int
}

// EraseNode removes the node with the given id. It fails with
// ErrInvalidNodeID if id is unknown.
//
// On success: every upstream node feeding this node loses the matching
// dependency entry; every downstream node fed by this node has the
// corresponding slot cleared (left unfilled, not itself erased).
func (p *Pipeline) EraseNode(id NodeID) error {
	e, ok := p.nodes[id]
	if !ok {
		return newError(KindInvalidNodeID, id.String())
	}

	// Sever edges where this node is the downstream: remove (id, slot)
	// from each upstream's dependency list.
	for slot, upID := range e.connections {
		if up, ok := p.nodes[upID]; ok {
			up.dependencies = removeDependency(up.dependencies, id, slot)
		}
	}

	// Sever edges where this node is the upstream: clear the
	// corresponding slot on each downstream, leaving it unfilled.
	for _, dep := range e.dependencies {
		if down, ok := p.nodes[dep.downstream]; ok {
			if down.connections[dep.slot] == id {
				_ = down.node.Connect(nil, dep.slot)
				delete(down.connections, dep.slot)
			}
		}
	}

	delete(p.nodes, id)
	p.log.V(1).Info("node erased", "id", id)
	return nil
}

func removeDependency(deps []dependency, downstream NodeID, slot int) []dependency {
	for i, d := range deps {
		if d.downstream == downstream && d.slot == slot {
			return append(deps[:i], deps[i+1:]...)
		}
	}
	return deps
}

// Connect binds src's output to the given input slot of dst. All
// preconditions are checked, in the order below, before any mutation;
// on failure the pipeline is left unchanged.
//
//  1. ErrInvalidNodeID if either id is unknown.
//  2. ErrSlotAlreadyUsed if the slot is already filled.
//  3. ErrNoSuchSlot if slot is out of range for dst's arity.
//  4. ErrConnectionTypeMismatch if src's output type doesn't match the
//     slot's declared input type.
func (p *Pipeline) Connect(src, dst NodeID, slot int) error {
	srcEntry, ok := p.nodes[src]
	if !ok {
		return newError(KindInvalidNodeID, src.String())
	}
	dstEntry, ok := p.nodes[dst]
	if !ok {
		return newError(KindInvalidNodeID, dst.String())
	}

	if _, used := dstEntry.connections[slot]; used {
		return newError(KindSlotAlreadyUsed, fmt.Sprintf("dst=%s slot=%d", dst, slot))
	}

	inputs := dstEntry.node.InputTypes()
	if slot < 0 || slot >= len(inputs) {
		return newError(KindNoSuchSlot, fmt.Sprintf("dst=%s slot=%d", dst, slot))
	}

	if srcEntry.node.OutputType() != inputs[slot] {
		return newError(KindConnectionTypeMismatch, fmt.Sprintf("src=%s dst=%s slot=%d", src, dst, slot))
	}

	if err := dstEntry.node.Connect(srcEntry.node, slot); err != nil {
		return err
	}

	dstEntry.connections[slot] = src
	srcEntry.dependencies = append(srcEntry.dependencies, dependency{downstream: dst, slot: slot})

	p.log.V(1).Info("connected", "src", src, "dst", dst, "slot", slot)
	return nil
}

// Disconnect severs every edge from src into dst. If the two nodes are
// not connected, Disconnect is a silent no-op. It fails with
// ErrInvalidNodeID if either id is unknown.
func (p *Pipeline) Disconnect(src, dst NodeID) error {
	srcEntry, ok := p.nodes[src]
	if !ok {
		return newError(KindInvalidNodeID, src.String())
	}
	dstEntry, ok := p.nodes[dst]
	if !ok {
		return newError(KindInvalidNodeID, dst.String())
	}

	// Snapshot the slots to clear first, so dstEntry.connections is not
	// mutated while it is being iterated.
	var slots []int
	for slot, upID := range dstEntry.connections {
		if upID == src {
			slots = append(slots, slot)
		}
	}

	for _, slot := range slots {
		_ = dstEntry.node.Connect(nil, slot)
		delete(dstEntry.connections, slot)
	}

	filtered := srcEntry.dependencies[:0]
	for _, d := range srcEntry.dependencies {
		if d.downstream != dst {
			filtered = append(filtered, d)
		}
	}
	srcEntry.dependencies = filtered

	if len(slots) > 0 {
		p.log.V(1).Info("disconnected", "src", src, "dst", dst, "slots", slots)
	}
	return nil
}

// GetDependencies returns a snapshot copy of every outgoing edge from id:
// the downstream node and the slot it feeds. It fails with
// ErrInvalidNodeID if id is unknown.
func (p *Pipeline) GetDependencies(id NodeID) ([]Dependency, error) {
	e, ok := p.nodes[id]
	if !ok {
		return nil, newError(KindInvalidNodeID, id.String())
	}
	out := make([]Dependency, len(e.dependencies))
	for i, d := range e.dependencies {
		out[i] = Dependency{Downstream: d.downstream, Slot: d.slot}
	}
	return out, nil
}
