package graph_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/birdayz/dagflow/graph"
)

func TestIsValidAcceptsScenarioS1(t *testing.T) {
	p := graph.New()
	buildScenarioS1(p)
	assert.True(t, p.IsValid())
}

func TestIsValidRejectsEmptyPipeline(t *testing.T) {
	p := graph.New()
	assert.False(t, p.IsValid())
}

func TestIsValidRejectsUnfilledSlot(t *testing.T) {
	p := graph.New()
	src := p.CreateNode(&intSource{name: "src", bound: 5})
	sum := p.CreateNode(&sumComponent{name: "sum"})
	sink := p.CreateNode(&intSink{name: "sink"})

	must(p.Connect(src, sum, 0))
	// slot 1 of sum is never filled.
	must(p.Connect(sum, sink, 0))

	assert.False(t, p.IsValid())
}

func TestIsValidRejectsNonSinkWithNoDependents(t *testing.T) {
	p := graph.New()
	src := p.CreateNode(&intSource{name: "src", bound: 5})
	// src has arity 0 (so the slot-occupation check passes trivially) but
	// feeds nothing, and nothing else exists to serve as a sink.
	_ = src
	assert.False(t, p.IsValid())
}

func TestIsValidRejectsNoSink(t *testing.T) {
	p := graph.New()
	src1 := p.CreateNode(&intSource{name: "src1", bound: 5})
	src2 := p.CreateNode(&intSource{name: "src2", bound: 5})
	sum := p.CreateNode(&sumComponent{name: "sum"})

	must(p.Connect(src1, sum, 0))
	must(p.Connect(src2, sum, 1))
	// sum has a dependent requirement satisfied only by a sink; there is
	// none here, so sum itself fails the "non-sink must have a dependent"
	// rule, and separately there is no sink at all.

	assert.False(t, p.IsValid())
}

func TestIsValidRejectsNoSource(t *testing.T) {
	p := graph.New()
	// A lone sink with its slot unfilled is rejected by the slot
	// occupation check before the no-source check is ever reached; in
	// any valid DAG a filled sink slot necessarily traces back to an
	// arity-0 node, so this is the natural shape of a sourceless graph.
	sink := p.CreateNode(&intSink{name: "sink"})
	_ = sink
	assert.False(t, p.IsValid())
}

func TestIsValidRejectsCycle(t *testing.T) {
	p := graph.New()
	a := p.CreateNode(&sumComponent{name: "a"})
	b := p.CreateNode(&sumComponent{name: "b"})
	sink := p.CreateNode(&intSink{name: "sink"})

	// a and b feed each other on slot 0, forming a cycle; slot 1 of each
	// is filled by a source so the slot-occupation check doesn't mask
	// the cycle check.
	srcA := p.CreateNode(&intSource{name: "srcA", bound: 5})
	srcB := p.CreateNode(&intSource{name: "srcB", bound: 5})

	must(p.Connect(b, a, 0))
	must(p.Connect(srcA, a, 1))
	must(p.Connect(a, b, 0))
	must(p.Connect(srcB, b, 1))
	must(p.Connect(a, sink, 0))

	assert.False(t, p.IsValid())
}

func TestIsValidRejectsDisjointSubPipelines(t *testing.T) {
	p := graph.New()
	buildScenarioS1(p)

	// A second, fully valid, but entirely disconnected S1-shaped
	// pipeline in the same registry. Each half is internally well-formed;
	// the registry as a whole must still fail weak connectivity.
	buildScenarioS1(p)

	assert.False(t, p.IsValid())
}

func TestIsValidAcceptsZeroArityMultiSource(t *testing.T) {
	p := graph.New()
	src1 := p.CreateNode(&intSource{name: "src1", bound: 5})
	src2 := p.CreateNode(&intSource{name: "src2", bound: 5})
	sum := p.CreateNode(&sumComponent{name: "sum"})
	sink := p.CreateNode(&intSink{name: "sink"})

	must(p.Connect(src1, sum, 0))
	must(p.Connect(src2, sum, 1))
	must(p.Connect(sum, sink, 0))

	assert.True(t, p.IsValid())
}

func TestIsValidTurnsFalseAfterErase(t *testing.T) {
	p := graph.New()
	_, _, _, sinkA, _ := buildScenarioS1(p)
	assert.True(t, p.IsValid())

	must(p.EraseNode(sinkA))
	// sinkA was the only consumer of sum, so sum is now a non-sink with
	// no dependents and IsValid must flip false, even though sinkB still
	// satisfies the sink requirement.
	assert.False(t, p.IsValid())
}
