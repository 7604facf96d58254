// Package render writes a pipeline's structure as Graphviz DOT, for
// humans and tooling, never for the pipeline to read back.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/birdayz/dagflow/graph"
)

// WriteDOT writes p's structure to w as a DOT digraph named "G": one
// quoted "<id> <name>" line per node in ascending id order, a blank
// line, then one quoted edge line per dependency, grouped by upstream
// id ascending and sorted by downstream id ascending within each
// upstream. Duplicate edges (the same upstream feeding two slots of
// the same downstream) are emitted once per occurrence.
func WriteDOT(w io.Writer, p *graph.Pipeline) error {
	ids := p.NodeIDs()

	if _, err := io.WriteString(w, "digraph G {\n"); err != nil {
		return err
	}

	for _, id := range ids {
		n, _ := p.GetNode(id)
		if _, err := fmt.Fprintf(w, "  %s\n", quoteLabel(id, n.Name())); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	for _, id := range ids {
		n, _ := p.GetNode(id)
		deps, err := p.GetDependencies(id)
		if err != nil {
			return err
		}
		sort.SliceStable(deps, func(i, j int) bool { return deps[i].Downstream < deps[j].Downstream })

		srcLabel := quoteLabel(id, n.Name())
		for _, dep := range deps {
			down, _ := p.GetNode(dep.Downstream)
			dstLabel := quoteLabel(dep.Downstream, down.Name())
			if _, err := fmt.Fprintf(w, "  %s -> %s\n", srcLabel, dstLabel); err != nil {
				return err
			}
		}
	}

	_, err := io.WriteString(w, "}\n")
	return err
}

func quoteLabel(id graph.NodeID, name string) string {
	label := fmt.Sprintf("%s %s", id, name)
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range label {
		if r == '"' || r == '\\' {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}
