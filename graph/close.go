package graph

import (
	"io"

	"github.com/hashicorp/go-multierror"
)

// Close releases any resources held by nodes that opt into io.Closer.
// The Node contract itself does not require Close; this is a convenience
// for hosts whose nodes wrap files, sockets, or other closable state.
// Nodes are closed in ascending id order and every error is collected,
// mirroring the teacher's multierror.Append pattern for combining
// per-output forwarding errors (processor_node.go).
func (p *Pipeline) Close() error {
	var result *multierror.Error
	for _, id := range p.NodeIDs() {
		e := p.nodes[id]
		if closer, ok := e.node.(io.Closer); ok {
			if err := closer.Close(); err != nil {
				result = multierror.Append(result, err)
			}
		}
	}
	return result.ErrorOrNil()
}
