package printer

import (
	"encoding/json"

	"github.com/joshuapare/derkit/der"
)

// printJSON writes the projection as an indented JSON array. MaxDepth drops
// deeper nodes; the children lists of kept nodes are left intact.
func (p *Printer) printJSON(tree *der.Tree) error {
	nodes := make([]Node, 0, tree.Len())
	tree.Walk(func(tok *der.Token, depth int) bool {
		if p.within(depth) {
			nodes = append(nodes, NodeOf(tok))
		}
		return true
	})

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(nodes)
}
