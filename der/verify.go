package der

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/joshuapare/derkit/pkg/types"
)

// ErrCorrupt is wrapped by every violation Verify reports.
var ErrCorrupt = errors.New("der: corrupt tree")

// Verify checks the structural invariants of the tree and returns every
// violation found, combined with multierr. A nil result means:
//   - the root exists and has no parent
//   - each child lists its parent, and the parent lists the child exactly once
//   - every token is reachable from the root, with no cycles
//   - every label points at a live token carrying that label
//   - NextID is above every id in use
//   - no token is left tainted
func (t *Tree) Verify() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrCorrupt}, args...)...))
	}

	root, ok := t.Tokens[t.RootID]
	if !ok {
		fail("root %d missing", t.RootID)
		return multierr.Combine(errs...)
	}
	if root.Parent != types.NoNode {
		fail("root %d has parent %d", root.ID, root.Parent)
	}

	for id, tok := range t.Tokens {
		if tok.ID != id {
			fail("token keyed %d carries id %d", id, tok.ID)
		}
		if id >= t.NextID {
			fail("id %d not below next id %d", id, t.NextID)
		}
		if tok.Tainted {
			fail("node %d still tainted", id)
		}
		if id != t.RootID {
			parent, ok := t.Tokens[tok.Parent]
			if !ok {
				fail("node %d has missing parent %d", id, tok.Parent)
			} else if n := countID(parent.Children, id); n != 1 {
				fail("parent %d lists node %d %d times", tok.Parent, id, n)
			}
		}
		for _, child := range tok.Children {
			ct, ok := t.Tokens[child]
			if !ok {
				fail("node %d lists missing child %d", id, child)
				continue
			}
			if ct.Parent != id {
				fail("child %d of %d points at parent %d", child, id, ct.Parent)
			}
		}
	}

	visited := 0
	t.Walk(func(*Token, int) bool {
		visited++
		return true
	})
	if visited != len(t.Tokens) {
		fail("%d of %d nodes unreachable from root", len(t.Tokens)-visited, len(t.Tokens))
	}

	for label, id := range t.Labels {
		tok, ok := t.Tokens[id]
		if !ok {
			fail("label %q points at missing node %d", label, id)
		} else if tok.Info != label {
			fail("label %q points at node %d labelled %q", label, id, tok.Info)
		}
	}

	return multierr.Combine(errs...)
}

func countID(ids []types.NodeID, id types.NodeID) int {
	n := 0
	for _, c := range ids {
		if c == id {
			n++
		}
	}
	return n
}
