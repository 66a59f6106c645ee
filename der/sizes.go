package der

import "github.com/joshuapare/derkit/pkg/types"

// FixSizes recomputes cached lengths and offsets.
//
// With full=false only tainted nodes are recomputed; untainted subtrees reuse
// their cached sizes, which is sound because every edit taints the whole
// ancestor path. With full=true every node is recomputed. Offsets are always
// reassigned since any resize shifts everything after it. All taint flags are
// cleared.
func (t *Tree) FixSizes(full bool) {
	if _, ok := t.Tokens[t.RootID]; !ok {
		return
	}
	seen := make(map[types.NodeID]struct{}, len(t.Tokens))
	t.fixSize(t.RootID, full, seen)
	t.fixOffsets()
}

// fixSize returns the total encoded size of id (header + content).
func (t *Tree) fixSize(id types.NodeID, full bool, seen map[types.NodeID]struct{}) int {
	tok, ok := t.Tokens[id]
	if !ok {
		return 0
	}
	if _, dup := seen[id]; dup {
		return 0
	}
	seen[id] = struct{}{}

	if !full && !tok.Tainted {
		return tok.HeaderLen + tok.Length
	}

	length := 0
	if len(tok.Children) > 0 {
		if tok.isBitString() {
			length++ // unused-bits octet ahead of encapsulated content
		}
		for _, child := range tok.Children {
			length += t.fixSize(child, full, seen)
		}
	} else {
		length = len(tok.Data)
	}

	tok.Length = length
	tok.HeaderLen = len(tok.EffectiveTag()) + lengthSize(tok.EffectiveLength())
	tok.Tainted = false
	return tok.HeaderLen + tok.Length
}

func (t *Tree) fixOffsets() {
	type frame struct {
		id  types.NodeID
		off int
	}
	seen := make(map[types.NodeID]struct{}, len(t.Tokens))
	stack := []frame{{t.RootID, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tok, ok := t.Tokens[f.id]
		if !ok {
			continue
		}
		if _, dup := seen[f.id]; dup {
			continue
		}
		seen[f.id] = struct{}{}
		tok.Offset = f.off

		off := f.off + tok.HeaderLen
		if tok.isBitString() && len(tok.Children) > 0 {
			off++
		}
		frames := make([]frame, 0, len(tok.Children))
		for _, child := range tok.Children {
			ct, ok := t.Tokens[child]
			if !ok {
				continue
			}
			frames = append(frames, frame{child, off})
			off += ct.HeaderLen + ct.Length
		}
		for i := len(frames) - 1; i >= 0; i-- {
			stack = append(stack, frames[i])
		}
	}
}
