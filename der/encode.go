package der

import "github.com/joshuapare/derkit/pkg/types"

// Encode serializes the whole tree. Lengths are computed from the current
// content rather than from cached sizes, so the output is correct even if a
// caller forgot FixSizes. Tag and length overrides are honored.
func (t *Tree) Encode() []byte {
	if _, ok := t.Tokens[t.RootID]; !ok {
		return nil
	}
	return t.appendNode(nil, t.RootID, make(map[types.NodeID]struct{}, len(t.Tokens)))
}

// EncodeNode serializes the subtree rooted at id, or nil if id is unknown.
func (t *Tree) EncodeNode(id types.NodeID) []byte {
	if _, ok := t.Tokens[id]; !ok {
		return nil
	}
	return t.appendNode(nil, id, make(map[types.NodeID]struct{}, len(t.Tokens)))
}

func (t *Tree) appendNode(b []byte, id types.NodeID, seen map[types.NodeID]struct{}) []byte {
	tok, ok := t.Tokens[id]
	if !ok {
		return b
	}
	if _, dup := seen[id]; dup {
		return b
	}
	seen[id] = struct{}{}

	content := t.content(tok, seen)
	length := len(content)
	if tok.ManipulatedLength {
		length = tok.VisualLength
	}

	b = append(b, tok.EffectiveTag()...)
	b = appendLength(b, length)
	return append(b, content...)
}

func (t *Tree) content(tok *Token, seen map[types.NodeID]struct{}) []byte {
	if len(tok.Children) == 0 {
		return tok.Data
	}
	var c []byte
	if tok.isBitString() {
		c = append(c, 0x00)
	}
	for _, child := range tok.Children {
		c = t.appendNode(c, child, seen)
	}
	return c
}
