package der

import (
	"slices"

	"github.com/joshuapare/derkit/pkg/types"
)

// Tree is an arena of TLV tokens keyed by id.
//
// The tree owns every token. Callers hold ids and look tokens up again after
// each mutation. Tree is NOT thread-safe; one editing session owns it.
type Tree struct {
	Tokens  map[types.NodeID]*Token `json:"tokens"`
	RootID  types.NodeID            `json:"root_id"`
	Labels  map[string]types.NodeID `json:"labels"`
	NextID  types.NodeID            `json:"next_id"`
	ObjType string                  `json:"obj_type"`
}

// NewTree creates a tree holding a single root node.
func NewTree(tag []byte, data []byte) *Tree {
	t := &Tree{
		Tokens: make(map[types.NodeID]*Token),
		RootID: 0,
		Labels: make(map[string]types.NodeID),
	}
	root := t.newToken(tag, data, types.NoNode)
	t.RootID = root.ID
	t.FixSizes(true)
	return t
}

func (t *Tree) newToken(tag []byte, data []byte, parent types.NodeID) *Token {
	tok := &Token{
		ID:       t.NextID,
		Parent:   parent,
		Children: []types.NodeID{},
		Tag:      tag,
		Data:     data,
		Tainted:  true,
	}
	if len(tag) > 0 {
		tok.TagU = tag[0]
	}
	if tok.Data == nil {
		tok.Data = []byte{}
	}
	t.Tokens[tok.ID] = tok
	t.NextID++
	return tok
}

// Lookup returns the token for id.
func (t *Tree) Lookup(id types.NodeID) (*Token, bool) {
	tok, ok := t.Tokens[id]
	return tok, ok
}

// Root returns the root token, or nil for an empty tree.
func (t *Tree) Root() *Token {
	return t.Tokens[t.RootID]
}

// Len returns the number of tokens.
func (t *Tree) Len() int {
	return len(t.Tokens)
}

// AddNode appends a new leaf under parent and returns its id. The new node's
// ancestors are tainted and sizes are fixed before returning. It returns
// types.NoNode when parent does not exist.
func (t *Tree) AddNode(tag byte, data []byte, parent types.NodeID, label string) types.NodeID {
	p, ok := t.Tokens[parent]
	if !ok {
		return types.NoNode
	}
	tok := t.newToken([]byte{tag}, data, parent)
	p.Children = append(p.Children, tok.ID)
	if label != "" {
		t.SetLabel(tok.ID, label)
	}
	t.TaintParents(tok.ID)
	t.FixSizes(false)
	return tok.ID
}

// TaintParents marks every ancestor of id as tainted.
func (t *Tree) TaintParents(id types.NodeID) {
	tok, ok := t.Tokens[id]
	if !ok {
		return
	}
	// Bounded by the token count so a corrupt parent cycle cannot spin.
	for steps := 0; steps <= len(t.Tokens); steps++ {
		parent, ok := t.Tokens[tok.Parent]
		if !ok || parent.ID == tok.ID {
			return
		}
		parent.Tainted = true
		tok = parent
	}
}

// DeepDelete removes id and its entire subtree, detaching it from its
// parent's children and dropping labels that point into it. The root is
// never deleted.
func (t *Tree) DeepDelete(id types.NodeID) {
	tok, ok := t.Tokens[id]
	if !ok || id == t.RootID {
		return
	}
	if parent, ok := t.Tokens[tok.Parent]; ok {
		parent.Children = removeID(parent.Children, id)
	}

	stack := []types.NodeID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		ct, ok := t.Tokens[cur]
		if !ok {
			continue
		}
		stack = append(stack, ct.Children...)
		delete(t.Tokens, cur)
	}

	for label, target := range t.Labels {
		if _, ok := t.Tokens[target]; !ok {
			delete(t.Labels, label)
		}
	}
}

// Detach removes id from its parent's children list without deleting it.
// The node keeps its parent pointer until Attach.
func (t *Tree) Detach(id types.NodeID) {
	tok, ok := t.Tokens[id]
	if !ok {
		return
	}
	if parent, ok := t.Tokens[tok.Parent]; ok {
		parent.Children = removeID(parent.Children, id)
	}
}

// Attach inserts a detached id into parent's children at index and updates
// its parent pointer. It reports false if either node is missing or index is
// outside [0, len(children)].
func (t *Tree) Attach(id, parent types.NodeID, index int) bool {
	tok, ok := t.Tokens[id]
	if !ok {
		return false
	}
	p, ok := t.Tokens[parent]
	if !ok || index < 0 || index > len(p.Children) {
		return false
	}
	p.Children = slices.Insert(p.Children, index, id)
	tok.Parent = parent
	return true
}

// IsAncestor reports whether anc is id or one of id's ancestors.
func (t *Tree) IsAncestor(anc, id types.NodeID) bool {
	cur, ok := t.Tokens[id]
	for steps := 0; ok && steps <= len(t.Tokens); steps++ {
		if cur.ID == anc {
			return true
		}
		cur, ok = t.Tokens[cur.Parent]
	}
	return false
}

// SetData replaces the content octets of id and marks it manipulated and
// tainted. An encapsulating node loses its children, since its content is
// now the raw bytes. Callers taint ancestors and fix sizes afterwards.
func (t *Tree) SetData(id types.NodeID, data []byte) {
	tok, ok := t.Tokens[id]
	if !ok {
		return
	}
	if tok.Encapsulating() {
		for _, child := range slices.Clone(tok.Children) {
			t.DeepDelete(child)
		}
	}
	tok.Data = data
	tok.Manipulated = true
	tok.Tainted = true
}

// SetLabel sets the label of id and records it for FindLabel. A previous
// label of the same node is forgotten. Labels are unique: a node that held
// label before loses it.
func (t *Tree) SetLabel(id types.NodeID, label string) {
	tok, ok := t.Tokens[id]
	if !ok {
		return
	}
	if prev, ok := t.Labels[tok.Info]; ok && prev == id {
		delete(t.Labels, tok.Info)
	}
	tok.Info = label
	if label == "" {
		return
	}
	if other, ok := t.Labels[label]; ok && other != id {
		if holder, ok := t.Tokens[other]; ok && holder.Info == label {
			holder.Info = ""
		}
	}
	t.Labels[label] = id
}

// FindLabel returns the id carrying label.
func (t *Tree) FindLabel(label string) (types.NodeID, bool) {
	id, ok := t.Labels[label]
	return id, ok
}

// Walk visits nodes in pre-order (root first, then children in stored order).
// Returning false from fn stops the walk. Each node is visited at most once,
// so the walk terminates even on a corrupt tree.
func (t *Tree) Walk(fn func(tok *Token, depth int) bool) {
	type frame struct {
		id    types.NodeID
		depth int
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
		if !fn(tok, f.depth) {
			return
		}
		for i := len(tok.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{tok.Children[i], f.depth + 1})
		}
	}
}

func removeID(ids []types.NodeID, id types.NodeID) []types.NodeID {
	return slices.DeleteFunc(ids, func(c types.NodeID) bool { return c == id })
}
