package edit

import (
	"go.uber.org/zap"

	"github.com/joshuapare/derkit/der"
	"github.com/joshuapare/derkit/der/value"
	"github.com/joshuapare/derkit/pkg/types"
)

// Editor applies validated edits to a tree. Every operation checks its
// inputs and encodes its value before the first write, so a failed call
// leaves the tree untouched.
//
// Editor is NOT thread-safe.
type Editor struct {
	tree *der.Tree
	log  *zap.Logger
}

// NewEditor creates an editor over tree. A nil logger uses the package logger.
func NewEditor(tree *der.Tree, log *zap.Logger) *Editor {
	if log == nil {
		log = logger
	}
	return &Editor{tree: tree, log: log}
}

// Tree returns the tree being edited.
func (e *Editor) Tree() *der.Tree {
	return e.tree
}

func (e *Editor) lookup(role string, id types.NodeID) (*der.Token, error) {
	tok, ok := e.tree.Lookup(id)
	if !ok {
		return nil, types.UnknownNode(role, id)
	}
	return tok, nil
}

// AddNode encodes text for tag and appends the result as a new leaf under
// parent. It returns the new node's id.
func (e *Editor) AddNode(tag byte, text string, parent types.NodeID, label string) (types.NodeID, error) {
	if _, err := e.lookup("parent", parent); err != nil {
		return types.NoNode, err
	}
	data, err := value.Encode(tag, text)
	if err != nil {
		return types.NoNode, err
	}

	id := e.tree.AddNode(tag, data, parent, label)
	e.log.Debug("add node",
		zap.Int("id", int(id)),
		zap.Int("parent", int(parent)),
		zap.Uint8("tag", tag),
		zap.Int("size", len(data)),
	)
	return id, nil
}

// AdaptContent re-encodes text with the node's stored tag and replaces its
// content. Encapsulated children are dropped in favour of the new octets.
func (e *Editor) AdaptContent(id types.NodeID, text string) error {
	tok, err := e.lookup("node", id)
	if err != nil {
		return err
	}
	data, err := value.Encode(tok.TagU, text)
	if err != nil {
		return err
	}

	e.tree.SetData(id, data)
	e.tree.TaintParents(id)
	e.tree.FixSizes(true)
	e.log.Debug("adapt content", zap.Int("id", int(id)), zap.Int("size", len(data)))
	return nil
}

// AdaptLength sets a length override. Content and cached sizes are left
// alone; only Encode writes the override.
func (e *Editor) AdaptLength(id types.NodeID, length int) error {
	tok, err := e.lookup("node", id)
	if err != nil {
		return err
	}
	if length < 0 {
		return ErrNegativeLength
	}

	tok.VisualLength = length
	tok.ManipulatedLength = true
	tok.Manipulated = true
	e.log.Debug("adapt length", zap.Int("id", int(id)), zap.Int("length", length))
	return nil
}

// AdaptTag sets an identifier override. Content is not revalidated against
// the new tag.
func (e *Editor) AdaptTag(id types.NodeID, tag byte) error {
	tok, err := e.lookup("node", id)
	if err != nil {
		return err
	}

	tok.VisualTag = []byte{tag}
	tok.Manipulated = true
	e.log.Debug("adapt tag", zap.Int("id", int(id)), zap.Uint8("tag", tag))
	return nil
}

// AdaptLabel renames the node and records the label for lookup.
func (e *Editor) AdaptLabel(id types.NodeID, label string) error {
	if _, err := e.lookup("node", id); err != nil {
		return err
	}

	e.tree.SetLabel(id, label)
	e.log.Debug("adapt label", zap.Int("id", int(id)), zap.String("label", label))
	return nil
}

// Drag moves id to position index among newParent's children. The index
// refers to the children list after id has been detached, so dragging within
// one parent uses the final position.
func (e *Editor) Drag(id, newParent types.NodeID, index int) error {
	tok, err := e.lookup("node", id)
	if err != nil {
		return err
	}
	dst, err := e.lookup("parent", newParent)
	if err != nil {
		return err
	}
	if id == e.tree.RootID {
		return ErrCannotMoveRoot
	}
	if e.tree.IsAncestor(id, newParent) {
		return ErrCycle
	}
	limit := len(dst.Children)
	if tok.Parent == newParent {
		limit--
	}
	if index < 0 || index > limit {
		return ErrIndexOutOfRange
	}

	oldParent := tok.Parent
	e.tree.TaintParents(id)
	e.tree.Detach(id)
	e.tree.Attach(id, newParent, index)
	e.tree.TaintParents(id)
	e.tree.FixSizes(true)
	e.log.Debug("drag node",
		zap.Int("id", int(id)),
		zap.Int("from", int(oldParent)),
		zap.Int("to", int(newParent)),
		zap.Int("index", index),
	)
	return nil
}

// Remove deletes id and its entire subtree.
func (e *Editor) Remove(id types.NodeID) error {
	if _, err := e.lookup("node", id); err != nil {
		return err
	}
	if id == e.tree.RootID {
		return ErrCannotRemoveRoot
	}

	e.tree.TaintParents(id)
	e.tree.DeepDelete(id)
	e.tree.FixSizes(true)
	e.log.Debug("remove node", zap.Int("id", int(id)), zap.Int("remaining", e.tree.Len()))
	return nil
}
