package edit

import "github.com/joshuapare/derkit/pkg/types"

var (
	// ErrCannotRemoveRoot indicates an attempt to remove the root node.
	ErrCannotRemoveRoot = &types.Error{Kind: types.ErrKindState, Msg: "edit: cannot remove root node"}

	// ErrCannotMoveRoot indicates an attempt to drag the root node.
	ErrCannotMoveRoot = &types.Error{Kind: types.ErrKindState, Msg: "edit: cannot move root node"}

	// ErrCycle indicates a drag target inside the dragged subtree.
	ErrCycle = &types.Error{Kind: types.ErrKindState, Msg: "edit: cannot move node into its own subtree"}

	// ErrIndexOutOfRange indicates a drag insertion index past the end of the
	// new parent's children.
	ErrIndexOutOfRange = &types.Error{Kind: types.ErrKindInvalidInput, Msg: "edit: insertion index out of range"}

	// ErrNegativeLength indicates a negative length override.
	ErrNegativeLength = &types.Error{Kind: types.ErrKindInvalidInput, Msg: "edit: length override must not be negative"}
)
