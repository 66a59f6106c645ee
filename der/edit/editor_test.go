package edit

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/derkit/der"
	"github.com/joshuapare/derkit/der/value"
	"github.com/joshuapare/derkit/internal/testutil"
	"github.com/joshuapare/derkit/pkg/types"
)

func newEditor(t testing.TB, hexBlob string) (*Editor, *der.Tree) {
	t.Helper()
	tree, err := der.Parse(testutil.BytesFromHex(hexBlob), der.DefaultParseOptions())
	require.NoError(t, err)
	return NewEditor(tree, nil), tree
}

func TestAddNode(t *testing.T) {
	ed, tree := newEditor(t, "3000")

	id, err := ed.AddNode(0x02, "-129", tree.RootID, "n")
	require.NoError(t, err)
	require.Equal(t, testutil.BytesFromHex("3004 0202FF7F"), tree.Encode())

	got, ok := tree.FindLabel("n")
	require.True(t, ok)
	require.Equal(t, id, got)
	require.NoError(t, tree.Verify())
}

func TestAddNode_UnknownParent(t *testing.T) {
	ed, tree := newEditor(t, "3000")
	_, err := ed.AddNode(0x05, "", 7, "")
	require.ErrorIs(t, err, types.ErrUnknownNode)
	require.Equal(t, 1, tree.Len())
}

func TestAddNode_EncodingErrorLeavesTreeUntouched(t *testing.T) {
	ed, tree := newEditor(t, "3003 020105")
	before := tree.Encode()
	next := tree.NextID

	_, err := ed.AddNode(0x02, "twelve", tree.RootID, "")
	require.ErrorIs(t, err, types.ErrEncoding)
	require.True(t, value.IsEncodeKind(err, types.EncodeInvalidInteger))
	require.Equal(t, before, tree.Encode())
	require.Equal(t, next, tree.NextID)
}

func TestAdaptContent(t *testing.T) {
	ed, tree := newEditor(t, "3003 020105")
	leaf := tree.Root().Children[0]

	require.NoError(t, ed.AdaptContent(leaf, "300"))
	require.Equal(t, testutil.BytesFromHex("3004 0202012C"), tree.Encode())

	tok, _ := tree.Lookup(leaf)
	require.True(t, tok.Manipulated)
	require.Equal(t, 4, tree.Root().Length)
	require.NoError(t, tree.Verify())
}

func TestAdaptContent_Errors(t *testing.T) {
	ed, tree := newEditor(t, "3003 010100")
	leaf := tree.Root().Children[0]

	require.ErrorIs(t, ed.AdaptContent(99, "1"), types.ErrUnknownNode)

	err := ed.AdaptContent(leaf, "256")
	require.True(t, value.IsEncodeKind(err, types.EncodeInvalidBoolean))
	require.Equal(t, testutil.BytesFromHex("3003 010100"), tree.Encode())
}

func TestAdaptContent_ReplacesEncapsulatedChildren(t *testing.T) {
	ed, tree := newEditor(t, "3006 0404 3002 0500")
	octet := tree.Root().Children[0]

	require.NoError(t, ed.AdaptContent(octet, "0xAABB"))
	require.Equal(t, 2, tree.Len())
	require.Equal(t, testutil.BytesFromHex("3004 0402AABB"), tree.Encode())
	require.NoError(t, tree.Verify())
}

func TestAdaptLength(t *testing.T) {
	ed, tree := newEditor(t, "3003 020105")
	leaf := tree.Root().Children[0]

	require.NoError(t, ed.AdaptLength(leaf, 9))
	require.Equal(t, testutil.BytesFromHex("3003 020905"), tree.Encode())

	tok, _ := tree.Lookup(leaf)
	require.True(t, tok.ManipulatedLength)
	require.Equal(t, []byte{0x05}, tok.Data)

	require.ErrorIs(t, ed.AdaptLength(leaf, -1), ErrNegativeLength)
	require.ErrorIs(t, ed.AdaptLength(42, 1), types.ErrUnknownNode)
}

func TestAdaptTag(t *testing.T) {
	ed, tree := newEditor(t, "3003 020105")
	leaf := tree.Root().Children[0]

	require.NoError(t, ed.AdaptTag(leaf, 0x04))
	require.Equal(t, testutil.BytesFromHex("3003 040105"), tree.Encode())

	// content edits still use the declared tag
	require.NoError(t, ed.AdaptContent(leaf, "7"))
	require.Equal(t, testutil.BytesFromHex("3003 040107"), tree.Encode())
}

func TestAdaptLabel(t *testing.T) {
	ed, tree := newEditor(t, "3003 020105")
	leaf := tree.Root().Children[0]

	require.NoError(t, ed.AdaptLabel(leaf, "version"))
	got, ok := tree.FindLabel("version")
	require.True(t, ok)
	require.Equal(t, leaf, got)
	require.ErrorIs(t, ed.AdaptLabel(42, "x"), types.ErrUnknownNode)
}

func TestDrag_FlatTree(t *testing.T) {
	ed, tree := newEditor(t, "3005 3000 020101")
	root := tree.Root()
	seq, leaf := root.Children[0], root.Children[1]

	require.NoError(t, ed.Drag(leaf, seq, 0))

	require.Equal(t, []types.NodeID{seq}, root.Children)
	dst, _ := tree.Lookup(seq)
	require.Equal(t, []types.NodeID{leaf}, dst.Children)
	moved, _ := tree.Lookup(leaf)
	require.Equal(t, seq, moved.Parent)
	require.Equal(t, 3, dst.Length)
	require.Equal(t, 5, root.Length)
	require.Equal(t, testutil.BytesFromHex("3005 3003 020101"), tree.Encode())
	require.NoError(t, tree.Verify())
}

func TestDrag_WithinParent(t *testing.T) {
	ed, tree := newEditor(t, "3009 020101 020102 020103")
	root := tree.Root()
	first := root.Children[0]

	require.NoError(t, ed.Drag(first, root.ID, 2))
	require.Equal(t, testutil.BytesFromHex("3009 020102 020103 020101"), tree.Encode())
	require.ErrorIs(t, ed.Drag(first, root.ID, 3), ErrIndexOutOfRange)
}

func TestDrag_Guards(t *testing.T) {
	ed, tree := newEditor(t, "3007 3003 020101 0500")
	root := tree.Root()
	seq := root.Children[0]
	inner, _ := tree.Lookup(seq)
	leaf := inner.Children[0]
	before := tree.Encode()

	require.ErrorIs(t, ed.Drag(99, root.ID, 0), types.ErrUnknownNode)
	require.ErrorIs(t, ed.Drag(leaf, 99, 0), types.ErrUnknownNode)
	require.ErrorIs(t, ed.Drag(root.ID, seq, 0), ErrCannotMoveRoot)
	require.ErrorIs(t, ed.Drag(seq, leaf, 0), ErrCycle)
	require.ErrorIs(t, ed.Drag(seq, seq, 0), ErrCycle)
	require.ErrorIs(t, ed.Drag(leaf, root.ID, 5), ErrIndexOutOfRange)
	require.ErrorIs(t, ed.Drag(leaf, root.ID, -1), ErrIndexOutOfRange)

	require.Equal(t, before, tree.Encode())
	require.NoError(t, tree.Verify())
}

func TestGuardErrors_AreDistinct(t *testing.T) {
	ed, tree := newEditor(t, "3007 3003 020101 0500")
	root := tree.Root()
	seq := root.Children[0]

	err := ed.Drag(root.ID, seq, 0)
	require.ErrorIs(t, err, ErrCannotMoveRoot)
	require.ErrorIs(t, err, types.ErrState)
	require.NotErrorIs(t, err, ErrCycle)
	require.NotErrorIs(t, err, ErrCannotRemoveRoot)

	err = ed.AdaptLength(seq, -1)
	require.ErrorIs(t, err, ErrNegativeLength)
	require.ErrorIs(t, err, types.ErrInvalidInput)
	require.NotErrorIs(t, err, ErrIndexOutOfRange)

	guards := []error{ErrCannotRemoveRoot, ErrCannotMoveRoot, ErrCycle, ErrIndexOutOfRange, ErrNegativeLength}
	for i, a := range guards {
		for j, b := range guards {
			require.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}

func TestRemove(t *testing.T) {
	ed, tree := newEditor(t, "3007 3003 020101 0500")
	root := tree.Root()
	seq := root.Children[0]

	require.NoError(t, ed.Remove(seq))
	require.Equal(t, 2, tree.Len())
	require.Equal(t, testutil.BytesFromHex("3002 0500"), tree.Encode())
	require.NoError(t, tree.Verify())

	require.ErrorIs(t, ed.Remove(seq), types.ErrUnknownNode)
	require.ErrorIs(t, ed.Remove(root.ID), ErrCannotRemoveRoot)
	require.ErrorIs(t, ed.Remove(root.ID), types.ErrState)
}

// Random add/remove/drag sequences keep the tree consistent.
func TestEditor_RandomOps(t *testing.T) {
	ed, tree := newEditor(t, "3000")
	rng := rand.New(rand.NewPCG(1, 2))

	constructed := func() []types.NodeID {
		var ids []types.NodeID
		tree.Walk(func(tok *der.Token, _ int) bool {
			if tok.Constructed() {
				ids = append(ids, tok.ID)
			}
			return true
		})
		return ids
	}
	nonRoot := func() []types.NodeID {
		var ids []types.NodeID
		tree.Walk(func(tok *der.Token, _ int) bool {
			if tok.ID != tree.RootID {
				ids = append(ids, tok.ID)
			}
			return true
		})
		return ids
	}

	for i := range 500 {
		switch op := rng.IntN(4); {
		case op <= 1:
			parents := constructed()
			parent := parents[rng.IntN(len(parents))]
			if rng.IntN(2) == 0 {
				_, err := ed.AddNode(0x30, "", parent, "")
				require.NoError(t, err)
			} else {
				_, err := ed.AddNode(0x02, "42", parent, "")
				require.NoError(t, err)
			}
		case op == 2:
			ids := nonRoot()
			if len(ids) == 0 {
				continue
			}
			require.NoError(t, ed.Remove(ids[rng.IntN(len(ids))]))
		default:
			ids := nonRoot()
			if len(ids) == 0 {
				continue
			}
			id := ids[rng.IntN(len(ids))]
			parents := constructed()
			dst := parents[rng.IntN(len(parents))]
			if tree.IsAncestor(id, dst) {
				require.ErrorIs(t, ed.Drag(id, dst, 0), ErrCycle)
				continue
			}
			tok, _ := tree.Lookup(dst)
			limit := len(tok.Children)
			if isChild(tree, id, dst) {
				limit--
			}
			require.NoError(t, ed.Drag(id, dst, rng.IntN(limit+1)), "step %d", i)
		}

		require.NoError(t, tree.Verify(), "step %d", i)
		root := tree.Root()
		require.Len(t, tree.Encode(), root.HeaderLen+root.Length, "step %d", i)
	}

	reparsed, err := der.Parse(tree.Encode(), der.DefaultParseOptions())
	require.NoError(t, err)
	require.Equal(t, tree.Encode(), reparsed.Encode())
}

func isChild(tree *der.Tree, id, parent types.NodeID) bool {
	tok, _ := tree.Lookup(id)
	return tok.Parent == parent
}
