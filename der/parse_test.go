package der

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/derkit/internal/testutil"
	"github.com/joshuapare/derkit/pkg/types"
)

func mustParse(t testing.TB, b []byte) *Tree {
	t.Helper()
	tree, err := Parse(b, DefaultParseOptions())
	require.NoError(t, err)
	return tree
}

func TestParse_RoundTripFixtures(t *testing.T) {
	fixtures := map[string][]byte{
		"roa":    testutil.ROA(),
		"mft":    testutil.Manifest(),
		"cer":    testutil.Certificate(false),
		"certca": testutil.Certificate(true),
		"crl":    testutil.CRL(),
	}
	for name, blob := range fixtures {
		t.Run(name, func(t *testing.T) {
			tree := mustParse(t, blob)
			require.Equal(t, blob, tree.Encode())
			require.NoError(t, tree.Verify())
		})
	}
}

func TestParse_OffsetsMatchInput(t *testing.T) {
	blob := testutil.Certificate(true)
	tree := mustParse(t, blob)

	tree.Walk(func(tok *Token, _ int) bool {
		end := tok.Offset + tok.HeaderLen + tok.Length
		require.LessOrEqual(t, end, len(blob), "node %d", tok.ID)
		require.Equal(t, blob[tok.Offset:end], tree.EncodeNode(tok.ID), "node %d", tok.ID)
		return true
	})
}

func TestParse_HighTagNumber(t *testing.T) {
	tree := mustParse(t, testutil.BytesFromHex("5F64 01 FF"))
	root := tree.Root()
	require.Equal(t, []byte{0x5F, 0x64}, root.Tag)
	require.Equal(t, byte(0x5F), root.TagU)
	require.Equal(t, "[APPLICATION 100]", TagName(root.Tag))
	require.Equal(t, 3, root.HeaderLen)

	tree = mustParse(t, testutil.BytesFromHex("9F8100 00"))
	require.Equal(t, "[128]", TagName(tree.Root().Tag))
	require.Equal(t, testutil.BytesFromHex("9F8100 00"), tree.Encode())
}

func TestParse_IndefiniteLength(t *testing.T) {
	tree := mustParse(t, testutil.BytesFromHex("3080 020105 0000"))
	require.Equal(t, testutil.BytesFromHex("3003 020105"), tree.Encode())

	tree = mustParse(t, testutil.BytesFromHex("3080 3080 0500 0000 0000"))
	require.Equal(t, testutil.BytesFromHex("3004 3002 0500"), tree.Encode())
	require.NoError(t, tree.Verify())
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, ErrEmpty},
		{"truncated content", testutil.BytesFromHex("3005 0201"), ErrIncomplete},
		{"truncated tag", testutil.BytesFromHex("1F81"), ErrIncomplete},
		{"missing length", testutil.BytesFromHex("30"), ErrIncomplete},
		{"trailing bytes", testutil.BytesFromHex("0500 00"), ErrTail},
		{"reserved length", testutil.BytesFromHex("04FF"), ErrLength},
		{"oversized length", testutil.BytesFromHex("0488 0102030405060708"), ErrLength},
		{"indefinite primitive", testutil.BytesFromHex("0480 00 0000"), ErrIndefinitePrimitive},
		{"unterminated indefinite", testutil.BytesFromHex("3080 0500"), ErrIncomplete},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.in, DefaultParseOptions())
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_Limits(t *testing.T) {
	opts := DefaultParseOptions()
	opts.Limits = types.Limits{MaxTreeDepth: 2, MaxNodes: 100, MaxInputSize: 100}
	_, err := Parse(testutil.BytesFromHex("3006 3004 3002 0500"), opts)
	require.ErrorIs(t, err, ErrDepth)

	opts.Limits = types.Limits{MaxTreeDepth: 10, MaxNodes: 2, MaxInputSize: 100}
	_, err = Parse(testutil.BytesFromHex("3004 0500 0500"), opts)
	require.ErrorIs(t, err, ErrTooManyNodes)

	opts.Limits = types.Limits{MaxTreeDepth: 10, MaxNodes: 10, MaxInputSize: 4}
	_, err = Parse(testutil.BytesFromHex("3004 0500 0500"), opts)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestParse_ZeroOptionsUseDefaults(t *testing.T) {
	tree, err := Parse(testutil.BytesFromHex("3002 0500"), ParseOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, tree.Len())
}

func TestParse_EncapsulatedOctetString(t *testing.T) {
	blob := testutil.BytesFromHex("0404 3002 0500")
	tree := mustParse(t, blob)

	root := tree.Root()
	require.True(t, root.Encapsulating())
	require.Empty(t, root.Data)
	require.Len(t, root.Children, 1)
	require.Equal(t, 3, tree.Len())
	require.Equal(t, blob, tree.Encode())
	require.NoError(t, tree.Verify())
}

func TestParse_EncapsulatedBitString(t *testing.T) {
	blob := testutil.BytesFromHex("0305 00 3002 0500")
	tree := mustParse(t, blob)

	root := tree.Root()
	require.True(t, root.Encapsulating())
	require.Equal(t, 5, root.Length)
	child, ok := tree.Lookup(root.Children[0])
	require.True(t, ok)
	require.Equal(t, 3, child.Offset)
	require.Equal(t, blob, tree.Encode())
}

func TestParse_EncapsulationDisabled(t *testing.T) {
	opts := DefaultParseOptions()
	opts.Encapsulated = false
	tree, err := Parse(testutil.BytesFromHex("0404 3002 0500"), opts)
	require.NoError(t, err)
	require.Equal(t, 1, tree.Len())
	require.False(t, tree.Root().Encapsulating())
}

func TestParse_EncapsulationRollback(t *testing.T) {
	cases := map[string]string{
		"truncated inner":     "0404 3003 0500",
		"non-minimal inner":   "0405 308102 0500",
		"indefinite inner":    "0406 3080 0500 0000",
		"bit string not zero": "0305 01 3002 0500",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			blob := testutil.BytesFromHex(in)
			tree := mustParse(t, blob)
			require.Equal(t, 1, tree.Len())
			require.Equal(t, types.NodeID(1), tree.NextID)
			require.False(t, tree.Root().Encapsulating())
			require.Equal(t, blob, tree.Encode())
		})
	}
}

func TestParse_ObjTypeRecorded(t *testing.T) {
	opts := DefaultParseOptions()
	opts.ObjType = "roa"
	tree, err := Parse(testutil.ROA(), opts)
	require.NoError(t, err)
	require.Equal(t, "roa", tree.ObjType)
}
