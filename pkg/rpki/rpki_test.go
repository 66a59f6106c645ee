package rpki

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/derkit/der"
	"github.com/joshuapare/derkit/internal/testutil"
	"github.com/joshuapare/derkit/pkg/types"
)

func TestFromString(t *testing.T) {
	cases := map[string]ObjectType{
		"roa":     ROA,
		".ROA":    ROA,
		"mft":     MFT,
		"crl":     CRL,
		"cer":     CER,
		"certca":  CERTCA,
		"gbr":     GBR,
		"asa":     ASPA,
		"aspa":    ASPA,
		"":        Unknown,
		"invalid": Unknown,
	}
	for in, want := range cases {
		require.Equal(t, want, FromString(in), "input %q", in)
	}
}

func TestObjectType_StringRoundTrip(t *testing.T) {
	for _, ot := range []ObjectType{ROA, MFT, CRL, CER, CERTCA, GBR, ASPA} {
		require.Equal(t, ot, FromString(ot.String()))
	}
	require.Equal(t, "ObjectType(42)", ObjectType(42).String())
}

func TestObjectType_Extension(t *testing.T) {
	require.Equal(t, "roa", ROA.Extension())
	require.Equal(t, "cer", CER.Extension())
	require.Equal(t, "cer", CERTCA.Extension())
	require.Equal(t, "asa", ASPA.Extension())
	require.Equal(t, "der", Unknown.Extension())
}

func TestObjectType_IsPayload(t *testing.T) {
	require.True(t, ROA.IsPayload())
	require.True(t, GBR.IsPayload())
	require.True(t, ASPA.IsPayload())
	require.False(t, MFT.IsPayload())
	require.False(t, CRL.IsPayload())
	require.False(t, CERTCA.IsPayload())
}

func TestClassify_Fixtures(t *testing.T) {
	cases := map[string]struct {
		blob []byte
		want ObjectType
	}{
		"roa":     {testutil.ROA(), ROA},
		"mft":     {testutil.Manifest(), MFT},
		"gbr":     {testutil.SignedObject(testutil.OIDGhostbusters, []byte("BEGIN:VCARD")), GBR},
		"aspa":    {testutil.SignedObject(testutil.OIDASPA, testutil.TLV(0x30)), ASPA},
		"other":   {testutil.SignedObject(testutil.OIDSHA256, testutil.TLV(0x30)), Unknown},
		"ee cert": {testutil.Certificate(false), CER},
		"ca cert": {testutil.Certificate(true), CERTCA},
		"crl":     {testutil.CRL(), CRL},
		"null":    {testutil.BytesFromHex("0500"), Unknown},
		"flat":    {testutil.BytesFromHex("3003 020101"), Unknown},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tree, err := der.Parse(tc.blob, der.DefaultParseOptions())
			require.NoError(t, err)
			require.Equal(t, tc.want, Classify(tree))
		})
	}
}

func TestClassify_WithoutEncapsulation(t *testing.T) {
	opts := der.DefaultParseOptions()
	opts.Encapsulated = false
	tree, err := der.Parse(testutil.Certificate(true), opts)
	require.NoError(t, err)
	require.Equal(t, CERTCA, Classify(tree))
}

func TestExample(t *testing.T) {
	for _, ot := range []ObjectType{ROA, MFT, CRL, CER, CERTCA, GBR, ASPA} {
		t.Run(ot.String(), func(t *testing.T) {
			tree, err := Example(ot)
			require.NoError(t, err)
			require.NoError(t, tree.Verify())
			require.Equal(t, ot.String(), tree.ObjType)
			require.Equal(t, ot, Classify(tree))

			// The encoding parses back to an identical tree.
			reparsed, err := der.Parse(tree.Encode(), der.DefaultParseOptions())
			require.NoError(t, err)
			require.Equal(t, tree.Encode(), reparsed.Encode())
			require.Equal(t, ot, Classify(reparsed))
		})
	}
}

func TestExample_Labels(t *testing.T) {
	tree, err := Example(ROA)
	require.NoError(t, err)

	id, ok := tree.FindLabel("asID")
	require.True(t, ok)
	tok, _ := tree.Lookup(id)
	require.Equal(t, "65000", tok.ContentDisplay())
}

func TestExample_Unknown(t *testing.T) {
	_, err := Example(Unknown)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}
