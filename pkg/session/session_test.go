package session

import (
	"archive/tar"
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/derkit/der"
	"github.com/joshuapare/derkit/der/edit"
	"github.com/joshuapare/derkit/der/printer"
	"github.com/joshuapare/derkit/internal/testutil"
	"github.com/joshuapare/derkit/pkg/bundle"
	"github.com/joshuapare/derkit/pkg/rpki"
	"github.com/joshuapare/derkit/pkg/types"
)

func mustNew(t *testing.T, data string, opts ...Option) *State {
	t.Helper()
	s, err := New(data, opts...)
	require.NoError(t, err)
	return s
}

func TestNew_Encodings(t *testing.T) {
	want := []byte{0x30, 0x03, 0x02, 0x01, 0x05}
	for _, in := range []string{
		"3003020105",
		"0x3003020105",
		"  3003020105\n",
		"MAMCAQU=",
	} {
		s := mustNew(t, in)
		require.Equal(t, want, s.ExportBin(), "input %q", in)
	}
}

func TestNew_Invalid(t *testing.T) {
	for _, in := range []string{"", "zz", "303", "0x", "MAMCAQU"} {
		_, err := New(in)
		require.ErrorIs(t, err, types.ErrInvalidInput, "input %q", in)
	}
}

func TestNew_ParseFailure(t *testing.T) {
	_, err := New("3005020105")
	require.ErrorIs(t, err, types.ErrInvalidInput)
	require.ErrorIs(t, err, der.ErrIncomplete)
}

func TestNew_Limits(t *testing.T) {
	_, err := New(hex.EncodeToString(testutil.ROA()), WithLimits(types.Limits{MaxTreeDepth: 2, MaxNodes: 1000, MaxInputSize: 1 << 20}))
	require.ErrorIs(t, err, der.ErrDepth)
}

func TestNew_ObjectType(t *testing.T) {
	roa := hex.EncodeToString(testutil.ROA())
	require.Equal(t, rpki.ROA, mustNew(t, roa).ObjectType())
	require.Equal(t, rpki.MFT, mustNew(t, roa, WithObjectType(rpki.MFT)).ObjectType())
	require.Equal(t, rpki.Unknown, mustNew(t, "0500").ObjectType())

	s := mustNew(t, "0500")
	s.SetObjectType(rpki.GBR)
	require.Equal(t, rpki.GBR, s.ObjectType())
}

func TestNew_WithoutEncapsulation(t *testing.T) {
	roa := hex.EncodeToString(testutil.ROA())
	full := mustNew(t, roa)
	flat := mustNew(t, roa, WithEncapsulated(false))
	require.Greater(t, full.Tree().Len(), flat.Tree().Len())
	require.Equal(t, full.ExportBin(), flat.ExportBin())
}

func TestState_Edits(t *testing.T) {
	s := mustNew(t, "3003020105")

	require.NoError(t, s.AdaptNodeContent(1, "6"))
	require.Equal(t, testutil.BytesFromHex("3003 020106"), s.ExportBin())

	id, err := s.AddNode(0x05, "", 0, "nothing")
	require.NoError(t, err)
	require.Equal(t, testutil.BytesFromHex("3005 020106 0500"), s.ExportBin())

	require.NoError(t, s.DragNode(id, 0, 0))
	require.Equal(t, testutil.BytesFromHex("3005 0500 020106"), s.ExportBin())

	require.NoError(t, s.AdaptNodeLabel(1, "version"))
	got, ok := s.Tree().FindLabel("version")
	require.True(t, ok)
	require.Equal(t, types.NodeID(1), got)

	require.NoError(t, s.RemoveNode(id))
	require.Equal(t, testutil.BytesFromHex("3003 020106"), s.ExportBin())

	require.NoError(t, s.AdaptNodeTag(1, 0x0A))
	require.NoError(t, s.AdaptNodeLength(0, 9))
	require.Equal(t, testutil.BytesFromHex("3009 0A0106"), s.ExportBin())
}

func TestState_EditErrors(t *testing.T) {
	s := mustNew(t, "3003020105")
	before := s.ExportBin()

	require.ErrorIs(t, s.AdaptNodeContent(9, "1"), types.ErrUnknownNode)
	require.ErrorIs(t, s.AdaptNodeContent(1, "x"), types.ErrEncoding)
	_, err := s.AddNode(0x02, "1", 7, "")
	require.ErrorIs(t, err, types.ErrUnknownNode)
	require.ErrorIs(t, s.RemoveNode(0), edit.ErrCannotRemoveRoot)
	require.NotErrorIs(t, s.RemoveNode(0), edit.ErrCannotMoveRoot)
	require.ErrorIs(t, s.DragNode(0, 1, 0), edit.ErrCannotMoveRoot)
	require.NotErrorIs(t, s.DragNode(0, 1, 0), edit.ErrCycle)
	require.ErrorIs(t, s.AdaptNodeLength(1, -1), edit.ErrNegativeLength)
	require.NotErrorIs(t, s.AdaptNodeLength(1, -1), edit.ErrIndexOutOfRange)

	require.Equal(t, before, s.ExportBin())
}

func TestState_Nodes(t *testing.T) {
	s := mustNew(t, "3003020105")
	blob, err := s.Nodes()
	require.NoError(t, err)

	var nodes []printer.Node
	require.NoError(t, json.Unmarshal([]byte(blob), &nodes))
	require.Len(t, nodes, 2)
	require.Equal(t, "5", nodes[1].Content.Display)

	require.Len(t, s.Preview(1), 1)
}

func TestState_ExportBase64(t *testing.T) {
	require.Equal(t, "MAMCAQU=", mustNew(t, "3003020105").ExportBase64())
}

func TestStore_RoundTrip(t *testing.T) {
	s, err := LoadExample(rpki.ROA)
	require.NoError(t, err)
	require.NoError(t, s.AdaptNodeLength(0, 3))
	require.NoError(t, s.AdaptNodeTag(1, 0x13))

	blob, err := s.EncodeStore()
	require.NoError(t, err)
	require.Contains(t, blob, `"version":1`)

	back, err := FromStored(blob)
	require.NoError(t, err)
	require.Equal(t, s.ExportBin(), back.ExportBin())
	require.Equal(t, rpki.ROA, back.ObjectType())

	id, ok := back.Tree().FindLabel("asID")
	require.True(t, ok)
	require.NoError(t, back.AdaptNodeContent(id, "64512"))
	require.NoError(t, back.Tree().Verify())
}

func TestStore_Rejects(t *testing.T) {
	s := mustNew(t, "3003020105")
	good, err := s.EncodeStore()
	require.NoError(t, err)

	cases := map[string]string{
		"garbage":     "not json",
		"empty":       "{}",
		"version":     strings.Replace(good, `"version":1`, `"version":2`, 1),
		"no tree":     `{"version":1}`,
		"bad tag":     strings.Replace(good, `"tag":"MA=="`, `"tag":"!!"`, 1),
		"null tokens": `{"version":1,"tree":{"tokens":null,"root_id":0,"labels":{},"next_id":1}}`,
	}
	for name, blob := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromStored(blob)
			require.ErrorIs(t, err, types.ErrSerialization)
		})
	}
}

func TestStore_RejectsInconsistentTree(t *testing.T) {
	s := mustNew(t, "3003020105")
	s.Tree().Tokens[1].Parent = 7
	blob, err := s.EncodeStore()
	require.NoError(t, err)

	_, err = FromStored(blob)
	require.ErrorIs(t, err, types.ErrSerialization)
	require.ErrorIs(t, err, der.ErrCorrupt)
}

func TestOpen(t *testing.T) {
	blob := testutil.ROA()
	for name, data := range map[string][]byte{
		"binary": blob,
		"hex":    []byte(hex.EncodeToString(blob) + "\n"),
	} {
		t.Run(name, func(t *testing.T) {
			s, err := Open(testutil.WriteTempFile(t, "object.roa", data))
			require.NoError(t, err)
			require.Equal(t, blob, s.ExportBin())
			require.Equal(t, rpki.ROA, s.ObjectType())
		})
	}

	_, err := Open(filepath.Join(t.TempDir(), "missing.roa"))
	require.ErrorIs(t, err, types.ErrInvalidInput)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadExample(t *testing.T) {
	s, err := LoadExample(rpki.CERTCA)
	require.NoError(t, err)
	require.Equal(t, rpki.CERTCA, s.ObjectType())

	_, err = LoadExample(rpki.Unknown)
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestRepositorify(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ta.tal"), []byte("rsync://localhost/ta.cer\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ta.cer"), testutil.Certificate(true), 0o644))

	s := mustNew(t, hex.EncodeToString(testutil.ROA()))
	out, err := s.Repositorify(context.Background(), bundle.TemplateBuilder{Dir: dir})
	require.NoError(t, err)

	zr, err := gzip.NewReader(bytes.NewReader(out))
	require.NoError(t, err)
	tr := tar.NewReader(zr)

	var names []string
	var object []byte
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		require.Equal(t, int64(bundle.FileMode), hdr.Mode)
		names = append(names, hdr.Name)
		if len(names) == 1 {
			object, err = io.ReadAll(tr)
			require.NoError(t, err)
		}
	}
	require.Len(t, names, 3)
	require.True(t, strings.HasSuffix(names[0], ".roa"), names[0])
	require.Equal(t, []string{"ta.tal", "data/repo/ta/ta.cer"}, names[1:])
	require.Equal(t, s.ExportBin(), object)
}

type failingBuilder struct{}

func (failingBuilder) Build(context.Context, bundle.Object) (*bundle.Repository, error) {
	return nil, errors.New("no signer")
}

func TestRepositorify_BuilderError(t *testing.T) {
	s := mustNew(t, "0500")
	_, err := s.Repositorify(context.Background(), failingBuilder{})
	require.EqualError(t, err, "no signer")
}
