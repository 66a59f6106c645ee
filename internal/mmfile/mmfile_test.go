package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "object.der")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMap(t *testing.T) {
	want := []byte{0x30, 0x03, 0x02, 0x01, 0x05}
	data, release, err := Map(writeFile(t, want))
	require.NoError(t, err)
	require.Equal(t, want, data)
	require.NoError(t, release())
}

func TestMap_Empty(t *testing.T) {
	data, release, err := Map(writeFile(t, nil))
	require.NoError(t, err)
	require.Empty(t, data)
	require.NotNil(t, release)
	require.NoError(t, release())
}

func TestMap_Missing(t *testing.T) {
	_, _, err := Map(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad(t *testing.T) {
	want := []byte("3003020105")
	data, err := Load(writeFile(t, want), 0)
	require.NoError(t, err)
	require.Equal(t, want, data)

	// The copy stays valid after the mapping is gone.
	data[0] = 'x'
	require.Equal(t, byte('x'), data[0])
}

func TestLoad_TooLarge(t *testing.T) {
	_, err := Load(writeFile(t, make([]byte, 16)), 8)
	require.ErrorIs(t, err, ErrTooLarge)

	_, err = Load(writeFile(t, make([]byte, 8)), 8)
	require.NoError(t, err)
}
