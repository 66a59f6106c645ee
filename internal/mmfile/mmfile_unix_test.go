//go:build unix

package mmfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap_DoubleRelease(t *testing.T) {
	data, release, err := Map(writeFile(t, []byte{0xde, 0xad, 0xbe, 0xef}))
	require.NoError(t, err)
	require.Len(t, data, 4)
	require.NoError(t, release())
	require.NoError(t, release())
}
