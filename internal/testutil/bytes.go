// Package testutil holds helpers shared by derkit tests.
package testutil

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// BytesFromHex converts a hexadecimal string to a byte slice.
// The octets must be written as upper case.
// All characters other than [0-9A-F] are considered as comments and stripped.
func BytesFromHex(input string) []byte {
	s := strings.Map(func(ch rune) rune {
		if strings.ContainsRune("0123456789ABCDEF", ch) {
			return ch
		}
		return -1
	}, input)
	decoded, e := hex.DecodeString(s)
	if e != nil {
		panic(fmt.Errorf("hex.DecodeString error %w", e))
	}
	return decoded
}

// TLV builds one definite-length element from an identifier byte and the
// concatenation of content.
func TLV(tag byte, content ...[]byte) []byte {
	var c []byte
	for _, part := range content {
		c = append(c, part...)
	}
	b := []byte{tag}
	switch n := len(c); {
	case n < 0x80:
		b = append(b, byte(n))
	case n <= 0xFF:
		b = append(b, 0x81, byte(n))
	case n <= 0xFFFF:
		b = append(b, 0x82, byte(n>>8), byte(n))
	default:
		b = append(b, 0x83, byte(n>>16), byte(n>>8), byte(n))
	}
	return append(b, c...)
}

// WriteTempFile writes data to name inside a per-test temporary directory and
// returns the path. Calls t.Fatal if the write fails.
//
// Example:
//
//	path := testutil.WriteTempFile(t, "object.roa", testutil.ROA())
func WriteTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}
