//go:build !unix

package mmfile

import "os"

// Map reads the whole file where mmap is not used.
func Map(path string) ([]byte, func() error, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, noop, err
	}
	return data, noop, nil
}
