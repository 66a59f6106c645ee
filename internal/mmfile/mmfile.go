// Package mmfile loads object files through a read-only memory mapping.
package mmfile

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// ErrTooLarge is returned by Load for files above the size limit.
var ErrTooLarge = errors.New("mmfile: file too large")

func noop() error { return nil }

// Load maps path, copies out its contents and releases the mapping. A
// positive maxSize rejects larger files before mapping them.
func Load(path string, maxSize int64) (data []byte, err error) {
	if maxSize > 0 {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.Size() > maxSize {
			return nil, fmt.Errorf("%w: %d bytes exceeds %d", ErrTooLarge, info.Size(), maxSize)
		}
	}

	mapped, release, err := Map(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, release())
	}()
	return append([]byte(nil), mapped...), nil
}
