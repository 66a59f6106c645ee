package bundle

import (
	"archive/tar"
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/multierr"
)

// FileMode is the permission recorded for every archive entry.
const FileMode = 0o755

// WriteTarGz writes files as a gzip-compressed tar stream, in order.
func WriteTarGz(w io.Writer, files []File) (err error) {
	zw := gzip.NewWriter(w)
	tw := tar.NewWriter(zw)
	defer func() {
		err = multierr.Combine(err, tw.Close(), zw.Close())
	}()

	for _, f := range files {
		hdr := &tar.Header{
			Typeflag: tar.TypeReg,
			Name:     f.Name,
			Size:     int64(len(f.Data)),
			Mode:     FileMode,
			Format:   tar.FormatGNU,
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return fmt.Errorf("tar header %s: %w", f.Name, err)
		}
		if _, err := tw.Write(f.Data); err != nil {
			return fmt.Errorf("tar body %s: %w", f.Name, err)
		}
	}
	return nil
}

// TarGz is WriteTarGz into memory.
func TarGz(files []File) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTarGz(&buf, files); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
