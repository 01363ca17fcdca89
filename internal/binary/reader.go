// Package binary reads big-endian values out of an io.ReaderAt under
// strict bounds checks. Every multi-byte field in an ID3v2 tag or an
// ISO Base Media box is big-endian, so the helpers commit to that order.
package binary

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/simonhull/mediadissect/internal/types"
)

// SafeReader pairs an io.ReaderAt with the known file size so that every
// read is range-checked before it touches the underlying reader. Declared
// sizes in media files come straight from untrusted bytes; the check is
// what keeps a corrupt header from turning into an I/O error deep in a
// decoder.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader wraps r, which holds size readable bytes. The path is
// carried into error values only.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path this reader was opened with.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the readable length in bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt fills b from the given offset. The what argument names the field
// being read and appears in error values. Any range that falls outside
// the file returns *types.OutOfBoundsError.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size || off+int64(len(b)) > sr.size {
		return &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: len(b),
			Size:   sr.size,
		}
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read of %s at offset %d: %d of %d bytes",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// ReadBytes reads length bytes at the given offset into a fresh slice.
// The range is validated before the slice is allocated, so a corrupt
// declared size cannot trigger a huge allocation.
func (sr *SafeReader) ReadBytes(off int64, length int, what string) ([]byte, error) {
	if off < 0 || off >= sr.size || off+int64(length) > sr.size {
		return nil, &types.OutOfBoundsError{
			Path:   sr.path,
			What:   what,
			Offset: off,
			Length: length,
			Size:   sr.size,
		}
	}
	buf := make([]byte, length)
	if err := sr.ReadAt(buf, off, what); err != nil {
		return nil, err
	}
	return buf, nil
}

// Read decodes one big-endian value of type T at the given offset.
// T must be uint8, uint16, uint32, or uint64.
func Read[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string) (T, error) {
	var zero T
	var buf [8]byte
	var n int

	switch any(zero).(type) {
	case uint8:
		n = 1
	case uint16:
		n = 2
	case uint32:
		n = 4
	case uint64:
		n = 8
	}

	if err := sr.ReadAt(buf[:n], off, what); err != nil {
		return zero, err
	}

	switch n {
	case 1:
		return T(buf[0]), nil
	case 2:
		return T(binary.BigEndian.Uint16(buf[:2])), nil
	case 4:
		return T(binary.BigEndian.Uint32(buf[:4])), nil
	default:
		return T(binary.BigEndian.Uint64(buf[:8])), nil
	}
}
