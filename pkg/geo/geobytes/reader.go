// Package geobytes provides the little-endian byte cursor the codec builds
// on: a read-only scoped view with random-access seek for the full decoder,
// and a growable writer with backpatching for length-prefixed records.
package geobytes

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrUnexpectedEOF is returned (wrapped) whenever a read would run past the
// end of the underlying slice.
var ErrUnexpectedEOF = errors.New("geobytes: unexpected end of input")

// Reader is a scoped, read-only view over a byte slice plus a mutable
// cursor position. It never copies the underlying slice.
type Reader struct {
	data []byte
	pos  int
}

// NewReader wraps data for sequential or random-access reading starting at
// position 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Available returns the number of unread bytes.
func (r *Reader) Available() int {
	return len(r.data) - r.pos
}

// Position returns the current cursor offset.
func (r *Reader) Position() int {
	return r.pos
}

// Seek moves the cursor to an absolute offset. It does not validate that
// pos is in range; the next read will fail if it is not.
func (r *Reader) Seek(pos int) {
	r.pos = pos
}

// Skip advances the cursor by n bytes without reading them.
func (r *Reader) Skip(n int) error {
	if n < 0 || n > r.Available() {
		return errors.Wrapf(ErrUnexpectedEOF, "skip %d bytes at offset %d", n, r.pos)
	}
	r.pos += n
	return nil
}

// ReadByte reads a single byte and advances the cursor.
func (r *Reader) ReadByte() (byte, error) {
	if r.Available() < 1 {
		return 0, errors.Wrapf(ErrUnexpectedEOF, "read byte at offset %d", r.pos)
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadI32LE reads a little-endian signed 32-bit integer and advances the
// cursor.
func (r *Reader) ReadI32LE() (int32, error) {
	if r.Available() < 4 {
		return 0, errors.Wrapf(ErrUnexpectedEOF, "read int32 at offset %d", r.pos)
	}
	v := int32(binary.LittleEndian.Uint32(r.data[r.pos : r.pos+4]))
	r.pos += 4
	return v, nil
}

// ReadF64LE reads a little-endian IEEE-754 double and advances the cursor.
func (r *Reader) ReadF64LE() (float64, error) {
	if r.Available() < 8 {
		return 0, errors.Wrapf(ErrUnexpectedEOF, "read float64 at offset %d", r.pos)
	}
	bits := binary.LittleEndian.Uint64(r.data[r.pos : r.pos+8])
	r.pos += 8
	return math.Float64frombits(bits), nil
}

// SubSlice returns the length bytes starting at pos without copying and
// without moving the cursor. Callers that want to also consume those
// bytes must Skip separately.
func (r *Reader) SubSlice(pos, length int) ([]byte, error) {
	if pos < 0 || length < 0 || pos+length > len(r.data) {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "subslice [%d:%d] of %d bytes", pos, pos+length, len(r.data))
	}
	return r.data[pos : pos+length], nil
}
