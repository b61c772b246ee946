package geobytes

import (
	"encoding/binary"
	"math"
)

// defaultInitialCapacity is the reservation new writers start with. Most
// records are small (a bare Point is 17 bytes); 100 bytes avoids a resize
// for the common case without over-allocating, matching the teacher's
// DynamicSliceOutput default seen upstream in the Presto lineage this
// format is distilled from.
const defaultInitialCapacity = 100

// Writer is a growable little-endian byte buffer with backpatching, used
// to build a serialized record incrementally.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer with the default initial reservation.
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, defaultInitialCapacity)}
}

// NewWriterWithCapacity returns a Writer that reserves capacity bytes up front,
// for callers that can estimate the output size (e.g. a known vertex
// count) and want to avoid intermediate reallocations.
func NewWriterWithCapacity(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Size returns the number of bytes written so far.
func (w *Writer) Size() int {
	return len(w.buf)
}

// Bytes returns the accumulated buffer. The caller takes ownership; the
// Writer must not be used afterward to mutate previously returned bytes
// through WriteByte et al, since append may or may not reuse storage.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(b byte) {
	w.buf = append(w.buf, b)
}

// WriteI32LE appends a little-endian signed 32-bit integer.
func (w *Writer) WriteI32LE(v int32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], uint32(v))
	w.buf = append(w.buf, tmp[:]...)
}

// WriteF64LE appends a little-endian IEEE-754 double.
func (w *Writer) WriteF64LE(v float64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], math.Float64bits(v))
	w.buf = append(w.buf, tmp[:]...)
}

// AppendBytes appends a raw byte slice verbatim, used to splice in a WKB
// body under Strategy B.
func (w *Writer) AppendBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// ReserveI32LE appends a 4-byte placeholder and returns its offset, for a
// length prefix that will be known only after the body that follows it has
// been written.
func (w *Writer) ReserveI32LE() int {
	pos := len(w.buf)
	w.WriteI32LE(0)
	return pos
}

// PatchI32LeAt overwrites the 4 bytes at pos with v, little-endian. pos
// must have come from ReserveI32LE (or otherwise point at 4 live bytes).
func (w *Writer) PatchI32LeAt(pos int, v int32) {
	binary.LittleEndian.PutUint32(w.buf[pos:pos+4], uint32(v))
}
