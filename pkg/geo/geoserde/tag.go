package geoserde

import (
	"math"

	"github.com/jagill/presto/pkg/geo/geobytes"
	"github.com/jagill/presto/pkg/geo/geopb"
)

// GetGeometryType implements P6: the outermost variant of a serialized
// value is recoverable from the first byte alone, with no further parsing.
func GetGeometryType(data []byte) (geopb.ShapeType, error) {
	r := geobytes.NewReader(data)
	tagByte, err := r.ReadByte()
	if err != nil {
		return 0, newDecodeError(KindUnexpectedEOF, err, "read tag byte")
	}
	shapeType, err := geopb.ShapeTypeFromByte(tagByte)
	if err != nil {
		return 0, newDecodeError(KindUnknownTag, err, "tag byte %d", tagByte)
	}
	return shapeType, nil
}

func writeEnvelope(w *geobytes.Writer, e geopb.Envelope) {
	if e.IsEmpty() {
		nan := math.NaN()
		w.WriteF64LE(nan)
		w.WriteF64LE(nan)
		w.WriteF64LE(nan)
		w.WriteF64LE(nan)
		return
	}
	w.WriteF64LE(e.MinX)
	w.WriteF64LE(e.MinY)
	w.WriteF64LE(e.MaxX)
	w.WriteF64LE(e.MaxY)
}

func readEnvelope(r *geobytes.Reader) (geopb.Envelope, error) {
	minX, err := r.ReadF64LE()
	if err != nil {
		return geopb.Envelope{}, newDecodeError(KindUnexpectedEOF, err, "read envelope minX")
	}
	minY, err := r.ReadF64LE()
	if err != nil {
		return geopb.Envelope{}, newDecodeError(KindUnexpectedEOF, err, "read envelope minY")
	}
	maxX, err := r.ReadF64LE()
	if err != nil {
		return geopb.Envelope{}, newDecodeError(KindUnexpectedEOF, err, "read envelope maxX")
	}
	maxY, err := r.ReadF64LE()
	if err != nil {
		return geopb.Envelope{}, newDecodeError(KindUnexpectedEOF, err, "read envelope maxY")
	}
	if isNaN(minX) || isNaN(minY) || isNaN(maxX) || isNaN(maxY) {
		return geopb.EmptyEnvelope(), nil
	}
	return geopb.NewEnvelope(minX, minY, maxX, maxY), nil
}

func skipEnvelope(r *geobytes.Reader) error {
	if err := r.Skip(32); err != nil {
		return newDecodeError(KindUnexpectedEOF, err, "skip envelope")
	}
	return nil
}

func isNaN(f float64) bool {
	return f != f
}
