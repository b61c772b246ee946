package geoserde

import (
	"github.com/jagill/presto/pkg/geo/geobytes"
	"github.com/jagill/presto/pkg/geo/geopb"
)

// DeserializeEnvelope is the fast path (spec.md §4.4.3): it recovers only
// the bounding envelope of a serialized value, in O(1) time regardless of
// vertex count, and never parses or validates the body. It does not
// depend on which Strategy produced the bytes, since the BOUNDS block is
// written identically by both.
func DeserializeEnvelope(data []byte) (geopb.Envelope, error) {
	r := geobytes.NewReader(data)
	tagByte, err := r.ReadByte()
	if err != nil {
		return geopb.Envelope{}, newDecodeError(KindUnexpectedEOF, err, "read tag byte")
	}
	shapeType, err := geopb.ShapeTypeFromByte(tagByte)
	if err != nil {
		return geopb.Envelope{}, newDecodeError(KindUnknownTag, err, "tag byte %d", tagByte)
	}

	switch shapeType {
	case geopb.ShapeTypePoint:
		x, err := r.ReadF64LE()
		if err != nil {
			return geopb.Envelope{}, newDecodeError(KindUnexpectedEOF, err, "read point x")
		}
		y, err := r.ReadF64LE()
		if err != nil {
			return geopb.Envelope{}, newDecodeError(KindUnexpectedEOF, err, "read point y")
		}
		return geopb.Point(x, y), nil
	default:
		// Every other tag, including ENVELOPE itself, carries BOUNDS as
		// the next 32 bytes. The rest of the record, whatever it is, is
		// never touched.
		return readEnvelope(r)
	}
}
