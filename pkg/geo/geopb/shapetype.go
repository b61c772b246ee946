package geopb

import "github.com/cockroachdb/errors"

// ShapeType is the closed set of on-wire type tags. The numbering is fixed
// at the first byte of every serialized record and must never be
// renumbered once chosen.
type ShapeType byte

// The eight serialization discriminators. Numbering is arbitrary but
// permanent.
const (
	ShapeTypePoint ShapeType = iota
	ShapeTypeMultiPoint
	ShapeTypeLineString
	ShapeTypeMultiLineString
	ShapeTypePolygon
	ShapeTypeMultiPolygon
	ShapeTypeGeometryCollection
	ShapeTypeEnvelope
)

// String implements fmt.Stringer for debug output and error messages.
func (t ShapeType) String() string {
	switch t {
	case ShapeTypePoint:
		return "Point"
	case ShapeTypeMultiPoint:
		return "MultiPoint"
	case ShapeTypeLineString:
		return "LineString"
	case ShapeTypeMultiLineString:
		return "MultiLineString"
	case ShapeTypePolygon:
		return "Polygon"
	case ShapeTypeMultiPolygon:
		return "MultiPolygon"
	case ShapeTypeGeometryCollection:
		return "GeometryCollection"
	case ShapeTypeEnvelope:
		return "Envelope"
	default:
		return "Unknown"
	}
}

// HasEnvelopePrefix reports whether records of this shape carry the 32-byte
// BOUNDS block immediately after the tag byte. Only Point and Envelope
// itself do not.
func (t ShapeType) HasEnvelopePrefix() bool {
	return t != ShapeTypePoint && t != ShapeTypeEnvelope
}

// ShapeTypeFromByte validates a raw tag byte read off the wire.
func ShapeTypeFromByte(b byte) (ShapeType, error) {
	t := ShapeType(b)
	switch t {
	case ShapeTypePoint, ShapeTypeMultiPoint, ShapeTypeLineString,
		ShapeTypeMultiLineString, ShapeTypePolygon, ShapeTypeMultiPolygon,
		ShapeTypeGeometryCollection, ShapeTypeEnvelope:
		return t, nil
	default:
		return 0, errors.Newf("geopb: unknown shape type code %d", b)
	}
}
