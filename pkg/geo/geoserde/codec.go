// Package geoserde implements the on-wire codec: a self-describing binary
// grammar for 2-D geometries that tolerates the empty point (including
// nested inside heterogeneous collections) and supports recovering just
// the bounding envelope of a serialized value without materializing its
// vertices. See spec.md §4 for the full grammar this package implements.
package geoserde

import (
	"github.com/cockroachdb/errors"
	"github.com/jagill/presto/pkg/geo/geoadapter"
	"github.com/jagill/presto/pkg/geo/geobytes"
	"github.com/jagill/presto/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
)

// Strategy selects how the BODY of the middle five shape kinds (MultiPoint
// through MultiPolygon) is encoded. spec.md §4.4 permits either, chosen
// once per build profile; this package models that as a constructor
// argument rather than a build tag so both strategies can share test
// coverage.
type Strategy int

const (
	// StrategyNative walks geom.T's own flat coordinate arrays directly.
	// This is the recommended global choice (spec.md §9) and what
	// Default returns.
	StrategyNative Strategy = iota
	// StrategyWKB delegates the body to the WKB bridge in geoadapter.
	StrategyWKB
)

// Codec is a stateless, concurrency-safe implementation of one strategy.
// Construct one with NewCodec or use Default.
type Codec struct {
	strategy Strategy
}

// NewCodec returns a Codec using the given strategy.
func NewCodec(strategy Strategy) *Codec {
	return &Codec{strategy: strategy}
}

// Default returns the codec this module uses everywhere except its own
// cross-strategy conformance tests: native vertex walks, per spec.md §9.
func Default() *Codec {
	return NewCodec(StrategyNative)
}

// Serialize writes g as a fresh, owned byte buffer.
func (c *Codec) Serialize(g geom.T) ([]byte, error) {
	if g == nil {
		return nil, errors.New("geoserde: cannot serialize a nil geometry")
	}
	// An empty GeometryCollection carries geom.NoLayout (stride 0), per the
	// teacher's wkt/lex.go seeding an empty collection's layout that way.
	// Only reject a layout that actually carries a third or fourth
	// ordinate; NoLayout and XY both pass.
	if g.Stride() > 2 {
		return nil, errors.Newf("geoserde: only 2-D geometries are supported, got stride %d", g.Stride())
	}
	shapeType, err := geoadapter.ShapeTypeOf(g)
	if err != nil {
		return nil, err
	}

	w := geobytes.NewWriter()
	w.WriteByte(byte(shapeType))
	if shapeType.HasEnvelopePrefix() {
		writeEnvelope(w, geoadapter.EnvelopeOf(g))
	}
	if err := c.writeGeometryBody(w, shapeType, g); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// SerializeEnvelope writes a bare Envelope record. A top-level empty
// envelope is refused: per spec.md §4.4.1, ENVELOPE records are for
// non-empty bounds only.
func (c *Codec) SerializeEnvelope(e geopb.Envelope) ([]byte, error) {
	if e.IsEmpty() {
		return nil, errors.New("geoserde: cannot serialize an empty envelope as a top-level value")
	}
	w := geobytes.NewWriterWithCapacity(33)
	w.WriteByte(byte(geopb.ShapeTypeEnvelope))
	writeEnvelope(w, e)
	return w.Bytes(), nil
}

// Deserialize fully materializes the geometry encoded in data.
func (c *Codec) Deserialize(data []byte) (geom.T, error) {
	r := geobytes.NewReader(data)
	tagByte, err := r.ReadByte()
	if err != nil {
		return nil, newDecodeError(KindUnexpectedEOF, err, "read tag byte")
	}
	shapeType, err := geopb.ShapeTypeFromByte(tagByte)
	if err != nil {
		return nil, newDecodeError(KindUnknownTag, err, "tag byte %d", tagByte)
	}
	if shapeType.HasEnvelopePrefix() {
		if err := skipEnvelope(r); err != nil {
			return nil, err
		}
	}
	return c.readGeometryBody(r, shapeType, r.Available())
}

// writeGeometryBody writes BODY for shapeType, with no envelope block.
// Shared between top-level Serialize and collection entries.
func (c *Codec) writeGeometryBody(w *geobytes.Writer, shapeType geopb.ShapeType, g geom.T) error {
	switch shapeType {
	case geopb.ShapeTypePoint:
		writePointBody(w, g.(*geom.Point))
		return nil
	case geopb.ShapeTypeGeometryCollection:
		return c.writeCollectionBody(w, g.(*geom.GeometryCollection))
	}

	if c.strategy == StrategyWKB {
		raw, err := geoadapter.EncodeWKBBody(g)
		if err != nil {
			return newDecodeError(KindWkbParseFailed, err, "encode wkb body for %s", shapeType)
		}
		w.AppendBytes(raw)
		return nil
	}

	switch shapeType {
	case geopb.ShapeTypeMultiPoint, geopb.ShapeTypeLineString:
		writeCoordSeq(w, g.FlatCoords())
	case geopb.ShapeTypeMultiLineString:
		writeMultiLineStringBody(w, g.(*geom.MultiLineString))
	case geopb.ShapeTypePolygon:
		writePolygonBody(w, g.(*geom.Polygon))
	case geopb.ShapeTypeMultiPolygon:
		writeMultiPolygonBody(w, g.(*geom.MultiPolygon))
	default:
		return errors.AssertionFailedf("geoserde: unexpected shape type %s in writeGeometryBody", shapeType)
	}
	return nil
}

// readGeometryBody reads BODY for shapeType given a byte budget: at the
// top level the budget is everything left in the input, inside a
// collection entry it is the entry's declared length minus its tag byte.
func (c *Codec) readGeometryBody(r *geobytes.Reader, shapeType geopb.ShapeType, budget int) (geom.T, error) {
	switch shapeType {
	case geopb.ShapeTypePoint:
		return readPointBody(r)
	case geopb.ShapeTypeEnvelope:
		env, err := readEnvelope(r)
		if err != nil {
			return nil, err
		}
		return geoadapter.PolygonFromEnvelope(env), nil
	case geopb.ShapeTypeGeometryCollection:
		return c.readCollectionBody(r)
	}

	if c.strategy == StrategyWKB {
		raw, err := r.SubSlice(r.Position(), budget)
		if err != nil {
			return nil, newDecodeError(KindUnexpectedEOF, err, "wkb body for %s", shapeType)
		}
		if err := r.Skip(budget); err != nil {
			return nil, newDecodeError(KindUnexpectedEOF, err, "skip wkb body for %s", shapeType)
		}
		g, err := geoadapter.DecodeWKBBody(raw)
		if err != nil {
			return nil, newDecodeError(KindWkbParseFailed, err, "decode wkb body for %s", shapeType)
		}
		return g, nil
	}

	switch shapeType {
	case geopb.ShapeTypeMultiPoint:
		return readMultiPointBody(r)
	case geopb.ShapeTypeLineString:
		return readLineStringBody(r)
	case geopb.ShapeTypeMultiLineString:
		return readMultiLineStringBody(r)
	case geopb.ShapeTypePolygon:
		return readPolygonBody(r)
	case geopb.ShapeTypeMultiPolygon:
		return readMultiPolygonBody(r)
	default:
		return nil, errors.AssertionFailedf("geoserde: unexpected shape type %s in readGeometryBody", shapeType)
	}
}

func writePointBody(w *geobytes.Writer, p *geom.Point) {
	x, y := geoadapter.PointXY(p)
	w.WriteF64LE(x)
	w.WriteF64LE(y)
}

func readPointBody(r *geobytes.Reader) (*geom.Point, error) {
	x, err := r.ReadF64LE()
	if err != nil {
		return nil, newDecodeError(KindUnexpectedEOF, err, "read point x")
	}
	y, err := r.ReadF64LE()
	if err != nil {
		return nil, newDecodeError(KindUnexpectedEOF, err, "read point y")
	}
	if isNaN(x) || isNaN(y) {
		return geoadapter.EmptyPoint(), nil
	}
	return geoadapter.NewPointFlat(x, y), nil
}
