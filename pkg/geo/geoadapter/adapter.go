// Package geoadapter is the thin bridge between the wire codec in
// geoserde and a real geometry object model, github.com/twpayne/go-geom.
// It is the concrete implementation of the capability surface geoserde
// needs and nothing else: classification, vertex access, construction, and
// envelope computation. Topology, validity, and computational geometry are
// out of scope here, same as they are for the codec itself.
package geoadapter

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/jagill/presto/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
)

// layout is fixed: the format is 2-D XY only, never M/Z.
var layout = geom.XY

// ShapeTypeOf classifies g into one of the eight wire variants.
func ShapeTypeOf(g geom.T) (geopb.ShapeType, error) {
	switch g.(type) {
	case *geom.Point:
		return geopb.ShapeTypePoint, nil
	case *geom.MultiPoint:
		return geopb.ShapeTypeMultiPoint, nil
	case *geom.LineString:
		return geopb.ShapeTypeLineString, nil
	case *geom.MultiLineString:
		return geopb.ShapeTypeMultiLineString, nil
	case *geom.Polygon:
		return geopb.ShapeTypePolygon, nil
	case *geom.MultiPolygon:
		return geopb.ShapeTypeMultiPolygon, nil
	case *geom.GeometryCollection:
		return geopb.ShapeTypeGeometryCollection, nil
	default:
		return 0, errors.Newf("geoadapter: unsupported geometry type %T", g)
	}
}

// EmptyPoint returns the sentinel empty point: a *geom.Point whose
// coordinates are NaN. go-geom's own "empty" point (zero-length
// FlatCoords) does not carry ordinates to write, so the codec uses this
// NaN-coordinate form as the one representation that survives the wire
// format's POINT_REC grammar.
func EmptyPoint() *geom.Point {
	return geom.NewPointFlat(layout, []float64{math.NaN(), math.NaN()})
}

// IsEmptyPoint reports whether p is the empty point, by the same NaN rule
// used everywhere else in the format.
func IsEmptyPoint(p *geom.Point) bool {
	c := p.FlatCoords()
	if len(c) < 2 {
		return true
	}
	return math.IsNaN(c[0]) || math.IsNaN(c[1])
}

// PointXY returns the coordinates of a Point, tolerating go-geom's
// zero-length "empty" representation by reporting NaN for it too.
func PointXY(p *geom.Point) (x, y float64) {
	c := p.FlatCoords()
	if len(c) < 2 {
		return math.NaN(), math.NaN()
	}
	return c[0], c[1]
}

// EnvelopeOf computes the bounding envelope of g in a single pass over its
// flat coordinates, per spec: the write path must compute the envelope
// once and must not walk the body a second time to do it.
func EnvelopeOf(g geom.T) geopb.Envelope {
	switch g := g.(type) {
	case *geom.Point:
		x, y := PointXY(g)
		return geopb.Point(x, y)
	case *geom.GeometryCollection:
		env := geopb.EmptyEnvelope()
		for i := 0; i < g.NumGeoms(); i++ {
			env = env.Extend(EnvelopeOf(g.Geom(i)))
		}
		return env
	default:
		return envelopeOfFlatCoords(g.FlatCoords(), g.Stride())
	}
}

func envelopeOfFlatCoords(coords []float64, stride int) geopb.Envelope {
	if len(coords) == 0 {
		return geopb.EmptyEnvelope()
	}
	minX, minY := coords[0], coords[1]
	maxX, maxY := minX, minY
	for i := stride; i < len(coords); i += stride {
		x, y := coords[i], coords[i+1]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	return geopb.NewEnvelope(minX, minY, maxX, maxY)
}

// FlatCoordsOf returns the raw XY pairs backing a MultiPoint or LineString.
func FlatCoordsOf(g geom.T) []float64 {
	return g.FlatCoords()
}

// RingEndsOf returns the cumulative flat-array offsets marking the end of
// each ring of a Polygon (first entry is the exterior ring) or each
// component LineString of a MultiLineString.
func RingEndsOf(g geom.T) ([]int, error) {
	switch g := g.(type) {
	case *geom.Polygon:
		return g.Ends(), nil
	case *geom.MultiLineString:
		return g.Ends(), nil
	default:
		return nil, errors.Newf("geoadapter: %T has no ring ends", g)
	}
}

// PolygonEndsOf returns the per-polygon ring-end offsets of a MultiPolygon.
func PolygonEndsOf(mp *geom.MultiPolygon) [][]int {
	return mp.Endss()
}

// ChildrenOf returns the children of a GeometryCollection in order.
func ChildrenOf(gc *geom.GeometryCollection) []geom.T {
	children := make([]geom.T, gc.NumGeoms())
	for i := range children {
		children[i] = gc.Geom(i)
	}
	return children
}

// NewPointFlat constructs a Point from a single XY pair. Use EmptyPoint
// for the empty case.
func NewPointFlat(x, y float64) *geom.Point {
	return geom.NewPointFlat(layout, []float64{x, y})
}

// NewMultiPointFlat constructs a MultiPoint from flat XY pairs.
func NewMultiPointFlat(flatCoords []float64) *geom.MultiPoint {
	return geom.NewMultiPointFlat(layout, flatCoords)
}

// NewLineStringFlat constructs a LineString from flat XY pairs.
func NewLineStringFlat(flatCoords []float64) *geom.LineString {
	return geom.NewLineStringFlat(layout, flatCoords)
}

// NewMultiLineStringFlat constructs a MultiLineString from flat XY pairs
// and the cumulative end offset of each component LineString.
func NewMultiLineStringFlat(flatCoords []float64, ends []int) *geom.MultiLineString {
	return geom.NewMultiLineStringFlat(layout, flatCoords, ends)
}

// NewPolygonFlat constructs a Polygon from flat XY pairs and the
// cumulative end offset of each ring (exterior ring first).
func NewPolygonFlat(flatCoords []float64, ends []int) *geom.Polygon {
	return geom.NewPolygonFlat(layout, flatCoords, ends)
}

// NewMultiPolygonFlat constructs a MultiPolygon from flat XY pairs and the
// per-polygon ring-end offsets.
func NewMultiPolygonFlat(flatCoords []float64, endss [][]int) *geom.MultiPolygon {
	return geom.NewMultiPolygonFlat(layout, flatCoords, endss)
}

// NewCollection constructs a GeometryCollection from its children, in
// order. A nil or empty slice yields GEOMETRYCOLLECTION EMPTY.
func NewCollection(children []geom.T) (*geom.GeometryCollection, error) {
	gc := geom.NewGeometryCollection()
	for _, child := range children {
		if err := gc.Push(child); err != nil {
			return nil, errors.Wrap(err, "geoadapter: push collection child")
		}
	}
	return gc, nil
}

// PolygonFromEnvelope synthesizes the five-vertex closed-rectangle exterior
// ring a bare Envelope record decodes to. An empty envelope synthesizes an
// empty polygon.
func PolygonFromEnvelope(e geopb.Envelope) *geom.Polygon {
	if e.IsEmpty() {
		return geom.NewPolygon(layout)
	}
	flat := []float64{
		e.MinX, e.MinY,
		e.MaxX, e.MinY,
		e.MaxX, e.MaxY,
		e.MinX, e.MaxY,
		e.MinX, e.MinY,
	}
	return NewPolygonFlat(flat, []int{len(flat)})
}
