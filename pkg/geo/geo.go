// Package geo is the umbrella for the planar geometry wire format and its
// supporting subpackages:
//   - geo/geopb holds the dependency-free value types the format is built
//     from: Envelope and the closed set of ShapeType tags.
//   - geo/geobytes is the little-endian byte cursor the codec reads and
//     writes through.
//   - geo/geoadapter bridges the codec to a concrete geometry object
//     model, github.com/twpayne/go-geom.
//   - geo/geoserde implements the wire grammar itself: Serialize,
//     Deserialize, and the envelope-only fast path.
//   - geo/geoextent implements ST_Extent, the envelope-union reduction
//     over a stream of serialized geometries.
package geo
