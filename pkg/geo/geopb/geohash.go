package geopb

import (
	"github.com/cockroachdb/errors"
	"github.com/pierrre/geohash"
)

// GeoHashAutoPrecision means to calculate the precision of GeoHash based on
// the envelope's size, up to GeoHashMaxPrecision. Mirrors the teacher's
// SpatialObjectToGeoHash auto-precision convention.
const GeoHashAutoPrecision = 0

// GeoHashMaxPrecision is the maximum precision accepted by GeoHash. 20 is
// picked the same way the teacher picks it: doubles carry 51 bits of
// mantissa, each base32 digit carries 5 bits, and there are two bounds
// (lat and lng) packed into the hash, so floor((2*51)/5) = 20.
const GeoHashMaxPrecision = 20

// GeoHash renders the envelope's center as a geohash string, a debug/
// inspection helper over the fast envelope-only decode path: spatial
// pruning only needs the envelope, and a geohash is a human-legible summary
// of one. An empty envelope or one outside the lat/lng domain is an error,
// since the geohash grid only covers [-180,180]x[-90,90].
func (e Envelope) GeoHash(precision int) (string, error) {
	if e.IsEmpty() {
		return "", errors.New("geopb: cannot geohash an empty envelope")
	}
	if e.MinX < -180 || e.MaxX > 180 || e.MinY < -90 || e.MaxY > 90 {
		return "", errors.Newf(
			"geopb: envelope (%f %f, %f %f) exceeds lat/lng bounds",
			e.MinX, e.MinY, e.MaxX, e.MaxY,
		)
	}
	if precision <= GeoHashAutoPrecision {
		precision = precisionForEnvelope(e)
	}
	if precision > GeoHashMaxPrecision {
		precision = GeoHashMaxPrecision
	}
	centerLng := e.MinX + (e.MaxX-e.MinX)/2.0
	centerLat := e.MinY + (e.MaxY-e.MinY)/2.0
	return geohash.Encode(centerLat, centerLng, precision), nil
}

// precisionForEnvelope imitates PostGIS/Presto's ability to derive a
// geohash precision from a bounding box by halving the world bounding box
// until it intersects the envelope, same algorithm as the teacher's
// getPrecisionForBBox.
func precisionForEnvelope(e Envelope) int {
	if e.MinX == e.MaxX && e.MinY == e.MaxY {
		return GeoHashMaxPrecision
	}

	lonMin, lonMax := -180.0, 180.0
	latMin, latMax := -90.0, 90.0
	bitPrecision := 0

	for {
		lonWidth := lonMax - lonMin
		latWidth := latMax - latMin
		var latMaxDelta, lonMaxDelta, latMinDelta, lonMinDelta float64

		if e.MinX > lonMin+lonWidth/2.0 {
			lonMinDelta = lonWidth / 2.0
		} else if e.MaxX < lonMax-lonWidth/2.0 {
			lonMaxDelta = lonWidth / -2.0
		}
		if e.MinY > latMin+latWidth/2.0 {
			latMinDelta = latWidth / 2.0
		} else if e.MaxY < latMax-latWidth/2.0 {
			latMaxDelta = latWidth / -2.0
		}

		precisionDelta := 0
		if lonMinDelta != 0.0 || lonMaxDelta != 0.0 {
			lonMin += lonMinDelta
			lonMax += lonMaxDelta
			precisionDelta++
		} else {
			break
		}
		if latMinDelta != 0.0 || latMaxDelta != 0.0 {
			latMin += latMinDelta
			latMax += latMaxDelta
			precisionDelta++
		} else {
			break
		}
		bitPrecision += precisionDelta
	}
	return bitPrecision / 5
}
