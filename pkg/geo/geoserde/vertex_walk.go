package geoserde

import (
	"github.com/jagill/presto/pkg/geo/geoadapter"
	"github.com/jagill/presto/pkg/geo/geobytes"
	"github.com/twpayne/go-geom"
)

// writeCoordSeq writes a COORD_SEQ: a count followed by that many XY
// pairs, shared by MultiPoint, LineString, and each ring of a Polygon.
func writeCoordSeq(w *geobytes.Writer, flatCoords []float64) {
	w.WriteI32LE(int32(len(flatCoords) / 2))
	for _, c := range flatCoords {
		w.WriteF64LE(c)
	}
}

func readCoordSeq(r *geobytes.Reader) ([]float64, error) {
	n, err := r.ReadI32LE()
	if err != nil {
		return nil, newDecodeError(KindUnexpectedEOF, err, "read coord seq count")
	}
	if n < 0 {
		return nil, newDecodeError(KindUnexpectedEOF, nil, "negative coord seq count %d", n)
	}
	coords := make([]float64, int(n)*2)
	for i := range coords {
		v, err := r.ReadF64LE()
		if err != nil {
			return nil, newDecodeError(KindUnexpectedEOF, err, "read coord seq ordinate %d", i)
		}
		coords[i] = v
	}
	return coords, nil
}

func readMultiPointBody(r *geobytes.Reader) (*geom.MultiPoint, error) {
	coords, err := readCoordSeq(r)
	if err != nil {
		return nil, err
	}
	return geoadapter.NewMultiPointFlat(coords), nil
}

func readLineStringBody(r *geobytes.Reader) (*geom.LineString, error) {
	coords, err := readCoordSeq(r)
	if err != nil {
		return nil, err
	}
	return geoadapter.NewLineStringFlat(coords), nil
}

func writeMultiLineStringBody(w *geobytes.Writer, mls *geom.MultiLineString) {
	flat := mls.FlatCoords()
	ends := mls.Ends()
	w.WriteI32LE(int32(len(ends)))
	cursor := 0
	for _, end := range ends {
		writeCoordSeq(w, flat[cursor:end])
		cursor = end
	}
}

func readMultiLineStringBody(r *geobytes.Reader) (*geom.MultiLineString, error) {
	numLines, err := r.ReadI32LE()
	if err != nil {
		return nil, newDecodeError(KindUnexpectedEOF, err, "read multilinestring count")
	}
	var flat []float64
	ends := make([]int, 0, numLines)
	for i := int32(0); i < numLines; i++ {
		coords, err := readCoordSeq(r)
		if err != nil {
			return nil, err
		}
		flat = append(flat, coords...)
		ends = append(ends, len(flat))
	}
	return geoadapter.NewMultiLineStringFlat(flat, ends), nil
}

// writeRingBody writes RING_BODY for the ring group flat[start:ends[last]]:
// the exterior ring's COORD_SEQ, the interior ring count, then each
// interior ring's COORD_SEQ. It returns ends[last], the cursor into flat
// where the next ring group (the next polygon, for MultiPolygon) begins.
func writeRingBody(w *geobytes.Writer, flat []float64, ends []int, start int) int {
	writeCoordSeq(w, flat[start:ends[0]])
	w.WriteI32LE(int32(len(ends) - 1))
	cursor := ends[0]
	for _, end := range ends[1:] {
		writeCoordSeq(w, flat[cursor:end])
		cursor = end
	}
	return cursor
}

// readRingBody reads one polygon's RING_BODY and returns its flat
// coordinates (rebased to start at 0) along with the cumulative end
// offset of each ring within that local slice.
func readRingBody(r *geobytes.Reader) (flat []float64, ends []int, err error) {
	exterior, err := readCoordSeq(r)
	if err != nil {
		return nil, nil, err
	}
	flat = append(flat, exterior...)
	ends = append(ends, len(flat))

	numInterior, err := r.ReadI32LE()
	if err != nil {
		return nil, nil, newDecodeError(KindUnexpectedEOF, err, "read interior ring count")
	}
	for i := int32(0); i < numInterior; i++ {
		ring, err := readCoordSeq(r)
		if err != nil {
			return nil, nil, err
		}
		flat = append(flat, ring...)
		ends = append(ends, len(flat))
	}
	return flat, ends, nil
}

func writePolygonBody(w *geobytes.Writer, p *geom.Polygon) {
	writeRingBody(w, p.FlatCoords(), p.Ends(), 0)
}

func readPolygonBody(r *geobytes.Reader) (*geom.Polygon, error) {
	flat, ends, err := readRingBody(r)
	if err != nil {
		return nil, err
	}
	return geoadapter.NewPolygonFlat(flat, ends), nil
}

func writeMultiPolygonBody(w *geobytes.Writer, mp *geom.MultiPolygon) {
	flat := mp.FlatCoords()
	endss := mp.Endss()
	w.WriteI32LE(int32(len(endss)))
	cursor := 0
	for _, ends := range endss {
		cursor = writeRingBody(w, flat, ends, cursor)
	}
}

func readMultiPolygonBody(r *geobytes.Reader) (*geom.MultiPolygon, error) {
	numPolygons, err := r.ReadI32LE()
	if err != nil {
		return nil, newDecodeError(KindUnexpectedEOF, err, "read multipolygon count")
	}
	var flat []float64
	endss := make([][]int, 0, numPolygons)
	for i := int32(0); i < numPolygons; i++ {
		ringFlat, localEnds, err := readRingBody(r)
		if err != nil {
			return nil, err
		}
		offset := len(flat)
		flat = append(flat, ringFlat...)
		globalEnds := make([]int, len(localEnds))
		for j, e := range localEnds {
			globalEnds[j] = e + offset
		}
		endss = append(endss, globalEnds)
	}
	return geoadapter.NewMultiPolygonFlat(flat, endss), nil
}
