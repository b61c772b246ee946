package geoadapter

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkb"
)

// EncodeWKBBody renders g as little-endian WKB, for Strategy B's BODY of
// the middle five shape kinds (MultiPoint through MultiPolygon). The
// resulting bytes are a complete WKB record (including WKB's own type
// code and byte-order marker), which is exactly what spec.md's Strategy B
// BODY is defined to be: "a raw WKB payload... the reader must not parse
// it byte-wise".
func EncodeWKBBody(g geom.T) ([]byte, error) {
	b, err := wkb.Marshal(g, binary.LittleEndian)
	if err != nil {
		return nil, errors.Wrap(err, "geoadapter: encode WKB body")
	}
	return b, nil
}

// DecodeWKBBody parses a Strategy B BODY back into a geometry. The caller
// is responsible for slicing out exactly the body bytes first; this
// function does not know (and must not need to know) the record's overall
// length.
func DecodeWKBBody(data []byte) (geom.T, error) {
	t, err := wkb.Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "geoadapter: decode WKB body")
	}
	return t, nil
}
