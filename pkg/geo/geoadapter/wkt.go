package geoadapter

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// ParseWKT parses Well-Known Text into a geom.T. This is an ingress-only
// capability: the codec itself never parses WKT, but test fixtures and the
// geoextent CLI both need a human-writable way to construct geometries, and
// WKT is the obvious one. Backed by the adapter's geometry library rather
// than a hand-rolled lexer.
func ParseWKT(s string) (geom.T, error) {
	t, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, errors.Wrapf(err, "geoadapter: parse WKT %q", s)
	}
	return t, nil
}

// FormatWKT renders a geom.T as Well-Known Text, the mirror image of
// ParseWKT, used by the CLI to echo back the aggregated extent.
func FormatWKT(t geom.T) (string, error) {
	s, err := wkt.Marshal(t)
	if err != nil {
		return "", errors.Wrap(err, "geoadapter: format WKT")
	}
	return s, nil
}
