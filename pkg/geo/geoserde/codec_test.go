package geoserde

import (
	"testing"

	"github.com/jagill/presto/pkg/geo/geoadapter"
	"github.com/jagill/presto/pkg/geo/geopb"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"
)

var strategies = []struct {
	name     string
	strategy Strategy
}{
	{"native", StrategyNative},
	{"wkb", StrategyWKB},
}

// roundTripCases exercises P1 (round trip) and P2 (envelope agreement)
// across Point (including the empty point) and the five middle shape kinds;
// collections and bare envelopes have their own tests below. WKB-bridged
// shapes are restricted to the middle five, since Point and
// GeometryCollection are strategy-independent by construction.
func roundTripCases() []struct {
	desc string
	g    geom.T
	env  geopb.Envelope
} {
	return []struct {
		desc string
		g    geom.T
		env  geopb.Envelope
	}{
		{"point", geoadapter.NewPointFlat(1, 2), geopb.NewEnvelope(1, 2, 1, 2)},
		{"empty point", geoadapter.EmptyPoint(), geopb.EmptyEnvelope()},
		{
			"multipoint",
			geoadapter.NewMultiPointFlat([]float64{1, 1, 2, 2}),
			geopb.NewEnvelope(1, 1, 2, 2),
		},
		{
			"linestring",
			geoadapter.NewLineStringFlat([]float64{0, 0, 10, 0, 10, 10}),
			geopb.NewEnvelope(0, 0, 10, 10),
		},
		{
			"multilinestring",
			geoadapter.NewMultiLineStringFlat([]float64{0, 0, 1, 1, 5, 5, 6, 6}, []int{4, 8}),
			geopb.NewEnvelope(0, 0, 6, 6),
		},
		{
			"polygon with hole",
			geoadapter.NewPolygonFlat(
				[]float64{0, 0, 0, 10, 10, 10, 10, 0, 0, 0, 2, 2, 2, 4, 4, 4, 4, 2, 2, 2},
				[]int{10, 20},
			),
			geopb.NewEnvelope(0, 0, 10, 10),
		},
		{
			"multipolygon",
			geoadapter.NewMultiPolygonFlat(
				[]float64{0, 0, 0, 1, 1, 1, 1, 0, 0, 0, 5, 5, 5, 6, 6, 6, 6, 5, 5, 5},
				[][]int{{10}, {20}},
			),
			geopb.NewEnvelope(0, 0, 6, 6),
		},
	}
}

func TestRoundTripAndEnvelopeAgreement(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			c := NewCodec(s.strategy)
			for _, tc := range roundTripCases() {
				t.Run(tc.desc, func(t *testing.T) {
					data, err := c.Serialize(tc.g)
					require.NoError(t, err)

					got, err := c.Deserialize(data)
					require.NoError(t, err)
					if p, ok := tc.g.(*geom.Point); ok && geoadapter.IsEmptyPoint(p) {
						require.True(t, geoadapter.IsEmptyPoint(got.(*geom.Point)))
					} else {
						require.Equal(t, tc.g.FlatCoords(), got.FlatCoords())
					}

					env, err := DeserializeEnvelope(data)
					require.NoError(t, err)
					require.True(t, tc.env.Equal(env), "got %+v want %+v", env, tc.env)
				})
			}
		})
	}
}

func TestGeometryCollectionRoundTrip(t *testing.T) {
	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			c := NewCodec(s.strategy)

			inner, err := geoadapter.NewCollection([]geom.T{
				geoadapter.NewPointFlat(5, 6),
				geoadapter.NewLineStringFlat([]float64{0, 0, 1, 1}),
			})
			require.NoError(t, err)

			gc, err := geoadapter.NewCollection([]geom.T{
				geoadapter.EmptyPoint(),
				geoadapter.NewPointFlat(3, 4),
				inner,
			})
			require.NoError(t, err)

			data, err := c.Serialize(gc)
			require.NoError(t, err)

			got, err := c.Deserialize(data)
			require.NoError(t, err)
			gotGc, ok := got.(*geom.GeometryCollection)
			require.True(t, ok)
			require.Equal(t, 3, gotGc.NumGeoms())

			p, ok := gotGc.Geom(0).(*geom.Point)
			require.True(t, ok)
			require.True(t, geoadapter.IsEmptyPoint(p))

			env, err := DeserializeEnvelope(data)
			require.NoError(t, err)
			require.True(t, geopb.NewEnvelope(0, 0, 5, 6).Equal(env))
		})
	}
}

func TestEmptyGeometryCollectionRoundTrip(t *testing.T) {
	c := Default()
	gc, err := geoadapter.NewCollection(nil)
	require.NoError(t, err)

	data, err := c.Serialize(gc)
	require.NoError(t, err)
	require.Len(t, data, 37)

	got, err := c.Deserialize(data)
	require.NoError(t, err)
	require.Equal(t, 0, got.(*geom.GeometryCollection).NumGeoms())

	env, err := DeserializeEnvelope(data)
	require.NoError(t, err)
	require.True(t, env.IsEmpty())
}

func TestGetGeometryType(t *testing.T) {
	c := Default()
	for _, tc := range roundTripCases() {
		data, err := c.Serialize(tc.g)
		require.NoError(t, err)
		shapeType, err := GetGeometryType(data)
		require.NoError(t, err)

		expected, err := geoadapter.ShapeTypeOf(tc.g)
		require.NoError(t, err)
		require.Equal(t, expected, shapeType)
	}
}

func TestSerializeEnvelopeRefusesEmpty(t *testing.T) {
	_, err := Default().SerializeEnvelope(geopb.EmptyEnvelope())
	require.Error(t, err)
}

func TestSerializeEnvelopeAndDeserializeSynthesizesPolygon(t *testing.T) {
	c := Default()
	data, err := c.SerializeEnvelope(geopb.NewEnvelope(0, 0, 10, 10))
	require.NoError(t, err)
	require.Len(t, data, 33)

	got, err := c.Deserialize(data)
	require.NoError(t, err)
	poly, ok := got.(*geom.Polygon)
	require.True(t, ok)
	require.Equal(t, []float64{0, 0, 10, 0, 10, 10, 0, 10, 0, 0}, poly.FlatCoords())

	env, err := DeserializeEnvelope(data)
	require.NoError(t, err)
	require.True(t, geopb.NewEnvelope(0, 0, 10, 10).Equal(env))
}

func TestUnknownTagIsDecodeError(t *testing.T) {
	_, err := Default().Deserialize([]byte{0xFF})
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, KindUnknownTag, de.Kind)
}

func TestTruncatedInputIsDecodeError(t *testing.T) {
	data, err := Default().Serialize(geoadapter.NewPointFlat(1, 2))
	require.NoError(t, err)
	_, err = Default().Deserialize(data[:len(data)-4])
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, KindUnexpectedEOF, de.Kind)
}

func TestCollectionEntryLengthOverflowIsDecodeError(t *testing.T) {
	c := Default()
	gc, err := geoadapter.NewCollection([]geom.T{geoadapter.NewPointFlat(1, 2)})
	require.NoError(t, err)
	data, err := c.Serialize(gc)
	require.NoError(t, err)

	// Corrupt the single entry's length prefix (bytes 37..40, right after
	// the NUMBER=1 field at bytes 33..36: tag(1)+envelope(32)+NUMBER(4)=37
	// is where the entry length prefix begins) to claim more bytes than
	// remain.
	corrupted := make([]byte, len(data))
	copy(corrupted, data)
	corrupted[37] = 0x7F
	corrupted[38] = 0x7F
	corrupted[39] = 0x7F
	corrupted[40] = 0x7F

	_, err = c.Deserialize(corrupted)
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, KindUnexpectedEOF, de.Kind)
}

// Seed scenario table from spec.md §8.
func TestSeedScenarios(t *testing.T) {
	c := Default()

	t.Run("scenario 1: POINT (1 2)", func(t *testing.T) {
		data, err := c.Serialize(geoadapter.NewPointFlat(1, 2))
		require.NoError(t, err)
		require.Len(t, data, 17)
		env, err := DeserializeEnvelope(data)
		require.NoError(t, err)
		require.True(t, geopb.NewEnvelope(1, 2, 1, 2).Equal(env))
	})

	t.Run("scenario 2: POINT EMPTY", func(t *testing.T) {
		data, err := c.Serialize(geoadapter.EmptyPoint())
		require.NoError(t, err)
		require.Len(t, data, 17)
		env, err := DeserializeEnvelope(data)
		require.NoError(t, err)
		require.True(t, env.IsEmpty())
	})

	t.Run("scenario 3: LINESTRING (0 0, 10 0, 10 10)", func(t *testing.T) {
		ls := geoadapter.NewLineStringFlat([]float64{0, 0, 10, 0, 10, 10})
		data, err := c.Serialize(ls)
		require.NoError(t, err)
		require.Len(t, data, 85)
		env, err := DeserializeEnvelope(data)
		require.NoError(t, err)
		require.True(t, geopb.NewEnvelope(0, 0, 10, 10).Equal(env))
	})

	t.Run("scenario 4: MULTIPOINT (1 1, 2 2)", func(t *testing.T) {
		mp := geoadapter.NewMultiPointFlat([]float64{1, 1, 2, 2})
		data, err := c.Serialize(mp)
		require.NoError(t, err)
		require.Len(t, data, 69)
		env, err := DeserializeEnvelope(data)
		require.NoError(t, err)
		require.True(t, geopb.NewEnvelope(1, 1, 2, 2).Equal(env))
	})

	t.Run("scenario 5: GEOMETRYCOLLECTION (POINT EMPTY, POINT (3 4))", func(t *testing.T) {
		gc, err := geoadapter.NewCollection([]geom.T{
			geoadapter.EmptyPoint(),
			geoadapter.NewPointFlat(3, 4),
		})
		require.NoError(t, err)
		data, err := c.Serialize(gc)
		require.NoError(t, err)
		require.Len(t, data, 79)
		env, err := DeserializeEnvelope(data)
		require.NoError(t, err)
		require.True(t, geopb.NewEnvelope(3, 4, 3, 4).Equal(env))
	})

	t.Run("scenario 6: GEOMETRYCOLLECTION EMPTY", func(t *testing.T) {
		gc, err := geoadapter.NewCollection(nil)
		require.NoError(t, err)
		data, err := c.Serialize(gc)
		require.NoError(t, err)
		require.Len(t, data, 37)
		env, err := DeserializeEnvelope(data)
		require.NoError(t, err)
		require.True(t, env.IsEmpty())
	})
}
