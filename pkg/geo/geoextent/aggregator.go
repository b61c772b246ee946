// Package geoextent implements ST_Extent: the MapReduce-shaped reduction
// that folds a stream of serialized geometries down to the envelope of
// their union. See spec.md §4.5.
package geoextent

import (
	"github.com/jagill/presto/pkg/geo/geopb"
	"github.com/jagill/presto/pkg/geo/geoserde"
)

// Aggregator accumulates an envelope union across many serialized
// geometries. It is the single-partition half of ST_Extent; Merge combines
// partial results from independent Aggregators, letting the reduction run
// in parallel and combine afterward. Unlike Codec, an Aggregator carries
// mutable state and is NOT safe for concurrent use: give each worker its
// own and Merge the results.
type Aggregator struct {
	current geopb.Envelope
	seen    bool
}

// NewAggregator returns an Aggregator with no rows accumulated yet.
func NewAggregator() *Aggregator {
	return &Aggregator{current: geopb.EmptyEnvelope()}
}

// Accumulate folds one serialized geometry's envelope into the running
// union, using the fast envelope-only decode path so accumulation never
// pays for materializing a row's vertices.
func (a *Aggregator) Accumulate(data []byte) error {
	env, err := geoserde.DeserializeEnvelope(data)
	if err != nil {
		return err
	}
	a.current = a.current.Extend(env)
	a.seen = true
	return nil
}

// AccumulateEnvelope folds an already-decoded envelope into the running
// union. Useful when the caller has its own fast path to BOUNDS, e.g. a
// columnar store that keeps envelopes out-of-line from the geometry body.
func (a *Aggregator) AccumulateEnvelope(env geopb.Envelope) {
	a.current = a.current.Extend(env)
	a.seen = true
}

// Merge folds other's running union into a, leaving other unchanged. Merge
// is how independent partial Aggregators (e.g. one per worker goroutine or
// one per shard) are combined into a single result; per spec.md §4.5,
// Extend is commutative and associative, so Merge order never matters.
func (a *Aggregator) Merge(other *Aggregator) {
	if other == nil || !other.seen {
		return
	}
	a.current = a.current.Extend(other.current)
	a.seen = true
}

// Finalize returns the accumulated envelope and whether anything was ever
// accumulated. An Aggregator that never saw a row, or saw only empty
// envelopes, reports ok=false with the empty envelope.
func (a *Aggregator) Finalize() (geopb.Envelope, bool) {
	if !a.seen || a.current.IsEmpty() {
		return geopb.EmptyEnvelope(), false
	}
	return a.current, true
}

// FinalizeBytes serializes the accumulated envelope as a top-level
// ENVELOPE record via geoserde, for callers that want ST_Extent's result
// in the same wire format as any other geometry column. It returns an
// error if nothing non-empty was ever accumulated, matching
// Codec.SerializeEnvelope's refusal to emit an empty top-level envelope.
func (a *Aggregator) FinalizeBytes() ([]byte, error) {
	env, ok := a.Finalize()
	if !ok {
		return nil, errEmptyExtent
	}
	return geoserde.Default().SerializeEnvelope(env)
}
