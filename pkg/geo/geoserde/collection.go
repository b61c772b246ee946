package geoserde

import (
	"github.com/jagill/presto/pkg/geo/geoadapter"
	"github.com/jagill/presto/pkg/geo/geobytes"
	"github.com/jagill/presto/pkg/geo/geopb"
	"github.com/twpayne/go-geom"
)

// writeCollectionBody writes NUMBER followed by each length-prefixed
// ENTRY. Entries never carry an envelope block, regardless of child kind:
// the length prefix is a placeholder, reserved before the child is
// written and patched once its size is known.
func (c *Codec) writeCollectionBody(w *geobytes.Writer, gc *geom.GeometryCollection) error {
	children := geoadapter.ChildrenOf(gc)
	w.WriteI32LE(int32(len(children)))
	for _, child := range children {
		start := w.Size()
		placeholder := w.ReserveI32LE()

		childType, err := geoadapter.ShapeTypeOf(child)
		if err != nil {
			return err
		}
		w.WriteByte(byte(childType))
		if err := c.writeGeometryBody(w, childType, child); err != nil {
			return err
		}

		w.PatchI32LeAt(placeholder, int32(w.Size()-start-4))
	}
	return nil
}

// readCollectionBody reads NUMBER entries, each bounded by its own
// declared length so a truncated or malicious entry can't read past its
// own budget into a sibling entry.
func (c *Codec) readCollectionBody(r *geobytes.Reader) (*geom.GeometryCollection, error) {
	n, err := r.ReadI32LE()
	if err != nil {
		return nil, newDecodeError(KindUnexpectedEOF, err, "read collection count")
	}
	if n < 0 {
		return nil, newDecodeError(KindUnexpectedEOF, nil, "negative collection count %d", n)
	}

	children := make([]geom.T, 0, n)
	for i := int32(0); i < n; i++ {
		entryLen, err := r.ReadI32LE()
		if err != nil {
			return nil, newDecodeError(KindUnexpectedEOF, err, "read entry %d length", i)
		}
		if entryLen < 1 || int(entryLen) > r.Available() {
			return nil, newDecodeError(KindUnexpectedEOF, nil,
				"entry %d length %d overflows remaining %d bytes", i, entryLen, r.Available())
		}
		entryStart := r.Position()

		tagByte, err := r.ReadByte()
		if err != nil {
			return nil, newDecodeError(KindUnexpectedEOF, err, "read entry %d tag", i)
		}
		childType, err := geopb.ShapeTypeFromByte(tagByte)
		if err != nil {
			return nil, newDecodeError(KindUnknownTag, err, "entry %d tag byte %d", i, tagByte)
		}
		if childType == geopb.ShapeTypeEnvelope {
			return nil, newDecodeError(KindInternal, nil, "entry %d: envelope is not a valid collection member", i)
		}

		child, err := c.readGeometryBody(r, childType, int(entryLen)-1)
		if err != nil {
			return nil, err
		}
		if consumed := r.Position() - entryStart; consumed != int(entryLen) {
			return nil, newDecodeError(KindInternal, nil,
				"entry %d consumed %d bytes, declared length was %d", i, consumed, entryLen)
		}
		children = append(children, child)
	}
	return geoadapter.NewCollection(children)
}
