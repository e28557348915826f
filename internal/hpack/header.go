package hpack

// entryOverhead is the RFC 7541 §4.1 per-entry surcharge used only for
// dynamic-table eviction accounting; it never appears on the wire.
const entryOverhead = 32

// HeaderField is a name/value pair as it is presented to the encoder.
// Both Name and Value are opaque octet sequences to the wire format; only
// the encoder's lowercase/ASCII options interpret them as text.
type HeaderField struct {
	Name  string
	Value string
}

// Size returns the RFC-cost of the field: the surcharge that governs
// dynamic-table eviction, not the number of bytes it takes on the wire.
func (f HeaderField) Size() uint32 {
	return uint32(len(f.Name) + len(f.Value) + entryOverhead)
}
