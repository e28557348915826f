package hpack

import (
	"errors"
	"fmt"

	"hpackd/internal/logging"
)

// DefaultMaxDynamicTableSize is the RFC 7541 initial dynamic-table budget
// used when NewEncoder is called with no explicit size.
const DefaultMaxDynamicTableSize = 4096

// Representation flag bytes, RFC 7541 §6. Each constant carries the fixed
// high bits of a representation's leading octet; the low bits are filled
// in by appendInt against the representation's prefix width.
const (
	flagIndexed                   = 0x80 // §6.1, prefix width 7
	flagLiteralIncrementalIndexed = 0x40 // §6.2.1, prefix width 6
	flagLiteralWithoutIndexing    = 0x00 // §6.2.2, prefix width 4
	flagDynamicTableSizeUpdate    = 0x20 // §6.3, prefix width 5
)

const (
	prefixIndexed        = 7
	prefixLiteralIndexed = 6
	prefixLiteralPlain   = 4
	prefixSizeUpdate     = 5
)

// LookupResult reports the combined indices of the best matches a
// Lookup found in the static and dynamic tables together. A zero field
// means "no hit": no combined index is ever 0.
type LookupResult struct {
	Exact    int
	NameOnly int
}

// StringOptions controls EncodeStringLiteral's transcoding, mirroring
// RFC 7541's non-Huffman string representation plus the encoder's own
// lowercase-folding and ASCII-enforcement extensions.
type StringOptions struct {
	Lowercase bool
	OnlyAscii bool
}

// Encoder is the stateful HPACK encoder for one HTTP/2 connection
// direction. It is not safe for concurrent use: the owning connection
// serializes all calls.
type Encoder struct {
	dynamicTable        *dynamicTable
	maxDynamicTableSize uint32
	pendingSizeUpdate   *uint32
}

// NewEncoder constructs an Encoder with the given dynamic-table cap, or
// DefaultMaxDynamicTableSize if none is given.
func NewEncoder(maxDynamicTableSize ...uint32) *Encoder {
	size := uint32(DefaultMaxDynamicTableSize)
	if len(maxDynamicTableSize) > 0 {
		size = maxDynamicTableSize[0]
	}
	return &Encoder{
		dynamicTable:        newDynamicTable(size),
		maxDynamicTableSize: size,
	}
}

// SetLogger attaches l to receive debug-level eviction tracing from the
// encoder's dynamic table.
func (e *Encoder) SetLogger(l logging.Logger) {
	e.dynamicTable.SetLogger(l)
}

// Lookup merges a static-table and dynamic-table probe for (name, value),
// preferring the static table when both carry a hit: a static hit costs
// nothing to keep valid and never needs eviction bookkeeping.
func (e *Encoder) Lookup(name, value string) LookupResult {
	sExact, sName := lookupStatic(name, value)
	dExact, dName := e.dynamicTable.Lookup(name, value)

	res := LookupResult{}
	if sExact != 0 {
		res.Exact = sExact
	} else if dExact != 0 {
		res.Exact = dExact
	}
	if sName != 0 {
		res.NameOnly = sName
	} else if dName != 0 {
		res.NameOnly = dName
	}
	return res
}

// EncodeIndexedHeaderField writes representation #1 (RFC 7541 §6.1): a
// single reference to a combined index already known to both ends.
func (e *Encoder) EncodeIndexedHeaderField(index int, dest []byte) (written int, ok bool) {
	if len(dest) < intEncodedLen(prefixIndexed, uint64(index)) {
		return 0, false
	}
	dest[0] = flagIndexed
	return appendInt(dest, prefixIndexed, uint64(index))
}

// EncodeLiteralHeaderFieldWithoutIndexing writes representation #4 (RFC
// 7541 §6.2.2, indexed name): for callers that deliberately want
// non-indexing semantics, e.g. sensitive or non-cacheable headers. It does
// not touch the dynamic table.
func (e *Encoder) EncodeLiteralHeaderFieldWithoutIndexing(index int, value string, dest []byte) (written int, ok bool, err error) {
	if len(dest) < intEncodedLen(prefixLiteralPlain, uint64(index))+intEncodedLen(stringPrefixWidth, uint64(len(value)))+len(value) {
		return 0, false, nil
	}
	dest[0] = flagLiteralWithoutIndexing
	n, ok := appendInt(dest, prefixLiteralPlain, uint64(index))
	if !ok {
		return 0, false, nil
	}
	vn, ok, err := appendString(dest[n:], value, stringOptions{})
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	return n + vn, true, nil
}

// EncodeLiteralHeaderFieldWithoutIndexingNewName writes representation #5
// (RFC 7541 §6.2.2, new name): a literal name followed by a single
// length-prefixed string joining values with sep. A single-element values
// slice degenerates to an ordinary literal value with no separator
// emitted. It does not touch the dynamic table.
func (e *Encoder) EncodeLiteralHeaderFieldWithoutIndexingNewName(name string, values []string, sep byte, dest []byte) (written int, ok bool, err error) {
	if sep&0x80 != 0 {
		return 0, false, ErrInvalidCharEncoding
	}
	joined := 0
	for i, v := range values {
		if i > 0 {
			joined++ // separator
		}
		joined += len(v)
	}
	if len(dest) < 1+intEncodedLen(stringPrefixWidth, uint64(len(name)))+len(name)+intEncodedLen(stringPrefixWidth, uint64(joined))+joined {
		return 0, false, nil
	}
	dest[0] = flagLiteralWithoutIndexing
	n, ok := appendInt(dest, prefixLiteralPlain, 0)
	if !ok {
		return 0, false, nil
	}
	nn, ok, err := appendString(dest[n:], name, stringOptions{lowercase: true, onlyAscii: true})
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	vn, ok, err := appendJoinedString(dest[n+nn:], values, sep)
	if errors.Is(err, ErrIntegerOverflow) {
		return 0, false, fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	return n + nn + vn, true, nil
}

// EncodeStringLiteral writes a bare non-Huffman string representation,
// honoring opts. It wraps appendString, the string writer EncodeLiteralField
// and the representations above use internally, for callers that only
// need the string form (e.g. a value already known to be indexed by
// name on both ends).
func (e *Encoder) EncodeStringLiteral(value string, dest []byte, opts StringOptions) (written int, ok bool, err error) {
	return appendString(dest, value, stringOptions{lowercase: opts.Lowercase, onlyAscii: opts.OnlyAscii})
}

// EncodeOctetLiteral writes a bare non-Huffman string representation in
// octet mode: b is copied verbatim, with no ASCII enforcement or case
// folding. This is StringWriter's other mode alongside EncodeStringLiteral's
// character mode, for callers already holding a raw byte span (e.g. a
// value forwarded unmodified from another header field) that must not be
// reinterpreted as text.
func (e *Encoder) EncodeOctetLiteral(b []byte, dest []byte) (written int, ok bool) {
	return appendOctets(dest, b)
}

// EncodeLiteralField is the stateful path: it picks a representation from
// lookup (exact -> indexed field, nameOnly -> literal w/ indexed name,
// neither -> literal w/ new name) and, for either literal case, inserts
// the pair into the dynamic table once the bytes are fully committed.
func (e *Encoder) EncodeLiteralField(lookup LookupResult, name, value string, dest []byte) (written int, ok bool, err error) {
	switch {
	case lookup.Exact != 0:
		n, ok := e.EncodeIndexedHeaderField(lookup.Exact, dest)
		return n, ok, nil

	case lookup.NameOnly != 0:
		if len(dest) < intEncodedLen(prefixLiteralIndexed, uint64(lookup.NameOnly))+intEncodedLen(stringPrefixWidth, uint64(len(value)))+len(value) {
			return 0, false, nil
		}
		dest[0] = flagLiteralIncrementalIndexed
		n, ok := appendInt(dest, prefixLiteralIndexed, uint64(lookup.NameOnly))
		if !ok {
			return 0, false, nil
		}
		vn, ok, err := appendString(dest[n:], value, stringOptions{})
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		e.dynamicTable.Insert(name, value)
		return n + vn, true, nil

	default:
		if len(dest) < 1+intEncodedLen(stringPrefixWidth, uint64(len(name)))+len(name)+intEncodedLen(stringPrefixWidth, uint64(len(value)))+len(value) {
			return 0, false, nil
		}
		dest[0] = flagLiteralIncrementalIndexed
		n, ok := appendInt(dest, prefixLiteralIndexed, 0)
		if !ok {
			return 0, false, nil
		}
		nn, ok, err := appendString(dest[n:], name, stringOptions{lowercase: true, onlyAscii: true})
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		vn, ok, err := appendString(dest[n+nn:], value, stringOptions{})
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		e.dynamicTable.Insert(name, value)
		return n + nn + vn, true, nil
	}
}

// encodeSizeUpdate writes representation #6 (RFC 7541 §6.3).
func (e *Encoder) encodeSizeUpdate(newSize uint32, dest []byte) (written int, ok bool) {
	if len(dest) < intEncodedLen(prefixSizeUpdate, uint64(newSize)) {
		return 0, false
	}
	dest[0] = flagDynamicTableSizeUpdate
	return appendInt(dest, prefixSizeUpdate, uint64(newSize))
}

// SetDynamicHeaderTableSize requests a new dynamic-table budget. Multiple
// reductions before the next WriteHeadersBegin collapse to the smallest,
// per RFC 7541 §4.2: the decoder must see the smallest intermediate value
// to stay in sync, so a later increase never overrides a pending decrease.
func (e *Encoder) SetDynamicHeaderTableSize(newSize uint32) error {
	if newSize > e.maxDynamicTableSize {
		return ErrSizeUpdateExceedsMax
	}
	if e.pendingSizeUpdate == nil || newSize < *e.pendingSizeUpdate {
		v := newSize
		e.pendingSizeUpdate = &v
		e.dynamicTable.Resize(newSize)
	}
	return nil
}

// WriteHeadersBegin flushes a pending dynamic-table size update as the
// first bytes of the next header block, representation #6. It is a no-op
// if no update is pending.
func (e *Encoder) WriteHeadersBegin(dest []byte) (written int, ok bool, err error) {
	if e.pendingSizeUpdate == nil {
		return 0, true, nil
	}
	n, ok := e.encodeSizeUpdate(*e.pendingSizeUpdate, dest)
	if !ok {
		return 0, false, nil
	}
	e.pendingSizeUpdate = nil
	return n, true, nil
}

// EncodeSession captures the progress of encoding one header block across
// possibly-several Encode calls, replacing a hidden per-encoder iterator
// with an explicit value the caller holds. The Encoder itself carries no
// per-block state; only dynamicTable, maxDynamicTableSize and
// pendingSizeUpdate outlive a block.
type EncodeSession struct {
	headers               []HeaderField
	position              int
	pendingSizeUpdateSent bool
}

// BeginEncode starts a new header block: Idle -> Prelude (flushes any
// pending size update) -> Body (encodes as many headers as dest holds).
func (e *Encoder) BeginEncode(headers []HeaderField, dest []byte, throwIfNoneEncoded bool) (sess *EncodeSession, written int, done bool, err error) {
	sess = &EncodeSession{headers: headers}

	n, ok, err := e.WriteHeadersBegin(dest)
	if err != nil {
		return sess, 0, false, err
	}
	if !ok {
		return sess, 0, false, nil
	}
	sess.pendingSizeUpdateSent = true

	bodyWritten, bodyDone, err := e.Encode(sess, dest[n:], throwIfNoneEncoded)
	return sess, n + bodyWritten, bodyDone, err
}

// Encode continues a header block from sess.position. It returns done=true
// once every header in sess has been written (Body -> Idle); done=false
// with written>0 means partial progress — the caller supplies a fresh
// buffer and calls Encode again (remaining in Body). When not even the
// first remaining header fits, Encode returns written=0, done=false: with
// ErrEncodingFailure if throwIfNoneEncoded is set, to avoid spinning
// forever on too small a buffer, and with a nil error otherwise.
func (e *Encoder) Encode(sess *EncodeSession, dest []byte, throwIfNoneEncoded bool) (written int, done bool, err error) {
	for sess.position < len(sess.headers) {
		h := sess.headers[sess.position]
		lookup := e.Lookup(h.Name, h.Value)

		n, ok, ferr := e.EncodeLiteralField(lookup, h.Name, h.Value, dest[written:])
		if ferr != nil {
			return written, false, ferr
		}
		if !ok {
			if written == 0 && throwIfNoneEncoded {
				return 0, false, ErrEncodingFailure
			}
			return written, false, nil
		}

		written += n
		sess.position++
	}
	return written, true, nil
}
