package hpack

import "strconv"

// StatusCodeWriter is the fast path for a response's ":status"
// pseudo-header. It never touches the dynamic table:
// the seven well-known codes are always in the static table, and anything
// else is sent as a literal without indexing so a long tail of unusual
// status codes never evicts real entries.
type StatusCodeWriter struct {
	enc *Encoder
}

// NewStatusCodeWriter wraps enc for ":status" encoding.
func NewStatusCodeWriter(enc *Encoder) StatusCodeWriter {
	return StatusCodeWriter{enc: enc}
}

// WriteStatus writes the ":status" pseudo-header for code: an indexed
// reference for the seven RFC 7541 Appendix A status entries, or a literal
// without indexing against static index 8 (":status" = "200") otherwise.
func (w StatusCodeWriter) WriteStatus(code int, dest []byte) (written int, ok bool, err error) {
	if idx, known := statusStaticIndex[code]; known {
		n, ok := w.enc.EncodeIndexedHeaderField(idx, dest)
		return n, ok, nil
	}
	return w.enc.EncodeLiteralHeaderFieldWithoutIndexing(statusStaticIndex[200], strconv.Itoa(code), dest)
}
