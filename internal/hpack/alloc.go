package hpack

// initialAllocBufSize is the starting scratch size for EncodeLiteralAllocating;
// it doubles on each retry until the literal fits.
const initialAllocBufSize = 64

// EncodeLiteralAllocating is the one-shot helper for a non-indexed literal
// field too long for a reasonable stack scratch buffer, e.g. an unusually
// long ":authority". It retries with an exponentially
// growing buffer until the write succeeds, then returns the trimmed
// result. The growth strategy is observable only via allocation count —
// the emitted bytes are identical to a single correctly-sized call.
func EncodeLiteralAllocating(enc *Encoder, index int, value string) ([]byte, error) {
	buf := make([]byte, initialAllocBufSize)
	for {
		n, ok, err := enc.EncodeLiteralHeaderFieldWithoutIndexing(index, value, buf)
		if err != nil {
			return nil, err
		}
		if ok {
			return buf[:n], nil
		}
		buf = make([]byte, len(buf)*2)
	}
}
