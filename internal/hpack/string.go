package hpack

// stringPrefixWidth is the bit width RFC 7541 §5.2 reserves for a string's
// length prefix; bit 7 of the leading octet is the Huffman flag H, which
// this encoder always clears.
const stringPrefixWidth = 7

// stringOptions controls how appendString transcodes a text string.
type stringOptions struct {
	lowercase bool
	onlyAscii bool
}

// appendString writes the non-Huffman string representation
// [H=0 | length(7+)] [octets] of s into dest, honoring opts. It never
// allocates and never writes a partial representation: on failure
// (buffer too short, or a disallowed code point under onlyAscii) it
// returns ok=false having touched nothing.
func appendString(dest []byte, s string, opts stringOptions) (written int, ok bool, err error) {
	if opts.onlyAscii {
		for i := 0; i < len(s); i++ {
			if s[i]&0x80 != 0 {
				return 0, false, ErrInvalidCharEncoding
			}
		}
	}

	n := intEncodedLen(stringPrefixWidth, uint64(len(s)))
	if len(dest) < n+len(s) {
		return 0, false, nil
	}

	dest[0] = 0 // H=0; appendInt only touches the low 7 bits
	appendInt(dest, stringPrefixWidth, uint64(len(s)))

	if opts.lowercase {
		for i := 0; i < len(s); i++ {
			c := s[i]
			if c >= 'A' && c <= 'Z' {
				c |= 0x20
			}
			dest[n+i] = c
		}
	} else {
		copy(dest[n:], s)
	}

	return n + len(s), true, nil
}

// appendOctets writes the non-Huffman string representation of a raw byte
// span, copied verbatim with no case folding or ASCII enforcement.
func appendOctets(dest []byte, b []byte) (written int, ok bool) {
	n := intEncodedLen(stringPrefixWidth, uint64(len(b)))
	if len(dest) < n+len(b) {
		return 0, false
	}

	dest[0] = 0
	appendInt(dest, stringPrefixWidth, uint64(len(b)))
	copy(dest[n:], b)
	return n + len(b), true
}

// appendJoinedString writes a single length-prefixed string formed by
// joining values with sep, as used by EncodeLiteralHeaderFieldWithoutIndexingNewName's
// multi-value form. sep must be exactly one ASCII byte.
func appendJoinedString(dest []byte, values []string, sep byte) (written int, ok bool, err error) {
	if sep&0x80 != 0 {
		return 0, false, ErrInvalidCharEncoding
	}

	total := 0
	for i, v := range values {
		if i > 0 {
			total++ // separator
		}
		grown := total + len(v)
		if grown < total {
			return 0, false, ErrIntegerOverflow
		}
		total = grown
	}

	n := intEncodedLen(stringPrefixWidth, uint64(total))
	if len(dest) < n+total {
		return 0, false, nil
	}

	dest[0] = 0
	appendInt(dest, stringPrefixWidth, uint64(total))

	pos := n
	for i, v := range values {
		if i > 0 {
			dest[pos] = sep
			pos++
		}
		copy(dest[pos:], v)
		pos += len(v)
	}

	return pos, true, nil
}
