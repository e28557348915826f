package hpack

import "fmt"

// decodeForTest is a minimal RFC 7541 decoder used only by this package's
// own tests to verify the encoder's round-trip property: decode what the
// encoder wrote and compare against the original header fields. Decoding
// HPACK streams is an explicit non-goal of the shipped package; this
// helper never leaves _test.go and exists purely to let the test suite
// play the role of "a conforming RFC 7541 decoder" without depending on a
// second implementation.
func decodeForTest(data []byte, tab *dynamicTable) ([]HeaderField, error) {
	var out []HeaderField
	pos := 0

	for pos < len(data) {
		b := data[pos]

		switch {
		case b&flagIndexed != 0:
			idx, n, ok := readInt(data[pos:], prefixIndexed)
			if !ok {
				return nil, fmt.Errorf("decodeForTest: truncated indexed field")
			}
			pos += n

			f, err := resolveIndexForTest(tab, int(idx))
			if err != nil {
				return nil, err
			}
			out = append(out, f)

		case b&0xC0 == flagLiteralIncrementalIndexed:
			idx, n, ok := readInt(data[pos:], prefixLiteralIndexed)
			if !ok {
				return nil, fmt.Errorf("decodeForTest: truncated literal index")
			}
			pos += n

			name, n, err := decodeLiteralName(data[pos:], tab, int(idx))
			if err != nil {
				return nil, err
			}
			pos += n

			value, n, err := decodeStringForTest(data[pos:])
			if err != nil {
				return nil, err
			}
			pos += n

			tab.Insert(name, value)
			out = append(out, HeaderField{Name: name, Value: value})

		case b&0xE0 == flagDynamicTableSizeUpdate:
			size, n, ok := readInt(data[pos:], prefixSizeUpdate)
			if !ok {
				return nil, fmt.Errorf("decodeForTest: truncated size update")
			}
			pos += n
			tab.Resize(uint32(size))

		default:
			idx, n, ok := readInt(data[pos:], prefixLiteralPlain)
			if !ok {
				return nil, fmt.Errorf("decodeForTest: truncated literal index")
			}
			pos += n

			name, n, err := decodeLiteralName(data[pos:], tab, int(idx))
			if err != nil {
				return nil, err
			}
			pos += n

			value, n, err := decodeStringForTest(data[pos:])
			if err != nil {
				return nil, err
			}
			pos += n

			out = append(out, HeaderField{Name: name, Value: value})
		}
	}

	return out, nil
}

func decodeLiteralName(data []byte, tab *dynamicTable, idx int) (string, int, error) {
	if idx == 0 {
		return decodeStringForTest(data)
	}
	f, err := resolveIndexForTest(tab, idx)
	if err != nil {
		return "", 0, err
	}
	return f.Name, 0, nil
}

func resolveIndexForTest(tab *dynamicTable, idx int) (HeaderField, error) {
	if idx >= 1 && idx <= staticTableSize {
		return staticTable[idx-1], nil
	}
	if f, ok := tab.Get(idx); ok {
		return f, nil
	}
	return HeaderField{}, fmt.Errorf("decodeForTest: index %d out of range", idx)
}

func decodeStringForTest(data []byte) (string, int, error) {
	if len(data) == 0 {
		return "", 0, fmt.Errorf("decodeForTest: truncated string")
	}
	if data[0]&0x80 != 0 {
		return "", 0, fmt.Errorf("decodeForTest: Huffman strings unsupported (encoder never emits H=1)")
	}

	length, n, ok := readInt(data, stringPrefixWidth)
	if !ok {
		return "", 0, fmt.Errorf("decodeForTest: truncated string length")
	}
	if len(data) < n+int(length) {
		return "", 0, fmt.Errorf("decodeForTest: truncated string body")
	}
	return string(data[n : n+int(length)]), n + int(length), nil
}
