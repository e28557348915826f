package helper

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"hpackd/internal/hpack"
)

// ReadUntil scans r one byte at a time up to (but not including) the first
// occurrence of c, or io.EOF. It is the same delimiter-scan shape this
// package originally used for HTTP/1.1 request-line parsing, repurposed
// here for splitting a "name: value" header line at its colon.
func ReadUntil(r *bufio.Reader, c byte) ([]byte, error) {
	var out []byte
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		if b == c {
			return out, nil
		}
		out = append(out, b)
	}
}

// ParseHeaderLine splits a single "name: value" line into its two halves,
// trimming surrounding whitespace from each. An empty name is rejected;
// an empty value is allowed (some headers legitimately carry one). A name
// that itself starts with ':' directly followed by a name character (every
// HTTP/2 pseudo-header: ":method", ":path", ":scheme", ":status",
// ":authority") is not mistaken for an empty name followed by a delimiter —
// the leading ':' is consumed as part of the name and the split happens on
// the next ':' after it. A leading ':' followed by whitespace or the end of
// the line is the delimiter, so ": value" has an empty name.
func ParseHeaderLine(line string) (name, value string, err error) {
	reader := bufio.NewReader(strings.NewReader(line))

	var leading string
	if b, peekErr := reader.Peek(2); peekErr == nil && b[0] == ':' && b[1] != ' ' && b[1] != '\t' {
		reader.Discard(1)
		leading = ":"
	}

	nameBytes, err := ReadUntil(reader, ':')
	if err != nil {
		return "", "", err
	}
	name = strings.TrimSpace(leading + string(nameBytes))
	if name == "" {
		return "", "", errors.New("helper: header line " + strconv.Quote(line) + " has no name before ':'")
	}

	rest, err := io.ReadAll(reader)
	if err != nil {
		return "", "", err
	}
	value = strings.TrimSpace(string(rest))
	return name, value, nil
}

// ReadHeaderFields reads "name: value" lines from r until EOF, skipping
// blank lines, and returns them in file order — the order in which the
// encoder will see them matters for which pair ends up indexed first.
func ReadHeaderFields(r io.Reader) ([]hpack.HeaderField, error) {
	var fields []hpack.HeaderField
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		name, value, err := ParseHeaderLine(line)
		if err != nil {
			return nil, err
		}
		fields = append(fields, hpack.HeaderField{Name: name, Value: value})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return fields, nil
}
