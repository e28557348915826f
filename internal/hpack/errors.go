package hpack

import "errors"

// Error kinds surfaced to callers. Buffer-too-short is deliberately not
// among them: it is reported as (written=0, ok=false), never as an error,
// so a caller can retry with a bigger destination without inspecting err.
var (
	// ErrEncodingFailure is raised by Encode/BeginEncode when the
	// destination is too small for even one header of a non-empty list
	// and the caller asked to fail fast rather than spin on retries.
	ErrEncodingFailure = errors.New("hpack: destination buffer too small to encode any header")

	// ErrInvalidCharEncoding is raised when onlyAscii is set and a
	// non-ASCII byte is presented, or when a multi-value separator is not
	// a single ASCII byte.
	ErrInvalidCharEncoding = errors.New("hpack: non-ASCII byte where only-ASCII was required")

	// ErrSizeUpdateExceedsMax is raised by SetDynamicHeaderTableSize when
	// the requested size exceeds the encoder's configured cap.
	ErrSizeUpdateExceedsMax = errors.New("hpack: dynamic table size update exceeds configured maximum")

	// ErrIntegerOverflow is internal: the summed length of a multi-value
	// literal plus its separators overflowed the index type. Callers only
	// ever observe it wrapped as ErrEncodingFailure at the public boundary.
	ErrIntegerOverflow = errors.New("hpack: multi-value literal length overflow")
)
