package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendStringPlainLiteral(t *testing.T) {
	dest := make([]byte, 16)
	n, ok, err := appendString(dest, "value", stringOptions{})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x05, 'v', 'a', 'l', 'u', 'e'}, dest[:n])
}

func TestAppendStringLowercaseFoldsAsciiUppercase(t *testing.T) {
	dest := make([]byte, 16)
	n, ok, err := appendString(dest, "Content-Type", stringOptions{lowercase: true})
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "content-type", string(dest[1:n]))
}

func TestAppendStringOnlyAsciiRejectsHighBitBytes(t *testing.T) {
	dest := make([]byte, 16)
	_, ok, err := appendString(dest, "café", stringOptions{onlyAscii: true})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidCharEncoding)
}

func TestAppendStringFailsAtomicallyOnShortBuffer(t *testing.T) {
	dest := make([]byte, 3)
	before := append([]byte(nil), dest...)

	n, ok, err := appendString(dest, "value", stringOptions{})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, n)
	assert.Equal(t, before, dest)
}

func TestAppendJoinedStringSeparatesValues(t *testing.T) {
	dest := make([]byte, 32)
	n, ok, err := appendJoinedString(dest, []string{"first", "second"}, ';')
	assert.NoError(t, err)
	assert.True(t, ok)

	want := []byte{0x0C, 'f', 'i', 'r', 's', 't', ';', 's', 'e', 'c', 'o', 'n', 'd'}
	assert.Equal(t, want, dest[:n])
}

func TestAppendJoinedStringSingleValueEmitsNoSeparator(t *testing.T) {
	dest := make([]byte, 16)
	n, ok, err := appendJoinedString(dest, []string{"value"}, ';')
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{0x05, 'v', 'a', 'l', 'u', 'e'}, dest[:n])
}

func TestAppendJoinedStringRejectsNonAsciiSeparator(t *testing.T) {
	dest := make([]byte, 16)
	_, ok, err := appendJoinedString(dest, []string{"a", "b"}, 0xE9)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidCharEncoding)
}
