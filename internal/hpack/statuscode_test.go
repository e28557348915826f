package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodeWriterUsesIndexedFieldForWellKnownCodes(t *testing.T) {
	enc := NewEncoder()
	w := NewStatusCodeWriter(enc)
	dest := make([]byte, 4)

	n, ok, err := w.WriteStatus(204, dest)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte{flagIndexed | byte(statusStaticIndex[204])}, dest[:n])
}

func TestStatusCodeWriterFallsBackToLiteralForUnknownCodes(t *testing.T) {
	enc := NewEncoder()
	w := NewStatusCodeWriter(enc)
	dest := make([]byte, 16)

	n, ok, err := w.WriteStatus(418, dest)
	assert.NoError(t, err)
	assert.True(t, ok)

	want := []byte{flagLiteralWithoutIndexing | byte(statusStaticIndex[200])}
	want = append(want, 0x03)
	want = append(want, []byte("418")...)
	assert.Equal(t, want, dest[:n])
}

func TestStatusCodeWriterUnknownCodeNeverTouchesDynamicTable(t *testing.T) {
	enc := NewEncoder()
	w := NewStatusCodeWriter(enc)
	dest := make([]byte, 16)

	_, ok, err := w.WriteStatus(451, dest)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, nameOnly := enc.dynamicTable.Lookup(":status", "")
	assert.Zero(t, nameOnly)
}
