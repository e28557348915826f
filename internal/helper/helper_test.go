package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeaderLineSplitsNameAndValue(t *testing.T) {
	name, value, err := ParseHeaderLine("x-request-id: abc-123")
	assert.NoError(t, err)
	assert.Equal(t, "x-request-id", name)
	assert.Equal(t, "abc-123", value)
}

func TestParseHeaderLineAllowsEmptyValue(t *testing.T) {
	name, value, err := ParseHeaderLine("x-empty:")
	assert.NoError(t, err)
	assert.Equal(t, "x-empty", name)
	assert.Equal(t, "", value)
}

func TestParseHeaderLineRejectsMissingName(t *testing.T) {
	_, _, err := ParseHeaderLine(": value")
	assert.Error(t, err)
}

func TestReadHeaderFieldsSkipsBlankLines(t *testing.T) {
	r := strings.NewReader(":method: GET\n\nx-trace: on\n")
	fields, err := ReadHeaderFields(r)
	assert.NoError(t, err)
	assert.Len(t, fields, 2)
	assert.Equal(t, ":method", fields[0].Name)
	assert.Equal(t, "GET", fields[0].Value)
	assert.Equal(t, "x-trace", fields[1].Name)
	assert.Equal(t, "on", fields[1].Value)
}
