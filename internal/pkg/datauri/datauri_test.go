package datauri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecode(t *testing.T) {
	raw := []byte("%PDF-1.4 fake pdf bytes")

	uri := Encode("application/pdf", raw)
	assert.Equal(t, "data:application/pdf;base64,", uri[:28])

	ct, data, err := Decode(uri)
	assert.NoError(t, err)
	assert.Equal(t, "application/pdf", ct)
	assert.Equal(t, raw, data)
}

func TestEncode_EmptyBody(t *testing.T) {
	uri := Encode("text/plain", nil)
	ct, data, err := Decode(uri)
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", ct)
	assert.Empty(t, data)
}

func TestDecode_Invalid(t *testing.T) {
	cases := []string{
		"",
		"http://example.com/file.pdf",
		"data:application/pdf",            // no comma
		"data:application/pdf,plaintext",  // not base64 tagged
		"data:text/plain;base64,!!!not!!", // bad base64
	}

	for _, uri := range cases {
		_, _, err := Decode(uri)
		assert.ErrorIs(t, err, ErrInvalidURI, "uri: %q", uri)
	}
}

func TestContentType(t *testing.T) {
	uri := Encode("text/plain", []byte("hello"))

	ct, err := ContentType(uri)
	assert.NoError(t, err)
	assert.Equal(t, "text/plain", ct)

	_, err = ContentType("bogus")
	assert.ErrorIs(t, err, ErrInvalidURI)
}
