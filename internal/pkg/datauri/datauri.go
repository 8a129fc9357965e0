// Package datauri encodes file content as self-describing data URIs
// (RFC 2397: "data:<mime>;base64,<body>") so a document's bytes can live
// inside its own metadata record.
package datauri

import (
	"encoding/base64"
	"errors"
	"strings"
)

var (
	ErrInvalidURI = errors.New("invalid data URI")
)

const prefix = "data:"

// Encode wraps raw bytes into a base64 data URI tagged with contentType
func Encode(contentType string, data []byte) string {
	var b strings.Builder
	b.Grow(len(prefix) + len(contentType) + 8 + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString(prefix)
	b.WriteString(contentType)
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String()
}

// Decode splits a base64 data URI into its MIME type and raw bytes
func Decode(uri string) (contentType string, data []byte, err error) {
	if !strings.HasPrefix(uri, prefix) {
		return "", nil, ErrInvalidURI
	}

	meta, body, ok := strings.Cut(uri[len(prefix):], ",")
	if !ok {
		return "", nil, ErrInvalidURI
	}

	contentType, found := strings.CutSuffix(meta, ";base64")
	if !found {
		return "", nil, ErrInvalidURI
	}

	data, err = base64.StdEncoding.DecodeString(body)
	if err != nil {
		return "", nil, ErrInvalidURI
	}

	return contentType, data, nil
}

// ContentType returns only the MIME tag of a data URI without decoding the body
func ContentType(uri string) (string, error) {
	if !strings.HasPrefix(uri, prefix) {
		return "", ErrInvalidURI
	}
	meta, _, ok := strings.Cut(uri[len(prefix):], ",")
	if !ok {
		return "", ErrInvalidURI
	}
	return strings.TrimSuffix(meta, ";base64"), nil
}
