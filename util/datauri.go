package util

import (
	"bytes"
	"encoding/base64"
	"io"
	"net/url"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/kbukum/utilkit/errors"
)

const dataURIFormat = "data:<mime>[;params][;base64],<payload>"

// Blob is an in-memory payload tagged with a MIME type.
type Blob struct {
	mimeType string
	data     []byte
}

// NewBlob wraps data. The slice is not copied.
func NewBlob(data []byte, mimeType string) *Blob {
	return &Blob{mimeType: mimeType, data: data}
}

// Type returns the MIME type.
func (b *Blob) Type() string { return b.mimeType }

// Size returns the payload length in bytes.
func (b *Blob) Size() int { return len(b.data) }

// Bytes returns a copy of the payload.
func (b *Blob) Bytes() []byte { return bytes.Clone(b.data) }

// Reader returns a reader over the payload.
func (b *Blob) Reader() io.Reader { return bytes.NewReader(b.data) }

// Text returns the payload as a string.
func (b *Blob) Text() string { return string(b.data) }

// DataURIToBlob decodes a data URI. The payload is everything after the
// first comma, base64 decoded when the header carries a base64 parameter and
// percent-decoded otherwise. A missing MIME type is detected from the bytes.
func DataURIToBlob(uri string) (*Blob, error) {
	header, payload, ok := strings.Cut(uri, ",")
	if !ok || len(header) < len("data:") || !strings.EqualFold(header[:len("data:")], "data:") {
		return nil, errors.InvalidFormat("dataURI", dataURIFormat)
	}

	params := strings.Split(header[len("data:"):], ";")
	mimeType := strings.TrimSpace(params[0])
	isBase64 := false
	for _, p := range params[1:] {
		if strings.EqualFold(strings.TrimSpace(p), "base64") {
			isBase64 = true
		}
	}

	data, err := decodePayload(payload, isBase64)
	if err != nil {
		return nil, err
	}

	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}
	return NewBlob(data, mimeType), nil
}

func decodePayload(payload string, isBase64 bool) ([]byte, error) {
	if isBase64 {
		data, err := base64.StdEncoding.DecodeString(payload)
		if err == nil {
			return data, nil
		}
		if data, rawErr := base64.RawStdEncoding.DecodeString(payload); rawErr == nil {
			return data, nil
		}
		return nil, errors.InvalidFormat("dataURI", "base64 payload").WithCause(err)
	}

	text, err := url.PathUnescape(payload)
	if err != nil {
		return nil, errors.InvalidFormat("dataURI", "percent-encoded payload").WithCause(err)
	}
	return []byte(text), nil
}
