package util

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kbukum/utilkit/errors"
)

func TestEncodeUTF8(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{name: "ascii", in: "abc", want: []byte("abc")},
		{name: "crlf", in: "a\r\nb", want: []byte("a\nb")},
		{name: "lone cr kept", in: "a\rb", want: []byte("a\rb")},
		{name: "two bytes", in: "é", want: []byte{0xc3, 0xa9}},
		{name: "three bytes", in: "€", want: []byte{0xe2, 0x82, 0xac}},
		{name: "four bytes", in: "😀", want: []byte{0xf0, 0x9f, 0x98, 0x80}},
		{name: "empty", in: "", want: []byte{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeUTF8(tt.in))
		})
	}
}

func TestEncodeUTF8Units(t *testing.T) {
	// U+1F600 as a surrogate pair.
	assert.Equal(t, []byte{0xf0, 0x9f, 0x98, 0x80}, EncodeUTF8Units([]uint16{0xd83d, 0xde00}))
	assert.Equal(t, []byte{0xef, 0xbf, 0xbd}, EncodeUTF8Units([]uint16{0xd83d}))
	assert.Equal(t, []byte("a\nb"), EncodeUTF8Units([]uint16{'a', '\r', '\n', 'b'}))
}

func TestEncodeBase64(t *testing.T) {
	assert.Equal(t, "aGVsbG8=", EncodeBase64("hello"))
	assert.Equal(t, "", EncodeBase64(""))
	assert.Equal(t, "w6k=", EncodeBase64("é"))
	assert.Equal(t, "YQpi", EncodeBase64("a\r\nb"))
}

func TestDecodeBase64(t *testing.T) {
	out, err := DecodeBase64(EncodeBase64("héllo 😀"))
	require.NoError(t, err)
	assert.Equal(t, "héllo 😀", out)

	_, err = DecodeBase64("not base64!")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
}

func TestDataURIToBlob(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		wantType string
		wantText string
	}{
		{name: "base64", uri: "data:text/plain;base64,aGVsbG8=", wantType: "text/plain", wantText: "hello"},
		{name: "unpadded base64", uri: "data:text/plain;base64,aGVsbG8", wantType: "text/plain", wantText: "hello"},
		{name: "percent encoded", uri: "data:text/plain,hello%20world", wantType: "text/plain", wantText: "hello world"},
		{name: "charset param", uri: "data:text/html;charset=utf-8,%3Cb%3E", wantType: "text/html", wantText: "<b>"},
		{name: "comma in payload", uri: "data:text/plain,a,b", wantType: "text/plain", wantText: "a,b"},
		{name: "empty payload", uri: "data:text/plain,", wantType: "text/plain", wantText: ""},
		{name: "sniffed type", uri: "data:;base64,iVBORw0KGgoAAAANSUhEUg==", wantType: "image/png", wantText: "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blob, err := DataURIToBlob(tt.uri)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, blob.Type())
			assert.Equal(t, tt.wantText, blob.Text())
			assert.Equal(t, len(tt.wantText), blob.Size())

			b, err := io.ReadAll(blob.Reader())
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, string(b))
		})
	}
}

func TestDataURIToBlob_Invalid(t *testing.T) {
	for _, uri := range []string{
		"no comma here",
		"text/plain,hello",
		"data:text/plain;base64,!!!",
		"data:text/plain,%zz",
	} {
		t.Run(uri, func(t *testing.T) {
			_, err := DataURIToBlob(uri)
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
		})
	}
}

func TestBlob_BytesIsCopy(t *testing.T) {
	blob := NewBlob([]byte("abc"), "text/plain")
	b := blob.Bytes()
	b[0] = 'z'
	assert.Equal(t, "abc", blob.Text())
}
