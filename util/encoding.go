package util

import (
	"encoding/base64"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/kbukum/utilkit/errors"
)

// EncodeUTF8 normalizes CRLF to LF and returns the UTF-8 bytes of text.
// Invalid bytes in text are replaced by U+FFFD.
func EncodeUTF8(text string) []byte {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	out := make([]byte, 0, len(text))
	for _, r := range text {
		out = utf8.AppendRune(out, r)
	}
	return out
}

// EncodeUTF8Units is EncodeUTF8 for UTF-16 code units. Surrogate pairs are
// joined into one 4-byte sequence and lone surrogates become U+FFFD.
func EncodeUTF8Units(units []uint16) []byte {
	normalized := make([]uint16, 0, len(units))
	for i, u := range units {
		if u == '\r' && i+1 < len(units) && units[i+1] == '\n' {
			continue
		}
		normalized = append(normalized, u)
	}

	out := make([]byte, 0, len(normalized))
	for _, r := range utf16.Decode(normalized) {
		out = utf8.AppendRune(out, r)
	}
	return out
}

// EncodeBase64 returns padded standard base64 of EncodeUTF8(text).
func EncodeBase64(text string) string {
	return base64.StdEncoding.EncodeToString(EncodeUTF8(text))
}

// DecodeBase64 reverses EncodeBase64.
func DecodeBase64(encoded string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", errors.InvalidFormat("base64", "padded standard base64").WithCause(err)
	}
	return string(b), nil
}
