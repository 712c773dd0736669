package util

import (
	"reflect"
	"regexp"

	json "github.com/goccy/go-json"

	"github.com/kbukum/utilkit/errors"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,4}$`)

// ParseJSON decodes text as any top-level JSON value.
func ParseJSON[T ~string | ~[]byte](text T) (any, error) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, errors.Parse("JSON", err)
	}
	return v, nil
}

// IsJSON reports whether text parses as JSON.
func IsJSON[T ~string | ~[]byte](text T) bool {
	_, err := ParseJSON(text)
	return err == nil
}

// IsFunction reports whether v holds a non-nil func.
func IsFunction(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
