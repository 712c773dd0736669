package util

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/utilkit/errors"
)

const (
	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digits       = "0123456789"
	hexDigits    = "0123456789abcdef"
	uuidTemplate = "xxxxxxxx-xxxx-4xxx-yxxx-xxxxxxxxxxxx"
)

// UUID returns a random version 4 UUID in canonical lowercase form.
func UUID() string {
	return uuid.NewString()
}

// TimeSeededUUID builds a version 4 shaped UUID by mixing the clock into
// pseudo-random digits. It is deterministic for a fixed now and src, which
// makes it useful in tests, but it is not unique across machines. A nil src
// is seeded from now.
func TimeSeededUUID(now time.Time, src *rand.Rand) string {
	if src == nil {
		src = rand.New(rand.NewPCG(uint64(now.UnixNano()), 0))
	}

	// Times before 1970 have negative millis; mix in the magnitude.
	d := math.Abs(float64(now.UnixMilli()))
	out := []byte(uuidTemplate)
	for i, c := range out {
		if c != 'x' && c != 'y' {
			continue
		}
		r := int(math.Mod(d+src.Float64()*16, 16)) & 0xf
		d = math.Floor(d / 16)
		if c == 'y' {
			r = r&0x3 | 0x8
		}
		out[i] = hexDigits[r]
	}
	return string(out)
}

// Random returns length characters drawn uniformly from A-Za-z (when
// useAlphabet) and 0-9 (when useNumbers). It is not suitable for secrets.
func Random(length int, useAlphabet, useNumbers bool) (string, error) {
	if length < 0 {
		return "", errors.InvalidArgument("length", "must not be negative")
	}

	pool := ""
	if useAlphabet {
		pool += alphabet
	}
	if useNumbers {
		pool += digits
	}
	if pool == "" {
		return "", errors.InvalidArgument("pool", "enable letters, numbers or both")
	}

	out := make([]byte, length)
	for i := range out {
		out[i] = pool[rand.IntN(len(pool))]
	}
	return string(out), nil
}

// RandomToken is Random with letters and numbers.
func RandomToken(length int) (string, error) {
	return Random(length, true, true)
}
