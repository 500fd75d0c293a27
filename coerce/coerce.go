// Package coerce provides the primitive coercers and combinators used as
// leaf parsers in a confspec spec. A coercer converts one raw string into
// one typed value or fails with a descriptive cause; combinators build new
// coercers out of existing ones.
//
// Coercers are synchronous and side-effect-free, except where the primitive
// explicitly acquires a resource (File) or queries the system identity
// database (UnixUser, UnixGroup).
package coerce

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// String returns the raw string itself. Empty input fails; wrap with
// Optional to permit an unset value.
func String(text string) (string, error) {
	if text == "" {
		return "", errors.New("no value specified")
	}
	return text, nil
}

// Integer parses a base-10 whole number. To prevent mistakes it rejects
// fractional text rather than truncating it.
func Integer(text string) (int64, error) {
	return strconv.ParseInt(text, 10, 64)
}

// IntegerBase returns an integer coercer for the given base.
func IntegerBase(base int) func(string) (int64, error) {
	return func(text string) (int64, error) {
		return strconv.ParseInt(text, base, 64)
	}
}

// Float parses a floating-point number.
func Float(text string) (float64, error) {
	return strconv.ParseFloat(text, 64)
}

// Boolean parses "true" or "false", case insensitive.
func Boolean(text string) (bool, error) {
	parser := OneOf(map[string]bool{"true": true, "false": false})
	return parser(strings.ToLower(text))
}

// Percent parses a string of the form "37.2%" or "44%" into a float in the
// range [0.0, 1.0].
func Percent(text string) (float64, error) {
	number, ok := strings.CutSuffix(text, "%")
	if !ok {
		return 0, errors.New("the value is not a percentage")
	}
	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, err
	}
	percentage := f / 100.0
	if percentage < 0 || percentage > 1 {
		return 0, errors.New("percentage is out of valid range")
	}
	return percentage, nil
}

var timespanUnits = map[string]time.Duration{
	"millisecond": time.Millisecond,
	"second":      time.Second,
	"minute":      time.Minute,
	"hour":        time.Hour,
	"day":         24 * time.Hour,
}

// Timespan parses a span of time of the form "1 second" or "3 days".
// Units supported are: milliseconds, seconds, minutes, hours, days.
func Timespan(text string) (time.Duration, error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return 0, errors.New("invalid specification")
	}

	count, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, err
	}

	unit := strings.TrimSuffix(parts[1], "s") // depluralize
	scale, ok := timespanUnits[unit]
	if !ok {
		return 0, errors.New("unknown unit")
	}

	return time.Duration(count) * scale, nil
}

// Base64 decodes a base64 encoded block of data. This is useful for
// arbitrary binary blobs.
func Base64(text string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("expected base64 encoded data")
	}
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return data, nil
}
