package coerce

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// OneOf returns a coercer accepting one of several literal choices. For each
// option, the map key is what appears in the configuration and the value is
// what it is mapped to.
//
//	OneOf(map[string]string{"hearts": "H", "spades": "S"})
//
// parses "hearts" into "H".
func OneOf[T any](options map[string]T) func(string) (T, error) {
	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(text string) (T, error) {
		v, ok := options[text]
		if !ok {
			var zero T
			return zero, fmt.Errorf("expected one of %q", names)
		}
		return v, nil
	}
}

// TupleOf returns a coercer for a comma-delimited list of type T. Pieces are
// trimmed of whitespace and empty pieces are dropped. At least one value
// must be provided; if an empty list should be a valid choice, wrap with
// Optional.
func TupleOf[T any](item func(string) (T, error)) func(string) ([]T, error) {
	return func(text string) ([]T, error) {
		if text == "" {
			return nil, errors.New("no values provided")
		}
		var values []T
		for _, piece := range strings.Split(text, ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			v, err := item(piece)
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		return values, nil
	}
}

// Optional returns a coercer yielding def when the raw text is empty, and
// delegating to item otherwise. It never fails on its own; item's failures
// still propagate.
func Optional[T any](item func(string) (T, error), def T) func(string) (T, error) {
	return func(text string) (T, error) {
		if text == "" {
			return def, nil
		}
		return item(text)
	}
}

// Fallback returns a coercer that tries primary and, on any failure, retries
// fallback on the same raw text. When both fail, the fallback's failure
// propagates. This is useful for backwards-compatible configuration changes.
func Fallback[T any](primary, fallback func(string) (T, error)) func(string) (T, error) {
	return func(text string) (T, error) {
		v, err := primary(text)
		if err != nil {
			return fallback(text)
		}
		return v, nil
	}
}
