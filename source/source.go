// Package source produces confspec raw sources from concrete configuration
// formats. Each provider flattens its format's nesting into dotted keys and
// renders scalars in canonical text form, leaving all typing and validation
// to the spec that later parses the result.
//
// Providers emit keys in sorted order so dynamic-key discovery over their
// output is deterministic.
package source

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/reoring/confspec"
)

// flatten walks a decoded document and writes dotted keys into out. Nested
// maps extend the key path; scalar slices join with ", " so that
// coerce.TupleOf round-trips them. A slice containing a map or another
// slice has no flat representation and is an error.
func flatten(prefix string, v any, out map[string]string) error {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			if err := flatten(key, child, out); err != nil {
				return err
			}
		}
		return nil
	case map[any]any:
		for k, child := range t {
			name, ok := k.(string)
			if !ok {
				return fmt.Errorf("key %v at %q is not a string", k, prefix)
			}
			key := name
			if prefix != "" {
				key = prefix + "." + name
			}
			if err := flatten(key, child, out); err != nil {
				return err
			}
		}
		return nil
	case []any:
		pieces := make([]string, len(t))
		for i, item := range t {
			s, err := scalarText(item)
			if err != nil {
				return fmt.Errorf("list at %q: %w", prefix, err)
			}
			pieces[i] = s
		}
		out[prefix] = strings.Join(pieces, ", ")
		return nil
	default:
		s, err := scalarText(v)
		if err != nil {
			return fmt.Errorf("value at %q: %w", prefix, err)
		}
		out[prefix] = s
		return nil
	}
}

func scalarText(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), nil
	case fmt.Stringer: // e.g. json.Number keeps the exact input text
		return t.String(), nil
	default:
		return "", fmt.Errorf("cannot flatten %T", v)
	}
}

// rawFrom converts a flat map into a RawConfig with sorted keys.
func rawFrom(flat map[string]string) *confspec.RawConfig {
	keys := make([]string, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	rc := confspec.NewRawConfig()
	for _, k := range keys {
		rc.Set(k, flat[k])
	}
	return rc
}
