package confspec

import "fmt"

// Parser is the capability shared by every spec node: given the dotted key
// path it is responsible for and the full raw source, produce a typed value
// or fail. The three realizations are Leaf (one coercer, one raw value),
// Object (fixed fields), and DictOf (data-discovered fields).
//
// Parsers are immutable once built and safe for concurrent reuse across
// parses; the raw source is read-only for the duration of a call.
type Parser interface {
	Parse(keyPath string, raw *RawConfig) (any, error)
}

// Leaf wraps a coercer as a Parser. The coercer is invoked with the exact
// raw string at the parser's key path, or the empty string when the key is
// absent. Any coercer failure is rewrapped into a *ConfigError carrying the
// full key path and the original cause.
func Leaf[T any](coercer func(string) (T, error)) Parser {
	return leafParser[T]{coercer: coercer}
}

type leafParser[T any] struct {
	coercer func(string) (T, error)
}

func (p leafParser[T]) Parse(keyPath string, raw *RawConfig) (any, error) {
	v, err := p.coercer(raw.Get(keyPath))
	if err != nil {
		return nil, NewConfigError(keyPath, err)
	}
	return v, nil
}

// Parse drives a single top-level parse of raw against root. The root parser
// is usually built with Object or DictOf, in which case the result is a
// *Namespace; a Leaf root yields the coercer's value directly.
func Parse(raw *RawConfig, root Parser) (any, error) {
	if root == nil {
		return nil, &SpecError{Reason: "nil parser"}
	}
	return root.Parse("", raw)
}

// ParseConfig drives a top-level parse whose root produces a namespace.
func ParseConfig(raw *RawConfig, root Parser) (*Namespace, error) {
	v, err := Parse(raw, root)
	if err != nil {
		return nil, err
	}
	ns, ok := v.(*Namespace)
	if !ok {
		return nil, &SpecError{Reason: fmt.Sprintf("root parser produced %T, not a namespace", v)}
	}
	return ns, nil
}

// ParseValue drives a top-level parse and asserts the result to T.
func ParseValue[T any](raw *RawConfig, root Parser) (T, error) {
	var zero T
	v, err := Parse(raw, root)
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, &SpecError{Reason: fmt.Sprintf("root parser produced %T, not %T", v, zero)}
	}
	return tv, nil
}

// joinKey computes the child key path: parent + "." + name, or bare name at
// the root.
func joinKey(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}
