package confspec

import "fmt"

// Namespace is the structured result of a parse. It mirrors the spec's
// nesting: structural fields are always present, dynamic fields only for
// discovered subkeys. Field order follows the spec's declaration order
// (structural) or discovery order (dynamic).
//
// A Namespace is created fresh per parse and never mutated by the engine
// after it is returned.
type Namespace struct {
	keys   []string
	values map[string]any
}

func newNamespace() *Namespace {
	return &Namespace{values: map[string]any{}}
}

func (ns *Namespace) set(name string, value any) {
	if _, ok := ns.values[name]; !ok {
		ns.keys = append(ns.keys, name)
	}
	ns.values[name] = value
}

// Get returns the value stored under name and whether it exists.
func (ns *Namespace) Get(name string) (any, bool) {
	v, ok := ns.values[name]
	return v, ok
}

// Value returns the value stored under name, or nil when absent.
func (ns *Namespace) Value(name string) any { return ns.values[name] }

// Namespace returns the child namespace under name, or nil when the field is
// absent or not a namespace.
func (ns *Namespace) Namespace(name string) *Namespace {
	child, _ := ns.values[name].(*Namespace)
	return child
}

// Keys returns the field names in order. The returned slice is shared;
// callers must not mutate it.
func (ns *Namespace) Keys() []string { return ns.keys }

// Len returns the number of fields.
func (ns *Namespace) Len() int { return len(ns.keys) }

// As returns the value under name asserted to type T.
func As[T any](ns *Namespace, name string) (T, error) {
	var zero T
	v, ok := ns.Get(name)
	if !ok {
		return zero, fmt.Errorf("no field %q in namespace", name)
	}
	tv, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("field %q holds %T, not %T", name, v, zero)
	}
	return tv, nil
}

// MustAs is like As but panics on error. Intended for startup code where a
// type mismatch is a programming defect.
func MustAs[T any](ns *Namespace, name string) T {
	v, err := As[T](ns, name)
	if err != nil {
		panic(err)
	}
	return v
}
