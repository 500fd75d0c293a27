package confspec

import "sort"

// RawConfig is the flat, string-keyed, string-valued configuration input.
// Hierarchy is encoded entirely in key text via "." separators; RawConfig
// itself holds no nested structure.
//
// Keys iterate in insertion order. Dynamic-key discovery walks this order,
// so it is well defined rather than subject to Go map iteration randomness.
// RawConfig is designed for small, one-shot configuration sets and keeps no
// index beyond the backing map.
type RawConfig struct {
	keys   []string
	values map[string]string
}

// NewRawConfig returns an empty raw source.
func NewRawConfig() *RawConfig {
	return &RawConfig{values: map[string]string{}}
}

// RawConfigFrom builds a raw source from a plain map. Keys are sorted
// lexicographically so that map-literal construction stays deterministic.
func RawConfigFrom(m map[string]string) *RawConfig {
	rc := &RawConfig{
		keys:   make([]string, 0, len(m)),
		values: make(map[string]string, len(m)),
	}
	for k := range m {
		rc.keys = append(rc.keys, k)
	}
	sort.Strings(rc.keys)
	for _, k := range rc.keys {
		rc.values[k] = m[k]
	}
	return rc
}

// Set stores value under key, appending the key on first sight.
func (rc *RawConfig) Set(key, value string) {
	if _, ok := rc.values[key]; !ok {
		rc.keys = append(rc.keys, key)
	}
	rc.values[key] = value
}

// Get returns the raw string at key, or the empty string when the key is
// absent. Absence is represented purely as the empty string; there is no
// distinct missing value.
func (rc *RawConfig) Get(key string) string {
	return rc.values[key]
}

// Has reports whether key was explicitly set.
func (rc *RawConfig) Has(key string) bool {
	_, ok := rc.values[key]
	return ok
}

// Keys returns the keys in iteration order. The returned slice is shared;
// callers must not mutate it.
func (rc *RawConfig) Keys() []string { return rc.keys }

// Len returns the number of keys.
func (rc *RawConfig) Len() int { return len(rc.keys) }
