package confspec

import "strings"

// DictOf returns a Parser whose field set is not known in advance but is
// discovered from the raw source: every distinct key segment found directly
// under the parser's key path is resolved once via sub.
//
// This is useful for providing data to the application without the
// application having to know ahead of time all of the possible keys.
func DictOf(sub Parser) Parser {
	if sub == nil {
		return dictParser{}
	}
	return dictParser{sub: sub}
}

type dictParser struct {
	sub Parser
}

func (p dictParser) Parse(keyPath string, raw *RawConfig) (any, error) {
	if p.sub == nil {
		return nil, &SpecError{Reason: "DictOf: nil subordinate parser"}
	}

	prefix := ""
	if keyPath != "" {
		prefix = keyPath + "."
	}

	// Scan raw keys in their native order so discovery order is well
	// defined. Each subkey resolves exactly once at this level; deeper
	// structure is consumed by the subordinate's own recursive lookups.
	ns := newNamespace()
	seen := map[string]struct{}{}
	for _, key := range raw.Keys() {
		rest, ok := strings.CutPrefix(key, prefix)
		if !ok || rest == "" {
			continue
		}
		subkey, _, _ := strings.Cut(rest, ".")
		if _, dup := seen[subkey]; dup {
			continue
		}
		seen[subkey] = struct{}{}

		v, err := p.sub.Parse(prefix+subkey, raw)
		if err != nil {
			return nil, err
		}
		ns.set(subkey, v)
	}
	// No matching keys is an empty namespace, not a failure.
	return ns, nil
}
