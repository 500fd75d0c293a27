package source

import (
	"os"
	"sort"
	"strings"

	"github.com/reoring/confspec"
)

// Environ reads the process environment as a raw source. Only variables
// starting with prefix are included; the prefix is stripped, "__" becomes
// the "." hierarchy separator, and names are lowercased:
//
//	APP_NESTED__ONCE=1  ->  nested.once = "1"  (prefix "APP_")
//
// Keys are sorted so discovery order is deterministic.
func Environ(prefix string) *confspec.RawConfig {
	env := os.Environ()
	sort.Strings(env)

	rc := confspec.NewRawConfig()
	for _, kv := range env {
		name, value, _ := strings.Cut(kv, "=")
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok || rest == "" {
			continue
		}
		key := strings.ToLower(strings.ReplaceAll(rest, "__", "."))
		rc.Set(key, value)
	}
	return rc
}
