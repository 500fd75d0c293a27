package source

import (
	"fmt"

	"gopkg.in/ini.v1"

	"github.com/reoring/confspec"
)

// INI reads one section of an INI document as a raw source. INI files are
// already flat; keys keep their file order, including any dotted names like
// "nested.once = 1".
func INI(data []byte, section string) (*confspec.RawConfig, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("decoding ini: %w", err)
	}
	sec, err := file.GetSection(section)
	if err != nil {
		return nil, fmt.Errorf("no section %q: %w", section, err)
	}

	rc := confspec.NewRawConfig()
	for _, key := range sec.Keys() {
		rc.Set(key.Name(), key.Value())
	}
	return rc, nil
}
