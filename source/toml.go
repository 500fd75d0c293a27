package source

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/reoring/confspec"
)

// TOML flattens a TOML document into a raw source.
func TOML(data []byte) (*confspec.RawConfig, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding toml: %w", err)
	}

	flat := map[string]string{}
	if err := flatten("", doc, flat); err != nil {
		return nil, err
	}
	return rawFrom(flat), nil
}
