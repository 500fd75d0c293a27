package source

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/reoring/confspec"
)

// YAML flattens a YAML document into a raw source.
func YAML(data []byte) (*confspec.RawConfig, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	flat := map[string]string{}
	if err := flatten("", doc, flat); err != nil {
		return nil, err
	}
	return rawFrom(flat), nil
}
