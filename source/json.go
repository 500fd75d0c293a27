package source

import (
	"bytes"
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/reoring/confspec"
)

// JSON flattens a JSON document into a raw source. Numbers keep their exact
// input text so the spec's coercers decide how they are interpreted.
func JSON(data []byte) (*confspec.RawConfig, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("top-level json value is %T, expected an object", doc)
	}

	flat := map[string]string{}
	if err := flatten("", root, flat); err != nil {
		return nil, err
	}
	return rawFrom(flat), nil
}
