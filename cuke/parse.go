package cuke

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/acarl005/stripansi"

	"cukejunit/types"
)

// Parse decodes a Cucumber JSON results document. Engines interleave console
// noise and color codes with their JSON output, so the data is cleaned before
// decoding.
func Parse(data []byte) ([]Feature, error) {
	cleaned := clean(data)
	var features []Feature
	if err := json.Unmarshal(cleaned, &features); err != nil {
		return nil, fmt.Errorf("failed to decode cucumber results: %w", err)
	}
	return features, nil
}

// LoadFile reads a Cucumber JSON results file and converts it into the
// report model.
func LoadFile(path string) ([]*types.Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read results file %s: %w", path, err)
	}
	features, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("results file %s: %w", path, err)
	}
	return Convert(features), nil
}

// clean strips ANSI escape sequences and any leading non-JSON noise.
func clean(data []byte) []byte {
	stripped := []byte(stripansi.Strip(string(data)))
	stripped = bytes.TrimSpace(stripped)
	if len(stripped) == 0 {
		return stripped
	}
	if stripped[0] == '[' || stripped[0] == '{' {
		return stripped
	}
	for i, b := range stripped {
		if b == '[' || b == '{' {
			return bytes.TrimSpace(stripped[i:])
		}
	}
	return stripped
}
