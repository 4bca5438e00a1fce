package input

import (
	"bytes"

	json "github.com/goccy/go-json"
	"sigs.k8s.io/yaml"

	"support-cost/internal/errors"
)

// decodeJSONList decodes either a single object or an array of objects
func decodeJSONList[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.Input("input file is empty")
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		return items, nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}
	return []T{item}, nil
}

// decodeYAMLList converts YAML to JSON so that the same decoders,
// including custom UnmarshalJSON methods, apply to both formats
func decodeYAMLList[T any](data []byte) ([]T, error) {
	converted, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, errors.Parsing("invalid YAML", err)
	}
	if bytes.Equal(bytes.TrimSpace(converted), []byte("null")) {
		return nil, errors.Input("input file is empty")
	}
	return decodeJSONList[T](converted)
}
