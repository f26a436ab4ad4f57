package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	yaml "go.yaml.in/yaml/v3"
)

// coerceToJSONBytes funnels YAML config through JSON so one strict decoder
// (DisallowUnknownFields) covers both formats. Non-YAML extensions pass
// through untouched and are decoded as JSON directly.
func coerceToJSONBytes(path string, data []byte) ([]byte, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return data, "json", nil
	}

	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, "yaml", fmt.Errorf("yaml unmarshal: %w", err)
	}

	j, err := json.Marshal(stringifyKeys(v))
	if err != nil {
		return nil, "yaml", fmt.Errorf("yaml->json marshal: %w", err)
	}
	return j, "yaml", nil
}

// stringifyKeys rewrites YAML's map[any]any nodes with string keys so the
// tree can be JSON-marshaled.
func stringifyKeys(in any) any {
	switch node := in.(type) {
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, v := range node {
			out[fmt.Sprint(k)] = stringifyKeys(v)
		}
		return out
	case map[string]any:
		for k, v := range node {
			node[k] = stringifyKeys(v)
		}
		return node
	case []any:
		for i := range node {
			node[i] = stringifyKeys(node[i])
		}
		return node
	default:
		return in
	}
}
