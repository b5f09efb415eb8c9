package flow

import (
	"encoding/json"
	"fmt"
	"strings"

	"trustedform/internal/trustedform/lead"
)

// Vars applies the mappings to an empty lead the way the pipeline does:
// dotted properties nest, Value maps as a string and Values as a list.
func (i Integration) Vars() (*lead.Vars, error) {
	root := map[string]any{}
	for _, m := range i.Mappings {
		var v any = m.Value
		if m.Values != nil {
			v = m.Values
		}
		if err := setPath(root, strings.Split(m.Property, "."), v); err != nil {
			return nil, err
		}
	}

	raw, err := json.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("encode mappings: %w", err)
	}
	vars := &lead.Vars{}
	if err := json.Unmarshal(raw, vars); err != nil {
		return nil, fmt.Errorf("decode mappings: %w", err)
	}
	return vars, nil
}

func setPath(node map[string]any, path []string, v any) error {
	for _, key := range path[:len(path)-1] {
		child, ok := node[key].(map[string]any)
		if !ok {
			if _, taken := node[key]; taken {
				return fmt.Errorf("mapping %s conflicts with %s", strings.Join(path, "."), key)
			}
			child = map[string]any{}
			node[key] = child
		}
		node = child
	}
	node[path[len(path)-1]] = v
	return nil
}
