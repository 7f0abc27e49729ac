// Package dataset turns host-supplied records into the ordered segment
// sequence a pie chart is drawn from.
package dataset

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// NameField is the record key holding the category name.
const NameField = "name"

// Field is one key/value pair of a record, in source order.
type Field struct {
	Key   string
	Value interface{} // float64, string, bool or nil
}

// Record is a generic data row. Field order follows the input document and
// is significant when choosing the value field.
type Record struct {
	Fields []Field
}

// Get returns the value stored under key.
func (r Record) Get(key string) (interface{}, bool) {
	for _, f := range r.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Name returns the record's category name, or "" if it has none.
func (r Record) Name() string {
	v, ok := r.Get(NameField)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Number returns the numeric value stored under key.
func (r Record) Number(key string) (float64, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// ParseRecords decodes a JSON or YAML array of objects. Key order inside
// each object is preserved.
func ParseRecords(data []byte) ([]Record, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse chart data: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("chart data must be a list of records, got %s", kindName(root.Kind))
	}

	records := make([]Record, 0, len(root.Content))
	for i, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("record %d: expected an object, got %s", i, kindName(item.Kind))
		}
		rec, err := decodeRecord(item)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func decodeRecord(node *yaml.Node) (Record, error) {
	rec := Record{Fields: make([]Field, 0, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		v, err := scalarValue(val)
		if err != nil {
			return Record{}, fmt.Errorf("field %q: %w", key.Value, err)
		}
		rec.Fields = append(rec.Fields, Field{Key: key.Value, Value: v})
	}
	return rec, nil
}

func scalarValue(n *yaml.Node) (interface{}, error) {
	if n.Kind != yaml.ScalarNode {
		// Nested values are kept but never treated as numbers.
		return kindName(n.Kind), nil
	}
	switch n.Tag {
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return f, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return b, nil
	case "!!null":
		return nil, nil
	default:
		return n.Value, nil
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "list"
	case yaml.MappingNode:
		return "object"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "nothing"
	}
}
