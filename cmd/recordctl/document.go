package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/on-the-ground/pure_ive_go/pure"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyDocument = errors.New("empty document")
	ErrNotSequence   = errors.New("document is not a list")
	ErrNotMapping    = errors.New("document is not a mapping")
)

// decodeDocument parses YAML (or JSON) into plain values, keeping mapping
// order by decoding mappings into *pure.Record[any].
func decodeDocument(data []byte) (any, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	if root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		return nil, ErrEmptyDocument
	}
	return fromNode(&root)
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		return fromNode(n.Content[0])

	case yaml.AliasNode:
		return fromNode(n.Alias)

	case yaml.SequenceNode:
		items := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			items = append(items, v)
		}
		return items, nil

	case yaml.MappingNode:
		rec := pure.NewRecord[any]()
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, fmt.Errorf("line %d: mapping key: %w", n.Content[i].Line, err)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			rec.Set(key, v)
		}
		return rec, nil

	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return v, nil
	}
}

func asSequence(doc any) ([]any, error) {
	items, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotSequence, doc)
	}
	return items, nil
}

func asMapping(doc any) (*pure.Record[any], error) {
	rec, ok := doc.(*pure.Record[any])
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, doc)
	}
	return rec, nil
}

// toNode renders a value back into YAML, keeping record order.
func toNode(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case *pure.Record[any]:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for k, val := range v.All() {
			child, err := toNode(val)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, child)
		}
		return n, nil

	case []any:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			child, err := toNode(item)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, child)
		}
		return n, nil

	case map[string]any:
		return toNode(pure.RecordOf(v))

	default:
		n := &yaml.Node{}
		if err := n.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode %T: %w", v, err)
		}
		return n, nil
	}
}

// toPlain converts records into maps for encoders that do not know them.
func toPlain(v any) any {
	switch v := v.(type) {
	case *pure.Record[any]:
		out := make(map[string]any, v.Len())
		for k, val := range v.All() {
			out[k] = toPlain(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = toPlain(item)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = toPlain(val)
		}
		return out
	default:
		return v
	}
}

func writeYAML(w io.Writer, v any) error {
	n, err := toNode(v)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return fmt.Errorf("failed to write yaml: %w", err)
	}
	return enc.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toPlain(v)); err != nil {
		return fmt.Errorf("failed to write json: %w", err)
	}
	return nil
}
