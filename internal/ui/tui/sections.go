package tui

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// section is one top-level entry of a rendered document.
type section struct {
	key     string
	summary string
	body    string
}

func (s section) Title() string       { return s.key }
func (s section) Description() string { return s.summary }
func (s section) FilterValue() string { return s.key }

// splitSections cuts a rendered document into its top-level entries, keeping
// document order. Each body is the entry re-encoded on its own.
func splitSections(doc []byte) ([]section, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(doc, &root); err != nil {
		return nil, err
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	m := root.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document root is not a mapping")
	}

	out := make([]section, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]

		one := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: []*yaml.Node{k, v}}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(one); err != nil {
			return nil, err
		}
		_ = enc.Close()

		out = append(out, section{
			key:     k.Value,
			summary: summarize(v),
			body:    strings.TrimSuffix(buf.String(), "\n"),
		})
	}
	return out, nil
}

func summarize(n *yaml.Node) string {
	switch n.Kind {
	case yaml.ScalarNode:
		return clampString(n.Value, 60)
	case yaml.SequenceNode:
		if len(n.Content) == 1 {
			return "1 item"
		}
		return fmt.Sprintf("%d items", len(n.Content))
	case yaml.MappingNode:
		keys := make([]string, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keys = append(keys, n.Content[i].Value)
		}
		return clampString(strings.Join(keys, ", "), 60)
	default:
		return ""
	}
}

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}
