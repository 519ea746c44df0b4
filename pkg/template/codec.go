package template

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/types"
)

// ParseToken parses a segment pattern in token syntax into a placeholder.
//
// Operation placeholders are written in angle brackets and literal text is
// taken verbatim; mixing them forms a group:
//
//	"<integer>"                      Integer
//	"saved_model.pb"                 Generic("saved_model.pb")
//	"variables.data-00000-of-<any>"  Group(Generic(...), Any)
//	"<exclusive><single>.onnx"       Group(Exclusive, Single, Generic(".onnx"))
func ParseToken(s string) (Placeholder, error) {
	if s == "" {
		return Placeholder{}, errors.New(errors.ErrTemplateParse, "empty placeholder token")
	}

	var parts []Placeholder
	rest := s
	for rest != "" {
		open := strings.IndexByte(rest, '<')
		if open < 0 {
			parts = append(parts, Generic(rest))
			break
		}
		if open > 0 {
			parts = append(parts, Generic(rest[:open]))
			rest = rest[open:]
		}
		end := strings.IndexByte(rest, '>')
		if end < 0 {
			return Placeholder{}, errors.Newf(errors.ErrTemplateParse,
				"unterminated placeholder token in %q", s)
		}
		switch rest[:end+1] {
		case "<integer>":
			parts = append(parts, Integer)
		case "<single>":
			parts = append(parts, Single)
		case "<exclusive>":
			parts = append(parts, Exclusive)
		case "<any>":
			parts = append(parts, Any)
		default:
			return Placeholder{}, errors.Newf(errors.ErrTemplateParse,
				"unknown placeholder token %q in %q", rest[:end+1], s)
		}
		rest = rest[end+1:]
	}

	if len(parts) == 1 {
		return parts[0], nil
	}
	return Group(parts...), nil
}

// Representation renders a rule tree as nested maps keyed by token
// strings, with nil marking leaves. The result marshals cleanly to YAML
// or JSON for display.
func Representation(n *Node) map[string]interface{} {
	if n == nil {
		return nil
	}
	out := make(map[string]interface{}, len(n.Edges))
	for _, e := range n.Edges {
		if e.Sub == nil {
			out[e.Key.String()] = nil
			continue
		}
		out[e.Key.String()] = Representation(e.Sub)
	}
	return out
}

// ParseYAML parses template overrides from a YAML document mapping
// predictor type names to rule trees in token syntax:
//
//	python:
//	  "<integer>":
//	    "<any>": null
//
// Edge order follows document order, so authored priority ties keep their
// declared position.
func ParseYAML(data []byte) (map[types.PredictorType]*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrTemplateParse, "invalid template YAML")
	}
	if len(doc.Content) == 0 {
		return map[types.PredictorType]*Node{}, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, errors.New(errors.ErrTemplateParse,
			"template document must be a mapping of predictor types")
	}

	out := make(map[types.PredictorType]*Node, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]
		pt, err := types.ParsePredictorType(key.Value)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateParse,
				"line %d", key.Line)
		}
		node, err := parseTreeNode(val)
		if err != nil {
			return nil, err
		}
		if node == nil {
			return nil, errors.Newf(errors.ErrTemplateParse,
				"template for %s must not be empty", pt)
		}
		out[pt] = node
	}
	return out, nil
}

func parseTreeNode(n *yaml.Node) (*Node, error) {
	switch {
	case n.Tag == "!!null":
		return nil, nil
	case n.Kind == yaml.MappingNode:
		node := &Node{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			key, val := n.Content[i], n.Content[i+1]
			ph, err := ParseToken(key.Value)
			if err != nil {
				return nil, err
			}
			sub, err := parseTreeNode(val)
			if err != nil {
				return nil, err
			}
			node.Edges = append(node.Edges, Edge{Key: ph, Sub: sub})
		}
		return node, nil
	default:
		return nil, errors.Newf(errors.ErrTemplateParse,
			"line %d: template nodes must be mappings or null", n.Line)
	}
}
