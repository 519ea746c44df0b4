package template

import (
	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/types"
)

// Registry resolves the rule tree for a (predictor type, mode) pair.
// The zero value is not usable; construct with NewRegistry.
type Registry struct {
	templates map[types.PredictorType]*Node
}

// NewRegistry returns a registry holding the built-in templates.
func NewRegistry() *Registry {
	return &Registry{templates: builtin()}
}

// Override replaces the single-model template for one predictor type.
// Used by deployments that ship custom layouts.
func (r *Registry) Override(pt types.PredictorType, root *Node) {
	r.templates[pt] = root
}

// For returns the rule tree for the given predictor type and mode.
// Directory mode wraps the single-model tree under a synthetic Single
// edge: exactly one arbitrarily named model directory whose contents must
// match the single-model template.
//
// An unregistered predictor type is a configuration error, not a
// validation failure.
func (r *Registry) For(pt types.PredictorType, mode types.Mode) (*Node, error) {
	root, ok := r.templates[pt]
	if !ok {
		return nil, errors.Newf(errors.ErrTemplateNotFound,
			"no model template registered for predictor type %s", pt)
	}
	if mode == types.ModeDirectory {
		return NewNode(E(Single, root)), nil
	}
	return root, nil
}

// For resolves against the built-in templates without constructing a
// registry.
func For(pt types.PredictorType, mode types.Mode) (*Node, error) {
	return NewRegistry().For(pt, mode)
}
