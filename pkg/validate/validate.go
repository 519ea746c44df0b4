// Package validate implements the recursive structural matcher that checks
// a model's discovered storage paths against a predictor type's rule tree.
//
// The engine performs no I/O: callers supply the flat list of absolute
// keys (see pkg/storage for listers) and the engine walks the template
// tree level by level, pairing each immediate child name with a
// placeholder, enforcing multiplicity and exclusivity constraints and
// recursing into matched subtrees.
package validate

import (
	"path"
	"sort"

	"github.com/rs/zerolog"

	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/logging"
	"github.com/modelshape/modelshape/pkg/modelpath"
	"github.com/modelshape/modelshape/pkg/template"
	"github.com/modelshape/modelshape/pkg/types"
)

// Engine validates model layouts against a template registry. Engines are
// stateless between calls and safe for concurrent use.
type Engine struct {
	registry *template.Registry
	logger   zerolog.Logger
}

// New returns an engine backed by the built-in templates.
func New() *Engine {
	return NewWithRegistry(template.NewRegistry())
}

// NewWithRegistry returns an engine backed by the given registry.
func NewWithRegistry(r *template.Registry) *Engine {
	return &Engine{
		registry: r,
		logger:   logging.GetLogger("validate"),
	}
}

// Validate checks that the given storage keys, all rooted at commonPrefix,
// form a valid layout for the predictor type in the given mode.
//
// Configuration problems (unknown predictor type) and layout problems are
// both returned as *errors.ShapeError; errors.IsValidation distinguishes
// them. A nil return means the layout conforms.
func (e *Engine) Validate(paths []string, pt types.PredictorType, commonPrefix string, mode types.Mode) error {
	root, err := e.registry.For(pt, mode)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		inner := errors.New(errors.ErrModelPathEmpty, "model path can't be empty")
		return wrapContext(inner, pt, commonPrefix)
	}

	e.logger.Debug().
		Str("predictorType", pt.String()).
		Str("prefix", commonPrefix).
		Str("mode", mode.String()).
		Int("pathCount", len(paths)).
		Msg("Validating model layout")

	return e.walk(root, paths, pt, commonPrefix)
}

// Validate runs a one-off validation against the built-in templates.
func Validate(paths []string, pt types.PredictorType, commonPrefix string, mode types.Mode) error {
	return New().Validate(paths, pt, commonPrefix, mode)
}

// walk matches one tree level and recurses, wrapping any failure with the
// current predictor-and-prefix context so the surfaced error reads as a
// breadcrumb trail from the model root down to the offending path.
func (e *Engine) walk(node *template.Node, paths []string, pt types.PredictorType, prefix string) error {
	if err := e.matchLevel(node, paths, pt, prefix); err != nil {
		return wrapContext(err, pt, prefix)
	}
	return nil
}

func wrapContext(err error, pt types.PredictorType, prefix string) error {
	return errors.Wrapf(err, errors.GetErrorCode(err), "%s predictor at '%s'", pt, prefix)
}

// levelState records, for each object at one tree level, which rule
// claimed it. It lives for exactly one matchLevel call.
type levelState struct {
	objects []string
	claimed []int // index into the level's sorted edges, -1 while unvisited
}

func newLevelState(objects []string) *levelState {
	claimed := make([]int, len(objects))
	for i := range claimed {
		claimed[i] = -1
	}
	return &levelState{objects: objects, claimed: claimed}
}

func (s *levelState) visited(i int) bool { return s.claimed[i] >= 0 }

func (e *Engine) matchLevel(node *template.Node, paths []string, pt types.PredictorType, prefix string) error {
	// Immediate children of the prefix. Keys outside the prefix belong to
	// a sibling subtree and are discarded before matching.
	var rels []string
	for _, p := range paths {
		if rel, ok := modelpath.Relative(p, prefix); ok {
			rels = append(rels, rel)
		}
	}

	objects := childObjects(rels)

	if node == nil {
		// Leaf: the keys must resolve to the prefix itself and introduce
		// no further structure.
		if len(objects) == 0 {
			return nil
		}
		return errors.New(errors.ErrNoSubstructure,
			"template doesn't specify a substructure for the given path")
	}

	edges := node.SortedEdges()
	state := newLevelState(objects)

	if err := e.runPlaceholders(edges, state); err != nil {
		return err
	}

	var unexpected []string
	for i, obj := range state.objects {
		if state.visited(i) {
			continue
		}
		for _, edge := range edges {
			if edge.Key.IsExclusive() && edge.Key.MatchesName(obj) {
				return errors.Newf(errors.ErrExclusiveConflict,
					"%s matches exclusive placeholder %s, which can't be mixed with other objects at this level",
					obj, edge.Key)
			}
		}
		unexpected = append(unexpected, relsUnder(rels, obj)...)
	}
	if len(unexpected) > 0 {
		return errors.Newf(errors.ErrUnexpectedPath,
			"unexpected path(s) for %v", unexpected)
	}

	for i, obj := range state.objects {
		edge := edges[state.claimed[i]]
		// A bare Any leaf accepts any file or any directory, so its
		// substructure is unconstrained and there is nothing to recurse
		// into.
		if edge.Key.Kind() == template.KindAny && edge.Sub == nil {
			continue
		}
		if err := e.walk(edge.Sub, paths, pt, path.Join(prefix, obj)); err != nil {
			return err
		}
	}
	return nil
}

// runPlaceholders evaluates the level's rules against the object set.
// Exclusive rules are tried first: when one accounts for every object the
// level is settled and the remaining rules are skipped entirely;
// otherwise it must claim nothing and the rest must account for
// everything. Non-exclusive rules then run in ascending priority order,
// each mutating the shared claim record.
func (e *Engine) runPlaceholders(edges []template.Edge, state *levelState) error {
	for idx, edge := range edges {
		if !edge.Key.IsExclusive() {
			continue
		}
		if claimIfAll(edge.Key, idx, state) {
			return nil
		}
	}

	for idx, edge := range edges {
		key := edge.Key
		if key.IsExclusive() {
			continue
		}

		var err error
		switch key.Kind() {
		case template.KindInteger:
			err = claimInteger(key, idx, state, len(edges))
		case template.KindAny:
			claimAny(idx, state)
		case template.KindSingle:
			err = claimSingle(key, idx, state, len(edges))
		case template.KindGeneric:
			err = claimGeneric(key, idx, state)
		case template.KindGroup:
			err = claimGroup(key, idx, state)
		default:
			err = errors.New(errors.ErrTemplateInvalid,
				"found a non-placeholder object in model template")
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// claimIfAll claims every object for an exclusive rule iff the rule's
// pattern matches all of them.
func claimIfAll(key template.Placeholder, idx int, state *levelState) bool {
	if len(state.objects) == 0 {
		return false
	}
	for _, obj := range state.objects {
		if !key.MatchesName(obj) {
			return false
		}
	}
	for i := range state.claimed {
		state.claimed[i] = idx
	}
	return true
}

func claimInteger(key template.Placeholder, idx int, state *levelState, ruleCount int) error {
	appearances := 0
	for i, obj := range state.objects {
		if isNumeric(obj) && !state.visited(i) {
			state.claimed[i] = idx
			appearances++
		}
	}

	if appearances > 1 && ruleCount == 1 {
		return errors.Newf(errors.ErrTooManyAppearances,
			"too many %s appearances in path", key)
	}
	if appearances == 0 {
		return errors.Newf(errors.ErrPlaceholderNotFound,
			"%s not found in path", key)
	}
	return nil
}

func claimAny(idx int, state *levelState) {
	for i := range state.claimed {
		if !state.visited(i) {
			state.claimed[i] = idx
		}
	}
}

func claimSingle(key template.Placeholder, idx int, state *levelState, ruleCount int) error {
	if ruleCount > 1 || len(state.objects) > 1 {
		return errors.Newf(errors.ErrSingleConflict,
			"only a single %s placeholder is allowed per directory", key)
	}
	if len(state.objects) > 0 && !state.visited(0) {
		state.claimed[0] = idx
	}
	return nil
}

func claimGeneric(key template.Placeholder, idx int, state *levelState) error {
	for i, obj := range state.objects {
		if obj == key.Value() {
			if !state.visited(i) {
				state.claimed[i] = idx
			}
			return nil
		}
	}
	return errors.Newf(errors.ErrPlaceholderNotFound,
		"%s placeholder for %s wasn't found in path", key.TypeName(), key)
}

func claimGroup(key template.Placeholder, idx int, state *levelState) error {
	appearances := 0
	for i, obj := range state.objects {
		if !state.visited(i) && key.MatchesName(obj) {
			state.claimed[i] = idx
			appearances++
		}
	}
	if appearances == 0 {
		return errors.Newf(errors.ErrPlaceholderNotFound,
			"%s placeholder for %s wasn't found in path", key.TypeName(), key)
	}
	return nil
}

// childObjects reduces relative paths to the sorted, deduplicated set of
// immediate child names. The prefix marker "." is not a child: an object
// set of just "." means the keys resolve to the prefix itself.
func childObjects(rels []string) []string {
	seen := make(map[string]bool, len(rels))
	var objects []string
	for _, rel := range rels {
		name := modelpath.Leftmost(rel)
		if name == "." || seen[name] {
			continue
		}
		seen[name] = true
		objects = append(objects, name)
	}
	sort.Strings(objects)
	return objects
}

// relsUnder returns the relative paths rooted at the given child name,
// for error reporting.
func relsUnder(rels []string, name string) []string {
	var out []string
	for _, rel := range rels {
		if modelpath.Leftmost(rel) == name {
			out = append(out, rel)
		}
	}
	return out
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
