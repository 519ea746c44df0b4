// pkg/validate/validate_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test the recursive layout matcher against the built-in and
// hand-built templates

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/template"
	"github.com/modelshape/modelshape/pkg/types"
	"github.com/modelshape/modelshape/pkg/validate"
)

// engineWith builds an engine whose python template is replaced by the
// given tree, for exercising single rule kinds in isolation.
func engineWith(root *template.Node) *validate.Engine {
	r := template.NewRegistry()
	r.Override(types.PythonPredictor, root)
	return validate.NewWithRegistry(r)
}

func TestPythonSinglePath(t *testing.T) {
	paths := []string{"models/a/1/model.pkl"}
	err := validate.Validate(paths, types.PythonPredictor, "models/a", types.ModeSinglePath)
	assert.NoError(t, err)
}

func TestEmptyPathList(t *testing.T) {
	err := validate.Validate(nil, types.PythonPredictor, "models/a", types.ModeSinglePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrModelPathEmpty))
	assert.True(t, errors.IsValidation(err))
	assert.Contains(t, err.Error(), "model path can't be empty")
	assert.Contains(t, err.Error(), "python predictor at 'models/a'")
}

func TestUnknownPredictorTypeIsFatal(t *testing.T) {
	err := validate.Validate([]string{"models/a/1"}, types.PredictorType("libtorch"), "models/a", types.ModeSinglePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
	assert.False(t, errors.IsValidation(err))
}

func TestTensorFlowSavedModel(t *testing.T) {
	paths := []string{
		"models/sentiment/1/saved_model.pb",
		"models/sentiment/1/variables/variables.index",
		"models/sentiment/1/variables/variables.data-00000-of-00001",
	}
	err := validate.Validate(paths, types.TensorFlowPredictor, "models/sentiment", types.ModeSinglePath)
	assert.NoError(t, err)
}

func TestTensorFlowUnexpectedExtraFile(t *testing.T) {
	paths := []string{
		"models/sentiment/1/saved_model.pb",
		"models/sentiment/1/variables/variables.index",
		"models/sentiment/1/variables/variables.data-00000-of-00001",
		"models/sentiment/1/extra.txt",
	}
	err := validate.Validate(paths, types.TensorFlowPredictor, "models/sentiment", types.ModeSinglePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnexpectedPath))
	assert.Contains(t, err.Error(), "extra.txt")
	assert.Contains(t, err.Error(), "tensorflow predictor at 'models/sentiment/1'")
	assert.Contains(t, err.Error(), "tensorflow predictor at 'models/sentiment'")
}

func TestTensorFlowMissingSavedModel(t *testing.T) {
	paths := []string{
		"models/sentiment/1/variables/variables.index",
		"models/sentiment/1/variables/variables.data-00000-of-00001",
	}
	err := validate.Validate(paths, types.TensorFlowPredictor, "models/sentiment", types.ModeSinglePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlaceholderNotFound))
	assert.Contains(t, err.Error(), "saved_model.pb")
}

func TestONNXVersionedLayout(t *testing.T) {
	paths := []string{"models/clf/1/model.onnx"}
	err := validate.Validate(paths, types.ONNXPredictor, "models/clf", types.ModeSinglePath)
	assert.NoError(t, err)
}

func TestONNXFlatLayout(t *testing.T) {
	paths := []string{"models/clf/model.onnx"}
	err := validate.Validate(paths, types.ONNXPredictor, "models/clf", types.ModeSinglePath)
	assert.NoError(t, err)
}

func TestONNXMixedLayoutsConflict(t *testing.T) {
	paths := []string{
		"models/clf/1/model.onnx",
		"models/clf/other.onnx",
	}
	err := validate.Validate(paths, types.ONNXPredictor, "models/clf", types.ModeSinglePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExclusiveConflict))
	assert.Contains(t, err.Error(), "other.onnx")
}

func TestDirectoryModeWrapsModelName(t *testing.T) {
	paths := []string{"zoo/sentiment/1/model.pkl"}
	err := validate.Validate(paths, types.PythonPredictor, "zoo", types.ModeDirectory)
	assert.NoError(t, err)
}

func TestDirectoryModeRejectsMultipleModels(t *testing.T) {
	paths := []string{
		"zoo/sentiment/1/model.pkl",
		"zoo/toxicity/1/model.pkl",
	}
	err := validate.Validate(paths, types.PythonPredictor, "zoo", types.ModeDirectory)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSingleConflict))
}

func TestAnyAloneAcceptsEverything(t *testing.T) {
	engine := engineWith(template.NewNode(template.E(template.Any, nil)))

	paths := []string{
		"m/weights.bin",
		"m/labels.json",
		"m/nested/deep/file",
	}
	err := engine.Validate(paths, types.PythonPredictor, "m", types.ModeSinglePath)
	assert.NoError(t, err)
}

func TestIntegerAlone(t *testing.T) {
	root := template.NewNode(template.E(template.Integer, template.NewNode(
		template.E(template.Any, nil),
	)))

	tests := []struct {
		name     string
		paths    []string
		wantCode errors.ErrorCode
	}{
		{
			name:  "one_numeric_object",
			paths: []string{"m/1/model.bin"},
		},
		{
			name:     "two_numeric_objects",
			paths:    []string{"m/1/model.bin", "m/2/model.bin"},
			wantCode: errors.ErrTooManyAppearances,
		},
		{
			name:     "no_numeric_object",
			paths:    []string{"m/latest/model.bin"},
			wantCode: errors.ErrPlaceholderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engineWith(root).Validate(tt.paths, types.PythonPredictor, "m", types.ModeSinglePath)
			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode),
				"got %v, want code %s", err, tt.wantCode)
		})
	}
}

func TestIntegerAmongOtherRulesMayClaimSeveral(t *testing.T) {
	// With more than one rule at the level, multiple version directories
	// are allowed.
	root := template.NewNode(
		template.E(template.Integer, template.NewNode(template.E(template.Any, nil))),
		template.E(template.Generic("config.json"), nil),
	)

	paths := []string{
		"m/1/model.bin",
		"m/2/model.bin",
		"m/config.json",
	}
	err := engineWith(root).Validate(paths, types.PythonPredictor, "m", types.ModeSinglePath)
	assert.NoError(t, err)
}

func TestSingleRequiresLoneObject(t *testing.T) {
	root := template.NewNode(template.E(template.Single, template.NewNode(
		template.E(template.Any, nil),
	)))

	err := engineWith(root).Validate(
		[]string{"m/anything/file"}, types.PythonPredictor, "m", types.ModeSinglePath)
	assert.NoError(t, err)

	err = engineWith(root).Validate(
		[]string{"m/a/file", "m/b/file"}, types.PythonPredictor, "m", types.ModeSinglePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSingleConflict))
}

func TestGenericConsumesOnlyItsObject(t *testing.T) {
	root := template.NewNode(
		template.E(template.Generic("config.json"), nil),
		template.E(template.Any, nil),
	)

	paths := []string{"m/config.json", "m/weights.bin"}
	err := engineWith(root).Validate(paths, types.PythonPredictor, "m", types.ModeSinglePath)
	assert.NoError(t, err)
}

func TestGenericMissingObject(t *testing.T) {
	root := template.NewNode(
		template.E(template.Generic("config.json"), nil),
		template.E(template.Any, nil),
	)

	err := engineWith(root).Validate(
		[]string{"m/weights.bin"}, types.PythonPredictor, "m", types.ModeSinglePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPlaceholderNotFound))
	assert.Contains(t, err.Error(), "config.json")
}

func TestLeafRejectsSubstructure(t *testing.T) {
	root := template.NewNode(template.E(template.Generic("model.onnx"), nil))

	err := engineWith(root).Validate(
		[]string{"m/model.onnx/nested.bin"}, types.PythonPredictor, "m", types.ModeSinglePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoSubstructure))
	assert.Contains(t, err.Error(), "doesn't specify a substructure")
}

func TestPathsOutsidePrefixAreIgnored(t *testing.T) {
	paths := []string{
		"models/a/1/model.pkl",
		"models/other/junk.txt",
		"unrelated/key",
	}
	err := validate.Validate(paths, types.PythonPredictor, "models/a", types.ModeSinglePath)
	assert.NoError(t, err)
}

func TestOutsidePathsNeverAppearInErrors(t *testing.T) {
	paths := []string{
		"models/a/unexpected.bin",
		"models/a/1/model.pkl",
		"models/other/junk.txt",
	}
	err := validate.Validate(paths, types.PythonPredictor, "models/a", types.ModeSinglePath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected.bin")
	assert.NotContains(t, err.Error(), "junk.txt")
}

func TestValidateIsIdempotent(t *testing.T) {
	paths := []string{
		"models/sentiment/1/saved_model.pb",
		"models/sentiment/1/variables/variables.index",
		"models/sentiment/1/variables/variables.data-00000-of-00001",
		"models/sentiment/1/extra.txt",
	}

	engine := validate.New()
	first := engine.Validate(paths, types.TensorFlowPredictor, "models/sentiment", types.ModeSinglePath)
	second := engine.Validate(paths, types.TensorFlowPredictor, "models/sentiment", types.ModeSinglePath)

	require.Error(t, first)
	require.Error(t, second)
	assert.Equal(t, first.Error(), second.Error())
}

func TestInputPathsAreNotMutated(t *testing.T) {
	paths := []string{
		"models/a/1/model.pkl",
		"models/other/junk.txt",
	}
	original := make([]string, len(paths))
	copy(original, paths)

	_ = validate.Validate(paths, types.PythonPredictor, "models/a", types.ModeSinglePath)
	assert.Equal(t, original, paths)
}
