package template_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/template"
	"github.com/modelshape/modelshape/pkg/types"
)

func TestRegistryKnowsEveryPredictorType(t *testing.T) {
	r := template.NewRegistry()
	for _, pt := range types.PredictorTypes() {
		root, err := r.For(pt, types.ModeSinglePath)
		require.NoError(t, err, "predictor %s", pt)
		require.NotNil(t, root)
		assert.NotEmpty(t, root.Edges)
	}
}

func TestRegistryUnknownPredictorIsConfigurationError(t *testing.T) {
	r := template.NewRegistry()
	_, err := r.For(types.PredictorType("libtorch"), types.ModeSinglePath)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateNotFound))
	assert.False(t, errors.IsValidation(err))
}

func TestRegistryDirectoryModeWrapsUnderSingle(t *testing.T) {
	r := template.NewRegistry()

	single, err := r.For(types.PythonPredictor, types.ModeSinglePath)
	require.NoError(t, err)

	dir, err := r.For(types.PythonPredictor, types.ModeDirectory)
	require.NoError(t, err)

	require.Len(t, dir.Edges, 1)
	assert.Equal(t, template.KindSingle, dir.Edges[0].Key.Kind())

	sub, ok := dir.Lookup(template.Single)
	require.True(t, ok)
	assert.Equal(t, template.Representation(single), template.Representation(sub))
}

func TestRegistryOverride(t *testing.T) {
	r := template.NewRegistry()
	custom := template.NewNode(template.E(template.Any, nil))
	r.Override(types.PythonPredictor, custom)

	root, err := r.For(types.PythonPredictor, types.ModeSinglePath)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"<any>": nil}, template.Representation(root))
}
