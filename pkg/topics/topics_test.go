package topics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelshape/modelshape/pkg/errors"
	"github.com/modelshape/modelshape/pkg/topics"
)

func TestList(t *testing.T) {
	names := topics.List()
	assert.Equal(t, []string{"layouts", "templates"}, names)
}

func TestRenderPlain(t *testing.T) {
	out, err := topics.Render("layouts", true)
	require.NoError(t, err)
	assert.Contains(t, out, "# Model layouts")
}

func TestRenderUnknownTopic(t *testing.T) {
	_, err := topics.Render("nope", true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "layouts")
}
