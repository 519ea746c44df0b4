package modelpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modelshape/modelshape/pkg/modelpath"
)

func TestRelative(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  string
		want    string
		wantOK  bool
	}{
		{
			name:   "direct_child",
			path:   "models/a/1/model.pkl",
			prefix: "models/a",
			want:   "1/model.pkl",
			wantOK: true,
		},
		{
			name:   "prefix_itself",
			path:   "models/a",
			prefix: "models/a",
			want:   ".",
			wantOK: true,
		},
		{
			name:   "sibling_escapes_prefix",
			path:   "models/other/z",
			prefix: "models/a",
			wantOK: false,
		},
		{
			name:   "prefix_is_name_prefix_but_not_path_prefix",
			path:   "models/ab/x",
			prefix: "models/a",
			wantOK: false,
		},
		{
			name:   "repeated_separators",
			path:   "models//a//1/model.pkl",
			prefix: "models/a",
			want:   "1/model.pkl",
			wantOK: true,
		},
		{
			name:   "trailing_separator_on_prefix",
			path:   "models/a/1",
			prefix: "models/a/",
			want:   "1",
			wantOK: true,
		},
		{
			name:   "empty_prefix",
			path:   "a/b",
			prefix: "",
			want:   "a/b",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := modelpath.Relative(tt.path, tt.prefix)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLeftmost(t *testing.T) {
	tests := []struct {
		name string
		rel  string
		want string
	}{
		{name: "multi_component", rel: "1/variables/variables.index", want: "1"},
		{name: "single_component", rel: "model.onnx", want: "model.onnx"},
		{name: "trailing_separator", rel: "1/", want: "1"},
		{name: "repeated_separators", rel: "1//variables", want: "1"},
		{name: "dot", rel: ".", want: "."},
		{name: "empty", rel: "", want: "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, modelpath.Leftmost(tt.rel))
		})
	}
}
