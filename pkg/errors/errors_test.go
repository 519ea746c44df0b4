// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and classification

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/modelshape/modelshape/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "unexpected_path_error",
			code:    errors.ErrUnexpectedPath,
			message: "unexpected path(s) for [1/extra.txt]",
			wantStr: "[UNEXPECTED_PATH] unexpected path(s) for [1/extra.txt]",
		},
		{
			name:    "template_not_found_error",
			code:    errors.ErrTemplateNotFound,
			message: "no model template registered for predictor type onnx",
			wantStr: "[TEMPLATE_NOT_FOUND] no model template registered for predictor type onnx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrapRendersOuterToInner(t *testing.T) {
	inner := errors.New(errors.ErrPlaceholderNotFound, "<integer> not found in path")
	mid := errors.Wrapf(inner, errors.ErrPlaceholderNotFound, "python predictor at 'models/a/1'")
	outer := errors.Wrapf(mid, errors.ErrPlaceholderNotFound, "python predictor at 'models/a'")

	want := "[PLACEHOLDER_NOT_FOUND] python predictor at 'models/a': " +
		"[PLACEHOLDER_NOT_FOUND] python predictor at 'models/a/1': " +
		"[PLACEHOLDER_NOT_FOUND] <integer> not found in path"
	if got := outer.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if !stderrors.Is(outer, inner) {
		t.Error("wrapped chain should satisfy errors.Is against the inner error")
	}
}

func TestWrapNil(t *testing.T) {
	if err := errors.Wrap(nil, errors.ErrInternal, "ignored"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

func TestRootCode(t *testing.T) {
	inner := errors.New(errors.ErrModelPathEmpty, "model path can't be empty")
	outer := errors.Wrapf(inner, errors.ErrModelPathEmpty, "python predictor at 'models/a'")

	if got := errors.RootCode(outer); got != errors.ErrModelPathEmpty {
		t.Errorf("RootCode() = %v, want %v", got, errors.ErrModelPathEmpty)
	}

	if got := errors.RootCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("RootCode(plain error) = %v, want %v", got, errors.ErrUnknown)
	}
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "validation_code",
			err:  errors.New(errors.ErrUnexpectedPath, "unexpected path(s)"),
			want: true,
		},
		{
			name: "wrapped_validation_code",
			err: errors.Wrapf(
				errors.New(errors.ErrSingleConflict, "only a single <single> placeholder is allowed per directory"),
				errors.ErrSingleConflict, "onnx predictor at 'models'"),
			want: true,
		},
		{
			name: "configuration_code",
			err:  errors.New(errors.ErrTemplateNotFound, "no template"),
			want: false,
		},
		{
			name: "storage_code",
			err:  errors.New(errors.ErrStorageList, "listing failed"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsValidation(tt.err); got != tt.want {
				t.Errorf("IsValidation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrConfigParse, "bad toml")
	if !errors.IsErrorCode(err, errors.ErrConfigParse) {
		t.Error("IsErrorCode should match the error's own code")
	}
	if errors.IsErrorCode(err, errors.ErrConfigLoad) {
		t.Error("IsErrorCode should not match a different code")
	}
}
