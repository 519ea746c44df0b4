// Package types holds the shared value types and collaborator contracts
// used across modelshape: predictor types, path modes, and the storage
// lister interface the validation engine is fed from.
package types

import (
	"context"
	"fmt"
	"strings"
)

// PredictorType identifies the serving runtime a model is packaged for.
// Each predictor type has its own expected directory layout.
type PredictorType string

const (
	// PythonPredictor serves arbitrary Python models (pickled or otherwise).
	PythonPredictor PredictorType = "python"

	// TensorFlowPredictor serves TensorFlow SavedModel exports.
	TensorFlowPredictor PredictorType = "tensorflow"

	// ONNXPredictor serves ONNX model files.
	ONNXPredictor PredictorType = "onnx"
)

// String returns the predictor type's configuration name.
func (p PredictorType) String() string {
	return string(p)
}

// ParsePredictorType parses a configuration string into a PredictorType.
func ParsePredictorType(s string) (PredictorType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "python":
		return PythonPredictor, nil
	case "tensorflow":
		return TensorFlowPredictor, nil
	case "onnx":
		return ONNXPredictor, nil
	default:
		return "", fmt.Errorf("unknown predictor type: %q", s)
	}
}

// PredictorTypes lists every registered predictor type in a stable order.
func PredictorTypes() []PredictorType {
	return []PredictorType{PythonPredictor, TensorFlowPredictor, ONNXPredictor}
}

// Mode selects which template variant a prefix is validated against.
type Mode int

const (
	// ModeSinglePath means the prefix points directly at one model
	// (predictor:model_path or predictor:models:paths).
	ModeSinglePath Mode = iota

	// ModeDirectory means the prefix points at a directory of models,
	// each in its own arbitrarily named subdirectory (predictor:models:dir).
	ModeDirectory
)

// String returns the mode's configuration name.
func (m Mode) String() string {
	switch m {
	case ModeSinglePath:
		return "single"
	case ModeDirectory:
		return "dir"
	default:
		return "unknown"
	}
}

// ParseMode parses a configuration string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "path", "":
		return ModeSinglePath, nil
	case "dir", "directory":
		return ModeDirectory, nil
	default:
		return ModeSinglePath, fmt.Errorf("unknown mode: %q", s)
	}
}

// Lister enumerates storage keys reachable under a prefix. Implementations
// return a flat list of absolute keys with no ordering guarantee; the
// validation engine sorts and deduplicates internally.
type Lister interface {
	List(ctx context.Context, prefix string) ([]string, error)
}
