package template

import (
	"github.com/modelshape/modelshape/pkg/types"
)

// builtin returns the single-model templates for every registered
// predictor type. One fresh tree per call so callers can never alias the
// registry's state.
//
// Layouts, per predictor type:
//
//	python:     <version>/<anything>
//	tensorflow: <version>/saved_model.pb + variables/{variables.index,
//	            variables.data-00000-of-<suffix>, ...}
//	onnx:       either <version>/<name>.onnx, or a bare <name>.onnx at the
//	            top level and nothing else (the exclusive alternative)
func builtin() map[types.PredictorType]*Node {
	return map[types.PredictorType]*Node{
		types.PythonPredictor: NewNode(
			E(Integer, NewNode(
				E(Any, nil),
			)),
		),

		types.TensorFlowPredictor: NewNode(
			E(Integer, NewNode(
				E(Generic("saved_model.pb"), nil),
				E(Generic("variables"), NewNode(
					E(Generic("variables.index"), nil),
					E(Group(Generic("variables.data-00000-of-"), Any), nil),
				)),
			)),
		),

		types.ONNXPredictor: NewNode(
			E(Integer, NewNode(
				E(Group(Single, Generic(".onnx")), nil),
			)),
			E(Group(Exclusive, Single, Generic(".onnx")), nil),
		),
	}
}
