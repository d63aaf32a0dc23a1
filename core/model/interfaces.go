package model

import (
	"gonum.org/v1/gonum/mat"
)

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on features X and targets y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that predict on new data.
type Predictor interface {
	// Predict returns one prediction per row of X.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Resetter is the interface for models that can be returned to the
// unfitted state, discarding learned coefficients and retained data.
type Resetter interface {
	Reset()
}

// Scorer is the interface for models that can evaluate themselves on
// labeled data.
type Scorer interface {
	// Score returns a model-appropriate goodness-of-fit measure:
	// R^2 for regressors, accuracy for classifiers.
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor combines the interfaces of a regression model.
type Regressor interface {
	Fitter
	Predictor
	Scorer
	Resetter
}

// Classifier combines the interfaces of a classification model.
type Classifier interface {
	Fitter
	Predictor
	Scorer
	Resetter

	// PredictProba returns probability estimates for each class.
	PredictProba(X mat.Matrix) (mat.Matrix, error)
}

// ParameterGetter is the interface for models that expose their
// hyperparameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
