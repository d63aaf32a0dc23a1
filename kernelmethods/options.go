package kernelmethods

import (
	"github.com/rs/zerolog"
)

// RidgeOption is a functional option for KernelRidge.
type RidgeOption func(*KernelRidge)

// WithRidgeLambda sets the regularization strength. Lambda must be
// non-negative; with Lambda = 0 fitting fails when the Gram matrix is
// singular.
func WithRidgeLambda(lambda float64) RidgeOption {
	return func(kr *KernelRidge) {
		kr.lambda = lambda
	}
}

// WithRidgeLogger sets the logger used for construction and fit
// instrumentation.
func WithRidgeLogger(logger zerolog.Logger) RidgeOption {
	return func(kr *KernelRidge) {
		kr.logger = logger
	}
}

// LogisticOption is a functional option for KernelLogistic.
type LogisticOption func(*KernelLogistic)

// WithLogisticLambda sets the regularization strength. Lambda must be
// non-negative.
func WithLogisticLambda(lambda float64) LogisticOption {
	return func(kl *KernelLogistic) {
		kl.lambda = lambda
	}
}

// WithLogisticTol sets the convergence tolerance on the Euclidean norm of
// the coefficient change between IRLS iterations. tol must be positive.
func WithLogisticTol(tol float64) LogisticOption {
	return func(kl *KernelLogistic) {
		kl.tol = tol
	}
}

// WithLogisticMaxIter sets the IRLS iteration budget. maxIter must be at
// least 1.
func WithLogisticMaxIter(maxIter int) LogisticOption {
	return func(kl *KernelLogistic) {
		kl.maxIter = maxIter
	}
}

// WithLogisticThreshold sets the decision boundary on the predicted
// probability of the positive class. threshold must lie in [0, 1].
func WithLogisticThreshold(threshold float64) LogisticOption {
	return func(kl *KernelLogistic) {
		kl.threshold = threshold
	}
}

// WithLogisticLogger sets the logger used for construction and fit
// instrumentation.
func WithLogisticLogger(logger zerolog.Logger) LogisticOption {
	return func(kl *KernelLogistic) {
		kl.logger = logger
	}
}
