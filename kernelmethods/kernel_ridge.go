// Package kernelmethods implements kernel-based supervised estimators:
// KernelRidge (regularized least squares in the kernel-induced feature
// space, fitted by one closed-form solve) and KernelLogistic (regularized
// logistic classification fitted by IRLS / Newton's method).
//
// Both estimators operate entirely through a kernel.Func and learn one dual
// coefficient per training example. The retained training data and the
// coefficient vector form an immutable fitted artifact, so a failed Fit
// never clobbers a previously fitted model and fitted models are safe to
// share across concurrent Predict calls.
package kernelmethods

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kernelreg/core/model"
	"github.com/YuminosukeSato/kernelreg/kernel"
	"github.com/YuminosukeSato/kernelreg/metrics"
	"github.com/YuminosukeSato/kernelreg/pkg/errors"
	"github.com/YuminosukeSato/kernelreg/pkg/log"
)

// KernelRidge is a kernel ridge regression model. It minimizes the squared
// error plus an L2 penalty on the dual coefficients, which has the closed
// form solution of the linear system
//
//	(K + Lambda*n*I) * Alpha = y
//
// where K is the training Gram matrix. The penalty is scaled by n so its
// effective strength is independent of the dataset size.
type KernelRidge struct {
	state   *model.StateManager
	kernel  kernel.Func
	lambda  float64
	logger  zerolog.Logger
	confErr error

	fitted *ridgeArtifact
}

// ridgeArtifact is the immutable result of a successful Fit: the retained
// training data and the dual coefficients. It is replaced wholesale on
// refit and dropped on Reset.
type ridgeArtifact struct {
	data  *mat.Dense
	alpha *mat.VecDense
}

var _ model.Regressor = (*KernelRidge)(nil)

// NewKernelRidge creates a kernel ridge regression model with the given
// kernel function. The default regularization strength is Lambda = 0.1.
//
// Invalid configuration (nil kernel, negative Lambda) is reported as a
// ValidationError from the first Fit or Predict call.
func NewKernelRidge(k kernel.Func, opts ...RidgeOption) *KernelRidge {
	kr := &KernelRidge{
		state:  model.NewStateManager(),
		kernel: k,
		lambda: 0.1,
		logger: log.ForModel("KernelRidge"),
	}

	for _, opt := range opts {
		opt(kr)
	}

	if kr.kernel == nil {
		kr.confErr = errors.NewValidationError("kernel", "must not be nil", nil)
	} else if kr.lambda < 0 {
		kr.confErr = errors.NewValidationError("lambda", "must be non-negative", kr.lambda)
	}

	kr.logger.Debug().Float64("lambda", kr.lambda).Msg("kernel ridge regression constructed")

	return kr
}

// Fit trains the model on features X of shape (n, m) and real-valued
// targets y of shape (n, 1). It computes the training Gram matrix and
// solves the regularized linear system for the dual coefficients.
//
// Fit returns a SingularMatrixError when the system has no unique solution,
// which can happen with Lambda = 0 and a singular Gram matrix. On any
// failure the previously fitted state, if any, is left untouched.
func (kr *KernelRidge) Fit(X, y mat.Matrix) error {
	if kr.confErr != nil {
		return kr.confErr
	}

	n, m, err := validateTrainingInput("KernelRidge.Fit", X, y)
	if err != nil {
		return err
	}

	K := kr.kernel(X, X)
	if err := checkGram("training", K, n, n); err != nil {
		return err
	}

	// A = K + Lambda*n*I
	A := mat.DenseCopyOf(K)
	reg := kr.lambda * float64(n)
	for i := 0; i < n; i++ {
		A.Set(i, i, A.At(i, i)+reg)
	}

	alpha := mat.NewVecDense(n, nil)
	if err := alpha.SolveVec(A, toVec(y)); err != nil {
		return errors.NewSingularMatrixError("KernelRidge.Fit", n, err)
	}
	if err := errors.CheckNumericalStability("KernelRidge.Fit solve", alpha.RawVector().Data, 0); err != nil {
		return err
	}

	kr.fitted = &ridgeArtifact{
		data:  mat.DenseCopyOf(X),
		alpha: alpha,
	}
	kr.state.SetFitted()
	kr.state.SetDimensions(m, n)

	kr.logger.Debug().
		Int("samples", n).
		Int("features", m).
		Float64("lambda", kr.lambda).
		Msg("fit complete")

	return nil
}

// Predict returns one real-valued prediction per row of X, computed as
// K(X, Data) * Alpha. It returns a NotFittedError when called before a
// successful Fit (or after Reset).
func (kr *KernelRidge) Predict(X mat.Matrix) (mat.Matrix, error) {
	if kr.confErr != nil {
		return nil, kr.confErr
	}
	if err := kr.state.RequireFitted("KernelRidge", "Predict"); err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	nFeatures, nSamples := kr.state.GetDimensions()
	if cols != nFeatures {
		return nil, errors.NewDimensionError("KernelRidge.Predict", nFeatures, cols, 1)
	}
	if rows == 0 {
		return nil, errors.NewModelError("KernelRidge.Predict", "empty data", errors.ErrEmptyData)
	}

	K := kr.kernel(X, kr.fitted.data)
	if err := checkGram("prediction", K, rows, nSamples); err != nil {
		return nil, err
	}

	var f mat.VecDense
	f.MulVec(K, kr.fitted.alpha)

	return toColumn(&f), nil
}

// Reset clears the retained training data and coefficients, returning the
// model to the unfitted state. The configuration is kept.
func (kr *KernelRidge) Reset() {
	kr.fitted = nil
	kr.state.Reset()
}

// Score returns the coefficient of determination R^2 of the predictions on
// X against y.
func (kr *KernelRidge) Score(X, y mat.Matrix) (float64, error) {
	yPred, err := kr.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(toVec(y), toVec(yPred))
}

// Alpha returns a copy of the dual coefficient vector, one value per
// training example, or nil if the model is not fitted.
func (kr *KernelRidge) Alpha() []float64 {
	if !kr.state.IsFitted() {
		return nil
	}
	out := make([]float64, kr.fitted.alpha.Len())
	copy(out, kr.fitted.alpha.RawVector().Data)
	return out
}

// GetParams returns the model hyperparameters.
func (kr *KernelRidge) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"lambda": kr.lambda,
	}
}
