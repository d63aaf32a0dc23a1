package kernelmethods

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kernelreg/core/model"
	"github.com/YuminosukeSato/kernelreg/core/parallel"
	"github.com/YuminosukeSato/kernelreg/kernel"
	"github.com/YuminosukeSato/kernelreg/metrics"
	"github.com/YuminosukeSato/kernelreg/pkg/errors"
	"github.com/YuminosukeSato/kernelreg/pkg/log"
)

// ConvergenceStatus is the typed outcome of the IRLS training loop.
type ConvergenceStatus int

const (
	// Converged means the coefficient change dropped below tol on some
	// iteration, including the last allowed one.
	Converged ConvergenceStatus = iota
	// ExhaustedBudget means no iteration satisfied the tolerance before
	// max_iter was reached. The last coefficients are still accepted.
	ExhaustedBudget
)

// String returns a human-readable status name.
func (s ConvergenceStatus) String() string {
	switch s {
	case Converged:
		return "converged"
	case ExhaustedBudget:
		return "exhausted budget"
	default:
		return "unknown"
	}
}

// Convergence describes how IRLS training ended: the status, the number of
// iterations performed, and the final coefficient change.
type Convergence struct {
	Status     ConvergenceStatus
	Iterations int
	Delta      float64
}

// KernelLogistic is a kernel logistic regression classifier for labels in
// {-1, +1}. It minimizes the regularized logistic loss by iteratively
// reweighted least squares: each Newton step linearizes the loss at the
// current margin and solves the weighted system
//
//	(W*K + Lambda*n*I) * Alpha = W*m - P*y
//
// where m = K*Alpha is the margin, and P and W hold the first and second
// derivatives of the logistic loss at y .* m.
type KernelLogistic struct {
	state     *model.StateManager
	kernel    kernel.Func
	lambda    float64
	tol       float64
	maxIter   int
	threshold float64
	logger    zerolog.Logger
	confErr   error

	fitted *logisticArtifact
}

// logisticArtifact is the immutable result of a successful Fit.
type logisticArtifact struct {
	data  *mat.Dense
	alpha *mat.VecDense
	conv  Convergence
}

var _ model.Classifier = (*KernelLogistic)(nil)

// NewKernelLogistic creates a kernel logistic regression classifier with
// the given kernel function. Defaults: Lambda = 0.1, tol = 1e-5,
// max_iter = 100000, threshold = 0.5.
//
// Invalid configuration is reported as a ValidationError from the first
// Fit or Predict call.
func NewKernelLogistic(k kernel.Func, opts ...LogisticOption) *KernelLogistic {
	kl := &KernelLogistic{
		state:     model.NewStateManager(),
		kernel:    k,
		lambda:    0.1,
		tol:       1e-5,
		maxIter:   100000,
		threshold: 0.5,
		logger:    log.ForModel("KernelLogistic"),
	}

	for _, opt := range opts {
		opt(kl)
	}

	switch {
	case kl.kernel == nil:
		kl.confErr = errors.NewValidationError("kernel", "must not be nil", nil)
	case kl.lambda < 0:
		kl.confErr = errors.NewValidationError("lambda", "must be non-negative", kl.lambda)
	case kl.tol <= 0:
		kl.confErr = errors.NewValidationError("tol", "must be positive", kl.tol)
	case kl.maxIter < 1:
		kl.confErr = errors.NewValidationError("max_iter", "must be at least 1", kl.maxIter)
	case kl.threshold < 0 || kl.threshold > 1:
		kl.confErr = errors.NewValidationError("threshold", "must lie in [0, 1]", kl.threshold)
	}

	kl.logger.Debug().
		Float64("lambda", kl.lambda).
		Float64("tol", kl.tol).
		Int("max_iter", kl.maxIter).
		Float64("threshold", kl.threshold).
		Msg("kernel logistic regression constructed")

	return kl
}

// Fit trains the classifier on features X of shape (n, m) and labels y of
// shape (n, 1) with entries in {-1, +1}.
//
// Training runs at most max_iter IRLS iterations and stops early once the
// Euclidean norm of the coefficient change drops below tol. Exhausting the
// budget is not an error: the last coefficients are accepted and a
// ConvergenceWarning naming max_iter is raised through errors.Warn. A
// singular per-iteration solve is fatal and returns a SingularMatrixError;
// in that case the previously fitted state, if any, is left untouched.
func (kl *KernelLogistic) Fit(X, y mat.Matrix) error {
	if kl.confErr != nil {
		return kl.confErr
	}

	n, m, err := validateTrainingInput("KernelLogistic.Fit", X, y)
	if err != nil {
		return err
	}

	yVec := toVec(y)
	for i := 0; i < n; i++ {
		if v := yVec.AtVec(i); v != -1 && v != 1 {
			return errors.NewValueError("KernelLogistic.Fit",
				fmt.Sprintf("labels must be -1 or +1, got %v at row %d", v, i))
		}
	}

	K := kl.kernel(X, X)
	if err := checkGram("training", K, n, n); err != nil {
		return err
	}

	alpha, conv, err := kl.irls(K, yVec, n)
	if err != nil {
		return err
	}

	kl.fitted = &logisticArtifact{
		data:  mat.DenseCopyOf(X),
		alpha: alpha,
		conv:  conv,
	}
	kl.state.SetFitted()
	kl.state.SetDimensions(m, n)

	kl.logger.Debug().
		Int("samples", n).
		Int("features", m).
		Int("iterations", conv.Iterations).
		Float64("delta", conv.Delta).
		Str("status", conv.Status.String()).
		Msg("fit complete")

	return nil
}

// irls runs the Newton / iteratively-reweighted-least-squares loop and
// returns the final coefficients with their typed convergence outcome.
func (kl *KernelLogistic) irls(K *mat.Dense, y *mat.VecDense, n int) (*mat.VecDense, Convergence, error) {
	reg := kl.lambda * float64(n)

	alphaOld := mat.NewVecDense(n, nil)
	margin := mat.NewVecDense(n, nil)
	A := mat.NewDense(n, n, nil)
	z := mat.NewVecDense(n, nil)

	var delta float64
	for iter := 0; iter < kl.maxIter; iter++ {
		margin.MulVec(K, alphaOld)

		// Newton linearization of the logistic loss at s = y .* m:
		// row i of A is l2_i * K_i plus the ridge term on the diagonal,
		// and z_i = l2_i*m_i - l1_i*y_i.
		parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				mi := margin.AtVec(i)
				yi := y.AtVec(i)
				l1, l2 := logisticDerivatives(yi * mi)
				for j := 0; j < n; j++ {
					A.Set(i, j, l2*K.At(i, j))
				}
				A.Set(i, i, A.At(i, i)+reg)
				z.SetVec(i, l2*mi-l1*yi)
			}
		})

		alphaNew := mat.NewVecDense(n, nil)
		if err := alphaNew.SolveVec(A, z); err != nil {
			return nil, Convergence{}, errors.NewSingularMatrixError("KernelLogistic.Fit", n, err)
		}
		if err := errors.CheckNumericalStability("KernelLogistic.Fit solve", alphaNew.RawVector().Data, iter); err != nil {
			return nil, Convergence{}, err
		}

		var diff mat.VecDense
		diff.SubVec(alphaNew, alphaOld)
		delta = mat.Norm(&diff, 2)

		if delta < kl.tol {
			return alphaNew, Convergence{Status: Converged, Iterations: iter + 1, Delta: delta}, nil
		}
		alphaOld = alphaNew
	}

	conv := Convergence{Status: ExhaustedBudget, Iterations: kl.maxIter, Delta: delta}
	errors.Warn(errors.NewConvergenceWarning("KernelLogistic", kl.maxIter,
		fmt.Sprintf("coefficient change %.3g did not drop below tol %.3g; you might want max_iter > %d",
			delta, kl.tol, kl.maxIter)))

	return alphaOld, conv, nil
}

// parallelThreshold bounds the sequential row count for the IRLS system
// assembly.
const parallelThreshold = 256

// logisticDerivatives returns the first and second derivatives of the
// logistic loss log(1 + exp(-s)) with respect to the margin, evaluated at
// s. Algebraically l1 = -1/(1+exp(s)) and l2 = exp(s)/(1+exp(s))^2; the
// branches keep the exponential argument non-positive so large margins
// saturate instead of overflowing.
func logisticDerivatives(s float64) (l1, l2 float64) {
	if s >= 0 {
		e := math.Exp(-s)
		l1 = -e / (1 + e)
		l2 = e / ((1 + e) * (1 + e))
		return l1, l2
	}
	e := math.Exp(s)
	l1 = -1 / (1 + e)
	l2 = e / ((1 + e) * (1 + e))
	return l1, l2
}

// sigmoid is the numerically stable logistic function 1/(1+exp(-z)).
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// DecisionFunction returns the raw scores f = K(X, Data) * Alpha, one per
// row of X.
func (kl *KernelLogistic) DecisionFunction(X mat.Matrix) (mat.Matrix, error) {
	if kl.confErr != nil {
		return nil, kl.confErr
	}
	if err := kl.state.RequireFitted("KernelLogistic", "DecisionFunction"); err != nil {
		return nil, err
	}

	rows, cols := X.Dims()
	nFeatures, nSamples := kl.state.GetDimensions()
	if cols != nFeatures {
		return nil, errors.NewDimensionError("KernelLogistic.DecisionFunction", nFeatures, cols, 1)
	}
	if rows == 0 {
		return nil, errors.NewModelError("KernelLogistic.DecisionFunction", "empty data", errors.ErrEmptyData)
	}

	K := kl.kernel(X, kl.fitted.data)
	if err := checkGram("prediction", K, rows, nSamples); err != nil {
		return nil, err
	}

	var f mat.VecDense
	f.MulVec(K, kl.fitted.alpha)

	return toColumn(&f), nil
}

// PredictProba returns an (n, 2) matrix of class probabilities; column 0 is
// P(y = -1) and column 1 is P(y = +1).
func (kl *KernelLogistic) PredictProba(X mat.Matrix) (mat.Matrix, error) {
	f, err := kl.DecisionFunction(X)
	if err != nil {
		return nil, err
	}

	rows, _ := f.Dims()
	probas := mat.NewDense(rows, 2, nil)
	for i := 0; i < rows; i++ {
		p := sigmoid(f.At(i, 0))
		probas.Set(i, 0, 1-p)
		probas.Set(i, 1, p)
	}
	return probas, nil
}

// Predict returns one label per row of X: +1 where the predicted
// probability of the positive class exceeds the threshold, -1 otherwise.
// It returns a NotFittedError when called before a successful Fit (or
// after Reset).
func (kl *KernelLogistic) Predict(X mat.Matrix) (mat.Matrix, error) {
	f, err := kl.DecisionFunction(X)
	if err != nil {
		return nil, err
	}

	rows, _ := f.Dims()
	labels := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		if sigmoid(f.At(i, 0)) > kl.threshold {
			labels.Set(i, 0, 1)
		} else {
			labels.Set(i, 0, -1)
		}
	}
	return labels, nil
}

// Reset clears the retained training data, coefficients and convergence
// record, returning the model to the unfitted state. The configuration is
// kept.
func (kl *KernelLogistic) Reset() {
	kl.fitted = nil
	kl.state.Reset()
}

// Score returns the mean accuracy of the predictions on X against labels y.
func (kl *KernelLogistic) Score(X, y mat.Matrix) (float64, error) {
	yPred, err := kl.Predict(X)
	if err != nil {
		return 0, err
	}
	return metrics.AccuracyScore(y, yPred)
}

// Convergence returns how the last successful Fit ended. The zero value is
// returned for an unfitted model.
func (kl *KernelLogistic) Convergence() Convergence {
	if !kl.state.IsFitted() {
		return Convergence{}
	}
	return kl.fitted.conv
}

// Alpha returns a copy of the dual coefficient vector, one value per
// training example, or nil if the model is not fitted.
func (kl *KernelLogistic) Alpha() []float64 {
	if !kl.state.IsFitted() {
		return nil
	}
	out := make([]float64, kl.fitted.alpha.Len())
	copy(out, kl.fitted.alpha.RawVector().Data)
	return out
}

// GetParams returns the model hyperparameters.
func (kl *KernelLogistic) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"lambda":    kl.lambda,
		"tol":       kl.tol,
		"max_iter":  kl.maxIter,
		"threshold": kl.threshold,
	}
}
