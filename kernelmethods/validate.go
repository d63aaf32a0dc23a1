package kernelmethods

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kernelreg/pkg/errors"
)

// validateTrainingInput checks the common Fit preconditions: X is a
// non-empty (n, m) matrix and y is an (n, 1) column vector.
func validateTrainingInput(op string, X, y mat.Matrix) (n, m int, err error) {
	n, m = X.Dims()
	if n == 0 || m == 0 {
		return 0, 0, errors.NewModelError(op, "empty data", errors.ErrEmptyData)
	}

	yRows, yCols := y.Dims()
	if yRows != n {
		return 0, 0, errors.NewDimensionError(op, n, yRows, 0)
	}
	if yCols != 1 {
		return 0, 0, errors.NewValueError(op, "y must be a column vector")
	}

	return n, m, nil
}

// checkGram validates a kernel function's output: the expected Gram shape
// and finite entries. phase is "training" or "prediction".
func checkGram(phase string, K *mat.Dense, wantRows, wantCols int) error {
	if K == nil {
		return errors.NewValueError("kernel", "kernel function returned nil")
	}

	r, c := K.Dims()
	if r != wantRows || c != wantCols {
		return errors.NewInputShapeError(phase, []int{wantRows, wantCols}, []int{r, c})
	}

	return errors.CheckMatrix("gram matrix ("+phase+")", K, r, c, 0)
}

// toVec copies an (n, 1) matrix into a VecDense.
func toVec(y mat.Matrix) *mat.VecDense {
	n, _ := y.Dims()
	v := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v.SetVec(i, y.At(i, 0))
	}
	return v
}

// toColumn copies a vector into an (n, 1) matrix.
func toColumn(v mat.Vector) *mat.Dense {
	n := v.Len()
	out := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		out.Set(i, 0, v.AtVec(i))
	}
	return out
}
