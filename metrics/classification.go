package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kernelreg/pkg/errors"
)

// AccuracyScore computes the fraction of exactly matching labels between
// yTrue and yPred, both (n, 1) matrices.
func AccuracyScore(yTrue, yPred mat.Matrix) (float64, error) {
	rTrue, cTrue := yTrue.Dims()
	rPred, cPred := yPred.Dims()

	if rTrue == 0 {
		return 0, errors.NewValueError("AccuracyScore", "empty matrix")
	}
	if cTrue != 1 || cPred != 1 {
		return 0, errors.NewValueError("AccuracyScore", "labels must be column vectors (n x 1 matrices)")
	}
	if rTrue != rPred {
		return 0, errors.NewDimensionError("AccuracyScore", rTrue, rPred, 0)
	}

	correct := 0
	for i := 0; i < rTrue; i++ {
		if yTrue.At(i, 0) == yPred.At(i, 0) {
			correct++
		}
	}

	return float64(correct) / float64(rTrue), nil
}
