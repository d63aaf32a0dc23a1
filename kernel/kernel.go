// Package kernel provides the kernel-function contract used by the kernel
// estimators, together with the standard kernels: linear, polynomial, RBF
// and sigmoid.
//
// A kernel maps two sets of feature vectors to their dense Gram matrix of
// pairwise similarities, so the estimators never materialize feature-space
// coordinates (the kernel trick).
package kernel

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/kernelreg/core/parallel"
)

// Func is the kernel-function contract. Given X1 of shape (n1, m) and X2 of
// shape (n2, m) it returns the Gram matrix K(X1, X2) of shape (n1, n2).
//
// Implementations must be deterministic, symmetric for X1 == X2, and (for
// estimator correctness) positive semi-definite for X1 == X2. The
// estimators validate the output shape and finiteness but not the PSD
// property; that remains the kernel's contract.
type Func func(X1, X2 mat.Matrix) *mat.Dense

// Row counts above this are split across CPU cores when filling a Gram
// matrix.
const parallelThreshold = 256

// Linear returns the linear kernel K(x, x') = <x, x'>, i.e. X1 * X2^T.
func Linear() Func {
	return func(X1, X2 mat.Matrix) *mat.Dense {
		n1, _ := X1.Dims()
		n2, _ := X2.Dims()
		K := mat.NewDense(n1, n2, nil)
		K.Mul(X1, X2.T())
		return K
	}
}

// Polynomial returns the polynomial kernel
// K(x, x') = (gamma * <x, x'> + coef0)^degree.
// gamma must be positive and degree at least 1.
func Polynomial(gamma, coef0 float64, degree int) Func {
	return func(X1, X2 mat.Matrix) *mat.Dense {
		n1, _ := X1.Dims()
		n2, _ := X2.Dims()
		K := mat.NewDense(n1, n2, nil)
		K.Mul(X1, X2.T())
		parallel.ParallelizeWithThreshold(n1, parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				for j := 0; j < n2; j++ {
					K.Set(i, j, math.Pow(gamma*K.At(i, j)+coef0, float64(degree)))
				}
			}
		})
		return K
	}
}

// RBF returns the radial basis function (Gaussian) kernel
// K(x, x') = exp(-gamma * ||x - x'||^2). gamma must be positive.
func RBF(gamma float64) Func {
	return func(X1, X2 mat.Matrix) *mat.Dense {
		n1, m := X1.Dims()
		n2, _ := X2.Dims()
		K := mat.NewDense(n1, n2, nil)
		parallel.ParallelizeWithThreshold(n1, parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				for j := 0; j < n2; j++ {
					var sq float64
					for k := 0; k < m; k++ {
						d := X1.At(i, k) - X2.At(j, k)
						sq += d * d
					}
					K.Set(i, j, math.Exp(-gamma*sq))
				}
			}
		})
		return K
	}
}

// Sigmoid returns the sigmoid (hyperbolic tangent) kernel
// K(x, x') = tanh(gamma * <x, x'> + coef0). Unlike the other kernels it is
// not positive semi-definite for every parameter choice; callers relying on
// PSD Gram matrices should prefer RBF or Polynomial.
func Sigmoid(gamma, coef0 float64) Func {
	return func(X1, X2 mat.Matrix) *mat.Dense {
		n1, _ := X1.Dims()
		n2, _ := X2.Dims()
		K := mat.NewDense(n1, n2, nil)
		K.Mul(X1, X2.T())
		parallel.ParallelizeWithThreshold(n1, parallelThreshold, func(start, end int) {
			for i := start; i < end; i++ {
				for j := 0; j < n2; j++ {
					K.Set(i, j, math.Tanh(gamma*K.At(i, j)+coef0))
				}
			}
		})
		return K
	}
}
