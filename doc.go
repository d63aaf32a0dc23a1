// Package kernelreg provides kernel-based supervised learning for Go:
// kernel ridge regression and kernel logistic regression with a
// scikit-learn-like estimator API.
//
// Both estimators work entirely through a pluggable kernel function that
// maps two sets of feature vectors to their dense Gram matrix, so the
// feature-space representation is never materialized (the kernel trick).
// Kernel ridge regression fits its dual coefficients with one closed-form
// regularized solve; kernel logistic regression fits them with a bounded
// Newton / IRLS iteration and reports a typed convergence outcome.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/kernelreg/kernel"
//	    "github.com/YuminosukeSato/kernelreg/kernelmethods"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    X := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
//	    y := mat.NewDense(4, 1, []float64{0, 1, 2, 3})
//
//	    model := kernelmethods.NewKernelRidge(kernel.RBF(0.5),
//	        kernelmethods.WithRidgeLambda(0.01))
//	    if err := model.Fit(X, y); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    predictions, err := model.Predict(X)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(predictions))
//	}
//
// # Packages
//
//   - kernel: the kernel-function contract and standard kernels
//     (linear, polynomial, RBF, sigmoid)
//   - kernelmethods: the KernelRidge and KernelLogistic estimators
//   - metrics: evaluation metrics (MSE, RMSE, MAE, R², accuracy)
//   - core/model: estimator lifecycle and interfaces
//   - core/parallel: parallel processing utilities
//   - pkg/errors: structured errors and the warning system
//   - pkg/log: structured logging on zerolog
//
// # Error Handling
//
// Fatal conditions are structured errors: NotFittedError for prediction
// before training, DimensionError and InputShapeError for shape
// mismatches, ValidationError for invalid hyperparameters, and
// SingularMatrixError when a regularized solve has no unique solution. A
// logistic fit that exhausts its iteration budget is not fatal: the last
// coefficients are kept and a ConvergenceWarning is raised through the
// warning system in pkg/errors.
package kernelreg
