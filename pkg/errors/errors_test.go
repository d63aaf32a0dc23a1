package errors

import (
	"math"
	"strings"
	"testing"
)

func TestNotFittedError(t *testing.T) {
	err := NewNotFittedError("KernelRidge", "Predict")

	var nfe *NotFittedError
	if !As(err, &nfe) {
		t.Fatalf("expected NotFittedError, got %T", err)
	}

	if nfe.ModelName != "KernelRidge" || nfe.Method != "Predict" {
		t.Errorf("unexpected fields: %+v", nfe)
	}

	if !strings.Contains(err.Error(), "not fitted yet") {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestDimensionError(t *testing.T) {
	tests := []struct {
		name     string
		axis     int
		wantWord string
	}{
		{name: "row axis", axis: 0, wantWord: "rows"},
		{name: "feature axis", axis: 1, wantWord: "features"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("Fit", 4, 3, tt.axis)

			var de *DimensionError
			if !As(err, &de) {
				t.Fatalf("expected DimensionError, got %T", err)
			}

			if !strings.Contains(err.Error(), tt.wantWord) {
				t.Errorf("message %q does not name axis %q", err.Error(), tt.wantWord)
			}
		})
	}
}

func TestSingularMatrixError_Unwrap(t *testing.T) {
	err := NewSingularMatrixError("KernelRidge.Fit", 4, ErrSingularMatrix)

	var sme *SingularMatrixError
	if !As(err, &sme) {
		t.Fatalf("expected SingularMatrixError, got %T", err)
	}

	if sme.Size != 4 {
		t.Errorf("Size = %d, want 4", sme.Size)
	}

	if !Is(err, ErrSingularMatrix) {
		t.Error("expected wrapped ErrSingularMatrix sentinel")
	}
}

func TestConvergenceWarning_DefaultMessage(t *testing.T) {
	w := NewConvergenceWarning("KernelLogistic", 100, "")
	msg := w.Error()

	if !strings.Contains(msg, "100 iterations") {
		t.Errorf("warning must name the iteration budget, got %q", msg)
	}
	if !strings.Contains(msg, "max_iter") {
		t.Errorf("warning should suggest increasing max_iter, got %q", msg)
	}
}

func TestWarnHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	warning := NewConvergenceWarning("KernelLogistic", 5, "tolerance not reached")
	Warn(warning)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}

	var cw *ConvergenceWarning
	if !As(captured, &cw) || cw.Iterations != 5 {
		t.Errorf("unexpected warning: %v", captured)
	}
}

func TestCheckNumericalStability(t *testing.T) {
	if err := CheckNumericalStability("margin", []float64{1, 2, 3}, 0); err != nil {
		t.Errorf("finite values should pass: %v", err)
	}

	err := CheckNumericalStability("margin", []float64{1, math.NaN(), 3}, 7)
	if err == nil {
		t.Fatal("NaN should be detected")
	}

	var nie *NumericalInstabilityError
	if !As(err, &nie) {
		t.Fatalf("expected NumericalInstabilityError, got %T", err)
	}
	if nie.Iteration != 7 {
		t.Errorf("Iteration = %d, want 7", nie.Iteration)
	}
}

type infMatrix struct{}

func (infMatrix) At(i, j int) float64 {
	if i == 1 && j == 1 {
		return math.Inf(1)
	}
	return 0
}

func TestCheckMatrix(t *testing.T) {
	if err := CheckMatrix("gram", infMatrix{}, 1, 1, 0); err != nil {
		t.Errorf("finite region should pass: %v", err)
	}
	if err := CheckMatrix("gram", infMatrix{}, 2, 2, 0); err == nil {
		t.Error("Inf entry should be detected")
	}
}
