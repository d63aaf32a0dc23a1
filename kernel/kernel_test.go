package kernel

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

const tolerance = 1e-12

func TestLinearKernel(t *testing.T) {
	X1 := mat.NewDense(2, 2, []float64{
		1, 2,
		3, 4,
	})
	X2 := mat.NewDense(3, 2, []float64{
		1, 0,
		0, 1,
		1, 1,
	})

	K := Linear()(X1, X2)

	r, c := K.Dims()
	if r != 2 || c != 3 {
		t.Fatalf("Gram matrix shape = (%d, %d), want (2, 3)", r, c)
	}

	want := [][]float64{
		{1, 2, 3},
		{3, 4, 7},
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(K.At(i, j)-want[i][j]) > tolerance {
				t.Errorf("K[%d,%d] = %v, want %v", i, j, K.At(i, j), want[i][j])
			}
		}
	}
}

func TestPolynomialKernel(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{
		1,
		2,
	})

	// (0.5*<x,x'> + 1)^2
	K := Polynomial(0.5, 1.0, 2)(X, X)

	tests := []struct {
		i, j int
		want float64
	}{
		{0, 0, 2.25}, // (0.5*1 + 1)^2
		{0, 1, 4.0},  // (0.5*2 + 1)^2
		{1, 1, 9.0},  // (0.5*4 + 1)^2
	}
	for _, tt := range tests {
		if got := K.At(tt.i, tt.j); math.Abs(got-tt.want) > tolerance {
			t.Errorf("K[%d,%d] = %v, want %v", tt.i, tt.j, got, tt.want)
		}
	}
}

func TestRBFKernel(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		0, 0,
		1, 0,
		0, 2,
	})

	K := RBF(0.5)(X, X)

	// Unit diagonal: every point is maximally similar to itself.
	for i := 0; i < 3; i++ {
		if math.Abs(K.At(i, i)-1.0) > tolerance {
			t.Errorf("K[%d,%d] = %v, want 1", i, i, K.At(i, i))
		}
	}

	// exp(-0.5 * squared distance)
	if got, want := K.At(0, 1), math.Exp(-0.5); math.Abs(got-want) > tolerance {
		t.Errorf("K[0,1] = %v, want %v", got, want)
	}
	if got, want := K.At(0, 2), math.Exp(-2.0); math.Abs(got-want) > tolerance {
		t.Errorf("K[0,2] = %v, want %v", got, want)
	}
}

func TestSigmoidKernel(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{
		1,
		-1,
	})

	K := Sigmoid(1.0, 0.0)(X, X)

	if got, want := K.At(0, 0), math.Tanh(1.0); math.Abs(got-want) > tolerance {
		t.Errorf("K[0,0] = %v, want %v", got, want)
	}
	if got, want := K.At(0, 1), math.Tanh(-1.0); math.Abs(got-want) > tolerance {
		t.Errorf("K[0,1] = %v, want %v", got, want)
	}
}

func TestKernelSymmetry(t *testing.T) {
	X := mat.NewDense(4, 3, []float64{
		0.1, -1.2, 0.7,
		2.4, 0.3, -0.5,
		-1.1, 1.8, 0.9,
		0.0, 0.6, -2.2,
	})

	kernels := map[string]Func{
		"linear":     Linear(),
		"polynomial": Polynomial(0.3, 1.0, 3),
		"rbf":        RBF(0.8),
		"sigmoid":    Sigmoid(0.2, 0.1),
	}

	for name, k := range kernels {
		t.Run(name, func(t *testing.T) {
			K := k(X, X)
			for i := 0; i < 4; i++ {
				for j := i + 1; j < 4; j++ {
					if math.Abs(K.At(i, j)-K.At(j, i)) > tolerance {
						t.Errorf("K[%d,%d] = %v != K[%d,%d] = %v", i, j, K.At(i, j), j, i, K.At(j, i))
					}
				}
			}
		})
	}
}

func TestRBFLargeInputParallelPath(t *testing.T) {
	// Enough rows to cross the parallel threshold; the result must match a
	// direct sequential evaluation.
	const n = 300
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i) / n
	}
	X := mat.NewDense(n, 1, data)

	K := RBF(1.0)(X, X)

	for _, idx := range [][2]int{{0, 299}, {150, 151}, {42, 42}} {
		i, j := idx[0], idx[1]
		d := data[i] - data[j]
		want := math.Exp(-d * d)
		if math.Abs(K.At(i, j)-want) > tolerance {
			t.Errorf("K[%d,%d] = %v, want %v", i, j, K.At(i, j), want)
		}
	}
}
