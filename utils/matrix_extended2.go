package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LUSolve returns X such that m*X = b, factoring m once with partial pivoting.
func (m Matrix) LUSolve(b Matrix) (X Matrix, err error) {
	var (
		lu     mat.LU
		nr, nc = m.Dims()
		_, ncb = b.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("%w: LUSolve needs a square matrix, have %dx%d", ErrInvalidArgument, nr, nc)
		return
	}
	lu.Factorize(m.M)
	X = NewMatrix(nr, ncb)
	if err = lu.SolveTo(X.M, false, b.M); err != nil {
		err = fmt.Errorf("%w: %v", ErrNumerical, err)
	}
	return
}

// CheckInvertible reports ErrNumerical when the LU condition estimate of m
// exceeds the gonum tolerance or is not finite.
func (m Matrix) CheckInvertible() (err error) {
	var (
		lu     mat.LU
		nr, nc = m.Dims()
	)
	if nr != nc {
		return fmt.Errorf("%w: matrix is %dx%d, not square", ErrNumerical, nr, nc)
	}
	lu.Factorize(m.M)
	if cond := lu.Cond(); math.IsInf(cond, 1) || math.IsNaN(cond) || cond > mat.ConditionTolerance {
		err = fmt.Errorf("%w: matrix is singular, condition estimate %g", ErrNumerical, cond)
	}
	return
}

func (m Matrix) ConditionNumber() float64 {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDNone) {
		return math.Inf(1)
	}
	// Singular values are in descending order
	values := svd.Values(nil)
	if len(values) == 0 || values[len(values)-1] == 0 {
		return math.Inf(1)
	}
	return values[0] / values[len(values)-1]
}

// NewSymTriDiagonal builds the symmetric matrix with main diagonal d0 and
// first off diagonal d1, len(d1) == len(d0)-1.
func NewSymTriDiagonal(d0, d1 []float64) (Tri *mat.SymDense) {
	var (
		N = len(d0)
	)
	if len(d1) != N-1 {
		panic(fmt.Errorf("off diagonal length %d does not match diagonal length %d", len(d1), N))
	}
	Tri = mat.NewSymDense(N, nil)
	for i, val := range d0 {
		Tri.SetSym(i, i, val)
	}
	for i, val := range d1 {
		Tri.SetSym(i, i+1, val)
	}
	return
}
