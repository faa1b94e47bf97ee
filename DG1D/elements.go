package DG1D

import (
	"fmt"
	"math"

	"github.com/notargets/nodaldg/utils"
	"gonum.org/v1/gonum/mat"
)

// JacobiGL returns the N+1 Gauss-Lobatto nodes on [-1,1] for the weight
// (1-x)^alpha (1+x)^beta: both endpoints plus the interior Gauss nodes of the
// (alpha+1, beta+1) weight, strictly increasing.
func JacobiGL(alpha, beta float64, N int) (X utils.Vector, err error) {
	if N < 1 {
		err = fmt.Errorf("%w: Gauss-Lobatto nodes need N >= 1, have %d", utils.ErrInvalidArgument, N)
		return
	}
	x := make([]float64, N+1)
	x[0] = -1
	x[N] = 1
	if N > 1 {
		xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
		copy(x[1:N], xint.DataP)
	}
	X = utils.NewVector(N+1, x)
	return
}

// JacobiGQ returns the N+1 Gauss nodes and weights for the weight
// (1-x)^alpha (1+x)^beta, from the eigen decomposition of the Jacobi matrix.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	if N == 0 {
		X = utils.NewVector(1, []float64{-(alpha - beta) / (alpha + beta + 2.)})
		W = utils.NewVector(1, []float64{gamma0(alpha, beta)})
		return
	}
	var (
		ab    = alpha + beta
		diag  = make([]float64, N+1)
		upper = make([]float64, N)
	)
	for i := range diag {
		h := 2*float64(i) + ab
		if i == 0 && ab < 1.e-15 {
			// 0/0 for the Legendre-like weights
			continue
		}
		diag[i] = (beta*beta - alpha*alpha) / (2 * h * (h + 2))
	}
	for i := range upper {
		var (
			n = float64(i + 1)
			h = 2*float64(i) + ab
		)
		upper[i] = 2 / (h + 2) * math.Sqrt(n*(n+ab)*(n+alpha)*(n+beta)/((h+1)*(h+3)))
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(utils.NewSymTriDiagonal(diag, upper), true); !ok {
		panic(fmt.Errorf("%w: eigenvalue decomposition of the Jacobi matrix failed, N = %d", utils.ErrNumerical, N))
	}
	// Ascending eigenvalues are the nodes, the first eigenvector component
	// squared gives the weights
	X = utils.NewVector(N+1, eig.Values(nil))
	vecs := mat.NewDense(N+1, N+1, nil)
	eig.VectorsTo(vecs)
	w := make([]float64, N+1)
	copy(w, vecs.RawRowView(0))
	W = utils.NewVector(N+1, w).POW(2).Scale(gamma0(alpha, beta))
	return
}

// JacobiP evaluates the orthonormal Jacobi polynomial of degree N at r using
// the three term recurrence.
func JacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	var (
		Nc = r.Len()
		rd = r.DataP
	)
	rg := 1. / math.Sqrt(gamma0(alpha, beta))
	if N == 0 {
		p = utils.ConstArray(Nc, rg)
		return
	}
	ab := alpha + beta
	rg1 := 1. / math.Sqrt(gamma1(alpha, beta))
	p = make([]float64, Nc)
	for i, x := range rd {
		p[i] = rg1 * ((ab+2.0)*x/2.0 + (alpha-beta)/2.0)
	}
	if N == 1 {
		return
	}

	var (
		pm1  = utils.ConstArray(Nc, rg)
		a1   = alpha + 1.
		b1   = beta + 1.
		ab1  = ab + 1.
		aold = 2.0 * math.Sqrt(a1*b1/(ab+3.0)) / (ab + 2.0)
	)
	for i := 1; i < N; i++ {
		fi := float64(i)
		h1 := 2.0*fi + ab
		anew := 2.0 / (h1 + 2.0) * math.Sqrt((fi+1)*(fi+ab1)*(fi+a1)*(fi+b1)/(h1+1.0)/(h1+3.0))
		bnew := -(alpha*alpha - beta*beta) / h1 / (h1 + 2.0)
		for j, x := range rd {
			pm1[j], p[j] = p[j], (-aold*pm1[j]+(x-bnew)*p[j])/anew
		}
		aold = anew
	}
	return
}

// GradJacobiP is the derivative of JacobiP, sqrt(N(N+alpha+beta+1)) P^(alpha+1,beta+1)_(N-1)
func GradJacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	if N == 0 {
		p = make([]float64, r.Len())
		return
	}
	p = JacobiP(r, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i, val := range p {
		p[i] = val * fac
	}
	return
}

// LegendreModes evaluates the orthonormal Legendre polynomials 0..N at R,
// one slice per degree. Tensor product bases are built from these.
func LegendreModes(N int, R utils.Vector) (P [][]float64) {
	P = make([][]float64, N+1)
	for i := range P {
		P[i] = JacobiP(R, 0, 0, i)
	}
	return
}

// GradLegendreModes is the derivative counterpart of LegendreModes
func GradLegendreModes(N int, R utils.Vector) (dP [][]float64) {
	dP = make([][]float64, N+1)
	for i := range dP {
		dP[i] = GradJacobiP(R, 0, 0, i)
	}
	return
}

// Vandermonde1D has one row per point in R and one column per Legendre mode 0..N
func Vandermonde1D(N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	for j, col := range LegendreModes(N, R) {
		V.SetCol(j, col)
	}
	return
}

func GradVandermonde1D(N int, R utils.Vector) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(R.Len(), N+1)
	for j, col := range GradLegendreModes(N, R) {
		Vr.SetCol(j, col)
	}
	return
}
