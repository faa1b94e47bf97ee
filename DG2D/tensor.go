package DG2D

import (
	"github.com/notargets/nodaldg/DG1D"
	"github.com/notargets/nodaldg/utils"
)

// QuadrilateralNodes returns the tensor product Gauss-Lobatto nodes of order
// N on [-1,1]^2 with r varying fastest.
func QuadrilateralNodes(N int) (R, S utils.Vector, err error) {
	var (
		r1d utils.Vector
		Nq  = N + 1
	)
	if r1d, err = DG1D.JacobiGL(0, 0, N); err != nil {
		return
	}
	R, S = utils.NewVector(Nq*Nq), utils.NewVector(Nq*Nq)
	for j := 0; j < Nq; j++ {
		for i := 0; i < Nq; i++ {
			R.DataP[j*Nq+i] = r1d.DataP[i]
			S.DataP[j*Nq+i] = r1d.DataP[j]
		}
	}
	return
}

// Vandermonde2DTensor evaluates P_i(r)P_j(s), 0 <= i,j <= N, with i outer.
func Vandermonde2DTensor(N int, R, S utils.Vector) (V utils.Matrix) {
	var (
		Pr, Ps = DG1D.LegendreModes(N, R), DG1D.LegendreModes(N, S)
	)
	V = utils.NewMatrix(R.Len(), (N+1)*(N+1))
	var sk int
	for i := 0; i <= N; i++ {
		for j := 0; j <= N; j++ {
			col := make([]float64, R.Len())
			for n := range col {
				col[n] = Pr[i][n] * Ps[j][n]
			}
			V.SetCol(sk, col)
			sk++
		}
	}
	return
}

func GradVandermonde2DTensor(N int, R, S utils.Vector) (Vr, Vs utils.Matrix) {
	var (
		Pr, Ps   = DG1D.LegendreModes(N, R), DG1D.LegendreModes(N, S)
		dPr, dPs = DG1D.GradLegendreModes(N, R), DG1D.GradLegendreModes(N, S)
		Nr       = R.Len()
	)
	Vr, Vs = utils.NewMatrix(Nr, (N+1)*(N+1)), utils.NewMatrix(Nr, (N+1)*(N+1))
	var sk int
	for i := 0; i <= N; i++ {
		for j := 0; j <= N; j++ {
			cr, cs := make([]float64, Nr), make([]float64, Nr)
			for n := 0; n < Nr; n++ {
				cr[n] = dPr[i][n] * Ps[j][n]
				cs[n] = Pr[i][n] * dPs[j][n]
			}
			Vr.SetCol(sk, cr)
			Vs.SetCol(sk, cs)
			sk++
		}
	}
	return
}

// DMatrix2D returns Dr = Vr V^-1 and Ds = Vs V^-1 for either the simplex or
// the tensor basis.
func DMatrix2D(V, Vr, Vs utils.Matrix) (Dr, Ds utils.Matrix, err error) {
	var D []utils.Matrix
	if D, err = DG1D.DMatrices(V, Vr, Vs); err != nil {
		return
	}
	Dr, Ds = D[0], D[1]
	return
}
