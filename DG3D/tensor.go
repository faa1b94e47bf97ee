package DG3D

import (
	"github.com/notargets/nodaldg/DG1D"
	"github.com/notargets/nodaldg/utils"
)

// HexahedronNodes returns the tensor product Gauss-Lobatto nodes of order N
// on [-1,1]^3, r varying fastest and t slowest.
func HexahedronNodes(N int) (R, S, T utils.Vector, err error) {
	var (
		r1d utils.Vector
		Nq  = N + 1
	)
	if r1d, err = DG1D.JacobiGL(0, 0, N); err != nil {
		return
	}
	Np := Nq * Nq * Nq
	R, S, T = utils.NewVector(Np), utils.NewVector(Np), utils.NewVector(Np)
	for k := 0; k < Nq; k++ {
		for j := 0; j < Nq; j++ {
			for i := 0; i < Nq; i++ {
				n := (k*Nq+j)*Nq + i
				R.DataP[n], S.DataP[n], T.DataP[n] = r1d.DataP[i], r1d.DataP[j], r1d.DataP[k]
			}
		}
	}
	return
}

// Vandermonde3DTensor evaluates P_i(r)P_j(s)P_k(t), 0 <= i,j,k <= N, with i
// outermost.
func Vandermonde3DTensor(N int, R, S, T utils.Vector) (V utils.Matrix) {
	var (
		Nr         = R.Len()
		Pr, Ps, Pt = DG1D.LegendreModes(N, R), DG1D.LegendreModes(N, S), DG1D.LegendreModes(N, T)
	)
	V = utils.NewMatrix(Nr, (N+1)*(N+1)*(N+1))
	sk := 0
	for i := 0; i <= N; i++ {
		for j := 0; j <= N; j++ {
			for k := 0; k <= N; k++ {
				col := make([]float64, Nr)
				for n := range col {
					col[n] = Pr[i][n] * Ps[j][n] * Pt[k][n]
				}
				V.SetCol(sk, col)
				sk++
			}
		}
	}
	return
}

func GradVandermonde3DTensor(N int, R, S, T utils.Vector) (Vr, Vs, Vt utils.Matrix) {
	var (
		Nr            = R.Len()
		Ncol          = (N + 1) * (N + 1) * (N + 1)
		Pr, Ps, Pt    = DG1D.LegendreModes(N, R), DG1D.LegendreModes(N, S), DG1D.LegendreModes(N, T)
		dPr, dPs, dPt = DG1D.GradLegendreModes(N, R), DG1D.GradLegendreModes(N, S), DG1D.GradLegendreModes(N, T)
	)
	Vr, Vs, Vt = utils.NewMatrix(Nr, Ncol), utils.NewMatrix(Nr, Ncol), utils.NewMatrix(Nr, Ncol)
	sk := 0
	for i := 0; i <= N; i++ {
		for j := 0; j <= N; j++ {
			for k := 0; k <= N; k++ {
				cr, cs, ct := make([]float64, Nr), make([]float64, Nr), make([]float64, Nr)
				for n := 0; n < Nr; n++ {
					cr[n] = dPr[i][n] * Ps[j][n] * Pt[k][n]
					cs[n] = Pr[i][n] * dPs[j][n] * Pt[k][n]
					ct[n] = Pr[i][n] * Ps[j][n] * dPt[k][n]
				}
				Vr.SetCol(sk, cr)
				Vs.SetCol(sk, cs)
				Vt.SetCol(sk, ct)
				sk++
			}
		}
	}
	return
}
