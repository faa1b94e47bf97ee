package DG3D

import (
	"github.com/notargets/nodaldg/DG1D"
	"github.com/notargets/nodaldg/utils"
)

// Vandermonde3D evaluates the orthonormal tetrahedron basis at (r,s,t).
// Columns run over the modes (i,j,k), i+j+k <= N, with i outermost and k
// innermost. This is not ordered by total degree: every i = 0 mode comes
// before (1,0,0). D = Vr V^-1 does not depend on the column order.
func Vandermonde3D(N int, r, s, t utils.Vector) (V3D utils.Matrix) {
	var (
		Ncol    = (N + 1) * (N + 2) * (N + 3) / 6
		a, b, c = RSTtoABC(r, s, t)
	)
	V3D = utils.NewMatrix(r.Len(), Ncol)
	sk := 0
	for i := 0; i <= N; i++ {
		for j := 0; j <= N-i; j++ {
			for k := 0; k <= N-i-j; k++ {
				V3D.SetCol(sk, Simplex3DP(a, b, c, i, j, k))
				sk++
			}
		}
	}
	return
}

func GradVandermonde3D(N int, r, s, t utils.Vector) (Vr, Vs, Vt utils.Matrix) {
	var (
		Np      = r.Len()
		Ncol    = (N + 1) * (N + 2) * (N + 3) / 6
		a, b, c = RSTtoABC(r, s, t)
	)
	Vr, Vs, Vt = utils.NewMatrix(Np, Ncol), utils.NewMatrix(Np, Ncol), utils.NewMatrix(Np, Ncol)
	sk := 0
	for i := 0; i <= N; i++ {
		for j := 0; j <= N-i; j++ {
			for k := 0; k <= N-i-j; k++ {
				dr, ds, dt := GradSimplex3DP(a, b, c, i, j, k)
				Vr.SetCol(sk, dr)
				Vs.SetCol(sk, ds)
				Vt.SetCol(sk, dt)
				sk++
			}
		}
	}
	return
}

// DMatrix3D returns Dr, Ds and Dt from V and its gradients for either the
// simplex or the tensor basis.
func DMatrix3D(V, Vr, Vs, Vt utils.Matrix) (Dr, Ds, Dt utils.Matrix, err error) {
	var D []utils.Matrix
	if D, err = DG1D.DMatrices(V, Vr, Vs, Vt); err != nil {
		return
	}
	Dr, Ds, Dt = D[0], D[1], D[2]
	return
}
