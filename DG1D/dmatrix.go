package DG1D

import (
	"fmt"

	"github.com/notargets/nodaldg/utils"
	"gonum.org/v1/gonum/mat"
)

// DMatrices returns D_k = GV_k * V^-1 for each gradient Vandermonde GV_k. V is
// factored once and each D_k comes from solving V^T D_k^T = GV_k^T, so the
// inverse of V is never formed.
func DMatrices(V utils.Matrix, GV ...utils.Matrix) (D []utils.Matrix, err error) {
	var (
		lu     mat.LU
		nr, nc = V.Dims()
	)
	if nr != nc {
		err = fmt.Errorf("%w: Vandermonde matrix is %dx%d, not square", utils.ErrInvalidArgument, nr, nc)
		return
	}
	lu.Factorize(V.M)
	D = make([]utils.Matrix, len(GV))
	for k, Vk := range GV {
		if gr, gc := Vk.Dims(); gr != nr || gc != nc {
			err = fmt.Errorf("%w: gradient Vandermonde %d is %dx%d, want %dx%d",
				utils.ErrInvalidArgument, k, gr, gc, nr, nc)
			return nil, err
		}
		DT := utils.NewMatrix(nr, nr)
		if err = lu.SolveTo(DT.M, true, Vk.T()); err != nil {
			err = fmt.Errorf("%w: %v", utils.ErrNumerical, err)
			return nil, err
		}
		D[k] = DT.Transpose()
	}
	return
}

// DMatrix1D is the 1D differentiation matrix Vr * V^-1.
func DMatrix1D(V, Vr utils.Matrix) (Dr utils.Matrix, err error) {
	var D []utils.Matrix
	if D, err = DMatrices(V, Vr); err != nil {
		return
	}
	Dr = D[0]
	return
}

// DMatrix1DFromNodes builds the differentiation matrix on the nodes r,
// which must hold N+1 distinct points.
func DMatrix1DFromNodes(N int, r utils.Vector) (Dr utils.Matrix, err error) {
	if N < 0 || r.Len() != N+1 {
		err = fmt.Errorf("%w: order %d needs %d nodes, have %d", utils.ErrInvalidArgument, N, N+1, r.Len())
		return
	}
	return DMatrix1D(Vandermonde1D(N, r), GradVandermonde1D(N, r))
}
