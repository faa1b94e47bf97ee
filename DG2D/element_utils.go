package DG2D

import (
	"math"

	"github.com/notargets/nodaldg/DG1D"
	"github.com/notargets/nodaldg/utils"
)

// Vandermonde2D evaluates the orthonormal triangle basis at (R,S). Columns
// run over the modes (i,j), i+j <= N, with i outer and j inner. This is not
// ordered by total degree: column 1 is (0,1) and (1,0) follows the whole
// i = 0 block. D = Vr V^-1 does not depend on the column order.
func Vandermonde2D(N int, R, S utils.Vector) (V2D utils.Matrix) {
	A, B := RStoAB(R, S)
	modes := SimplexModes2D(N)
	V2D = utils.NewMatrix(R.Len(), len(modes))
	for sk, m := range modes {
		V2D.SetCol(sk, Simplex2DP(A, B, m[0], m[1]))
	}
	return
}

func GradVandermonde2D(N int, R, S utils.Vector) (V2Dr, V2Ds utils.Matrix) {
	A, B := RStoAB(R, S)
	modes := SimplexModes2D(N)
	V2Dr, V2Ds = utils.NewMatrix(R.Len(), len(modes)), utils.NewMatrix(R.Len(), len(modes))
	for sk, m := range modes {
		ddr, dds := GradSimplex2DP(A, B, m[0], m[1])
		V2Dr.SetCol(sk, ddr)
		V2Ds.SetCol(sk, dds)
	}
	return
}

// SimplexModes2D lists the (i,j) mode indices of the order N triangle basis
// in column order.
func SimplexModes2D(N int) (modes [][2]int) {
	modes = make([][2]int, 0, (N+1)*(N+2)/2)
	for i := 0; i <= N; i++ {
		for j := 0; j <= N-i; j++ {
			modes = append(modes, [2]int{i, j})
		}
	}
	return
}

// Simplex2DP evaluates the orthonormal mode (i,j) on the triangle at the
// collapsed coordinates (A,B). The mode factors as
// sqrt(2) P_i(a) P_j^(2i+1,0)(b) (1-b)^i.
func Simplex2DP(A, B utils.Vector, i, j int) (P []float64) {
	var (
		fa, gb = modeFactors2D(A, B, i, j)
		bd     = B.DataP
	)
	P = make([]float64, A.Len())
	for n := range P {
		P[n] = math.Sqrt2 * fa[n] * gb[n] * utils.POW(1-bd[n], i)
	}
	return
}

// GradSimplex2DP returns the (r,s) derivatives of mode (id,jd) at the
// collapsed coordinates (A,B).
func GradSimplex2DP(A, B utils.Vector, id, jd int) (ddr, dds []float64) {
	var (
		fa, gb   = modeFactors2D(A, B, id, jd)
		dfa, dgb = gradModeFactors2D(A, B, id, jd)
		ad, bd   = A.DataP, B.DataP
		norm     = math.Pow(2, float64(id)+0.5)
		i        = float64(id)
	)
	ddr, dds = make([]float64, A.Len()), make([]float64, A.Len())
	for n := range ddr {
		// h = (1-b)/2, the collapse factor
		h := 0.5 * (1 - bd[n])
		hm1 := 1.
		if id > 0 {
			hm1 = utils.POW(h, id-1)
		}
		ddr[n] = norm * dfa[n] * gb[n] * hm1
		db := norm * fa[n] * (dgb[n]*utils.POW(h, id) - 0.5*i*gb[n]*hm1)
		dds[n] = 0.5*(1+ad[n])*ddr[n] + db
	}
	return
}

func modeFactors2D(A, B utils.Vector, i, j int) (fa, gb []float64) {
	fa = DG1D.JacobiP(A, 0, 0, i)
	gb = DG1D.JacobiP(B, float64(2*i+1), 0, j)
	return
}

func gradModeFactors2D(A, B utils.Vector, i, j int) (dfa, dgb []float64) {
	dfa = DG1D.GradJacobiP(A, 0, 0, i)
	dgb = DG1D.GradJacobiP(B, float64(2*i+1), 0, j)
	return
}

func RStoAB(R, S utils.Vector) (a, b utils.Vector) {
	var (
		Np     = R.Len()
		rd, sd = R.DataP, S.DataP
	)
	ad, bd := make([]float64, Np), make([]float64, Np)
	for n, sval := range sd {
		ad[n], bd[n] = rsToab(rd[n], sval)
	}
	a, b = utils.NewVector(Np, ad), utils.NewVector(Np, bd)
	return
}

// rsToab collapses the triangle onto the square. The top vertex s = 1 maps
// to a = -1, the limit along the left edge.
func rsToab(r, s float64) (a, b float64) {
	if math.Abs(1-s) >= utils.COLLAPSETOL {
		a = 2*(1+r)/(1-s) - 1
	} else {
		a = -1
	}
	b = s
	return
}

func ABtoRS(A, B utils.Vector) (r, s utils.Vector) {
	var (
		Np     = A.Len()
		ad, bd = A.DataP, B.DataP
	)
	r, s = utils.NewVector(Np), utils.NewVector(Np)
	for n := range ad {
		r.DataP[n] = 0.5*(1+ad[n])*(1-bd[n]) - 1
		s.DataP[n] = bd[n]
	}
	return
}

// XYtoRS maps the equilateral triangle with vertices (-1,-1/sqrt3),
// (1,-1/sqrt3), (0,2/sqrt3) onto the right triangle (-1,-1), (1,-1), (-1,1).
func XYtoRS(x, y utils.Vector) (r, s utils.Vector) {
	r, s = utils.NewVector(x.Len()), utils.NewVector(x.Len())
	for n, xv := range x.DataP {
		yv := y.DataP[n] / math.Sqrt(3)
		r.DataP[n] = xv - yv - 1./3
		s.DataP[n] = 2*yv - 1./3
	}
	return
}

// RStoXY is the inverse of XYtoRS
func RStoXY(r, s utils.Vector) (x, y utils.Vector) {
	x, y = utils.NewVector(r.Len()), utils.NewVector(r.Len())
	var (
		rd, sd = r.DataP, s.DataP
		xd, yd = x.DataP, y.DataP
	)
	sr3 := math.Sqrt(3)
	for i := range rd {
		xd[i] = rd[i] + 0.5*(1+sd[i])
		yd[i] = (3*sd[i] + 1) / (2 * sr3)
	}
	return
}
