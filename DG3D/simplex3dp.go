package DG3D

import (
	"math"

	"github.com/notargets/nodaldg/DG1D"
	"github.com/notargets/nodaldg/utils"
)

// Simplex3DP evaluates the orthonormal tetrahedron mode (i,j,k) at the
// collapsed coordinates (a,b,c).
func Simplex3DP(a, b, c utils.Vector, i, j, k int) (P []float64) {
	var (
		n      = a.Len()
		bd, cd = b.DataP, c.DataP
	)
	P = make([]float64, n)
	h1 := DG1D.JacobiP(a, 0, 0, i)
	h2 := DG1D.JacobiP(b, float64(2*i+1), 0, j)
	h3 := DG1D.JacobiP(c, float64(2*(i+j)+2), 0, k)
	normConst := 2.0 * math.Sqrt(2.0)
	for idx := 0; idx < n; idx++ {
		tv1 := normConst * h1[idx] * h2[idx]
		tv2 := utils.POW(1.0-bd[idx], i)
		tv3 := h3[idx] * utils.POW(1.0-cd[idx], i+j)
		P[idx] = tv1 * tv2 * tv3
	}
	return
}

// GradSimplex3DP returns the (r,s,t) derivatives of mode (id,jd,kd) at the
// collapsed coordinates (a,b,c).
func GradSimplex3DP(a, b, c utils.Vector, id, jd, kd int) (dmodedr, dmodeds, dmodedt []float64) {
	var (
		n          = a.Len()
		ad, bd, cd = a.DataP, b.DataP, c.DataP
	)
	dmodedr, dmodeds, dmodedt = make([]float64, n), make([]float64, n), make([]float64, n)

	fa := DG1D.JacobiP(a, 0, 0, id)
	gb := DG1D.JacobiP(b, float64(2*id+1), 0, jd)
	hc := DG1D.JacobiP(c, float64(2*(id+jd)+2), 0, kd)
	dfa := DG1D.GradJacobiP(a, 0, 0, id)
	dgb := DG1D.GradJacobiP(b, float64(2*id+1), 0, jd)
	dhc := DG1D.GradJacobiP(c, float64(2*(id+jd)+2), 0, kd)

	normFactor := math.Pow(2, float64(2*id+jd)+1.5)

	for i := 0; i < n; i++ {
		ai, bi, ci := ad[i], bd[i], cd[i]

		// r-derivative
		V3Dr := dfa[i] * gb[i] * hc[i]
		if id > 0 {
			V3Dr *= utils.POW(0.5*(1.0-bi), id-1)
		}
		if id+jd > 0 {
			V3Dr *= utils.POW(0.5*(1.0-ci), id+jd-1)
		}

		// s-derivative
		V3Ds := 0.5 * (1.0 + ai) * V3Dr
		tmp := dgb[i] * utils.POW(0.5*(1.0-bi), id)
		if id > 0 {
			tmp -= (0.5 * float64(id)) * gb[i] * utils.POW(0.5*(1.0-bi), id-1)
		}
		if id+jd > 0 {
			tmp *= utils.POW(0.5*(1.0-ci), id+jd-1)
		}
		tmp = fa[i] * tmp * hc[i]
		V3Ds += tmp

		// t-derivative
		V3Dt := 0.5*(1.0+ai)*V3Dr + 0.5*(1.0+bi)*tmp
		tmp2 := dhc[i] * utils.POW(0.5*(1.0-ci), id+jd)
		if id+jd > 0 {
			tmp2 -= (0.5 * float64(id+jd)) * hc[i] * utils.POW(0.5*(1.0-ci), id+jd-1)
		}
		tmp2 = fa[i] * gb[i] * tmp2
		tmp2 *= utils.POW(0.5*(1.0-bi), id)
		V3Dt += tmp2

		dmodedr[i] = V3Dr * normFactor
		dmodeds[i] = V3Ds * normFactor
		dmodedt[i] = V3Dt * normFactor
	}
	return
}
