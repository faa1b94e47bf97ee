package DG3D

import (
	"math"

	"github.com/notargets/nodaldg/DG2D"
	"github.com/notargets/nodaldg/utils"
)

// Optimized blending parameters for p = 1..15
var alphastore = []float64{
	0.0000, 0.0000, 0.0000, 0.1002, 1.1332,
	1.5608, 1.3413, 1.2577, 1.1603, 1.10153,
	0.6080, 0.4523, 0.8856, 0.8717, 0.9655,
}

// EquiNodes3D returns the regular lattice of order p on the reference
// tetrahedron, r varying fastest and t slowest.
func EquiNodes3D(p int) (r, s, t utils.Vector) {
	var (
		Np = (p + 1) * (p + 2) * (p + 3) / 6
	)
	r, s, t = utils.NewVector(Np), utils.NewVector(Np), utils.NewVector(Np)
	if p == 0 {
		// The lone node sits on the first vertex
		r.Set(-1)
		s.Set(-1)
		t.Set(-1)
		return
	}
	sk := 0
	for n := 0; n <= p; n++ {
		for m := 0; m <= p-n; m++ {
			for l := 0; l <= p-n-m; l++ {
				r.DataP[sk] = -1.0 + 2.0*float64(l)/float64(p)
				s.DataP[sk] = -1.0 + 2.0*float64(m)/float64(p)
				t.DataP[sk] = -1.0 + 2.0*float64(n)/float64(p)
				sk++
			}
		}
	}
	return
}

// EquidistantTetrahedronNodes returns the regular lattice of order p on the
// equilateral tetrahedron.
func EquidistantTetrahedronNodes(p int) (X, Y, Z utils.Vector) {
	return RSTtoXYZ(EquiNodes3D(p))
}

// Nodes3D computes the warp and blend nodes of order p in the equilateral
// tetrahedron.
func Nodes3D(p int) (X, Y, Z utils.Vector) {
	var (
		alpha   = 1.0
		Np      = (p + 1) * (p + 2) * (p + 3) / 6
		tol     = 1e-10
		r, s, t = EquiNodes3D(p)
	)
	X, Y, Z = RSTtoXYZ(r, s, t)
	if p < 2 {
		// Vertices only, nothing to warp
		return
	}
	if p <= 15 {
		alpha = alphastore[p-1]
	}

	// Barycentric coordinates
	L1, L2, L3, L4 := utils.NewVector(Np), utils.NewVector(Np), utils.NewVector(Np), utils.NewVector(Np)
	for i := 0; i < Np; i++ {
		L1.DataP[i] = (1.0 + t.DataP[i]) / 2.0
		L2.DataP[i] = (1.0 + s.DataP[i]) / 2.0
		L3.DataP[i] = -(1.0 + r.DataP[i] + s.DataP[i] + t.DataP[i]) / 2.0
		L4.DataP[i] = (1.0 + r.DataP[i]) / 2.0
	}

	// Orthogonal axis tangents on faces 1-4
	var t1, t2 [4][3]float64
	t1[0], t2[0] = vecSub(v2, v1), vecSub(v3, vecMid(v1, v2))
	t1[1], t2[1] = vecSub(v2, v1), vecSub(v4, vecMid(v1, v2))
	t1[2], t2[2] = vecSub(v3, v2), vecSub(v4, vecMid(v2, v3))
	t1[3], t2[3] = vecSub(v3, v1), vecSub(v4, vecMid(v1, v3))
	for n := 0; n < 4; n++ {
		t1[n], t2[n] = vecNormalize(t1[n]), vecNormalize(t2[n])
	}

	shift := [3][]float64{make([]float64, Np), make([]float64, Np), make([]float64, Np)}
	for face := 0; face < 4; face++ {
		var La, Lb, Lc, Ld utils.Vector
		switch face {
		case 0:
			La, Lb, Lc, Ld = L1, L2, L3, L4
		case 1:
			La, Lb, Lc, Ld = L2, L1, L3, L4
		case 2:
			La, Lb, Lc, Ld = L3, L1, L4, L2
		case 3:
			La, Lb, Lc, Ld = L4, L1, L3, L2
		}
		// Warp tangential to the face
		warp1, warp2 := DG2D.EvalShift(p, alpha, Lb, Lc, Ld)
		la, lb, lc, ld := La.DataP, Lb.DataP, Lc.DataP, Ld.DataP
		for i := 0; i < Np; i++ {
			// Volume blend
			blend := lb[i] * lc[i] * ld[i]
			denom := (lb[i] + 0.5*la[i]) * (lc[i] + 0.5*la[i]) * (ld[i] + 0.5*la[i])
			if denom > tol {
				blend = (1.0 + utils.POW(alpha*la[i], 2)) * blend / denom
			}
			for d := 0; d < 3; d++ {
				shift[d][i] += blend*warp1[i]*t1[face][d] + blend*warp2[i]*t2[face][d]
			}
			// Nodes on the face but not on all three of its edges take the face warp
			if la[i] < tol {
				var count int
				for _, l := range [3]float64{lb[i], lc[i], ld[i]} {
					if l > tol {
						count++
					}
				}
				if count < 3 {
					for d := 0; d < 3; d++ {
						shift[d][i] = warp1[i]*t1[face][d] + warp2[i]*t2[face][d]
					}
				}
			}
		}
	}
	X.Add(utils.NewVector(Np, shift[0]))
	Y.Add(utils.NewVector(Np, shift[1]))
	Z.Add(utils.NewVector(Np, shift[2]))
	return
}

func vecSub(a, b [3]float64) (c [3]float64) {
	for i := range c {
		c[i] = a[i] - b[i]
	}
	return
}

func vecMid(a, b [3]float64) (c [3]float64) {
	for i := range c {
		c[i] = 0.5 * (a[i] + b[i])
	}
	return
}

func vecNormalize(a [3]float64) (c [3]float64) {
	norm := math.Sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
	for i := range c {
		c[i] = a[i] / norm
	}
	return
}
