package DG3D

import (
	"math"

	"github.com/notargets/nodaldg/utils"
)

// Vertices of the equilateral tetrahedron, in the order matching the rst
// vertices (-1,-1,-1), (1,-1,-1), (-1,1,-1), (-1,-1,1)
var (
	v1 = [3]float64{-1, -1 / math.Sqrt(3), -1 / math.Sqrt(6)}
	v2 = [3]float64{1, -1 / math.Sqrt(3), -1 / math.Sqrt(6)}
	v3 = [3]float64{0, 2 / math.Sqrt(3), -1 / math.Sqrt(6)}
	v4 = [3]float64{0, 0, 3 / math.Sqrt(6)}
)

// XYZtoRST maps points of the equilateral tetrahedron to the reference
// tetrahedron by solving the affine vertex map for all points at once.
func XYZtoRST(X, Y, Z utils.Vector) (r, s, t utils.Vector) {
	var (
		Nc  = X.Len()
		A   = utils.NewMatrix(3, 3)
		rhs = utils.NewMatrix(3, Nc)
		xyz = [3][]float64{X.DataP, Y.DataP, Z.DataP}
	)
	for d := 0; d < 3; d++ {
		A.Set(d, 0, 0.5*(v2[d]-v1[d]))
		A.Set(d, 1, 0.5*(v3[d]-v1[d]))
		A.Set(d, 2, 0.5*(v4[d]-v1[d]))
		offset := 0.5 * (v2[d] + v3[d] + v4[d] - v1[d])
		for n, val := range xyz[d] {
			rhs.Set(d, n, val-offset)
		}
	}
	RST, err := A.LUSolve(rhs)
	if err != nil {
		// The vertex map is a fixed nonsingular matrix
		panic(err)
	}
	r, s, t = RST.Row(0), RST.Row(1), RST.Row(2)
	return
}

// RSTtoXYZ is the inverse of XYZtoRST
func RSTtoXYZ(r, s, t utils.Vector) (X, Y, Z utils.Vector) {
	var (
		Nc = r.Len()
	)
	X, Y, Z = utils.NewVector(Nc), utils.NewVector(Nc), utils.NewVector(Nc)
	for n := 0; n < Nc; n++ {
		rn, sn, tn := r.DataP[n], s.DataP[n], t.DataP[n]
		c1 := -0.5 * (1 + rn + sn + tn)
		c2 := 0.5 * (1 + rn)
		c3 := 0.5 * (1 + sn)
		c4 := 0.5 * (1 + tn)
		X.DataP[n] = c1*v1[0] + c2*v2[0] + c3*v3[0] + c4*v4[0]
		Y.DataP[n] = c1*v1[1] + c2*v2[1] + c3*v3[1] + c4*v4[1]
		Z.DataP[n] = c1*v1[2] + c2*v2[2] + c3*v3[2] + c4*v4[2]
	}
	return
}

// RSTtoABC collapses the tetrahedron onto the cube. The collapsed edge and
// apex map to a = -1 and b = -1.
func RSTtoABC(r, s, t utils.Vector) (a, b, c utils.Vector) {
	var (
		Np = r.Len()
	)
	a, b = utils.NewVector(Np), utils.NewVector(Np)
	for n := 0; n < Np; n++ {
		a.DataP[n], b.DataP[n] = rstToab(r.DataP[n], s.DataP[n], t.DataP[n])
	}
	c = t.Copy()
	return
}

func rstToab(r, s, t float64) (a, b float64) {
	if math.Abs(s+t) >= utils.COLLAPSETOL {
		a = 2*(1+r)/(-s-t) - 1
	} else {
		a = -1
	}
	if math.Abs(1-t) >= utils.COLLAPSETOL {
		b = 2*(1+s)/(1-t) - 1
	} else {
		b = -1
	}
	return
}

func ABCtoRST(a, b, c utils.Vector) (r, s, t utils.Vector) {
	var (
		Np = a.Len()
	)
	r, s = utils.NewVector(Np), utils.NewVector(Np)
	for n := 0; n < Np; n++ {
		an, bn, cn := a.DataP[n], b.DataP[n], c.DataP[n]
		s.DataP[n] = 0.5*(1+bn)*(1-cn) - 1
		r.DataP[n] = 0.25*(1+an)*(1-bn)*(1-cn) - 1
	}
	t = c.Copy()
	return
}
