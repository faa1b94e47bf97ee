package DG2D

import (
	"fmt"
	"math"

	"github.com/notargets/nodaldg/DG1D"
	"github.com/notargets/nodaldg/utils"
)

// Optimized blending parameters for N = 1..15
var alpopt = []float64{
	0.0000, 0.0000, 1.4152, 0.1001, 0.2751,
	0.9800, 1.0999, 1.2832, 1.3648, 1.4773,
	1.4959, 1.5743, 1.5770, 1.6223, 1.6258,
}

// EquidistantBarycentric returns the barycentric coordinates of the regular
// lattice of order N, L1 varying slowest and L3 fastest.
func EquidistantBarycentric(N int) (L1, L2, L3 utils.Vector) {
	var (
		Np = (N + 1) * (N + 2) / 2
	)
	L1, L2, L3 = utils.NewVector(Np), utils.NewVector(Np), utils.NewVector(Np)
	if N == 0 {
		// The lone node sits on the first vertex
		L2.DataP[0] = 1
		return
	}
	fn := 1. / float64(N)
	var sk int
	for n := 0; n < N+1; n++ {
		for m := 0; m < (N + 1 - n); m++ {
			L1.DataP[sk] = float64(n) * fn
			L3.DataP[sk] = float64(m) * fn
			L2.DataP[sk] = 1 - L1.DataP[sk] - L3.DataP[sk]
			sk++
		}
	}
	return
}

// EquidistantTriangleNodes returns the regular lattice of order N on the
// equilateral triangle.
func EquidistantTriangleNodes(N int) (x, y utils.Vector) {
	return baryToXY(EquidistantBarycentric(N))
}

func baryToXY(L1, L2, L3 utils.Vector) (x, y utils.Vector) {
	var (
		Np = L1.Len()
	)
	x, y = utils.NewVector(Np), utils.NewVector(Np)
	for i := range x.DataP {
		x.DataP[i] = L3.DataP[i] - L2.DataP[i]
		y.DataP[i] = (2*L1.DataP[i] - L3.DataP[i] - L2.DataP[i]) / math.Sqrt(3)
	}
	return
}

// Nodes2D computes the warp and blend (x,y) nodes in the equilateral triangle
// for polynomial order N.
func Nodes2D(N int) (x, y utils.Vector) {
	var (
		alpha      float64
		L1, L2, L3 = EquidistantBarycentric(N)
		Np         = L1.Len()
		l1d, l2d   = L1.DataP, L2.DataP
		l3d        = L3.DataP
	)
	x, y = baryToXY(L1, L2, L3)
	if N < 2 {
		// Vertices only, nothing to warp
		return
	}
	if N < 16 {
		alpha = alpopt[N-1]
	} else {
		alpha = 5. / 3.
	}
	xd, yd := x.DataP, y.DataP
	// Amount of warp for each node, for each edge
	warpf1 := Warpfactor(N, L3.Copy().Subtract(L2))
	warpf2 := Warpfactor(N, L1.Copy().Subtract(L3))
	warpf3 := Warpfactor(N, L2.Copy().Subtract(L1))
	for i := 0; i < Np; i++ {
		// Blend each edge warp into the interior
		warp1 := 4 * l2d[i] * l3d[i] * warpf1[i] * (1 + utils.POW(alpha*l1d[i], 2))
		warp2 := 4 * l1d[i] * l3d[i] * warpf2[i] * (1 + utils.POW(alpha*l2d[i], 2))
		warp3 := 4 * l1d[i] * l2d[i] * warpf3[i] * (1 + utils.POW(alpha*l3d[i], 2))
		// Accumulate deformations associated with each edge
		xd[i] += warp1 + math.Cos(2*math.Pi/3)*warp2 + math.Cos(4*math.Pi/3)*warp3
		yd[i] += math.Sin(2*math.Pi/3)*warp2 + math.Sin(4*math.Pi/3)*warp3
	}
	return
}

// Warpfactor interpolates the displacement from equidistant to Gauss-Lobatto
// nodes at rout and divides out the 1-r^2 edge blend. The warp is zero at
// the interval ends.
func Warpfactor(N int, rout utils.Vector) (warpF []float64) {
	var (
		Nr   = rout.Len()
		Pmat = utils.NewMatrix(N+1, Nr)
	)
	// Compute LGL and equidistant node distribution
	LGLr, err := DG1D.JacobiGL(0, 0, N)
	if err != nil {
		panic(err)
	}
	req := utils.NewVector(N+1).Linspace(-1, 1)
	Veq := DG1D.Vandermonde1D(N, req)
	// Evaluate Lagrange polynomial at rout
	for i := 0; i < (N + 1); i++ {
		Pmat.SetRow(i, DG1D.JacobiP(rout, 0, 0, i))
	}
	Lmat, err := Veq.Transpose().LUSolve(Pmat)
	if err != nil {
		panic(fmt.Errorf("equidistant Vandermonde, N = %d: %w", N, err))
	}
	warp := Lmat.Transpose().MulVec(LGLr.Subtract(req))
	warpF = warp.DataP
	for i, r := range rout.DataP {
		if math.Abs(r) < 1.0-1.e-10 {
			warpF[i] /= 1 - r*r
		} else {
			warpF[i] = 0
		}
	}
	return
}

// EvalWarp evaluates the 1D edge warp of order p at xout: the interpolant of
// xnodes minus the equidistant nodes, both ordered from +1 down to -1, with
// the endpoint factors removed.
func EvalWarp(p int, xnodes, xout utils.Vector) (warp []float64) {
	var (
		xeq = make([]float64, p+1)
		xn  = xnodes.DataP
	)
	warp = make([]float64, xout.Len())
	for i := range xeq {
		xeq[i] = -1 + 2*float64(p-i)/float64(p)
	}
	for i := 0; i <= p; i++ {
		for n, x := range xout.DataP {
			d := xn[i] - xeq[i]
			for j := 1; j < p; j++ {
				if i != j {
					d *= (x - xeq[j]) / (xeq[i] - xeq[j])
				}
			}
			if i != 0 {
				d = -d / (xeq[i] - xeq[0])
			}
			if i != p {
				d /= xeq[i] - xeq[p]
			}
			warp[n] += d
		}
	}
	return
}

// EvalShift computes the warp and blend displacement of the points with
// barycentric coordinates (L1,L2,L3) on an equilateral triangle face.
// pval scales the blend away from the edges.
func EvalShift(p int, pval float64, L1, L2, L3 utils.Vector) (dx, dy []float64) {
	var (
		Np            = L1.Len()
		l1, l2, l3    = L1.DataP, L2.DataP, L3.DataP
		gaussX, err   = DG1D.JacobiGL(0, 0, p)
		w1, w2, w3    []float64
		blend, warpFn float64
	)
	if err != nil {
		panic(err)
	}
	gaussX.Scale(-1)
	w1 = EvalWarp(p, gaussX, L3.Copy().Subtract(L2))
	w2 = EvalWarp(p, gaussX, L1.Copy().Subtract(L3))
	w3 = EvalWarp(p, gaussX, L2.Copy().Subtract(L1))
	dx, dy = make([]float64, Np), make([]float64, Np)
	for i := 0; i < Np; i++ {
		blend = l2[i] * l3[i]
		warpFn = 4 * blend * w1[i] * (1 + utils.POW(pval*l1[i], 2))
		dx[i] += warpFn

		blend = l1[i] * l3[i]
		warpFn = 4 * blend * w2[i] * (1 + utils.POW(pval*l2[i], 2))
		dx[i] += math.Cos(2*math.Pi/3) * warpFn
		dy[i] += math.Sin(2*math.Pi/3) * warpFn

		blend = l1[i] * l2[i]
		warpFn = 4 * blend * w3[i] * (1 + utils.POW(pval*l3[i], 2))
		dx[i] += math.Cos(4*math.Pi/3) * warpFn
		dy[i] += math.Sin(4*math.Pi/3) * warpFn
	}
	return
}
