package DG3D

import (
	"math"
	"testing"

	"github.com/notargets/nodaldg/DG1D"
	"github.com/notargets/nodaldg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// Nodes3D(3) in the equilateral tetrahedron and in rst
	nodes3X = []float64{-1.0000, -0.4472, 0.4472, 1.0000, -0.7236, -0.0000, 0.7236, -0.2764, 0.2764, 0,
		-0.7236, -0.0000, 0.7236, -0.3333, 0.3333, -0.0000, -0.2764, 0.2764, -0.0000, 0}
	nodes3Y = []float64{-0.5774, -0.5774, -0.5774, -0.5774, -0.0986, -0.0000, -0.0986, 0.6760, 0.6760, 1.1547,
		-0.4178, -0.3849, -0.4178, 0.1925, 0.1925, 0.8355, -0.1596, -0.1596, 0.3192, 0}
	nodes3Z = []float64{-0.408248, -0.408248, -0.408248, -0.408248, -0.408248, -0.408248, -0.408248, -0.408248, -0.408248, -0.408248,
		0.043100, 0.136083, 0.043100, 0.136083, 0.136083, 0.043100, 0.773397, 0.773397, 0.773397, 1.224745}
	nodes3R = []float64{-1.0000, -0.4472, 0.4472, 1.0000, -1.0000, -0.3333, 0.4472, -1.0000, -0.4472, -1.0000,
		-1.0000, -0.3333, 0.4472, -1.0000, -0.3333, -1.0000, -1.0000, -0.4472, -1.0000, -1.0000}
	nodes3S = []float64{-1.0000, -1.0000, -1.0000, -1.0000, -0.4472, -0.3333, -0.4472, 0.4472, 0.4472, 1.0000,
		-1.0000, -1.0000, -1.0000, -0.3333, -0.3333, 0.4472, -1.0000, -1.0000, -0.4472, -1.0000}
	nodes3T = []float64{-1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000, -1.0000,
		-0.4472, -0.3333, -0.4472, -0.3333, -0.3333, -0.4472, 0.4472, 0.4472, 0.4472, 1.0000}
)

func TestEquidistantTetrahedron(t *testing.T) {
	r, s, tt := EquiNodes3D(2)
	assert.Equal(t, []float64{-1, 0, 1, -1, 0, -1, -1, 0, -1, -1}, r.DataP)
	assert.Equal(t, []float64{-1, -1, -1, 0, 0, 1, -1, -1, 0, -1}, s.DataP)
	assert.Equal(t, []float64{-1, -1, -1, -1, -1, -1, 0, 0, 0, 1}, tt.DataP)

	X, Y, Z := EquidistantTetrahedronNodes(2)
	assert.InDeltaSlice(t, []float64{-1., 0., 1., -0.5, 0.5, 0., -0.5, 0.5, 0., 0.}, X.DataP, 1.e-3)
	assert.InDeltaSlice(t, []float64{-0.577, -0.577, -0.577, 0.289, 0.289, 1.155, -0.289, -0.289, 0.577, 0.}, Y.DataP, 1.e-3)
	assert.InDeltaSlice(t, []float64{-0.408, -0.408, -0.408, -0.408, -0.408, -0.408, 0.408, 0.408, 0.408, 1.225}, Z.DataP, 1.e-3)

	// Order zero is the first vertex
	X, Y, Z = Nodes3D(0)
	assert.InDeltaSlice(t, v1[:], []float64{X.AtVec(0), Y.AtVec(0), Z.AtVec(0)}, 1.e-15)
}

func TestNodes3D(t *testing.T) {
	// Order 2 stays on the lattice
	X, Y, Z := Nodes3D(2)
	Xe, Ye, Ze := EquidistantTetrahedronNodes(2)
	assert.InDeltaSlice(t, Xe.DataP, X.DataP, 1.e-12)
	assert.InDeltaSlice(t, Ye.DataP, Y.DataP, 1.e-12)
	assert.InDeltaSlice(t, Ze.DataP, Z.DataP, 1.e-12)

	X, Y, Z = Nodes3D(3)
	assert.InDeltaSlice(t, nodes3X, X.DataP, 1.e-3)
	assert.InDeltaSlice(t, nodes3Y, Y.DataP, 1.e-3)
	assert.InDeltaSlice(t, nodes3Z, Z.DataP, 1.e-3)

	// Every face carries the triangle warp and blend nodes, edges carry Gauss-Lobatto
	for N := 2; N < 9; N++ {
		X, Y, Z = Nodes3D(N)
		r, s, tt := XYZtoRST(X, Y, Z)
		var onBottom int
		for i := range tt.DataP {
			// Inside the reference tetrahedron
			assert.GreaterOrEqual(t, r.AtVec(i), -1-1.e-10)
			assert.GreaterOrEqual(t, s.AtVec(i), -1-1.e-10)
			assert.GreaterOrEqual(t, tt.AtVec(i), -1-1.e-10)
			assert.LessOrEqual(t, r.AtVec(i)+s.AtVec(i)+tt.AtVec(i), -1+1.e-10)
			if math.Abs(tt.AtVec(i)+1) < 1.e-10 {
				onBottom++
			}
		}
		assert.Equal(t, (N+1)*(N+2)/2, onBottom)
		require.NoErrorf(t, Vandermonde3D(N, r, s, tt).CheckInvertible(), "N = %d", N)
	}
}

func TestTetrahedronTransforms(t *testing.T) {
	X := utils.NewVector(20, nodes3X)
	Y := utils.NewVector(20, nodes3Y)
	Z := utils.NewVector(20, nodes3Z)
	r, s, tt := XYZtoRST(X, Y, Z)
	assert.InDeltaSlice(t, nodes3R, r.DataP, 0.002)
	assert.InDeltaSlice(t, nodes3S, s.DataP, 0.002)
	assert.InDeltaSlice(t, nodes3T, tt.DataP, 0.002)
	Xb, Yb, Zb := RSTtoXYZ(r, s, tt)
	assert.InDeltaSlice(t, nodes3X, Xb.DataP, 1.e-12)
	assert.InDeltaSlice(t, nodes3Y, Yb.DataP, 1.e-12)
	assert.InDeltaSlice(t, nodes3Z, Zb.DataP, 1.e-12)

	r = utils.NewVector(20, nodes3R)
	s = utils.NewVector(20, nodes3S)
	tt = utils.NewVector(20, nodes3T)
	a, b, c := RSTtoABC(r, s, tt)
	assert.InDeltaSlice(t, []float64{-1.0000, -0.4472, 0.4472, 1.0000, -1.0000, 0.0000, 1.0000, -1.0000, 1.0000, -1.0000,
		-1.0000, 0, 1.0000, -1.0000, 1.0000, -1.0000, -1.0000, 1.0000, -1.0000, -1.0000}, a.DataP, 0.002)
	assert.InDeltaSlice(t, []float64{-1.0000, -1.0000, -1.0000, -1.0000, -0.4472, -0.3333, -0.4472, 0.4472, 0.4472, 1.0000,
		-1.0000, -1.0000, -1.0000, 0, 0, 1.0000, -1.0000, -1.0000, 1.0000, -1.0000}, b.DataP, 0.002)
	assert.Equal(t, nodes3T, c.DataP)

	rb, sb, tb := ABCtoRST(a, b, c)
	assert.InDeltaSlice(t, nodes3R, rb.DataP, 1.e-12)
	assert.InDeltaSlice(t, nodes3S, sb.DataP, 1.e-12)
	assert.Equal(t, nodes3T, tb.DataP)

	// Collapsed coordinates stay finite on the collapsed edge and at the apex
	r = utils.NewVector(3, []float64{-1, -1, -1})
	s = utils.NewVector(3, []float64{-1, 0.5, 1.e-12})
	tt = utils.NewVector(3, []float64{1, -0.5, -1.e-12})
	a, b, _ = RSTtoABC(r, s, tt)
	for i := 0; i < 3; i++ {
		assert.False(t, math.IsNaN(a.AtVec(i)) || math.IsInf(a.AtVec(i), 0))
		assert.False(t, math.IsNaN(b.AtVec(i)) || math.IsInf(b.AtVec(i), 0))
	}
	assert.Equal(t, []float64{-1, -1, -1}, a.DataP)
	assert.Equal(t, -1., b.AtVec(0))
}

func TestSimplex3DP(t *testing.T) {
	one := func(v float64) utils.Vector { return utils.NewVector(1, []float64{v}) }
	P := Simplex3DP(one(1), one(2), one(2), 1, 2, 3)
	assert.InDelta(t, 9575.4, P[0], 0.05)

	r, s, tt := XYZtoRST(Nodes3D(3))
	a, b, c := RSTtoABC(r, s, tt)
	dr, ds, dt := GradSimplex3DP(a, b, c, 1, 1, 3)
	assert.InDeltaSlice(t, []float64{5.408, 5.408, 5.408, 5.408, -2.066, -3.606, -2.066, -14.159, -14.159, -21.633,
		2.614, 4.273, 2.614, -6.41, -6.41, -10.455, -26.41, -26.41, 105.642, 0}, dr, 0.01)
	assert.InDeltaSlice(t, []float64{16.225, 8.751, -3.343, -10.817, 8.751, -1.803, -10.817, -3.343, -10.817, -10.817,
		7.841, 2.137, -5.227, 2.137, -8.546, -5.227, -79.231, 52.821, 52.821, 0}, ds, 0.01)
	assert.InDeltaSlice(t, []float64{86.533, 40.194, -34.785, -81.125, -21.499, -1.803, 19.433, -65.035, 50.876, -10.817,
		-12.664, 2.137, 15.278, 3.873, -10.282, -5.227, 1.848, -28.258, 52.821, 0}, dt, 0.01)

	// Orthonormal on the tetrahedron, integrated with a collapsed Gauss rule
	var (
		N, q       = 3, 6
		xa, wa     = DG1D.JacobiGQ(0, 0, q)
		xb, wb     = DG1D.JacobiGQ(1, 0, q)
		xc, wc     = DG1D.JacobiGQ(2, 0, q)
		A, B, C, W []float64
	)
	for i := 0; i <= q; i++ {
		for j := 0; j <= q; j++ {
			for k := 0; k <= q; k++ {
				A = append(A, xa.AtVec(i))
				B = append(B, xb.AtVec(j))
				C = append(C, xc.AtVec(k))
				W = append(W, wa.AtVec(i)*wb.AtVec(j)*wc.AtVec(k)/8)
			}
		}
	}
	Nq := len(W)
	av, bv, cv := utils.NewVector(Nq, A), utils.NewVector(Nq, B), utils.NewVector(Nq, C)
	var modes [][]float64
	for i := 0; i <= N; i++ {
		for j := 0; j <= N-i; j++ {
			for k := 0; k <= N-i-j; k++ {
				modes = append(modes, Simplex3DP(av, bv, cv, i, j, k))
			}
		}
	}
	for m1 := range modes {
		for m2 := range modes {
			var sum float64
			for n := range W {
				sum += W[n] * modes[m1][n] * modes[m2][n]
			}
			if m1 == m2 {
				assert.InDelta(t, 1., sum, 1.e-12)
			} else {
				assert.InDelta(t, 0., sum, 1.e-12)
			}
		}
	}
}

func TestVandermonde3D(t *testing.T) {
	N := 3
	r, s, tt := XYZtoRST(Nodes3D(N))
	V := Vandermonde3D(N, r, s, tt)
	assert.InDeltaSlice(t, []float64{0.8660, -1.1180, 1.3229, -1.5000, -1.5811, 1.8708, -2.1213, 2.2913, -2.5981, -3.0000,
		-2.7386, 3.2404, -3.6742, 3.9686, -4.5000, -5.1962, 5.1235, -5.8095, -6.7082, -7.9373}, V.Row(0).DataP, 0.002)
	assert.InDeltaSlice(t, []float64{0.8660, 3.3541, 7.9373, 15.0000, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		V.Row(19).DataP, 0.002)

	N = 2
	r, s, tt = XYZtoRST(Nodes3D(N))
	V = Vandermonde3D(N, r, s, tt)
	Vr, Vs, Vt := GradVandermonde3D(N, r, s, tt)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 0, 0, 0, 2.7386, -3.2404, -3.9686, -15.3704}, Vr.Row(0).DataP, 0.002)
	assert.InDeltaSlice(t, []float64{0, 0, 0, 2.3717, -2.8062, -9.1652, 1.3693, -1.6202, -11.9059, -5.1235}, Vs.Row(0).DataP, 0.002)
	assert.InDeltaSlice(t, []float64{0, 2.2361, -6.6144, 0.7906, -6.5479, -2.2913, 1.3693, -11.3413, -3.9686, -5.1235}, Vt.Row(0).DataP, 0.002)

	Dr, Ds, Dt, err := DMatrix3D(V, Vr, Vs, Vt)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{-1.5, 2, -0.5, 0, 0, 0, 0, 0, 0, 0}, Dr.Row(0).DataP, 1.e-10)
	assert.InDeltaSlice(t, []float64{-1.5, 0, 0, 2, 0, -0.5, 0, 0, 0, 0}, Ds.Row(0).DataP, 1.e-10)
	assert.InDeltaSlice(t, []float64{-1.5, 0, 0, 0, 0, 0, 2, 0, 0, -0.5}, Dt.Row(0).DataP, 1.e-10)
	assert.InDeltaSlice(t, []float64{0.5, 0, 0, 0, 0, 0, -2, 0, 0, 1.5}, Dt.Row(9).DataP, 1.e-10)

	// Exact on the full degree N space
	for N = 1; N < 7; N++ {
		r, s, tt = XYZtoRST(Nodes3D(N))
		Vr, Vs, Vt = GradVandermonde3D(N, r, s, tt)
		Dr, Ds, Dt, err = DMatrix3D(Vandermonde3D(N, r, s, tt), Vr, Vs, Vt)
		require.NoError(t, err)
		for p := 0; p <= N; p++ {
			for q := 0; q <= N-p; q++ {
				m := N - p - q
				f := make([]float64, r.Len())
				dfdr, dfds, dfdt := make([]float64, r.Len()), make([]float64, r.Len()), make([]float64, r.Len())
				for n := range f {
					rv, sv, tv := r.AtVec(n), s.AtVec(n), tt.AtVec(n)
					f[n] = utils.POW(rv, p) * utils.POW(sv, q) * utils.POW(tv, m)
					if p > 0 {
						dfdr[n] = float64(p) * utils.POW(rv, p-1) * utils.POW(sv, q) * utils.POW(tv, m)
					}
					if q > 0 {
						dfds[n] = float64(q) * utils.POW(rv, p) * utils.POW(sv, q-1) * utils.POW(tv, m)
					}
					if m > 0 {
						dfdt[n] = float64(m) * utils.POW(rv, p) * utils.POW(sv, q) * utils.POW(tv, m-1)
					}
				}
				fv := utils.NewVector(len(f), f)
				assert.InDeltaSlicef(t, dfdr, Dr.MulVec(fv).DataP, 1.e-9, "N = %d, r^%d s^%d t^%d", N, p, q, m)
				assert.InDeltaSlicef(t, dfds, Ds.MulVec(fv).DataP, 1.e-9, "N = %d, r^%d s^%d t^%d", N, p, q, m)
				assert.InDeltaSlicef(t, dfdt, Dt.MulVec(fv).DataP, 1.e-9, "N = %d, r^%d s^%d t^%d", N, p, q, m)
			}
		}
	}
}

func TestHexahedron(t *testing.T) {
	N := 4
	R, S, T, err := HexahedronNodes(N)
	require.NoError(t, err)
	require.Equal(t, 125, R.Len())
	assert.Equal(t, []float64{-1, -1, -1}, []float64{R.AtVec(0), S.AtVec(0), T.AtVec(0)})
	assert.Equal(t, 1., R.AtVec(N))
	assert.Equal(t, 1., S.AtVec(N*(N+1)))
	assert.Equal(t, 1., T.AtVec(124))

	V := Vandermonde3DTensor(N, R, S, T)
	Vr, Vs, Vt := GradVandermonde3DTensor(N, R, S, T)
	Dr, Ds, Dt, err := DMatrix3D(V, Vr, Vs, Vt)
	require.NoError(t, err)
	f := R.Copy().POW(3).Add(S.Copy().POW(3)).Add(T.Copy().POW(3))
	assert.InDeltaSlice(t, R.Copy().POW(2).Scale(3).DataP, Dr.MulVec(f).DataP, 1.e-10)
	assert.InDeltaSlice(t, S.Copy().POW(2).Scale(3).DataP, Ds.MulVec(f).DataP, 1.e-10)
	assert.InDeltaSlice(t, T.Copy().POW(2).Scale(3).DataP, Dt.MulVec(f).DataP, 1.e-10)

	_, _, _, err = HexahedronNodes(0)
	assert.ErrorIs(t, err, utils.ErrInvalidArgument)
}
