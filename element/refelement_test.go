package element

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/notargets/nodaldg/DG2D"
	"github.com/notargets/nodaldg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []CellKind{Interval, Triangle, Quadrilateral, Tetrahedron, Hexahedron}

func TestNewErrors(t *testing.T) {
	for _, tc := range []struct {
		kind  CellKind
		order int
	}{
		{Interval, 0}, {Quadrilateral, 0}, {Hexahedron, 0},
		{Triangle, -1}, {Tetrahedron, -1}, {Point, 1}, {Undefined, 1}, {CellKind(99), 1},
	} {
		el, err := New(tc.kind, tc.order)
		assert.ErrorIs(t, err, utils.ErrInvalidArgument, "%v %d", tc.kind, tc.order)
		assert.Nil(t, el)
	}
	_, err := NewRefLine(0)
	assert.ErrorIs(t, err, utils.ErrInvalidArgument)
	for _, kind := range []CellKind{Triangle, Tetrahedron} {
		el, err := New(kind, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, el.Np)
		assert.Equal(t, []float64{0}, el.Dr().DataP)
	}
}

func TestRefElementSizes(t *testing.T) {
	for _, kind := range allKinds {
		minOrder, err := MinOrder(kind)
		require.NoError(t, err)
		for N := max(minOrder, 1); N < 6; N++ {
			el, err := New(kind, N)
			require.NoError(t, err)
			var Np, Nfp int
			switch kind {
			case Interval:
				Np, Nfp = N+1, 1
			case Triangle:
				Np, Nfp = (N+1)*(N+2)/2, N+1
			case Quadrilateral:
				Np, Nfp = (N+1)*(N+1), N+1
			case Tetrahedron:
				Np, Nfp = (N+1)*(N+2)*(N+3)/6, (N+1)*(N+2)/2
			case Hexahedron:
				Np, Nfp = (N+1)*(N+1)*(N+1), (N+1)*(N+1)
			}
			assert.Equal(t, Np, el.Np)
			assert.Equal(t, Nfp, el.Nfp)
			assert.Equal(t, kind.NumEntities(kind.Dim()-1), el.NFaces)
			nr, nc := el.Nodes().Dims()
			assert.Equal(t, []int{Np, kind.Dim()}, []int{nr, nc})
			nr, nc = el.V().Dims()
			assert.Equal(t, []int{Np, Np}, []int{nr, nc})
			assert.Len(t, el.GradV(), kind.Dim())
			assert.Len(t, el.D(), kind.Dim())
			F := el.FaceNodes()
			require.Len(t, F, el.NFaces)
			for _, f := range F {
				assert.Len(t, f, Nfp, "%v", el)
			}
		}
	}
}

func TestRefElementDerivatives(t *testing.T) {
	for _, kind := range allKinds {
		el, err := New(kind, 4)
		require.NoError(t, err)
		// D applied to a coordinate is the unit vector along that axis
		for d, D := range el.D() {
			for a := 0; a < kind.Dim(); a++ {
				x := el.Nodes().Col(a)
				want := utils.NewVector(el.Np).Set(0)
				if a == d {
					want.Set(1)
				}
				assert.InDeltaSlice(t, want.DataP, D.MulVec(x).DataP, 1.e-10, "%v D[%d] x[%d]", kind, d, a)
			}
		}
	}
	// The facade matches the triangle routines it is built on
	el, err := NewRefTriangle(5)
	require.NoError(t, err)
	R, S := DG2D.XYtoRS(DG2D.Nodes2D(5))
	Vr, Vs := DG2D.GradVandermonde2D(5, R, S)
	Dr, Ds, err := DG2D.DMatrix2D(DG2D.Vandermonde2D(5, R, S), Vr, Vs)
	require.NoError(t, err)
	approx := cmpopts.EquateApprox(0, 1.e-12)
	assert.Empty(t, cmp.Diff(Dr.DataP, el.Dr().DataP, approx))
	assert.Empty(t, cmp.Diff(Ds.DataP, el.Ds().DataP, approx))
	assert.Empty(t, cmp.Diff(R.DataP, el.R().DataP, approx))
	assert.Panics(t, func() { el.Dt() })
	assert.Panics(t, func() { el.T() })
}

func TestRefElementInstances(t *testing.T) {
	for _, kind := range allKinds {
		a, err := New(kind, 3)
		require.NoError(t, err)
		b, err := New(kind, 3)
		require.NoError(t, err)
		// Derived matrices are computed lazily and owned by the instance
		assert.True(t, a.v.Ready())
		assert.False(t, a.gradV.Ready())
		assert.False(t, a.d.Ready())
		Da := a.D()
		assert.True(t, a.gradV.Ready())
		assert.False(t, b.d.Ready())
		Db := b.D()
		for d := range Da {
			assert.NotSame(t, &Da[d].DataP[0], &Db[d].DataP[0])
			assert.Equal(t, Da[d].DataP, Db[d].DataP)
			assert.Equal(t, a.GradV()[d].DataP, b.GradV()[d].DataP)
		}
		assert.Equal(t, a.V().DataP, b.V().DataP)

		// A different order gives a different element, in either build order
		c, err := New(kind, 2)
		require.NoError(t, err)
		nc, _ := c.V().Dims()
		na, _ := a.V().Dims()
		assert.Less(t, nc, na)
		assert.NotEqual(t, a.Dr().DataP[:4], c.Dr().DataP[:4])
	}
}

func TestRefElementReadOnly(t *testing.T) {
	el, err := NewRefTetrahedron(2)
	require.NoError(t, err)
	assert.Panics(t, func() { el.V().Set(0, 0, 1) })
	assert.Panics(t, func() { el.Dr().Scale(2) })
	assert.Panics(t, func() { el.GradV()[1].Set(0, 0, 1) })
	assert.Panics(t, func() { el.Nodes().Set(0, 0, 1) })
	// Coordinate vectors and face lists are copies
	el.R().Set(7)
	assert.InDelta(t, -1., el.R().AtVec(0), 1.e-12)
	el.FaceNodes()[0][0] = 99
	assert.Equal(t, 0, el.FaceNodes()[0][0])
	GV := el.GradV()
	GV[0] = utils.NewMatrix(1, 1)
	nr, _ := el.GradV()[0].Dims()
	assert.Equal(t, el.Np, nr)
}

func TestFaceNodes(t *testing.T) {
	el, err := NewRefTriangle(3)
	require.NoError(t, err)
	F := el.FaceNodes()
	assert.Equal(t, []int{0, 1, 2, 3}, F[0])
	assert.Equal(t, []int{3, 6, 8, 9}, F[1])
	assert.Equal(t, []int{0, 4, 7, 9}, F[2])

	el, err = NewRefTetrahedron(3)
	require.NoError(t, err)
	R, S, T := el.R(), el.S(), el.T()
	for f, face := range el.FaceNodes() {
		for _, n := range face {
			var dist float64
			switch f {
			case 0:
				dist = T.AtVec(n) + 1
			case 1:
				dist = S.AtVec(n) + 1
			case 2:
				dist = R.AtVec(n) + S.AtVec(n) + T.AtVec(n) + 1
			case 3:
				dist = R.AtVec(n) + 1
			}
			assert.Less(t, math.Abs(dist), 1.e-10)
		}
	}

	el, err = NewRefLine(4)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}, {4}}, el.FaceNodes())
}
