package element

import (
	"fmt"
	"math"

	"github.com/notargets/nodaldg/DG1D"
	"github.com/notargets/nodaldg/DG2D"
	"github.com/notargets/nodaldg/DG3D"
	"github.com/notargets/nodaldg/utils"
)

// basis holds the per kind node generator and modal basis
type basis struct {
	minOrder    int
	np, nfp     func(N int) int
	nodes       func(N int) ([]utils.Vector, error)
	vandermonde func(N int, X []utils.Vector) utils.Matrix
	gradV       func(N int, X []utils.Vector) []utils.Matrix
}

var bases = map[CellKind]basis{
	Interval: {
		minOrder: 1,
		np:       func(N int) int { return N + 1 },
		nfp:      func(N int) int { return 1 },
		nodes: func(N int) ([]utils.Vector, error) {
			r, err := DG1D.JacobiGL(0, 0, N)
			return []utils.Vector{r}, err
		},
		vandermonde: func(N int, X []utils.Vector) utils.Matrix {
			return DG1D.Vandermonde1D(N, X[0])
		},
		gradV: func(N int, X []utils.Vector) []utils.Matrix {
			return []utils.Matrix{DG1D.GradVandermonde1D(N, X[0])}
		},
	},
	Triangle: {
		minOrder: 0,
		np:       func(N int) int { return (N + 1) * (N + 2) / 2 },
		nfp:      func(N int) int { return N + 1 },
		nodes: func(N int) ([]utils.Vector, error) {
			r, s := DG2D.XYtoRS(DG2D.Nodes2D(N))
			return []utils.Vector{r, s}, nil
		},
		vandermonde: func(N int, X []utils.Vector) utils.Matrix {
			return DG2D.Vandermonde2D(N, X[0], X[1])
		},
		gradV: func(N int, X []utils.Vector) []utils.Matrix {
			Vr, Vs := DG2D.GradVandermonde2D(N, X[0], X[1])
			return []utils.Matrix{Vr, Vs}
		},
	},
	Quadrilateral: {
		minOrder: 1,
		np:       func(N int) int { return (N + 1) * (N + 1) },
		nfp:      func(N int) int { return N + 1 },
		nodes: func(N int) ([]utils.Vector, error) {
			r, s, err := DG2D.QuadrilateralNodes(N)
			return []utils.Vector{r, s}, err
		},
		vandermonde: func(N int, X []utils.Vector) utils.Matrix {
			return DG2D.Vandermonde2DTensor(N, X[0], X[1])
		},
		gradV: func(N int, X []utils.Vector) []utils.Matrix {
			Vr, Vs := DG2D.GradVandermonde2DTensor(N, X[0], X[1])
			return []utils.Matrix{Vr, Vs}
		},
	},
	Tetrahedron: {
		minOrder: 0,
		np:       func(N int) int { return (N + 1) * (N + 2) * (N + 3) / 6 },
		nfp:      func(N int) int { return (N + 1) * (N + 2) / 2 },
		nodes: func(N int) ([]utils.Vector, error) {
			r, s, t := DG3D.XYZtoRST(DG3D.Nodes3D(N))
			return []utils.Vector{r, s, t}, nil
		},
		vandermonde: func(N int, X []utils.Vector) utils.Matrix {
			return DG3D.Vandermonde3D(N, X[0], X[1], X[2])
		},
		gradV: func(N int, X []utils.Vector) []utils.Matrix {
			Vr, Vs, Vt := DG3D.GradVandermonde3D(N, X[0], X[1], X[2])
			return []utils.Matrix{Vr, Vs, Vt}
		},
	},
	Hexahedron: {
		minOrder: 1,
		np:       func(N int) int { return (N + 1) * (N + 1) * (N + 1) },
		nfp:      func(N int) int { return (N + 1) * (N + 1) },
		nodes: func(N int) ([]utils.Vector, error) {
			r, s, t, err := DG3D.HexahedronNodes(N)
			return []utils.Vector{r, s, t}, err
		},
		vandermonde: func(N int, X []utils.Vector) utils.Matrix {
			return DG3D.Vandermonde3DTensor(N, X[0], X[1], X[2])
		},
		gradV: func(N int, X []utils.Vector) []utils.Matrix {
			Vr, Vs, Vt := DG3D.GradVandermonde3DTensor(N, X[0], X[1], X[2])
			return []utils.Matrix{Vr, Vs, Vt}
		},
	},
}

// MinOrder is the lowest polynomial order New accepts for kind
func MinOrder(kind CellKind) (N int, err error) {
	b, ok := bases[kind]
	if !ok {
		err = fmt.Errorf("%w: no reference element for cell kind %v", utils.ErrInvalidArgument, kind)
		return
	}
	N = b.minOrder
	return
}

// RefElement is the nodal reference element of one kind and order. Nodes are
// fixed at construction; V is built and checked for invertibility at
// construction while GradV and D are computed on first use. All returned
// matrices are read only and belong to this instance.
type RefElement struct {
	kind      CellKind
	order     int
	Np, Nfp   int
	NFaces    int
	x         []utils.Vector // per axis node coordinates
	nodes     utils.Matrix
	faceNodes [][]int
	b         basis
	v         utils.Memo[utils.Matrix]
	gradV, d  utils.Memo[[]utils.Matrix]
}

func NewRefLine(order int) (*RefElement, error)          { return New(Interval, order) }
func NewRefTriangle(order int) (*RefElement, error)      { return New(Triangle, order) }
func NewRefQuadrilateral(order int) (*RefElement, error) { return New(Quadrilateral, order) }
func NewRefTetrahedron(order int) (*RefElement, error)   { return New(Tetrahedron, order) }
func NewRefHexahedron(order int) (*RefElement, error)    { return New(Hexahedron, order) }

// New builds the reference element of the given kind and order. An order
// below MinOrder(kind) or an unsupported kind returns ErrInvalidArgument; a
// node set that is not unisolvent returns ErrNumerical.
func New(kind CellKind, order int) (el *RefElement, err error) {
	var (
		X []utils.Vector
	)
	minOrder, err := MinOrder(kind)
	if err != nil {
		return
	}
	if order < minOrder {
		err = fmt.Errorf("%w: %v order must be >= %d, have %d",
			utils.ErrInvalidArgument, kind, minOrder, order)
		return
	}
	b := bases[kind]
	if X, err = b.nodes(order); err != nil {
		return
	}
	if !utils.IsFinite(X) {
		err = fmt.Errorf("%w: %v order %d nodes are not finite", utils.ErrNumerical, kind, order)
		return
	}
	e := &RefElement{
		kind:   kind,
		order:  order,
		Np:     b.np(order),
		Nfp:    b.nfp(order),
		NFaces: kind.NumEntities(kind.Dim() - 1),
		x:      X,
		b:      b,
	}
	if _, err = e.v.Get(e.buildV); err != nil {
		return
	}
	e.nodes = utils.NewMatrix(e.Np, len(X))
	for d, x := range X {
		e.nodes.SetCol(d, x.DataP)
	}
	e.nodes.SetReadOnly("Nodes")
	e.faceNodes = faceNodes(kind, X)
	el = e
	return
}

func (el *RefElement) buildV() (V utils.Matrix, err error) {
	V = el.b.vandermonde(el.order, el.x)
	if err = V.CheckInvertible(); err != nil {
		err = fmt.Errorf("%v order %d Vandermonde: %w", el.kind, el.order, err)
		return
	}
	V.SetReadOnly("V")
	return
}

func (el *RefElement) buildGradV() (GV []utils.Matrix, err error) {
	GV = el.b.gradV(el.order, el.x)
	for i := range GV {
		GV[i].SetReadOnly(fmt.Sprintf("GradV[%d]", i))
	}
	return
}

func (el *RefElement) buildD() (D []utils.Matrix, err error) {
	if D, err = DG1D.DMatrices(el.V(), el.GradV()...); err != nil {
		return
	}
	for i := range D {
		D[i].SetReadOnly(fmt.Sprintf("D[%d]", i))
	}
	return
}

func (el *RefElement) Kind() CellKind { return el.kind }
func (el *RefElement) Order() int     { return el.order }
func (el *RefElement) Dim() int       { return el.kind.Dim() }

// Nodes is the Np x Dim matrix of reference coordinates
func (el *RefElement) Nodes() utils.Matrix { return el.nodes }

func (el *RefElement) R() utils.Vector { return el.axis(0) }
func (el *RefElement) S() utils.Vector { return el.axis(1) }
func (el *RefElement) T() utils.Vector { return el.axis(2) }

func (el *RefElement) axis(d int) utils.Vector {
	if d >= len(el.x) {
		panic(fmt.Errorf("%v has no coordinate %d", el.kind, d))
	}
	return el.x[d].Copy()
}

func (el *RefElement) V() utils.Matrix {
	V, err := el.v.Get(el.buildV)
	if err != nil {
		panic(err)
	}
	return V
}

// GradV returns the Vandermonde derivative matrices, one per axis
func (el *RefElement) GradV() []utils.Matrix {
	GV, err := el.gradV.Get(el.buildGradV)
	if err != nil {
		panic(err)
	}
	return append([]utils.Matrix{}, GV...)
}

// D returns the differentiation matrices, one per axis
func (el *RefElement) D() []utils.Matrix {
	D, err := el.d.Get(el.buildD)
	if err != nil {
		panic(err)
	}
	return append([]utils.Matrix{}, D...)
}

func (el *RefElement) Dr() utils.Matrix { return el.dAxis(0) }
func (el *RefElement) Ds() utils.Matrix { return el.dAxis(1) }
func (el *RefElement) Dt() utils.Matrix { return el.dAxis(2) }

func (el *RefElement) dAxis(d int) utils.Matrix {
	D := el.D()
	if d >= len(D) {
		panic(fmt.Errorf("%v has no derivative along axis %d", el.kind, d))
	}
	return D[d]
}

// FaceNodes returns, per facet, the ascending indices of the nodes on it
func (el *RefElement) FaceNodes() (F [][]int) {
	for _, f := range el.faceNodes {
		F = append(F, append([]int{}, f...))
	}
	return
}

func (el *RefElement) String() string {
	return fmt.Sprintf("%v N=%d Np=%d Nfp=%d", el.kind, el.order, el.Np, el.Nfp)
}

// faceNodes finds the nodes on the affine hull of each facet. The reference
// cells are convex so this is the facet itself.
func faceNodes(kind CellKind, X []utils.Vector) (F [][]int) {
	var (
		dim   = kind.Dim()
		verts = cells[kind].vertices
		Np    = X[0].Len()
	)
	for _, fv := range kind.EntityVertices(dim - 1) {
		origin := verts[fv[0]]
		var normal []float64
		switch dim {
		case 1:
			normal = []float64{1}
		case 2:
			e := sub(verts[fv[1]], origin)
			normal = []float64{-e[1], e[0]}
		case 3:
			e1, e2 := sub(verts[fv[1]], origin), sub(verts[fv[2]], origin)
			normal = []float64{
				e1[1]*e2[2] - e1[2]*e2[1],
				e1[2]*e2[0] - e1[0]*e2[2],
				e1[0]*e2[1] - e1[1]*e2[0],
			}
		}
		var nrm float64
		for _, c := range normal {
			nrm += c * c
		}
		nrm = math.Sqrt(nrm)
		face := []int{}
		for n := 0; n < Np; n++ {
			var dist float64
			for d := 0; d < dim; d++ {
				dist += (X[d].AtVec(n) - origin[d]) * normal[d]
			}
			if math.Abs(dist/nrm) < utils.NODETOL {
				face = append(face, n)
			}
		}
		F = append(F, face)
	}
	return
}

func sub(a, b []float64) (c []float64) {
	c = make([]float64, len(a))
	for i := range a {
		c[i] = a[i] - b[i]
	}
	return
}
