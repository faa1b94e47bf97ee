package element

import (
	"fmt"
	"slices"
	"strings"

	"github.com/notargets/nodaldg/utils"
)

// CellKind names the reference cell shapes. It is a closed set; every kind
// has one entry in the cell table.
type CellKind uint8

const (
	Undefined CellKind = iota
	Point
	Interval
	Triangle
	Quadrilateral
	Tetrahedron
	Hexahedron
)

type cell struct {
	name        string
	dim         int
	facet, edge CellKind
	vertices    [][]float64
	// topology[d] lists the vertices of every entity of dimension d
	topology [][][]int
}

var cells = [...]cell{
	Undefined: {name: "undefined", dim: -1},
	Point: {
		name:     "point",
		dim:      0,
		vertices: [][]float64{{}},
		topology: [][][]int{{{0}}},
	},
	Interval: {
		name:     "interval",
		dim:      1,
		facet:    Point,
		vertices: [][]float64{{-1}, {1}},
		topology: [][][]int{
			{{0}, {1}},
			{{0, 1}},
		},
	},
	Triangle: {
		name:     "triangle",
		dim:      2,
		facet:    Interval,
		edge:     Point,
		vertices: [][]float64{{-1, -1}, {1, -1}, {-1, 1}},
		topology: [][][]int{
			{{0}, {1}, {2}},
			{{0, 1}, {1, 2}, {2, 0}},
			{{0, 1, 2}},
		},
	},
	Quadrilateral: {
		name:     "quadrilateral",
		dim:      2,
		facet:    Interval,
		edge:     Point,
		vertices: [][]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}},
		topology: [][][]int{
			{{0}, {1}, {2}, {3}},
			{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
			{{0, 1, 2, 3}},
		},
	},
	Tetrahedron: {
		name:     "tetrahedron",
		dim:      3,
		facet:    Triangle,
		edge:     Interval,
		vertices: [][]float64{{-1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1}},
		topology: [][][]int{
			{{0}, {1}, {2}, {3}},
			{{0, 1}, {1, 2}, {2, 0}, {0, 3}, {1, 3}, {2, 3}},
			// faces t=-1, s=-1, r+s+t=-1, r=-1
			{{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {0, 2, 3}},
			{{0, 1, 2, 3}},
		},
	},
	Hexahedron: {
		name:  "hexahedron",
		dim:   3,
		facet: Quadrilateral,
		edge:  Interval,
		vertices: [][]float64{
			{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
			{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
		},
		topology: [][][]int{
			{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}},
			{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 4}, {1, 5}, {2, 6}, {3, 7}, {4, 5}, {5, 6}, {6, 7}, {7, 4}},
			{{0, 1, 2, 3}, {0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7}, {4, 5, 6, 7}},
			{{0, 1, 2, 3, 4, 5, 6, 7}},
		},
	},
}

// ParseCellKind accepts a kind name, case insensitive. "line" and "tet", "quad",
// "hex", "tri" are accepted as short names.
func ParseCellKind(name string) (CellKind, error) {
	switch n := strings.ToLower(strings.TrimSpace(name)); n {
	case "line":
		return Interval, nil
	case "tri":
		return Triangle, nil
	case "quad":
		return Quadrilateral, nil
	case "tet":
		return Tetrahedron, nil
	case "hex":
		return Hexahedron, nil
	default:
		for k := Point; k <= Hexahedron; k++ {
			if cells[k].name == n {
				return k, nil
			}
		}
	}
	return Undefined, fmt.Errorf("%w: unknown cell kind %q", utils.ErrInvalidArgument, name)
}

func (k CellKind) valid() bool { return k > Undefined && k <= Hexahedron }

func (k CellKind) String() string {
	if int(k) >= len(cells) {
		return fmt.Sprintf("CellKind(%d)", k)
	}
	return cells[k].name
}

// Dim is the topological dimension, -1 for Undefined
func (k CellKind) Dim() int {
	if !k.valid() {
		return -1
	}
	return cells[k].dim
}

// Facet is the kind of the codimension 1 entities, Undefined for a point
func (k CellKind) Facet() CellKind {
	if !k.valid() {
		return Undefined
	}
	return cells[k].facet
}

// Edge is the kind of the codimension 2 entities
func (k CellKind) Edge() CellKind {
	if !k.valid() {
		return Undefined
	}
	return cells[k].edge
}

// Vertices returns a copy of the reference vertex coordinates
func (k CellKind) Vertices() (V [][]float64) {
	if !k.valid() {
		return
	}
	for _, v := range cells[k].vertices {
		V = append(V, append([]float64{}, v...))
	}
	return
}

// NumEntities counts the entities of dimension dim, 0 when dim is out of range
func (k CellKind) NumEntities(dim int) int {
	if !k.valid() || dim < 0 || dim > cells[k].dim {
		return 0
	}
	return len(cells[k].topology[dim])
}

// EntityVertices returns a copy of the vertex list of every entity of dimension dim
func (k CellKind) EntityVertices(dim int) (EV [][]int) {
	if k.NumEntities(dim) == 0 {
		return
	}
	for _, ev := range cells[k].topology[dim] {
		EV = append(EV, append([]int{}, ev...))
	}
	return
}

// SubEntities lists, for every entity of dimension d0, the entities of
// dimension d1 it is incident to. For d1 <= d0 these are the entities
// contained in it; for d1 > d0 the entities containing it.
func (k CellKind) SubEntities(d0, d1 int) (SE [][]int) {
	var (
		n0, n1 = k.NumEntities(d0), k.NumEntities(d1)
	)
	if n0 == 0 || n1 == 0 {
		return
	}
	top := cells[k].topology
	SE = make([][]int, n0)
	for i, e0 := range top[d0] {
		SE[i] = []int{}
		for j, e1 := range top[d1] {
			if (d1 <= d0 && containsAll(e0, e1)) || (d1 > d0 && containsAll(e1, e0)) {
				SE[i] = append(SE[i], j)
			}
		}
	}
	return
}

// Incidence is SubEntities as an n(d0) x n(d1) sparse 0/1 matrix
func (k CellKind) Incidence(d0, d1 int) (I utils.CSR, err error) {
	var (
		n0, n1 = k.NumEntities(d0), k.NumEntities(d1)
	)
	if n0 == 0 || n1 == 0 {
		err = fmt.Errorf("%w: %v has no entities of dimension %d or %d",
			utils.ErrInvalidArgument, k, d0, d1)
		return
	}
	dok := utils.NewDOK(n0, n1)
	for i, row := range k.SubEntities(d0, d1) {
		for _, j := range row {
			dok.Set(i, j, 1)
		}
	}
	I = dok.ToCSR()
	I.SetReadOnly(fmt.Sprintf("%v incidence %d-%d", k, d0, d1))
	return
}

func containsAll(set, sub []int) bool {
	for _, v := range sub {
		if !slices.Contains(set, v) {
			return false
		}
	}
	return true
}
