package utils

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"
)

// DOK is a writable sparse matrix used to assemble a CSR
type DOK struct {
	M *sparse.DOK
}

func NewDOK(nr, nc int) (R DOK) {
	R = DOK{sparse.NewDOK(nr, nc)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m DOK) Dims() (r, c int)    { return m.M.Dims() }
func (m DOK) At(i, j int) float64 { return m.M.At(i, j) }
func (m DOK) T() mat.Matrix       { return m.M.T() }

func (m DOK) Set(i, j int, val float64) DOK { // Changes receiver
	m.M.Set(i, j, val)
	return m
}

func (m DOK) ToCSR() CSR {
	return CSR{
		M:    m.M.ToCSR(),
		name: "unnamed - hint: pass a variable name to SetReadOnly()",
	}
}

// CSR is a compressed row matrix. It has no setters; it is built from a DOK.
type CSR struct {
	M        *sparse.CSR
	readOnly bool
	name     string
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m CSR) Dims() (r, c int)    { return m.M.Dims() }
func (m CSR) At(i, j int) float64 { return m.M.At(i, j) }
func (m CSR) T() mat.Matrix       { return m.M.T() }
func (m CSR) NNZ() int            { return m.M.NNZ() }

func (m *CSR) SetReadOnly(name ...string) CSR {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m CSR) IsReadOnly() bool { return m.readOnly }

// RowIndices returns the ascending column indices of the non zeros in row i
func (m CSR) RowIndices(i int) (J []int) {
	nr, _ := m.Dims()
	if i < 0 || i >= nr {
		panic(fmt.Errorf("row %d out of range for CSR named \"%v\" with %d rows", i, m.name, nr))
	}
	m.M.DoNonZero(func(ii, j int, v float64) {
		if ii == i {
			J = append(J, j)
		}
	})
	sort.Ints(J)
	return
}

// Dense copies the matrix to a Matrix
func (m CSR) Dense() (R Matrix) {
	nr, nc := m.Dims()
	R = NewMatrix(nr, nc)
	m.M.DoNonZero(func(i, j int, v float64) {
		R.M.Set(i, j, v)
	})
	return
}
