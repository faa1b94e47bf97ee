package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDOKtoCSR(t *testing.T) {
	dok := NewDOK(3, 4)
	dok.Set(0, 3, 1).Set(0, 1, 2).Set(2, 0, 5)
	csr := dok.ToCSR()
	nr, nc := csr.Dims()
	assert.Equal(t, []int{3, 4}, []int{nr, nc})
	assert.Equal(t, 3, csr.NNZ())
	assert.Equal(t, []int{1, 3}, csr.RowIndices(0))
	assert.Nil(t, csr.RowIndices(1))
	assert.Equal(t, []int{0}, csr.RowIndices(2))
	assert.Equal(t, 2., csr.At(0, 1))
	assert.Equal(t, []float64{0, 2, 0, 1, 0, 0, 0, 0, 5, 0, 0, 0}, csr.Dense().DataP)
	assert.Panics(t, func() { csr.RowIndices(3) })
	assert.False(t, csr.IsReadOnly())
	csr.SetReadOnly("incidence")
	assert.True(t, csr.IsReadOnly())
}
