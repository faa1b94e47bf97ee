package utils

const (
	NODETOL = 1.e-12
	// COLLAPSETOL guards the denominators of the collapsed coordinate maps
	COLLAPSETOL = 1.e-10
)
