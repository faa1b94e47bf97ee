package utils

import (
	"fmt"
	"math"
)

func ConstArray(N int, val float64) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = val
	}
	return
}

// IsFinite reports whether every value in A is neither NaN nor Inf
func IsFinite(A any) bool {
	switch v := A.(type) {
	case float64:
		return !math.IsNaN(v) && !math.IsInf(v, 0)
	case []float64:
		for _, f := range v {
			if !IsFinite(f) {
				return false
			}
		}
	case Matrix:
		return IsFinite(v.DataP)
	case Vector:
		return IsFinite(v.DataP)
	case []Matrix:
		for _, m := range v {
			if !IsFinite(m.DataP) {
				return false
			}
		}
	case []Vector:
		for _, u := range v {
			if !IsFinite(u.DataP) {
				return false
			}
		}
	default:
		panic(fmt.Errorf("IsFinite: unsupported type %T", A))
	}
	return true
}

// POW is x^p, by repeated squaring for |p| <= 8
func POW(x float64, p int) (y float64) {
	n := p
	if n < 0 {
		n = -n
	}
	if n > 8 {
		return math.Pow(x, float64(p))
	}
	y = 1
	for sq := x; n > 0; n >>= 1 {
		if n&1 == 1 {
			y *= sq
		}
		sq *= sq
	}
	if p < 0 {
		y = 1. / y
	}
	return
}
