package utils

import (
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum VecDense, used for 1D coordinate arrays
type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (v Vector) {
	if len(dataO) != 0 {
		v = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		v = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

func (v Vector) Len() int             { return v.V.Len() }
func (v Vector) AtVec(i int) float64  { return v.V.AtVec(i) }
func (v Vector) RawVector() []float64 { return v.V.RawVector().Data }

// Linspace fills the vector with evenly spaced values over [min, max],
// endpoints inclusive
func (v Vector) Linspace(min, max float64) Vector {
	var (
		data = v.V.RawVector().Data
		N    = v.Len()
	)
	h := (max - min) / float64(N-1)
	for i := range data {
		data[i] = min + h*float64(i)
	}
	data[N-1] = max
	return v
}
