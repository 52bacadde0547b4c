package domain

import "fmt"

// Matrix is a dense square matrix of point-to-point weights stored row-major
// in a flat slice.
type Matrix struct {
	n    int
	data []float64
}

// Allocate an n×n zero matrix.
func NewMatrix(n int) *Matrix {
	if n < 0 {
		n = 0
	}
	return &Matrix{n: n, data: make([]float64, n*n)}
}

func (m *Matrix) Size() int { return m.n }

// At returns the weight from point i to point j. It panics on an index out
// of range, like a slice access.
func (m *Matrix) At(i, j int) float64 {
	return m.data[m.index(i, j)]
}

// Set stores the weight from point i to point j.
func (m *Matrix) Set(i, j int, v float64) {
	m.data[m.index(i, j)] = v
}

// Rows copies the matrix into a slice of rows.
func (m *Matrix) Rows() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = append([]float64(nil), m.data[i*m.n:(i+1)*m.n]...)
	}
	return out
}

func (m *Matrix) index(i, j int) int {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(fmt.Sprintf("matrix: index (%d,%d) out of range for size %d", i, j, m.n))
	}
	return i*m.n + j
}
