package datastructure

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Matrix is a dense row-major matrix. Traversal cost graphs over augmented
// waypoint indices are quadratic and mostly finite, so a contiguous slice
// beats a compressed sparse representation here.
type Matrix[T constraints.Integer | constraints.Float] struct {
	m, n int
	vals []T
}

func NewMatrix[T constraints.Integer | constraints.Float](m, n int, fill T) *Matrix[T] {
	vals := make([]T, m*n)
	for i := range vals {
		vals[i] = fill
	}

	return &Matrix[T]{
		m:    m,
		n:    n,
		vals: vals,
	}
}

func (mat *Matrix[T]) Set(val T, row, col int) {
	mat.vals[row*mat.n+col] = val
}

func (mat *Matrix[T]) Get(row, col int) T {
	return mat.vals[row*mat.n+col]
}

func (mat *Matrix[T]) Rows() int {
	return mat.m
}

func (mat *Matrix[T]) Cols() int {
	return mat.n
}

// Row returns a view of one matrix row. Mutations through the returned slice
// are visible in the matrix.
func (mat *Matrix[T]) Row(row int) []T {
	return mat.vals[row*mat.n : (row+1)*mat.n]
}

func (mat *Matrix[T]) String() string {
	return fmt.Sprintf("matrix %dx%d", mat.m, mat.n)
}
