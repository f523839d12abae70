// Package kernel defines the integer convolution kernel shared by the
// convolution and gradient engines.
package kernel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrEmpty is returned for a kernel without rows or columns.
	ErrEmpty = errors.New("kernel: empty kernel")
	// ErrRagged is returned when rows have different lengths.
	ErrRagged = errors.New("kernel: rows have different lengths")
	// ErrEvenSize is returned when a dimension is even, which leaves the
	// kernel without a center cell.
	ErrEvenSize = errors.New("kernel: dimensions must be odd")
)

// Kernel is an immutable Rows×Cols matrix of signed integer weights.
// The zero value is not usable; build kernels with New or Parse.
type Kernel struct {
	rows    int
	cols    int
	weights []int // row-major
}

// New builds a kernel from rows of weights. The input is copied.
func New(rows [][]int) (Kernel, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Kernel{}, ErrEmpty
	}

	cols := len(rows[0])
	weights := make([]int, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return Kernel{}, fmt.Errorf("%w: row %d has %d values, want %d", ErrRagged, i, len(row), cols)
		}
		weights = append(weights, row...)
	}

	if len(rows)%2 == 0 || cols%2 == 0 {
		return Kernel{}, fmt.Errorf("%w: got %dx%d", ErrEvenSize, len(rows), cols)
	}

	return Kernel{rows: len(rows), cols: cols, weights: weights}, nil
}

// MustNew is like New but panics on error. Intended for package-level presets.
func MustNew(rows [][]int) Kernel {
	k, err := New(rows)
	if err != nil {
		panic(err)
	}
	return k
}

// Parse reads a kernel from text. Rows are separated by ';', values within a
// row by ',' or whitespace, e.g. "-1,0,1; -2,0,2; -1,0,1" or "-1;0;1".
func Parse(s string) (Kernel, error) {
	var rows [][]int
	for i, line := range strings.Split(s, ";") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		if len(fields) == 0 {
			return Kernel{}, fmt.Errorf("%w: row %d is blank", ErrEmpty, i)
		}
		row := make([]int, len(fields))
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return Kernel{}, fmt.Errorf("kernel: row %d value %q: %w", i, f, err)
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	return New(rows)
}

// Rows returns the number of kernel rows (the vertical extent).
func (k Kernel) Rows() int { return k.rows }

// Cols returns the number of kernel columns (the horizontal extent).
func (k Kernel) Cols() int { return k.cols }

// At returns the weight at row ky, column kx.
func (k Kernel) At(ky, kx int) int {
	return k.weights[ky*k.cols+kx]
}

// MarginX is the number of border columns on each side where the kernel has
// no full neighborhood.
func (k Kernel) MarginX() int { return k.cols / 2 }

// MarginY is the vertical counterpart of MarginX.
func (k Kernel) MarginY() int { return k.rows / 2 }

// Sum returns the sum of all weights.
func (k Kernel) Sum() int {
	sum := 0
	for _, w := range k.weights {
		sum += w
	}
	return sum
}

// Equal reports whether two kernels have the same shape and weights.
func (k Kernel) Equal(o Kernel) bool {
	if k.rows != o.rows || k.cols != o.cols {
		return false
	}
	for i := range k.weights {
		if k.weights[i] != o.weights[i] {
			return false
		}
	}
	return true
}

// String formats the kernel in the form accepted by Parse.
func (k Kernel) String() string {
	var sb strings.Builder
	for y := 0; y < k.rows; y++ {
		if y > 0 {
			sb.WriteByte(';')
		}
		for x := 0; x < k.cols; x++ {
			if x > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(k.At(y, x)))
		}
	}
	return sb.String()
}
