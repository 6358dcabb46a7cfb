// Package matrix - flat row-major float32 grids used for mask synthesis.
package matrix

import "fmt"

// DenseMatrix is a fixed-size 2D grid of float32 values backed by a single
// flat row-major buffer. The buffer length is always width*height and never
// changes after construction, which keeps per-detection scratch allocations
// down to one contiguous block.
type DenseMatrix struct {
	width  int
	height int
	data   []float32
}

// New creates a zero-filled DenseMatrix of the given dimensions.
//
// Arguments:
//   - width: Number of columns, must be >= 0.
//   - height: Number of rows, must be >= 0.
//
// Returns:
//   - A zero-filled DenseMatrix.
func New(width, height int) *DenseMatrix {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("matrix: invalid dimensions %dx%d", width, height))
	}
	return &DenseMatrix{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// Width returns the number of columns.
func (m *DenseMatrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *DenseMatrix) Height() int { return m.height }

// index converts (x, y) to a flat buffer offset, panicking on out-of-range
// coordinates. Single-cell access is a programmer error when out of bounds,
// unlike the region operations which clip.
func (m *DenseMatrix) index(x, y int) int {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		panic(fmt.Sprintf("matrix: cell (%d,%d) out of bounds for %dx%d matrix",
			x, y, m.width, m.height))
	}
	return y*m.width + x
}

// At returns the value at (x, y). Panics if the cell is out of bounds.
func (m *DenseMatrix) At(x, y int) float32 {
	return m.data[m.index(x, y)]
}

// Set stores v at (x, y). Panics if the cell is out of bounds.
func (m *DenseMatrix) Set(x, y int, v float32) {
	m.data[m.index(x, y)] = v
}

// clip intersects the half-open region [x0,x1)x[y0,y1) with the matrix
// bounds. Inverted or fully-outside regions collapse to an empty range.
func (m *DenseMatrix) clip(x0, y0, x1, y1 int) (int, int, int, int) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > m.width {
		x1 = m.width
	}
	if y1 > m.height {
		y1 = m.height
	}
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

// FillRegion sets every cell with x0<=x<x1 and y0<=y<y1 to v. Cells outside
// the matrix bounds are silently clipped, never an error.
//
// Arguments:
//   - x0, y0: Inclusive lower corner of the region.
//   - x1, y1: Exclusive upper corner of the region.
//   - v: The value to store.
func (m *DenseMatrix) FillRegion(x0, y0, x1, y1 int, v float32) {
	x0, y0, x1, y1 = m.clip(x0, y0, x1, y1)
	for y := y0; y < y1; y++ {
		row := m.data[y*m.width : y*m.width+m.width]
		for x := x0; x < x1; x++ {
			row[x] = v
		}
	}
}

// ApplyRegion replaces every cell with x0<=x<x1 and y0<=y<y1 by fn(value).
// Clipping behaves exactly like FillRegion.
func (m *DenseMatrix) ApplyRegion(x0, y0, x1, y1 int, fn func(float32) float32) {
	x0, y0, x1, y1 = m.clip(x0, y0, x1, y1)
	for y := y0; y < y1; y++ {
		row := m.data[y*m.width : y*m.width+m.width]
		for x := x0; x < x1; x++ {
			row[x] = fn(row[x])
		}
	}
}

// Clone returns an independent deep copy. Mutating the clone never affects
// the source and vice versa.
func (m *DenseMatrix) Clone() *DenseMatrix {
	out := &DenseMatrix{
		width:  m.width,
		height: m.height,
		data:   make([]float32, len(m.data)),
	}
	copy(out.data, m.data)
	return out
}
