// Package grid provides a dense two-dimensional buffer addressed by (x, y).
package grid

// Buffer is a width*height grid of T stored row-major.
// Bounds are the caller's responsibility: an out-of-range access panics.
type Buffer[T any] struct {
	Width  int
	Height int
	Data   []T
}

// New allocates a buffer with every cell set to fill.
func New[T any](width, height int, fill T) *Buffer[T] {
	data := make([]T, width*height)
	for i := range data {
		data[i] = fill
	}
	return &Buffer[T]{
		Width:  width,
		Height: height,
		Data:   data,
	}
}

// Index returns the linear index of (x, y).
func (b *Buffer[T]) Index(x, y int) int {
	return y*b.Width + x
}

// XY returns the coordinates of a linear index.
func (b *Buffer[T]) XY(idx int) (int, int) {
	return idx % b.Width, idx / b.Width
}

// InBounds reports whether (x, y) addresses a cell of the buffer.
func (b *Buffer[T]) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Get returns the value at (x, y).
func (b *Buffer[T]) Get(x, y int) T {
	return b.Data[b.checked(x, y)]
}

// Set stores v at (x, y).
func (b *Buffer[T]) Set(x, y int, v T) {
	b.Data[b.checked(x, y)] = v
}

// Mutate applies f to the cell at (x, y) in place.
// Used for cells that accumulate values, like occupancy lists.
func (b *Buffer[T]) Mutate(x, y int, f func(*T)) {
	f(&b.Data[b.checked(x, y)])
}

// Fill resets every cell to v.
func (b *Buffer[T]) Fill(v T) {
	for i := range b.Data {
		b.Data[i] = v
	}
}

// checked converts (x, y) to an index, panicking when the point lies outside
// the buffer. A column overflow would otherwise silently alias the next row.
func (b *Buffer[T]) checked(x, y int) int {
	if !b.InBounds(x, y) {
		panic(outOfBounds{x: x, y: y, width: b.Width, height: b.Height})
	}
	return b.Index(x, y)
}
