package grid

import "fmt"

// outOfBounds is the panic value for grid accesses outside the buffer.
type outOfBounds struct {
	x, y          int
	width, height int
}

func (e outOfBounds) Error() string {
	return fmt.Sprintf("grid: (%d,%d) outside %dx%d buffer", e.x, e.y, e.width, e.height)
}
