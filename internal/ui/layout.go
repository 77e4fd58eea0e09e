package ui

// Rect is a rectangular region of character cells
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Empty reports whether the region has no cells
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Direction is the axis a region is split along
type Direction int

const (
	// Horizontal places segments left to right
	Horizontal Direction = iota
	// Vertical places segments top to bottom
	Vertical
)

// Split tiles area along dir into one segment per percentage weight, in order.
//
// Segment boundaries sit at the rounded cumulative percentage of the region and
// the last segment runs to the end of the region, so the segments always cover
// it exactly. Weights past 100% produce empty trailing segments.
func Split(area Rect, dir Direction, weights []int) []Rect {
	if len(weights) == 0 {
		return nil
	}

	total := area.Width
	if dir == Vertical {
		total = area.Height
	}
	if total < 0 {
		total = 0
	}

	rects := make([]Rect, len(weights))
	offset, cumulative := 0, 0

	for i, w := range weights {
		if w > 0 {
			cumulative += w
		}

		end := (total*cumulative + 50) / 100
		if end > total || i == len(weights)-1 {
			end = total
		}
		if end < offset {
			end = offset
		}

		if dir == Horizontal {
			rects[i] = Rect{X: area.X + offset, Y: area.Y, Width: end - offset, Height: area.Height}
		} else {
			rects[i] = Rect{X: area.X, Y: area.Y + offset, Width: area.Width, Height: end - offset}
		}
		offset = end
	}

	return rects
}

// Centered returns the middle cell of a grid built from weights on both axes
func Centered(area Rect, weights []int) Rect {
	if len(weights) == 0 {
		return area
	}
	middle := len(weights) / 2
	column := Split(area, Horizontal, weights)[middle]
	return Split(column, Vertical, weights)[middle]
}
