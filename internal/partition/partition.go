// Package partition splits a parent area into equal-width columns and
// stacks the measured children left to right.
package partition

// Constraints holds the min/max bounds a child is measured against.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Normalize clamps negative bounds to zero and lowers each min to its max.
func (c Constraints) Normalize() Constraints {
	c.MinWidth = clampZero(c.MinWidth)
	c.MaxWidth = clampZero(c.MaxWidth)
	c.MinHeight = clampZero(c.MinHeight)
	c.MaxHeight = clampZero(c.MaxHeight)
	c.MinWidth = min(c.MinWidth, c.MaxWidth)
	c.MinHeight = min(c.MinHeight, c.MaxHeight)
	return c
}

// Size is the final width and height reported by a measured child.
type Size struct {
	Width  int
	Height int
}

// Measurable is anything that can size itself within a constraint.
type Measurable interface {
	Measure(c Constraints) Size
}

// MeasureFunc adapts a plain function to Measurable.
type MeasureFunc func(c Constraints) Size

// Measure calls f(c).
func (f MeasureFunc) Measure(c Constraints) Size {
	return f(c)
}

// Placement is the offset of a child relative to the parent's top-left corner.
type Placement struct {
	Child Measurable
	Size  Size
	X     int
	Y     int
}

// Placer receives placements, typically to move and resize real widgets.
type Placer interface {
	Place(child Measurable, size Size, x, y int)
}

// Result is the outcome of one layout pass.
type Result struct {
	Width      int
	Height     int
	Placements []Placement
}

// PlaceAll forwards every placement to p in input order.
func (r Result) PlaceAll(p Placer) {
	for _, pl := range r.Placements {
		p.Place(pl.Child, pl.Size, pl.X, pl.Y)
	}
}

// Cursor returns the x position just past the last placed child.
func (r Result) Cursor() int {
	if len(r.Placements) == 0 {
		return 0
	}
	last := r.Placements[len(r.Placements)-1]
	return last.X + last.Size.Width
}

// ChildConstraints derives the constraint each of n children is measured
// against. Width is split with integer division, so any remainder is left
// unassigned. For n <= 0 the normalized parent constraint is returned.
func ChildConstraints(c Constraints, n int) Constraints {
	c = c.Normalize()
	if n <= 0 {
		return c
	}
	width := c.MaxWidth / n
	return Constraints{
		MinWidth:  min(c.MinWidth, width),
		MaxWidth:  width,
		MinHeight: min(c.MinHeight, c.MaxHeight),
		MaxHeight: c.MaxHeight,
	}
}

// Partition measures every child once against an equal share of the parent
// width and places them in a single row. The reported size is always the
// parent's maximum size, even when the children do not fill it.
func Partition(children []Measurable, c Constraints) Result {
	c = c.Normalize()
	res := Result{Width: c.MaxWidth, Height: c.MaxHeight}
	if len(children) == 0 {
		return res
	}

	cc := ChildConstraints(c, len(children))
	res.Placements = make([]Placement, len(children))
	x := 0
	for i, child := range children {
		size := fit(child.Measure(cc), cc)
		res.Placements[i] = Placement{Child: child, Size: size, X: x}
		x += size.Width
	}
	return res
}

// fit keeps a misbehaving child's size inside the constraint it was given.
func fit(s Size, c Constraints) Size {
	return Size{
		Width:  max(c.MinWidth, min(s.Width, c.MaxWidth)),
		Height: max(c.MinHeight, min(s.Height, c.MaxHeight)),
	}
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
