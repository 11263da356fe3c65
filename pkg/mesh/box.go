package mesh

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis-aligned bounding box in section-local space.
type Box struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// EmptyBox returns the degenerate box containing no points. Expanding
// it by a single point yields a box spanning exactly that point.
func EmptyBox() Box {
	return Box{
		Min: mgl32.Vec3{math32.Inf(1), math32.Inf(1), math32.Inf(1)},
		Max: mgl32.Vec3{math32.Inf(-1), math32.Inf(-1), math32.Inf(-1)},
	}
}

// NewBox creates a box from two corners, swapping components where the
// corners are given in the wrong order.
func NewBox(min, max mgl32.Vec3) Box {
	box := Box{Min: min, Max: max}
	for axis := 0; axis < 3; axis++ {
		if box.Min[axis] > box.Max[axis] {
			box.Min[axis], box.Max[axis] = box.Max[axis], box.Min[axis]
		}
	}
	return box
}

// BoxFromPoints returns the tight bounding box of the given points. An
// empty point sequence yields the empty box.
func BoxFromPoints(points []mgl32.Vec3) Box {
	box := EmptyBox()
	for _, p := range points {
		box.ExpandByPoint(p)
	}
	return box
}

// IsEmpty reports whether the box contains no points.
func (b Box) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// Equal reports whether two boxes span the same extents. All empty
// boxes compare equal regardless of their component values.
func (b Box) Equal(other Box) bool {
	if b.IsEmpty() && other.IsEmpty() {
		return true
	}
	return b.Min == other.Min && b.Max == other.Max
}

// ExpandByPoint grows the box to contain p.
func (b *Box) ExpandByPoint(p mgl32.Vec3) {
	for axis := 0; axis < 3; axis++ {
		b.Min[axis] = math32.Min(b.Min[axis], p[axis])
		b.Max[axis] = math32.Max(b.Max[axis], p[axis])
	}
}

// Center returns the box midpoint.
func (b Box) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extent along each axis, zero for the empty box.
func (b Box) Size() mgl32.Vec3 {
	if b.IsEmpty() {
		return mgl32.Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// String returns the box as "[min .. max]" or "[empty]".
func (b Box) String() string {
	if b.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[(%g, %g, %g) .. (%g, %g, %g)]",
		b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
}
