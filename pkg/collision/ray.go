// Package collision provides ray casting against mesh sections and
// extraction of their collision geometry.
package collision

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/runtimemesh/pkg/mesh"
)

// Rays closer to parallel than this miss the triangle plane.
const triangleEpsilon = 1e-7

// Ray is a ray in 3D space. Direction is expected normalized; reported
// distances are in units of its length.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectBox tests the ray against an axis-aligned box using the
// slab method. It returns the entry distance, or the exit distance
// when the origin lies inside the box. Empty boxes are never hit.
func (r Ray) IntersectBox(box mesh.Box) (float32, bool) {
	if box.IsEmpty() {
		return 0, false
	}

	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		if r.Direction[axis] != 0 {
			t1 := (box.Min[axis] - r.Origin[axis]) / r.Direction[axis]
			t2 := (box.Max[axis] - r.Origin[axis]) / r.Direction[axis]
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			if t1 > tmin {
				tmin = t1
			}
			if t2 < tmax {
				tmax = t2
			}
		} else if r.Origin[axis] < box.Min[axis] || r.Origin[axis] > box.Max[axis] {
			return 0, false
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// IntersectTriangle tests the ray against a triangle with the
// Moller-Trumbore algorithm. Both triangle sides are hit; hits behind
// the origin are rejected.
func (r Ray) IntersectTriangle(p0, p1, p2 mgl32.Vec3) (float32, bool) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)

	h := r.Direction.Cross(e2)
	det := e1.Dot(h)
	if math32.Abs(det) < triangleEpsilon {
		return 0, false
	}
	inv := 1 / det

	s := r.Origin.Sub(p0)
	u := s.Dot(h) * inv
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(e1)
	v := r.Direction.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := e2.Dot(q) * inv
	if t < triangleEpsilon {
		return 0, false
	}
	return t, true
}
