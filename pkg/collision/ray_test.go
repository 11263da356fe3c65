package collision

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/runtimemesh/pkg/mesh"
)

const distanceEpsilon = 1e-4

func TestIntersectBox(t *testing.T) {
	unit := mesh.NewBox(mgl32.Vec3{-1, -1, -1}, mgl32.Vec3{1, 1, 1})

	tests := []struct {
		name    string
		ray     Ray
		box     mesh.Box
		want    float32
		wantHit bool
	}{
		{
			name:    "straight on",
			ray:     Ray{Origin: mgl32.Vec3{0, 0, -5}, Direction: mgl32.Vec3{0, 0, 1}},
			box:     unit,
			want:    4,
			wantHit: true,
		},
		{
			name: "parallel miss",
			ray:  Ray{Origin: mgl32.Vec3{0, 0, -5}, Direction: mgl32.Vec3{0, 1, 0}},
			box:  unit,
		},
		{
			name:    "origin inside returns exit",
			ray:     Ray{Origin: mgl32.Vec3{0, 0, 0}, Direction: mgl32.Vec3{0, 0, 1}},
			box:     unit,
			want:    1,
			wantHit: true,
		},
		{
			name: "box behind origin",
			ray:  Ray{Origin: mgl32.Vec3{0, 0, 5}, Direction: mgl32.Vec3{0, 0, 1}},
			box:  unit,
		},
		{
			name:    "diagonal through corner",
			ray:     Ray{Origin: mgl32.Vec3{-2, -2, -2}, Direction: mgl32.Vec3{1, 1, 1}.Normalize()},
			box:     unit,
			want:    math32.Sqrt(3),
			wantHit: true,
		},
		{
			name: "empty box never hit",
			ray:  Ray{Origin: mgl32.Vec3{0, 0, -5}, Direction: mgl32.Vec3{0, 0, 1}},
			box:  mesh.EmptyBox(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectBox(tt.box)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && math32.Abs(got-tt.want) > distanceEpsilon {
				t.Errorf("distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectTriangle(t *testing.T) {
	p0 := mgl32.Vec3{0, 0, 0}
	p1 := mgl32.Vec3{1, 0, 0}
	p2 := mgl32.Vec3{0, 1, 0}

	tests := []struct {
		name    string
		ray     Ray
		want    float32
		wantHit bool
	}{
		{
			name:    "front hit",
			ray:     Ray{Origin: mgl32.Vec3{0.25, 0.25, -1}, Direction: mgl32.Vec3{0, 0, 1}},
			want:    1,
			wantHit: true,
		},
		{
			name:    "back side also hit",
			ray:     Ray{Origin: mgl32.Vec3{0.25, 0.25, 1}, Direction: mgl32.Vec3{0, 0, -1}},
			want:    1,
			wantHit: true,
		},
		{
			name: "outside the triangle",
			ray:  Ray{Origin: mgl32.Vec3{0.9, 0.9, -1}, Direction: mgl32.Vec3{0, 0, 1}},
		},
		{
			name: "parallel to the plane",
			ray:  Ray{Origin: mgl32.Vec3{0, 0, -1}, Direction: mgl32.Vec3{1, 0, 0}},
		},
		{
			name: "triangle behind origin",
			ray:  Ray{Origin: mgl32.Vec3{0.25, 0.25, 1}, Direction: mgl32.Vec3{0, 0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, hit := tt.ray.IntersectTriangle(p0, p1, p2)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && math32.Abs(got-tt.want) > distanceEpsilon {
				t.Errorf("distance = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRayAt(t *testing.T) {
	r := Ray{Origin: mgl32.Vec3{1, 0, 0}, Direction: mgl32.Vec3{0, 1, 0}}
	if got := r.At(3); got != (mgl32.Vec3{1, 3, 0}) {
		t.Errorf("At(3) = %v, want (1, 3, 0)", got)
	}
}
