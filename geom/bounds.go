package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is an axis-aligned bounding box
type Bounds struct {
	Min, Max mgl64.Vec3
}

// CubeBounds returns the bounds of an unrotated cube with the given edge length
func CubeBounds(center mgl64.Vec3, size float64) Bounds {
	half := mgl64.Vec3{size / 2, size / 2, size / 2}
	return Bounds{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (bounds Bounds) Center() mgl64.Vec3 {
	return bounds.Min.Add(bounds.Max).Mul(0.5)
}

func (bounds Bounds) Size() mgl64.Vec3 {
	return bounds.Max.Sub(bounds.Min)
}

func (bounds Bounds) Contains(point mgl64.Vec3) bool {
	for axis := 0; axis < 3; axis++ {
		if point[axis] < bounds.Min[axis] || point[axis] > bounds.Max[axis] {
			return false
		}
	}
	return true
}

// IntersectRay returns the distance along ray at which it enters the bounds,
// using the slab method. A ray starting inside the bounds enters at 0. Hits
// further than maxDistance are misses.
//
// Degenerate input (NaN components) may produce a NaN distance reported as a
// hit; callers comparing distances must tolerate that.
func (bounds Bounds) IntersectRay(ray Ray, maxDistance float64) (float64, bool) {
	tMin, tMax := 0.0, maxDistance

	for axis := 0; axis < 3; axis++ {
		origin, direction := ray.Origin[axis], ray.Direction[axis]
		lo, hi := bounds.Min[axis], bounds.Max[axis]

		if direction == 0 {
			// Parallel to this slab: either always inside it, or never
			if origin < lo || origin > hi {
				return 0, false
			}
			continue
		}

		inverse := 1 / direction
		t1, t2 := (lo-origin)*inverse, (hi-origin)*inverse
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
	}

	if tMin > tMax {
		return 0, false
	}
	return tMin, true
}

func (bounds Bounds) String() string {
	return fmt.Sprintf("Bounds(%.3v, %.3v)", bounds.Min, bounds.Max)
}
