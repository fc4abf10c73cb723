package geom

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line in world space. Direction is always unit length.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay normalizes direction. It returns false when direction has no usable length.
func NewRay(origin, direction mgl64.Vec3) (Ray, bool) {
	length := direction.Len()
	if length == 0 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Ray{}, false
	}
	return Ray{
		Origin:    origin,
		Direction: direction.Mul(1 / length),
	}, true
}

// At returns the point at distance t along the ray
func (ray Ray) At(t float64) mgl64.Vec3 {
	return ray.Origin.Add(ray.Direction.Mul(t))
}

func (ray Ray) String() string {
	return fmt.Sprintf("Ray(%.3v -> %.3v)", ray.Origin, ray.Direction)
}
