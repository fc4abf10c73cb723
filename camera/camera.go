package camera

import (
	"math"

	"github.com/faiface/pixel"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/they4kman/cubesweep/game"
	"github.com/they4kman/cubesweep/geom"
)

const (
	near = 0.1
	far  = 1000.0

	maxPitch = 89.0
)

// Camera orbits the origin, looking at it from Distance away
type Camera struct {
	// Degrees
	Yaw, Pitch  float64
	Distance    float64
	FieldOfView float64

	viewport pixel.Rect
}

// New creates a camera from config. A zero distance is derived from the grid
// size so every cell is in view.
func New(config game.CameraConfig, dim game.Dimensions, viewport pixel.Rect) *Camera {
	distance := config.Distance
	if distance <= 0 {
		size := math.Max(float64(dim.X), math.Max(float64(dim.Y), float64(dim.Z)))
		distance = 2.5*size + 2
	}
	fov := config.FieldOfView
	if fov <= 0 || fov >= 180 {
		fov = 45
	}

	camera := &Camera{
		Yaw:         config.Yaw,
		Distance:    distance,
		FieldOfView: fov,
		viewport:    viewport,
	}
	camera.Orbit(0, config.Pitch)
	return camera
}

func (camera *Camera) SetViewport(viewport pixel.Rect) {
	camera.viewport = viewport
}

func (camera *Camera) Viewport() pixel.Rect {
	return camera.viewport
}

// Orbit rotates the camera around the origin. Pitch stops short of the poles.
func (camera *Camera) Orbit(yaw, pitch float64) {
	camera.Yaw = math.Mod(camera.Yaw+yaw, 360)
	camera.Pitch = mgl64.Clamp(camera.Pitch+pitch, -maxPitch, maxPitch)
}

func (camera *Camera) Zoom(delta float64) {
	camera.Distance = math.Max(camera.Distance-delta, 1)
}

func (camera *Camera) Eye() mgl64.Vec3 {
	yaw, pitch := mgl64.DegToRad(camera.Yaw), mgl64.DegToRad(camera.Pitch)
	return mgl64.Vec3{
		math.Cos(pitch) * math.Sin(yaw),
		math.Sin(pitch),
		math.Cos(pitch) * math.Cos(yaw),
	}.Mul(camera.Distance)
}

func (camera *Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(camera.Eye(), mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
}

func (camera *Camera) Projection() mgl64.Mat4 {
	aspect := camera.viewport.W() / camera.viewport.H()
	return mgl64.Perspective(mgl64.DegToRad(camera.FieldOfView), aspect, near, far)
}

// Ray casts from the near plane through point, towards the far plane
func (camera *Camera) Ray(point pixel.Vec) (geom.Ray, bool) {
	width, height := int(camera.viewport.W()), int(camera.viewport.H())
	if width <= 0 || height <= 0 {
		return geom.Ray{}, false
	}

	view, projection := camera.View(), camera.Projection()
	x, y := int(camera.viewport.Min.X), int(camera.viewport.Min.Y)

	nearPoint, err := mgl64.UnProject(mgl64.Vec3{point.X, point.Y, 0}, view, projection, x, y, width, height)
	if err != nil {
		return geom.Ray{}, false
	}
	farPoint, err := mgl64.UnProject(mgl64.Vec3{point.X, point.Y, 1}, view, projection, x, y, width, height)
	if err != nil {
		return geom.Ray{}, false
	}

	return geom.NewRay(nearPoint, farPoint.Sub(nearPoint))
}

// Project returns the screen position of a world point and its distance
// from the eye. ok is false for points behind the camera.
func (camera *Camera) Project(point mgl64.Vec3) (screen pixel.Vec, depth float64, ok bool) {
	width, height := int(camera.viewport.W()), int(camera.viewport.H())
	if width <= 0 || height <= 0 {
		return pixel.ZV, 0, false
	}

	eye := camera.Eye()
	forward := eye.Mul(-1).Normalize()
	if point.Sub(eye).Dot(forward) <= near {
		return pixel.ZV, 0, false
	}

	win := mgl64.Project(point, camera.View(), camera.Projection(),
		int(camera.viewport.Min.X), int(camera.viewport.Min.Y), width, height)
	return pixel.V(win[0], win[1]), point.Sub(eye).Len(), true
}

// PixelsPerUnit is the on-screen size of one world unit at depth
func (camera *Camera) PixelsPerUnit(depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	halfFOV := mgl64.DegToRad(camera.FieldOfView) / 2
	return camera.viewport.H() / 2 / math.Tan(halfFOV) / depth
}
