package camera

import (
	"testing"

	"github.com/faiface/pixel"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/cubesweep/field"
	"github.com/they4kman/cubesweep/game"
)

func frontCamera(viewport pixel.Rect) *Camera {
	return New(game.CameraConfig{Distance: 10, FieldOfView: 45}, game.Dimensions{X: 3, Y: 3, Z: 3}, viewport)
}

func TestCamera_RayThroughCenter(t *testing.T) {
	camera := frontCamera(pixel.R(0, 0, 800, 600))

	ray, ok := camera.Ray(pixel.V(400, 300))
	require.True(t, ok)

	assert.InDelta(t, 0, ray.Origin[0], 1e-6)
	assert.InDelta(t, 0, ray.Origin[1], 1e-6)
	assert.InDelta(t, 10-near, ray.Origin[2], 1e-6)

	assert.InDelta(t, 0, ray.Direction[0], 1e-6)
	assert.InDelta(t, 0, ray.Direction[1], 1e-6)
	assert.InDelta(t, -1, ray.Direction[2], 1e-6)
}

func TestCamera_RayMatchesProject(t *testing.T) {
	camera := frontCamera(pixel.R(0, 0, 640, 480))
	camera.Orbit(35, 20)

	target := mgl64.Vec3{1, -1, 0.5}
	screen, depth, ok := camera.Project(target)
	require.True(t, ok)
	assert.InDelta(t, target.Sub(camera.Eye()).Len(), depth, 1e-9)

	ray, ok := camera.Ray(screen)
	require.True(t, ok)

	// Distance from target to the ray's line
	toTarget := target.Sub(ray.Origin)
	along := toTarget.Dot(ray.Direction)
	assert.Greater(t, along, 0.0)
	assert.InDelta(t, 0, toTarget.Sub(ray.Direction.Mul(along)).Len(), 1e-6)
}

func TestCamera_EmptyViewport(t *testing.T) {
	camera := frontCamera(pixel.R(0, 0, 0, 0))

	_, ok := camera.Ray(pixel.V(0, 0))
	assert.False(t, ok)

	_, _, ok = camera.Project(mgl64.Vec3{})
	assert.False(t, ok)
}

func TestCamera_ProjectBehind(t *testing.T) {
	camera := frontCamera(pixel.R(0, 0, 800, 600))

	_, _, ok := camera.Project(mgl64.Vec3{0, 0, 20})
	assert.False(t, ok)
}

func TestCamera_OrbitClampsPitch(t *testing.T) {
	camera := frontCamera(pixel.R(0, 0, 800, 600))

	camera.Orbit(0, 500)
	assert.Equal(t, maxPitch, camera.Pitch)

	camera.Orbit(370, -1000)
	assert.Equal(t, -maxPitch, camera.Pitch)
	assert.InDelta(t, 10, camera.Yaw, 1e-9)
}

func TestNew_FitsDistanceToGrid(t *testing.T) {
	camera := New(game.CameraConfig{}, game.Dimensions{X: 4, Y: 8, Z: 2}, pixel.R(0, 0, 800, 600))

	assert.Equal(t, 22.0, camera.Distance)
	assert.Equal(t, 45.0, camera.FieldOfView)
}

func TestCamera_ClickRevealsFrontCell(t *testing.T) {
	log, _ := test.NewNullLogger()
	viewport := pixel.R(0, 0, 800, 600)
	camera := frontCamera(viewport)

	config := game.NewGameConfig()
	config.Dimensions = game.Dimensions{X: 3, Y: 3, Z: 3}
	config.NumMines = 0
	config.Logger = log

	g, err := game.NewGame(config, camera, viewport, field.New(config.NumMines, config.Mode, log))
	require.NoError(t, err)

	// With no mines the first reveal cascades over the whole grid, so
	// mark instead and check which cell was picked
	g.Tick(game.Input{
		Pointer:    pixel.V(400, 300),
		HasPointer: true,
		Buttons:    []game.ButtonEvent{{Button: game.ButtonSecondary, Pressed: true}},
	})

	front, ok := g.Cells().CellAt(game.Index{I: 1, J: 1, K: 2})
	require.True(t, ok)
	assert.True(t, front.IsMarked())
	assert.Equal(t, uint(1), g.MarkedCount())
}
