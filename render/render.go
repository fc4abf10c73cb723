package render

import (
	"fmt"
	"image/color"
	"math/rand"
	"sort"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/cubesweep/camera"
	"github.com/they4kman/cubesweep/field"
	"github.com/they4kman/cubesweep/game"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	// Degrees per frame while an arrow key is held
	orbitSpeed = 1.5
	zoomSpeed  = 1.0

	// Opacity of concealed cubes, so inner cells stay visible
	concealedAlpha = 0.35
)

// Buttons in the order their events are reported each tick
var buttons = []struct {
	button pixelgl.Button
	mapped game.Button
}{
	{pixelgl.MouseButtonLeft, game.ButtonPrimary},
	{pixelgl.MouseButtonRight, game.ButtonSecondary},
	{pixelgl.MouseButtonMiddle, game.ButtonMiddle},
}

// Run opens the game window and plays until it is closed. It must be called
// from pixelgl.Run.
func Run(config game.GameConfig) error {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	cfg := pixelgl.WindowConfig{
		Title:     "cubesweep",
		Bounds:    pixel.R(0, 0, 1024, 768),
		Resizable: true,
		VSync:     true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		panic(err)
	}

	cam := camera.New(config.Camera, config.Dimensions, win.Bounds())
	mines := field.New(config.NumMines, config.Mode, log)

	g, err := game.NewGame(config, cam, win.Bounds(), mines)
	if err != nil {
		return err
	}

	basicAtlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	hud := text.New(pixel.ZV, basicAtlas)

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	bgColor := colornames.Gainsboro
	for !win.Closed() {
		win.Update()
		win.Clear(bgColor)

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		bounds := win.Bounds()
		cam.SetViewport(bounds)
		g.SetViewport(bounds)

		handleCameraKeys(win, cam)

		// Start a new round with Enter
		if win.JustPressed(pixelgl.KeyEnter) {
			if err := g.Restart(rand.Int63()); err != nil {
				return err
			}
		}

		g.Tick(readInput(win))

		drawCells(win, cam, g)
		drawHUD(win, hud, g)
	}

	return nil
}

func readInput(win *pixelgl.Window) game.Input {
	input := game.Input{
		Pointer:    win.MousePosition(),
		HasPointer: win.MouseInsideWindow(),
	}
	for _, b := range buttons {
		if win.JustPressed(b.button) {
			input.Buttons = append(input.Buttons, game.ButtonEvent{Button: b.mapped, Pressed: true})
		}
		if win.JustReleased(b.button) {
			input.Buttons = append(input.Buttons, game.ButtonEvent{Button: b.mapped, Pressed: false})
		}
	}
	return input
}

func handleCameraKeys(win *pixelgl.Window, cam *camera.Camera) {
	var yaw, pitch float64
	if win.Pressed(pixelgl.KeyLeft) {
		yaw -= orbitSpeed
	}
	if win.Pressed(pixelgl.KeyRight) {
		yaw += orbitSpeed
	}
	if win.Pressed(pixelgl.KeyUp) {
		pitch += orbitSpeed
	}
	if win.Pressed(pixelgl.KeyDown) {
		pitch -= orbitSpeed
	}
	if yaw != 0 || pitch != 0 {
		cam.Orbit(yaw, pitch)
	}

	if scroll := win.MouseScroll(); scroll.Y != 0 {
		cam.Zoom(scroll.Y * zoomSpeed)
	}
}

type drawable struct {
	screen pixel.Vec
	depth  float64
	shape  game.Shape
	color  color.RGBA
}

// drawCells paints every visible cell back to front
func drawCells(win *pixelgl.Window, cam *camera.Camera, g *game.Game) {
	pool := g.Pool()
	cells := g.Cells().Cells()
	drawables := make([]drawable, 0, len(cells))

	for _, cell := range cells {
		visual := cell.Visual()
		if visual.IsEmpty() {
			continue
		}
		shape, ok := pool.Mesh(visual.Mesh)
		if !ok {
			continue
		}
		material, ok := pool.Material(visual.Material)
		if !ok {
			continue
		}

		screen, depth, ok := cam.Project(cell.Position())
		if !ok {
			continue
		}
		drawables = append(drawables, drawable{
			screen: screen,
			depth:  depth,
			shape:  shape,
			color:  material.Color,
		})
	}

	sort.Slice(drawables, func(i, j int) bool {
		return drawables[i].depth > drawables[j].depth
	})

	imd := imdraw.New(nil)
	for _, d := range drawables {
		scale := cam.PixelsPerUnit(d.depth)
		baseColor := pixel.ToRGBA(d.color)

		switch d.shape.Kind {
		case game.ShapeCube:
			half := pixel.V(d.shape.Size*scale/2, d.shape.Size*scale/2)

			imd.Color = baseColor.Mul(pixel.Alpha(concealedAlpha))
			imd.Push(d.screen.Sub(half), d.screen.Add(half))
			imd.Rectangle(0) // 0 = filled

			imd.Color = pixel.ToRGBA(colornames.Dimgray).Mul(pixel.Alpha(concealedAlpha))
			imd.Push(d.screen.Sub(half), d.screen.Add(half))
			imd.Rectangle(1)

		case game.ShapeSphere:
			imd.Color = baseColor
			imd.Push(d.screen)
			imd.Circle(d.shape.Size*scale, 0)
		}
	}
	imd.Draw(win)
}

func drawHUD(win *pixelgl.Window, hud *text.Text, g *game.Game) {
	topLeft := win.Bounds().Vertices()[1]

	hud.Clear()
	hud.Orig = topLeft.Add(pixel.V(20, -30))
	hud.Dot = hud.Orig
	hud.Color = colornames.Black

	fmt.Fprintf(hud, "%03d", g.MinesRemaining())
	switch g.Phase() {
	case game.Won:
		hud.Color = colornames.Green
		fmt.Fprint(hud, "   WIN!")
	case game.Lost:
		hud.Color = colornames.Red
		fmt.Fprint(hud, "   LOSE :(")
	}
	hud.Draw(win, pixel.IM)
}
