package game

import (
	"github.com/faiface/pixel"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/cubesweep/geom"
)

// Camera turns a screen-space point into a world-space ray. It returns false
// when no ray can be built, e.g. before the viewport has a size.
type Camera interface {
	Ray(point pixel.Vec) (geom.Ray, bool)
}

type ButtonEvent struct {
	Button  Button
	Pressed bool
}

// Input is everything the input layer captured during one tick
type Input struct {
	Pointer    pixel.Vec
	HasPointer bool
	Buttons    []ButtonEvent
}

// Picker resolves clicks into intents targeting the nearest concealed cell
type Picker struct {
	viewport    pixel.Rect
	camera      Camera
	maxDistance float64
	log         logrus.FieldLogger
}

func NewPicker(viewport pixel.Rect, camera Camera, maxDistance float64, log logrus.FieldLogger) *Picker {
	if maxDistance <= 0 {
		maxDistance = DefaultMaxPickDistance
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Picker{
		viewport:    viewport,
		camera:      camera,
		maxDistance: maxDistance,
		log:         log,
	}
}

func (picker *Picker) SetViewport(viewport pixel.Rect) {
	picker.viewport = viewport
}

func (picker *Picker) Viewport() pixel.Rect {
	return picker.viewport
}

// Pick handles every button press in input. Primary presses become reveal
// requests for the Field; secondary presses become mark events.
func (picker *Picker) Pick(input Input, cells []*Cell, requests *EventQueue[RevealRequest], events *EventQueue[CellEvent]) {
	if !input.HasPointer || !picker.viewport.Contains(input.Pointer) {
		return
	}

	for _, press := range input.Buttons {
		if !press.Pressed {
			continue
		}
		if press.Button != ButtonPrimary && press.Button != ButtonSecondary {
			continue
		}

		log := picker.log.WithField("button", press.Button)
		log.WithField("pointer", input.Pointer).Debug("Click")

		ray, ok := picker.camera.Ray(input.Pointer)
		if !ok {
			continue
		}
		log.WithField("ray", ray).Debug("Cursor ray")

		hit, dist, ok := picker.Nearest(ray, cells)
		if !ok {
			continue
		}
		log.WithFields(logrus.Fields{
			"cell":     hit.id,
			"index":    hit.index,
			"distance": dist,
		}).Debug("Cell hit")

		switch press.Button {
		case ButtonPrimary:
			requests.Push(RevealRequest{Cell: hit.id, Index: hit.index})
		case ButtonSecondary:
			events.Push(MarkEvent{Cell: hit.id})
		}
	}
}

// Nearest returns the concealed cell whose bounds the ray enters first.
// Revealed cells are never candidates. A candidate only replaces the current
// best when strictly closer, so equal or unorderable distances keep the
// first one encountered.
func (picker *Picker) Nearest(ray geom.Ray, cells []*Cell) (*Cell, float64, bool) {
	var (
		best     *Cell
		bestDist float64
	)

	for _, cell := range cells {
		if cell.IsRevealed() {
			continue
		}

		dist, ok := cell.bounds.IntersectRay(ray, picker.maxDistance)
		if !ok {
			continue
		}

		if best == nil || dist < bestDist {
			best, bestDist = cell, dist
		}
	}

	return best, bestDist, best != nil
}
