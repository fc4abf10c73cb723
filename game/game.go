package game

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"

	"github.com/faiface/pixel"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoCamera = errors.New("no camera")
	ErrNoField  = errors.New("no field")
)

// Field owns the mine layout. It answers reveal requests with RevealEvents,
// cascading through empty regions, and decides when a round is won or lost.
type Field interface {
	Reset(grid Grid, seed int64)
	Reveal(request RevealRequest, events *EventQueue[CellEvent])
	Phase() Phase
	NumMines() uint
}

// Game assembles one pool, one camera and one field, and runs the
// per-tick pipeline over them
type Game struct {
	config GameConfig

	camera   Camera
	field    Field
	director Director

	pool    *VisualPool
	cells   *Cells
	picker  *Picker
	handler *Handler

	requests EventQueue[RevealRequest]
	events   EventQueue[CellEvent]

	session uuid.UUID
	phase   Phase
	ticks   uint64
	rand    *rand.Rand

	log logrus.FieldLogger
}

// NewGame builds the visual pool and spawns the first round. Any error here
// means the game was not assembled correctly and cannot run.
func NewGame(config GameConfig, camera Camera, viewport pixel.Rect, field Field) (*Game, error) {
	if isNil(camera) {
		return nil, ErrNoCamera
	}
	if isNil(field) {
		return nil, ErrNoField
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	pool, err := NewVisualPool(config.Palette)
	if err != nil {
		return nil, fmt.Errorf("creating visual pool: %w", err)
	}

	game := &Game{
		config:   config,
		camera:   camera,
		field:    field,
		director: config.Director,
		pool:     pool,
		phase:    Starting,
		rand:     rand.New(rand.NewSource(config.Seed)),
		log:      config.logger(),
	}
	game.picker = NewPicker(viewport, camera, config.MaxPickDistance, game.log)

	if err := game.start(config.Seed); err != nil {
		return nil, err
	}
	return game, nil
}

// isNil also catches nil pointers wrapped in a non-nil interface
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return value.IsNil()
	}
	return false
}

// Restart ends the current round and spawns a new one with seed
func (game *Game) Restart(seed int64) error {
	if game.director != nil {
		game.director.End()
	}
	game.requests.Clear()
	game.events.Clear()
	game.phase = Starting
	game.rand = rand.New(rand.NewSource(seed))
	return game.start(seed)
}

func (game *Game) start(seed int64) error {
	game.session = uuid.New()
	game.config.Seed = seed
	log := game.log.WithFields(logrus.Fields{
		"session": game.session,
		"seed":    seed,
	})

	cells, err := Spawn(game.config.Dimensions, game.pool)
	if err != nil {
		return fmt.Errorf("spawning cells: %w", err)
	}
	game.cells = cells
	game.handler = NewHandler(game.pool, cells, log)
	game.picker.log = log

	game.field.Reset(cells, seed)
	if game.director != nil {
		game.director.Init(cells, game.rand)
	}

	log.WithFields(logrus.Fields{
		"dimensions": game.config.Dimensions,
		"cells":      cells.Len(),
		"mines":      game.field.NumMines(),
	}).Info("Spawned cells")

	game.setPhase(game.field.Phase())
	return nil
}

// Tick runs one frame of the pipeline: director and picker emit intents,
// the field answers reveal requests, then the handler applies all cell
// events. Each queue is drained exactly once.
func (game *Game) Tick(input Input) {
	game.ticks++

	if game.phase == Ongoing {
		if game.director != nil && game.config.DirectorInterval > 0 &&
			game.ticks%uint64(game.config.DirectorInterval) == 0 {
			game.director.Act(&game.requests)
		}
		game.picker.Pick(input, game.cells.Cells(), &game.requests, &game.events)
	}

	game.requests.Drain(func(request RevealRequest) {
		game.field.Reveal(request, &game.events)
	})
	game.handler.Handle(&game.events)

	game.setPhase(game.field.Phase())
}

func (game *Game) setPhase(phase Phase) {
	if phase == game.phase {
		return
	}
	game.log.WithFields(logrus.Fields{
		"session": game.session,
		"from":    game.phase,
		"to":      phase,
	}).Info("Game phase changed")

	game.phase = phase
	if (phase == Won || phase == Lost) && game.director != nil {
		game.director.End()
	}
}

// SetViewport updates the screen area clicks are accepted in
func (game *Game) SetViewport(viewport pixel.Rect) {
	game.picker.SetViewport(viewport)
}

func (game *Game) Phase() Phase {
	return game.phase
}

func (game *Game) Session() uuid.UUID {
	return game.session
}

func (game *Game) Config() GameConfig {
	return game.config
}

func (game *Game) Pool() *VisualPool {
	return game.pool
}

func (game *Game) Cells() *Cells {
	return game.cells
}

// RequestReveal queues a reveal request for the next Tick, as a click would
func (game *Game) RequestReveal(id CellID) bool {
	cell, ok := game.cells.Cell(id)
	if !ok {
		return false
	}
	game.requests.Push(RevealRequest{Cell: id, Index: cell.index})
	return true
}

// RequestMark queues a mark toggle for the next Tick
func (game *Game) RequestMark(id CellID) {
	game.events.Push(MarkEvent{Cell: id})
}

func (game *Game) MarkedCount() uint {
	count := uint(0)
	for _, cell := range game.cells.Cells() {
		if cell.marked {
			count++
		}
	}
	return count
}

// MinesRemaining is the number of mines minus the number of marks, which
// goes negative when the player over-marks
func (game *Game) MinesRemaining() int {
	return int(game.field.NumMines()) - int(game.MarkedCount())
}
