package game

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var ErrTooManyMines = errors.New("too many mines")

type GameMode int

const (
	Classic GameMode = iota
	Win7
)

var GameModes = map[string]GameMode{
	"classic": Classic,
	"win7":    Win7,
}

func (mode GameMode) String() string {
	for name, gameMode := range GameModes {
		if gameMode == mode {
			return name
		}
	}
	return fmt.Sprint(int(mode))
}

func ParseGameMode(name string) (GameMode, error) {
	if mode, isValid := GameModes[name]; isValid {
		return mode, nil
	}
	return 0, fmt.Errorf("invalid game mode %q", name)
}

func (mode *GameMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseGameMode(name)
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}

func (mode GameMode) MarshalYAML() (interface{}, error) {
	return mode.String(), nil
}

// CameraConfig angles are in degrees. A zero Distance fits the camera to
// the grid.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	FieldOfView float64 `yaml:"fov"`
	Yaw         float64 `yaml:"yaw"`
	Pitch       float64 `yaml:"pitch"`
}

type GameConfig struct {
	Dimensions Dimensions `yaml:"dimensions"`
	NumMines   uint       `yaml:"mines"`
	Mode       GameMode   `yaml:"mode"`

	Seed int64 `yaml:"seed"`

	// Rays are only tested this far from the camera
	MaxPickDistance float64 `yaml:"max_pick_distance"`

	// Colour name per variant, overriding DefaultPalette
	Palette Palette `yaml:"palette"`

	Camera CameraConfig `yaml:"camera"`

	Director Director `yaml:"-"`
	// Number of ticks between director actions
	DirectorInterval uint `yaml:"director_interval"`

	Logger logrus.FieldLogger `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Dimensions:      Dimensions{X: 5, Y: 5, Z: 5},
		NumMines:        12,
		Mode:            Win7,
		MaxPickDistance: DefaultMaxPickDistance,
		Palette:         DefaultPalette(),
		Camera: CameraConfig{
			FieldOfView: 45,
			Yaw:         30,
			Pitch:       25,
		},
		DirectorInterval: 30,
	}
}

// LoadConfig reads a YAML file over config. Keys absent from the file keep
// their current values, and palette entries are merged over the current
// palette.
func LoadConfig(path string, config *GameConfig) error {
	in, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	// Strict decoding refuses keys already present in a map, so the file's
	// palette is decoded on its own and merged afterwards
	palette := config.Palette
	config.Palette = nil
	err = yaml.UnmarshalStrict(in, config)
	config.Palette = palette.merge(config.Palette)
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func (config GameConfig) Validate() error {
	if err := config.Dimensions.Validate(); err != nil {
		return err
	}
	if int(config.NumMines) >= config.Dimensions.NumCells() {
		return fmt.Errorf("%w: %d mines in %d cells", ErrTooManyMines, config.NumMines, config.Dimensions.NumCells())
	}
	return nil
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Logger == nil {
		return logrus.StandardLogger()
	}
	return config.Logger
}
