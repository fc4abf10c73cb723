package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/cubesweep/director/random"
	"github.com/they4kman/cubesweep/game"
	"github.com/they4kman/cubesweep/render"
)

var flagConfig = game.NewGameConfig()
var (
	configPath  string
	logLevel    string
	useDirector bool
)

var rootCmd = &cobra.Command{
	Use:   "cubesweep",
	Short: "Play Minesweeper on a 3D grid of cubes",
	Long: `cubesweep is a Minesweeper game played on a cube of cells, which
supports human- or computer-driven playing.

Left-click a cell to reveal it, right-click to mark it as a mine.
Arrow keys orbit the camera, the scroll wheel zooms, Enter starts a new round.

Run with no arguments to play manually
	cubesweep

Use the director flag to make the computer play for you
	cubesweep -director
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := buildConfig(cmd.Flags())
		if err != nil {
			return err
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = render.Run(config)
		})
		return runErr
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// buildConfig layers defaults, then the config file, then any flags given
// explicitly on the command line
func buildConfig(flags *pflag.FlagSet) (game.GameConfig, error) {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return game.GameConfig{}, err
	}
	logger := logrus.StandardLogger()
	logger.SetLevel(level)

	config := game.NewGameConfig()
	if configPath != "" {
		if err := game.LoadConfig(configPath, &config); err != nil {
			return game.GameConfig{}, err
		}
	}

	if flags.Changed("width") {
		config.Dimensions.X = flagConfig.Dimensions.X
	}
	if flags.Changed("height") {
		config.Dimensions.Y = flagConfig.Dimensions.Y
	}
	if flags.Changed("depth") {
		config.Dimensions.Z = flagConfig.Dimensions.Z
	}
	if flags.Changed("mines") {
		config.NumMines = flagConfig.NumMines
	}
	if flags.Changed("mode") {
		config.Mode = flagConfig.Mode
	}

	if flags.Changed("seed") {
		config.Seed = flagConfig.Seed
	} else if config.Seed == 0 {
		config.Seed = time.Now().UnixNano()
	}

	if useDirector {
		config.Director = &random.Director{}
	}
	config.Logger = logger

	if err := config.Validate(); err != nil {
		return game.GameConfig{}, err
	}
	return config, nil
}

type gameModeValue game.GameMode

func newGameModeValue(val game.GameMode, p *game.GameMode) *gameModeValue {
	*p = val
	return (*gameModeValue)(p)
}

func (modeVal *gameModeValue) String() string {
	return game.GameMode(*modeVal).String()
}

func (modeVal *gameModeValue) Set(value string) error {
	mode, err := game.ParseGameMode(value)
	if err != nil {
		return err
	}
	*modeVal = gameModeValue(mode)
	return nil
}

func (modeVal *gameModeValue) Type() string {
	return "game.GameMode"
}

func init() {
	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	rootCmd.Flags().Bool("help", false, "Help for this command")

	rootCmd.Flags().IntVarP(&flagConfig.Dimensions.X, "width", "w", flagConfig.Dimensions.X, "Width of the grid, in cells")
	rootCmd.Flags().IntVarP(&flagConfig.Dimensions.Y, "height", "h", flagConfig.Dimensions.Y, "Height of the grid, in cells")
	rootCmd.Flags().IntVarP(&flagConfig.Dimensions.Z, "depth", "z", flagConfig.Dimensions.Z, "Depth of the grid, in cells")
	rootCmd.Flags().UintVarP(&flagConfig.NumMines, "mines", "m", flagConfig.NumMines, "Number of mines to place in the grid")
	rootCmd.Flags().Var(newGameModeValue(flagConfig.Mode, &flagConfig.Mode), "mode", `Game mode, controlling behaviour of first click.
win7: all cells surrounding the first-clicked cell are cleared of mines (first click never loses)
classic: mines are left as is (first click can lose the game)`)
	rootCmd.Flags().Int64VarP(&flagConfig.Seed, "seed", "s", 0, "Seed for mine placement (default: current time)")
	rootCmd.Flags().BoolVarP(&useDirector, "director", "d", false, "Make the computer play")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: panic, fatal, error, warn, info, debug or trace")
}
