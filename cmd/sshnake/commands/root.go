package commands

import (
	"fmt"
	"os"

	"github.com/Mshel/sshnake/internal/config"
	"github.com/Mshel/sshnake/internal/game"
	"github.com/Mshel/sshnake/internal/ui"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "sshnake",
	Short:   "sshnake plays snake in your terminal, locally or over SSH",
	Version: version,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrapf(err, "invalid log level %q", logLevel)
		}
		log.SetLevel(level)

		if err := game.DefaultConfig(boardWidth, boardHeight).Validate(); err != nil {
			return err
		}
		return nil
	},
	RunE: runPlay,
}

var (
	logLevel    string
	boardWidth  int
	boardHeight int
	frameRate   int
)

// uiOptions builds the per-program options shared by play and serve.
func uiOptions(screenWidth, screenHeight int, gameOpts ...game.Option) ui.Options {
	return ui.Options{
		BoardWidth:   boardWidth,
		BoardHeight:  boardHeight,
		FrameRate:    frameRate,
		Theme:        ui.DefaultTheme(),
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		GameOptions:  gameOpts,
	}
}

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", config.LogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().IntVar(&boardWidth, "width", config.BoardWidth, "board width in cells, walls included")
	rootCmd.PersistentFlags().IntVar(&boardHeight, "height", config.BoardHeight, "board height in cells, walls included")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.FrameRate, "frames per second fed to the game")
	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
