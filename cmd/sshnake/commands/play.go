package commands

import (
	"io"
	"os"

	"github.com/Mshel/sshnake/internal/game"
	"github.com/Mshel/sshnake/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "play in the current terminal",
	RunE:  runPlay,
}

var (
	logFile string
	seed    uint64
)

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(c *cobra.Command) {
	c.Flags().StringVar(&logFile, "log-file", "", "write logs here; logs are dropped when empty")
	c.Flags().Uint64Var(&seed, "seed", 0, "seed for food placement, 0 seeds from the clock")
}

func runPlay(c *cobra.Command, args []string) error {
	// the alt screen owns the terminal, so logs never go to stderr here
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.Wrapf(err, "opening log file %s", logFile)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	var gameOpts []game.Option
	if seed != 0 {
		gameOpts = append(gameOpts, game.WithRand(rand.New(rand.NewSource(seed))))
	}

	p := tea.NewProgram(ui.NewControllerModel(uiOptions(0, 0, gameOpts...)), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "running game")
	}
	return nil
}
