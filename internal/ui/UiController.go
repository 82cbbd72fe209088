package ui

import (
	"github.com/Mshel/sshnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

type Screen int

const (
	IntroScreen Screen = iota
	SetupScreen
	GameScreen
)

// Messages for state transitions
type IntroSubmitMsg int // 0 for Quick Start, 1 for Custom Board
type SetupSubmitMsg struct {
	Width  int
	Height int
}

// Options configure a ControllerModel. Each program gets its own set.
type Options struct {
	BoardWidth   int
	BoardHeight  int
	FrameRate    int
	Theme        Theme
	ScreenWidth  int
	ScreenHeight int

	// GameOptions are passed to every game.New, e.g. a seeded generator.
	GameOptions []game.Option
}

type ControllerModel struct {
	CurrentScreen Screen

	IntroModel tea.Model
	SetupModel tea.Model
	GameModel  tea.Model

	ScreenWidth  int
	ScreenHeight int

	opts       Options
	generation int
}

func NewControllerModel(opts Options) ControllerModel {
	return ControllerModel{
		CurrentScreen: IntroScreen,

		IntroModel: NewIntroModel(opts.ScreenWidth, opts.ScreenHeight),
		SetupModel: NewInitialSetupModel(opts.BoardWidth, opts.BoardHeight, opts.ScreenWidth, opts.ScreenHeight),

		ScreenWidth:  opts.ScreenWidth,
		ScreenHeight: opts.ScreenHeight,
		opts:         opts,
	}
}

func (m ControllerModel) Init() tea.Cmd {
	return m.IntroModel.Init()
}

func (m ControllerModel) View() string {
	switch m.CurrentScreen {
	case IntroScreen:
		return m.IntroModel.View()
	case SetupScreen:
		return m.SetupModel.View()
	case GameScreen:
		if m.GameModel != nil {
			return m.GameModel.View()
		}
		return "Game Loading..."
	default:
		return "Unknown Screen"
	}
}

func (m ControllerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	// --- 1. Global Key Check (Check before the main switch) ---
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.CurrentScreen != SetupScreen {
				return m, tea.Quit
			}
		case "esc":
			if m.CurrentScreen != IntroScreen {
				m.CurrentScreen = IntroScreen
				m.GameModel = nil
				return m, m.IntroModel.Init()
			}
		}
	}

	// --- 2. State Transition Message Handling ---
	switch msg := msg.(type) {
	case IntroSubmitMsg:
		if msg == 0 {
			return m.startGame(m.opts.BoardWidth, m.opts.BoardHeight)
		}
		m.CurrentScreen = SetupScreen
		return m, m.SetupModel.Init()

	case SetupSubmitMsg:
		return m.startGame(msg.Width, msg.Height)

	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		m.IntroModel, _ = m.IntroModel.Update(msg)
		m.SetupModel, _ = m.SetupModel.Update(msg)
		if m.GameModel != nil {
			m.GameModel, _ = m.GameModel.Update(msg)
		}
		return m, nil

	default:
		// --- 3. Message Delegation (Pass to the active model for all other messages) ---
		switch m.CurrentScreen {
		case IntroScreen:
			m.IntroModel, cmd = m.IntroModel.Update(msg)
			cmds = append(cmds, cmd)
		case SetupScreen:
			m.SetupModel, cmd = m.SetupModel.Update(msg)
			cmds = append(cmds, cmd)
		case GameScreen:
			if m.GameModel != nil {
				m.GameModel, cmd = m.GameModel.Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	}

	return m, tea.Batch(cmds...)
}

// startGame builds a fresh game, falling back to the setup form when the
// board size is rejected.
func (m ControllerModel) startGame(width, height int) (tea.Model, tea.Cmd) {
	state, err := game.NewDefault(width, height, m.opts.GameOptions...)
	if err != nil {
		log.Warn("Could not start game", "width", width, "height", height, "error", err)
		if setup, ok := m.SetupModel.(SetupModel); ok {
			m.SetupModel = setup.WithError(err)
		}
		m.CurrentScreen = SetupScreen
		return m, m.SetupModel.Init()
	}

	log.Info("Game started", "width", width, "height", height)
	m.generation++
	m.CurrentScreen = GameScreen
	m.GameModel = NewGameModel(state, m.generation, m.opts.Theme, m.opts.FrameRate, m.ScreenWidth, m.ScreenHeight)
	return m, m.GameModel.Init()
}
