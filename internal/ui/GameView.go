package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mshel/sshnake/internal/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	mapViewStyle = lipgloss.NewStyle().
			Padding(0, 0)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2).
				MarginLeft(2)

	headRunes = map[game.Direction]string{
		game.DirectionUp:    "▲",
		game.DirectionDown:  "▼",
		game.DirectionLeft:  "◀",
		game.DirectionRight: "▶",
	}
)

// every grid cell is drawn as a square of this many terminal columns
const cellColumns = 2

// frameMsg drives the simulation. Frames from an older game view carry a
// stale generation and are dropped, which ends their tick chain.
type frameMsg struct {
	at         time.Time
	generation int
}

// --- GameViewModel Definition ---

// GameViewModel hosts one GameState. It is the only caller of the state, and
// bubbletea runs Update on a single goroutine.
type GameViewModel struct {
	TickCount    int
	ScreenWidth  int
	ScreenHeight int

	state         *game.GameState
	generation    int
	theme         Theme
	frameInterval time.Duration
	lastFrame     time.Time
	gameOverState GameOverState
}

func NewGameModel(state *game.GameState, generation int, theme Theme, frameRate int, screenWidth int, screenHeight int) GameViewModel {
	if frameRate <= 0 {
		frameRate = 30
	}
	return GameViewModel{
		ScreenWidth:   screenWidth,
		ScreenHeight:  screenHeight,
		state:         state,
		generation:    generation,
		theme:         theme,
		frameInterval: time.Second / time.Duration(frameRate),
		gameOverState: GameOverState{Theme: theme},
	}
}

func (m GameViewModel) Init() tea.Cmd {
	return m.nextFrame()
}

func (m GameViewModel) nextFrame() tea.Cmd {
	generation := m.generation
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return frameMsg{at: t, generation: generation}
	})
}

func (m GameViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ScreenWidth = msg.Width
		m.ScreenHeight = msg.Height
		return m, nil

	case frameMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		// the first frame only starts the clock
		if !m.lastFrame.IsZero() && msg.at.After(m.lastFrame) {
			m.state.Advance(msg.at.Sub(m.lastFrame))
		}
		m.lastFrame = msg.at
		m.TickCount++
		return m, m.nextFrame()

	case tea.KeyMsg:
		m.state.HandleDirectionInput(keyFromString(msg.String()))
		return m, nil
	}

	return m, nil
}

func keyFromString(key string) game.Key {
	switch key {
	case "w", "up":
		return game.KeyUp
	case "s", "down":
		return game.KeyDown
	case "a", "left":
		return game.KeyLeft
	case "d", "right":
		return game.KeyRight
	}
	return game.KeyOther
}

func (m GameViewModel) View() string {
	state := m.state.Describe()

	board := renderBoard(state, m.theme)
	if state.GameOver {
		board = lipgloss.JoinVertical(lipgloss.Center, board, m.gameOverState.RenderBanner(state.DeathCause))
	}

	content := lipgloss.JoinHorizontal(lipgloss.Top,
		mapViewStyle.Render(board),
		statusPanelStyle.Render(m.renderStatusPanel(state)),
	)

	return lipgloss.Place(m.ScreenWidth, m.ScreenHeight, lipgloss.Center, lipgloss.Center, content)
}

// renderBoard draws every cell as a fixed-size colored square: wall ring,
// food, snake, void. While the game is over the whole board is washed.
func renderBoard(state game.RenderState, theme Theme) string {
	if state.GameOver {
		theme = theme.washed()
	}

	body := make(map[game.Cell]bool, len(state.Snake))
	for _, c := range state.Snake {
		body[c] = true
	}

	var sb strings.Builder
	blank := strings.Repeat(" ", cellColumns)

	for row := 0; row < state.Height; row++ {
		for col := 0; col < state.Width; col++ {
			cell := game.Cell{X: col, Y: row}

			switch {
			case game.IsWall(cell, state.Width, state.Height):
				sb.WriteString(cellStyle(theme.Wall).Render(blank))
			case state.FoodExists && cell == state.Food:
				sb.WriteString(cellStyle(theme.Food).Render(blank))
			case len(state.Snake) > 0 && cell == state.Snake[0]:
				head := headRunes[state.Heading] + strings.Repeat(" ", cellColumns-1)
				sb.WriteString(cellStyle(theme.Head).Foreground(lipgloss.Color(theme.Void)).Render(head))
			case body[cell]:
				sb.WriteString(cellStyle(theme.Snake).Render(blank))
			default:
				sb.WriteString(cellStyle(theme.Void).Render(blank))
			}
		}
		if row < state.Height-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// renderStatusPanel draws the snake stats and the controls.
func (m GameViewModel) renderStatusPanel(state game.RenderState) string {
	var statusContent strings.Builder

	statusContent.WriteString(lipgloss.NewStyle().Bold(true).Render("--- Snake ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", len(state.Snake)))
	if len(state.Snake) > 0 {
		statusContent.WriteString(fmt.Sprintf("Head: %s\n", state.Snake[0]))
	}
	statusContent.WriteString(fmt.Sprintf("Direction: %s\n", headRunes[state.Heading]))
	statusContent.WriteString(fmt.Sprintf("Board: %dx%d\n", state.Width, state.Height))
	if state.GameOver {
		statusContent.WriteString("State: game over\n")
	} else {
		statusContent.WriteString("State: playing\n")
	}

	statusContent.WriteString("\n" + lipgloss.NewStyle().Bold(true).Render("--- Controls ---") + "\n")
	statusContent.WriteString("WASD / Arrows: Move\n")
	statusContent.WriteString("Other keys: Step\n")
	statusContent.WriteString("Esc: Menu\n")
	statusContent.WriteString("Q / Ctrl+C: Quit\n")

	return statusContent.String()
}
