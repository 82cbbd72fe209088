package ui

import (
	"strconv"
	"strings"

	"github.com/Mshel/sshnake/internal/game"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// Define styles
var (
	focusedColor = lipgloss.Color("127")
	blurredColor = lipgloss.Color("240")
	focusedStyle = lipgloss.NewStyle().Foreground(focusedColor)
	blurredStyle = lipgloss.NewStyle().Foreground(blurredColor)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle    = blurredStyle

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder())

	submitButtonStyle = buttonStyle.
				BorderForeground(focusedColor).
				Padding(0, 1)

	blurredButtonStyle = buttonStyle.
				BorderForeground(blurredColor).
				Padding(0, 1)
)

const (
	focusWidth = iota
	focusHeight
	focusSubmit
	focusCount
)

// SetupModel is the board size form.
type SetupModel struct {
	widthInput  textinput.Model
	heightInput textinput.Model
	focusIndex  int
	err         string
	width       int // terminal width
	height      int // terminal height
}

func newSizeInput(placeholder string, value int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 3
	ti.Width = 5
	ti.SetValue(strconv.Itoa(value))
	ti.PromptStyle = blurredStyle
	ti.TextStyle = blurredStyle
	return ti
}

func NewInitialSetupModel(boardWidth, boardHeight, w, h int) SetupModel {
	m := SetupModel{
		widthInput:  newSizeInput("width", boardWidth),
		heightInput: newSizeInput("height", boardHeight),
		focusIndex:  focusWidth,
		width:       w,
		height:      h,
	}
	m.widthInput.Prompt = "Board width:  "
	m.heightInput.Prompt = "Board height: "
	m.applyFocus()
	return m
}

// Init sends a command to start the cursor blinking
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// WithError returns the form showing err, e.g. after the game refused the size.
func (m SetupModel) WithError(err error) SetupModel {
	m.err = err.Error()
	return m
}

func (m *SetupModel) applyFocus() {
	inputs := []*textinput.Model{&m.widthInput, &m.heightInput}
	for i, input := range inputs {
		if i == m.focusIndex {
			input.Focus()
			input.PromptStyle = focusedStyle
			input.TextStyle = focusedStyle
		} else {
			input.Blur()
			input.PromptStyle = blurredStyle
			input.TextStyle = blurredStyle
		}
	}
}

func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			m.focusIndex = (m.focusIndex + 1) % focusCount
			m.applyFocus()
			return m, nil
		case "shift+tab", "up":
			m.focusIndex = (m.focusIndex - 1 + focusCount) % focusCount
			m.applyFocus()
			return m, nil
		case "enter":
			if m.focusIndex != focusSubmit {
				m.focusIndex++
				m.applyFocus()
				return m, nil
			}

			submit, err := m.parse()
			if err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""
			return m, func() tea.Msg { return submit }
		}

		var cmd tea.Cmd
		switch m.focusIndex {
		case focusWidth:
			m.widthInput, cmd = m.widthInput.Update(msg)
		case focusHeight:
			m.heightInput, cmd = m.heightInput.Update(msg)
		}
		return m, cmd
	}

	return m, nil
}

// parse checks the typed size against the same rules the game applies.
func (m SetupModel) parse() (SetupSubmitMsg, error) {
	boardWidth, err := strconv.Atoi(strings.TrimSpace(m.widthInput.Value()))
	if err != nil {
		return SetupSubmitMsg{}, errors.Errorf("width %q is not a number", m.widthInput.Value())
	}
	boardHeight, err := strconv.Atoi(strings.TrimSpace(m.heightInput.Value()))
	if err != nil {
		return SetupSubmitMsg{}, errors.Errorf("height %q is not a number", m.heightInput.Value())
	}

	if err := game.DefaultConfig(boardWidth, boardHeight).Validate(); err != nil {
		return SetupSubmitMsg{}, err
	}

	return SetupSubmitMsg{Width: boardWidth, Height: boardHeight}, nil
}

func (m SetupModel) View() string {
	center := func(s string) string {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Render(s)
	}

	var b strings.Builder

	b.WriteString(center(m.widthInput.View()))
	b.WriteString("\n")
	b.WriteString(center(m.heightInput.View()))
	b.WriteString("\n\n")

	submitText := "Start"
	var submitButton string
	if m.focusIndex == focusSubmit {
		submitButton = submitButtonStyle.Render(submitText)
	} else {
		submitButton = blurredButtonStyle.Render(submitText)
	}
	b.WriteString(center(submitButton))
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(center(errorStyle.Render(m.err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center(helpStyle.Render("(tab/shift+tab to navigate, enter to confirm, ctrl+c to quit)")))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
