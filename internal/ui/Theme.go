package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme holds the board colors as hex strings. It belongs to whoever builds
// the models, so SSH sessions and the local runner can differ.
type Theme struct {
	Void  string
	Wall  string
	Snake string
	Head  string
	Food  string

	// Wash is blended over every cell at WashOpacity while the game is over.
	Wash        string
	WashOpacity float64
}

func DefaultTheme() Theme {
	return Theme{
		Void:        "#121212",
		Wall:        "#000000",
		Snake:       "#660066",
		Head:        "#8a2b8a",
		Food:        "#cc0000",
		Wash:        "#e60000",
		WashOpacity: 0.5,
	}
}

// washed returns the theme as seen through the game over wash.
func (t Theme) washed() Theme {
	return Theme{
		Void:        blend(t.Void, t.Wash, t.WashOpacity),
		Wall:        blend(t.Wall, t.Wash, t.WashOpacity),
		Snake:       blend(t.Snake, t.Wash, t.WashOpacity),
		Head:        blend(t.Head, t.Wash, t.WashOpacity),
		Food:        blend(t.Food, t.Wash, t.WashOpacity),
		Wash:        t.Wash,
		WashOpacity: t.WashOpacity,
	}
}

func blend(base string, overlay string, opacity float64) string {
	baseColor, err := colorful.Hex(base)
	if err != nil {
		return overlay
	}
	overlayColor, err := colorful.Hex(overlay)
	if err != nil {
		return base
	}
	return baseColor.BlendRgb(overlayColor, opacity).Hex()
}

func cellStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex))
}
