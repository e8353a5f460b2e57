package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorBgDark  = lipgloss.Color("#101518")
	ColorAccent  = lipgloss.Color("#00F19F") // spin hint, winner banner border
	ColorWarning = lipgloss.Color("#FFDE00") // load errors, empty-wheel notice
)

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) Accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorAccent)
}

func (t Theme) Dim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) Warning() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}
