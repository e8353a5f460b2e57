package wheel

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	ErrEmptyOptionSet = errors.New("wheel: empty option set")
	ErrInvalidColor   = errors.New("wheel: invalid color")
)

// Option is one wedge of the wheel. Immutable once loaded.
type Option struct {
	Label       string
	DisplayText string
	Color       string // #RRGGBB
}

// DefaultPalette is cycled by option index when an option carries no
// usable color of its own.
var DefaultPalette = [12]string{
	"#E6194B", // red
	"#3CB44B", // green
	"#FFE119", // yellow
	"#4363D8", // blue
	"#F58231", // orange
	"#911EB4", // purple
	"#42D4F4", // cyan
	"#F032E6", // magenta
	"#BFEF45", // lime
	"#FABED4", // pink
	"#469990", // teal
	"#9A6324", // brown
}

// PaletteColor returns the default color for the option at index i.
func PaletteColor(i int) string {
	return DefaultPalette[i%len(DefaultPalette)]
}

// ParseColor validates a #RRGGBB string and returns it in canonical form.
func ParseColor(s string) (string, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c.Hex(), nil
}

const (
	TextColorDark  = "#000000"
	TextColorLight = "#FFFFFF"
)

// TextColor picks black or white label text for legibility against the
// given sector background. Relative luminance uses the ITU-R BT.601
// weights (0.299R + 0.587G + 0.114B)/255 with a 0.5 threshold; visual
// regression tests depend on these exact values.
func TextColor(background string) string {
	c, err := colorful.Hex(background)
	if err != nil {
		return TextColorLight
	}
	luminance := 0.299*c.R + 0.587*c.G + 0.114*c.B
	if luminance > 0.5 {
		return TextColorDark
	}
	return TextColorLight
}
