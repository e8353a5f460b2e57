// Package wheelview renders the wheel as colored pie sectors on a braille
// canvas. Each sector is drawn on its own canvas layer, styled with the
// option's color, and the layers are merged braille-dot-wise into one
// frame with a fixed pointer at 12 o'clock.
package wheelview

import (
	"math"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/Ricardo-TDP/ruleta/internal/wheel"
)

const (
	// canvas dimensions in braille dots (2 dots per char width, 4 per char height)
	wheelDotsWidth  = 64
	wheelDotsHeight = 64

	charWidth  = wheelDotsWidth / 2
	charHeight = wheelDotsHeight / 4
)

const pointerGlyph = "▼"

// Wheel renders one frame of the wheel at the given rotation angle.
type Wheel struct {
	Options []wheel.Option
	Angle   float64 // radians, screen convention (0 right, clockwise)
}

func New(options []wheel.Option, angle float64) Wheel {
	return Wheel{Options: options, Angle: angle}
}

func (w Wheel) Render() string {
	n := len(w.Options)
	if n == 0 {
		return ""
	}

	var (
		centerX   = float64(wheelDotsWidth) / 2
		centerY   = float64(wheelDotsHeight) / 2
		radius    = float64(wheelDotsWidth)/2 - 1
		sectorDeg = 360 / float64(n)
		angleDeg  = w.Angle * 180 / math.Pi
	)

	layers := make([]layer, 0, n)
	for i, opt := range w.Options {
		canvas := drawille.NewCanvas()
		startDeg := normalizeDeg(angleDeg + float64(i)*sectorDeg)
		drawSector(&canvas, centerX, centerY, radius, startDeg, startDeg+sectorDeg)

		layers = append(layers, layer{
			content: canvasFrame(&canvas, wheelDotsWidth, wheelDotsHeight),
			style:   lipgloss.NewStyle().Foreground(lipgloss.Color(opt.Color)),
		})
	}

	pointer := lipgloss.NewStyle().
		Width(charWidth).
		Align(lipgloss.Center).
		Render(pointerGlyph)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		pointer,
		overlayLayers(layers),
	)
}

// normalizeDeg reduces an angle to [0, 360).
func normalizeDeg(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}

// canvasFrame extracts the canvas as a string with exact dimensions,
// padding or truncating each row to the char grid.
func canvasFrame(canvas *drawille.Canvas, width, height int) string {
	var (
		cw   = width / 2
		ch   = height / 4
		rows = canvas.Rows(0, 0, width, height)
	)

	lines := make([]string, 0, ch)
	for i := range ch {
		if i < len(rows) {
			line := rows[i]
			runeCount := len([]rune(line))
			if runeCount < cw {
				line += strings.Repeat(" ", cw-runeCount)
			} else if runeCount > cw {
				line = string([]rune(line)[:cw])
			}
			lines = append(lines, line)
		} else {
			lines = append(lines, strings.Repeat(" ", cw))
		}
	}

	return strings.Join(lines, "\n")
}

const (
	emptyBraille rune = '⠀'
	ansiEscape   rune = '\x1b'
)

type layer struct {
	content string
	style   lipgloss.Style
}

// overlayLayers merges sector layers cell by cell: braille dots are ORed
// together and each cell takes the color of the last layer contributing
// dots there. Sectors only meet at boundary spokes, so the draw order
// only decides which side owns the shared boundary cells.
func overlayLayers(layers []layer) string {
	if len(layers) == 0 {
		return ""
	}

	split := make([][][]rune, len(layers))
	for i, l := range layers {
		for _, line := range strings.Split(l.content, "\n") {
			split[i] = append(split[i], []rune(line))
		}
	}

	var result []string
	for row := range split[0] {
		var lineBuilder strings.Builder
		for col := range split[0][row] {
			merged := emptyBraille
			owner := -1
			for i := range layers {
				if row >= len(split[i]) || col >= len(split[i][row]) {
					continue
				}
				ch := split[i][row][col]
				if isBraille(ch) && ch != emptyBraille {
					merged = combineBraille(merged, ch)
					owner = i
				}
			}

			if owner < 0 {
				lineBuilder.WriteRune(' ')
				continue
			}
			lineBuilder.WriteString(layers[owner].style.Render(string(merged)))
		}
		result = append(result, lineBuilder.String())
	}

	return strings.Join(result, "\n")
}

// isBraille returns true if the rune is a braille character (U+2800 to U+28FF)
func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// combineBraille ORs the dots of two braille characters together
func combineBraille(a, b rune) rune {
	patternA := a - emptyBraille
	patternB := b - emptyBraille
	return emptyBraille + (patternA | patternB)
}

// stripAnsi removes ANSI escape sequences from a string.
func stripAnsi(s string) string {
	var (
		result   strings.Builder
		inEscape = false
	)

	for _, r := range s {
		if r == ansiEscape {
			inEscape = true
			continue
		}
		if inEscape {
			if isAnsiTerminator(r) {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

func isAnsiTerminator(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
