// Package wheel holds the wheel's option list and rotation angle and maps
// a final angle to the winning option.
//
// Angle convention follows 2D canvas coordinates: 0 points right and
// angles increase clockwise. The pointer sits at the top of the wheel,
// at 3π/2 in that frame.
package wheel

import (
	"errors"
	"math"
)

// PointerAngle is the fixed pointer position in the wheel's rotation frame.
const PointerAngle = 3 * math.Pi / 2

// Model owns the ordered option list and the current rotation angle.
// It is mutated only from the single animation-step callback and from
// user-triggered loads, never concurrently.
type Model struct {
	options []Option
	angle   float64
}

func New() *Model {
	return &Model{}
}

// Load atomically replaces the option set. An empty sequence fails with
// ErrEmptyOptionSet and leaves the prior options untouched. Options with
// a missing or malformed color get the palette color for their index.
// The rotation angle persists across loads.
func (m *Model) Load(opts []Option) error {
	if len(opts) == 0 {
		return ErrEmptyOptionSet
	}

	loaded := make([]Option, len(opts))
	for i, opt := range opts {
		if opt.DisplayText == "" {
			opt.DisplayText = opt.Label
		}
		c, err := ParseColor(opt.Color)
		if err != nil {
			c = PaletteColor(i)
		}
		opt.Color = c
		loaded[i] = opt
	}

	m.options = loaded
	return nil
}

// Options returns the loaded options. Callers must not mutate the slice.
func (m *Model) Options() []Option {
	return m.options
}

func (m *Model) Count() int {
	return len(m.options)
}

func (m *Model) Angle() float64 {
	return m.angle
}

// SetAngle stores the current rotation angle. The angle is not normalized
// here: it accumulates unbounded during a spin and is reduced to [0, 2π)
// only at spin completion.
func (m *Model) SetAngle(a float64) {
	m.angle = a
}

// NormalizeAngle reduces the stored angle to [0, 2π) and returns it.
func (m *Model) NormalizeAngle() float64 {
	m.angle = Normalize(m.angle)
	return m.angle
}

func (m *Model) ResetAngle() {
	m.angle = 0
}

// SectorAngle returns the angular width of one sector, 2π/n.
// Undefined for an empty wheel; callers guard on Count.
func (m *Model) SectorAngle() float64 {
	return 2 * math.Pi / float64(len(m.options))
}

// Sector returns the half-open angular span [start, end) of option i in
// screen coordinates, accounting for the current rotation.
func (m *Model) Sector(i int) (start, end float64) {
	sector := m.SectorAngle()
	start = m.angle + float64(i)*sector
	return start, start + sector
}

// WinnerIndex maps a final rotation angle to the index of the sector
// under the pointer, or -1 for an empty wheel.
//
// The sector under the pointer is the one whose span, in the wheel's own
// frame, contains PointerAngle − finalAngle. The result depends only on
// finalAngle mod 2π. The index is clamped to guard floating-point edge
// cases at the 2π boundary.
func (m *Model) WinnerIndex(finalAngle float64) int {
	n := len(m.options)
	if n == 0 {
		return -1
	}

	pointer := Normalize(PointerAngle - finalAngle)
	idx := int(math.Floor(pointer / m.SectorAngle()))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// ResolveWinner returns the option under the pointer for the given final
// angle. ok is false for an empty wheel.
func (m *Model) ResolveWinner(finalAngle float64) (Option, bool) {
	idx := m.WinnerIndex(finalAngle)
	if idx < 0 {
		return Option{}, false
	}
	return m.options[idx], true
}

// Normalize reduces an angle to the canonical range [0, 2π). The double
// mod keeps the result non-negative for negative inputs.
func Normalize(x float64) float64 {
	const tau = 2 * math.Pi
	return math.Mod(math.Mod(x, tau)+tau, tau)
}

// IsEmptyOptionSet reports whether err is (or wraps) ErrEmptyOptionSet.
func IsEmptyOptionSet(err error) bool {
	return errors.Is(err, ErrEmptyOptionSet)
}
