package tui

import (
	"time"

	"github.com/Ricardo-TDP/ruleta/internal/wheel"
)

// FrameMsg is one animation step. At carries the tick's timestamp so the
// animator is driven by the scheduler's clock, not its own.
type FrameMsg struct {
	At time.Time
}

// OptionsLoadedMsg carries the result of an options (re)load.
type OptionsLoadedMsg struct {
	Options []wheel.Option
	Err     error
}
