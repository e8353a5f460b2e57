package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Ricardo-TDP/ruleta/internal/loader"
)

// frameCmd schedules the next animation step. The spin loop is the chain
// of these commands: each FrameMsg reschedules exactly one successor
// while the animator is spinning, and none once it reaches Idle.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

func loadOptionsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		opts, err := loader.Load(context.Background(), path)
		return OptionsLoadedMsg{Options: opts, Err: err}
	}
}
