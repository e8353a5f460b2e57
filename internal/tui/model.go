package tui

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Ricardo-TDP/ruleta/internal/spin"
	"github.com/Ricardo-TDP/ruleta/internal/tui/theme"
	"github.com/Ricardo-TDP/ruleta/internal/wheel"
	"github.com/Ricardo-TDP/ruleta/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

// Deps are the collaborators injected into the TUI; the wheel and
// animator are owned here and mutated only from Update.
type Deps struct {
	Wheel         *wheel.Model
	Animator      *spin.Animator
	OptionsPath   string
	FrameInterval time.Duration
	Logger        *slog.Logger
}

type Model struct {
	ready          bool
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	deps           Deps

	loadErr     error
	winnerIndex int
}

func New(deps Deps) Model {
	if deps.FrameInterval <= 0 {
		deps.FrameInterval = 33 * time.Millisecond
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return Model{
		theme:       theme.New(),
		deps:        deps,
		winnerIndex: -1,
	}
}

func (m *Model) Init() tea.Cmd {
	return loadOptionsCmd(m.deps.OptionsPath)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "space", " ", "enter":
			return m, m.startSpin()
		case "r":
			// reloads are rejected mid-spin so the sector count cannot
			// change under the animation
			if m.deps.Animator.Spinning() {
				return m, nil
			}
			return m, loadOptionsCmd(m.deps.OptionsPath)
		}

	case FrameMsg:
		return m, m.stepSpin(msg.At)

	case OptionsLoadedMsg:
		if msg.Err != nil {
			// prior options stay usable; only the error surface changes
			m.loadErr = msg.Err
			m.deps.Logger.Error("options load failed", xslog.Error(msg.Err))
			return m, nil
		}
		if err := m.deps.Wheel.Load(msg.Options); err != nil {
			m.loadErr = err
			return m, nil
		}
		m.loadErr = nil
		m.winnerIndex = -1
	}

	return m, nil
}

// startSpin begins a spin from the wheel's current angle. A spin request
// while one is running, or on an empty wheel, is silently ignored.
func (m *Model) startSpin() tea.Cmd {
	job, ok := m.deps.Animator.Start(m.deps.Wheel.Angle(), m.deps.Wheel.Count(), time.Now())
	if !ok {
		return nil
	}

	m.winnerIndex = -1
	m.deps.Logger.Info("spin started",
		slog.String("job_id", job.ID.String()),
		slog.Duration("duration", job.Duration),
		slog.Float64("total_rotation", job.TotalRotation),
	)
	return frameCmd(m.deps.FrameInterval)
}

// stepSpin advances one animation frame. While the spin runs it updates
// the angle and schedules the next frame; on the completing frame it
// resolves the winner and schedules nothing, ending the loop.
func (m *Model) stepSpin(at time.Time) tea.Cmd {
	if !m.deps.Animator.Spinning() {
		// stale frame after completion
		return nil
	}

	angle, done := m.deps.Animator.Step(at)
	m.deps.Wheel.SetAngle(angle)
	if !done {
		return frameCmd(m.deps.FrameInterval)
	}

	m.winnerIndex = m.deps.Wheel.WinnerIndex(angle)
	if winner, ok := m.deps.Wheel.ResolveWinner(angle); ok {
		m.deps.Logger.Info("spin finished",
			slog.Float64("final_angle", angle),
			slog.String("winner", winner.Label),
		)
	}
	return nil
}

// Winner returns the option picked by the last completed spin.
func (m *Model) Winner() (wheel.Option, bool) {
	if m.winnerIndex < 0 || m.winnerIndex >= m.deps.Wheel.Count() {
		return wheel.Option{}, false
	}
	return m.deps.Wheel.Options()[m.winnerIndex], true
}
