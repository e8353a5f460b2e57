package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/Ricardo-TDP/ruleta/internal/config"
	"github.com/Ricardo-TDP/ruleta/internal/paths"
	"github.com/Ricardo-TDP/ruleta/internal/spin"
	"github.com/Ricardo-TDP/ruleta/internal/tui"
	"github.com/Ricardo-TDP/ruleta/internal/wheel"
	"github.com/Ricardo-TDP/ruleta/internal/xslog"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	optionsPath, _ := cmd.Flags().GetString("options")
	if optionsPath == "" {
		optionsPath = cfg.OptionsPath
	}

	// the TUI owns the terminal; logs go to a file instead of stderr
	logPath, err := paths.Log()
	if err != nil {
		return err
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = logFile.Close() }()

	deps := tui.Deps{
		Wheel:         wheel.New(),
		Animator:      spin.New(spin.DefaultPolicy()),
		OptionsPath:   optionsPath,
		FrameInterval: cfg.FrameInterval(),
		Logger:        xslog.NewLoggerFromEnv(logFile),
	}
	model := tui.New(deps)

	p := tea.NewProgram(&model)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	return nil
}
