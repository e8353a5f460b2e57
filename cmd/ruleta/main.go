package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Ricardo-TDP/ruleta/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "ruleta",
		Short:   "A spinning-wheel selector in your terminal",
		Version: version.Get(),
		RunE:    runTUI,
	}
	rootCmd.Flags().StringP("options", "o", "", "options feed (json, yaml, or sqlite db)")

	rootCmd.AddCommand(spinCmd())
	rootCmd.AddCommand(optionsCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
