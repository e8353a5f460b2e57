package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ricardo-TDP/ruleta/internal/config"
	"github.com/Ricardo-TDP/ruleta/internal/loader"
	"github.com/Ricardo-TDP/ruleta/internal/spin"
	"github.com/Ricardo-TDP/ruleta/internal/wheel"
	"github.com/Ricardo-TDP/ruleta/internal/xslog"
)

func spinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spin",
		Short: "Spin once without the TUI and print the winner",
		Long:  "Runs the same spin math as the interactive wheel, evaluated at full progress, and prints the winning option.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Read()
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			optionsPath, _ := cmd.Flags().GetString("options")
			if optionsPath == "" {
				optionsPath = cfg.OptionsPath
			}

			logger := xslog.NewTextLogger(os.Stderr, xslog.FromEnv())

			opts, err := loader.Load(cmd.Context(), optionsPath)
			if err != nil {
				return fmt.Errorf("failed to load options: %w", err)
			}

			model := wheel.New()
			if err := model.Load(opts); err != nil {
				return err
			}

			animator := spin.New(spin.DefaultPolicy(), seedOption(cmd))

			now := time.Now()
			job, ok := animator.Start(model.Angle(), model.Count(), now)
			if !ok {
				return fmt.Errorf("failed to start spin")
			}
			logger.Info("spin started",
				"job_id", job.ID.String(),
				"total_rotation", job.TotalRotation,
			)

			// skip the animation: evaluate the job at full progress
			final, _ := animator.Step(now.Add(job.Duration))
			model.SetAngle(final)

			winner, ok := model.ResolveWinner(final)
			if !ok {
				return wheel.ErrEmptyOptionSet
			}

			fmt.Fprintln(cmd.OutOrStdout(), winner.DisplayText)
			return nil
		},
	}

	cmd.Flags().StringP("options", "o", "", "options feed (json, yaml, or sqlite db)")
	cmd.Flags().Int64("seed", 0, "random seed for a reproducible spin (0 = random)")
	return cmd
}

func seedOption(cmd *cobra.Command) spin.Option {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return spin.WithRand(rand.New(rand.NewSource(seed)))
}
