package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ricardo-TDP/ruleta/internal/config"
	"github.com/Ricardo-TDP/ruleta/internal/loader"
	"github.com/Ricardo-TDP/ruleta/internal/paths"
)

func optionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Manage the sqlite options store",
	}
	cmd.PersistentFlags().String("db", "", "path to the options database")

	cmd.AddCommand(optionsImportCmd())
	cmd.AddCommand(optionsListCmd())
	return cmd
}

func optionsImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored option set from a json or yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loader.Load(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load options: %w", err)
			}

			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Import(cmd.Context(), opts); err != nil {
				return fmt.Errorf("failed to import options: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d options\n", len(opts))
			return nil
		},
	}
}

func optionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the stored option set",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			opts, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, opt := range opts {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", opt.Label, opt.DisplayText, opt.Color)
			}
			return nil
		},
	}
}

func openStore(cmd *cobra.Command) (*loader.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		cfg, err := config.Read()
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		if _, err := paths.EnsureDir(); err != nil {
			return nil, err
		}
		p, err := paths.DB()
		if err != nil {
			return nil, err
		}
		dbPath = p
	}

	return loader.OpenStore(dbPath)
}
