package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/multable/internal/app"
	"github.com/five82/multable/internal/config"
	"github.com/five82/multable/internal/export"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "multable: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "multable",
		Short:         "Build multiplication tables from column and row ranges",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{ConfigPath: configPath})
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "override config path (optional)")

	root.AddCommand(newPrintCmd(&configPath), newExportCmd(&configPath))
	return root
}

func newPrintCmd(configPath *string) *cobra.Command {
	var cols, rows, format string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print a table to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			req, err := app.ResolveRequest(cols, rows, cfg.Defaults)
			if err != nil {
				return err
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			return app.Print(cmd.OutOrStdout(), req, f)
		},
	}
	cmd.Flags().StringVar(&cols, "cols", "", "column range as min:max (default from config)")
	cmd.Flags().StringVar(&rows, "rows", "", "row range as min:max (default from config)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, tsv, yaml, json")
	return cmd
}

func newExportCmd(configPath *string) *cobra.Command {
	var cols, rows, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a table as an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			req, err := app.ResolveRequest(cols, rows, cfg.Defaults)
			if err != nil {
				return err
			}
			path, err := app.ExportFile(cfg, output, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&cols, "cols", "", "column range as min:max (default from config)")
	cmd.Flags().StringVar(&rows, "rows", "", "row range as min:max (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: export_dir from config)")
	return cmd
}
