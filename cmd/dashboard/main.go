package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"revenue-dashboard/internal/bootstrap"
	"revenue-dashboard/internal/platform/config"
	"revenue-dashboard/internal/platform/log"
	"revenue-dashboard/internal/reporting/adapters/sqlstore"
)

// @title Revenue Dashboard API
// @version 1.0
// @description Earned and unearned revenue dashboards with reactive chart views.
// @host localhost:8080
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dashboard",
		Short:         "Revenue reporting dashboards",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newRenderCmd())
	root.AddCommand(newQueriesCmd())
	return root
}

func loadConfig() (*config.Config, *log.Logger, error) {
	cfg := config.Load()
	logger := log.New(log.Config{Level: log.ParseLevel(cfg.LogLevel), Component: log.ComponentApp})
	log.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load every dashboard and serve them over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := bootstrap.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			return app.Serve(ctx)
		},
	}
}

func newRenderCmd() *cobra.Command {
	var (
		dashboard string
		out       string
		format    string
		selection []string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render every view of a dashboard to image files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			cfg.Dashboards = []string{dashboard}

			app, err := bootstrap.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			var sel []string
			if cmd.Flags().Changed("select") {
				sel = selection
				if sel == nil {
					sel = []string{}
				}
			}

			paths, err := app.Export(dashboard, sel, out, format)
			if err != nil {
				return err
			}
			for _, p := range paths {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dashboard, "dashboard", "geography", "Dashboard to render: geography | productline")
	cmd.Flags().StringVar(&out, "out", "./out", "Output directory")
	cmd.Flags().StringVar(&format, "format", "png", "Image format: png | svg")
	cmd.Flags().StringSliceVar(&selection, "select", nil, "Selection control values (comma separated); defaults to the configured selection")
	return cmd
}

func newQueriesCmd() *cobra.Command {
	var showSQL bool

	cmd := &cobra.Command{
		Use:   "queries",
		Short: "List the fixed query catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tKEY\tVALUE\tDATE")
			for _, q := range sqlstore.Catalog() {
				date := q.DateColumn
				if date == "" {
					date = "-"
				}
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", q.ID, q.KeyColumn, q.ValueColumn, date)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if !showSQL {
				return nil
			}
			for _, q := range sqlstore.Catalog() {
				stmt, _ := sqlstore.Statement(q.ID)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\n-- %s\n%s\n", q.ID, strings.TrimSpace(stmt))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSQL, "sql", false, "Print the SQL text of every query")
	return cmd
}

