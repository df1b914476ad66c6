package main

import (
	"log/slog"
	"net/http"
	"os"

	"displaytest/internal/config"
	"displaytest/internal/export"
	"displaytest/internal/server"
	"displaytest/internal/tools"

	"github.com/brody192/logger"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:           "displaytest",
		Short:         "Display Test website",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "export [dir]",
		Short: "Write the site as static files (default ./dist)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "dist"
			if len(args) == 1 {
				dir = args[0]
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			return export.ToDir(cfg, tools.Abs(dir))
		},
	})

	if err := rootCmd.Execute(); err != nil {
		logger.Stderr.Error("command failed", logger.ErrAttr(err))
		os.Exit(1)
	}
}

func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.DevMode() {
		logger.Stdout.Info("running in dev mode", slog.String("info", "unset ENV=dev to run in prod"))
	} else {
		logger.Stdout.Info("running in prod mode", slog.String("info", "set ENV=dev to run in dev"))
	}

	reg := prom.NewRegistry()

	r, err := server.NewRouter(cfg, reg)
	if err != nil {
		return err
	}

	logger.Stdout.Info("starting server", slog.String("port", cfg.Port), slog.String("site_url", cfg.SiteURL))

	return http.ListenAndServe((":" + cfg.Port), r)
}
