package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/metaboschema/internal/assets"
	"github.com/at-ishikawa/metaboschema/internal/bootstrap"
	"github.com/at-ishikawa/metaboschema/internal/catalog"
	"github.com/at-ishikawa/metaboschema/internal/clipboard"
	"github.com/at-ishikawa/metaboschema/internal/config"
	"github.com/at-ishikawa/metaboschema/internal/diagram"
	"github.com/at-ishikawa/metaboschema/internal/language"
	"github.com/at-ishikawa/metaboschema/internal/metrics"
	"github.com/at-ishikawa/metaboschema/internal/pdf"
	"github.com/at-ishikawa/metaboschema/internal/server"
	"github.com/at-ishikawa/metaboschema/internal/shell"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "metaboschema-server",
		Short:         "Serve the interactive oxidation diagram over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})))
}

func run(ctx context.Context) error {
	app := bootstrap.New()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}
	deps, err := newDependencies(cfg)
	if err != nil {
		return err
	}

	srv, err := server.New(server.Config{
		Port:           cfg.Server.Port,
		AllowedOrigins: cfg.Server.CORS.AllowedOrigins,
		MaxSessions:    cfg.Sessions.MaxEntries,
	}, deps)
	if err != nil {
		return fmt.Errorf("server.New() > %w", err)
	}
	app.AddShutdownHook("http", srv.Shutdown)

	return app.Run(ctx, func(ctx context.Context) error {
		return srv.Start()
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}

func newDependencies(cfg *config.Config) (server.Dependencies, error) {
	cat, err := catalog.Open(cfg.Catalog.File)
	if err != nil {
		return server.Dependencies{}, fmt.Errorf("catalog.Open() > %w", err)
	}
	messages, err := language.NewMessages()
	if err != nil {
		return server.Dependencies{}, fmt.Errorf("language.NewMessages() > %w", err)
	}
	reference, err := assets.ParseReferenceTemplate(cfg.Templates.ReferenceTemplate)
	if err != nil {
		return server.Dependencies{}, fmt.Errorf("assets.ParseReferenceTemplate() > %w", err)
	}

	// The system clipboard is the one of the host running the server, which is only the
	// user's when the browser runs on the same machine.
	newClipboard := func() shell.Clipboard {
		if cfg.Clipboard.Mode == config.ClipboardModeManual {
			return clipboard.Manual{}
		}
		return clipboard.System{}
	}
	sessionDirectory := func(sessionID string) string {
		return filepath.Join(cfg.Export.Directory, sessionID)
	}

	return server.Dependencies{
		Catalog:   cat,
		Scene:     diagram.DefaultScene(),
		Messages:  messages,
		Reference: reference,
		Clipboard: newClipboard,
		Exporter: func(sessionID string) shell.Exporter {
			return pdf.NewExporter(sessionDirectory(sessionID), reference, cfg.Export.Orientation, cfg.Export.PageSize)
		},
		Release: func(sessionID string) {
			if err := os.RemoveAll(sessionDirectory(sessionID)); err != nil {
				slog.Warn("failed to remove the export directory of a session",
					slog.String("session", sessionID),
					slog.Any("error", err),
				)
			}
		},
		Metrics: metrics.New(),
		Logger:  slog.Default(),
	}, nil
}
