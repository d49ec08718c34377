package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/at-ishikawa/metaboschema/internal/assets"
	"github.com/at-ishikawa/metaboschema/internal/catalog"
	"github.com/at-ishikawa/metaboschema/internal/clipboard"
	"github.com/at-ishikawa/metaboschema/internal/config"
	"github.com/at-ishikawa/metaboschema/internal/diagram"
	"github.com/at-ishikawa/metaboschema/internal/language"
	"github.com/at-ishikawa/metaboschema/internal/pdf"
	"github.com/at-ishikawa/metaboschema/internal/shell"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// environment is what every command builds a shell from.
type environment struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	scene    *diagram.Scene
	messages *language.Messages
}

func loadEnvironment() (*environment, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("loadConfig() > %w", err)
	}
	cat, err := catalog.Open(cfg.Catalog.File)
	if err != nil {
		return nil, fmt.Errorf("catalog.Open() > %w", err)
	}
	messages, err := language.NewMessages()
	if err != nil {
		return nil, fmt.Errorf("language.NewMessages() > %w", err)
	}
	return &environment{
		cfg:      cfg,
		catalog:  cat,
		scene:    diagram.DefaultScene(),
		messages: messages,
	}, nil
}

func (env *environment) newShell(lang language.Language, opts ...shell.Option) (*shell.Shell, error) {
	opts = append([]shell.Option{shell.WithLogger(slog.Default())}, opts...)
	sh, err := shell.New(env.catalog, env.scene, env.messages, opts...)
	if err != nil {
		return nil, fmt.Errorf("shell.New() > %w", err)
	}
	sh.SetLanguage(lang)
	return sh, nil
}

func (env *environment) newClipboard() shell.Clipboard {
	if env.cfg.Clipboard.Mode == config.ClipboardModeManual {
		return clipboard.Manual{}
	}
	return clipboard.System{}
}

func (env *environment) newExporter(directory string) (shell.Exporter, error) {
	if directory == "" {
		directory = env.cfg.Export.Directory
	}
	tmpl, err := assets.ParseReferenceTemplate(env.cfg.Templates.ReferenceTemplate)
	if err != nil {
		return nil, fmt.Errorf("assets.ParseReferenceTemplate() > %w", err)
	}
	return pdf.NewExporter(directory, tmpl, env.cfg.Export.Orientation, env.cfg.Export.PageSize), nil
}

func addLanguageFlag(flags *pflag.FlagSet, lang *string) {
	flags.StringVar(lang, "lang", string(language.English), "display language (en or ar)")
}
