package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	ClipboardModeSystem = "system"
	// ClipboardModeManual shows the notation for a manual copy, for hosts whose clipboard
	// is not the user's.
	ClipboardModeManual = "manual"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Templates TemplatesConfig `mapstructure:"templates"`
	Export    ExportConfig    `mapstructure:"export"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Sessions  SessionsConfig  `mapstructure:"sessions"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type CatalogConfig struct {
	// File overrides the embedded catalog.
	File string `mapstructure:"file" validate:"omitempty,file"`
}

type TemplatesConfig struct {
	ReferenceTemplate string `mapstructure:"reference_template" validate:"omitempty,file"`
}

type ExportConfig struct {
	Directory   string `mapstructure:"directory" validate:"required"`
	Orientation string `mapstructure:"orientation" validate:"oneof=P L"`
	PageSize    string `mapstructure:"page_size" validate:"oneof=A4 Letter Legal"`
}

type ClipboardConfig struct {
	Mode string `mapstructure:"mode" validate:"oneof=system manual"`
}

type SessionsConfig struct {
	MaxEntries int `mapstructure:"max_entries" validate:"min=1"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/metaboschema")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:8080"})
	// Empty paths fall back to the embedded catalog and template
	v.SetDefault("catalog.file", "")
	v.SetDefault("templates.reference_template", "")
	v.SetDefault("export.directory", filepath.Join("outputs", "export"))
	v.SetDefault("export.orientation", "P")
	v.SetDefault("export.page_size", "A4")
	v.SetDefault("clipboard.mode", ClipboardModeSystem)
	v.SetDefault("sessions.max_entries", 1024)

	if err := v.BindEnv("server.port", "METABOSCHEMA_PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind METABOSCHEMA_PORT environment variable: %w", err)
	}
	if err := v.BindEnv("clipboard.mode", "METABOSCHEMA_CLIPBOARD"); err != nil {
		return nil, fmt.Errorf("failed to bind METABOSCHEMA_CLIPBOARD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validate(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (loader *ConfigLoader) validate(value any) error {
	err := loader.validator.Struct(value)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("loader.validator.Struct() > %w", err)
	}
	var errorMsgs []string
	for _, e := range validationErrors {
		errorMsgs = append(errorMsgs, e.Translate(loader.translator))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
}
