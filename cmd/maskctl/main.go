// Package main implements maskctl, a command-line tool for formatting values
// with input masks and trying masked fields in the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inputmask/pkg/config"
	"github.com/dmitrymomot/inputmask/pkg/logger"
	"github.com/dmitrymomot/inputmask/pkg/mask"
)

// version information
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// app is the state shared by all commands of one invocation.
type app struct {
	// envFiles are .env files loaded before settings are parsed
	envFiles []string
	// fieldsFile overrides MASKCTL_FIELDS_FILE
	fieldsFile string
	// logLevel overrides MASKCTL_LOG_LEVEL
	logLevel string

	settings config.Settings
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: logger.Discard()}

	root := &cobra.Command{
		Use:   "maskctl",
		Short: "Format and unformat values with input masks",
		Long: `maskctl applies input masks such as "(NNN) NNN-NNNN" to values.

Mask tokens:
  N  digit
  S  letter
  A  letter or digit
  C  any non-space character
  X  any character

Every other character in a mask is a literal.`,
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "load environment from .env files (later files win)")
	root.PersistentFlags().StringVar(&a.fieldsFile, "fields", "", "field definition file (default $MASKCTL_FIELDS_FILE)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.AddCommand(newFormatCmd(a))
	root.AddCommand(newUnformatCmd(a))
	root.AddCommand(newFieldsCmd(a))
	root.AddCommand(newDemoCmd(a))
	return root
}

// setup loads settings and configures logging for every command.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if len(a.envFiles) > 0 {
		if err := config.LoadEnv(a.envFiles...); err != nil {
			return err
		}
	}

	s, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if a.fieldsFile != "" {
		s.FieldsFile = a.fieldsFile
	}
	if a.logLevel != "" {
		s.LogLevel = a.logLevel
	}
	a.settings = s

	opts := []logger.Option{
		logger.WithEnvironment(s.Env, "maskctl"),
		logger.WithLevel(logger.ParseLevel(s.LogLevel)),
		logger.WithOutput(cmd.ErrOrStderr()),
		logger.WithBufferMarker('_'),
	}
	switch f := logger.Format(s.LogFormat); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return fmt.Errorf("invalid log format %q", s.LogFormat)
	}
	a.log = logger.New(opts...)
	a.log.Debug("settings loaded",
		slog.String("env", s.Env),
		slog.String("fields_file", s.FieldsFile),
	)
	return nil
}

// loadFields reads the configured field definition file.
func (a *app) loadFields() (config.Fields, mask.Tokens, error) {
	fs, err := config.LoadFieldsFile(a.settings.FieldsFile)
	if err != nil {
		return config.Fields{}, mask.Tokens{}, fmt.Errorf("failed to load fields from %s: %w", a.settings.FieldsFile, err)
	}
	tokens, err := fs.TokenTable()
	if err != nil {
		return config.Fields{}, mask.Tokens{}, err
	}
	return fs, tokens, nil
}
