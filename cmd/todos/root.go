package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/todos"
	"github.com/aretw0/todos/internal/config"
)

var (
	verbose    bool
	configPath string

	// cfg is resolved once per invocation by PersistentPreRunE.
	cfg      = config.Default()
	logLevel = new(slog.LevelVar)
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "todos",
	Short: "An in-memory todo service driven by line-delimited JSON calls",
	Long: `todos keeps a list of todo items in memory and answers remote-procedure-style
calls (add, remove, get, update, paginate) read one JSON object per line.
State lives as long as the process does.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		cfg = config.Default()
		if path != "" {
			loaded, err := todos.LoadConfig(path)
			if err != nil {
				return err
			}
			cfg = loaded
			configPath = path
		}

		if err := applyLevel(cfg); err != nil {
			return err
		}
		slog.SetDefault(newLogger(cmd.ErrOrStderr(), cfg.LogFormat))
		slog.Debug("configuration resolved", "path", configPath, "level", logLevel.Level())
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to todos.yaml (default: searched upwards from the working directory)")
}

// resolveConfigPath returns the explicit --config path, or the nearest
// todos.yaml above the working directory, or "" when there is none.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	path, err := todos.FindConfig(wd)
	if err != nil {
		// No config file is the normal case.
		return "", nil
	}
	return path, nil
}

// applyLevel sets the shared level from c; --verbose always wins.
func applyLevel(c config.Config) error {
	if verbose {
		logLevel.Set(slog.LevelDebug)
		return nil
	}
	level, err := c.Level()
	if err != nil {
		return err
	}
	logLevel.Set(level)
	return nil
}

func newLogger(w io.Writer, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: logLevel,
	}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
