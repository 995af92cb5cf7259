package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/aretw0/lifecycle"
	"github.com/spf13/cobra"

	"github.com/aretw0/todos"
	"github.com/aretw0/todos/internal/config"
	todolifecycle "github.com/aretw0/todos/pkg/adapters/lifecycle"
	"github.com/aretw0/todos/pkg/core"
)

var (
	serveTrace       bool
	serveTraceTypes  []string
	serveWatchConfig bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Answer calls read from stdin, one JSON request per line",
	Long: `Serve reads requests such as

  {"id":1,"method":"add","params":{"text":"buy milk"}}

from standard input and writes one JSON response per line to standard output.
Methods: add, remove, get, update, paginate (alias list), greet, state.
Unknown ids yield "result": null, never an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		logger := slog.Default()
		server, svc, err := todos.NewServer(
			todos.WithLogger(logger),
			todos.WithConfig(cfg),
		)
		if err != nil {
			return err
		}

		if serveTrace {
			if err := traceEvents(ctx, svc, logger); err != nil {
				return err
			}
		}

		if serveWatchConfig {
			if configPath == "" {
				logger.Warn("no config file to watch")
			} else if err := config.Watch(ctx, configPath, logger, func(c config.Config) {
				if err := applyLevel(c); err != nil {
					logger.Warn("log level not applied", "error", err)
					return
				}
				logger.Info("log level changed", "level", logLevel.Level())
			}); err != nil {
				return err
			}
		}

		logger.Debug("serving", "methods", server.Methods())
		return server.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// traceEvents logs the change events of svc until ctx is done, limited to
// --trace-types when given.
func traceEvents(ctx context.Context, svc *core.Service, logger *slog.Logger) error {
	types := make([]core.EventType, 0, len(serveTraceTypes))
	for _, name := range serveTraceTypes {
		t, err := core.ParseEventType(name)
		if err != nil {
			return err
		}
		types = append(types, t)
	}

	src := todolifecycle.NewSource(svc.Watch(ctx), todolifecycle.WithTypes(types...))
	if err := src.Start(ctx); err != nil {
		return err
	}
	lifecycle.Go(ctx, func(ctx context.Context) error {
		for e := range src.Events() {
			logger.Info("todo changed", "event", e.String())
		}
		return nil
	})
	return nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().BoolVar(&serveTrace, "trace", false, "Log every change event")
	serveCmd.Flags().StringSliceVar(&serveTraceTypes, "trace-types", nil, "Event types to trace: create, modify, delete (default: all)")
	serveCmd.Flags().BoolVar(&serveWatchConfig, "watch-config", false, "Reload the log level when the config file changes")
}
