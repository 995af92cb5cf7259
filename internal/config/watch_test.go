package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aretw0/todos/internal/config"
)

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan config.Config, 16)
	require.NoError(t, config.Watch(ctx, path, nil, func(c config.Config) {
		changes <- c
	}))

	// Invalid edits are skipped, the watcher keeps running.
	require.NoError(t, os.WriteFile(path, []byte("log_level: loud\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0644))

	timeout := time.After(2 * time.Second)
	for {
		select {
		case c := <-changes:
			if c.LogLevel == "debug" {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for reload")
		}
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := config.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", config.FileName), nil, func(config.Config) {})
	require.Error(t, err)
}
