package platform

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/todos/internal/config"
)

// FindConfig recursively looks upwards from startDir for a todos.yaml file
// and returns its absolute path.
func FindConfig(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		if hasFile(dir, config.FileName) {
			return filepath.Join(dir, config.FileName), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%s not found", config.FileName)
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && !info.IsDir()
}
