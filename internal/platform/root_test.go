package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/todos/internal/config"
)

func TestFindConfig(t *testing.T) {
	// /tmp/
	//   project/ (todos.yaml)
	//     subdir/
	//       nested/
	//   empty/
	//   decoy/todos.yaml/ (directory, ignored)

	baseDir := t.TempDir()
	projectDir := filepath.Join(baseDir, "project")
	subDir := filepath.Join(projectDir, "subdir")
	nestedDir := filepath.Join(subDir, "nested")
	emptyDir := filepath.Join(baseDir, "empty")
	decoyDir := filepath.Join(baseDir, "decoy")

	for _, dir := range []string{nestedDir, emptyDir, filepath.Join(decoyDir, config.FileName)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatal(err)
		}
	}

	configPath := filepath.Join(projectDir, config.FileName)
	if err := os.WriteFile(configPath, []byte("log_level: info\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		startPath string
		want      string
		wantErr   bool
	}{
		{"Start at Root", projectDir, configPath, false},
		{"Start in Subdir", subDir, configPath, false},
		{"Start Nested Deeply", nestedDir, configPath, false},
		{"No Config Found", emptyDir, "", true},
		{"Directory Named Like Config", decoyDir, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindConfig(tt.startPath)
			if (err != nil) != tt.wantErr {
				t.Errorf("FindConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if got != "" && filepath.Clean(got) != filepath.Clean(tt.want) {
				t.Errorf("FindConfig() = %v, want %v", got, tt.want)
			}
		})
	}
}
