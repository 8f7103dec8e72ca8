package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tests := []struct {
		name         string
		files        map[string]string
		args         []string
		expectedExit int
	}{
		{
			name: "Success with offline registry",
			files: map[string]string{
				"pin.yaml": `version: "1"
dependencies:
  runtime:
    - name: spdlog
      version: "~1.12"
      manager: cpm
resolution:
  strategy: eager
  cache:
    enabled: false
`,
				"pin-registry.yaml": `packages:
  spdlog: [fmt]
  fmt: []
`,
			},
			args:         []string{"pin", "resolve"},
			expectedExit: 0,
		},
		{
			name:         "Error with missing manifest",
			files:        map[string]string{},
			args:         []string{"pin", "resolve"},
			expectedExit: 1,
		},
		{
			name: "Verify without lockfile fails",
			files: map[string]string{
				"pin.yaml": `dependencies:
  runtime:
    - name: fmt
      version: "10.1.0"
`,
			},
			args:         []string{"pin", "verify"},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			for name, content := range tt.files {
				if err := os.WriteFile(tmpDir+"/"+name, []byte(content), 0o600); err != nil {
					t.Fatalf("failed to write %s: %v", name, err)
				}
			}

			originalWd, _ := os.Getwd()
			if err := os.Chdir(tmpDir); err != nil {
				t.Fatalf("failed to chdir: %v", err)
			}
			defer func() {
				_ = os.Chdir(originalWd)
			}()

			os.Args = tt.args

			exitCode := run()
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}
