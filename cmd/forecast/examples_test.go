package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExamples runs every examples/<name> directory holding plan.yaml, an
// input.yaml or input.json file and the expected.json result.
func TestExamples(t *testing.T) {
	t.Parallel()

	root, err := filepath.Abs(filepath.Join("..", "..", "examples"))
	require.NoError(t, err)

	dirs, err := os.ReadDir(root)
	require.NoError(t, err)
	require.NotEmpty(t, dirs)

	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}

		dir := filepath.Join(root, d.Name())

		t.Run(d.Name(), func(t *testing.T) {
			t.Parallel()

			input := filepath.Join(dir, "input.yaml")
			if _, err := os.Stat(input); err != nil {
				input = filepath.Join(dir, "input.json")
			}

			expected, err := os.ReadFile(filepath.Join(dir, "expected.json"))
			require.NoError(t, err)

			out := &bytes.Buffer{}
			err = run(out, []string{"-plan", filepath.Join(dir, "plan.yaml"), "-in", input, "-format", "json"})
			require.NoError(t, err)

			assert.JSONEq(t, string(expected), out.String())
		})
	}
}
