package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamples(t *testing.T) {
	t.Parallel()

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)

	dirs, err := filepath.Glob(filepath.Join(repoRoot, "examples", "*"))
	require.NoError(t, err)
	require.NotEmpty(t, dirs)

	for _, dir := range dirs {
		dir := dir
		t.Run(filepath.Base(dir), func(t *testing.T) {
			t.Parallel()

			expected, err := os.ReadFile(filepath.Join(dir, "mime-types.h"))
			require.NoError(t, err)

			var stdout, stderr bytes.Buffer

			code := run([]string{filepath.Join(dir, "mime.types")}, &stdout, &stderr)
			require.Equal(t, 0, code, stderr.String())

			assert.Equal(t, string(expected), stdout.String())
		})
	}
}
