package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTypes(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mime.types")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestRun_MissingArgument(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Equal(t, usage+"\n", stderr.String())
}

func TestRun_MissingFile(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	path := filepath.Join(t.TempDir(), "missing.types")
	code := run([]string{path}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "level=error")
	assert.Contains(t, stderr.String(), "missing.types")
}

func TestRun_Example(t *testing.T) {
	t.Parallel()

	path := writeTypes(t, "text/html html htm\nimage/png png\n# comment\napplication/json json\n")

	var stdout, stderr bytes.Buffer

	code := run([]string{path}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	expected := `typedef struct {
    char const *const Extension;
    char const *const Type;
} mimeType;

const mimeType mTypes[] = {
    {".html", "text/html\r\n"},
    {".htm", "text/html\r\n"},
    {".png", "image/png\r\n"},
    {".json", "application/json\r\n"},
};
`

	assert.Equal(t, expected, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_MalformedLineContinues(t *testing.T) {
	t.Parallel()

	path := writeTypes(t, "text/plain\ntext/css css\n")

	var stdout, stderr bytes.Buffer

	code := run([]string{path}, &stdout, &stderr)
	require.Equal(t, 0, code)

	assert.Contains(t, stdout.String(), `{".css", "text/css\r\n"},`)
	assert.NotContains(t, stdout.String(), "text/plain")

	logged := stderr.String()
	assert.Contains(t, logged, "level=warning")
	assert.Contains(t, logged, "code=MALFORMED_LINE")
	assert.Contains(t, logged, "line=1")
	assert.Contains(t, logged, "text/plain")
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	path := writeTypes(t, "text/html html htm\nimage/png png\n")

	var first, second bytes.Buffer

	require.Equal(t, 0, run([]string{path}, &first, &bytes.Buffer{}))
	require.Equal(t, 0, run([]string{path}, &second, &bytes.Buffer{}))

	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestRun_ExtraArgumentsIgnored(t *testing.T) {
	t.Parallel()

	path := writeTypes(t, "image/png png\n")

	var stdout bytes.Buffer

	code := run([]string{path, "ignored"}, &stdout, &bytes.Buffer{})
	require.Equal(t, 0, code)

	assert.Equal(t, 1, strings.Count(stdout.String(), `{".`))
}

func TestRun_DirectoryPath(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	code := run([]string{t.TempDir()}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "level=error")
	assert.Contains(t, stderr.String(), "reading line 1")
}

func TestRun_EmptyTableWarns(t *testing.T) {
	t.Parallel()

	path := writeTypes(t, "# nothing here\n")

	var stdout, stderr bytes.Buffer

	code := run([]string{path}, &stdout, &stderr)
	require.Equal(t, 0, code)

	assert.Contains(t, stdout.String(), "const mimeType mTypes[] = {\n};\n")
	assert.Contains(t, stderr.String(), "level=warning")
	assert.Contains(t, stderr.String(), "code=EMPTY_TABLE")
}
