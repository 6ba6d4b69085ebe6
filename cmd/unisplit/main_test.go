package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Literal(t *testing.T) {
	code, out, _ := runCLI(t, "", "-literal", "lines", "a\r\nb\nc", "x")
	require.Equal(t, exitOK, code)
	assert.JSONEq(t, `[["a","b","c"],["x"]]`, out)

	code, out, _ = runCLI(t, "", "-literal", "-max", "2", "lines", "a\n\nb")
	require.Equal(t, exitOK, code)
	assert.JSONEq(t, `[["a","\nb"]]`, out)

	code, out, _ = runCLI(t, "", "-literal", "-codec", "json", "boundaries", "Hi there.")
	require.Equal(t, exitOK, code)
	assert.JSONEq(t, `[["Hi"," ","there","."]]`, out)

	code, out, _ = runCLI(t, "", "-literal", "lines1", "a\n")
	require.Equal(t, exitOK, code)
	assert.JSONEq(t, `["a"]`, out)
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("one\n\ntwo"), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(""), 0o600))

	code, out, _ := runCLI(t, "", "-omit-empty", "lines", a, "file://"+b)
	require.Equal(t, exitOK, code)
	assert.JSONEq(t, `[["one","two"],[]]`, out)

	code, _, stderr := runCLI(t, "", "-mem-limit", "2", "lines", a)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "memory limit exceeded")
}

func TestRun_JSONInput(t *testing.T) {
	code, out, _ := runCLI(t, `["a b", null]`, "-json", "-boundary", "char", "boundaries", "-")
	require.Equal(t, exitOK, code)
	assert.JSONEq(t, `[["a"," ","b"],[null]]`, out)
}

func TestRun_Errors(t *testing.T) {
	code, _, _ := runCLI(t, "", "lines")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "-literal", "split", "a")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "-codec", "xml", "-literal", "lines", "a")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCLI(t, "", "-log-level", "loud", "-literal", "lines", "a")
	assert.Equal(t, exitUsage, code)

	code, _, stderr := runCLI(t, "", "-literal", "-boundary", "paragraph", "boundaries", "a")
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr, "invalid boundary kind")

	code, _, _ = runCLI(t, "", "lines", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, exitError, code)

	code, _, _ = runCLI(t, "", "lines", "minio://bucket/key")
	assert.Equal(t, exitError, code)
}
