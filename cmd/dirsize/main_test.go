package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klingtnet/dirsize/internal/testutils"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := bytes.NewBuffer(nil)
	app := newApp()
	app.Reader = strings.NewReader(stdin)
	app.Writer = out
	app.ErrWriter = bytes.NewBuffer(nil)
	app.ExitErrHandler = func(*cli.Context, error) {}

	err := app.Run(append([]string{"dirsize", "--log-level", "error"}, args...))

	return out.String(), err
}

func writeTranscript(t *testing.T, name string) string {
	path := filepath.Join(t.TempDir(), "terminal-output.txt")
	require.NoError(t, os.WriteFile(path, []byte(testutils.ReadTranscript(t, name)), 0o600))

	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr cli.ExitCoder
	require.ErrorAs(t, err, &exitErr)

	return exitErr.ExitCode()
}

func TestCommands(t *testing.T) {
	input := writeTranscript(t, testutils.ExampleTranscript)

	tCases := []struct {
		name     string
		args     []string
		expected string
	}{
		{"default action", []string{"--input", input}, "95437\n"},
		{"total", []string{"--input", input, "total"}, "95437\n"},
		{"total with threshold", []string{"--input", input, "--threshold", "1000", "total"}, "584\n"},
		{"free", []string{"--input", input, "free"}, "24933642\n"},
		{"free with more space required", []string{"-i", input, "--required-free", "60000000", "free"}, "48381165\n"},
	}
	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			out, err := runApp(t, "", tCase.args...)
			require.NoError(t, err)
			require.Equal(t, tCase.expected, out)
		})
	}
}

func TestStdin(t *testing.T) {
	out, err := runApp(t, testutils.ReadTranscript(t, testutils.NoisyTranscript), "free")
	require.NoError(t, err)
	require.Equal(t, "24933642\n", out)
}

func TestDirs(t *testing.T) {
	out, err := runApp(t, testutils.ReadTranscript(t, testutils.ExampleTranscript), "dirs")
	require.NoError(t, err)
	require.Equal(t, []string{
		"48381165  /",
		"94853     /a",
		"584       /a/e",
		"24933642  /d",
	}, strings.Split(strings.TrimSpace(out), "\n"))
}

func TestReport(t *testing.T) {
	input := writeTranscript(t, testutils.ExampleTranscript)

	t.Run("stdout", func(t *testing.T) {
		out, err := runApp(t, "", "--input", input, "report", "--format", "json", "--output", "-")
		require.NoError(t, err)
		require.Contains(t, out, `"title": "Terminal Output"`)
		require.Contains(t, out, `"deletion_candidate": 24933642`)
	})

	t.Run("stored", func(t *testing.T) {
		dir := t.TempDir()
		out, err := runApp(t, "", "--input", input, "report", "--format", "html", "--output", dir)
		require.NoError(t, err)
		require.Empty(t, out)

		html, err := os.ReadFile(filepath.Join(dir, "terminal-output.html"))
		require.NoError(t, err)
		require.Contains(t, string(html), "<title>Terminal Output</title>")
		require.Contains(t, string(html), "24,933,642")
	})

	t.Run("config output dir", func(t *testing.T) {
		dir := t.TempDir()
		configPath := filepath.Join(dir, "config.json")
		require.NoError(t, os.WriteFile(configPath, []byte(`{"output_dir": "`+filepath.ToSlash(filepath.Join(dir, "out"))+`"}`), 0o600))

		_, err := runApp(t, "", "--config", configPath, "--input", input, "report")
		require.NoError(t, err)
		text, err := os.ReadFile(filepath.Join(dir, "out", "terminal-output.txt"))
		require.NoError(t, err)
		require.Contains(t, string(text), "deletion candidate: 24933642")
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := runApp(t, "", "--input", input, "report", "--format", "pdf")
		require.Equal(t, BadArgument, exitCode(t, err))
	})
}

func TestFailures(t *testing.T) {
	tCases := []struct {
		name  string
		stdin string
		args  []string
		code  int
	}{
		{"unlisted directory", "$ cd /\n$ cd ghost\n$ ls\n1 boo\n", nil, BadTranscript},
		{"missing input", "", []string{"--input", "/should/not/exist.txt"}, BadArgument},
		{"missing config", "", []string{"--config", "/should/not/exist.json"}, BadArgument},
		{"bad config", "", []string{"--required-free", "80000000"}, BadArgument},
		{"bad log format", "", []string{"--log-format", "xml"}, BadArgument},
		{"watch stdin", "", []string{"watch"}, BadArgument},
	}
	for _, tCase := range tCases {
		t.Run(tCase.name, func(t *testing.T) {
			_, err := runApp(t, tCase.stdin, tCase.args...)
			require.Equal(t, tCase.code, exitCode(t, err))
		})
	}
}
