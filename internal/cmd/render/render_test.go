package render

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, v := range config.EnvVars() {
		t.Setenv(v, "")
	}
}

// newTestOptions returns options reading input from stdin with no config file.
func newTestOptions(t *testing.T, input string) (*renderOptions, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	opts := &renderOptions{
		GlobalOptions: cmdutil.GlobalOptions{
			ConfigPath: filepath.Join(t.TempDir(), "config.yml"),
			NoColor:    true,
		},
		stdin:  strings.NewReader(input),
		stdout: &stdout,
		stderr: &stderr,
	}
	return opts, &stdout, &stderr
}

func TestRunRender_HTML(t *testing.T) {
	opts, stdout, stderr := newTestOptions(t, "[b]Hello[/b] <world>")

	require.NoError(t, runRender(opts))
	assert.Equal(t, "<strong>Hello</strong> &lt;world&gt;\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunRender_FromFile(t *testing.T) {
	opts, stdout, _ := newTestOptions(t, "ignored")
	file := filepath.Join(t.TempDir(), "post.bb")
	require.NoError(t, os.WriteFile(file, []byte("[i]file[/i]"), 0644))
	opts.args = []string{file}

	require.NoError(t, runRender(opts))
	assert.Equal(t, "<em>file</em>\n", stdout.String())
}

func TestRunRender_JSON(t *testing.T) {
	opts, stdout, _ := newTestOptions(t, "[b]x")
	opts.Output = "json"

	require.NoError(t, runRender(opts))

	var result struct {
		HTML     string `json:"html"`
		Warnings []struct {
			Kind     string `json:"kind"`
			Position int    `json:"position"`
			Message  string `json:"message"`
		} `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
	assert.Equal(t, "[b]x", result.HTML)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "unmatched-tag", result.Warnings[0].Kind)
	assert.Equal(t, 0, result.Warnings[0].Position)
}

func TestRunRender_Markdown(t *testing.T) {
	opts, stdout, _ := newTestOptions(t, "[b]bold[/b] text")
	opts.Output = "markdown"

	require.NoError(t, runRender(opts))
	assert.Contains(t, stdout.String(), "**bold**")
}

func TestRunRender_Text(t *testing.T) {
	opts, stdout, _ := newTestOptions(t, "[list][*]one[*]two[/list]")
	opts.Output = "text"

	require.NoError(t, runRender(opts))
	assert.Equal(t, "one\ntwo\n", stdout.String())
}

func TestRunRender_Wrap(t *testing.T) {
	opts, stdout, _ := newTestOptions(t, "")
	file := filepath.Join(t.TempDir(), "my-post.bb")
	require.NoError(t, os.WriteFile(file, []byte("[u]x[/u]"), 0644))
	opts.file = file
	opts.wrap = true

	require.NoError(t, runRender(opts))
	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>my-post</title>")
	assert.Contains(t, out, "<u>x</u>")
}

func TestRunRender_Verbose(t *testing.T) {
	opts, stdout, stderr := newTestOptions(t, "[b]x")
	opts.Verbose = true

	require.NoError(t, runRender(opts))
	assert.Equal(t, "[b]x\n", stdout.String())
	assert.Equal(t, "! offset 0: no closing tag for [b]\n", stderr.String())
}

func TestRunRender_Strict(t *testing.T) {
	opts, _, _ := newTestOptions(t, "[b]x")
	opts.strict = true

	err := runRender(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 warning(s)")

	opts, _, _ = newTestOptions(t, "[b]x[/b]")
	opts.strict = true
	require.NoError(t, runRender(opts))
}

func TestRunRender_InvalidFormat(t *testing.T) {
	opts, _, _ := newTestOptions(t, "x")
	opts.Output = "table"

	err := runRender(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestRunRender_UsesConfig(t *testing.T) {
	opts, stdout, _ := newTestOptions(t, "[b][i]x[/i][/b]")
	require.NoError(t, (&config.Config{OutputFormat: "text", MaxDepth: 1}).Save(opts.ConfigPath))

	require.NoError(t, runRender(opts))
	assert.Equal(t, "[i]x[/i]\n", stdout.String())
}

func TestRunRender_FlagsOverrideConfig(t *testing.T) {
	opts, stdout, _ := newTestOptions(t, "[b][i]x[/i][/b]")
	require.NoError(t, (&config.Config{OutputFormat: "text", MaxDepth: 1}).Save(opts.ConfigPath))
	opts.Output = "html"
	opts.maxDepth = -1
	opts.maxDepthSet = true

	require.NoError(t, runRender(opts))
	assert.Equal(t, "<strong><em>x</em></strong>\n", stdout.String())
}

func TestRunRender_MaxOutput(t *testing.T) {
	opts, stdout, stderr := newTestOptions(t, "[b]hello world[/b] and [i]more[/i]")
	opts.maxOutput = 10
	opts.Verbose = true

	require.NoError(t, runRender(opts))
	assert.Equal(t, "<strong>hello world</strong> and [i]more[/i]\n", stdout.String())
	assert.Contains(t, stderr.String(), "output exceeded 10 bytes")
}

func TestRunRender_InvalidConfig(t *testing.T) {
	opts, _, _ := newTestOptions(t, "x")
	require.NoError(t, os.WriteFile(opts.ConfigPath, []byte("output_format: pdf\n"), 0644))

	err := runRender(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bbc init")
}

func TestDocumentTitle(t *testing.T) {
	assert.Equal(t, "Given", documentTitle(&renderOptions{title: "Given", file: "x.bb"}))
	assert.Equal(t, "notes", documentTitle(&renderOptions{file: "/tmp/notes.bb"}))
	assert.Equal(t, "arg", documentTitle(&renderOptions{args: []string{"dir/arg.txt"}}))
	assert.Equal(t, "BBCode", documentTitle(&renderOptions{}))
	assert.Equal(t, "BBCode", documentTitle(&renderOptions{file: "-"}))
}

func TestNewCmdRender(t *testing.T) {
	cmd := NewCmdRender()
	assert.Equal(t, "render [file]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("max-depth"))
	assert.NotNil(t, cmd.Flags().Lookup("max-output"))
	assert.NotNil(t, cmd.Flags().Lookup("wrap"))
	assert.NotNil(t, cmd.Flags().Lookup("strict"))
}
