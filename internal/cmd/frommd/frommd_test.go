package frommd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
)

func TestRunFromMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		html  bool
		want  string
	}{
		{"bold", "**hi**", false, "[b]hi[/b]\n"},
		{"heading", "## Part", false, "[size=16][b]Part[/b][/size]\n"},
		{"as html", "**hi**", true, "<strong>hi</strong>\n"},
		{"empty", "", false, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			opts := &fromMarkdownOptions{
				GlobalOptions: cmdutil.GlobalOptions{NoColor: true},
				html:          tt.html,
				stdin:         strings.NewReader(tt.input),
				stdout:        &stdout,
			}

			require.NoError(t, runFromMarkdown(opts))
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunFromMarkdown_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("[x](https://e.com)"), 0600))

	var stdout bytes.Buffer
	opts := &fromMarkdownOptions{
		args:   []string{path},
		stdout: &stdout,
	}

	require.NoError(t, runFromMarkdown(opts))
	assert.Equal(t, "[url=https://e.com]x[/url]\n", stdout.String())
}

func TestRunFromMarkdown_MissingFile(t *testing.T) {
	opts := &fromMarkdownOptions{
		file:   filepath.Join(t.TempDir(), "nope.md"),
		stdout: &bytes.Buffer{},
	}

	err := runFromMarkdown(opts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}
