// Package frommd provides the from-markdown command.
package frommd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

type fromMarkdownOptions struct {
	cmdutil.GlobalOptions
	file string
	args []string
	html bool

	stdin  io.Reader
	stdout io.Writer
}

// NewCmdFromMarkdown creates the from-markdown command.
func NewCmdFromMarkdown() *cobra.Command {
	opts := &fromMarkdownOptions{}

	cmd := &cobra.Command{
		Use:     "from-markdown [file]",
		Aliases: []string{"md"},
		Short:   "Convert Markdown to BBCode",
		Long: `Convert Markdown to BBCode using the tags bbc can render.

Headings become bold [size] runs, lists become [list] with [*] items, and
links and images map to [url] and [img]. Raw HTML and tables are dropped.`,
		Example: `  # Convert a README
  bbc from-markdown README.md

  # Preview the HTML the BBCode renders to
  echo "**hi**" | bbc from-markdown --html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.Globals(cmd)
			opts.args = args
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runFromMarkdown(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read Markdown from file")
	cmd.Flags().BoolVar(&opts.html, "html", false, "Render the resulting BBCode to HTML")

	return cmd
}

func runFromMarkdown(opts *fromMarkdownOptions) error {
	content, err := cmdutil.ReadInput(opts.file, opts.args, opts.stdin)
	if err != nil {
		return err
	}

	out := bbcode.FromMarkdown([]byte(content))
	if opts.html {
		out = bbcode.ToHTML(out)
	}

	renderer := view.NewRenderer(view.FormatPlain, opts.NoColor)
	renderer.SetWriter(opts.stdout)
	renderer.RenderText(out)
	return nil
}
