// Package tokens provides the tokens command for inspecting BBCode structure.
package tokens

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

// maxValueWidth bounds the VALUE column in table output.
const maxValueWidth = 60

type tokensOptions struct {
	cmdutil.GlobalOptions
	file string
	args []string

	stdin  io.Reader
	stdout io.Writer
}

// NewCmdTokens creates the tokens command.
func NewCmdTokens() *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "List the tokens BBCode is split into",
		Long: `List the text and tag tokens the translator sees, with their byte offsets.

Useful for finding out why a tag was not translated: tag values are shown
exactly as written between the brackets, and text values are quoted.`,
		Example: `  # Inspect a snippet
  echo "[b]x[/B] [url=http://x]y" | bbc tokens

  # As JSON
  bbc tokens post.bb -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.Globals(cmd)
			opts.args = args
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			return runTokens(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read BBCode from file")

	return cmd
}

func runTokens(opts *tokensOptions) error {
	if err := view.ValidateFormat(opts.Output, view.ListFormats); err != nil {
		return err
	}
	format := view.Format(opts.Output)
	if format == "" {
		format = view.FormatTable
	}

	content, err := cmdutil.ReadInput(opts.file, opts.args, opts.stdin)
	if err != nil {
		return err
	}

	renderer := view.NewRenderer(format, opts.NoColor)
	renderer.SetWriter(opts.stdout)

	headers := []string{"OFFSET", "TYPE", "VALUE"}
	var rows [][]string
	for _, tok := range bbcode.Tokenize(content) {
		value := tok.Source()
		if tok.Type == bbcode.TokenText {
			value = strconv.Quote(value)
		}
		if format == view.FormatTable {
			value = view.Truncate(value, maxValueWidth)
		}
		rows = append(rows, []string{strconv.Itoa(tok.Position), tok.Type.String(), value})
	}

	renderer.RenderTable(headers, rows)
	return nil
}
