// Package render provides the render command, which translates BBCode.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
	"github.com/open-cli-collective/bbcode-cli/pkg/bbcode"
)

type renderOptions struct {
	cmdutil.GlobalOptions
	file        string
	args        []string
	maxDepth    int
	maxDepthSet bool
	maxOutput   int
	wrap        bool
	title       string
	strict      bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:     "render [file]",
		Aliases: []string{"html"},
		Short:   "Translate BBCode to HTML",
		Long: `Translate BBCode markup to HTML.

Content can be provided via:
- a file argument or the --file flag
- Standard input (pipe content, or use "-" as the file)

Malformed markup never fails the translation: unmatched tags are written
back as escaped text. Use --verbose to list what was not understood, or
--strict to exit with an error when anything was.

Output formats:
  html      the translated HTML (default)
  json      {"html": ..., "warnings": [...]}
  markdown  the HTML converted to Markdown
  text      the visible text only`,
		Example: `  # Translate a file
  bbc render post.bb

  # Translate from stdin
  echo "[b]Hello[/b]" | bbc render

  # Standalone HTML page
  bbc render post.bb --wrap --title "My post" > post.html

  # Show translation warnings
  bbc render post.bb --verbose`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.GlobalOptions = cmdutil.Globals(cmd)
			opts.args = args
			opts.maxDepthSet = cmd.Flags().Changed("max-depth")
			opts.stdin = cmd.InOrStdin()
			opts.stdout = cmd.OutOrStdout()
			opts.stderr = cmd.ErrOrStderr()
			return runRender(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Read BBCode from file")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Maximum tag nesting depth (0 = default, -1 = unlimited)")
	cmd.Flags().IntVar(&opts.maxOutput, "max-output", 0, "Maximum bytes of HTML before the rest is written as text (0 = default, -1 = unlimited)")
	cmd.Flags().BoolVar(&opts.wrap, "wrap", false, "Wrap HTML output in a complete document")
	cmd.Flags().StringVar(&opts.title, "title", "", "Document title for --wrap (default: file name)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Fail when the markup produced warnings")

	return cmd
}

func runRender(opts *renderOptions) error {
	cfg, err := cmdutil.LoadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}

	format := opts.Output
	if format == "" {
		format = cfg.OutputFormat
	}
	if format == "" {
		format = string(view.FormatHTML)
	}
	if err := view.ValidateFormat(format, view.DocumentFormats); err != nil {
		return err
	}

	maxDepth := cfg.MaxDepth
	if opts.maxDepthSet {
		maxDepth = opts.maxDepth
	}

	content, err := cmdutil.ReadInput(opts.file, opts.args, opts.stdin)
	if err != nil {
		return err
	}

	result := bbcode.Translate(content, bbcode.Options{MaxDepth: maxDepth, MaxOutput: opts.maxOutput})

	renderer := view.NewRenderer(view.Format(format), opts.NoColor || cfg.NoColor)
	renderer.SetWriter(opts.stdout)
	renderer.SetErrWriter(opts.stderr)

	if opts.Verbose || cfg.Verbose {
		for _, w := range result.Warnings {
			renderer.Warning(w.String())
		}
	}

	switch view.Format(format) {
	case view.FormatJSON:
		if err := renderer.RenderJSON(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	case view.FormatMarkdown:
		md, err := result.Markdown()
		if err != nil {
			return fmt.Errorf("failed to convert to markdown: %w", err)
		}
		renderer.RenderText(md)
	case view.FormatText:
		renderer.RenderText(result.Text())
	default:
		if opts.wrap {
			renderer.RenderRaw(result.Document(documentTitle(opts)))
		} else {
			renderer.RenderText(result.HTML)
		}
	}

	if opts.strict && result.HasWarnings() {
		return fmt.Errorf("markup produced %d warning(s)", len(result.Warnings))
	}
	return nil
}

// documentTitle picks the --title flag, else the input file name without extension.
func documentTitle(opts *renderOptions) string {
	if opts.title != "" {
		return opts.title
	}
	file := opts.file
	if file == "" && len(opts.args) > 0 {
		file = opts.args[0]
	}
	if file == "" || file == "-" {
		return "BBCode"
	}
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
