// Package root provides the root command for the bbc CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/completion"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/frommd"
	initcmd "github.com/open-cli-collective/bbcode-cli/internal/cmd/init"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/render"
	"github.com/open-cli-collective/bbcode-cli/internal/cmd/tokens"
	"github.com/open-cli-collective/bbcode-cli/internal/version"
)

// NewCmdRoot creates the root command for bbc.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bbc",
		Short: "A command-line BBCode to HTML translator",
		Long: `bbc translates forum-style BBCode markup into safe HTML.

It understands [b], [i], [u], [color], [size], [left], [center], [right],
[url], [img] and [list]. Everything else, including malformed markup,
is written back as escaped text, so the output is always safe to embed.

Get started by running: echo "[b]Hello[/b]" | bbc render`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/bbc/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format (render: html, json, markdown, text; tokens: table, json, plain)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "print translation warnings to stderr")

	// Set version template
	cmd.SetVersionTemplate(version.String() + "\n")

	// Subcommands
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(tokens.NewCmdTokens())
	cmd.AddCommand(frommd.NewCmdFromMarkdown())
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
