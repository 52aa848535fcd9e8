// Package init provides the init command for bbc.
package init

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
	"github.com/open-cli-collective/bbcode-cli/internal/view"
)

type initOptions struct {
	configPath   string
	outputFormat string
	maxDepth     int
	verbose      bool
	noPrompt     bool
	force        bool
	noColor      bool

	stdout io.Writer
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize bbc configuration",
		Long: `Initialize bbc defaults.

This command will guide you through choosing the default output format,
the maximum tag nesting depth and whether translation warnings are shown.
The configuration will be saved to ~/.config/bbc/config.yml.

Every setting can also be given as a flag; with --no-prompt the flags are
saved as-is without asking.`,
		Example: `  # Interactive setup
  bbc init

  # Non-interactive
  bbc init --no-prompt --output-format markdown --max-depth 64`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.Globals(cmd)
			opts.configPath = config.PathOrDefault(g.ConfigPath)
			opts.noColor = g.NoColor
			opts.stdout = cmd.OutOrStdout()
			return runInit(opts)
		},
	}

	cmd.Flags().StringVar(&opts.outputFormat, "output-format", "", "Default render output format (html, json, markdown, text)")
	cmd.Flags().IntVar(&opts.maxDepth, "max-depth", 0, "Maximum tag nesting depth (0 = default, -1 = unlimited)")
	cmd.Flags().BoolVar(&opts.verbose, "show-warnings", false, "Always print translation warnings")
	cmd.Flags().BoolVar(&opts.noPrompt, "no-prompt", false, "Save the flag values without prompting")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing configuration")

	return cmd
}

func runInit(opts *initOptions) error {
	renderer := view.NewRenderer(view.FormatPlain, opts.noColor)
	renderer.SetWriter(opts.stdout)

	if _, err := os.Stat(opts.configPath); err == nil && !opts.force {
		if opts.noPrompt {
			return fmt.Errorf("configuration already exists at %s (use --force to overwrite)", opts.configPath)
		}
		overwrite, err := confirmOverwrite(opts.configPath)
		if err != nil {
			return err
		}
		if !overwrite {
			renderer.RenderText("Initialization cancelled.")
			return nil
		}
	}

	cfg := &config.Config{
		OutputFormat: opts.outputFormat,
		MaxDepth:     opts.maxDepth,
		Verbose:      opts.verbose,
	}

	if !opts.noPrompt {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := cfg.Save(opts.configPath); err != nil {
		return err
	}

	renderer.Success(fmt.Sprintf("Configuration saved to %s", opts.configPath))
	renderer.RenderText("\nYou're all set! Try running:")
	renderer.RenderText(`  echo "[b]Hello[/b]" | bbc render`)

	return nil
}

func confirmOverwrite(path string) (bool, error) {
	var overwrite bool
	err := huh.NewConfirm().
		Title("Configuration already exists").
		Description(fmt.Sprintf("Overwrite %s?", path)).
		Value(&overwrite).
		Run()
	return overwrite, err
}

// promptConfig asks for each setting, starting from the values in cfg.
func promptConfig(cfg *config.Config) error {
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = config.OutputFormats[0]
	}
	depth := strconv.Itoa(cfg.MaxDepth)

	options := make([]huh.Option[string], len(config.OutputFormats))
	for i, f := range config.OutputFormats {
		options[i] = huh.NewOption(f, f)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("Default format for bbc render").
				Options(options...).
				Value(&cfg.OutputFormat),

			huh.NewInput().
				Title("Maximum nesting depth").
				Description("0 uses the built-in default, -1 disables the limit").
				Value(&depth).
				Validate(func(s string) error {
					_, err := parseDepth(s)
					return err
				}),

			huh.NewConfirm().
				Title("Show translation warnings?").
				Value(&cfg.Verbose),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	n, err := parseDepth(depth)
	if err != nil {
		return err
	}
	cfg.MaxDepth = n
	return nil
}

func parseDepth(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("depth must be a whole number")
	}
	if n < -1 {
		return 0, errors.New("depth must be -1 or greater")
	}
	return n, nil
}
