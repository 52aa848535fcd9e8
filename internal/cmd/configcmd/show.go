package configcmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the effective bbc configuration and where each value comes from.`,
		Example: `  # Show current config
  bbc config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.Globals(cmd)
			return runShow(config.PathOrDefault(g.ConfigPath), g.NoColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, w io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value string, inFile bool, envVars ...string) {
		_, _ = bold.Fprintf(w, "%-15s", label+":")
		fmt.Fprint(w, value)

		source := "default"
		if inFile {
			source = "config"
		}
		for _, envVar := range envVars {
			if os.Getenv(envVar) != "" {
				source = envVar
				break
			}
		}

		_, _ = dim.Fprintf(w, "  (source: %s)\n", source)
	}

	format := cfg.OutputFormat
	if format == "" {
		format = "html"
	}
	depth := strconv.Itoa(cfg.MaxDepth)
	if cfg.MaxDepth == 0 {
		depth = "0 (built-in limit)"
	} else if cfg.MaxDepth < 0 {
		depth = depth + " (unlimited)"
	}

	printField("Output format", format, fileCfg.OutputFormat != "", "BBC_OUTPUT_FORMAT")
	printField("Max depth", depth, fileCfg.MaxDepth != 0, "BBC_MAX_DEPTH")
	printField("Verbose", strconv.FormatBool(cfg.Verbose), fileCfg.Verbose, "BBC_VERBOSE")
	printField("No color", strconv.FormatBool(cfg.NoColor), fileCfg.NoColor, "BBC_NO_COLOR", "NO_COLOR")

	fmt.Fprintln(w)
	_, _ = dim.Fprintf(w, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(w, "(file not found)")
	}

	return nil
}
