// Package cmdutil holds helpers shared by bbc commands.
package cmdutil

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/bbcode-cli/internal/config"
)

// ErrNoInput is returned when no file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass a file or pipe content on stdin")

// ReadInput returns content from, in order: the --file flag, the first
// positional argument, or stdin. A file name of "-" means stdin.
func ReadInput(file string, args []string, stdin io.Reader) (string, error) {
	if file == "" && len(args) > 0 {
		file = args[0]
	}

	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(data), nil
	}

	if stdin == nil {
		stdin = os.Stdin
	}

	// Refuse to block on an interactive terminal
	if f, ok := stdin.(*os.File); ok && file != "-" {
		stat, err := f.Stat()
		if err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			return "", ErrNoInput
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

// GlobalOptions are the persistent flags defined on the root command.
type GlobalOptions struct {
	ConfigPath string
	Output     string
	NoColor    bool
	Verbose    bool
}

// Globals reads the persistent root flags from cmd.
func Globals(cmd *cobra.Command) GlobalOptions {
	var g GlobalOptions
	g.ConfigPath, _ = cmd.Flags().GetString("config")
	g.Output, _ = cmd.Flags().GetString("output")
	g.NoColor, _ = cmd.Flags().GetBool("no-color")
	g.Verbose, _ = cmd.Flags().GetBool("verbose")
	return g
}

// LoadConfig loads and validates configuration for a command.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadWithEnv(config.PathOrDefault(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w (run 'bbc init' to configure)", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'bbc init' to configure)", err)
	}
	return cfg, nil
}
