// Package commands implements the errmatrix subcommands.
package commands

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/errmatrix/internal/config"
)

// Global is passed to every subcommand's Run.
type Global struct {
	Logger *slog.Logger
}

// CLI is the root command.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"errmatrix.yaml"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate GenerateCmd `cmd:"" default:"withargs" help:"Build, run and document every example"`
	List     ListCmd     `cmd:"" help:"Show the ErrorKind x Operation matrix"`
	Show     ShowCmd     `cmd:"" help:"Print the synthesized source of one example"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel honors --verbose first, then ERRMATRIX_LOG_LEVEL.
func parseLogLevel(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv("ERRMATRIX_LOG_LEVEL"))) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loadConfig reads the root configuration. The default path may be absent;
// an explicitly named file must exist.
func loadConfig(root *CLI) (*config.Config, error) {
	required := root.Config != "" && root.Config != config.DefaultPath
	cfg, warnings, err := config.Load(root.Config, required)
	if err != nil {
		return nil, err
	}
	for _, w := range warnings {
		slog.Warn("Configuration adjusted", slog.String("detail", w))
	}
	return cfg, nil
}
