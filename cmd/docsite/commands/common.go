package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/config"
)

// Global carries process-wide state handed to every command.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer // command output, as opposed to logs
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsite.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
	Generate GenerateCmd `cmd:"" help:"Generate the Hugo project"`
	Watch    WatchCmd    `cmd:"" help:"Generate, then regenerate whenever the configuration or sidebar sources change"`
	Color    ColorCmd    `cmd:"" help:"Convert between hex and RGBA colors"`
}

// AfterApply runs after flag parsing and installs the default logger.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	setupLogging(level, config.LogFormatText)
	return nil
}

// loadConfig reads the configuration file and switches logging to the
// configured level and format. -v keeps debug logging.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	level := config.NormalizeLogLevel(cfg.Logging.Level).SlogLevel()
	if c.Verbose {
		level = slog.LevelDebug
	}
	setupLogging(level, config.NormalizeLogFormat(cfg.Logging.Format))
	return cfg, nil
}

// SourceDir is the directory holding the configuration file; git metadata
// for edit links is looked up there.
func (c *CLI) SourceDir() string {
	return filepath.Dir(c.Config)
}

func setupLogging(level slog.Level, format config.LogFormat) {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// ResolveOutputDir determines the output directory.
// Priority: CLI flag > output.directory, which is relative to the config file.
func ResolveOutputDir(cliOutput string, cfg *config.Config, configPath string) string {
	if cliOutput != "" {
		return cliOutput
	}
	dir := cfg.Output.Directory
	if dir == "" {
		dir = config.DefaultOutputDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(filepath.Dir(configPath), dir)
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
