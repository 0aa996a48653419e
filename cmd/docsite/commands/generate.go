package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docsite/internal/hugo"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Output string `short:"o" help:"Output directory for the Hugo project (default: output.directory from the configuration)"`
}

func (c *GenerateCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := signalContext()
	defer cancel()

	out := ResolveOutputDir(c.Output, cfg, root.Config)
	slog.Info("Generating site", logfields.Path(out), logfields.Theme(cfg.Theme.Name))
	report, err := hugo.NewGenerator(cfg, out).WithSourceDir(root.SourceDir()).Generate(ctx)
	if report != nil {
		_, _ = fmt.Fprintln(g.Out, report.Summary())
	}
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Out, "Hugo project generated at: %s\n", out)
	return nil
}
