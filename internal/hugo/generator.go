package hugo

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/docsite/internal/color"
	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	th "git.home.luguber.info/inful/docsite/internal/hugo/theme"
	_ "git.home.luguber.info/inful/docsite/internal/hugo/themes/docsy"
	_ "git.home.luguber.info/inful/docsite/internal/hugo/themes/hextra"
	_ "git.home.luguber.info/inful/docsite/internal/hugo/themes/relearn"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
)

// Generator writes a Hugo project for one configuration.
type Generator struct {
	config    *config.Config
	outputDir string
	sourceDir string // where git metadata is looked up
	recorder  metrics.Recorder
}

// NewGenerator creates a generator writing into outputDir.
func NewGenerator(cfg *config.Config, outputDir string) *Generator {
	return &Generator{
		config:    cfg,
		outputDir: filepath.Clean(outputDir),
		sourceDir: ".",
		recorder:  metrics.NoopRecorder{},
	}
}

// WithRecorder injects a metrics recorder. A nil recorder restores the noop one.
func (g *Generator) WithRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	g.recorder = r
	return g
}

// WithSourceDir sets the directory whose git repository provides edit links.
func (g *Generator) WithSourceDir(dir string) *Generator {
	if dir != "" {
		g.sourceDir = dir
	}
	return g
}

// Config exposes the underlying configuration.
func (g *Generator) Config() *config.Config { return g.config }

// OutputDir is the directory the Hugo project is written to.
func (g *Generator) OutputDir() string { return g.outputDir }

// activeTheme returns the registered theme for the configuration.
func (g *Generator) activeTheme() th.Theme { return th.Get(g.config.Theme.ThemeType()) }

// state carries data between stages. It implements theme.ParamContext.
type state struct {
	generator *Generator
	report    *Report
	theme     th.Theme
	sections  sidebar.Sections
	editLink  *th.EditLink
	palette   color.Palette
}

func (st *state) Config() *config.Config { return st.generator.config }

func (st *state) EditLink() (th.EditLink, bool) {
	if st.editLink == nil || st.editLink.Pattern == "" {
		return th.EditLink{}, false
	}
	return *st.editLink, true
}

func (g *Generator) stages() []stageDef {
	return []stageDef{
		{StagePrepare, stagePrepare},
		{StageResolveSidebar, stageResolveSidebar},
		{StageEditLink, stageResolveEditLink},
		{StageConfig, stageGenerateConfig},
		{StageStyles, stageStyles},
		{StageWidgets, stageWidgets},
		{StageData, stageData},
	}
}

// Generate runs all stages. The report is returned even when generation
// fails, so callers can log what happened.
func (g *Generator) Generate(ctx context.Context) (*Report, error) {
	if g.config == nil {
		return nil, errors.InternalError("generator has no configuration").Build()
	}
	t := g.activeTheme()
	if t == nil {
		return nil, errors.ConfigError("unsupported theme").
			WithContext("theme", g.config.Theme.Name).
			Build()
	}

	report := newReport(g.outputDir, string(t.Name()))
	st := &state{generator: g, report: report, theme: t}
	slog.Info("Starting site generation", logfields.Path(g.outputDir), logfields.Theme(string(t.Name())))

	err := runStages(ctx, st, g.stages())
	report.finish()
	g.recorder.ObserveGenerationDuration(report.Duration())
	g.recorder.IncGenerationOutcome(report.Outcome)
	if err != nil {
		return report, err
	}

	if perr := report.Persist(); perr != nil {
		slog.Warn("Failed to persist build report", logfields.Error(perr))
	}
	slog.Info("Site generation completed",
		logfields.Path(g.outputDir),
		logfields.Count(len(report.Files)),
		slog.String("outcome", string(report.Outcome)))
	return report, nil
}

// writeFile writes data to rel below the output directory and records it.
func (st *state) writeFile(rel string, data []byte) error {
	full := filepath.Join(st.generator.outputDir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to create directory").
			Fatal().
			WithContext("path", filepath.Dir(full)).
			Build()
	}
	// #nosec G306 -- generated site files are public assets
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write file").
			Fatal().
			WithContext("path", full).
			Build()
	}
	st.report.addFile(rel)
	slog.Debug("Wrote file", logfields.File(filepath.ToSlash(rel)))
	return nil
}
