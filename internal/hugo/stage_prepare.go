package hugo

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
)

var siteDirs = []string{"content", "layouts", "static", "data", "assets"}

// stagePrepare cleans the output directory when configured and creates the
// Hugo directory structure.
func stagePrepare(_ context.Context, st *state) error {
	out := st.generator.outputDir
	if st.Config().Output.ShouldClean() {
		if err := checkCleanTarget(out, st.generator.sourceDir, st.Config().ContentDir); err != nil {
			return err
		}
		if err := os.RemoveAll(out); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to clean output directory").
				Fatal().
				WithContext("path", out).
				Build()
		}
	}
	for _, dir := range siteDirs {
		path := filepath.Join(out, dir)
		if err := os.MkdirAll(path, 0o750); err != nil {
			return errors.WrapError(err, errors.CategoryFileSystem, "failed to create directory").
				Fatal().
				WithContext("path", path).
				Build()
		}
	}
	return nil
}

// checkCleanTarget refuses to remove the filesystem root or any directory
// that contains the working directory or one of the protected paths.
func checkCleanTarget(out string, protected ...string) error {
	absOut, err := filepath.Abs(out)
	if err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to resolve output directory").Fatal().Build()
	}
	refuse := absOut == filepath.Dir(absOut)
	if cwd, err := os.Getwd(); err == nil && within(cwd, absOut) {
		refuse = true
	}
	for _, p := range protected {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil && within(abs, absOut) {
			refuse = true
		}
	}
	if refuse {
		return errors.ValidationError("refusing to clean output directory").
			WithContext("path", absOut).
			Build()
	}
	return nil
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func stageResolveSidebar(_ context.Context, st *state) error {
	sections, err := sidebar.Resolve(st.Config().Sidebar)
	if err != nil {
		return err
	}
	st.sections = sections
	st.report.Sections = len(sections)
	slog.Debug("Resolved sidebar", logfields.Count(len(sections)), slog.Any("prefixes", sections.Prefixes()))
	return nil
}
