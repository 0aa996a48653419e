package hugo

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/logfields"
)

const (
	defaultModuleName = "docsite-site"
	goModFile         = "go.mod"
)

// ensureGoMod creates the minimal go.mod Hugo Modules need and pins the theme
// version when the theme declares one. An existing go.mod is kept; only a
// missing require line is appended.
func (st *state) ensureGoMod() error {
	features := st.theme.Features()
	if features.ModulePath == "" {
		return nil
	}
	path := filepath.Join(st.generator.outputDir, goModFile)

	var content string
	if b, err := os.ReadFile(path); err == nil {
		content = string(b)
	} else {
		content = fmt.Sprintf("module %s\n\ngo 1.21\n", moduleName(st.Config().BaseURL))
	}
	if features.ModuleVersion != "" && !strings.Contains(content, features.ModulePath) {
		content += fmt.Sprintf("\nrequire %s %s\n", features.ModulePath, features.ModuleVersion)
	}
	if err := st.writeFile(goModFile, []byte(content)); err != nil {
		return err
	}
	slog.Debug("Prepared go.mod for Hugo Modules", logfields.Path(path))
	return nil
}

// moduleName derives a module path from the base URL host, e.g.
// "https://docs.example.com/" becomes "docs-example-com".
func moduleName(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Hostname() == "" {
		return defaultModuleName
	}
	return strings.ReplaceAll(u.Hostname(), ".", "-")
}
