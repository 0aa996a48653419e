// Package theme defines the hooks a Hugo theme implements and the registry
// themes add themselves to.
package theme

import (
	"slices"
	"strings"
	"sync"

	"git.home.luguber.info/inful/docsite/internal/color"
	"git.home.luguber.info/inful/docsite/internal/config"
)

// Features describes capability flags and the module path of a theme.
type Features struct {
	Name                     config.Theme
	ModulePath               string
	ModuleVersion            string // pinned in the site's go.mod when set
	EnableMathPassthrough    bool
	EnableOfflineSearchJSON  bool
	SupportsPerPageEditLinks bool
	DefaultSearchType        string // search backend written into the theme params
	HeadHook                 string // partial, relative to the site root, rendered at the end of <head>
}

// EditLink is the resolved "edit this page" configuration.
type EditLink struct {
	Pattern string // contains PathPlaceholder
	Text    string
	RepoURL string // empty when Pattern was configured explicitly
	Branch  string
	DocsDir string
}

// PathPlaceholder marks where the page path goes in EditLink.Pattern.
const PathPlaceholder = ":path"

// Base returns the pattern up to the path placeholder, or "" when the
// placeholder is not the final element.
func (e EditLink) Base() string {
	if !strings.HasSuffix(e.Pattern, PathPlaceholder) {
		return ""
	}
	return strings.TrimSuffix(e.Pattern, PathPlaceholder)
}

// ParamContext is the minimal surface a theme needs from the generator.
type ParamContext interface {
	Config() *config.Config
	EditLink() (EditLink, bool)
}

// Theme provides hooks for configuring Hugo for one theme.
type Theme interface {
	Name() config.Theme
	Features() Features
	ApplyParams(ctx ParamContext, params map[string]any)
	CustomizeRoot(ctx ParamContext, root map[string]any)
	// BrandVars maps theme CSS custom properties onto the brand palette.
	BrandVars(p color.Palette) map[string]string
}

var (
	regMu sync.RWMutex
	reg   = map[config.Theme]Theme{}
)

// RegisterTheme registers a Theme implementation. Duplicate names are ignored.
func RegisterTheme(t Theme) {
	if t == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	if _, ok := reg[t.Name()]; !ok {
		reg[t.Name()] = t
	}
}

// Get retrieves a theme by name, or nil.
func Get(name config.Theme) Theme {
	regMu.RLock()
	defer regMu.RUnlock()
	return reg[name]
}

// Names lists registered themes in sorted order.
func Names() []config.Theme {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]config.Theme, 0, len(reg))
	for n := range reg {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// SetDefault stores v under key unless params already has a value there.
func SetDefault(params map[string]any, key string, v any) {
	if _, ok := params[key]; !ok {
		params[key] = v
	}
}

// Section returns params[key] as a map, creating it when missing or not a map.
func Section(params map[string]any, key string) map[string]any {
	if m, ok := params[key].(map[string]any); ok {
		return m
	}
	m := map[string]any{}
	params[key] = m
	return m
}
