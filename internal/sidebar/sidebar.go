// Package sidebar resolves the sidebar tree: explicit sections from the
// configuration plus sections generated from docs directories.
package sidebar

import (
	"log/slog"
	"maps"
	"slices"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// Sections maps a URL prefix such as "/guide/" to its sidebar groups.
type Sections map[string][]config.SidebarGroup

// Prefixes returns the section keys in sorted order.
func (s Sections) Prefixes() []string {
	return slices.Sorted(maps.Keys(s))
}

// Resolve merges explicit sections with generated ones. An explicit section
// wins over a generated section with the same prefix.
func Resolve(cfg config.SidebarConfig) (Sections, error) {
	out := make(Sections, len(cfg.Sections)+len(cfg.Auto))
	for _, a := range cfg.Auto {
		groups, err := Generate(a.Dir, a.Base)
		if errors.HasCategory(err, errors.CategoryNotFound) {
			slog.Warn("Skipping generated sidebar, directory missing", logfields.Path(a.Dir), logfields.Section(a.Base))
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(groups) == 0 {
			slog.Warn("No pages found for generated sidebar", logfields.Path(a.Dir), logfields.Section(a.Base))
			continue
		}
		out[a.Base] = groups
	}
	for prefix, groups := range cfg.Sections {
		if _, generated := out[prefix]; generated {
			slog.Warn("Explicit sidebar section replaces generated one", logfields.Section(prefix))
		}
		out[prefix] = groups
	}
	return out, nil
}
