package hugo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/markdown"
)

// ConfigFile is the Hugo configuration written by the config stage.
const ConfigFile = "hugo.yaml"

func stageGenerateConfig(_ context.Context, st *state) error {
	root, err := st.buildHugoConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(root)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal Hugo config").Fatal().Build()
	}
	if err := st.writeFile(ConfigFile, data); err != nil {
		return err
	}
	if err := st.ensureGoMod(); err != nil {
		return newWarnStageError(StageConfig, err)
	}
	return nil
}

// buildHugoConfig assembles hugo.yaml in phases: core settings, theme
// defaults, site-wide params, user params (deep merge), theme customization.
func (st *state) buildHugoConfig() (map[string]any, error) {
	cfg := st.Config()
	features := st.theme.Features()

	// Phase 1: core
	params := map[string]any{}
	root := map[string]any{
		"title":                  cfg.Title,
		"baseURL":                cfg.BaseURL,
		"languageCode":           cfg.Lang,
		"defaultContentLanguage": contentLanguage(cfg.Lang),
		"markup": map[string]any{
			"goldmark":  map[string]any{"renderer": map[string]any{"unsafe": true}},
			"highlight": map[string]any{"style": "github", "lineNos": false, "tabWidth": 4, "noClasses": false},
		},
		"params": params,
		"menu":   map[string]any{"main": navMenu(cfg.Nav)},
	}
	if mod := st.moduleConfig(); mod != nil {
		root["module"] = mod
	}

	// Phase 2: theme defaults
	st.theme.ApplyParams(st, params)

	// Phase 3: site-wide params
	if cfg.Description != "" {
		params["description"] = cfg.Description
	}
	if cfg.Footer != nil {
		if err := applyFooter(root, params, cfg.Footer); err != nil {
			return nil, err
		}
	}
	if el, ok := st.EditLink(); ok {
		params["editLink"] = map[string]any{"pattern": el.Pattern, "text": el.Text}
	}

	// Phase 4: user overrides
	mergeParams(params, cfg.Theme.Params)

	// Phase 5: markup features
	if features.EnableMathPassthrough {
		markup := root["markup"].(map[string]any)
		gm := markup["goldmark"].(map[string]any)
		gm["extensions"] = map[string]any{
			"passthrough": map[string]any{
				"delimiters": map[string]any{
					"block":  [][]string{{"\\[", "\\]"}, {"$$", "$$"}},
					"inline": [][]string{{"\\(", "\\)"}},
				},
				"enable": true,
			},
		}
	}
	if features.EnableOfflineSearchJSON {
		root["outputs"] = map[string]any{"home": []string{"HTML", "RSS", "JSON"}}
	}

	// Phase 6: theme final customization
	st.theme.CustomizeRoot(st, root)
	return root, nil
}

func applyFooter(root, params map[string]any, f *config.Footer) error {
	footer := map[string]any{}
	if f.Message != "" {
		msg, err := markdown.RenderInline(f.Message)
		if err != nil {
			return errors.WrapError(err, errors.CategoryRender, "failed to render footer message").Fatal().Build()
		}
		footer["message"] = msg
	}
	if f.Copyright != "" {
		c, err := markdown.RenderInline(f.Copyright)
		if err != nil {
			return errors.WrapError(err, errors.CategoryRender, "failed to render footer copyright").Fatal().Build()
		}
		footer["copyright"] = c
		root["copyright"] = c
	}
	existing, _ := params["footer"].(map[string]any)
	if existing == nil {
		params["footer"] = footer
		return nil
	}
	mergeParams(existing, footer)
	return nil
}

// moduleConfig imports the theme as a Hugo module and mounts the content
// directory when it exists.
func (st *state) moduleConfig() map[string]any {
	mod := map[string]any{}
	if path := st.theme.Features().ModulePath; path != "" {
		mod["imports"] = []map[string]any{{"path": path}}
	}
	if dir := st.Config().ContentDir; dir != "" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			mod["mounts"] = []map[string]any{{"source": dir, "target": "content"}}
		} else {
			slog.Warn("Content directory not found, site will only contain generated files", logfields.Path(dir))
		}
	}
	if len(mod) == 0 {
		return nil
	}
	return mod
}

// contentLanguage turns a language tag like "en-US" into Hugo's "en".
func contentLanguage(lang string) string {
	code, _, _ := strings.Cut(lang, "-")
	return strings.ToLower(code)
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slug(s string) string {
	return strings.Trim(nonSlug.ReplaceAllString(strings.ToLower(s), "-"), "-")
}

// navMenu flattens the nav tree into Hugo menu entries. Children reference
// their dropdown through "parent"; weights follow the configured order.
func navMenu(items []config.NavItem) []map[string]any {
	entries := []map[string]any{}
	seen := map[string]int{}
	var walk func(items []config.NavItem, parent string)
	walk = func(items []config.NavItem, parent string) {
		for i, it := range items {
			id := slug(it.Text)
			if id == "" {
				id = "item"
			}
			if parent != "" {
				id = parent + "-" + id
			}
			if n := seen[id]; n > 0 {
				seen[id] = n + 1
				id = fmt.Sprintf("%s-%d", id, n+1)
			} else {
				seen[id] = 1
			}
			entry := map[string]any{"identifier": id, "name": it.Text, "weight": (i + 1) * 10}
			if it.Link != "" {
				entry["url"] = it.Link
			}
			if parent != "" {
				entry["parent"] = parent
			}
			entries = append(entries, entry)
			walk(it.Items, id)
		}
	}
	walk(items, "")
	return entries
}
