package relearn

import (
	"strings"

	"git.home.luguber.info/inful/docsite/internal/color"
	"git.home.luguber.info/inful/docsite/internal/config"
	th "git.home.luguber.info/inful/docsite/internal/hugo/theme"
)

type Theme struct{}

func (Theme) Name() config.Theme { return config.ThemeRelearn }

func (Theme) Features() th.Features {
	return th.Features{
		Name:                     config.ThemeRelearn,
		ModulePath:               "github.com/McShelby/hugo-theme-relearn",
		EnableMathPassthrough:    true,
		EnableOfflineSearchJSON:  true,
		SupportsPerPageEditLinks: true,
		HeadHook:                 "layouts/partials/custom-header.html",
	}
}

var variants = map[config.Appearance]any{
	config.AppearanceAuto:  []string{"auto", "relearn-light", "relearn-dark"},
	config.AppearanceLight: "relearn-light",
	config.AppearanceDark:  "relearn-dark",
}

func (Theme) ApplyParams(ctx th.ParamContext, params map[string]any) {
	cfg := ctx.Config()

	th.SetDefault(params, "themeVariant", variants[config.NormalizeAppearance(cfg.Theme.Appearance)])
	th.SetDefault(params, "disableGeneratorVersion", false)
	th.SetDefault(params, "disableBreadcrumb", false)
	th.SetDefault(params, "showVisitedLinks", true)
	th.SetDefault(params, "collapsibleMenu", true)
	th.SetDefault(params, "alwaysopen", false)
	th.SetDefault(params, "disableLandingPageButton", true)
	th.SetDefault(params, "mermaid", map[string]any{"enable": true})
	th.SetDefault(params, "math", map[string]any{"enable": true})

	// relearn substitutes ${FilePath} with the page's path below content/.
	if el, ok := ctx.EditLink(); ok {
		th.SetDefault(params, "editURL", strings.Replace(el.Pattern, th.PathPlaceholder, "${FilePath}", 1))
	}
}

// CustomizeRoot renders social links as sidebar shortcuts.
func (Theme) CustomizeRoot(ctx th.ParamContext, root map[string]any) {
	links := ctx.Config().SocialLinks
	if len(links) == 0 {
		return
	}
	menu := th.Section(root, "menu")
	shortcuts := make([]map[string]any, 0, len(links))
	for i, s := range links {
		shortcuts = append(shortcuts, map[string]any{
			"name":   th.SocialName(s.Icon),
			"url":    s.Link,
			"weight": (i + 1) * 10,
			"pre":    "<i class='fab fa-fw fa-" + s.Icon + "'></i>",
		})
	}
	menu["shortcuts"] = shortcuts
}

func (Theme) BrandVars(p color.Palette) map[string]string {
	return map[string]string{
		"--PRIMARY-color":         p.Brand1.Hex(),
		"--MAIN-LINK-color":       p.Brand1.Hex(),
		"--MAIN-LINK-HOVER-color": p.Brand3.Hex(),
	}
}

func init() { th.RegisterTheme(Theme{}) }
