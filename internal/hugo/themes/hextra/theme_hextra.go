package hextra

import (
	"fmt"

	"git.home.luguber.info/inful/docsite/internal/color"
	"git.home.luguber.info/inful/docsite/internal/config"
	th "git.home.luguber.info/inful/docsite/internal/hugo/theme"
)

type Theme struct{}

func (Theme) Name() config.Theme { return config.ThemeHextra }
func (Theme) Features() th.Features {
	return th.Features{
		Name: config.ThemeHextra, ModulePath: "github.com/imfing/hextra", ModuleVersion: "v0.11.0",
		EnableMathPassthrough: true, SupportsPerPageEditLinks: true, DefaultSearchType: "flexsearch",
		HeadHook: "layouts/partials/custom/head-end.html",
	}
}

var appearances = map[config.Appearance]string{
	config.AppearanceAuto:  "system",
	config.AppearanceLight: "light",
	config.AppearanceDark:  "dark",
}

func (t Theme) ApplyParams(ctx th.ParamContext, params map[string]any) {
	cfg := ctx.Config()

	th.SetDefault(params, "search", map[string]any{
		"enable": true, "type": t.Features().DefaultSearchType,
		"flexsearch": map[string]any{"index": "content", "tokenize": "forward", "version": "0.8.143"},
	})

	th.SetDefault(params, "theme", map[string]any{
		"default":       appearances[config.NormalizeAppearance(cfg.Theme.Appearance)],
		"displayToggle": true,
	})

	navbar := th.Section(params, "navbar")
	th.SetDefault(navbar, "width", "normal")
	th.SetDefault(navbar, "displayTitle", true)
	if cfg.Theme.Logo != "" {
		th.SetDefault(navbar, "displayLogo", true)
		th.SetDefault(navbar, "logo", map[string]any{"path": cfg.Theme.Logo, "link": "/"})
	}

	editURL := map[string]any{"enable": false}
	if el, ok := ctx.EditLink(); ok && el.Base() != "" {
		editURL = map[string]any{"enable": true, "base": el.Base()}
	}
	th.SetDefault(params, "editURL", editURL)

	footer := th.Section(params, "footer")
	th.SetDefault(footer, "displayCopyright", cfg.Footer != nil && cfg.Footer.Copyright != "")
	th.SetDefault(footer, "displayPoweredBy", false)
}

// CustomizeRoot appends search, social links and the theme toggle to the navbar.
func (Theme) CustomizeRoot(ctx th.ParamContext, root map[string]any) {
	menu := th.Section(root, "menu")
	entries, _ := menu["main"].([]map[string]any)
	entries = append(entries, map[string]any{
		"name": "Search", "weight": 1000, "params": map[string]any{"type": "search"},
	})
	for i, s := range ctx.Config().SocialLinks {
		entries = append(entries, map[string]any{
			"name": th.SocialName(s.Icon), "url": s.Link, "weight": 1100 + i,
			"params": map[string]any{"icon": s.Icon},
		})
	}
	entries = append(entries, map[string]any{
		"name": "Theme", "weight": 1200, "params": map[string]any{"type": "theme-toggle", "label": false},
	})
	menu["main"] = entries
}

// BrandVars sets hextra's primary color, which it takes as HSL components.
func (Theme) BrandVars(p color.Palette) map[string]string {
	h, s, l := p.Brand1.Colorful().Hsl()
	return map[string]string{
		"--primary-hue":        fmt.Sprintf("%.0fdeg", h),
		"--primary-saturation": fmt.Sprintf("%.0f%%", s*100),
		"--primary-lightness":  fmt.Sprintf("%.0f%%", l*100),
	}
}

func init() { th.RegisterTheme(Theme{}) }
