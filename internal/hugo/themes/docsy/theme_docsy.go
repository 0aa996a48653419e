package docsy

import (
	"git.home.luguber.info/inful/docsite/internal/color"
	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/git"
	th "git.home.luguber.info/inful/docsite/internal/hugo/theme"
)

type Theme struct{}

func (Theme) Name() config.Theme { return config.ThemeDocsy }
func (Theme) Features() th.Features {
	return th.Features{
		Name: config.ThemeDocsy, ModulePath: "github.com/google/docsy",
		EnableOfflineSearchJSON: true,
		HeadHook:                "layouts/partials/hooks/head-end.html",
	}
}

func (Theme) ApplyParams(ctx th.ParamContext, params map[string]any) {
	cfg := ctx.Config()
	th.SetDefault(params, "version", "main")
	if el, ok := ctx.EditLink(); ok && el.RepoURL != "" && git.DetectForge(el.RepoURL) == git.ForgeGitHub {
		th.SetDefault(params, "github_repo", el.RepoURL)
		th.SetDefault(params, "github_branch", el.Branch)
		if el.DocsDir != "" {
			th.SetDefault(params, "github_subdir", el.DocsDir)
		}
		th.SetDefault(params, "edit_page", true)
	}
	th.SetDefault(params, "offlineSearch", true)
	th.SetDefault(params, "offlineSearchSummaryLength", 200)
	th.SetDefault(params, "offlineSearchMaxResults", 25)
	th.SetDefault(params, "ui", map[string]any{
		"sidebar_menu_compact":  false,
		"sidebar_menu_foldable": true,
		"breadcrumb_disable":    false,
		"navbar_logo":           cfg.Theme.Logo != "",
		"showLightDarkModeMenu": true,
	})
	if _, ok := params["links"]; !ok && len(cfg.SocialLinks) > 0 {
		developer := make([]map[string]any, 0, len(cfg.SocialLinks))
		for _, s := range cfg.SocialLinks {
			developer = append(developer, map[string]any{
				"name": th.SocialName(s.Icon), "url": s.Link, "icon": "fab fa-" + s.Icon,
			})
		}
		params["links"] = map[string]any{"developer": developer}
	}
}

func (Theme) CustomizeRoot(_ th.ParamContext, _ map[string]any) {}

// BrandVars overrides the Bootstrap 5 custom properties docsy builds on.
func (Theme) BrandVars(p color.Palette) map[string]string {
	return map[string]string{
		"--bs-primary":          p.Brand1.Hex(),
		"--bs-link-color":       p.Brand1.Hex(),
		"--bs-link-hover-color": p.Brand3.Hex(),
	}
}

func init() { th.RegisterTheme(Theme{}) }
