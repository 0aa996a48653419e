package hugo

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/docsite/internal/git"
	th "git.home.luguber.info/inful/docsite/internal/hugo/theme"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// stageResolveEditLink fills in the edit link pattern. Without an explicit
// pattern it is derived from the origin remote of the source repository;
// failing to do so is a warning and the site is generated without edit links.
func stageResolveEditLink(_ context.Context, st *state) error {
	el := st.Config().EditLink
	if el == nil {
		return nil
	}
	link := th.EditLink{Pattern: el.Pattern, Text: el.Text, Branch: el.Branch, DocsDir: el.DocsDir}
	if link.Pattern == "" {
		dir := st.generator.sourceDir
		remote, err := git.DetectRemoteURL(dir)
		if err != nil {
			return newWarnStageError(StageEditLink, err)
		}
		if link.Branch == "" {
			link.Branch = git.CurrentBranch(dir)
		}
		link.RepoURL = remote
		link.Pattern = git.EditLinkPattern(remote, link.Branch, link.DocsDir)
		slog.Debug("Derived edit link from git remote", logfields.Remote(remote), slog.String("pattern", link.Pattern))
	}
	if !st.theme.Features().SupportsPerPageEditLinks {
		slog.Debug("Theme renders edit links from its own params only", logfields.Theme(string(st.theme.Name())))
	}
	st.editLink = &link
	return nil
}
