package git

import (
	"path"
	"strings"
)

// Forge identifies the hosting software behind a remote.
type Forge string

const (
	ForgeGitHub    Forge = "github"
	ForgeGitLab    Forge = "gitlab"
	ForgeForgejo   Forge = "forgejo" // also Gitea and Codeberg
	ForgeBitbucket Forge = "bitbucket"
	ForgeUnknown   Forge = "unknown"
)

// PathPlaceholder is replaced by the page path when the theme renders the link.
const PathPlaceholder = ":path"

// DetectForge guesses the forge from the remote host name.
func DetectForge(remoteURL string) Forge {
	host := Host(remoteURL)
	switch {
	case host == "github.com" || strings.HasPrefix(host, "github."):
		return ForgeGitHub
	case strings.Contains(host, "gitlab"):
		return ForgeGitLab
	case strings.Contains(host, "gitea"), strings.Contains(host, "forgejo"), host == "codeberg.org":
		return ForgeForgejo
	case host == "bitbucket.org":
		return ForgeBitbucket
	default:
		return ForgeUnknown
	}
}

// EditLinkPattern builds an edit URL pattern containing ":path" for the page
// path relative to docsDir. Unknown forges use the GitHub layout.
func EditLinkPattern(remoteURL, branch, docsDir string) string {
	base := strings.TrimSuffix(NormalizeRemoteURL(remoteURL), "/")
	if base == "" {
		return ""
	}
	if branch == "" {
		branch = defaultBranch
	}
	rel := path.Join(branch, strings.Trim(path.Clean("/"+docsDir), "/"), PathPlaceholder)

	switch DetectForge(base) {
	case ForgeGitLab:
		return base + "/-/edit/" + rel
	case ForgeForgejo:
		return base + "/_edit/" + rel
	case ForgeBitbucket:
		return base + "/src/" + rel + "?mode=edit"
	default:
		return base + "/edit/" + rel
	}
}
