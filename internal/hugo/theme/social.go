package theme

import "git.home.luguber.info/inful/docsite/internal/sidebar"

var socialNames = map[string]string{
	"github":    "GitHub",
	"gitlab":    "GitLab",
	"x":         "X",
	"twitter":   "Twitter",
	"linkedin":  "LinkedIn",
	"youtube":   "YouTube",
	"mastodon":  "Mastodon",
	"discord":   "Discord",
	"bluesky":   "Bluesky",
	"rss":       "RSS",
	"codeberg":  "Codeberg",
	"instagram": "Instagram",
}

// SocialName returns a display name for a social link icon.
func SocialName(icon string) string {
	if n, ok := socialNames[icon]; ok {
		return n
	}
	return sidebar.Label(icon)
}
