package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Example returns the configuration written by Init.
func Example() *Config {
	return &Config{
		Title:       "My Notes",
		Description: "Guides, notes and the occasional blog post",
		Lang:        DefaultLang,
		BaseURL:     "https://example.com/",
		ContentDir:  DefaultContentDir,
		Theme: ThemeConfig{
			Name:         string(ThemeHextra),
			Appearance:   string(AppearanceAuto),
			PrimaryColor: "#3451b2",
		},
		Nav: []NavItem{
			{Text: "Home", Link: "/"},
			{Text: "Guide", Link: "/guide/"},
			{Text: "Blog", Items: []NavItem{
				{Text: "Posts", Link: "/blog/"},
				{Text: "Archive", Link: "/blog/archive/"},
			}},
		},
		Sidebar: SidebarConfig{
			Sections: map[string][]SidebarGroup{
				"/guide/": {{
					Text: "Getting Started",
					Items: []SidebarItem{
						{Text: "Introduction", Link: "/guide/"},
						{Text: "Installation", Link: "/guide/installation/"},
					},
				}},
			},
			Auto: []SidebarAuto{{Dir: "content/blog", Base: "/blog/"}},
		},
		SocialLinks: []SocialLink{{Icon: "github", Link: "https://github.com/example/notes"}},
		Footer: &Footer{
			Message:   "Released under the **MIT** License.",
			Copyright: "Copyright © 2024-present Example",
		},
		EditLink: &EditLink{Text: DefaultEditLinkText},
		Live2D: Live2D{
			Enabled:      true,
			PrimaryColor: "pink",
			Tips:         &Live2DTips{WordTheDay: true},
		},
		Output:  OutputConfig{Directory: DefaultOutputDir, Clean: boolPtr(true)},
		Logging: LoggingConfig{Level: string(LogLevelInfo), Format: string(LogFormatText)},
	}
}

// Init writes an example configuration to path. An existing file is only
// replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.AlreadyExistsError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example configuration").Fatal().Build()
	}
	// #nosec G306 -- configuration is not secret
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write configuration").
			Fatal().
			WithContext("path", path).
			Build()
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
