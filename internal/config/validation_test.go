package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/color"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func validConfig() *Config {
	cfg := Example()
	cfg.ApplyDefaults()
	return cfg
}

func TestValidate_Example(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidate_Failures(t *testing.T) {
	vol := 2.0
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty title", func(c *Config) { c.Title = "  " }, "title"},
		{"unknown theme", func(c *Config) { c.Theme.Name = "vuepress" }, "theme.name"},
		{"unknown appearance", func(c *Config) { c.Theme.Appearance = "sepia" }, "theme.appearance"},
		{"bad primary color", func(c *Config) { c.Theme.PrimaryColor = "#12" }, "theme.primary_color"},
		{"nav without text", func(c *Config) { c.Nav = []NavItem{{Link: "/"}} }, "nav[0].text"},
		{"nav without target", func(c *Config) { c.Nav = []NavItem{{Text: "Dead end"}} }, "nav[0]"},
		{"nested nav", func(c *Config) {
			c.Nav = []NavItem{{Text: "Blog", Items: []NavItem{{Text: "Posts"}}}}
		}, "nav[0].items[0]"},
		{"relative sidebar prefix", func(c *Config) {
			c.Sidebar.Sections = map[string][]SidebarGroup{"guide/": {{Text: "G"}}}
		}, `sidebar.sections["guide/"]`},
		{"sidebar group text", func(c *Config) {
			c.Sidebar.Sections = map[string][]SidebarGroup{"/guide/": {{}}}
		}, `sidebar.sections["/guide/"][0].text`},
		{"sidebar item target", func(c *Config) {
			c.Sidebar.Sections = map[string][]SidebarGroup{"/guide/": {{Text: "G", Items: []SidebarItem{{Text: "x"}}}}}
		}, `sidebar.sections["/guide/"][0].items[0]`},
		{"sidebar auto dir", func(c *Config) { c.Sidebar.Auto = []SidebarAuto{{Base: "/x/"}} }, "sidebar.auto[0].dir"},
		{"social link", func(c *Config) { c.SocialLinks = []SocialLink{{Icon: "github"}} }, "social_links[0]"},
		{"edit link placeholder", func(c *Config) { c.EditLink.Pattern = "https://x/edit" }, "edit_link.pattern"},
		{"live2d color", func(c *Config) { c.Live2D.PrimaryColor = "not-a-color" }, "live2d.primary_color"},
		{"live2d path", func(c *Config) { c.Live2D.Models = []Live2DModel{{Scale: 1}} }, "live2d.models[0].path"},
		{"live2d scale", func(c *Config) { c.Live2D.Models = []Live2DModel{{Path: "m.json", Scale: -1}} }, "live2d.models[0].scale"},
		{"live2d position", func(c *Config) {
			c.Live2D.Models = []Live2DModel{{Path: "m.json", Position: []float64{1}}}
		}, "live2d.models[0].position"},
		{"live2d volume", func(c *Config) { c.Live2D.Models = []Live2DModel{{Path: "m.json", Volume: &vol}} }, "live2d.models[0].volume"},
		{"log level", func(c *Config) { c.Logging.Level = "trace" }, "logging.level"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
			classified, ok := errors.AsClassified(err)
			require.True(t, ok)
			field, _ := classified.Context().GetString("field")
			assert.Equal(t, tt.field, field)
		})
	}
}

func TestValidate_ColorCauseIsPreserved(t *testing.T) {
	cfg := validConfig()
	cfg.Theme.PrimaryColor = "#zzzzzz"
	assert.ErrorIs(t, cfg.Validate(), color.ErrInvalidHex)
}

func TestValidate_DisabledLive2DIsNotChecked(t *testing.T) {
	cfg := validConfig()
	cfg.Live2D.Enabled = false
	cfg.Live2D.PrimaryColor = "not-a-color"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_NamedThemeColor(t *testing.T) {
	cfg := validConfig()
	cfg.Theme.PrimaryColor = "teal"
	assert.NoError(t, cfg.Validate())
}
