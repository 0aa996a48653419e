package config

import (
	"path/filepath"
	"strings"
)

const (
	DefaultTitle        = "Documentation"
	DefaultLang         = "en-US"
	DefaultBaseURL      = "/"
	DefaultContentDir   = "content"
	DefaultPrimaryColor = "#3451b2"
	DefaultOutputDir    = "./site"
	DefaultEditLinkText = "Edit this page"
	DefaultLive2DScript = "https://unpkg.com/oh-my-live2d@latest"
)

// ApplyDefaults fills unset fields. It is idempotent.
func (c *Config) ApplyDefaults() {
	if strings.TrimSpace(c.Title) == "" {
		c.Title = DefaultTitle
	}
	if c.Lang == "" {
		c.Lang = DefaultLang
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	c.applyThemeDefaults()
	c.applySidebarDefaults()
	if c.EditLink != nil && c.EditLink.Text == "" {
		c.EditLink.Text = DefaultEditLinkText
	}
	if c.Live2D.Enabled {
		if c.Live2D.PrimaryColor == "" {
			c.Live2D.PrimaryColor = c.Theme.PrimaryColor
		}
		if c.Live2D.ScriptURL == "" {
			c.Live2D.ScriptURL = DefaultLive2DScript
		}
	}
	if c.Output.Directory == "" {
		c.Output.Directory = DefaultOutputDir
		if c.Output.Clean == nil {
			c.Output.Clean = boolPtr(true)
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = string(LogLevelInfo)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = string(LogFormatText)
	}
}

func (c *Config) applyThemeDefaults() {
	if c.Theme.Name == "" {
		c.Theme.Name = string(ThemeHextra)
	}
	if c.Theme.Appearance == "" {
		c.Theme.Appearance = string(AppearanceAuto)
	}
	if c.Theme.PrimaryColor == "" {
		c.Theme.PrimaryColor = DefaultPrimaryColor
	}
}

func (c *Config) applySidebarDefaults() {
	for i := range c.Sidebar.Auto {
		a := &c.Sidebar.Auto[i]
		if a.Base == "" && a.Dir != "" {
			a.Base = "/" + filepath.Base(filepath.Clean(a.Dir)) + "/"
		}
	}
}
