package config

// Config is the declarative description of a documentation/blog site.
type Config struct {
	Title       string        `yaml:"title"`
	Description string        `yaml:"description,omitempty"`
	Lang        string        `yaml:"lang,omitempty"`
	BaseURL     string        `yaml:"base_url,omitempty"`
	ContentDir  string        `yaml:"content_dir,omitempty"` // markdown sources, mounted as Hugo content
	Theme       ThemeConfig   `yaml:"theme"`
	Nav         []NavItem     `yaml:"nav,omitempty"`
	Sidebar     SidebarConfig `yaml:"sidebar,omitempty"`
	SocialLinks []SocialLink  `yaml:"social_links,omitempty"`
	Footer      *Footer       `yaml:"footer,omitempty"`
	EditLink    *EditLink     `yaml:"edit_link,omitempty"`
	Live2D      Live2D        `yaml:"live2d,omitempty"`
	Output      OutputConfig  `yaml:"output"`
	Logging     LoggingConfig `yaml:"logging,omitempty"`
}

// ThemeConfig selects the Hugo theme and its look.
type ThemeConfig struct {
	Name         string         `yaml:"name,omitempty"` // normalized via ThemeType()
	Appearance   string         `yaml:"appearance,omitempty"`
	PrimaryColor string         `yaml:"primary_color,omitempty"` // hex or CSS color name
	Logo         string         `yaml:"logo,omitempty"`
	Params       map[string]any `yaml:"params,omitempty"` // deep-merged over theme defaults
}

// ThemeType returns the normalized theme.
func (t ThemeConfig) ThemeType() Theme {
	return NormalizeTheme(t.Name)
}

// NavItem is an entry of the top navigation bar. Items with children render as dropdowns.
type NavItem struct {
	Text  string    `yaml:"text"`
	Link  string    `yaml:"link,omitempty"`
	Items []NavItem `yaml:"items,omitempty"`
}

// SidebarConfig holds explicit sidebar sections keyed by URL prefix
// (e.g. "/guide/") and directories to derive sections from.
type SidebarConfig struct {
	Sections map[string][]SidebarGroup `yaml:"sections,omitempty"`
	Auto     []SidebarAuto             `yaml:"auto,omitempty"`
}

// SidebarGroup is a titled block of sidebar links.
type SidebarGroup struct {
	Text      string        `yaml:"text"`
	Collapsed bool          `yaml:"collapsed,omitempty"`
	Items     []SidebarItem `yaml:"items,omitempty"`
}

// SidebarItem is a link, optionally with nested items.
type SidebarItem struct {
	Text  string        `yaml:"text"`
	Link  string        `yaml:"link,omitempty"`
	Items []SidebarItem `yaml:"items,omitempty"`
}

// SidebarAuto generates the section Base from the markdown files under Dir.
type SidebarAuto struct {
	Dir  string `yaml:"dir"`
	Base string `yaml:"base,omitempty"` // URL prefix, defaults to "/<basename of dir>/"
}

// SocialLink is an icon link shown in the navigation bar.
type SocialLink struct {
	Icon string `yaml:"icon"`
	Link string `yaml:"link"`
}

// Footer text; both fields accept inline markdown.
type Footer struct {
	Message   string `yaml:"message,omitempty"`
	Copyright string `yaml:"copyright,omitempty"`
}

// EditLink configures the "edit this page" link. Pattern contains a ":path"
// placeholder; when empty it is derived from the repository's origin remote.
type EditLink struct {
	Pattern string `yaml:"pattern,omitempty"`
	Text    string `yaml:"text,omitempty"`
	Branch  string `yaml:"branch,omitempty"`
	DocsDir string `yaml:"docs_dir,omitempty"`
}

// Live2D configures the animated avatar widget.
type Live2D struct {
	Enabled      bool          `yaml:"enabled"`
	PrimaryColor string        `yaml:"primary_color,omitempty"`
	ScriptURL    string        `yaml:"script_url,omitempty"`
	Models       []Live2DModel `yaml:"models,omitempty"`
	Tips         *Live2DTips   `yaml:"tips,omitempty"`
}

// Live2DModel is one avatar model the widget can cycle through.
type Live2DModel struct {
	Path       string      `yaml:"path"`
	Scale      float64     `yaml:"scale,omitempty"`
	Position   []float64   `yaml:"position,omitempty"` // [x, y] offset in px
	Volume     *float64    `yaml:"volume,omitempty"`
	StageStyle *StageStyle `yaml:"stage_style,omitempty"`
}

// StageStyle sizes the widget canvas in px.
type StageStyle struct {
	Width  int `yaml:"width,omitempty"`
	Height int `yaml:"height,omitempty"`
}

// Live2DTips configures the speech bubble.
type Live2DTips struct {
	WordTheDay bool     `yaml:"word_the_day"` // idle tips show the hitokoto quote of the day
	Messages   []string `yaml:"messages,omitempty"`
}

// OutputConfig controls where the Hugo project is written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	// Clean is nil when the key is absent so an explicit false survives defaulting.
	Clean *bool `yaml:"clean,omitempty"`
}

// ShouldClean reports whether the output directory is removed before generating.
func (o OutputConfig) ShouldClean() bool {
	return o.Clean != nil && *o.Clean
}

// LoggingConfig controls the default slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}
