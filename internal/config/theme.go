package config

import "git.home.luguber.info/inful/docsite/internal/foundation/normalization"

// Theme is a typed enumeration of supported Hugo themes.
type Theme string

const (
	ThemeHextra  Theme = "hextra"
	ThemeRelearn Theme = "relearn"
	ThemeDocsy   Theme = "docsy"
)

var themeNormalizer = normalization.NewNormalizer(map[string]Theme{
	"hextra":  ThemeHextra,
	"relearn": ThemeRelearn,
	"docsy":   ThemeDocsy,
}, ThemeHextra)

// NormalizeTheme maps a raw theme name onto a Theme, defaulting to hextra.
func NormalizeTheme(raw string) Theme {
	return themeNormalizer.Normalize(raw)
}

// Appearance is the default color scheme of the site.
type Appearance string

const (
	AppearanceAuto  Appearance = "auto"
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

var appearanceNormalizer = normalization.NewNormalizer(map[string]Appearance{
	"auto":   AppearanceAuto,
	"system": AppearanceAuto,
	"light":  AppearanceLight,
	"dark":   AppearanceDark,
}, AppearanceAuto)

func NormalizeAppearance(raw string) Appearance {
	return appearanceNormalizer.Normalize(raw)
}
