package hugo

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/color"
	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// BrandCSSFile holds the brand palette as CSS custom properties.
const BrandCSSFile = "static/css/brand.css"

// stageStyles derives the brand palette from the primary color and writes it
// as CSS custom properties, together with the theme's own variables. An
// unusable color falls back to the default with a warning.
func stageStyles(_ context.Context, st *state) error {
	raw := st.Config().Theme.PrimaryColor
	primary, err := color.Lookup(raw)
	var warn error
	if err != nil {
		st.generator.recorder.IncColorParseFailure("theme.primary_color")
		slog.Warn("Invalid primary color, using default", logfields.Color(raw), logfields.Error(err))
		primary = color.MustParse(config.DefaultPrimaryColor)
		warn = newWarnStageError(StageStyles, err)
	}

	st.palette = color.NewPalette(primary)
	if err := st.writeFile(BrandCSSFile, []byte(brandCSS(st.palette, st.theme.BrandVars(st.palette)))); err != nil {
		return err
	}
	return warn
}

func brandCSS(p color.Palette, themeVars map[string]string) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, s := range p.Shades() {
		fmt.Fprintf(&b, "  --docsite-%s: %s;\n", s.Name, s.Color.Hex())
	}
	for _, k := range slices.Sorted(maps.Keys(themeVars)) {
		fmt.Fprintf(&b, "  %s: %s;\n", k, themeVars[k])
	}
	b.WriteString("}\n")
	return b.String()
}
