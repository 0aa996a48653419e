package live2d

import (
	"slices"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/color"
	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// FromConfig maps the live2d configuration onto widget options.
//
// CSS color names are passed through verbatim since the widget understands
// them; hex colors are normalised through color.Parse. Without configured
// models the stock set from DefaultModels is used.
func FromConfig(cfg config.Live2D) (Options, error) {
	opts := Options{
		ScriptURL: cfg.ScriptURL,
		Models:    DefaultModels(),
	}
	if opts.ScriptURL == "" {
		opts.ScriptURL = config.DefaultLive2DScript
	}

	if pc := strings.TrimSpace(cfg.PrimaryColor); pc != "" {
		resolved, err := resolveColor(pc)
		if err != nil {
			return Options{}, err
		}
		opts.PrimaryColor = resolved
	}

	if len(cfg.Models) > 0 {
		opts.Models = make([]Model, 0, len(cfg.Models))
		for _, m := range cfg.Models {
			model := Model{
				Path:     m.Path,
				Scale:    m.Scale,
				Position: slices.Clone(m.Position),
				Volume:   m.Volume,
			}
			if m.StageStyle != nil {
				model.StageStyle = &StageStyle{Width: m.StageStyle.Width, Height: m.StageStyle.Height}
			}
			opts.Models = append(opts.Models, model)
		}
	}

	if cfg.Tips != nil {
		opts.WordTheDay = cfg.Tips.WordTheDay
		if len(cfg.Tips.Messages) > 0 {
			opts.Tips = &Tips{IdleTips: &IdleTips{Message: slices.Clone(cfg.Tips.Messages)}}
		}
	}
	return opts, nil
}

func resolveColor(s string) (string, error) {
	if color.IsNamed(s) {
		return strings.ToLower(s), nil
	}
	res := color.Parse(s)
	if res.IsErr() {
		return "", errors.WrapError(res.UnwrapErr(), errors.CategoryValidation, "invalid live2d primary color").
			Fatal().
			WithContext("field", "live2d.primary_color").
			Build()
	}
	return res.Unwrap().Hex(), nil
}
