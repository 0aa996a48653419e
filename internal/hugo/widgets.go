package hugo

import (
	"bytes"
	"context"
	"log/slog"

	"git.home.luguber.info/inful/docsite/internal/live2d"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

const brandStylesheet = `<link rel="stylesheet" href="{{ "css/brand.css" | relURL }}">` + "\n"

// stageWidgets writes the theme's head hook partial: the brand stylesheet
// link and, when enabled, the live2d loader. A broken live2d configuration
// is a warning; the stylesheet is still written.
func stageWidgets(_ context.Context, st *state) error {
	hook := st.theme.Features().HeadHook
	if hook == "" {
		slog.Warn("Theme has no head hook, brand styles and widgets are not linked", logfields.Theme(string(st.theme.Name())))
		return nil
	}

	var buf bytes.Buffer
	buf.WriteString(brandStylesheet)

	var warn error
	if l := st.Config().Live2D; l.Enabled {
		loader, err := renderLive2D(st)
		if err != nil {
			warn = newWarnStageError(StageWidgets, err)
		} else {
			buf.Write(loader)
		}
	}

	if err := st.writeFile(hook, buf.Bytes()); err != nil {
		return err
	}
	return warn
}

func renderLive2D(st *state) ([]byte, error) {
	opts, err := live2d.FromConfig(st.Config().Live2D)
	if err != nil {
		st.generator.recorder.IncColorParseFailure("live2d.primary_color")
		return nil, err
	}
	loader, err := live2d.RenderLoader(opts)
	if err != nil {
		return nil, err
	}
	slog.Debug("Rendered live2d loader", logfields.Count(len(opts.Models)))
	return escapeHugoActions(loader), nil
}

// escapeHugoActions keeps Hugo from reading "{{" inside the loader's JSON
// strings as a template action. Both JSON and JS decode \u007b to "{".
func escapeHugoActions(b []byte) []byte {
	return bytes.ReplaceAll(b, []byte("{{"), []byte(`{\u007b`))
}
