package live2d

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

//go:embed assets/loader.html.tmpl
var loaderTemplate string

var loader = template.Must(template.New("live2d").Parse(loaderTemplate))

// RenderLoader renders the HTML partial that imports oh-my-live2d on the
// client and calls loadOml2d with opts. With WordTheDay set, idle tips show
// the hitokoto quote of the day.
func RenderLoader(opts Options) ([]byte, error) {
	if opts.ScriptURL == "" {
		return nil, errors.ValidationError("live2d script URL is empty").Build()
	}
	if opts.Models == nil {
		opts.Models = []Model{}
	}
	data, err := json.Marshal(opts)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to encode live2d options").Fatal().Build()
	}

	var buf bytes.Buffer
	err = loader.Execute(&buf, struct {
		Options    template.JS
		ScriptURL  string
		WordTheDay bool
	}{
		// #nosec G203 -- produced by json.Marshal, which escapes <, > and &
		Options:    template.JS(data),
		ScriptURL:  opts.ScriptURL,
		WordTheDay: opts.WordTheDay,
	})
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryRender, "failed to render live2d loader").Fatal().Build()
	}
	return buf.Bytes(), nil
}
