package hugo

import (
	"context"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/sidebar"
)

// SidebarDataFile exposes the resolved sidebar to templates as site.Data.sidebar.
const SidebarDataFile = "data/sidebar.yaml"

func stageData(_ context.Context, st *state) error {
	sections := st.sections
	if sections == nil {
		sections = sidebar.Sections{}
	}
	data, err := yaml.Marshal(sections)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal sidebar data").Fatal().Build()
	}
	return st.writeFile(SidebarDataFile, data)
}
