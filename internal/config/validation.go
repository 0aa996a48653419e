package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/color"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/foundation/normalization"
)

// Validate checks the configuration and returns the first problem found as a
// classified validation error whose context names the offending field.
func (c *Config) Validate() error {
	v := &configurationValidator{config: c}
	return v.validate()
}

type configurationValidator struct {
	config *Config
}

func (cv *configurationValidator) validate() error {
	steps := []func() error{
		cv.validateSite,
		cv.validateTheme,
		cv.validateNav,
		cv.validateSidebar,
		cv.validateSocialLinks,
		cv.validateEditLink,
		cv.validateLive2D,
		cv.validateLogging,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func invalid(field, message string) *errors.ErrorBuilder {
	return errors.ValidationError(message).WithContext("field", field)
}

func (cv *configurationValidator) validateSite() error {
	if strings.TrimSpace(cv.config.Title) == "" {
		return invalid("title", "title is required").Build()
	}
	return nil
}

func (cv *configurationValidator) validateTheme() error {
	t := cv.config.Theme
	if err := checkEnum("theme.name", t.Name, themeNormalizer); err != nil {
		return err
	}
	if err := checkEnum("theme.appearance", t.Appearance, appearanceNormalizer); err != nil {
		return err
	}
	return checkColor("theme.primary_color", t.PrimaryColor)
}

func (cv *configurationValidator) validateNav() error {
	return validateNavItems("nav", cv.config.Nav)
}

func validateNavItems(field string, items []NavItem) error {
	for i, item := range items {
		f := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(item.Text) == "" {
			return invalid(f+".text", "navigation item needs text").Build()
		}
		if item.Link == "" && len(item.Items) == 0 {
			return invalid(f, "navigation item needs a link or child items").WithContext("text", item.Text).Build()
		}
		if err := validateNavItems(f+".items", item.Items); err != nil {
			return err
		}
	}
	return nil
}

func (cv *configurationValidator) validateSidebar() error {
	sections := cv.config.Sidebar.Sections
	for _, prefix := range slices.Sorted(maps.Keys(sections)) {
		groups := sections[prefix]
		field := fmt.Sprintf("sidebar.sections[%q]", prefix)
		if !strings.HasPrefix(prefix, "/") {
			return invalid(field, "sidebar section must be keyed by an absolute URL prefix").Build()
		}
		for i, g := range groups {
			gf := fmt.Sprintf("%s[%d]", field, i)
			if strings.TrimSpace(g.Text) == "" {
				return invalid(gf+".text", "sidebar group needs text").Build()
			}
			if err := validateSidebarItems(gf+".items", g.Items); err != nil {
				return err
			}
		}
	}
	for i, a := range cv.config.Sidebar.Auto {
		f := fmt.Sprintf("sidebar.auto[%d]", i)
		if strings.TrimSpace(a.Dir) == "" {
			return invalid(f+".dir", "sidebar auto entry needs a directory").Build()
		}
		if !strings.HasPrefix(a.Base, "/") {
			return invalid(f+".base", "sidebar base must be an absolute URL prefix").WithContext("base", a.Base).Build()
		}
	}
	return nil
}

func validateSidebarItems(field string, items []SidebarItem) error {
	for i, item := range items {
		f := fmt.Sprintf("%s[%d]", field, i)
		if strings.TrimSpace(item.Text) == "" {
			return invalid(f+".text", "sidebar item needs text").Build()
		}
		if item.Link == "" && len(item.Items) == 0 {
			return invalid(f, "sidebar item needs a link or child items").WithContext("text", item.Text).Build()
		}
		if err := validateSidebarItems(f+".items", item.Items); err != nil {
			return err
		}
	}
	return nil
}

func (cv *configurationValidator) validateSocialLinks() error {
	for i, s := range cv.config.SocialLinks {
		f := fmt.Sprintf("social_links[%d]", i)
		if s.Icon == "" || s.Link == "" {
			return invalid(f, "social link needs an icon and a link").Build()
		}
	}
	return nil
}

func (cv *configurationValidator) validateEditLink() error {
	el := cv.config.EditLink
	if el == nil || el.Pattern == "" {
		return nil
	}
	if !strings.Contains(el.Pattern, ":path") {
		return invalid("edit_link.pattern", "edit link pattern must contain the :path placeholder").
			WithContext("pattern", el.Pattern).
			Build()
	}
	return nil
}

func (cv *configurationValidator) validateLive2D() error {
	l := cv.config.Live2D
	if !l.Enabled {
		return nil
	}
	if l.PrimaryColor != "" {
		if err := checkColor("live2d.primary_color", l.PrimaryColor); err != nil {
			return err
		}
	}
	for i, m := range l.Models {
		f := fmt.Sprintf("live2d.models[%d]", i)
		if strings.TrimSpace(m.Path) == "" {
			return invalid(f+".path", "live2d model needs a path").Build()
		}
		if m.Scale < 0 {
			return invalid(f+".scale", "live2d model scale must not be negative").WithContext("scale", m.Scale).Build()
		}
		if len(m.Position) != 0 && len(m.Position) != 2 {
			return invalid(f+".position", "live2d model position must be [x, y]").Build()
		}
		if m.Volume != nil && (*m.Volume < 0 || *m.Volume > 1) {
			return invalid(f+".volume", "live2d model volume must be within [0, 1]").WithContext("volume", *m.Volume).Build()
		}
	}
	return nil
}

func (cv *configurationValidator) validateLogging() error {
	if err := checkEnum("logging.level", cv.config.Logging.Level, logLevelNormalizer); err != nil {
		return err
	}
	return checkEnum("logging.format", cv.config.Logging.Format, logFormatNormalizer)
}

func checkEnum[T comparable](field, raw string, n *normalization.Normalizer[T]) error {
	if _, err := n.NormalizeWithError(raw); err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "unsupported value").
			Fatal().
			WithContext("field", field).
			Build()
	}
	return nil
}

func checkColor(field, raw string) error {
	if _, err := color.Lookup(raw); err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid color").
			Fatal().
			WithContext("field", field).
			WithContext("value", raw).
			Build()
	}
	return nil
}
