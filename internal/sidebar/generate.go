package sidebar

import (
	"cmp"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/markdown"
)

const indexFile = "index.md"

// page is one markdown file or directory in the docs tree.
type page struct {
	name     string
	title    string
	link     string
	weight   int
	children []page
}

// Generate builds sidebar groups from the markdown files under dir.
//
// Loose pages in dir form the first group, titled after dir. Every
// subdirectory becomes a collapsed group; deeper directories nest as items.
// Pages are ordered by frontmatter weight, then file name. Hidden files,
// names starting with "_" and pages marked draft are skipped.
func Generate(dir, base string) ([]config.SidebarGroup, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.NotFoundError("sidebar directory not found").WithContext("path", dir).WithCause(err).Build()
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	root, err := readDir(dir, base)
	if err != nil {
		return nil, err
	}

	var groups []config.SidebarGroup
	var loose []config.SidebarItem
	for _, p := range root.children {
		if p.children == nil {
			loose = append(loose, toItem(p))
		}
	}
	if len(loose) > 0 {
		groups = append(groups, config.SidebarGroup{Text: root.title, Items: loose})
	}
	for _, p := range root.children {
		if p.children == nil {
			continue
		}
		g := config.SidebarGroup{Text: p.title, Collapsed: true}
		if p.link != "" {
			g.Items = append(g.Items, config.SidebarItem{Text: "Overview", Link: p.link})
		}
		for _, c := range p.children {
			g.Items = append(g.Items, toItem(c))
		}
		if len(g.Items) > 0 {
			groups = append(groups, g)
		}
	}
	return groups, nil
}

func toItem(p page) config.SidebarItem {
	item := config.SidebarItem{Text: p.title, Link: p.link}
	for _, c := range p.children {
		item.Items = append(item.Items, toItem(c))
	}
	return item
}

// readDir returns a page for dir whose children are its pages and subdirectories.
// A directory page has a non-nil children slice; link is set only when it has an index.md.
func readDir(dir, link string) (page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return page{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to read sidebar directory").
			Fatal().
			WithContext("path", dir).
			Build()
	}

	p := page{name: filepath.Base(dir), title: Label(filepath.Base(dir)), children: []page{}}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		full := filepath.Join(dir, name)

		if e.IsDir() {
			child, err := readDir(full, path.Join(link, name)+"/")
			if err != nil {
				return page{}, err
			}
			if len(child.children) > 0 || child.link != "" {
				p.children = append(p.children, child)
			}
			continue
		}
		if !strings.EqualFold(filepath.Ext(name), ".md") {
			continue
		}

		meta, err := readMeta(full)
		if err != nil {
			return page{}, err
		}
		if meta.draft {
			continue
		}
		if strings.EqualFold(name, indexFile) {
			p.link = link
			if meta.title != "" {
				p.title = meta.title
			}
			p.weight = meta.weight
			continue
		}
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		title := meta.title
		if title == "" {
			title = Label(stem)
		}
		p.children = append(p.children, page{
			name:   stem,
			title:  title,
			link:   path.Join(link, stem) + "/",
			weight: meta.weight,
		})
	}

	slices.SortStableFunc(p.children, func(a, b page) int {
		if c := cmp.Compare(a.weight, b.weight); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})
	return p, nil
}

type pageMeta struct {
	title  string
	weight int
	draft  bool
}

func readMeta(file string) (pageMeta, error) {
	// #nosec G304 -- file comes from walking the configured docs directory
	content, err := os.ReadFile(file)
	if err != nil {
		return pageMeta{}, errors.WrapError(err, errors.CategoryFileSystem, "failed to read page").
			Fatal().
			WithContext("path", file).
			Build()
	}
	fm, body, err := markdown.SplitFrontmatter(content)
	if err != nil {
		return pageMeta{}, errors.WrapError(err, errors.CategoryValidation, "invalid frontmatter").
			Fatal().
			WithContext("path", file).
			Build()
	}

	var m pageMeta
	if t, ok := fm["title"].(string); ok {
		m.title = strings.TrimSpace(t)
	}
	if m.title == "" {
		m.title = markdown.FirstHeading(body)
	}
	switch w := fm["weight"].(type) {
	case int:
		m.weight = w
	case float64:
		m.weight = int(w)
	}
	if d, ok := fm["draft"].(bool); ok {
		m.draft = d
	}
	return m, nil
}

// Label turns a file or directory name such as "getting-started" into "Getting Started".
func Label(name string) string {
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	// Casers are stateful, so each call gets its own.
	return cases.Title(language.Und).String(strings.Join(strings.Fields(name), " "))
}
