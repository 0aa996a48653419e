package sidebar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/testutil"
)

func TestGenerate(t *testing.T) {
	root := filepath.Join(t.TempDir(), "blog")
	testutil.WriteFile(t, root, "index.md", "---\ntitle: My Blog\n---\nWelcome\n")
	testutil.WriteFile(t, root, "hello-world.md", "# Hello, World\n")
	testutil.WriteFile(t, root, "about.md", "---\ntitle: About me\nweight: 1\n---\n")
	testutil.WriteFile(t, root, "draft.md", "---\ndraft: true\n---\n# Draft\n")
	testutil.WriteFile(t, root, "_partial.md", "# Hidden\n")
	testutil.WriteFile(t, root, ".notes.md", "# Hidden\n")
	testutil.WriteFile(t, root, "image.png", "png")
	testutil.WriteFile(t, root, "go-notes/index.md", "# Go Notes\n")
	testutil.WriteFile(t, root, "go-notes/generics.md", "---\nweight: 2\n---\n# Generics\n")
	testutil.WriteFile(t, root, "go-notes/channels.md", "---\nweight: 1\n---\n")
	testutil.WriteFile(t, root, "go-notes/deep/nested.md", "# Nested\n")
	testutil.WriteFile(t, root, "empty/readme.txt", "nothing")

	got, err := Generate(root, "/blog")
	require.NoError(t, err)

	want := []config.SidebarGroup{
		{
			Text: "My Blog",
			Items: []config.SidebarItem{
				{Text: "Hello, World", Link: "/blog/hello-world/"},
				{Text: "About me", Link: "/blog/about/"},
			},
		},
		{
			Text:      "Go Notes",
			Collapsed: true,
			Items: []config.SidebarItem{
				{Text: "Overview", Link: "/blog/go-notes/"},
				{Text: "Deep", Items: []config.SidebarItem{
					{Text: "Nested", Link: "/blog/go-notes/deep/nested/"},
				}},
				{Text: "Channels", Link: "/blog/go-notes/channels/"},
				{Text: "Generics", Link: "/blog/go-notes/generics/"},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Generate() mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerate_MissingDir(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "nope"), "/nope/")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryNotFound))
}

func TestGenerate_BadFrontmatter(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "broken.md", "---\ntitle: x\n")
	_, err := Generate(root, "/")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestLabel(t *testing.T) {
	cases := map[string]string{
		"getting-started": "Getting Started",
		"go_notes":        "Go Notes",
		"api--v2":         "Api V2",
		"":                "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Label(in), in)
	}
}

func TestResolve(t *testing.T) {
	root := filepath.Join(t.TempDir(), "posts")
	testutil.WriteFile(t, root, "first.md", "# First\n")
	emptyDir := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.MkdirAll(emptyDir, 0o750))

	explicit := []config.SidebarGroup{{Text: "Guide", Items: []config.SidebarItem{{Text: "Intro", Link: "/guide/"}}}}
	sections, err := Resolve(config.SidebarConfig{
		Sections: map[string][]config.SidebarGroup{"/guide/": explicit},
		Auto: []config.SidebarAuto{
			{Dir: root, Base: "/posts/"},
			{Dir: emptyDir, Base: "/empty/"},
			{Dir: filepath.Join(t.TempDir(), "missing"), Base: "/missing/"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"/guide/", "/posts/"}, sections.Prefixes())
	assert.Equal(t, explicit, sections["/guide/"])
	require.Len(t, sections["/posts/"], 1)
	assert.Equal(t, "Posts", sections["/posts/"][0].Text)
}

func TestResolve_ExplicitWins(t *testing.T) {
	root := filepath.Join(t.TempDir(), "guide")
	testutil.WriteFile(t, root, "a.md", "# A\n")
	explicit := []config.SidebarGroup{{Text: "Hand written"}}

	sections, err := Resolve(config.SidebarConfig{
		Sections: map[string][]config.SidebarGroup{"/guide/": explicit},
		Auto:     []config.SidebarAuto{{Dir: root, Base: "/guide/"}},
	})
	require.NoError(t, err)
	assert.Equal(t, explicit, sections["/guide/"])
}
