package hugo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/color"
	"git.home.luguber.info/inful/docsite/internal/config"
	th "git.home.luguber.info/inful/docsite/internal/hugo/theme"
	"git.home.luguber.info/inful/docsite/internal/metrics"
)

func TestNavMenu(t *testing.T) {
	got := navMenu([]config.NavItem{
		{Text: "Home", Link: "/"},
		{Text: "Docs", Items: []config.NavItem{
			{Text: "Guide", Link: "/guide/"},
			{Text: "Guide", Link: "/guide/v1/"},
		}},
		{Text: "Home", Link: "/home/"},
		{Text: "✨", Link: "/sparkle/"},
	})
	want := []map[string]any{
		{"identifier": "home", "name": "Home", "weight": 10, "url": "/"},
		{"identifier": "docs", "name": "Docs", "weight": 20},
		{"identifier": "docs-guide", "name": "Guide", "weight": 10, "url": "/guide/", "parent": "docs"},
		{"identifier": "docs-guide-2", "name": "Guide", "weight": 20, "url": "/guide/v1/", "parent": "docs"},
		{"identifier": "home-2", "name": "Home", "weight": 30, "url": "/home/"},
		{"identifier": "item", "name": "✨", "weight": 40, "url": "/sparkle/"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("navMenu mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, navMenu(nil))
}

func TestMergeParams(t *testing.T) {
	dst := map[string]any{
		"search": map[string]any{"enable": true, "type": "flexsearch"},
		"tags":   []string{"a"},
	}
	src := map[string]any{
		"search": map[string]any{"enable": false},
		"tags":   []string{"b", "c"},
		"ui":     map[string]any{"compact": true},
	}
	mergeParams(dst, src)

	assert.Equal(t, map[string]any{"enable": false, "type": "flexsearch"}, dst["search"])
	assert.Equal(t, []string{"b", "c"}, dst["tags"])

	dst["ui"].(map[string]any)["compact"] = false
	assert.Equal(t, true, src["ui"].(map[string]any)["compact"], "nested maps are copied")
}

func TestContentLanguage(t *testing.T) {
	assert.Equal(t, "en", contentLanguage("en-US"))
	assert.Equal(t, "zh", contentLanguage("zh-CN"))
	assert.Equal(t, "de", contentLanguage("DE"))
}

func TestModuleName(t *testing.T) {
	assert.Equal(t, "docs-example-com", moduleName("https://docs.example.com/"))
	assert.Equal(t, "localhost", moduleName("http://localhost:1313/blog/"))
	assert.Equal(t, defaultModuleName, moduleName("/"))
	assert.Equal(t, defaultModuleName, moduleName(""))
}

func TestEscapeHugoActions(t *testing.T) {
	got := escapeHugoActions([]byte(`{"a":"{{ .Title }}"}`))
	assert.Equal(t, `{"a":"{\u007b .Title }}"}`, string(got))
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(got, &decoded))
	assert.Equal(t, "{{ .Title }}", decoded["a"])
}

func TestBrandCSS(t *testing.T) {
	p := color.NewPalette(color.MustParse("#ff0000"))
	css := brandCSS(p, map[string]string{"--z": "1", "--a": "2"})
	assert.Equal(t, ":root {\n"+
		"  --docsite-brand-1: #ff0000;\n"+
		"  --docsite-brand-2: "+p.Brand2.Hex()+";\n"+
		"  --docsite-brand-3: "+p.Brand3.Hex()+";\n"+
		"  --docsite-brand-soft: #ff000024;\n"+
		"  --a: 2;\n"+
		"  --z: 1;\n"+
		"}\n", css)
}

func TestCheckCleanTarget(t *testing.T) {
	src := t.TempDir()
	require.Error(t, checkCleanTarget(src, src))
	require.Error(t, checkCleanTarget(string(filepath.Separator), src))
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.Error(t, checkCleanTarget(cwd, src))
	require.NoError(t, checkCleanTarget(filepath.Join(src, "site"), src))

	// ancestors of the sources or the working directory
	require.Error(t, checkCleanTarget(filepath.Dir(src), src))
	require.Error(t, checkCleanTarget(filepath.Join(src, ".."), src))
	require.Error(t, checkCleanTarget(filepath.Dir(cwd), src))
	require.Error(t, checkCleanTarget(filepath.Join(src, "notes"), src, filepath.Join(src, "notes", "content")))
	require.NoError(t, checkCleanTarget(filepath.Join(src, "notes-site"), src, filepath.Join(src, "notes")))
}

func TestWithin(t *testing.T) {
	assert.True(t, within("/a/b", "/a"))
	assert.True(t, within("/a", "/a"))
	assert.False(t, within("/a", "/a/b"))
	assert.False(t, within("/ab", "/a"))
	assert.False(t, within("/a/..b", "/a/b"))
	assert.True(t, within("/a/b/..b", "/a/b"))
}

func TestReportPersist(t *testing.T) {
	dir := t.TempDir()
	r := newReport(dir, "hextra")
	r.addFile("hugo.yaml")
	r.addFile(filepath.Join("static", "css", "brand.css"))
	r.addFile("hugo.yaml")
	r.recordStage(StageConfig, 1500*time.Millisecond, nil)
	r.recordStage(StageEditLink, time.Millisecond, newWarnStageError(StageEditLink, assert.AnError))
	r.finish()

	assert.Equal(t, []string{"hugo.yaml", "static/css/brand.css"}, r.Files)
	assert.Equal(t, metrics.OutcomeWarning, r.Outcome)
	require.NoError(t, r.Persist())

	data, err := os.ReadFile(filepath.Join(dir, ReportFile))
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "warning", got["outcome"])
	assert.Equal(t, float64(1500), got["stage_durations_ms"].(map[string]any)["config"])
	assert.Len(t, got["warnings"], 1)
	assert.NoFileExists(t, filepath.Join(dir, ReportFile+".tmp"))
}

func TestReportOutcome(t *testing.T) {
	r := newReport("", "docsy")
	r.finish()
	assert.Equal(t, metrics.OutcomeSuccess, r.Outcome)

	r = newReport("", "docsy")
	r.recordStage(StageData, 0, newFatalStageError(StageData, assert.AnError))
	r.finish()
	assert.Equal(t, metrics.OutcomeFailed, r.Outcome)
}

func TestRegisteredThemes(t *testing.T) {
	assert.Equal(t, []config.Theme{config.ThemeDocsy, config.ThemeHextra, config.ThemeRelearn}, th.Names())
	for _, name := range th.Names() {
		f := th.Get(name).Features()
		assert.Equal(t, name, f.Name)
		assert.NotEmpty(t, f.ModulePath)
		assert.NotEmpty(t, f.HeadHook)
	}
	assert.Equal(t, "flexsearch", th.Get(config.ThemeHextra).Features().DefaultSearchType)
}
