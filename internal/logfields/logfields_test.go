package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Path", KeyPath, "/tmp/site", Path("/tmp/site")},
		{"File", KeyFile, "hugo.yaml", File("hugo.yaml")},
		{"Stage", KeyStage, "config", Stage("config")},
		{"Theme", KeyTheme, "hextra", Theme("hextra")},
		{"Color", KeyColor, "#3451b2", Color("#3451b2")},
		{"Model", KeyModel, "https://model.hacxy.cn/Pio/model.json", Model("https://model.hacxy.cn/Pio/model.json")},
		{"Section", KeySection, "/guide/", Section("/guide/")},
		{"Field", KeyField, "theme.primary_color", Field("theme.primary_color")},
		{"Remote", KeyRemote, "https://github.com/o/r", Remote("https://github.com/o/r")},
		{"Addr", KeyAddr, ":9090", Addr(":9090")},
	}
	for _, c := range cases {
		if c.attr.Key != c.attrKey {
			t.Errorf("%s: key = %q, want %q", c.name, c.attr.Key, c.attrKey)
		}
		if c.attr.Value.String() != c.attrVal {
			t.Errorf("%s: value = %q, want %q", c.name, c.attr.Value.String(), c.attrVal)
		}
	}
}

func TestNumericHelpers(t *testing.T) {
	if a := Count(3); a.Key != KeyCount || a.Value.Int64() != 3 {
		t.Errorf("unexpected Count attr %v", a)
	}
	if a := DurationMS(1.5); a.Key != KeyDurationMS || a.Value.Float64() != 1.5 {
		t.Errorf("unexpected DurationMS attr %v", a)
	}
}

func TestErrorHelper(t *testing.T) {
	if a := Error(nil); a.Value.String() != "" {
		t.Errorf("expected empty error value, got %q", a.Value.String())
	}
	if a := Error(errors.New("boom")); a.Key != KeyError || a.Value.String() != "boom" {
		t.Errorf("unexpected error attr %v", a)
	}
}
