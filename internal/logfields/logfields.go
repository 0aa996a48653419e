package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyTheme      = "theme"
	KeyColor      = "color"
	KeyModel      = "model"
	KeySection    = "section"
	KeyField      = "field"
	KeyCount      = "count"
	KeyRemote     = "remote"
	KeyAddr       = "addr"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Stage(name string) slog.Attr     { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Theme(name string) slog.Attr     { return slog.String(KeyTheme, name) }
func Color(hex string) slog.Attr      { return slog.String(KeyColor, hex) }
func Model(path string) slog.Attr     { return slog.String(KeyModel, path) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func Field(name string) slog.Attr     { return slog.String(KeyField, name) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Remote(url string) slog.Attr     { return slog.String(KeyRemote, url) }
func Addr(a string) slog.Attr         { return slog.String(KeyAddr, a) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
