package config

import (
	"log/slog"
	"testing"
)

func TestNormalizeTheme(t *testing.T) {
	cases := map[string]Theme{
		"":         ThemeHextra,
		"Hextra":   ThemeHextra,
		" relearn": ThemeRelearn,
		"DOCSY":    ThemeDocsy,
		"unknown":  ThemeHextra,
	}
	for in, want := range cases {
		if got := NormalizeTheme(in); got != want {
			t.Errorf("NormalizeTheme(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeAppearance(t *testing.T) {
	if NormalizeAppearance("System") != AppearanceAuto {
		t.Error("system should alias auto")
	}
	if NormalizeAppearance("dark") != AppearanceDark {
		t.Error("expected dark")
	}
}

func TestLogLevel_SlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := NormalizeLogLevel(in).SlogLevel(); got != want {
			t.Errorf("%q: got %v, want %v", in, got, want)
		}
	}
	if NormalizeLogFormat("JSON") != LogFormatJSON || NormalizeLogFormat("") != LogFormatText {
		t.Error("unexpected log format normalization")
	}
}
