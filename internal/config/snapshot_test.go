package config

import "testing"

func TestSnapshotIgnoresLogging(t *testing.T) {
	a, err := Parse([]byte("title: Docs\nlogging:\n  level: debug\n"))
	if err != nil {
		t.Fatalf("parse a: %v", err)
	}
	b, err := Parse([]byte("title: Docs\nlogging:\n  level: error\n  format: json\n"))
	if err != nil {
		t.Fatalf("parse b: %v", err)
	}
	if a.Snapshot() != b.Snapshot() {
		t.Fatalf("expected equal snapshots, got\nA=%s\nB=%s", a.Snapshot(), b.Snapshot())
	}
}

func TestSnapshotDetectsMeaningfulChange(t *testing.T) {
	c, err := Parse([]byte("title: Docs\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	snap1 := c.Snapshot()
	c.Theme.PrimaryColor = "#ff0000"
	if snap1 == c.Snapshot() {
		t.Fatal("expected snapshot change after primary color modification")
	}
	if (*Config)(nil).Snapshot() != "" {
		t.Fatal("nil config should have empty snapshot")
	}
}
