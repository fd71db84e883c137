package config

import (
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.Attendance.TargetPercent != 75 {
		t.Fatalf("default TargetPercent = %v, want 75", cfg.Attendance.TargetPercent)
	}
	if cfg.Attendance.Denominator != "scheduled" {
		t.Fatalf("default Denominator = %q, want scheduled", cfg.Attendance.Denominator)
	}
	if cfg.Attendance.OverallIncludeEmptyMonths {
		t.Fatal("empty semester months included by default")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultConfig()
	cfg.Attendance.TargetPercent = 80
	cfg.Attendance.Denominator = "taken"
	cfg.Attendance.OverallIncludeEmptyMonths = true
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file not found after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded != cfg {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestDataDir_Override(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := DataDir(cfg); got != filepath.Join("/tmp/xdg-data", "samattendx") {
		t.Fatalf("DataDir = %q, want XDG path", got)
	}

	cfg.General.DataDir = "/srv/attend"
	if got := DataDir(cfg); got != "/srv/attend" {
		t.Fatalf("DataDir = %q, want configured override", got)
	}
}
