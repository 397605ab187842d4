package karte

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "karte.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig = %v, want nil", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "title: Test\ncolumns: 60\nshow_fps: true\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig = %v, want nil", err)
	}
	if cfg.Title != "Test" {
		t.Errorf("Title = %q, want %q", cfg.Title, "Test")
	}
	if cfg.Columns != 60 {
		t.Errorf("Columns = %d, want 60", cfg.Columns)
	}
	if !cfg.ShowFPS {
		t.Error("ShowFPS should be true")
	}
	// Untouched fields keep their defaults.
	if cfg.Rows != DefaultConfig().Rows {
		t.Errorf("Rows = %d, want default %d", cfg.Rows, DefaultConfig().Rows)
	}
	if cfg.Sheet != DefaultConfig().Sheet {
		t.Errorf("Sheet = %q, want default %q", cfg.Sheet, DefaultConfig().Sheet)
	}
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "columns: [not an int\n")
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig should fail on malformed YAML")
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"grid too small", "columns: 10\nrows: 10\n", "below the minimum"},
		{"zero scale", "scale: 0\n", "scale"},
		{"empty sheet", "sheet: \"\"\n", "sheet path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatal("LoadConfig should fail validation")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want mention of %q", err, tt.wantErr)
			}
		})
	}
}
