package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vista.yaml")
	doc := "title: Factory tour\nwidth: 1920\nzoom: 0.5\nfocusSeconds: 0.8\nshowRegions: true\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Factory tour" || cfg.Width != 1920 || cfg.Zoom != 0.5 || !cfg.ShowRegions {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Height != 720 || cfg.ResizeQuietMs != 50 {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", "width: [1"},
		{"zero width", "width: 0"},
		{"negative zoom", "zoom: -2"},
		{"negative quiet", "resizeQuietMs: -5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.doc), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestResizeQuiet(t *testing.T) {
	cfg := Default()
	if cfg.ResizeQuiet() != 50*time.Millisecond {
		t.Errorf("ResizeQuiet = %v", cfg.ResizeQuiet())
	}
	cfg.ResizeQuietMs = 0
	if cfg.ResizeQuiet() >= 0 {
		t.Errorf("zero quiet should map to immediate, got %v", cfg.ResizeQuiet())
	}
}
