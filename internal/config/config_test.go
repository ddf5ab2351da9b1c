package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.ASS.Layer != 0 {
		t.Errorf("layer = %d, want 0", cfg.ASS.Layer)
	}
	if cfg.ASS.Style != "Default" {
		t.Errorf("style = %q, want Default", cfg.ASS.Style)
	}
	if cfg.ASS.MarginL != 0 || cfg.ASS.MarginR != 0 || cfg.ASS.MarginV != 0 {
		t.Errorf("margins = %d,%d,%d, want all zero",
			cfg.ASS.MarginL, cfg.ASS.MarginR, cfg.ASS.MarginV)
	}
	if cfg.ASS.ScriptInfo {
		t.Error("script_info should default to false")
	}
	if cfg.ASS.PlayResX != 1920 || cfg.ASS.PlayResY != 1440 {
		t.Errorf("play resolution = %dx%d, want 1920x1440", cfg.ASS.PlayResX, cfg.ASS.PlayResY)
	}
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg != Default() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("partial file overlays defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lyrix.toml")
		content := "[ass]\nstyle = \"K1\"\nscript_info = true\n"
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load error: %v", err)
		}
		if cfg.ASS.Style != "K1" {
			t.Errorf("style = %q, want K1", cfg.ASS.Style)
		}
		if !cfg.ASS.ScriptInfo {
			t.Error("script_info should be true")
		}
		if cfg.ASS.PlayResX != 1920 {
			t.Errorf("play_res_x = %d, want the default 1920", cfg.ASS.PlayResX)
		}
	})

	t.Run("missing file errors", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed toml errors", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		if err := os.WriteFile(path, []byte("[ass\nstyle"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("expected error for malformed toml")
		}
	})
}

func TestWriteSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lyrix.toml")

	if err := WriteSample(path); err != nil {
		t.Fatalf("WriteSample error: %v", err)
	}

	// The sample documents the defaults, so loading it must reproduce them.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}

	if err := WriteSample(path); err == nil {
		t.Error("expected error when the file already exists")
	}
}

func TestASSOptions(t *testing.T) {
	cfg := Default()
	cfg.ASS.Layer = 2
	cfg.ASS.Style = "K1"

	opts := cfg.ASSOptions()
	if opts.Layer != 2 || opts.Style != "K1" {
		t.Errorf("opts = %+v, want layer 2 and style K1", opts)
	}
}
