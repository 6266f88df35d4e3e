package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexsum.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Window.Width != 800 || cfg.Window.Height != 600 || cfg.Window.Title != "Hex Drag Sum" {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.Log.Level != "info" || !cfg.Audio.AudioOn() || cfg.Audio.Volume != 0.6 || cfg.Game.Seed != 0 {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoadOverridesAndDefaults(t *testing.T) {
	path := writeFile(t, `
window:
  title: "custom"
log:
  level: debug
audio:
  enabled: false
game:
  seed: 42
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Window.Title != "custom" || cfg.Window.Width != 800 {
		t.Fatalf("window = %+v", cfg.Window)
	}
	if cfg.Log.Level != "debug" || cfg.Audio.AudioOn() || cfg.Game.Seed != 42 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadSampleConfig(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", DefaultPath))
	if err != nil {
		t.Fatalf("load sample: %v", err)
	}
	def := Default()
	if cfg.Window != def.Window || cfg.Log != def.Log || cfg.Game != def.Game {
		t.Fatalf("sample config drifted from defaults: %+v", cfg)
	}
	if cfg.Audio.AudioOn() != def.Audio.AudioOn() || cfg.Audio.Volume != def.Audio.Volume {
		t.Fatalf("sample audio = %+v", cfg.Audio)
	}
}

func TestLoadRejectsBadVolume(t *testing.T) {
	path := writeFile(t, "audio:\n  volume: 1.5\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "volume") {
		t.Fatalf("expected volume error, got %v", err)
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := writeFile(t, "window: [")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back: %v", err)
	}
	if cfg.Window.Width != 800 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if _, err := LoadOrDefault(writeFile(t, "audio:\n  volume: -1\n")); err == nil {
		t.Fatalf("invalid file should still fail")
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "")
	if got := ResolvePath(""); got != DefaultPath {
		t.Fatalf("got %q", got)
	}
	t.Setenv(EnvPath, "/tmp/env.yaml")
	if got := ResolvePath(""); got != "/tmp/env.yaml" {
		t.Fatalf("got %q", got)
	}
	if got := ResolvePath("flag.yaml"); got != "flag.yaml" {
		t.Fatalf("got %q", got)
	}
}
