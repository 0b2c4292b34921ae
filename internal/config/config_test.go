package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwel/imgtab/internal/imaging"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Editor.JPEGQuality != 90 {
		t.Errorf("JPEGQuality = %d, want 90", cfg.Editor.JPEGQuality)
	}
	if cfg.Editor.Interpolation != "catmullrom" {
		t.Errorf("Interpolation = %q, want catmullrom", cfg.Editor.Interpolation)
	}
	if cfg.Browser.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", cfg.Browser.MaxDepth)
	}
}

func TestConfigDir(t *testing.T) {
	t.Setenv("IMGTAB_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := ConfigDir()

	// Should default to ~/.config/imgtab
	home, _ := os.UserHomeDir()
	expected := filepath.Join(home, ".config", "imgtab")
	if dir != expected {
		t.Errorf("ConfigDir() = %q, want %q", dir, expected)
	}
}

func TestConfigDirWithEnv(t *testing.T) {
	t.Setenv("IMGTAB_CONFIG_DIR", "/custom/config")

	dir := ConfigDir()
	if dir != "/custom/config" {
		t.Errorf("ConfigDir() = %q, want %q", dir, "/custom/config")
	}
}

func TestConfigDirWithXDG(t *testing.T) {
	t.Setenv("IMGTAB_CONFIG_DIR", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	dir := ConfigDir()
	if dir != "/xdg/config/imgtab" {
		t.Errorf("ConfigDir() = %q, want %q", dir, "/xdg/config/imgtab")
	}
}

func TestDataDir(t *testing.T) {
	t.Setenv("IMGTAB_DATA_DIR", "")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	if dir := DataDir(); dir != "/xdg/data/imgtab" {
		t.Errorf("DataDir() = %q, want %q", dir, "/xdg/data/imgtab")
	}

	t.Setenv("IMGTAB_DATA_DIR", "/custom/data")
	if dir := DataDir(); dir != "/custom/data" {
		t.Errorf("DataDir() = %q, want %q", dir, "/custom/data")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("IMGTAB_CONFIG_DIR", t.TempDir())
	t.Setenv("IMGTAB_LOG_LEVEL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Editor.JPEGQuality != 90 {
		t.Errorf("JPEGQuality = %d, want default 90", cfg.Editor.JPEGQuality)
	}
}

func TestLoadConfigFixesInvalidValues(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("IMGTAB_CONFIG_DIR", dir)
	t.Setenv("IMGTAB_LOG_LEVEL", "")

	data := `
[editor]
jpeg_quality = 400
interpolation = "lanczos"

[browser]
directories = ["~/Pictures"]
max_depth = 0
ignore = ["**/.thumbnails/**"]

[logging]
level = "debug"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Editor.JPEGQuality != 90 {
		t.Errorf("JPEGQuality = %d, want 90", cfg.Editor.JPEGQuality)
	}
	if cfg.Editor.Interpolation != "catmullrom" {
		t.Errorf("Interpolation = %q, want catmullrom", cfg.Editor.Interpolation)
	}
	if cfg.Browser.MaxDepth != 2 {
		t.Errorf("MaxDepth = %d, want 2", cfg.Browser.MaxDepth)
	}
	if len(cfg.Browser.Ignore) != 1 {
		t.Errorf("Ignore = %v, want 1 pattern", cfg.Browser.Ignore)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadConfigEnvLogLevel(t *testing.T) {
	t.Setenv("IMGTAB_CONFIG_DIR", t.TempDir())
	t.Setenv("IMGTAB_LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Level = %q, want warn", cfg.Logging.Level)
	}
}

func TestLoadConfigParseError(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("IMGTAB_CONFIG_DIR", dir)
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[editor\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("expected parse error")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	t.Setenv("IMGTAB_CONFIG_DIR", filepath.Join(t.TempDir(), "fresh"))
	t.Setenv("IMGTAB_LOG_LEVEL", "")

	cfg := DefaultConfig()
	cfg.Editor.JPEGQuality = 75
	cfg.Editor.Interpolation = "nearest"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Editor.JPEGQuality != 75 {
		t.Errorf("JPEGQuality = %d, want 75", loaded.Editor.JPEGQuality)
	}

	opts := loaded.DocumentOptions()
	if opts.Interpolation != imaging.InterpNearest {
		t.Errorf("Interpolation = %q, want nearest", opts.Interpolation)
	}
	if opts.Encode.JPEGQuality != 75 {
		t.Errorf("Encode.JPEGQuality = %d, want 75", opts.Encode.JPEGQuality)
	}
}

func TestLogFile(t *testing.T) {
	t.Setenv("IMGTAB_DATA_DIR", "/data")

	cfg := DefaultConfig()
	if got := cfg.LogFile(); got != "/data/imgtab.log" {
		t.Errorf("LogFile() = %q, want /data/imgtab.log", got)
	}

	cfg.Logging.File = "/var/log/imgtab.log"
	if got := cfg.LogFile(); got != "/var/log/imgtab.log" {
		t.Errorf("LogFile() = %q, want /var/log/imgtab.log", got)
	}
}

func TestBrowserRoots(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Browser.StartPath = "/photos"

	roots := cfg.BrowserRoots()
	if len(roots) != 1 || roots[0] != "/photos" {
		t.Errorf("BrowserRoots() = %v, want [/photos]", roots)
	}

	cfg.Browser.Directories = []string{"/a", "/b"}
	roots = cfg.BrowserRoots()
	if len(roots) != 2 || roots[1] != "/b" {
		t.Errorf("BrowserRoots() = %v, want [/a /b]", roots)
	}
}
