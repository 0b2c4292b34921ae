package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/cwel/imgtab/internal/document"
	"github.com/cwel/imgtab/internal/imaging"
)

// EditorConfig holds image editing settings.
type EditorConfig struct {
	JPEGQuality   int    `toml:"jpeg_quality"`
	Interpolation string `toml:"interpolation"` // nearest, bilinear, catmullrom
}

// BrowserConfig holds settings for the open browser.
type BrowserConfig struct {
	StartPath   string   `toml:"start_path"` // "~", "cwd", or absolute path
	Directories []string `toml:"directories"`
	MaxDepth    int      `toml:"max_depth"`
	Ignore      []string `toml:"ignore"` // doublestar patterns
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
	File        string `toml:"file"` // default <data dir>/imgtab.log
}

// Config holds all imgtab configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor"`
	Browser BrowserConfig `toml:"browser"`
	Logging LoggingConfig `toml:"logging"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			JPEGQuality:   imaging.DefaultJPEGQuality,
			Interpolation: string(imaging.DefaultInterpolation),
		},
		Browser: BrowserConfig{
			StartPath: "~",
			MaxDepth:  2,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ConfigPath returns the location of config.toml.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// LoadConfig loads configuration from the config file, using defaults for missing values.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv(LoadEnv())
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Validate and fix invalid values
	if cfg.Editor.JPEGQuality < 1 || cfg.Editor.JPEGQuality > 100 {
		cfg.Editor.JPEGQuality = imaging.DefaultJPEGQuality
	}
	if _, err := imaging.ParseInterpolation(cfg.Editor.Interpolation); err != nil {
		cfg.Editor.Interpolation = string(imaging.DefaultInterpolation)
	}
	if cfg.Browser.MaxDepth < 1 {
		cfg.Browser.MaxDepth = 2
	}
	cfg.applyEnv(LoadEnv())

	return cfg, nil
}

func (c *Config) applyEnv(env Env) {
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
}

// SaveConfig writes the config to the config file.
func SaveConfig(cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(ConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// DocumentOptions converts the editor section into document options.
func (c *Config) DocumentOptions() document.Options {
	interp, err := imaging.ParseInterpolation(c.Editor.Interpolation)
	if err != nil {
		interp = imaging.DefaultInterpolation
	}
	return document.Options{
		Interpolation: interp,
		Encode:        imaging.EncodeOptions{JPEGQuality: c.Editor.JPEGQuality},
	}
}

// LogFile returns the resolved log file path.
func (c *Config) LogFile() string {
	if c.Logging.File != "" {
		return ExpandPath(c.Logging.File)
	}
	return filepath.Join(DataDir(), "imgtab.log")
}

// BrowserStartPath returns the resolved starting path for the open browser.
func (c *Config) BrowserStartPath() string {
	path := c.Browser.StartPath
	if path == "" || path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if path == "cwd" {
		cwd, _ := os.Getwd()
		return cwd
	}
	return ExpandPath(path)
}

// BrowserRoots returns the directories scanned by the open browser: the
// configured directories, or the start path when none are configured.
func (c *Config) BrowserRoots() []string {
	if len(c.Browser.Directories) == 0 {
		return []string{c.BrowserStartPath()}
	}
	roots := make([]string, 0, len(c.Browser.Directories))
	for _, d := range c.Browser.Directories {
		roots = append(roots, ExpandPath(d))
	}
	return roots
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// DataDir returns the data directory for the session record, bundled
// recipes and logs.
func DataDir() string {
	if dir := LoadEnv().DataDir; dir != "" {
		return dir
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "imgtab")
}

// ConfigDir returns the config directory for user settings and recipes.
func ConfigDir() string {
	if dir := LoadEnv().ConfigDir; dir != "" {
		return dir
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "imgtab")
}
