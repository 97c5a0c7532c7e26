// Package config loads the desktop shell settings from a TOML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	DefaultURL      = "https://errorparty.ru"
	defaultFileName = "desktop.toml"
)

type Config struct {
	App     App     `mapstructure:"app"`
	Window  Window  `mapstructure:"window"`
	Webview Webview `mapstructure:"webview"`
	Tray    Tray    `mapstructure:"tray"`
}

type App struct {
	Title  string `mapstructure:"title"`
	URL    string `mapstructure:"url"`
	Locale string `mapstructure:"locale"`
}

type Window struct {
	Name        string `mapstructure:"name"`
	Width       int    `mapstructure:"width"`
	Height      int    `mapstructure:"height"`
	HideOnClose bool   `mapstructure:"hide_on_close"`
}

type Webview struct {
	IgnoreCertificateErrors bool `mapstructure:"ignore_certificate_errors"`
}

type Tray struct {
	Tooltip        string        `mapstructure:"tooltip"`
	MediaControls  bool          `mapstructure:"media_controls"`
	MaxRestarts    int           `mapstructure:"max_restarts"`
	StartupTimeout time.Duration `mapstructure:"startup_timeout"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		App: App{
			Title: "ErrorParty",
			URL:   DefaultURL,
		},
		Window: Window{
			Name:        "main",
			Width:       1280,
			Height:      800,
			HideOnClose: true,
		},
		Webview: Webview{
			IgnoreCertificateErrors: true,
		},
		Tray: Tray{
			Tooltip:        "ErrorParty",
			MaxRestarts:    3,
			StartupTimeout: 10 * time.Second,
		},
	}
}

// envOverrides maps environment variables to config keys.
var envOverrides = map[string][]string{
	"ERRORPARTY_URL":                {"app", "url"},
	"ERRORPARTY_LOCALE":             {"app", "locale"},
	"ERRORPARTY_IGNORE_CERT_ERRORS": {"webview", "ignore_certificate_errors"},
}

// DefaultPath is desktop.toml in the user's config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "errorparty", defaultFileName), nil
}

// Load reads path from fs on top of the defaults and applies environment
// overrides from getenv. A missing file is not an error.
func Load(fs afero.Fs, path string, getenv func(string) string) (Config, error) {
	raw := map[string]interface{}{}
	if path != "" {
		b, err := afero.ReadFile(fs, path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("config: %w", err)
		default:
			if err := toml.Unmarshal(b, &raw); err != nil {
				return Config{}, fmt.Errorf("config: %s: %w", path, err)
			}
		}
	}

	if getenv != nil {
		for key, at := range envOverrides {
			if v := getenv(key); v != "" {
				set(raw, at, v)
			}
		}
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks the settings that would otherwise fail late.
func (c Config) Validate() error {
	var problems []string
	if c.App.URL == "" {
		problems = append(problems, "app.url is empty")
	}
	if c.Window.Name == "" {
		problems = append(problems, "window.name is empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		problems = append(problems, "window size must be positive")
	}
	if c.Tray.StartupTimeout <= 0 {
		problems = append(problems, "tray.startup_timeout must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func set(m map[string]interface{}, path []string, v interface{}) {
	for _, k := range path[:len(path)-1] {
		next, ok := m[k].(map[string]interface{})
		if !ok {
			next = map[string]interface{}{}
			m[k] = next
		}
		m = next
	}
	m[path[len(path)-1]] = v
}
