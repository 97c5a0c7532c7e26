package config

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func memFs(t *testing.T, files map[string]string) afero.Fs {
	fs := afero.NewMemMapFs()
	for name, data := range files {
		require.Nil(t, afero.WriteFile(fs, name, []byte(data), 0644))
	}
	return fs
}

func TestLoad(t *testing.T) {
	t.Run("missing file gives defaults", func(t *testing.T) {
		cfg, err := Load(afero.NewMemMapFs(), "/nope/desktop.toml", noEnv)
		require.Nil(t, err)
		assert.Equal(t, Default(), cfg)
		assert.True(t, cfg.Webview.IgnoreCertificateErrors)
		assert.False(t, cfg.Tray.MediaControls)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		fs := memFs(t, map[string]string{"/cfg/desktop.toml": `
[app]
url = "https://localhost:5173"
locale = "ru_RU.UTF-8"

[window]
width = 900

[webview]
ignore_certificate_errors = false

[tray]
media_controls = true
startup_timeout = "3s"
`})
		cfg, err := Load(fs, "/cfg/desktop.toml", noEnv)
		require.Nil(t, err)
		assert.Equal(t, "https://localhost:5173", cfg.App.URL)
		assert.Equal(t, "ru_RU.UTF-8", cfg.App.Locale)
		assert.Equal(t, "ErrorParty", cfg.App.Title)
		assert.Equal(t, 900, cfg.Window.Width)
		assert.Equal(t, 800, cfg.Window.Height)
		assert.Equal(t, "main", cfg.Window.Name)
		assert.False(t, cfg.Webview.IgnoreCertificateErrors)
		assert.True(t, cfg.Tray.MediaControls)
		assert.Equal(t, 3*time.Second, cfg.Tray.StartupTimeout)
		assert.Equal(t, 3, cfg.Tray.MaxRestarts)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		fs := memFs(t, map[string]string{"/desktop.toml": `
[webview]
ignore_certificate_errors = true
`})
		env := map[string]string{
			"ERRORPARTY_URL":                "https://127.0.0.1:8443",
			"ERRORPARTY_IGNORE_CERT_ERRORS": "false",
			"ERRORPARTY_LOCALE":             "en",
		}
		cfg, err := Load(fs, "/desktop.toml", func(k string) string { return env[k] })
		require.Nil(t, err)
		assert.Equal(t, "https://127.0.0.1:8443", cfg.App.URL)
		assert.Equal(t, "en", cfg.App.Locale)
		assert.False(t, cfg.Webview.IgnoreCertificateErrors)
	})

	t.Run("malformed file", func(t *testing.T) {
		fs := memFs(t, map[string]string{"/desktop.toml": "[app\nurl="})
		_, err := Load(fs, "/desktop.toml", noEnv)
		assert.NotNil(t, err)
	})

	t.Run("unknown keys", func(t *testing.T) {
		fs := memFs(t, map[string]string{"/desktop.toml": "[tray]\nicon_size = 3\n"})
		_, err := Load(fs, "/desktop.toml", noEnv)
		assert.NotNil(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		fs := memFs(t, map[string]string{"/desktop.toml": "[window]\nname = \"\"\nheight = -1\n"})
		_, err := Load(fs, "/desktop.toml", noEnv)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "window.name")
		assert.Contains(t, err.Error(), "window size")
	})

	t.Run("no path", func(t *testing.T) {
		cfg, err := Load(afero.NewMemMapFs(), "", nil)
		require.Nil(t, err)
		assert.Equal(t, Default(), cfg)
	})
}
