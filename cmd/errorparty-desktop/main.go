package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/errorparty/desktop/pkg/config"
	"github.com/errorparty/desktop/pkg/daemon"
	zaplog "github.com/errorparty/desktop/pkg/logging/zap"
	"github.com/errorparty/desktop/pkg/systray"
	"github.com/errorparty/desktop/pkg/tray"
	"github.com/errorparty/desktop/pkg/webview"
	"github.com/errorparty/desktop/pkg/window"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

var (
	rootCmd = &cobra.Command{
		Use:          "errorparty-desktop",
		Short:        "ErrorParty desktop app",
		Long:         "Runs the ErrorParty web app in a native window with a tray icon.",
		SilenceUsage: true,
		RunE:         runDesktop,
	}

	configPath string
	devMode    bool
)

func init() {
	// the webview and the tray both want the main thread
	runtime.LockOSThread()

	rootCmd.PersistentFlags().BoolVarP(&devMode, "dev", "d", false, "run in debug mode")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to desktop.toml (default is <user config dir>/errorparty/desktop.toml)")
	rootCmd.AddCommand(trayCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDesktop(cmd *cobra.Command, args []string) error {
	log := zaplog.NewLogger(devMode)
	defer log.Sync()

	cfg, err := loadConfig()
	if err != nil {
		log.Error(err)
		return err
	}

	ignoring, err := webview.Env{}.ApplyTLS(cfg.Webview.IgnoreCertificateErrors)
	if err != nil {
		log.Error(err)
		return err
	}
	if ignoring {
		log.Warnw("webview certificate validation is disabled", "env", webview.BrowserArgsEnv, "url", cfg.App.URL)
	}

	assets, err := webview.ProxyHandler(cfg.App.URL, webview.ProxyOptions{
		InsecureSkipVerify: cfg.Webview.IgnoreCertificateErrors,
		Logger:             log,
	})
	if err != nil {
		log.Error(err)
		return err
	}

	win := window.New(cfg.Window.Name)
	win.Logger = log

	locale := cfg.App.Locale
	if locale == "" {
		locale = tray.DetectLocale(os.Getenv)
	}
	ctrl := tray.New(win, tray.Options{
		WindowName:    cfg.Window.Name,
		Labels:        tray.Labels(locale),
		MediaControls: cfg.Tray.MediaControls,
		Logger:        log,
	})
	traySvc := &systray.Service{
		Logger:         log,
		Icon:           "errorparty",
		Tooltip:        cfg.Tray.Tooltip,
		MaxRestarts:    cfg.Tray.MaxRestarts,
		StartupTimeout: cfg.Tray.StartupTimeout,
	}

	// window first so it terminates last, after the tray process is gone
	dm := daemon.New(&traySetup{ctrl: ctrl, host: traySvc}, win, traySvc)
	dm.Logger = log
	win.Terminate = dm.Terminate
	if err := dm.Start(context.Background()); err != nil {
		log.Errorw("tray setup failed", "error", err)
		return err
	}

	app := NewApp(log)
	err = wails.Run(&options.App{
		Title:     cfg.App.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		MinWidth:  640,
		MinHeight: 480,
		AssetServer: &assetserver.Options{
			Handler: assets,
		},
		OnStartup: func(ctx context.Context) {
			win.Startup(ctx)
			app.startup(ctx)
		},
		OnShutdown:        win.Shutdown,
		HideWindowOnClose: cfg.Window.HideOnClose,
		Logger:            zaplog.WailsLogger{Logger: log},
		LogLevel:          logLevel(),
		SingleInstanceLock: &options.SingleInstanceLock{
			UniqueId: "ru.errorparty.desktop",
			OnSecondInstanceLaunch: func(options.SecondInstanceData) {
				traySvc.Click(tray.ItemShow)
			},
		},
		Bind: []interface{}{
			app,
		},
	})

	dm.Terminate()
	if werr := dm.Wait(); werr != nil {
		log.Debugw("shutdown", "error", werr)
	}
	if err != nil {
		log.Error(err)
		return err
	}
	if code := win.ExitCode(); code != 0 {
		log.Sync()
		os.Exit(code)
	}
	return nil
}

// traySetup builds the tray once the daemon initializes.
type traySetup struct {
	ctrl *tray.Controller
	host tray.Host
}

func (t *traySetup) InitializeDaemon() error {
	return t.ctrl.Setup(t.host)
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return config.Config{}, fmt.Errorf("config: %w", err)
		}
		path = p
	}
	return config.Load(afero.NewOsFs(), path, os.Getenv)
}

func logLevel() logger.LogLevel {
	if devMode {
		return logger.DEBUG
	}
	return logger.INFO
}
