// Package window exposes the webview runtime's main window to the tray
// controller.
package window

import (
	"context"
	"errors"
	"os"
	"sync"

	"github.com/errorparty/desktop/pkg/logging"
	misclog "github.com/errorparty/desktop/pkg/misc/logging"
	"github.com/errorparty/desktop/pkg/tray"
)

var ErrClosed = errors.New("window: closed")

// Host tracks the lifetime of the main window between the runtime's
// startup and shutdown callbacks.
type Host struct {
	Name     string
	Runtime  Runtime
	Logger   logging.DebugLogger
	ExitFunc func(code int)
	// Terminate is called before ExitFunc when Exit finds no running
	// window, so the rest of the process can shut down first.
	Terminate func()

	mu       sync.Mutex
	ctx      context.Context
	exitCode int
	exiting  bool
}

// New returns a host for the window with the given name, backed by the
// Wails runtime.
func New(name string) *Host {
	if name == "" {
		name = tray.DefaultWindowName
	}
	return &Host{
		Name:     name,
		Runtime:  wailsRuntime{},
		ExitFunc: os.Exit,
	}
}

// Startup is the runtime's OnStartup hook. A quit requested before the
// window existed is carried out here.
func (h *Host) Startup(ctx context.Context) {
	h.mu.Lock()
	h.ctx = ctx
	exiting := h.exiting
	h.mu.Unlock()
	misclog.Debug(h.Logger, "window: ", h.Name, " started")
	if exiting {
		h.Runtime.Quit(ctx)
	}
}

// Shutdown is the runtime's OnShutdown hook. The window is gone afterwards.
func (h *Host) Shutdown(ctx context.Context) {
	h.mu.Lock()
	h.ctx = nil
	h.mu.Unlock()
	misclog.Debug(h.Logger, "window: ", h.Name, " shut down")
}

func (h *Host) context() context.Context {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.exiting {
		return nil
	}
	return h.ctx
}

// Window returns the main window when name matches and it is running.
func (h *Host) Window(name string) (tray.Window, bool) {
	if name != h.Name || h.context() == nil {
		return nil, false
	}
	return &mainWindow{host: h}, true
}

// Exit asks the runtime to quit; the code is returned by ExitCode once the
// runtime has shut down. Without a running window it calls Terminate and
// exits the process.
func (h *Host) Exit(code int) {
	h.mu.Lock()
	ctx := h.ctx
	h.exitCode = code
	h.exiting = true
	h.mu.Unlock()

	if ctx == nil {
		misclog.Debug(h.Logger, "window: no window to quit, exiting with ", code)
		if h.Terminate != nil {
			h.Terminate()
		}
		h.ExitFunc(code)
		return
	}
	h.Runtime.Quit(ctx)
}

// TerminateDaemon quits the runtime when the process is being stopped from
// outside, for example by a signal.
func (h *Host) TerminateDaemon() error {
	h.mu.Lock()
	ctx := h.ctx
	exiting := h.exiting
	h.exiting = true
	h.mu.Unlock()
	if ctx != nil && !exiting {
		h.Runtime.Quit(ctx)
	}
	return nil
}

// ExitCode is the code passed to Exit, or zero.
func (h *Host) ExitCode() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.exitCode
}

// Emit sends an event to the frontend. It is dropped when no window is
// running.
func (h *Host) Emit(event string, data ...interface{}) {
	ctx := h.context()
	if ctx == nil {
		misclog.Debug(h.Logger, "window: dropping event ", event)
		return
	}
	h.Runtime.EventsEmit(ctx, event, data...)
}

type mainWindow struct {
	host *Host
}

func (w *mainWindow) Show() error {
	ctx := w.host.context()
	if ctx == nil {
		return ErrClosed
	}
	w.host.Runtime.WindowShow(ctx)
	return nil
}

// Focus restores a minimised window and raises it above other windows.
func (w *mainWindow) Focus() error {
	ctx := w.host.context()
	if ctx == nil {
		return ErrClosed
	}
	w.host.Runtime.WindowUnminimise(ctx)
	w.host.Runtime.WindowSetAlwaysOnTop(ctx, true)
	w.host.Runtime.WindowSetAlwaysOnTop(ctx, false)
	return nil
}
