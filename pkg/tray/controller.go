// Package tray routes tray icon and tray menu events to actions on the
// application window and process.
package tray

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/errorparty/desktop/pkg/logging"
	misclog "github.com/errorparty/desktop/pkg/misc/logging"
)

// DefaultWindowName is the well-known name of the main window.
const DefaultWindowName = "main"

var ErrAlreadySetup = errors.New("tray: already set up")

const (
	stateNew int32 = iota
	stateReady
	stateExiting
)

// Options configure a Controller. Zero values fall back to defaults.
type Options struct {
	WindowName    string
	Labels        map[ItemID]string
	MediaControls bool
	Logger        logging.DebugLogger
}

// Controller owns the tray icon and handles its events. It is created once
// at startup and handed to the host's event subscriptions.
type Controller struct {
	app     AppContext
	emitter Emitter
	opts    Options

	icon  TrayIcon
	media map[ItemID]bool
	state int32
}

// New returns a controller acting on app. If app also implements Emitter,
// media items are forwarded to the frontend through it.
func New(app AppContext, opts Options) *Controller {
	if opts.WindowName == "" {
		opts.WindowName = DefaultWindowName
	}
	if opts.Labels == nil {
		opts.Labels = Labels("")
	}
	c := &Controller{
		app:   app,
		opts:  opts,
		media: make(map[ItemID]bool),
	}
	if e, ok := app.(Emitter); ok {
		c.emitter = e
	}
	return c
}

// Setup builds the menu and tray icon on host and subscribes the event
// handlers. The first failing host call aborts setup.
func (c *Controller) Setup(host Host) error {
	if c.icon != nil {
		return ErrAlreadySetup
	}

	quit, err := host.CreateMenuItem(ItemQuit, c.label(ItemQuit), true)
	if err != nil {
		return fmt.Errorf("tray: create %q item: %w", ItemQuit, err)
	}
	show, err := host.CreateMenuItem(ItemShow, c.label(ItemShow), true)
	if err != nil {
		return fmt.Errorf("tray: create %q item: %w", ItemShow, err)
	}

	items := []MenuItem{show}
	if c.opts.MediaControls {
		for _, id := range []ItemID{ItemPlayPause, ItemNext, ItemPrev} {
			item, err := host.CreateMenuItem(id, c.label(id), true)
			if err != nil {
				return fmt.Errorf("tray: create %q item: %w", id, err)
			}
			items = append(items, item)
		}
	}
	items = append(items, quit)

	menu, err := host.CreateMenu(items...)
	if err != nil {
		return fmt.Errorf("tray: create menu: %w", err)
	}
	icon, err := host.CreateTrayIcon(menu)
	if err != nil {
		return fmt.Errorf("tray: create icon: %w", err)
	}

	if c.opts.MediaControls {
		for _, item := range items[1 : len(items)-1] {
			c.media[item.ID] = true
		}
	}
	c.icon = icon
	host.OnMenuEvent(c.HandleMenuEvent)
	host.OnTrayEvent(c.HandleTrayEvent)
	atomic.CompareAndSwapInt32(&c.state, stateNew, stateReady)
	return nil
}

// Icon returns the tray icon built by Setup, or nil.
func (c *Controller) Icon() TrayIcon {
	return c.icon
}

// HandleMenuEvent performs the action bound to a menu item. Unknown
// identifiers are ignored.
func (c *Controller) HandleMenuEvent(id ItemID) {
	if c.exiting() {
		return
	}
	switch id {
	case ItemQuit:
		if atomic.SwapInt32(&c.state, stateExiting) == stateExiting {
			return
		}
		c.app.Exit(0)
	case ItemShow:
		c.showMain()
	default:
		if c.media[id] && c.emitter != nil {
			c.emitter.Emit(MediaKeyEvent, string(id))
			return
		}
		misclog.Debug(c.opts.Logger, "tray: ignoring menu item ", id)
	}
}

// HandleTrayEvent shows the main window on a primary click. Other kinds
// are left to the host.
func (c *Controller) HandleTrayEvent(kind ClickKind) {
	if c.exiting() {
		return
	}
	if kind != Click {
		return
	}
	c.showMain()
}

func (c *Controller) showMain() {
	w, ok := c.app.Window(c.opts.WindowName)
	if !ok {
		misclog.Debug(c.opts.Logger, "tray: window ", c.opts.WindowName, " not available")
		return
	}
	if err := w.Show(); err != nil {
		misclog.Debug(c.opts.Logger, "tray: show: ", err)
	}
	if err := w.Focus(); err != nil {
		misclog.Debug(c.opts.Logger, "tray: focus: ", err)
	}
}

func (c *Controller) exiting() bool {
	return atomic.LoadInt32(&c.state) == stateExiting
}

func (c *Controller) label(id ItemID) string {
	if l := c.opts.Labels[id]; l != "" {
		return l
	}
	return string(id)
}
