package tray

// ItemID identifies a menu item independently of its label.
type ItemID string

const (
	ItemQuit      ItemID = "quit"
	ItemShow      ItemID = "show"
	ItemPlayPause ItemID = "play-pause"
	ItemNext      ItemID = "next"
	ItemPrev      ItemID = "prev"
)

// ClickKind describes how the tray icon itself was activated.
type ClickKind string

const (
	Click       ClickKind = "click"
	DoubleClick ClickKind = "double-click"
	RightClick  ClickKind = "right-click"
)

// MediaKeyEvent is emitted to the frontend when a media item is clicked.
const MediaKeyEvent = "media-key"

// MenuItem is a single entry of the tray menu. Items are immutable once
// created by the host.
type MenuItem struct {
	ID      ItemID `json:"id"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
}

// Menu is the ordered list of items attached to the tray icon.
type Menu struct {
	Items []MenuItem `json:"items"`
}

// IDs returns the item identifiers in display order.
func (m Menu) IDs() []ItemID {
	ids := make([]ItemID, 0, len(m.Items))
	for _, item := range m.Items {
		ids = append(ids, item.ID)
	}
	return ids
}

// TrayIcon is the handle to the visible tray icon.
type TrayIcon interface {
	Menu() Menu
}

// MenuBuilder creates the tray objects. Any call may fail, for example when
// the desktop shell has no tray support.
type MenuBuilder interface {
	CreateMenuItem(id ItemID, label string, enabled bool) (MenuItem, error)
	CreateMenu(items ...MenuItem) (Menu, error)
	CreateTrayIcon(menu Menu) (TrayIcon, error)
}

// Host is the tray side of the desktop shell.
type Host interface {
	MenuBuilder
	OnMenuEvent(handler func(ItemID))
	OnTrayEvent(handler func(ClickKind))
}

// Window is a handle to a webview window.
type Window interface {
	Show() error
	Focus() error
}

// AppContext is the part of the application the event handlers act on.
type AppContext interface {
	// Window looks up a window by name. The window may not exist yet, or
	// may already be gone.
	Window(name string) (Window, bool)
	// Exit asks the application to terminate with code.
	Exit(code int)
}

// Emitter sends events to the frontend.
type Emitter interface {
	Emit(event string, data ...interface{})
}
