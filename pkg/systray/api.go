package systray

// Menu is sent to the tray process once it is up.
type Menu struct {
	Icon    string     `json:"icon"`
	Title   string     `json:"title"`
	Tooltip string     `json:"tooltip"`
	Items   []MenuItem `json:"items"`
}

type MenuItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Tooltip string `json:"tooltip,omitempty"`
	Enabled bool   `json:"enabled"`
}

// Message is one line of the JSON protocol spoken over the tray process'
// stdin and stdout.
type Message struct {
	Type  MessageType `json:"type"`
	Item  *MenuItem   `json:"item,omitempty"`
	Menu  *Menu       `json:"menu,omitempty"`
	Click string      `json:"click,omitempty"`
	Error *string     `json:"error,omitempty"`
}

type MessageType string

const (
	// parent to tray
	InitMenu MessageType = "init-menu"

	// tray to parent
	Ready       MessageType = "ready"
	ItemClicked MessageType = "item-clicked"
	IconClicked MessageType = "icon-clicked"
	Error       MessageType = "error"
)

// EnvParentPID tells the tray process which process to outlive.
const EnvParentPID = "ERRORPARTY_TRAY_PARENT"
