// Package subprocess is the tray process side of the systray protocol. It
// owns the real tray icon and reports clicks to the parent on stdout.
package subprocess

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/energye/systray"
	"github.com/errorparty/desktop/pkg/data/icons"
	api "github.com/errorparty/desktop/pkg/systray"
	"github.com/errorparty/desktop/pkg/tray"
)

var (
	inbox = make(chan api.Message)
	outMu sync.Mutex
)

// Run blocks running the tray until the parent goes away or asks it to
// stop. It must be called from the main goroutine.
func Run() {
	go receiveMessages(inbox, os.Stdin)
	go watchParent(os.Getenv(api.EnvParentPID), systray.Quit)
	systray.Run(onReady, nil)
}

func sendMessage(msg api.Message) {
	b, err := json.Marshal(msg)
	if err != nil {
		return
	}
	outMu.Lock()
	defer outMu.Unlock()
	os.Stdout.Write(append(b, '\n'))
}

func sendError(err error) {
	text := err.Error()
	sendMessage(api.Message{
		Type:  api.Error,
		Error: &text,
	})
}

func receiveMessages(ch chan api.Message, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var msg api.Message
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			sendError(err)
			continue
		}
		ch <- msg
	}
	close(ch)
}

func onReady() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		systray.Quit()
	}()
	go func() {
		for msg := range inbox {
			switch msg.Type {
			case api.InitMenu:
				if err := initMenu(msg.Menu); err != nil {
					sendError(err)
					continue
				}
				sendMessage(api.Message{Type: api.Ready})
			default:
				sendError(errors.New("unexpected message " + string(msg.Type)))
			}
		}
		// parent closed our stdin
		systray.Quit()
	}()
}

var menuOnce sync.Once

func initMenu(menu *api.Menu) (err error) {
	if menu == nil || len(menu.Items) == 0 {
		return errors.New("empty menu")
	}
	err = errors.New("menu already initialized")
	menuOnce.Do(func() {
		err = nil
		buildMenu(menu)
	})
	return err
}

func buildMenu(menu *api.Menu) {
	systray.SetIcon(icons.Lookup(menu.Icon))
	if menu.Title != "" {
		systray.SetTitle(menu.Title)
	}
	systray.SetTooltip(menu.Tooltip)

	systray.SetOnClick(func(systray.IMenu) {
		iconClicked(tray.Click)
	})
	systray.SetOnDClick(func(systray.IMenu) {
		iconClicked(tray.DoubleClick)
	})
	systray.SetOnRClick(func(m systray.IMenu) {
		m.ShowMenu()
		iconClicked(tray.RightClick)
	})

	for _, item := range menu.Items {
		menuItem := systray.AddMenuItem(item.Title, item.Tooltip)
		if item.Enabled {
			menuItem.Enable()
		} else {
			menuItem.Disable()
		}
		item := item
		menuItem.Click(func() {
			sendMessage(api.Message{
				Type: api.ItemClicked,
				Item: &item,
			})
		})
	}
}

func iconClicked(kind tray.ClickKind) {
	sendMessage(api.Message{
		Type:  api.IconClicked,
		Click: string(kind),
	})
}
