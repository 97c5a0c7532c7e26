package systray

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/errorparty/desktop/pkg/misc/subcmd"
	"github.com/errorparty/desktop/pkg/tray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTrayProcess is not a real test; it stands in for the tray process.
func TestTrayProcess(t *testing.T) {
	mode := os.Getenv("GO_WANT_TRAY_PROCESS")
	if mode == "" {
		return
	}
	in := bufio.NewScanner(os.Stdin)
	if !in.Scan() {
		os.Exit(2)
	}
	var init Message
	if err := json.Unmarshal(in.Bytes(), &init); err != nil || init.Type != InitMenu {
		os.Exit(2)
	}

	if marker := os.Getenv("TRAY_MARKER"); marker != "" {
		starts, _ := ioutil.ReadFile(marker)
		ioutil.WriteFile(marker, append(starts, '.'), 0644)
		if mode == "restart" && len(starts) == 0 {
			send(os.Stdout, Message{Type: Ready})
			os.Exit(3)
		}
	}

	switch mode {
	case "crash":
		os.Exit(1)
	case "fail":
		fmt.Fprintln(os.Stderr, "tray: no status notifier host")
		text := "tray unsupported"
		send(os.Stdout, Message{Type: Error, Error: &text})
		os.Exit(1)
	case "silent":
		io.Copy(ioutil.Discard, os.Stdin)
		os.Exit(0)
	}

	send(os.Stdout, Message{Type: Ready})
	for _, item := range init.Menu.Items {
		item := item
		send(os.Stdout, Message{Type: ItemClicked, Item: &item})
	}
	send(os.Stdout, Message{Type: IconClicked, Click: string(tray.RightClick)})
	send(os.Stdout, Message{Type: IconClicked, Click: string(tray.Click)})
	io.Copy(ioutil.Discard, os.Stdin)
	os.Exit(0)
}

func newTestService(mode string) *Service {
	return &Service{
		Command:        []string{os.Args[0], "-test.run=TestTrayProcess"},
		Env:            []string{"GO_WANT_TRAY_PROCESS=" + mode},
		Title:          "ErrorParty",
		StartupTimeout: 5 * time.Second,
	}
}

func buildMenu(t *testing.T, s *Service) tray.Menu {
	show, err := s.CreateMenuItem(tray.ItemShow, "Show", true)
	require.Nil(t, err)
	quit, err := s.CreateMenuItem(tray.ItemQuit, "Exit", true)
	require.Nil(t, err)
	menu, err := s.CreateMenu(show, quit)
	require.Nil(t, err)
	return menu
}

func TestServiceMenu(t *testing.T) {
	s := &Service{}

	_, err := s.CreateMenuItem("", "blank", true)
	assert.NotNil(t, err)

	show, err := s.CreateMenuItem(tray.ItemShow, "Show", true)
	require.Nil(t, err)
	assert.Equal(t, tray.MenuItem{ID: tray.ItemShow, Label: "Show", Enabled: true}, show)

	_, err = s.CreateMenuItem(tray.ItemShow, "Show again", true)
	assert.NotNil(t, err)

	_, err = s.CreateMenu()
	assert.Equal(t, ErrEmptyMenu, err)

	_, err = s.CreateMenu(show, tray.MenuItem{ID: "stray"})
	assert.NotNil(t, err)

	menu, err := s.CreateMenu(show)
	require.Nil(t, err)
	assert.Equal(t, []tray.ItemID{tray.ItemShow}, menu.IDs())

	wire := s.wireMenu(menu)
	assert.Equal(t, []MenuItem{{ID: "show", Title: "Show", Enabled: true}}, wire.Items)
}

func TestServiceDispatch(t *testing.T) {
	s := &Service{
		events: make(chan Message, 4),
		ready:  make(chan error, 1),
	}
	ids := make(chan tray.ItemID, 4)
	kinds := make(chan tray.ClickKind, 4)
	s.OnMenuEvent(func(id tray.ItemID) { ids <- id })
	s.OnTrayEvent(func(k tray.ClickKind) { kinds <- k })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Serve(ctx)

	s.handle(Message{Type: Ready})
	assert.Nil(t, <-s.ready)

	s.handle(Message{Type: ItemClicked, Item: &MenuItem{ID: "quit"}})
	s.handle(Message{Type: ItemClicked})
	s.handle(Message{Type: IconClicked, Click: "click"})
	s.handle(Message{Type: "bogus"})

	assert.Equal(t, tray.ItemQuit, <-ids)
	assert.Equal(t, tray.Click, <-kinds)
	assert.Len(t, ids, 0)

	s.Click(tray.ItemShow)
	assert.Equal(t, tray.ItemShow, <-ids)

	text := "late failure"
	s.handle(Message{Type: Error, Error: &text})
	assert.EqualError(t, <-s.ready, text)
}

func TestServiceClickBeforeIcon(t *testing.T) {
	s := &Service{}
	assert.NotPanics(t, func() { s.Click(tray.ItemShow) })
}

func TestServiceProcess(t *testing.T) {
	t.Run("relays clicks from the tray process", func(t *testing.T) {
		s := newTestService("ok")
		var ids []tray.ItemID
		var kinds []tray.ClickKind
		done := make(chan struct{})
		s.OnMenuEvent(func(id tray.ItemID) { ids = append(ids, id) })
		s.OnTrayEvent(func(k tray.ClickKind) {
			kinds = append(kinds, k)
			if k == tray.Click {
				close(done)
			}
		})

		icon, err := s.CreateTrayIcon(buildMenu(t, s))
		require.Nil(t, err)
		assert.Equal(t, []tray.ItemID{tray.ItemShow, tray.ItemQuit}, icon.Menu().IDs())

		ctx, cancel := context.WithCancel(context.Background())
		go s.Serve(ctx)
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("no events from tray process")
		}
		cancel()

		assert.Equal(t, []tray.ItemID{tray.ItemShow, tray.ItemQuit}, ids)
		assert.Equal(t, []tray.ClickKind{tray.RightClick, tray.Click}, kinds)

		_, err = s.CreateTrayIcon(icon.Menu())
		assert.Equal(t, ErrStarted, err)
		assert.Nil(t, s.TerminateDaemon())
	})

	t.Run("reports tray process errors", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			s := newTestService("fail")
			_, err := s.CreateTrayIcon(buildMenu(t, s))
			require.NotNil(t, err)
			assert.Contains(t, err.Error(), "tray unsupported")
			assert.Contains(t, err.Error(), "no status notifier host")
		}
	})

	t.Run("sends the menu again after a restart", func(t *testing.T) {
		marker := filepath.Join(t.TempDir(), "starts")
		s := newTestService("restart")
		s.Env = append(s.Env, "TRAY_MARKER="+marker)
		s.MaxRestarts = 1
		ids := make(chan tray.ItemID, 4)
		s.OnMenuEvent(func(id tray.ItemID) { ids <- id })

		_, err := s.CreateTrayIcon(buildMenu(t, s))
		require.Nil(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go s.Serve(ctx)

		select {
		case id := <-ids:
			assert.Equal(t, tray.ItemShow, id)
		case <-time.After(10 * time.Second):
			t.Fatal("no click from the restarted tray process")
		}
		starts, _ := ioutil.ReadFile(marker)
		assert.Equal(t, "..", string(starts))
		assert.Nil(t, s.TerminateDaemon())
	})

	t.Run("does not restart before ready", func(t *testing.T) {
		marker := filepath.Join(t.TempDir(), "starts")
		s := newTestService("crash")
		s.Env = append(s.Env, "TRAY_MARKER="+marker)
		s.MaxRestarts = 3

		_, err := s.CreateTrayIcon(buildMenu(t, s))
		assert.True(t, errors.Is(err, ErrExited))

		select {
		case <-s.subcmd.Exited():
		case <-time.After(5 * time.Second):
			t.Fatal("tray process still running")
		}
		time.Sleep(100 * time.Millisecond)
		starts, _ := ioutil.ReadFile(marker)
		assert.Equal(t, ".", string(starts))
		assert.False(t, subcmd.Running(s.subcmd))
	})

	t.Run("times out", func(t *testing.T) {
		s := newTestService("silent")
		s.StartupTimeout = 200 * time.Millisecond
		_, err := s.CreateTrayIcon(buildMenu(t, s))
		assert.True(t, errors.Is(err, ErrStartupTimeout))
	})

	t.Run("fails when the process cannot start", func(t *testing.T) {
		s := newTestService("ok")
		s.Command = []string{"/nonexistent/errorparty-tray"}
		_, err := s.CreateTrayIcon(buildMenu(t, s))
		assert.NotNil(t, err)
	})
}
