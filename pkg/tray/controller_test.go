package tray

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	mock.Mock
	calls []string
}

func (a *mockApp) Window(name string) (Window, bool) {
	args := a.Called(name)
	w, _ := args.Get(0).(Window)
	return w, args.Bool(1)
}

func (a *mockApp) Exit(code int) {
	a.Called(code)
}

type emittingApp struct {
	mockApp
}

func (a *emittingApp) Emit(event string, data ...interface{}) {
	a.Called(event, data)
}

type recordingWindow struct {
	calls   *[]string
	showErr error
}

func (w *recordingWindow) Show() error {
	*w.calls = append(*w.calls, "show")
	return w.showErr
}

func (w *recordingWindow) Focus() error {
	*w.calls = append(*w.calls, "focus")
	return nil
}

type fakeIcon struct {
	menu Menu
}

func (i *fakeIcon) Menu() Menu { return i.menu }

type fakeHost struct {
	created   []ItemID
	failOn    ItemID
	menuErr   error
	iconErr   error
	onMenu    func(ItemID)
	onTray    func(ClickKind)
	iconCount int
}

func (h *fakeHost) CreateMenuItem(id ItemID, label string, enabled bool) (MenuItem, error) {
	if id == h.failOn {
		return MenuItem{}, errors.New("no tray support")
	}
	h.created = append(h.created, id)
	return MenuItem{ID: id, Label: label, Enabled: enabled}, nil
}

func (h *fakeHost) CreateMenu(items ...MenuItem) (Menu, error) {
	if h.menuErr != nil {
		return Menu{}, h.menuErr
	}
	return Menu{Items: items}, nil
}

func (h *fakeHost) CreateTrayIcon(menu Menu) (TrayIcon, error) {
	if h.iconErr != nil {
		return nil, h.iconErr
	}
	h.iconCount++
	return &fakeIcon{menu: menu}, nil
}

func (h *fakeHost) OnMenuEvent(handler func(ItemID))    { h.onMenu = handler }
func (h *fakeHost) OnTrayEvent(handler func(ClickKind)) { h.onTray = handler }

func setup(t *testing.T, app AppContext, opts Options) (*Controller, *fakeHost) {
	c := New(app, opts)
	host := &fakeHost{}
	require.Nil(t, c.Setup(host))
	require.NotNil(t, host.onMenu)
	require.NotNil(t, host.onTray)
	return c, host
}

func TestSetup(t *testing.T) {
	t.Run("builds show above quit", func(t *testing.T) {
		c, host := setup(t, new(mockApp), Options{})
		assert.Equal(t, []ItemID{ItemQuit, ItemShow}, host.created)
		assert.Equal(t, []ItemID{ItemShow, ItemQuit}, c.Icon().Menu().IDs())
		for _, item := range c.Icon().Menu().Items {
			assert.True(t, item.Enabled)
		}
	})

	t.Run("menu order is stable", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			c, _ := setup(t, new(mockApp), Options{})
			assert.Equal(t, []ItemID{ItemShow, ItemQuit}, c.Icon().Menu().IDs())
		}
	})

	t.Run("uses labels", func(t *testing.T) {
		c, _ := setup(t, new(mockApp), Options{Labels: Labels("ru_RU.UTF-8")})
		items := c.Icon().Menu().Items
		assert.Equal(t, "Показать", items[0].Label)
		assert.Equal(t, "Выход", items[1].Label)
	})

	t.Run("media controls sit between show and quit", func(t *testing.T) {
		c, _ := setup(t, new(mockApp), Options{MediaControls: true})
		assert.Equal(t,
			[]ItemID{ItemShow, ItemPlayPause, ItemNext, ItemPrev, ItemQuit},
			c.Icon().Menu().IDs())
	})

	t.Run("item failure aborts", func(t *testing.T) {
		host := &fakeHost{failOn: ItemShow}
		c := New(new(mockApp), Options{})
		err := c.Setup(host)
		require.NotNil(t, err)
		assert.Contains(t, err.Error(), "show")
		assert.Nil(t, c.Icon())
		assert.Nil(t, host.onMenu)
		assert.Nil(t, host.onTray)
	})

	t.Run("icon failure aborts", func(t *testing.T) {
		cause := errors.New("tray unavailable")
		host := &fakeHost{iconErr: cause}
		c := New(new(mockApp), Options{})
		err := c.Setup(host)
		assert.True(t, errors.Is(err, cause))
		assert.Nil(t, host.onMenu)
	})

	t.Run("menu failure aborts", func(t *testing.T) {
		host := &fakeHost{menuErr: errors.New("bad menu")}
		c := New(new(mockApp), Options{})
		assert.NotNil(t, c.Setup(host))
		assert.Equal(t, 0, host.iconCount)
	})

	t.Run("twice", func(t *testing.T) {
		c, host := setup(t, new(mockApp), Options{})
		assert.Equal(t, ErrAlreadySetup, c.Setup(host))
		assert.Equal(t, 1, host.iconCount)
	})
}

func TestMenuEvents(t *testing.T) {
	t.Run("quit exits with zero", func(t *testing.T) {
		app := new(mockApp)
		app.On("Exit", 0).Return().Once()
		_, host := setup(t, app, Options{})

		host.onMenu(ItemQuit)

		app.AssertExpectations(t)
		app.AssertNumberOfCalls(t, "Exit", 1)
	})

	t.Run("nothing is handled after quit", func(t *testing.T) {
		app := new(mockApp)
		app.On("Exit", 0).Return().Once()
		_, host := setup(t, app, Options{})

		host.onMenu(ItemQuit)
		host.onMenu(ItemQuit)
		host.onMenu(ItemShow)
		host.onTray(Click)

		app.AssertNumberOfCalls(t, "Exit", 1)
		app.AssertNotCalled(t, "Window", mock.Anything)
	})

	t.Run("show with window shows then focuses", func(t *testing.T) {
		app := new(mockApp)
		w := &recordingWindow{calls: &app.calls}
		app.On("Window", DefaultWindowName).Return(w, true)
		_, host := setup(t, app, Options{})

		host.onMenu(ItemShow)

		assert.Equal(t, []string{"show", "focus"}, app.calls)
		app.AssertNotCalled(t, "Exit", mock.Anything)
	})

	t.Run("show without window is a no-op", func(t *testing.T) {
		app := new(mockApp)
		app.On("Window", DefaultWindowName).Return(nil, false)
		_, host := setup(t, app, Options{})

		assert.NotPanics(t, func() { host.onMenu(ItemShow) })
		assert.Empty(t, app.calls)
		app.AssertNotCalled(t, "Exit", mock.Anything)
	})

	t.Run("show still focuses when show fails", func(t *testing.T) {
		app := new(mockApp)
		w := &recordingWindow{calls: &app.calls, showErr: errors.New("hidden")}
		app.On("Window", DefaultWindowName).Return(w, true)
		_, host := setup(t, app, Options{})

		host.onMenu(ItemShow)

		assert.Equal(t, []string{"show", "focus"}, app.calls)
	})

	t.Run("custom window name", func(t *testing.T) {
		app := new(mockApp)
		w := &recordingWindow{calls: &app.calls}
		app.On("Window", "player").Return(w, true)
		_, host := setup(t, app, Options{WindowName: "player"})

		host.onMenu(ItemShow)

		app.AssertCalled(t, "Window", "player")
		assert.Equal(t, []string{"show", "focus"}, app.calls)
	})

	t.Run("unknown identifiers do nothing", func(t *testing.T) {
		app := new(mockApp)
		_, host := setup(t, app, Options{})

		for _, id := range []ItemID{"unknown", "", "Quit", "SHOW", ItemNext} {
			host.onMenu(id)
		}

		assert.Empty(t, app.Calls)
		assert.Empty(t, app.calls)
	})

	t.Run("media items emit when registered", func(t *testing.T) {
		app := new(emittingApp)
		app.On("Emit", MediaKeyEvent, []interface{}{"next"}).Return().Once()
		_, host := setup(t, app, Options{MediaControls: true})

		host.onMenu(ItemNext)

		app.AssertExpectations(t)
	})

	t.Run("media items are ignored when not registered", func(t *testing.T) {
		app := new(emittingApp)
		_, host := setup(t, app, Options{})

		host.onMenu(ItemPlayPause)

		app.AssertNotCalled(t, "Emit", mock.Anything, mock.Anything)
	})
}

func TestTrayEvents(t *testing.T) {
	t.Run("click matches show", func(t *testing.T) {
		app := new(mockApp)
		w := &recordingWindow{calls: &app.calls}
		app.On("Window", DefaultWindowName).Return(w, true)
		_, host := setup(t, app, Options{})

		host.onTray(Click)
		clicked := append([]string(nil), app.calls...)
		app.calls = nil
		host.onMenu(ItemShow)

		assert.Equal(t, []string{"show", "focus"}, clicked)
		assert.Equal(t, clicked, app.calls)
	})

	t.Run("click without window is a no-op", func(t *testing.T) {
		app := new(mockApp)
		app.On("Window", DefaultWindowName).Return(nil, false)
		_, host := setup(t, app, Options{})

		assert.NotPanics(t, func() { host.onTray(Click) })
		assert.Empty(t, app.calls)
		app.AssertNotCalled(t, "Exit", mock.Anything)
	})

	t.Run("other kinds do nothing", func(t *testing.T) {
		app := new(mockApp)
		_, host := setup(t, app, Options{})

		host.onTray(RightClick)
		host.onTray(DoubleClick)
		host.onTray("hover")

		assert.Empty(t, app.Calls)
	})

	t.Run("repeated clicks re-assert focus", func(t *testing.T) {
		app := new(mockApp)
		w := &recordingWindow{calls: &app.calls}
		app.On("Window", DefaultWindowName).Return(w, true)
		_, host := setup(t, app, Options{})

		host.onTray(Click)
		host.onTray(Click)

		assert.Equal(t, []string{"show", "focus", "show", "focus"}, app.calls)
	})
}
