package window

import (
	"context"
	"testing"

	"github.com/errorparty/desktop/pkg/tray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRuntime struct {
	mock.Mock
}

func (r *mockRuntime) WindowShow(ctx context.Context) { r.Called(ctx) }

func (r *mockRuntime) WindowUnminimise(ctx context.Context) { r.Called(ctx) }

func (r *mockRuntime) WindowSetAlwaysOnTop(ctx context.Context, b bool) { r.Called(ctx, b) }

func (r *mockRuntime) EventsEmit(ctx context.Context, event string, data ...interface{}) {
	r.Called(ctx, event, data)
}

func (r *mockRuntime) Quit(ctx context.Context) { r.Called(ctx) }

func newHost() (*Host, *mockRuntime, *[]int) {
	rt := new(mockRuntime)
	var exits []int
	h := New("")
	h.Runtime = rt
	h.ExitFunc = func(code int) { exits = append(exits, code) }
	return h, rt, &exits
}

func TestHost(t *testing.T) {
	ctx := context.Background()

	t.Run("no window before startup", func(t *testing.T) {
		h, rt, _ := newHost()
		w, ok := h.Window(tray.DefaultWindowName)
		assert.False(t, ok)
		assert.Nil(t, w)
		rt.AssertExpectations(t)
	})

	t.Run("only the main window is known", func(t *testing.T) {
		h, _, _ := newHost()
		h.Startup(ctx)
		_, ok := h.Window("settings")
		assert.False(t, ok)
	})

	t.Run("show and focus", func(t *testing.T) {
		h, rt, _ := newHost()
		rt.On("WindowShow", ctx).Return().Once()
		rt.On("WindowUnminimise", ctx).Return().Once()
		rt.On("WindowSetAlwaysOnTop", ctx, true).Return().Once()
		rt.On("WindowSetAlwaysOnTop", ctx, false).Return().Once()
		h.Startup(ctx)

		w, ok := h.Window("main")
		require.True(t, ok)
		assert.Nil(t, w.Show())
		assert.Nil(t, w.Focus())
		rt.AssertExpectations(t)
	})

	t.Run("window goes away on shutdown", func(t *testing.T) {
		h, rt, _ := newHost()
		h.Startup(ctx)
		w, ok := h.Window("main")
		require.True(t, ok)

		h.Shutdown(ctx)
		_, ok = h.Window("main")
		assert.False(t, ok)
		assert.Equal(t, ErrClosed, w.Show())
		assert.Equal(t, ErrClosed, w.Focus())
		rt.AssertNotCalled(t, "WindowShow", mock.Anything)
	})

	t.Run("exit quits the runtime", func(t *testing.T) {
		h, rt, exits := newHost()
		rt.On("Quit", ctx).Return().Once()
		h.Startup(ctx)

		h.Exit(0)

		rt.AssertExpectations(t)
		assert.Empty(t, *exits)
		assert.Equal(t, 0, h.ExitCode())
		_, ok := h.Window("main")
		assert.False(t, ok)
	})

	t.Run("exit without a window exits the process", func(t *testing.T) {
		h, rt, exits := newHost()
		h.Exit(3)
		assert.Equal(t, []int{3}, *exits)
		assert.Equal(t, 3, h.ExitCode())
		rt.AssertNotCalled(t, "Quit", mock.Anything)
	})

	t.Run("exit without a window terminates first", func(t *testing.T) {
		h, rt, _ := newHost()
		var order []string
		h.Terminate = func() { order = append(order, "terminate") }
		h.ExitFunc = func(code int) { order = append(order, "exit") }

		h.Exit(0)
		assert.Equal(t, []string{"terminate", "exit"}, order)

		// the earlier exit makes startup quit right away
		rt.On("Quit", ctx).Return().Once()
		order = nil
		h.Startup(ctx)
		h.Shutdown(ctx)
		h.Exit(2)
		assert.Equal(t, []string{"terminate", "exit"}, order)
		assert.Equal(t, 2, h.ExitCode())
		rt.AssertExpectations(t)
	})

	t.Run("terminate quits once", func(t *testing.T) {
		h, rt, exits := newHost()
		rt.On("Quit", ctx).Return().Once()
		h.Startup(ctx)

		assert.Nil(t, h.TerminateDaemon())
		h.Shutdown(ctx)
		assert.Nil(t, h.TerminateDaemon())

		rt.AssertNumberOfCalls(t, "Quit", 1)
		assert.Empty(t, *exits)
	})

	t.Run("terminate before startup quits on startup", func(t *testing.T) {
		h, rt, exits := newHost()
		rt.On("Quit", ctx).Return().Once()

		assert.Nil(t, h.TerminateDaemon())
		rt.AssertNotCalled(t, "Quit", mock.Anything)
		h.Startup(ctx)

		rt.AssertExpectations(t)
		assert.Empty(t, *exits)
	})

	t.Run("emit", func(t *testing.T) {
		h, rt, _ := newHost()
		h.Emit(tray.MediaKeyEvent, "next")
		rt.AssertNotCalled(t, "EventsEmit", mock.Anything, mock.Anything, mock.Anything)

		rt.On("EventsEmit", ctx, tray.MediaKeyEvent, []interface{}{"next"}).Return().Once()
		h.Startup(ctx)
		h.Emit(tray.MediaKeyEvent, "next")
		rt.AssertExpectations(t)
	})
}

func TestHostDrivesController(t *testing.T) {
	ctx := context.Background()
	h, rt, _ := newHost()
	rt.On("WindowShow", ctx).Return()
	rt.On("WindowUnminimise", ctx).Return()
	rt.On("WindowSetAlwaysOnTop", ctx, mock.Anything).Return()
	rt.On("Quit", ctx).Return().Once()
	h.Startup(ctx)

	c := tray.New(h, tray.Options{})
	c.HandleTrayEvent(tray.Click)
	c.HandleMenuEvent(tray.ItemQuit)
	c.HandleMenuEvent(tray.ItemShow)

	rt.AssertNumberOfCalls(t, "WindowShow", 1)
	rt.AssertNumberOfCalls(t, "Quit", 1)
}
