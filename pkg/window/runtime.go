package window

import (
	"context"

	wruntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// Runtime is the part of the webview runtime the host drives.
type Runtime interface {
	WindowShow(ctx context.Context)
	WindowUnminimise(ctx context.Context)
	WindowSetAlwaysOnTop(ctx context.Context, b bool)
	EventsEmit(ctx context.Context, event string, data ...interface{})
	Quit(ctx context.Context)
}

type wailsRuntime struct{}

func (wailsRuntime) WindowShow(ctx context.Context) {
	wruntime.WindowShow(ctx)
}

func (wailsRuntime) WindowUnminimise(ctx context.Context) {
	wruntime.WindowUnminimise(ctx)
}

func (wailsRuntime) WindowSetAlwaysOnTop(ctx context.Context, b bool) {
	wruntime.WindowSetAlwaysOnTop(ctx, b)
}

func (wailsRuntime) EventsEmit(ctx context.Context, event string, data ...interface{}) {
	wruntime.EventsEmit(ctx, event, data...)
}

func (wailsRuntime) Quit(ctx context.Context) {
	wruntime.Quit(ctx)
}
