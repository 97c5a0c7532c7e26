package main

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/errorparty/desktop/pkg/logging"
	"github.com/skratchdot/open-golang/open"
)

var ErrUnsupportedURL = errors.New("only http and https links can be opened")

// App is bound to the frontend.
type App struct {
	ctx  context.Context
	log  logging.Logger
	open func(string) error
}

func NewApp(log logging.Logger) *App {
	return &App{log: log, open: open.Start}
}

func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// OpenExternal opens a link in the user's default browser.
func (a *App) OpenExternal(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("open %q: %w", link, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("open %q: %w", link, ErrUnsupportedURL)
	}
	if err := a.open(u.String()); err != nil {
		a.log.Error("open external: ", err)
		return err
	}
	a.log.Debug("opened ", u.String())
	return nil
}
