package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestOpenExternal(t *testing.T) {
	var opened []string
	app := NewApp(zap.NewNop().Sugar())
	app.open = func(link string) error {
		opened = append(opened, link)
		return nil
	}

	assert.Nil(t, app.OpenExternal("https://errorparty.ru/match/1"))
	assert.Nil(t, app.OpenExternal("http://example.com"))
	assert.Equal(t, []string{"https://errorparty.ru/match/1", "http://example.com"}, opened)

	for _, link := range []string{"file:///etc/passwd", "javascript:alert(1)", "steam://run/570", "https://", "::"} {
		err := app.OpenExternal(link)
		assert.Error(t, err, link)
	}
	assert.True(t, errors.Is(app.OpenExternal("mailto:a@b.c"), ErrUnsupportedURL))
	assert.Len(t, opened, 2)

	app.open = func(string) error { return errors.New("no browser") }
	assert.EqualError(t, app.OpenExternal("https://errorparty.ru"), "no browser")
}
