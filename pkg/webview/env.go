// Package webview prepares the embedded webview before the runtime starts.
package webview

import (
	"os"
	"strings"
)

const (
	// BrowserArgsEnv is read by WebView2 when it launches its browser
	// process.
	BrowserArgsEnv = "WEBVIEW2_ADDITIONAL_BROWSER_ARGUMENTS"

	IgnoreCertificateErrors = "--ignore-certificate-errors"
)

// Env is the process environment. The zero value uses os.Getenv and
// os.Setenv.
type Env struct {
	Getenv func(string) string
	Setenv func(string, string) error
}

// ApplyTLS adds IgnoreCertificateErrors to the webview browser arguments
// when ignore is set, keeping any arguments already present. It reports
// whether the flag is in effect.
func (e Env) ApplyTLS(ignore bool) (bool, error) {
	getenv, setenv := e.Getenv, e.Setenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if setenv == nil {
		setenv = os.Setenv
	}

	current := getenv(BrowserArgsEnv)
	present := hasArg(current, IgnoreCertificateErrors)
	if !ignore || present {
		return present, nil
	}
	args := strings.TrimSpace(current + " " + IgnoreCertificateErrors)
	if err := setenv(BrowserArgsEnv, args); err != nil {
		return false, err
	}
	return true, nil
}

func hasArg(args, arg string) bool {
	for _, f := range strings.Fields(args) {
		if f == arg {
			return true
		}
	}
	return false
}
