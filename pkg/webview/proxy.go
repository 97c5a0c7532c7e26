package webview

import (
	"bytes"
	"crypto/tls"
	_ "embed"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"mime"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"
	"time"

	"github.com/errorparty/desktop/pkg/logging"
	misclog "github.com/errorparty/desktop/pkg/misc/logging"
	"github.com/urfave/negroni"
)

// BridgePath serves the bridge script injected into every proxied page.
const BridgePath = "/_errorparty/bridge.js"

//go:embed bridge.js
var bridgeJS []byte

var bridgeTag = []byte(`<script src="` + BridgePath + `"></script>`)

// ProxyOptions configure ProxyHandler.
type ProxyOptions struct {
	// InsecureSkipVerify accepts any certificate from the target.
	InsecureSkipVerify bool
	Logger             logging.DebugLogger
	// Transport overrides the transport to the target.
	Transport http.RoundTripper
}

// ProxyHandler serves the site at target through the webview's asset
// server, so pages get the runtime scripts and can reach the bound Go
// methods and events. HTML pages get the bridge script.
func ProxyHandler(target string, opts ProxyOptions) (http.Handler, error) {
	u, err := parseTarget(target)
	if err != nil {
		return nil, err
	}
	origin := u.Scheme + "://" + u.Host

	transport := opts.Transport
	if transport == nil {
		t := http.DefaultTransport.(*http.Transport).Clone()
		if opts.InsecureSkipVerify {
			t.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		}
		transport = t
	}

	proxy := httputil.NewSingleHostReverseProxy(u)
	director := proxy.Director
	proxy.Director = func(r *http.Request) {
		director(r)
		r.Host = u.Host
		// the transport then negotiates and strips compression itself
		r.Header.Del("Accept-Encoding")
		if r.Header.Get("Origin") != "" {
			r.Header.Set("Origin", origin)
		}
		r.Header.Del("Referer")
	}
	proxy.Transport = transport
	proxy.ModifyResponse = func(res *http.Response) error {
		localizeLocation(res.Header, u)
		return injectBridge(res)
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		misclog.Debug(opts.Logger, "webview: proxy ", r.URL.Path, ": ", err)
		http.Error(w, "ErrorParty is unreachable", http.StatusBadGateway)
	}

	bridge := renderBridge(origin)
	mux := http.NewServeMux()
	mux.HandleFunc(BridgePath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.Write(bridge)
	})
	mux.Handle("/", proxy)

	n := negroni.New(negroni.NewRecovery(), requestLogger(opts.Logger))
	n.UseHandler(mux)
	return n, nil
}

func parseTarget(target string) (*url.URL, error) {
	u, err := url.Parse(target)
	if err != nil {
		return nil, fmt.Errorf("webview: bad url %q: %w", target, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("webview: url %q must be absolute http(s)", target)
	}
	return u, nil
}

func renderBridge(origin string) []byte {
	quoted, _ := json.Marshal(origin)
	return bytes.Replace(bridgeJS, []byte(`/*ORIGIN*/""`), quoted, 1)
}

// localizeLocation turns redirects to the target into local paths so the
// webview stays on the proxy.
func localizeLocation(h http.Header, target *url.URL) {
	loc, err := url.Parse(h.Get("Location"))
	if err != nil || loc.Host != target.Host {
		return
	}
	if loc.Scheme != "http" && loc.Scheme != "https" {
		return
	}
	loc.Scheme, loc.Host, loc.User = "", "", nil
	if loc.Path == "" {
		loc.Path = "/"
	}
	h.Set("Location", loc.String())
}

func injectBridge(res *http.Response) error {
	mediaType, _, err := mime.ParseMediaType(res.Header.Get("Content-Type"))
	if err != nil || mediaType != "text/html" || res.Header.Get("Content-Encoding") != "" {
		return nil
	}
	body, err := ioutil.ReadAll(res.Body)
	res.Body.Close()
	if err != nil {
		return err
	}
	body = insertInHead(body, bridgeTag)
	res.Body = ioutil.NopCloser(bytes.NewReader(body))
	res.ContentLength = int64(len(body))
	res.Header.Set("Content-Length", strconv.Itoa(len(body)))
	res.Header.Del("ETag")
	return nil
}

// insertInHead places tag right after the opening head tag, or at the
// start of the document when there is none.
func insertInHead(doc, tag []byte) []byte {
	at := 0
	lower := asciiLower(doc)
	for from := 0; ; {
		i := bytes.Index(lower[from:], []byte("<head"))
		if i < 0 {
			break
		}
		i += from
		rest := lower[i+len("<head"):]
		if len(rest) > 0 && (rest[0] == '>' || rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\r') {
			if j := bytes.IndexByte(rest, '>'); j >= 0 {
				at = i + len("<head") + j + 1
			}
			break
		}
		from = i + 1
	}
	out := make([]byte, 0, len(doc)+len(tag))
	out = append(out, doc[:at]...)
	out = append(out, tag...)
	return append(out, doc[at:]...)
}

func asciiLower(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return out
}

func requestLogger(log logging.DebugLogger) negroni.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
		start := time.Now()
		next(w, r)
		status := 0
		if res, ok := w.(negroni.ResponseWriter); ok {
			status = res.Status()
		}
		misclog.Debug(log, "webview: ", r.Method, " ", r.URL.Path, " ", status, " ", time.Since(start))
	}
}
