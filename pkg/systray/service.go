// Package systray runs the tray icon in a child process and exposes it to
// the tray controller. The child speaks the line protocol in api.go.
package systray

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/errorparty/desktop/pkg/console"
	"github.com/errorparty/desktop/pkg/logging"
	misclog "github.com/errorparty/desktop/pkg/misc/logging"
	"github.com/errorparty/desktop/pkg/misc/subcmd"
	"github.com/errorparty/desktop/pkg/tray"
)

const (
	DefaultStartupTimeout = 10 * time.Second
	stderrTail            = 4096
	drainTimeout          = 2 * time.Second
)

var (
	ErrEmptyMenu      = errors.New("systray: menu has no items")
	ErrStarted        = errors.New("systray: tray icon already created")
	ErrStartupTimeout = errors.New("systray: tray process did not become ready")
	ErrExited         = errors.New("systray: tray process exited")
)

// Service implements tray.Host on top of a tray child process.
type Service struct {
	Logger logging.Logger

	// Command runs the tray process; defaults to this binary's "tray"
	// subcommand.
	Command        []string
	Env            []string
	Icon           string
	Title          string
	Tooltip        string
	MaxRestarts    int
	StartupTimeout time.Duration

	mu     sync.Mutex
	items  map[tray.ItemID]tray.MenuItem
	menu   *Menu
	subcmd *subcmd.Subcmd
	stderr *console.LineWriter
	procs  map[*exec.Cmd]*proc
	events chan Message
	ready  chan error
	onMenu func(tray.ItemID)
	onTray func(tray.ClickKind)
}

type icon struct {
	menu tray.Menu
}

func (i *icon) Menu() tray.Menu {
	return i.menu
}

func (s *Service) CreateMenuItem(id tray.ItemID, label string, enabled bool) (tray.MenuItem, error) {
	if id == "" {
		return tray.MenuItem{}, errors.New("systray: empty item id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.items == nil {
		s.items = make(map[tray.ItemID]tray.MenuItem)
	}
	if _, exists := s.items[id]; exists {
		return tray.MenuItem{}, fmt.Errorf("systray: duplicate item %q", id)
	}
	item := tray.MenuItem{ID: id, Label: label, Enabled: enabled}
	s.items[id] = item
	return item, nil
}

func (s *Service) CreateMenu(items ...tray.MenuItem) (tray.Menu, error) {
	if len(items) == 0 {
		return tray.Menu{}, ErrEmptyMenu
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		if _, ok := s.items[item.ID]; !ok {
			return tray.Menu{}, fmt.Errorf("systray: unknown item %q", item.ID)
		}
	}
	return tray.Menu{Items: append([]tray.MenuItem(nil), items...)}, nil
}

// CreateTrayIcon starts the tray process and blocks until it reports the
// icon is up, reports an error, exits, or StartupTimeout passes.
func (s *Service) CreateTrayIcon(menu tray.Menu) (tray.TrayIcon, error) {
	s.mu.Lock()
	if s.subcmd != nil {
		s.mu.Unlock()
		return nil, ErrStarted
	}
	s.menu = s.wireMenu(menu)
	s.events = make(chan Message, 16)
	s.ready = make(chan error, 1)

	command := s.Command
	if len(command) == 0 {
		command = []string{os.Args[0], "tray"}
	}
	sc := subcmd.New(command[0], command[1:]...)
	s.stderr = &console.LineWriter{Name: "tray"}
	if s.Logger != nil {
		s.stderr.Logger = s.Logger
	}
	sc.Stderr = s.stderr
	sc.StderrTail = stderrTail
	sc.MaxRestarts = s.MaxRestarts
	sc.Started = make(chan *exec.Cmd)
	sc.Setup = s.setup
	sc.OnExit = s.exited
	s.subcmd = sc
	s.mu.Unlock()

	go s.relay(sc.Started)

	if err := sc.Start(); err != nil {
		s.releaseAll()
		return nil, fmt.Errorf("systray: start tray process: %w", err)
	}

	timeout := s.StartupTimeout
	if timeout <= 0 {
		timeout = DefaultStartupTimeout
	}
	var err error
	select {
	case err = <-s.ready:
	case <-time.After(timeout):
		err = ErrStartupTimeout
	}
	if err != nil {
		sc.Stop()
		select {
		case <-sc.Exited():
		case <-time.After(time.Second):
		}
		s.stderr.Flush()
		if tail := strings.TrimSpace(sc.Tail()); tail != "" {
			return nil, fmt.Errorf("%w: %s", err, tail)
		}
		return nil, err
	}

	misclog.Info(s.Logger, "systray: tray icon ready")
	return &icon{menu: menu}, nil
}

func (s *Service) OnMenuEvent(handler func(tray.ItemID)) {
	s.mu.Lock()
	s.onMenu = handler
	s.mu.Unlock()
}

func (s *Service) OnTrayEvent(handler func(tray.ClickKind)) {
	s.mu.Lock()
	s.onTray = handler
	s.mu.Unlock()
}

// Click queues a click on the menu item id as if it came from the tray, so
// it is handled on the same goroutine as tray events. It is dropped before
// the tray icon exists.
func (s *Service) Click(id tray.ItemID) {
	s.mu.Lock()
	events := s.events
	s.mu.Unlock()
	if events == nil {
		return
	}
	s.handle(Message{Type: ItemClicked, Item: &MenuItem{ID: string(id)}})
}

// Serve delivers tray events to the handlers one at a time until ctx is
// done.
func (s *Service) Serve(ctx context.Context) {
	s.mu.Lock()
	events := s.events
	s.mu.Unlock()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-events:
			s.dispatch(msg)
		}
	}
}

// TerminateDaemon stops the tray process.
func (s *Service) TerminateDaemon() error {
	s.mu.Lock()
	sc, stderr := s.subcmd, s.stderr
	s.mu.Unlock()
	if sc == nil {
		return nil
	}
	defer stderr.Flush()
	if !subcmd.Running(sc) {
		s.releaseAll()
		return nil
	}
	return sc.Stop()
}

func (s *Service) wireMenu(menu tray.Menu) *Menu {
	m := &Menu{
		Icon:    s.Icon,
		Title:   s.Title,
		Tooltip: s.Tooltip,
	}
	for _, item := range menu.Items {
		m.Items = append(m.Items, MenuItem{
			ID:      string(item.ID),
			Title:   item.Label,
			Enabled: item.Enabled,
		})
	}
	return m
}

// proc is the parent's side of one tray process's stdin and stdout. The
// pipes belong to the service so that reading stdout to the end does not
// race with the process being reaped.
type proc struct {
	stdin   io.WriteCloser
	stdout  io.ReadCloser
	child   []io.Closer
	drained chan struct{}

	mu    sync.Mutex
	ready bool
}

func (p *proc) setReady() {
	p.mu.Lock()
	p.ready = true
	p.mu.Unlock()
}

func (p *proc) isReady() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

func (p *proc) closeChild() {
	for _, c := range p.child {
		c.Close()
	}
}

func (p *proc) close() {
	p.closeChild()
	p.stdin.Close()
	p.stdout.Close()
}

func (s *Service) setup(cmd *exec.Cmd) error {
	cmd.Env = append(os.Environ(), s.Env...)
	cmd.Env = append(cmd.Env, EnvParentPID+"="+strconv.Itoa(os.Getpid()))

	inR, inW, err := os.Pipe()
	if err != nil {
		return err
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		inR.Close()
		inW.Close()
		return err
	}
	cmd.Stdin, cmd.Stdout = inR, outW

	p := &proc{
		stdin:   inW,
		stdout:  outR,
		child:   []io.Closer{inR, outW},
		drained: make(chan struct{}),
	}
	s.mu.Lock()
	if s.procs == nil {
		s.procs = make(map[*exec.Cmd]*proc)
	}
	s.procs[cmd] = p
	s.mu.Unlock()

	go s.receive(p)
	return nil
}

// relay hands the menu to every tray process that starts, including
// restarts.
func (s *Service) relay(started <-chan *exec.Cmd) {
	for cmd := range started {
		s.mu.Lock()
		p, menu := s.procs[cmd], s.menu
		s.mu.Unlock()
		if p == nil {
			continue
		}

		// the child holds its own copies now; ours would keep stdout open
		p.closeChild()
		if err := send(p.stdin, Message{Type: InitMenu, Menu: menu}); err != nil {
			misclog.Debug(s.Logger, "systray: send menu: ", err)
		}
	}
}

// exited runs after a tray process has been reaped. Only a process that
// reported ready is restarted.
func (s *Service) exited(cmd *exec.Cmd, err error) bool {
	s.mu.Lock()
	p := s.procs[cmd]
	s.mu.Unlock()
	if p == nil {
		return false
	}

	select {
	case <-p.drained:
	case <-time.After(drainTimeout):
		misclog.Debug(s.Logger, "systray: tray stdout still open after exit")
	}
	p.close()

	s.mu.Lock()
	delete(s.procs, cmd)
	s.mu.Unlock()

	if !p.isReady() {
		return false
	}
	misclog.Info(s.Logger, "systray: tray process exited: ", err)
	return true
}

func (s *Service) releaseAll() {
	s.mu.Lock()
	procs := s.procs
	s.procs = nil
	s.mu.Unlock()
	for _, p := range procs {
		p.close()
	}
}

func (s *Service) receive(p *proc) {
	defer close(p.drained)
	scanner := bufio.NewScanner(p.stdout)
	for scanner.Scan() {
		var msg Message
		if err := json.Unmarshal(scanner.Bytes(), &msg); err != nil {
			misclog.Debug(s.Logger, "systray: bad message: ", err)
			continue
		}
		if msg.Type == Ready {
			p.setReady()
		}
		s.handle(msg)
	}
	if err := scanner.Err(); err != nil {
		misclog.Debug(s.Logger, "systray: ", err)
	}
	s.signalReady(ErrExited)
}

func (s *Service) handle(msg Message) {
	switch msg.Type {
	case Ready:
		s.signalReady(nil)
	case Error:
		text := "unknown error"
		if msg.Error != nil {
			text = *msg.Error
		}
		misclog.Error(s.Logger, "systray: tray process: ", text)
		s.signalReady(errors.New(text))
	case ItemClicked, IconClicked:
		select {
		case s.events <- msg:
		default:
			misclog.Debug(s.Logger, "systray: dropping ", msg.Type, ", events are not being served")
		}
	default:
		misclog.Debug(s.Logger, "systray: unknown message: ", msg.Type)
	}
}

func (s *Service) dispatch(msg Message) {
	s.mu.Lock()
	onMenu, onTray := s.onMenu, s.onTray
	s.mu.Unlock()

	switch msg.Type {
	case ItemClicked:
		if msg.Item != nil && onMenu != nil {
			onMenu(tray.ItemID(msg.Item.ID))
		}
	case IconClicked:
		if onTray != nil {
			onTray(tray.ClickKind(msg.Click))
		}
	}
}

// signalReady reports the outcome of a start without blocking; only the
// first outcome per start is read.
func (s *Service) signalReady(err error) {
	select {
	case s.ready <- err:
	default:
	}
}

func send(w io.Writer, msg Message) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
