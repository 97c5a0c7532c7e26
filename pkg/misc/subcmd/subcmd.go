package subcmd

import (
	"errors"
	"io"
	"os/exec"
	"sync"

	"github.com/armon/circbuf"
)

type Status string

const (
	StatusStarting Status = "Starting"
	StatusStarted  Status = "Started"
	StatusExited   Status = "Exited"
	StatusStopped  Status = "Stopped"
)

func (s Status) String() string {
	return string(s)
}

func Running(c *Subcmd) bool {
	s := c.CurrentStatus()
	return s == StatusStarting || s == StatusStarted
}

// Subcmd supervises a child process built from a template command,
// restarting it when it exits until stopped or MaxRestarts is reached.
type Subcmd struct {
	*exec.Cmd

	// Setup is called with each fresh command before it starts.
	Setup func(*exec.Cmd) error
	// MaxRestarts below zero means restart forever.
	MaxRestarts int
	// StderrTail keeps the last n bytes of stderr for Tail.
	StderrTail int64
	Started    chan *exec.Cmd
	// OnExit is called after each child exits, before a restart is
	// considered. Returning false stops instead of restarting.
	OnExit func(cmd *exec.Cmd, err error) bool

	status    Status
	callbacks []func(*Subcmd)
	current   *exec.Cmd
	gen       int
	exited    chan struct{}
	tail      *tailBuffer

	lastErr    error
	lastStatus int
	restarts   int

	waitCh chan error

	mu sync.Mutex
}

func New(name string, arg ...string) *Subcmd {
	return &Subcmd{
		Cmd:         exec.Command(name, arg...),
		MaxRestarts: -1,
		status:      StatusStopped,
	}
}

func (sc *Subcmd) CurrentStatus() Status {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.status
}

func (sc *Subcmd) OnStatusChange(cb func(*Subcmd)) {
	cb(sc)
	sc.mu.Lock()
	sc.callbacks = append(sc.callbacks, cb)
	sc.mu.Unlock()
}

func (sc *Subcmd) Start() error {
	if Running(sc) {
		return errors.New("already started")
	}
	return sc.start()
}

func (sc *Subcmd) Restart() error {
	if sc.CurrentStatus() == StatusStarting {
		return errors.New("already starting")
	}
	sc.mu.Lock()
	cur := sc.current
	sc.current = nil
	sc.gen++
	sc.mu.Unlock()
	if cur != nil && cur.Process != nil {
		terminate(cur)
	}
	return sc.start()
}

func (sc *Subcmd) Stop() error {
	cur := sc.process()
	if cur == nil {
		return errors.New("not running")
	}
	sc.setStatus(StatusStopped)
	return terminate(cur)
}

func (sc *Subcmd) Wait() error {
	sc.mu.Lock()
	if sc.waitCh != nil {
		sc.mu.Unlock()
		return errors.New("wait already called")
	}
	ch := make(chan error, 1)
	sc.waitCh = ch
	sc.mu.Unlock()
	return <-ch
}

// Exited is closed once the most recently started child has exited and
// its output has been drained.
func (sc *Subcmd) Exited() <-chan struct{} {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.exited == nil {
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return sc.exited
}

// Tail returns the last StderrTail bytes the current or last child wrote
// to stderr.
func (sc *Subcmd) Tail() string {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.tail == nil {
		return ""
	}
	return sc.tail.String()
}

func (sc *Subcmd) Error() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.lastErr
}

func (sc *Subcmd) ExitStatus() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.lastStatus
}

func (sc *Subcmd) process() *exec.Cmd {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.current == nil || sc.current.Process == nil {
		return nil
	}
	return sc.current
}

func (sc *Subcmd) setStatus(s Status) {
	sc.mu.Lock()
	if sc.status == s {
		sc.mu.Unlock()
		return
	}
	sc.status = s
	callbacks := append([]func(*Subcmd){}, sc.callbacks...)
	sc.mu.Unlock()
	for _, cb := range callbacks {
		cb(sc)
	}
}

func (sc *Subcmd) transition(from, to Status) {
	sc.mu.Lock()
	ok := sc.status == from
	sc.mu.Unlock()
	if ok {
		sc.setStatus(to)
	}
}

func (sc *Subcmd) start() error {
	sc.setStatus(StatusStarting)

	cmd := &exec.Cmd{
		Path:        sc.Cmd.Path,
		Args:        sc.Cmd.Args,
		Env:         sc.Cmd.Env,
		Dir:         sc.Cmd.Dir,
		Stderr:      sc.Cmd.Stderr,
		ExtraFiles:  sc.Cmd.ExtraFiles,
		SysProcAttr: sc.Cmd.SysProcAttr,
	}
	prepare(cmd)

	if sc.Setup != nil {
		if err := sc.Setup(cmd); err != nil {
			sc.setStatus(StatusStopped)
			return err
		}
	}

	if sc.StderrTail > 0 {
		buf, err := circbuf.NewBuffer(sc.StderrTail)
		if err != nil {
			sc.setStatus(StatusStopped)
			return err
		}
		tail := &tailBuffer{buf: buf}
		if cmd.Stderr != nil {
			cmd.Stderr = io.MultiWriter(tail, cmd.Stderr)
		} else {
			cmd.Stderr = tail
		}
		sc.mu.Lock()
		sc.tail = tail
		sc.mu.Unlock()
	}

	if err := cmd.Start(); err != nil {
		sc.setStatus(StatusStopped)
		return err
	}
	exited := make(chan struct{})
	sc.mu.Lock()
	sc.current = cmd
	sc.exited = exited
	sc.gen++
	gen := sc.gen
	sc.mu.Unlock()

	go sc.watch(cmd, gen, exited)
	return nil
}

func (sc *Subcmd) watch(cmd *exec.Cmd, gen int, exited chan struct{}) {
	sc.transition(StatusStarting, StatusStarted)
	if sc.Started != nil {
		sc.Started <- cmd
	}

	err := cmd.Wait()
	close(exited)

	sc.mu.Lock()
	sc.lastErr = err
	sc.lastStatus = exitStatus(err)
	replaced := sc.gen != gen
	if !replaced {
		sc.current = nil
	}
	waitCh := sc.waitCh
	sc.waitCh = nil
	stopped := sc.status == StatusStopped
	sc.mu.Unlock()

	if waitCh != nil {
		waitCh <- err
	}
	restart := true
	if sc.OnExit != nil {
		restart = sc.OnExit(cmd, err)
	}
	if stopped || replaced {
		return
	}
	sc.setStatus(StatusExited)

	sc.mu.Lock()
	exhausted := !restart || (sc.MaxRestarts >= 0 && sc.restarts >= sc.MaxRestarts)
	if !exhausted {
		sc.restarts++
	}
	sc.mu.Unlock()

	if exhausted {
		sc.setStatus(StatusStopped)
		return
	}
	if err := sc.start(); err != nil {
		sc.mu.Lock()
		sc.lastErr = err
		sc.mu.Unlock()
	}
}

func exitStatus(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 0
}

// tailBuffer guards a circbuf against the concurrent writer exec sets up
// for stderr.
type tailBuffer struct {
	mu  sync.Mutex
	buf *circbuf.Buffer
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.Write(p)
}

func (t *tailBuffer) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buf.String()
}
