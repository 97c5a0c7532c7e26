package daemon

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/errorparty/desktop/pkg/logging"
)

// Initializer is initialized before services are started. Returning
// an error will cancel the start of daemon services.
type Initializer interface {
	InitializeDaemon() error
}

// Terminator is terminated when the daemon gets a stop signal.
type Terminator interface {
	TerminateDaemon() error
}

// Service is run after the daemon is initialized.
type Service interface {
	Serve(ctx context.Context)
}

// Daemon is a top-level daemon lifecycle manager that runs services given
// to it.
type Daemon struct {
	Initializers []Initializer
	Services     []Service
	Terminators  []Terminator
	Logger       logging.Logger
	Context      context.Context
	state        int32
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	errs         chan []error
}

// New builds a daemon from components. Each component is added to every
// lifecycle list whose interface it implements, in the order given.
func New(components ...interface{}) *Daemon {
	d := &Daemon{}
	for _, c := range components {
		if i, ok := c.(Initializer); ok {
			d.Initializers = append(d.Initializers, i)
		}
		if s, ok := c.(Service); ok {
			d.Services = append(d.Services, s)
		}
		if t, ok := c.(Terminator); ok {
			d.Terminators = append(d.Terminators, t)
		}
	}
	return d
}

// Run creates a daemon from components and runs it with a background
// context.
func Run(components ...interface{}) error {
	d := New(components...)
	return d.Run(context.Background())
}

// Run executes the daemon lifecycle and blocks until it is terminated.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.Start(ctx); err != nil {
		return err
	}
	return d.Wait()
}

// Start calls the initializers and starts the services in the background.
// The caller's goroutine stays free, which the webview runtime needs.
func (d *Daemon) Start(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&d.state, 0, 1) {
		return errors.New("already running")
	}

	for _, i := range d.Initializers {
		if err := i.InitializeDaemon(); err != nil {
			atomic.StoreInt32(&d.state, 0)
			return err
		}
	}

	if len(d.Services) == 0 {
		atomic.StoreInt32(&d.state, 0)
		return errors.New("no services to run")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancelFunc := context.WithCancel(ctx)
	d.Context = ctx
	d.cancel = cancelFunc
	d.errs = make(chan []error, 1)

	go TerminateOnSignal(d)
	go TerminateOnContextDone(d)

	for _, service := range d.Services {
		d.wg.Add(1)
		go func(s Service) {
			s.Serve(d.Context)
			d.wg.Done()
		}(service)
	}
	return nil
}

// Wait blocks until the services return and the daemon is terminated,
// returning the first terminator error.
func (d *Daemon) Wait() error {
	d.wg.Wait()
	errs := <-d.errs
	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// Terminate cancels the daemon context and calls Terminators in reverse order
func (d *Daemon) Terminate() {
	if d == nil {
		return
	}

	if !atomic.CompareAndSwapInt32(&d.state, 1, 2) {
		return
	}

	if d.cancel != nil {
		d.cancel()
	}
	var errs []error
	for i := len(d.Terminators) - 1; i >= 0; i-- {
		if err := d.Terminators[i].TerminateDaemon(); err != nil {
			if d.Logger != nil {
				d.Logger.Error("terminate: ", err)
			}
			errs = append(errs, err)
		}
	}
	d.errs <- errs
}

// TerminateOnSignal waits for SIGINT, SIGTERM or SIGHUP to terminate the
// daemon.
func TerminateOnSignal(d *Daemon) {
	termSigs := make(chan os.Signal, 1)
	signal.Notify(termSigs, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case <-termSigs:
		d.Terminate()
	case <-d.Context.Done():
	}
	signal.Stop(termSigs)
}

// TerminateOnContextDone waits for the daemon's context to be canceled.
func TerminateOnContextDone(d *Daemon) {
	<-d.Context.Done()
	d.Terminate()
}
