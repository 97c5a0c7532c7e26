package subcmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHelperProcess is not a real test; it is the child process for the
// tests below.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}
	code, _ := strconv.Atoi(os.Getenv("HELPER_EXIT"))
	fmt.Fprint(os.Stderr, os.Getenv("HELPER_STDERR"))
	os.Exit(code)
}

func helper(env ...string) *Subcmd {
	sc := New(os.Args[0], "-test.run=TestHelperProcess")
	sc.Env = append([]string{"GO_WANT_HELPER_PROCESS=1"}, env...)
	return sc
}

type statusLog struct {
	mu       sync.Mutex
	statuses []Status
	done     chan struct{}
	once     sync.Once
}

func watchStatus(sc *Subcmd) *statusLog {
	l := &statusLog{done: make(chan struct{})}
	sc.OnStatusChange(func(sc *Subcmd) {
		s := sc.CurrentStatus()
		l.mu.Lock()
		l.statuses = append(l.statuses, s)
		started := len(l.statuses) > 1
		l.mu.Unlock()
		if started && s == StatusStopped {
			l.once.Do(func() { close(l.done) })
		}
	})
	return l
}

func (l *statusLog) count(s Status) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, st := range l.statuses {
		if st == s {
			n++
		}
	}
	return n
}

func (l *statusLog) wait(t *testing.T) {
	select {
	case <-l.done:
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for subcmd to stop")
	}
}

func TestSubcmd(t *testing.T) {
	t.Run("keeps the stderr tail", func(t *testing.T) {
		sc := helper("HELPER_EXIT=3", "HELPER_STDERR=systray: no tray available")
		sc.MaxRestarts = 0
		sc.StderrTail = 18
		log := watchStatus(sc)

		require.Nil(t, sc.Start())
		log.wait(t)

		assert.Equal(t, "no tray available", sc.Tail()[1:])
		assert.Len(t, sc.Tail(), 18)
		assert.Equal(t, 3, sc.ExitStatus())
		assert.NotNil(t, sc.Error())
		assert.False(t, Running(sc))
	})

	t.Run("restarts up to the limit", func(t *testing.T) {
		sc := helper("HELPER_EXIT=1")
		sc.MaxRestarts = 2
		log := watchStatus(sc)

		require.Nil(t, sc.Start())
		log.wait(t)

		assert.Equal(t, 3, log.count(StatusStarting))
		assert.Equal(t, StatusStopped, sc.CurrentStatus())
	})

	t.Run("exit hook can refuse a restart", func(t *testing.T) {
		sc := helper("HELPER_EXIT=1")
		sc.MaxRestarts = 5
		var mu sync.Mutex
		var exits []int
		sc.OnExit = func(cmd *exec.Cmd, err error) bool {
			mu.Lock()
			defer mu.Unlock()
			exits = append(exits, exitStatus(err))
			return len(exits) < 2
		}
		log := watchStatus(sc)

		require.Nil(t, sc.Start())
		log.wait(t)

		assert.Equal(t, 2, log.count(StatusStarting))
		mu.Lock()
		assert.Equal(t, []int{1, 1}, exits)
		mu.Unlock()
	})

	t.Run("stop when not running", func(t *testing.T) {
		sc := helper()
		assert.NotNil(t, sc.Stop())
	})

	t.Run("setup error stops", func(t *testing.T) {
		sc := helper()
		sc.Setup = func(*exec.Cmd) error { return fmt.Errorf("no pipes") }
		assert.EqualError(t, sc.Start(), "no pipes")
		assert.Equal(t, StatusStopped, sc.CurrentStatus())
	})
}

func TestExitStatus(t *testing.T) {
	assert.Equal(t, 0, exitStatus(nil))
	assert.Equal(t, 0, exitStatus(fmt.Errorf("plain")))
}
