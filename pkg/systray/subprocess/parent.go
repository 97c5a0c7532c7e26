package subprocess

import (
	"strconv"
	"time"

	ps "github.com/keybase/go-ps"
)

var parentPollInterval = 2 * time.Second

// watchParent calls quit once the process with the given pid is gone, so a
// crashed parent does not leave an orphaned tray icon behind. An empty or
// invalid pid disables the watch.
func watchParent(pid string, quit func()) {
	ppid, err := strconv.Atoi(pid)
	if err != nil || ppid <= 0 {
		return
	}
	for !parentGone(ppid) {
		time.Sleep(parentPollInterval)
	}
	quit()
}

func parentGone(pid int) bool {
	p, err := ps.FindProcess(pid)
	if err != nil {
		return false
	}
	return p == nil
}
