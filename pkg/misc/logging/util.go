package logging

import (
	"unsafe"

	"github.com/errorparty/desktop/pkg/logging"
)

// Debug logs through log unless it is nil, including a nil pointer stored
// in a non-nil interface.
func Debug(log logging.DebugLogger, args ...interface{}) {
	if !isNilValue(log) {
		log.Debug(args...)
	}
}

// Info is Debug for informational messages.
func Info(log logging.InfoLogger, args ...interface{}) {
	if !isNilValue(log) {
		log.Info(args...)
	}
}

// Error is Debug for errors.
func Error(log logging.ErrorLogger, args ...interface{}) {
	if !isNilValue(log) {
		log.Error(args...)
	}
}

func isNilValue(i interface{}) bool {
	return (*[2]uintptr)(unsafe.Pointer(&i))[1] == 0
}
