// Package console turns a child process's output stream into log lines.
package console

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/errorparty/desktop/pkg/logging"
)

// maxLine bounds a buffered partial line; longer lines are logged in pieces.
const maxLine = 4096

// LineWriter is an io.Writer that logs every complete line written to it,
// prefixed with Name.
type LineWriter struct {
	Name    string
	Logger  logging.InfoLogger
	Padding int

	mu     sync.Mutex
	buffer bytes.Buffer
}

func (of *LineWriter) Write(p []byte) (int, error) {
	of.mu.Lock()
	defer of.mu.Unlock()

	n := len(p)
	for {
		i := bytes.IndexByte(p, '\n')
		if i < 0 {
			break
		}
		of.buffer.Write(p[0:i])
		of.writeLine()
		p = p[i+1:]
	}
	of.buffer.Write(p)
	for of.buffer.Len() >= maxLine {
		line := of.buffer.Next(maxLine)
		of.log(string(line))
	}
	return n, nil
}

// Flush logs a trailing partial line, if any.
func (of *LineWriter) Flush() {
	of.mu.Lock()
	defer of.mu.Unlock()
	if of.buffer.Len() > 0 {
		of.writeLine()
	}
}

func (of *LineWriter) writeLine() {
	line := bytes.TrimRight(of.buffer.Bytes(), "\r")
	if len(line) > 0 {
		of.log(string(line))
	}
	of.buffer.Reset()
}

func (of *LineWriter) log(line string) {
	if of.Logger == nil {
		return
	}
	formatter := fmt.Sprintf("%%-%ds | %%s", of.Padding)
	of.Logger.Info(fmt.Sprintf(formatter, of.Name, line))
}
