package console

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type lines []string

func (l *lines) Info(args ...interface{}) {
	*l = append(*l, fmt.Sprint(args...))
}

func TestLineWriter(t *testing.T) {
	var got lines
	w := &LineWriter{Name: "tray", Logger: &got, Padding: 5}

	n, err := w.Write([]byte("first\nsec"))
	assert.Nil(t, err)
	assert.Equal(t, 9, n)
	assert.Equal(t, lines{"tray  | first"}, got)

	w.Write([]byte("ond\r\n\nthird"))
	assert.Equal(t, lines{"tray  | first", "tray  | second"}, got)

	w.Flush()
	w.Flush()
	assert.Equal(t, lines{"tray  | first", "tray  | second", "tray  | third"}, got)
}

func TestLineWriterLongLine(t *testing.T) {
	var got lines
	w := &LineWriter{Name: "tray", Logger: &got}

	w.Write([]byte(strings.Repeat("x", maxLine+10)))
	assert.Len(t, got, 1)
	w.Write([]byte("\n"))
	assert.Len(t, got, 2)
	assert.Equal(t, "tray | "+strings.Repeat("x", 10), got[1])
}

func TestLineWriterNoLogger(t *testing.T) {
	w := &LineWriter{Name: "tray"}
	n, err := w.Write([]byte("dropped\n"))
	assert.Nil(t, err)
	assert.Equal(t, 8, n)
}
