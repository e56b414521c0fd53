package store

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/Tubbz-alt/ChessGame-3/internal/config"
)

// logger routes badger's diagnostics to the program's log writer, gated by
// the program's verbosity.
type logger struct {
	w         io.Writer
	verbosity int
}

var _ badger.Logger = (*logger)(nil)

func newLogger(w io.Writer, verbosity int) *logger {
	if w == nil {
		w = io.Discard
	}
	return &logger{w: w, verbosity: verbosity}
}

func (l *logger) printf(level int, prefix, format string, args ...interface{}) {
	if l.verbosity < level {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprint(l.w, "store: "+prefix+msg)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.printf(config.Quiet, "ERROR: ", format, args...)
}

func (l *logger) Warningf(format string, args ...interface{}) {
	l.printf(config.Normal, "WARNING: ", format, args...)
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.printf(config.Verbose, "", format, args...)
}

// Debugf is dropped.
func (l *logger) Debugf(string, ...interface{}) {}
