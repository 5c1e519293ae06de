package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Logger writes leveled messages for command line tools.
// Info and warning messages need Verbose, and debug messages need Debug.
// Errors are always written.
type Logger struct {
	Verbose bool
	Debug   bool
	// Out defaults to os.Stderr.
	Out io.Writer
}

func (l Logger) writer() io.Writer {
	if l.Out == nil {
		return os.Stderr
	}
	return l.Out
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		_, _ = fmt.Fprintf(l.writer(), color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		_, _ = fmt.Fprintf(l.writer(), color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	if l.Verbose || l.Debug {
		_, _ = fmt.Fprintf(l.writer(), color.YellowString("[warn] ")+msg+"\n", args...)
	}
}

func (l Logger) Errorf(msg string, args ...any) {
	_, _ = fmt.Fprintf(l.writer(), color.RedString("[error] ")+msg+"\n", args...)
}
