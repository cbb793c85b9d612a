// Package logging writes the optional debug log and conversion report.
package logging

import (
	"fmt"
	"io"
	"os"
)

// DebugLogName is the file the debug log is written to when enabled.
const DebugLogName = "ee2pw-debug.log"

// DebugLog is a printf-style log that only writes when it has a sink.
// A nil *DebugLog is valid and discards everything.
type DebugLog struct {
	w io.WriteCloser
}

// OpenDebugLog creates the debug log at path. When the file cannot be
// created the log silently discards, as debug output is never essential.
func OpenDebugLog(path string) *DebugLog {
	f, err := os.Create(path)
	if err != nil {
		return nil
	}
	return &DebugLog{w: f}
}

// NewDebugLog wraps an existing writer.
func NewDebugLog(w io.WriteCloser) *DebugLog {
	return &DebugLog{w: w}
}

// Printf writes one line to the log.
func (l *DebugLog) Printf(format string, args ...any) {
	if l == nil || l.w == nil {
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Close closes the underlying file.
func (l *DebugLog) Close() error {
	if l == nil || l.w == nil {
		return nil
	}
	return l.w.Close()
}
