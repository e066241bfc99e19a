package runlog

import (
	"fmt"
	"io"
)

// Logger mirrors run records to a log sink and a console writer. It is an
// explicit per-run object, never process-global, so concurrent runs in
// tests do not interfere. Lifecycle: Open, write records, Close.
// Not safe for concurrent use; a run writes from a single goroutine.
type Logger struct {
	sink    io.WriteCloser
	console io.Writer
	closed  bool
	sinkErr error
}

// Open returns a Logger writing to sink and console. Either may be nil,
// though a nil sink means the run is unrecorded; callers treat a failed
// sink open as fatal before reaching this point.
func Open(sink io.WriteCloser, console io.Writer) *Logger {
	return &Logger{sink: sink, console: console}
}

// Info writes an informational record.
func (l *Logger) Info(format string, args ...any) {
	l.write("INFO", format, args)
}

// Warn writes a warning record.
func (l *Logger) Warn(format string, args ...any) {
	l.write("WARNING", format, args)
}

// Error writes an error record.
func (l *Logger) Error(format string, args ...any) {
	l.write("ERROR", format, args)
}

// Err reports the first failure writing to the log sink. The batch runner
// treats a failed sink as fatal: a run that cannot be recorded must not
// keep fetching.
func (l *Logger) Err() error {
	return l.sinkErr
}

// Close closes the log sink. Safe to call more than once. Returns the
// first sink write failure if one occurred, otherwise the close error.
func (l *Logger) Close() error {
	if l.closed {
		return l.sinkErr
	}
	l.closed = true

	var closeErr error
	if l.sink != nil {
		closeErr = l.sink.Close()
	}
	if l.sinkErr != nil {
		return l.sinkErr
	}
	return closeErr
}

// write emits one "LEVEL: message" line to both destinations. Console
// write failures are ignored; sink failures are recorded once.
func (l *Logger) write(level, format string, args []any) {
	if l.closed {
		return
	}
	line := level + ": " + fmt.Sprintf(format, args...) + "\n"

	if l.sink != nil && l.sinkErr == nil {
		if _, err := io.WriteString(l.sink, line); err != nil {
			l.sinkErr = fmt.Errorf("write run log: %w", err)
		}
	}
	if l.console != nil {
		io.WriteString(l.console, line)
	}
}
