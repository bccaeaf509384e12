package log

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Logger writes leveled lines of the form
//
//	[HH:MM:SS] [LEVEL] [id]: message
//
// to a console writer and, optionally, to a [SharedFile].
//
// A Logger is immutable after construction and safe for concurrent use,
// provided its console writer tolerates concurrent writes ([os.Stdout]
// does; a bare [bytes.Buffer] does not). File lines are serialized by the
// [SharedFile]. Emission never returns an error: console and file failures
// are dropped.
//
// A nil *Logger is a disabled logger: it emits nothing, and its accessors
// return zero values with a [Logger.Level] above [LevelFatal].
//
// Create instances with [New] or [NewDefault].
type Logger struct {
	console   io.Writer
	file      *SharedFile
	clock     Clock
	pub       *Publisher
	id        string
	level     Level
	writeFile bool
	color     bool
}

// Option configures a [Logger].
type Option func(*loggerOptions)

type loggerOptions struct {
	console io.Writer
	clock   Clock
	pub     *Publisher
	color   ColorMode
}

// WithConsole sets the console writer. The default is [os.Stdout].
// Each line is one Write call; w must be safe for concurrent use if the
// Logger is shared between goroutines.
func WithConsole(w io.Writer) Option {
	return func(o *loggerOptions) {
		if w != nil {
			o.console = w
		}
	}
}

// WithColor sets the console color mode. The default is [ColorAuto].
func WithColor(mode ColorMode) Option {
	return func(o *loggerOptions) {
		o.color = mode
	}
}

// WithClock sets the time source used for line timestamps.
func WithClock(c Clock) Option {
	return func(o *loggerOptions) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithPublisher mirrors every emitted line to p as an [Entry].
func WithPublisher(p *Publisher) Option {
	return func(o *loggerOptions) {
		o.pub = p
	}
}

// New creates a [Logger] named id that drops lines below level.
//
// When writeFile is true, every emitted line is also appended to file
// without color. A nil file with writeFile set is allowed; file output is
// then skipped silently.
func New(id string, level Level, writeFile bool, file *SharedFile, opts ...Option) *Logger {
	o := loggerOptions{
		console: os.Stdout,
		clock:   time.Now,
		color:   ColorAuto,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Logger{
		id:        id,
		level:     level,
		writeFile: writeFile,
		file:      file,
		console:   o.console,
		clock:     o.clock,
		pub:       o.pub,
		color:     o.color.Enabled(o.console),
	}
}

// NewDefault creates a console-only [Logger] at [LevelInfo].
func NewDefault(id string, opts ...Option) *Logger {
	return New(id, LevelInfo, false, nil, opts...)
}

// ID returns the component identifier.
func (l *Logger) ID() string {
	if l == nil {
		return ""
	}

	return l.id
}

// Level returns the minimum level the logger emits.
func (l *Logger) Level() Level {
	if l == nil {
		return levelOff
	}

	return l.level
}

// WritesFile reports whether file output is enabled and a file is present.
func (l *Logger) WritesFile() bool {
	return l != nil && l.writeFile && l.file != nil
}

// Enabled reports whether a line at level would be emitted.
func (l *Logger) Enabled(level Level) bool {
	return l != nil && level >= l.level
}

// String renders the logger's identity for debugging.
func (l *Logger) String() string {
	if l == nil {
		return "Logger(nil)"
	}

	return fmt.Sprintf("Logger{id: %q, level: %s}", l.id, l.level)
}

// Format builds the plain line for a message. It is the single formatting
// function behind both sinks.
func Format(timestamp string, level Level, id, msg string) string {
	return "[" + timestamp + "] [" + level.Label() + "] [" + id + "]: " + msg
}

// Log emits msg at level.
func (l *Logger) Log(level Level, msg string) {
	if !l.Enabled(level) {
		return
	}

	l.emit(level, msg)
}

func (l *Logger) emit(level Level, msg string) {
	ts := Timestamp(l.clock())
	line := Format(ts, level, l.id, msg)

	out := line
	if l.color {
		out = decorate(line, level)
	}

	//nolint:errcheck // Console failures must not reach the caller.
	io.WriteString(l.console, out+"\n")

	if l.writeFile {
		//nolint:errcheck // File failures must not reach the caller.
		l.file.WriteLine(line)
	}

	if l.pub != nil {
		l.pub.Publish(Entry{Time: ts, Level: level, ID: l.id, Message: msg})
	}
}

// Trace logs step-by-step detail.
func (l *Logger) Trace(msg string) { l.Log(LevelTrace, msg) }

// Debug logs diagnostic detail.
func (l *Logger) Debug(msg string) { l.Log(LevelDebug, msg) }

// Info logs a standard operational message.
func (l *Logger) Info(msg string) { l.Log(LevelInfo, msg) }

// Warn logs something unexpected that is not an error.
func (l *Logger) Warn(msg string) { l.Log(LevelWarn, msg) }

// Error logs a failure.
func (l *Logger) Error(msg string) { l.Log(LevelError, msg) }

// Fatal logs a failure the caller intends to stop on. It does not exit.
func (l *Logger) Fatal(msg string) { l.Log(LevelFatal, msg) }
