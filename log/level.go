package log

import (
	"fmt"
	"strings"
)

// Level is the severity of a log line. Levels are totally ordered from
// [LevelTrace] (lowest) to [LevelFatal] (highest); a [Logger] emits a line
// only when its level is at or above the logger's threshold.
type Level int8

const (
	// LevelTrace is for step-by-step detail below debug.
	LevelTrace Level = iota
	// LevelDebug is for diagnostic detail.
	LevelDebug
	// LevelInfo is for standard operational messages.
	LevelInfo
	// LevelWarn is for unexpected conditions that are not errors.
	LevelWarn
	// LevelError is for failures.
	LevelError
	// LevelFatal is for failures after which the caller intends to stop.
	// Logging at this level does not exit the process.
	LevelFatal
)

// labelWidth is the width every label is padded to in a formatted line.
// levelOff is above every valid level, so nothing is enabled at it.
const levelOff = LevelFatal + 1

const labelWidth = 5

var levelNames = [...]string{
	LevelTrace: "TRACE",
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
	LevelFatal: "FATAL",
}

// AllLevels returns every level in ascending order.
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// GetAllLevelStrings returns the lower-case names accepted by [ParseLevel],
// in ascending order.
func GetAllLevelStrings() []string {
	levels := AllLevels()

	out := make([]string, 0, len(levels))
	for _, l := range levels {
		out = append(out, strings.ToLower(l.String()))
	}

	return out
}

// Valid reports whether l is one of the six defined levels.
func (l Level) Valid() bool {
	return l >= LevelTrace && l <= LevelFatal
}

// String returns the upper-case name of l, e.g. "INFO".
func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}

	return levelNames[l]
}

// Label returns the name of l left-justified to five characters, as it
// appears inside the brackets of a formatted line ("INFO ", "ERROR").
func (l Level) Label() string {
	s := l.String()
	if len(s) >= labelWidth {
		return s
	}

	return s + strings.Repeat(" ", labelWidth-len(s))
}

// MarshalText implements [encoding.TextMarshaler].
func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLogLevel, int(l))
	}

	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}

	*l = parsed

	return nil
}

// ParseLevel parses a level name. Matching is case-insensitive and
// "warning" is accepted as an alias of "warn".
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownLogLevel, level)
}
