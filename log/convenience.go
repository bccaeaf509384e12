package log

import "fmt"

// Logf formats and emits a line at level. Arguments are only interpolated
// when level passes the logger's threshold.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if !l.Enabled(level) {
		return
	}

	l.emit(level, fmt.Sprintf(format, args...))
}

// Tracef formats and logs at [LevelTrace].
func (l *Logger) Tracef(format string, args ...any) { l.Logf(LevelTrace, format, args...) }

// Debugf formats and logs at [LevelDebug].
func (l *Logger) Debugf(format string, args ...any) { l.Logf(LevelDebug, format, args...) }

// Infof formats and logs at [LevelInfo].
func (l *Logger) Infof(format string, args ...any) { l.Logf(LevelInfo, format, args...) }

// Warnf formats and logs at [LevelWarn].
func (l *Logger) Warnf(format string, args ...any) { l.Logf(LevelWarn, format, args...) }

// Errorf formats and logs at [LevelError].
func (l *Logger) Errorf(format string, args ...any) { l.Logf(LevelError, format, args...) }

// Fatalf formats and logs at [LevelFatal]. It does not exit.
func (l *Logger) Fatalf(format string, args ...any) { l.Logf(LevelFatal, format, args...) }

// The functions below forward to [Default].

// Trace logs msg at [LevelTrace] on the default logger.
func Trace(msg string) { Default().Trace(msg) }

// Debug logs msg at [LevelDebug] on the default logger.
func Debug(msg string) { Default().Debug(msg) }

// Info logs msg at [LevelInfo] on the default logger.
func Info(msg string) { Default().Info(msg) }

// Warn logs msg at [LevelWarn] on the default logger.
func Warn(msg string) { Default().Warn(msg) }

// Error logs msg at [LevelError] on the default logger.
func Error(msg string) { Default().Error(msg) }

// Fatal logs msg at [LevelFatal] on the default logger. It does not exit.
func Fatal(msg string) { Default().Fatal(msg) }

// Tracef formats and logs at [LevelTrace] on the default logger.
func Tracef(format string, args ...any) { Default().Tracef(format, args...) }

// Debugf formats and logs at [LevelDebug] on the default logger.
func Debugf(format string, args ...any) { Default().Debugf(format, args...) }

// Infof formats and logs at [LevelInfo] on the default logger.
func Infof(format string, args ...any) { Default().Infof(format, args...) }

// Warnf formats and logs at [LevelWarn] on the default logger.
func Warnf(format string, args ...any) { Default().Warnf(format, args...) }

// Errorf formats and logs at [LevelError] on the default logger.
func Errorf(format string, args ...any) { Default().Errorf(format, args...) }

// Fatalf formats and logs at [LevelFatal] on the default logger. It does not
// exit.
func Fatalf(format string, args ...any) { Default().Fatalf(format, args...) }
