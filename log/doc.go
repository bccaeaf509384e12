// Package log provides a small leveled logger that writes fixed-layout lines
// to the console and, optionally, to a shared file.
//
// Every line has the form
//
//	[15:04:05] [INFO ] [component]: message
//
// The level label is padded to five characters. Lines below a logger's
// threshold are dropped before the clock is read or anything is formatted.
// Console lines may be colored per level ([ColorMode]); file lines are
// always plain, so both sinks carry the same text.
//
// Build a [Logger] directly:
//
//	shared := log.NewSharedFile(f)
//	logger := log.New("Module", log.LevelDebug, true, shared)
//	logger.Infof("listening on %s", addr)
//
// Or from CLI flags and an optional YAML file via [Config]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	logger, closer, err := cfg.NewLogger()
//	defer closer.Close()
//
// Package-level functions such as [Infof] forward to a process-wide default
// logger. Install one once with [SetDefault]; if none is installed, [Default]
// lazily creates a console logger named "default" at [LevelInfo]. Prefer
// passing a *Logger explicitly and keep the default for integration
// boundaries.
//
// Logging never fails the caller: console and file write errors are
// dropped, and [LevelFatal] logs without exiting. One exception is outside
// this package's control: when the console is [os.Stdout] and stdout is a
// closed pipe, the Go runtime terminates the process with SIGPIPE on write.
// Programs that must survive that should call signal.Ignore(syscall.SIGPIPE)
// or log to a different console writer; this package installs no signal
// handlers.
//
// A [Logger] may be shared between goroutines as long as its console writer
// accepts concurrent writes. [Publisher] taps emitted entries for in-process
// consumers without ever blocking the logging goroutine.
package log
