package log

import "errors"

var (
	// ErrInvalidArgument indicates an invalid argument was provided.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnknownLogLevel indicates an unrecognized log level string.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrUnknownColorMode indicates an unrecognized color mode string.
	ErrUnknownColorMode = errors.New("unknown color mode")
	// ErrInvalidConfig indicates a configuration file could not be read or
	// decoded.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrDefaultAlreadySet indicates the default logger was already
	// assigned, either explicitly or by a lazy fallback.
	ErrDefaultAlreadySet = errors.New("default logger already set")
)
