package log

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// DefaultID is the identifier of the fallback default logger.
const DefaultID = "default"

// DefaultSetError is returned by [Registry.Set] when the registry already
// holds a logger. Rejected is the logger that was not stored.
type DefaultSetError struct {
	Rejected *Logger
}

func (e *DefaultSetError) Error() string {
	return fmt.Sprintf("%v: rejected %v", ErrDefaultAlreadySet, e.Rejected)
}

// Unwrap returns [ErrDefaultAlreadySet].
func (e *DefaultSetError) Unwrap() error { return ErrDefaultAlreadySet }

// Registry is a single-assignment slot for a default [Logger].
//
// It starts empty. [Registry.Set] fills it at most once; [Registry.Get] on
// an empty registry fills it with a fallback logger (id "default",
// [LevelInfo], console only). Once filled, the stored logger never
// changes. The zero value is ready to use and safe for concurrent use.
type Registry struct {
	logger atomic.Pointer[Logger]
	mu     sync.Mutex

	// fallback builds the lazy default; nil means [NewDefault] with
	// [DefaultID].
	fallback func() *Logger
}

// NewRegistry returns an empty [Registry] whose lazy default is built by
// fallback. A nil fallback behaves like the zero Registry.
func NewRegistry(fallback func() *Logger) *Registry {
	return &Registry{fallback: fallback}
}

// Set stores l if the registry is empty. Otherwise it returns a
// [*DefaultSetError] carrying l and leaves the stored logger untouched.
func (r *Registry) Set(l *Logger) error {
	if l == nil {
		return fmt.Errorf("%w: nil logger", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.logger.Load() != nil {
		return &DefaultSetError{Rejected: l}
	}

	r.logger.Store(l)

	return nil
}

// Get returns the stored logger, creating the fallback on first use.
// Concurrent first calls observe the same fallback instance.
func (r *Registry) Get() *Logger {
	if l := r.logger.Load(); l != nil {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if l := r.logger.Load(); l != nil {
		return l
	}

	var l *Logger
	if r.fallback != nil {
		l = r.fallback()
	} else {
		l = NewDefault(DefaultID)
	}

	r.logger.Store(l)

	return l
}

var std Registry

// SetDefault installs l as the process-wide default logger. It fails with
// a [*DefaultSetError] when a default was already installed or lazily
// created by [Default].
func SetDefault(l *Logger) error {
	return std.Set(l)
}

// Default returns the process-wide default logger, creating the fallback
// on first use.
func Default() *Logger {
	return std.Get()
}
