package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// SharedFile is a writable handle that many [Logger] values may append to
// concurrently. Each [SharedFile.WriteLine] call holds the lock for a single
// write, so lines from different goroutines never interleave.
//
// SharedFile does not own the underlying writer: opening, rotating and
// closing it remain the caller's job.
type SharedFile struct {
	w  io.Writer
	mu sync.Mutex
}

// NewSharedFile wraps w. It returns nil when w is nil, which a [Logger]
// treats as "no file".
func NewSharedFile(w io.Writer) *SharedFile {
	if w == nil {
		return nil
	}

	return &SharedFile{w: w}
}

// WriteLine appends line and a trailing newline in one write.
// Calling WriteLine on a nil *SharedFile does nothing.
func (f *SharedFile) WriteLine(line string) error {
	if f == nil {
		return nil
	}

	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')

	f.mu.Lock()
	defer f.mu.Unlock()

	_, err := f.w.Write(buf)
	if err != nil {
		return fmt.Errorf("append log line: %w", err)
	}

	return nil
}

// OpenFile opens path for appending, creating it when missing.
func OpenFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644) //nolint:gosec // Log path comes from configuration.
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return f, nil
}
