package log

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"golang.org/x/term"
)

// ColorMode selects when console lines are decorated with ANSI colors.
type ColorMode string

const (
	// ColorAuto decorates only when the console is a terminal and the
	// environment does not opt out (NO_COLOR, TERM=dumb).
	ColorAuto ColorMode = "auto"
	// ColorAlways always decorates console lines.
	ColorAlways ColorMode = "always"
	// ColorNever never decorates console lines.
	ColorNever ColorMode = "never"
)

// GetAllColorModeStrings returns the names accepted by [ParseColorMode].
func GetAllColorModeStrings() []string {
	return []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}
}

// ParseColorMode parses a color mode name, case-insensitively. An empty
// string selects [ColorAuto].
func ParseColorMode(mode string) (ColorMode, error) {
	m := strings.ToLower(strings.TrimSpace(mode))
	if m == "" {
		return ColorAuto, nil
	}

	if slices.Contains(GetAllColorModeStrings(), m) {
		return ColorMode(m), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownColorMode, mode)
}

// Enabled reports whether lines written to w should be decorated.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in int.
}

// SGR sequences used by the console sink.
const (
	sgrReset       = "\033[0m"
	sgrBrightBlack = "\033[90m"
	sgrBlue        = "\033[34m"
	sgrWhite       = "\033[37m"
	sgrYellow      = "\033[33m"
	sgrBrightRed   = "\033[91m"
	sgrRedUnder    = "\033[31;4m"
)

// style is the console decoration for one level.
type style string

func styleFor(l Level) style {
	switch l {
	case LevelTrace:
		return sgrBrightBlack
	case LevelDebug:
		return sgrBlue
	case LevelInfo:
		return sgrWhite
	case LevelWarn:
		return sgrYellow
	case LevelError:
		return sgrBrightRed
	case LevelFatal:
		return sgrRedUnder
	}

	return ""
}

// decorate wraps a plain line in the style for l. The text between the
// escape sequences is the plain line unchanged.
func decorate(line string, l Level) string {
	s := styleFor(l)
	if s == "" {
		return line
	}

	return string(s) + line + sgrReset
}
