// Package stringtest provides helpers for building and splitting expected
// multi-line log output in tests.
package stringtest

import "strings"

// JoinLF joins lines with LF line endings. Pass a trailing "" to end the
// result with a newline, as every emitted log line is.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"[12:34:56] [INFO ] [Mod]: one",
//		"[12:34:56] [WARN ] [Mod]: two",
//		"",
//	) // -> "...one\n...two\n"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}

// SplitLF splits newline-terminated output into lines. The empty element
// after a final newline is dropped, and so are CR characters before LF.
//
// Example:
//
//	stringtest.SplitLF("a\nb\n") // -> []string{"a", "b"}
func SplitLF(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}
