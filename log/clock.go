package log

import "time"

// TimeLayout is the layout of the timestamp at the start of every line.
const TimeLayout = "15:04:05"

// Clock returns the current time. Loggers use [time.Now] unless configured
// otherwise with [WithClock].
type Clock func() time.Time

// Timestamp formats t as HH:MM:SS in t's location.
func Timestamp(t time.Time) string {
	return t.Format(TimeLayout)
}
