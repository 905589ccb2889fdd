// Package timeutil pins the epoch-millisecond clock surface shared by the
// demo and doctor output.
package timeutil

import "time"

// Layout is the local-time display format.
const Layout = "2006-01-02 15:04:05"

// NowMillis returns the current wall-clock time in milliseconds since the
// Unix epoch.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// NowMicros returns the current wall-clock time in microseconds since the
// Unix epoch.
func NowMicros() int64 {
	return time.Now().UnixMicro()
}

// FormatMillis renders an epoch-millisecond timestamp as local time in
// the form "YYYY-MM-DD HH:MM:SS".
func FormatMillis(millis int64) string {
	return time.UnixMilli(millis).Local().Format(Layout)
}
