// Package logger is a small leveled logger in the style sibench uses
// throughout its dispatcher and worker code: a package-level level variable
// set once at startup, and a handful of Printf-style helpers gated on it.
package logger

import "fmt"

// LogLevel controls which of the Errorf/Warnf/Infof/Debugf/Tracef calls
// actually produce output.
type LogLevel int

const (
	Error LogLevel = iota
	Warn
	Info
	Debug
	Trace
)

var level LogLevel = Info

// SetLevel changes the global log level. Not safe to call concurrently with
// the other functions in this package; callers set it once during startup.
func SetLevel(l LogLevel) {
	level = l
}

func IsError() bool {
	return true
}

func IsWarn() bool {
	return level >= Warn
}

func IsInfo() bool {
	return level >= Info
}

func IsDebug() bool {
	return level >= Debug
}

func IsTrace() bool {
	return level >= Trace
}

func Errorf(format string, args ...interface{}) {
	if IsError() {
		fmt.Printf("ERROR: "+format, args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if IsWarn() {
		fmt.Printf("Warning: "+format, args...)
	}
}

func Infof(format string, args ...interface{}) {
	if IsInfo() {
		fmt.Printf(format, args...)
	}
}

func Debugf(format string, args ...interface{}) {
	if IsDebug() {
		fmt.Printf(format, args...)
	}
}

func Tracef(format string, args ...interface{}) {
	if IsTrace() {
		fmt.Printf(format, args...)
	}
}
