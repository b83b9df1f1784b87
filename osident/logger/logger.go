/*
Package logger defines the logging interface the osident library writes to. Callers inject an implementation with
osident.SetLogger; nothing is logged until they do.
*/
package logger

// Logger represents the behavior for logging within the osident library.
type Logger interface {
	Errorf(format string, args ...interface{})
	Error(args ...interface{})
	Warnf(format string, args ...interface{})
	Warn(args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
}
