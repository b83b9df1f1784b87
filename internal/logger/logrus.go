/*
Package logger adapts logrus to the osident logging interface.
*/
package logger

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/anchore/osident/osident/logger"
)

const (
	defaultLogFilePermissions fs.FileMode = 0644
	timestampFormat                       = "2006-01-02 15:04:05"
)

var _ logger.Logger = (*LogrusLogger)(nil)
var _ logger.Logger = (*LogrusNestedLogger)(nil)

type LogrusConfig struct {
	EnableConsole bool
	EnableFile    bool
	Structured    bool
	Level         logrus.Level
	FileLocation  string
	// Console is where console entries go, stderr when unset.
	Console io.Writer
}

// LogrusLogger writes application logs through a single logrus instance.
type LogrusLogger struct {
	Config LogrusConfig
	Logger *logrus.Logger
}

// LogrusNestedLogger carries a fixed set of fields on every entry.
type LogrusNestedLogger struct {
	Logger *logrus.Entry
}

func NewLogrusLogger(cfg LogrusConfig) (*LogrusLogger, error) {
	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	var writers []io.Writer
	if cfg.EnableConsole {
		writers = append(writers, console)
	}
	if cfg.EnableFile {
		logFile, err := os.OpenFile(cfg.FileLocation, os.O_WRONLY|os.O_CREATE|os.O_APPEND, defaultLogFilePermissions)
		if err != nil {
			return nil, fmt.Errorf("unable to setup log file: %w", err)
		}
		writers = append(writers, logFile)
	}

	var output io.Writer
	switch len(writers) {
	case 0:
		output = io.Discard
	case 1:
		output = writers[0]
	default:
		output = io.MultiWriter(writers...)
	}

	appLogger := logrus.New()
	appLogger.SetOutput(output)
	appLogger.SetLevel(cfg.Level)

	if cfg.Structured {
		appLogger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: timestampFormat,
		})
	} else {
		appLogger.SetFormatter(&prefixed.TextFormatter{
			TimestampFormat: timestampFormat,
			ForceColors:     cfg.EnableConsole && !cfg.EnableFile,
			ForceFormatting: true,
		})
	}

	return &LogrusLogger{
		Config: cfg,
		Logger: appLogger,
	}, nil
}

// Run returns a logger that tags every entry with a fresh run identifier, so the entries of a single invocation can be
// told apart in a shared log file.
func (l *LogrusLogger) Run() *LogrusNestedLogger {
	return l.Nested("run", uuid.New().String())
}

// Nested returns a logger that adds the given key/value pairs to every entry. A trailing key without a value is dropped.
func (l *LogrusLogger) Nested(fields ...interface{}) *LogrusNestedLogger {
	f := make(logrus.Fields)
	for i := 0; i+1 < len(fields); i += 2 {
		f[fmt.Sprintf("%v", fields[i])] = fields[i+1]
	}
	return &LogrusNestedLogger{Logger: l.Logger.WithFields(f)}
}

// Out is where entries are currently written.
func (l *LogrusLogger) Out() io.Writer {
	return l.Logger.Out
}

func (l *LogrusLogger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

func (l *LogrusLogger) Debugf(format string, args ...interface{}) {
	l.Logger.Debugf(format, args...)
}

func (l *LogrusLogger) Infof(format string, args ...interface{}) {
	l.Logger.Infof(format, args...)
}

func (l *LogrusLogger) Warnf(format string, args ...interface{}) {
	l.Logger.Warnf(format, args...)
}

func (l *LogrusLogger) Errorf(format string, args ...interface{}) {
	l.Logger.Errorf(format, args...)
}

func (l *LogrusLogger) Debug(args ...interface{}) {
	l.Logger.Debug(args...)
}

func (l *LogrusLogger) Info(args ...interface{}) {
	l.Logger.Info(args...)
}

func (l *LogrusLogger) Warn(args ...interface{}) {
	l.Logger.Warn(args...)
}

func (l *LogrusLogger) Error(args ...interface{}) {
	l.Logger.Error(args...)
}

// Out is where entries are currently written.
func (l *LogrusNestedLogger) Out() io.Writer {
	return l.Logger.Logger.Out
}

// SetOutput redirects the underlying logger, which is shared with the parent.
func (l *LogrusNestedLogger) SetOutput(w io.Writer) {
	l.Logger.Logger.SetOutput(w)
}

func (l *LogrusNestedLogger) Debugf(format string, args ...interface{}) {
	l.Logger.Debugf(format, args...)
}

func (l *LogrusNestedLogger) Infof(format string, args ...interface{}) {
	l.Logger.Infof(format, args...)
}

func (l *LogrusNestedLogger) Warnf(format string, args ...interface{}) {
	l.Logger.Warnf(format, args...)
}

func (l *LogrusNestedLogger) Errorf(format string, args ...interface{}) {
	l.Logger.Errorf(format, args...)
}

func (l *LogrusNestedLogger) Debug(args ...interface{}) {
	l.Logger.Debug(args...)
}

func (l *LogrusNestedLogger) Info(args ...interface{}) {
	l.Logger.Info(args...)
}

func (l *LogrusNestedLogger) Warn(args ...interface{}) {
	l.Logger.Warn(args...)
}

func (l *LogrusNestedLogger) Error(args ...interface{}) {
	l.Logger.Error(args...)
}
