package neatcore

import (
	"log"
	"os"

	"github.com/pkg/errors"
)

// LoggerLevel specifies the logger's output threshold.
type LoggerLevel string

const (
	// LogLevelDebug is the Debug log level.
	LogLevelDebug LoggerLevel = "debug"
	// LogLevelInfo is the Info log level.
	LogLevelInfo LoggerLevel = "info"
	// LogLevelWarn is the Warn log level.
	LogLevelWarn LoggerLevel = "warn"
	// LogLevelError is the Error log level.
	LogLevelError LoggerLevel = "error"
)

var (
	// LogLevel is the current log level of the process.
	LogLevel = LogLevelInfo

	loggerDebug = log.New(os.Stdout, "DEBUG: ", log.Ltime|log.Lshortfile)
	loggerInfo  = log.New(os.Stdout, "INFO: ", log.Ltime|log.Lshortfile)
	loggerWarn  = log.New(os.Stdout, "WARN: ", log.Ltime|log.Lshortfile)
	loggerError = log.New(os.Stderr, "ERROR: ", log.Ltime|log.Lshortfile)
)

// DebugLog writes message if the current level is debug.
func DebugLog(message string) {
	if acceptLevel(LogLevel, LogLevelDebug) {
		_ = loggerDebug.Output(2, message)
	}
}

// InfoLog writes message if the current level is info or lower.
func InfoLog(message string) {
	if acceptLevel(LogLevel, LogLevelInfo) {
		_ = loggerInfo.Output(2, message)
	}
}

// WarnLog writes message if the current level is warn or lower.
func WarnLog(message string) {
	if acceptLevel(LogLevel, LogLevelWarn) {
		_ = loggerWarn.Output(2, message)
	}
}

// ErrorLog always writes message.
func ErrorLog(message string) {
	if acceptLevel(LogLevel, LogLevelError) {
		_ = loggerError.Output(2, message)
	}
}

// InitLogger sets the process-wide log level from its string name.
func InitLogger(level string) error {
	switch LoggerLevel(level) {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		LogLevel = LoggerLevel(level)
		return nil
	default:
		return errors.Errorf("unsupported log level: %q", level)
	}
}

func acceptLevel(current, target LoggerLevel) bool {
	rank := map[LoggerLevel]int{
		LogLevelDebug: 0,
		LogLevelInfo:  1,
		LogLevelWarn:  2,
		LogLevelError: 3,
	}
	cr, ok := rank[current]
	if !ok {
		return false
	}
	tr, ok := rank[target]
	if !ok {
		return false
	}
	return tr >= cr
}
