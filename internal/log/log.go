package log

import (
	"io"
	"log"
	"strings"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// LevelFromString parses a level name case-insensitively. Unknown names map
// to INFO so a typo in the config file never floods the console.
func LevelFromString(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "INFO":
		return LevelInfo
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	case "NONE", "OFF":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Logger is a small leveled wrapper around the standard logger. Child loggers
// created with With share the parent's output and level.
type Logger struct {
	logger *log.Logger
	level  *Level
	tag    string
}

func New(out io.Writer, level Level) *Logger {
	lv := level
	return &Logger{
		logger: log.New(out, "", 0), // No prefix, handled by format string
		level:  &lv,
	}
}

// With returns a logger that prefixes each line with "[tag] ".
func (l *Logger) With(tag string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{logger: l.logger, level: l.level, tag: "[" + tag + "] "}
}

func (l *Logger) logf(lv Level, format string, v ...interface{}) {
	if l == nil || *l.level > lv {
		return
	}
	l.logger.Printf(lv.String()+": "+l.tag+format, v...)
}

func (l *Logger) Debugf(format string, v ...interface{}) { l.logf(LevelDebug, format, v...) }

func (l *Logger) Infof(format string, v ...interface{}) { l.logf(LevelInfo, format, v...) }

func (l *Logger) Warnf(format string, v ...interface{}) { l.logf(LevelWarn, format, v...) }

func (l *Logger) Errorf(format string, v ...interface{}) { l.logf(LevelError, format, v...) }

func (l *Logger) SetLevel(level Level) {
	if l == nil {
		return
	}
	*l.level = level
}

func (l *Logger) Level() Level {
	if l == nil {
		return LevelNone
	}
	return *l.level
}
