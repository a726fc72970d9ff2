// Package log provides leveled, named loggers for the command line tools.
// Library packages stay silent; only the CLI layer logs.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level selects logger verbosity.
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levelMap = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var format = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{module} %{level:.4s}%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// Logger is the subset of the backend logger the commands use.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})
	Info(v ...interface{})
	Infof(format string, v ...interface{})
	Notice(v ...interface{})
	Noticef(format string, v ...interface{})
	Warning(v ...interface{})
	Warningf(format string, v ...interface{})
	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects log output.
func SetSink(sink io.Writer) {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(sink, "", 0), format)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(logging.NOTICE, "")
	logging.SetBackend(backend)
}

// SetLevel sets the verbosity of all loggers.
func SetLevel(level Level) {
	if l, ok := levelMap[level]; ok {
		backend.SetLevel(l, "")
	}
}

func init() {
	SetSink(os.Stderr)
}
