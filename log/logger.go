package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to the SetLevel function.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// The logger format
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// The internal leveled logger backend
var leveledBackend logging.LeveledBackend

// The logger interface
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Create a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// Override the backend output sink. The current verbosity level is retained.
func SetSink(sink io.Writer) {
	level := logging.NOTICE
	if leveledBackend != nil {
		level = leveledBackend.GetLevel("")
	}

	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(backendWithFormatter)
	leveledBackend.SetLevel(level, "")
	logging.SetBackend(leveledBackend)
}

// Backend level and name for each Level.
var levels = [...]struct {
	backend logging.Level
	name    string
}{
	Debug:   {logging.DEBUG, "debug"},
	Info:    {logging.INFO, "info"},
	Notice:  {logging.NOTICE, "notice"},
	Warning: {logging.WARNING, "warning"},
	Error:   {logging.ERROR, "error"},
}

func (l Level) String() string {
	if int(l) < len(levels) {
		return levels[l].name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// Set logger verbosity. Unknown levels are ignored.
func SetLevel(level Level) {
	if int(level) >= len(levels) {
		return
	}
	leveledBackend.SetLevel(levels[level].backend, "")
}

// Get the current logger verbosity.
func GetLevel() Level {
	current := leveledBackend.GetLevel("")
	for l, entry := range levels {
		if entry.backend == current {
			return Level(l)
		}
	}
	return Notice
}

// Map a level name to a Level. "warn" is accepted as an alias for "warning".
func ParseLevel(name string) (Level, error) {
	name = strings.ToLower(name)
	if name == "warn" {
		name = "warning"
	}
	for l, entry := range levels {
		if entry.name == name {
			return Level(l), nil
		}
	}
	return Notice, fmt.Errorf("log: unknown level %q", name)
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
