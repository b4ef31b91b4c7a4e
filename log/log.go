package log

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

var level = atomic.NewInt32(int32(INFO))

func init() {
	log.SetOutput(os.Stdout)
	log.SetLevel(log.DebugLevel)
}

type Event struct {
	LogLevel LogLevel
	Payload  string
}

func (e *Event) Type() string {
	return e.LogLevel.String()
}

func Infoln(format string, v ...interface{}) {
	print(newLog(INFO, format, v...))
}

func Warnln(format string, v ...interface{}) {
	print(newLog(WARNING, format, v...))
}

func Errorln(format string, v ...interface{}) {
	print(newLog(ERROR, format, v...))
}

func Debugln(format string, v ...interface{}) {
	print(newLog(DEBUG, format, v...))
}

func Fatalln(format string, v ...interface{}) {
	log.Fatalf(format, v...)
}

func Level() LogLevel {
	return LogLevel(level.Load())
}

func SetLevel(newLevel LogLevel) {
	level.Store(int32(newLevel))
}

func print(data Event) {
	if data.LogLevel < Level() {
		return
	}

	switch data.LogLevel {
	case INFO:
		log.Infoln(data.Payload)
	case WARNING:
		log.Warnln(data.Payload)
	case ERROR:
		log.Errorln(data.Payload)
	case DEBUG:
		log.Debugln(data.Payload)
	}
}

func newLog(logLevel LogLevel, format string, v ...interface{}) Event {
	return Event{
		LogLevel: logLevel,
		Payload:  fmt.Sprintf(format, v...),
	}
}
