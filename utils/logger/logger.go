// Package logger wraps logrus with the fixed |object|message| layout shared
// by all avcore packages.
package logger

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

type stringer interface {
	String() string
}

const objWidth = 20

func objToString(obj any) (objStr string) {
	if obj == nil {
		objStr = "NIL"
	} else if stringerObj, ok := obj.(stringer); ok {
		objStr = stringerObj.String()
	} else if objStr, ok = obj.(string); ok {
	} else {
		objStr = reflect.TypeOf(obj).Name()
	}
	if len(objStr) > objWidth {
		objStr = objStr[:objWidth]
	}
	return
}

// Init sets the global log level and formatter.
func Init(lvl logrus.Level) {
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		PadLevelText:    true,
		TimestampFormat: "2006/02/01 15:04:05",
	})
}

func write(logFn func(...any), object any, message string) {
	logFn(fmt.Sprintf("|%20s|%-100s", objToString(object), message))
}

func Trace(object any, message string) {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		write(logrus.Trace, object, message)
	}
}

func Tracef(object any, message string, args ...any) {
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		write(logrus.Trace, object, fmt.Sprintf(message, args...))
	}
}

func Debug(object any, message string) {
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		write(logrus.Debug, object, message)
	}
}

func Debugf(object any, message string, args ...any) {
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		write(logrus.Debug, object, fmt.Sprintf(message, args...))
	}
}

func Info(object any, message string) {
	if logrus.IsLevelEnabled(logrus.InfoLevel) {
		write(logrus.Info, object, message)
	}
}

func Infof(object any, message string, args ...any) {
	if logrus.IsLevelEnabled(logrus.InfoLevel) {
		write(logrus.Info, object, fmt.Sprintf(message, args...))
	}
}

func Warning(object any, message string) {
	if logrus.IsLevelEnabled(logrus.WarnLevel) {
		write(logrus.Warning, object, message)
	}
}

func Warningf(object any, message string, args ...any) {
	if logrus.IsLevelEnabled(logrus.WarnLevel) {
		write(logrus.Warning, object, fmt.Sprintf(message, args...))
	}
}

func Error(object any, message string) {
	if logrus.IsLevelEnabled(logrus.ErrorLevel) {
		write(logrus.Error, object, message)
	}
}

func Errorf(object any, message string, args ...any) {
	if logrus.IsLevelEnabled(logrus.ErrorLevel) {
		write(logrus.Error, object, fmt.Sprintf(message, args...))
	}
}

func Fatal(object any, message string) {
	logrus.Fatalf("|%20s|%-100s", objToString(object), message)
}

func Fatalf(object any, message string, args ...any) {
	logrus.Fatalf("|%20s|%-100s", objToString(object), fmt.Sprintf(message, args...))
}
