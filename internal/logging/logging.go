// Package logging adapts logrus to the core.Logger interface used
// throughout the library.
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/liwenhao/simcheck/pkg/core"
)

// New builds a core.Logger backed by logrus, writing to out at the given
// level. Unknown level names fall back to info.
func New(level string, out io.Writer) core.Logger {
	base := logrus.New()
	base.SetOutput(out)
	base.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	base.SetLevel(lvl)

	return &logrusAdapter{entry: logrus.NewEntry(base)}
}

type logrusAdapter struct {
	entry *logrus.Entry
}

func (l *logrusAdapter) Debug(msg string, keyvals ...any) {
	l.entry.WithFields(fields(keyvals)).Debug(msg)
}

func (l *logrusAdapter) Info(msg string, keyvals ...any) {
	l.entry.WithFields(fields(keyvals)).Info(msg)
}

func (l *logrusAdapter) Warn(msg string, keyvals ...any) {
	l.entry.WithFields(fields(keyvals)).Warn(msg)
}

func (l *logrusAdapter) Error(msg string, keyvals ...any) {
	l.entry.WithFields(fields(keyvals)).Error(msg)
}

func (l *logrusAdapter) With(keyvals ...any) core.Logger {
	return &logrusAdapter{entry: l.entry.WithFields(fields(keyvals))}
}

// fields converts alternating key-value pairs to logrus fields. A trailing
// key without a value is dropped.
func fields(keyvals []any) logrus.Fields {
	f := make(logrus.Fields, len(keyvals)/2)
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}
		f[key] = keyvals[i+1]
	}
	return f
}
