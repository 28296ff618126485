package logging

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// New builds the process logger. Output goes to stderr unless file is set;
// the terminal UI passes discard=true so log lines never tear the screen.
func New(level, file string, discard bool) (*log.Logger, io.Closer, error) {
	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: file != ""})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "log level %q", level)
	}
	logger.SetLevel(lvl)

	var closer io.Closer = nopCloser{}
	switch {
	case file != "":
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, errors.Wrap(err, "open log file")
		}
		logger.SetOutput(f)
		closer = f
	case discard:
		logger.SetOutput(io.Discard)
	default:
		logger.SetOutput(os.Stderr)
	}
	return logger, closer, nil
}

// Scoped tags every entry with a scope, e.g. "estimate" or "client".
func Scoped(logger log.FieldLogger, scope string) log.FieldLogger {
	if logger == nil {
		logger = Discard()
	}
	return logger.WithField("scope", scope)
}

// Discard returns a logger that drops everything. Used as the default in
// constructors and tests.
func Discard() *log.Logger {
	l := log.New()
	l.SetOutput(io.Discard)
	return l
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
