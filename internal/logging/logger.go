// Package logging configures the standard logrus logger for the CLI.
// Command output goes to stdout; logs go to stderr, a rotated file, or both.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/multierr"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Params struct {
	Level      string
	FileName   string
	ToStderr   bool // Also write to stderr when FileName is set.
	FormatJSON bool
}

func Setup(params Params) {
	if params.FormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: params.FileName == ""})
	}
	logrus.SetLevel(GetLevel(params.Level))

	if params.FileName == "" {
		logrus.SetOutput(os.Stderr)
		return
	}

	if !strings.HasSuffix(params.FileName, ".log") {
		params.FileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.FileName,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		Compress:   true,
	}

	if params.ToStderr {
		logrus.SetOutput(NewCombinedWriter(os.Stderr, lumberJackLogger))
	} else {
		logrus.SetOutput(lumberJackLogger)
	}
}

// GetLevel parses a level name. Unknown names fall back to warn so that the
// CLI stays quiet.
func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.WarnLevel
	}
}

// CombinedWriter writes to every writer, continuing past failures.
type CombinedWriter struct {
	Writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{Writers: writers}
}

func (cw CombinedWriter) Write(p []byte) (n int, err error) {
	for _, w := range cw.Writers {
		written, werr := w.Write(p)
		if werr != nil {
			err = multierr.Append(err, werr)
			continue
		}
		n += written
	}
	return n, err
}
