// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// LogFileName is created inside the config directory
const LogFileName = "payctl.log"

// Configure sets the level and JSON formatter and points output at
// <dir>/payctl.log. The returned closer releases the file. An empty dir
// leaves output on stderr.
func Configure(level string, dir string) (io.Closer, error) {
	level = strings.TrimSpace(level)
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(parsed)
	logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})

	if dir == "" {
		logrus.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	logrus.SetOutput(f)
	return f, nil
}

// NewModuleLogger returns a logger tagged with the module name
func NewModuleLogger(module string) logrus.FieldLogger {
	return logrus.WithField("module", module)
}
