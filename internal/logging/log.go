// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Console selects stderr output.
const Console = "console"

// Init parses logLevel and routes output to logPath, or to stderr when
// logPath is empty or "console".
func Init(logLevel, logPath string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("parsing log level %q: %w", logLevel, err)
	}

	var out io.Writer = os.Stderr
	if logPath != "" && logPath != Console {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return fmt.Errorf("creating log dir: %w", err)
		}
		out = &lumberjack.Logger{
			// Log file absolute path, os agnostic
			Filename:   filepath.ToSlash(logPath),
			MaxSize:    5, // MB
			MaxBackups: 10,
			MaxAge:     30, // days
			Compress:   true,
		}
	}

	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		DisableColors:   out != os.Stderr,
	})
	log.SetLevel(level)
	return nil
}
