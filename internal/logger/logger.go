// Package logger owns the process-wide log destination: a rotating file
// under the data directory, mirrored to stderr when debugging. The
// package-level helpers are safe to call before Init, so early startup
// paths never have to care whether logging is wired yet.
package logger

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/bodhi-os/bodhi/internal/constants"
)

var global *log.Logger

// Config selects verbosity and where the log file lives.
type Config struct {
	Debug   bool
	DataDir string
}

// Init builds the global logger. The log file rotates at 10 MB, keeping
// three compressed backups for four weeks.
func Init(cfg Config) error {
	logDir := filepath.Join(cfg.DataDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	var out io.Writer = &lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.AppName+".log"),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	opts := log.Options{
		ReportTimestamp: true,
		Level:           log.InfoLevel,
		Prefix:          constants.AppName,
	}
	if cfg.Debug {
		out = io.MultiWriter(os.Stderr, out)
		opts.Level = log.DebugLevel
		opts.ReportCaller = true
	}

	global = log.NewWithOptions(out, opts)
	return nil
}

func Debug(msg string, keyvals ...interface{}) {
	if global != nil {
		global.Debug(msg, keyvals...)
	}
}

func Info(msg string, keyvals ...interface{}) {
	if global != nil {
		global.Info(msg, keyvals...)
	}
}

func Warn(msg string, keyvals ...interface{}) {
	if global != nil {
		global.Warn(msg, keyvals...)
	}
}

func Error(msg string, keyvals ...interface{}) {
	if global != nil {
		global.Error(msg, keyvals...)
	}
}

// Fatal logs and exits; it still exits when called before Init.
func Fatal(msg string, keyvals ...interface{}) {
	if global != nil {
		global.Fatal(msg, keyvals...)
	}
	os.Exit(1)
}
