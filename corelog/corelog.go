// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corelog

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Disabled is a logger that drops everything.
	Disabled = zap.NewNop()

	DefaultLevel   = zapcore.InfoLevel
	DefaultLogFile = "grimlockd.log"
)

// Config for logging
type Config struct {
	// Disable console logging
	DisableConsoleLog bool `yaml:"disable_console_log"`
	// LogsAsJSON makes the console output JSON instead of plain text
	LogsAsJSON bool `yaml:"logs_as_json"`
	// FileLoggingEnabled makes the framework log to a file
	// the fields below can be skipped if this value is false!
	FileLoggingEnabled bool `yaml:"file_logging_enabled"`
	// Directory to log to to when filelogging is enabled
	Directory string `yaml:"directory"`
	// Filename is the name of the logfile which will be placed inside the directory
	Filename string `yaml:"filename"`
	// MaxSize the max size in MB of the logfile before it's rolled
	MaxSize int `yaml:"max_size"`
	// MaxBackups the max number of rolled files to keep
	MaxBackups int `yaml:"max_backups"`
	// MaxAge the max age in days to keep a logfile
	MaxAge int `yaml:"max_age"`
}

// Default returns the logging configuration used when none is given.
func (Config) Default() Config {
	return Config{
		DisableConsoleLog:  false,
		LogsAsJSON:         false,
		FileLoggingEnabled: false,
		Directory:          "logs",
		Filename:           DefaultLogFile,
		MaxSize:            150,
		MaxBackups:         3,
		MaxAge:             28,
	}
}

// New returns a logger writing entries at level and above to stdout, unless
// disableStdOut is set, and to the rolling logFile, unless it is empty.
func New(level zapcore.Level, logFile string, disableStdOut bool) *zap.Logger {
	cfg := Config{}.Default()
	cfg.DisableConsoleLog = disableStdOut
	cfg.FileLoggingEnabled = logFile != ""
	cfg.Directory, cfg.Filename = filepath.Split(logFile)

	return NewWithConfig(level, cfg)
}

// NewWithConfig returns a logger writing entries at level and above to the
// outputs enabled by cfg.  With no output enabled it returns Disabled.
func NewWithConfig(level zapcore.Level, cfg Config) *zap.Logger {
	var cores []zapcore.Core
	if !cfg.DisableConsoleLog {
		var enc zapcore.Encoder
		if cfg.LogsAsJSON {
			enc = zapcore.NewJSONEncoder(encoderConfig())
		} else {
			enc = zapcore.NewConsoleEncoder(encoderConfig())
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level))
	}

	if cfg.FileLoggingEnabled {
		if w := newRollingFile(cfg); w != nil {
			cores = append(cores,
				zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(w), level))
		}
	}

	if len(cores) == 0 {
		return Disabled
	}
	return zap.New(zapcore.NewTee(cores...))
}

func encoderConfig() zapcore.EncoderConfig {
	enc := zap.NewProductionEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	return enc
}

func newRollingFile(cfg Config) *lumberjack.Logger {
	if cfg.Directory != "" {
		if err := os.MkdirAll(cfg.Directory, 0700); err != nil {
			os.Stderr.WriteString("can't create log directory " + cfg.Directory + ": " + err.Error() + "\n")
			return nil
		}
	}

	return &lumberjack.Logger{
		Filename:   filepath.Join(cfg.Directory, cfg.Filename),
		MaxBackups: cfg.MaxBackups, // files
		MaxSize:    cfg.MaxSize,    // megabytes
		MaxAge:     cfg.MaxAge,     // days
	}
}
