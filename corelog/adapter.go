// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package corelog

import (
	"fmt"
	"sync/atomic"

	"github.com/btcsuite/btclog"
	"go.uber.org/zap"
)

type logAdapter struct {
	logger *zap.Logger
	level  uint32
}

// Adapter exposes a zap logger through the btclog interface used by library
// packages.  Trace entries are written at debug level and critical entries at
// error level.  The adapter starts at btclog.LevelInfo.
func Adapter(logger *zap.Logger) btclog.Logger {
	return &logAdapter{
		logger: logger,
		level:  uint32(btclog.LevelInfo),
	}
}

func (l *logAdapter) Level() btclog.Level {
	return btclog.Level(atomic.LoadUint32(&l.level))
}

func (l *logAdapter) SetLevel(level btclog.Level) {
	atomic.StoreUint32(&l.level, uint32(level))
}

func (l *logAdapter) enabled(level btclog.Level) bool {
	return l.Level() <= level
}

func (l *logAdapter) write(level btclog.Level, msg string) {
	switch level {
	case btclog.LevelTrace, btclog.LevelDebug:
		l.logger.Debug(msg)
	case btclog.LevelInfo:
		l.logger.Info(msg)
	case btclog.LevelWarn:
		l.logger.Warn(msg)
	default:
		l.logger.Error(msg, zap.String("severity", level.String()))
	}
}

func (l *logAdapter) logf(level btclog.Level, format string, params []interface{}) {
	if !l.enabled(level) {
		return
	}
	if params != nil {
		l.write(level, fmt.Sprintf(format, params...))
	} else {
		l.write(level, format)
	}
}

func (l *logAdapter) log(level btclog.Level, v []interface{}) {
	if !l.enabled(level) {
		return
	}
	l.write(level, fmt.Sprint(v...))
}

func (l *logAdapter) Tracef(format string, params ...interface{}) {
	l.logf(btclog.LevelTrace, format, params)
}

func (l *logAdapter) Debugf(format string, params ...interface{}) {
	l.logf(btclog.LevelDebug, format, params)
}

func (l *logAdapter) Infof(format string, params ...interface{}) {
	l.logf(btclog.LevelInfo, format, params)
}

func (l *logAdapter) Warnf(format string, params ...interface{}) {
	l.logf(btclog.LevelWarn, format, params)
}

func (l *logAdapter) Errorf(format string, params ...interface{}) {
	l.logf(btclog.LevelError, format, params)
}

func (l *logAdapter) Criticalf(format string, params ...interface{}) {
	l.logf(btclog.LevelCritical, format, params)
}

func (l *logAdapter) Trace(v ...interface{}) { l.log(btclog.LevelTrace, v) }
func (l *logAdapter) Debug(v ...interface{}) { l.log(btclog.LevelDebug, v) }
func (l *logAdapter) Info(v ...interface{}) { l.log(btclog.LevelInfo, v) }
func (l *logAdapter) Warn(v ...interface{}) { l.log(btclog.LevelWarn, v) }
func (l *logAdapter) Error(v ...interface{}) { l.log(btclog.LevelError, v) }
func (l *logAdapter) Critical(v ...interface{}) { l.log(btclog.LevelCritical, v) }
