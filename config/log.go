// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"sort"
	"strings"

	"github.com/Grim-lock/bitcoin/corelog"
	"github.com/Grim-lock/bitcoin/types/chaincfg"
	"github.com/btcsuite/btclog"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logUnitCNFG = "CNFG"
	logUnitCHCF = "CHCF"
)

// Loggers per subsystem.  A single backend logger is created and all subsytem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem identifier to unitLevels and wire the logger
// in setLoggers.
var (
	// backendLog is the logging backend used to create all subsystem loggers.
	// It writes to stdout until InitLogging points it at a log file.
	backendLog = corelog.New(zapcore.DebugLevel, "", false)

	// Log is the logger of the config subsystem.
	Log btclog.Logger = btclog.Disabled

	// unitLevels maps each subsystem identifier to its logging level.
	unitLevels = map[string]btclog.Level{
		logUnitCNFG: btclog.LevelInfo,
		logUnitCHCF: btclog.LevelInfo,
	}
)

func init() {
	setLoggers()
}

// InitLogging replaces the logging backend with one that writes to logFile,
// and to stdout unless disableStdOut is set.
func InitLogging(logFile string, disableStdOut bool) {
	backendLog = corelog.New(zapcore.DebugLevel, logFile, disableStdOut)
	setLoggers()
}

func unitLogger(unit string) btclog.Logger {
	logger := corelog.Adapter(backendLog.With(zap.String("app.unit", unit)))
	logger.SetLevel(unitLevels[unit])
	return logger
}

// Initialize package-global logger variables.
func setLoggers() {
	Log = unitLogger(logUnitCNFG)
	chaincfg.UseLogger(unitLogger(logUnitCHCF))
}

// validLogLevel returns whether or not logLevel is a valid debug log level.
func validLogLevel(logLevel string) bool {
	switch logLevel {
	case "trace", "debug", "info", "warn", "error", "critical", "off":
		return true
	}
	return false
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(unitLevels))
	for subsysID := range unitLevels {
		subsystems = append(subsystems, subsysID)
	}

	// Sort the subsystems for stable display.
	sort.Strings(subsystems)
	return subsystems
}

// setLogLevel sets the logging level for provided subsystem.  Invalid
// subsystems are ignored.
func setLogLevel(subsystemID, logLevel string) {
	if _, ok := unitLevels[subsystemID]; !ok {
		return
	}

	level, _ := btclog.LevelFromString(logLevel)
	unitLevels[subsystemID] = level
}

// SetLogLevels parses debugLevel and applies it.  A bare level applies to
// every subsystem, otherwise debugLevel is a comma separated list of
// subsystem=level pairs.
func SetLogLevels(debugLevel string) error {
	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if !validLogLevel(debugLevel) {
			return errors.Errorf("the specified debug level [%v] is invalid", debugLevel)
		}

		for subsystemID := range unitLevels {
			setLogLevel(subsystemID, debugLevel)
		}
		setLoggers()
		return nil
	}

	// Split the specified string into subsystem/level pairs while detecting
	// issues and update the log levels accordingly.
	for _, logLevelPair := range strings.Split(debugLevel, ",") {
		if !strings.Contains(logLevelPair, "=") {
			return errors.Errorf("the specified debug level contains an invalid "+
				"subsystem/level pair [%v]", logLevelPair)
		}

		fields := strings.Split(logLevelPair, "=")
		subsysID, logLevel := fields[0], fields[1]

		if _, exists := unitLevels[subsysID]; !exists {
			return errors.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsytems %v", subsysID, supportedSubsystems())
		}

		if !validLogLevel(logLevel) {
			return errors.Errorf("the specified debug level [%v] is invalid", logLevel)
		}

		setLogLevel(subsysID, logLevel)
	}

	setLoggers()
	return nil
}
