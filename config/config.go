// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2020 The JaxNetwork developers
// Copyright (c) 2024 The Grimlock developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Grim-lock/bitcoin/types/chaincfg"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename = "grimlockd.yaml"
	defaultLogFilename    = "grimlockd.log"
	defaultLogDirname     = "logs"
	defaultLogLevel       = "info"
)

var (
	defaultHomeDir    = appDataDir("grimlockd")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
	defaultLogDir     = filepath.Join(defaultHomeDir, defaultLogDirname)
)

// Config defines the configuration options for grimlockd.
type Config struct {
	NetworkFlags `yaml:",inline"`

	ConfigFile string `short:"C" long:"configfile" yaml:"-" description:"Path to configuration file"`
	DataDir    string `short:"b" long:"datadir" yaml:"data_dir" description:"Directory to store data"`
	LogDir     string `long:"logdir" yaml:"log_dir" description:"Directory to log output"`
	NoStdOut   bool   `long:"nostdout" yaml:"no_stdout" description:"Do not write log output to stdout"`
	DebugLevel string `short:"d" long:"debuglevel" yaml:"debug_level" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`

	// Network is resolved from NetworkFlags by LoadConfig.
	Network chaincfg.Network `no-flag:"true" yaml:"-"`
}

// NetParams returns the parameters of the selected network.
func (cfg *Config) NetParams() *chaincfg.Params {
	return chaincfg.ParamsFor(cfg.Network)
}

// appDataDir returns the default data directory of the application, a dot
// directory in the user's home, or the working directory if the home is
// unknown.
func appDataDir(appName string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "." + appName
	}
	return filepath.Join(home, "."+appName)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	// Expand initial ~ to OS specific home directory.
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		path = strings.Replace(path, "~", homeDir, 1)
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but they variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfigFile decodes the YAML file at path into cfg.  An empty file
// leaves cfg untouched.
func loadConfigFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	err = yaml.NewDecoder(file).Decode(cfg)
	if err != nil && err != io.EOF {
		return errors.Wrapf(err, "can't decode config file %s", path)
	}
	return nil
}

// LoadConfig initializes and parses the config using a config file and the
// command line options in args, then selects the network parameters.
//
// The configuration proceeds as follows:
// 	1) Start with a default config with sane settings
// 	2) Pre-parse the command line to check for an alternative config file
// 	3) Load configuration file overwriting defaults with any specified options
// 	4) Parse CLI options and overwrite/add any specified options
//
// A missing default config file is not an error, a missing file given with
// --configfile is.  Command line options always take precedence.
func LoadConfig(args []string) (*Config, []string, error) {
	cfg := Config{
		ConfigFile: defaultConfigFile,
		DataDir:    defaultHomeDir,
		LogDir:     defaultLogDir,
		DebugLevel: defaultLogLevel,
	}

	// Pre-parse the command line options to see if an alternative config
	// file was specified.  Any errors aside from the help message error can
	// be ignored here since they will be caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(0)
		}
	}

	// Load additional config from file.
	if preCfg.ConfigFile != "" {
		err = loadConfigFile(preCfg.ConfigFile, &cfg)
		if err != nil && !(os.IsNotExist(err) && preCfg.ConfigFile == defaultConfigFile) {
			return nil, nil, err
		}
	}

	// Parse command line options again to ensure they take precedence.
	parser := flags.NewParser(&cfg, flags.Default)
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	cfg.Network, err = cfg.ResolveNetwork()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}

	params := chaincfg.ParamsFor(cfg.Network)

	// Append the network type to the data and log directories so they are
	// "namespaced" per network.
	cfg.DataDir = filepath.Join(cleanAndExpandPath(cfg.DataDir), params.DataDir())
	cfg.LogDir = filepath.Join(cleanAndExpandPath(cfg.LogDir), params.Name())

	InitLogging(filepath.Join(cfg.LogDir, defaultLogFilename), cfg.NoStdOut)
	if err = SetLogLevels(cfg.DebugLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	if err = chaincfg.SelectParams(cfg.Network); err != nil {
		return nil, nil, err
	}

	Log.Infof("Loaded configuration: network=%s datadir=%s", params.Name(), cfg.DataDir)
	return &cfg, remainingArgs, nil
}
