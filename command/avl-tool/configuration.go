// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-tool.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultPrefix = ""
	defaultLimit  = 0 // no limit
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// DatabaseType - LevelDB source to load before running a script
type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Prefix    string `gluamapper:"prefix" json:"prefix"`
	Limit     int    `gluamapper:"limit" json:"limit"`
}

// Configuration - contents of the Lua configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Checks        bool                 `gluamapper:"checks" json:"checks"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Script        []string             `gluamapper:"script" json:"script"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

func newConfiguration(dataDirectory string) *Configuration {
	return &Configuration{
		DataDirectory: dataDirectory,
		Checks:        false,
		Database: DatabaseType{
			Directory: "", // no database by default
			Prefix:    defaultPrefix,
			Limit:     defaultLimit,
		},
		Script: nil,
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    defaultLogLevels,
		},
	}
}

// configuration used when no file is given, logs go to a temporary
// directory
func getDefaultConfiguration() (*Configuration, error) {
	options := newConfiguration(filepath.Join(os.TempDir(), "avl-tool"))
	if err := os.MkdirAll(options.DataDirectory, 0700); nil != err {
		return nil, err
	}
	return finishConfiguration(options)
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := newConfiguration(defaultDataDirectory)

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	return finishConfiguration(options)
}

// expand paths relative to the data directory
func finishConfiguration(options *Configuration) (*Configuration, error) {

	if options.Database.Limit < 0 {
		options.Database.Limit = defaultLimit
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.Database.Directory,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = configuration.EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
