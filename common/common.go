// /home/krylon/go/src/github.com/blicero/tweak/common/common.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-18 14:10:37 krylon>

// Package common contains definitions used throughout the application,
// mostly the location of our files and the loggers.
package common

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/adrg/xdg"
	"github.com/blicero/krylib"
	"github.com/blicero/tweak/logdomain"
	"github.com/hashicorp/logutils"
)

// Debug, if true, causes the application to log additional messages and
// perform additional sanity checks.
var Debug = true

// AppName is the name under which the application identifies itself.
const AppName = "Tweak"

// Version is the version number to display.
const Version = "0.1.0"

// TimestampFormat is the format string to use for time stamps in the log.
const TimestampFormat = "2006-01-02 15:04:05"

// LogLevels are the names of the log levels supported by the logger.
var LogLevels = []logutils.LogLevel{
	"TRACE",
	"DEBUG",
	"INFO",
	"WARN",
	"ERROR",
	"CRITICAL",
	"CANTHAPPEN",
	"SILENT",
}

// These paths are derived from BaseDir, SetBaseDir keeps them consistent.
var (
	BaseDir    = filepath.Join(xdg.DataHome, "tweak")
	LogPath    = filepath.Join(BaseDir, "tweak.log")
	DbPath     = filepath.Join(BaseDir, "settings.db")
	SchemaPath = filepath.Join(BaseDir, "schema.conf")
	ConfigPath = filepath.Join(xdg.ConfigHome, "tweak", "tweak.toml")
)

var (
	logLock sync.Mutex
	logFile *os.File
)

// SetBaseDir sets the application's base directory. This should only be done
// during initialization.
// Once the log file and the database are opened, this is useless at best and
// opens a world of confusion at worst, so this function should only be called
// at the very beginning of the program.
func SetBaseDir(path string) error {
	BaseDir = path
	LogPath = filepath.Join(BaseDir, "tweak.log")
	DbPath = filepath.Join(BaseDir, "settings.db")
	SchemaPath = filepath.Join(BaseDir, "schema.conf")

	if err := InitApp(); err != nil {
		fmt.Fprintf(os.Stderr,
			"Error initializing application environment: %s\n",
			err.Error())
		return err
	}

	return nil
} // func SetBaseDir(path string) error

// InitApp performs some basic preparations for the application to run.
// Currently, this means creating the BaseDir folder.
func InitApp() error {
	var (
		err    error
		exists bool
	)

	if exists, err = krylib.Fexists(BaseDir); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot check if %s exists: %s\n",
			BaseDir,
			err.Error())
		return err
	} else if !exists {
		if err = os.MkdirAll(BaseDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr,
				"Error creating base directory %s: %s\n",
				BaseDir,
				err.Error())
			return err
		}
	}

	logLock.Lock()
	defer logLock.Unlock()

	if logFile != nil {
		logFile.Close() // nolint: errcheck
		logFile = nil
	}

	if logFile, err = os.OpenFile(LogPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0600); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot open log file %s: %s\n",
			LogPath,
			err.Error())
		return err
	}

	return nil
} // func InitApp() error

// GetLogger tries to create a named logger instance and return it.
// If the directory to hold the log file does not exist, try to create it.
func GetLogger(dom logdomain.ID) (*log.Logger, error) {
	var (
		err    error
		writer io.Writer
	)

	logLock.Lock()
	var lf = logFile
	logLock.Unlock()

	if lf == nil {
		if err = InitApp(); err != nil {
			return nil, fmt.Errorf("Error initializing application environment: %s",
				err.Error())
		}

		logLock.Lock()
		lf = logFile
		logLock.Unlock()
	}

	var logName = fmt.Sprintf("%s.%s ",
		AppName,
		dom.String())

	writer = io.MultiWriter(os.Stdout, lf)

	var minLevel logutils.LogLevel = "INFO"

	if Debug {
		minLevel = "TRACE"
	}

	filter := &logutils.LevelFilter{
		Levels:   LogLevels,
		MinLevel: minLevel,
		Writer:   writer,
	}

	return log.New(filter, logName, log.Ldate|log.Ltime|log.Lshortfile), nil
} // func GetLogger(dom logdomain.ID) (*log.Logger, error)
