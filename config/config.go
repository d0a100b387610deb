// /home/krylon/go/src/github.com/blicero/tweak/config/config.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-05 20:17:44 krylon>

// Package config loads the application's configuration from a TOML file.
package config

import (
	_ "embed" // for the default configuration
	"errors"
	"fmt"

	"github.com/blicero/krylib"
	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/logdomain"
	"github.com/blicero/tweak/settings"
	"github.com/blicero/tweak/widget"
	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed default.toml
var defaultConfig []byte

// ErrInvalid indicates a configuration value that makes no sense.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the application's configuration.
type Config struct {
	Backend   settings.Backend
	Database  string
	Schema    string
	Debug     bool
	Watch     bool
	Heartbeat bool
	Grab      widget.GrabOptions
	// Path is the file the configuration was read from, empty if there
	// was none.
	Path string
}

// Load reads the configuration from path, on top of the defaults. If path
// is empty, common.ConfigPath is used. A missing file is not an error.
func Load(path string) (*Config, error) {
	var (
		err    error
		exists bool
		k      = koanf.New(".")
		cfg    = new(Config)
	)

	if path == "" {
		path = common.ConfigPath
	}

	if err = k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, fmt.Errorf("cannot parse default configuration: %w", err)
	} else if exists, err = krylib.Fexists(path); err != nil {
		return nil, err
	} else if exists {
		if err = k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("cannot load configuration from %s: %w",
				path,
				err)
		}
		cfg.Path = path
	}

	if cfg.Backend, err = settings.ParseBackend(k.String("backend")); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, err.Error())
	}

	cfg.Database = k.String("database")
	cfg.Schema = k.String("schema")
	cfg.Debug = k.Bool("debug")
	cfg.Watch = k.Bool("watch")
	cfg.Heartbeat = k.Bool("heartbeat")
	cfg.Grab.Timeout = k.Duration("grab.timeout")
	cfg.Grab.RetryInterval = k.Duration("grab.retry_interval")

	if cfg.Database == "" {
		cfg.Database = common.DbPath
	}

	if cfg.Schema == "" {
		cfg.Schema = common.SchemaPath
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	common.Debug = cfg.Debug

	if l, lerr := common.GetLogger(logdomain.Config); lerr == nil {
		l.Printf("[DEBUG] Configuration loaded from %q: backend = %s, database = %s, grab timeout = %s\n",
			cfg.Path,
			cfg.Backend,
			cfg.Database,
			cfg.Grab.Timeout)
	}

	return cfg, nil
} // func Load(path string) (*Config, error)

func (c *Config) validate() error {
	if c.Grab.Timeout <= 0 {
		return fmt.Errorf("%w: grab.timeout must be positive, not %s",
			ErrInvalid,
			c.Grab.Timeout)
	} else if c.Grab.RetryInterval <= 0 {
		return fmt.Errorf("%w: grab.retry_interval must be positive, not %s",
			ErrInvalid,
			c.Grab.RetryInterval)
	} else if c.Grab.RetryInterval > c.Grab.Timeout {
		return fmt.Errorf("%w: grab.retry_interval (%s) is longer than grab.timeout (%s)",
			ErrInvalid,
			c.Grab.RetryInterval,
			c.Grab.Timeout)
	}

	return nil
} // func (c *Config) validate() error
