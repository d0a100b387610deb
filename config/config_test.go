// /home/krylon/go/src/github.com/blicero/tweak/config/config_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-05 20:41:09 krylon>

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/settings"
)

var baseDir = time.Now().Format("/tmp/tweak_config_test_20060102_150405")

func TestMain(m *testing.M) {
	var (
		err    error
		result int
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Printf("Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	} else if result = m.Run(); result == 0 {
		_ = os.RemoveAll(baseDir)
	} else {
		fmt.Printf(">>> TEST DIRECTORY: %s\n", baseDir)
	}

	os.Exit(result)
} // func TestMain(m *testing.M)

func writeConfig(t *testing.T, name, content string) string {
	var path = filepath.Join(baseDir, name)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Cannot write %s: %s", path, err.Error())
	}

	return path
} // func writeConfig(t *testing.T, name, content string) string

func TestDefaults(t *testing.T) {
	var (
		err error
		cfg *Config
	)

	if cfg, err = Load(filepath.Join(baseDir, "does_not_exist.toml")); err != nil {
		t.Fatalf("Cannot load default configuration: %s", err.Error())
	} else if cfg.Path != "" {
		t.Errorf("Config claims to come from %s", cfg.Path)
	} else if cfg.Backend != settings.Legacy {
		t.Errorf("Default backend is %s", cfg.Backend)
	} else if cfg.Database != common.DbPath {
		t.Errorf("Default database is %s", cfg.Database)
	} else if cfg.Schema != common.SchemaPath {
		t.Errorf("Default schema is %s", cfg.Schema)
	} else if cfg.Grab.Timeout != 2*time.Second {
		t.Errorf("Default grab timeout is %s", cfg.Grab.Timeout)
	} else if cfg.Grab.RetryInterval != 100*time.Millisecond {
		t.Errorf("Default grab retry interval is %s", cfg.Grab.RetryInterval)
	} else if !cfg.Watch || !cfg.Heartbeat {
		t.Errorf("Watch and heartbeat should be on by default")
	}
} // func TestDefaults(t *testing.T)

func TestLoadFile(t *testing.T) {
	const content = `
backend = "modern"
database = "/tmp/other.db"
watch = false

[grab]
timeout = "5s"
`

	var (
		err  error
		cfg  *Config
		path = writeConfig(t, "tweak.toml", content)
	)

	if cfg, err = Load(path); err != nil {
		t.Fatalf("Cannot load %s: %s", path, err.Error())
	} else if cfg.Path != path {
		t.Errorf("Config claims to come from %q", cfg.Path)
	} else if cfg.Backend != settings.Modern {
		t.Errorf("Backend is %s", cfg.Backend)
	} else if cfg.Database != "/tmp/other.db" {
		t.Errorf("Database is %s", cfg.Database)
	} else if cfg.Watch {
		t.Error("Watch is still on")
	} else if !cfg.Heartbeat {
		t.Error("Heartbeat lost its default")
	} else if cfg.Grab.Timeout != 5*time.Second {
		t.Errorf("Grab timeout is %s", cfg.Grab.Timeout)
	} else if cfg.Grab.RetryInterval != 100*time.Millisecond {
		t.Errorf("Grab retry interval lost its default: %s", cfg.Grab.RetryInterval)
	}
} // func TestLoadFile(t *testing.T)

func TestLoadInvalid(t *testing.T) {
	var cases = map[string]string{
		"backend.toml":  `backend = "dconf-over-ssh"`,
		"timeout.toml":  "[grab]\ntimeout = \"-1s\"\n",
		"interval.toml": "[grab]\ntimeout = \"1s\"\nretry_interval = \"2s\"\n",
	}

	for name, content := range cases {
		var path = writeConfig(t, name, content)

		if _, err := Load(path); err == nil {
			t.Errorf("Loading %s should have failed", name)
		} else if !errors.Is(err, ErrInvalid) {
			t.Errorf("Loading %s failed with unexpected error: %s",
				name,
				err.Error())
		}
	}

	var path = writeConfig(t, "syntax.toml", "backend = \n")

	if _, err := Load(path); err == nil {
		t.Error("Loading a malformed file should have failed")
	}
} // func TestLoadInvalid(t *testing.T)

func TestDebugFlag(t *testing.T) {
	var saved = common.Debug
	defer func() { common.Debug = saved }()

	for _, debug := range []bool{false, true, false} {
		var (
			err  error
			cfg  *Config
			path = writeConfig(t, "debug.toml", fmt.Sprintf("debug = %t\n", debug))
		)

		common.Debug = !debug

		if cfg, err = Load(path); err != nil {
			t.Fatalf("Cannot load %s: %s", path, err.Error())
		} else if cfg.Debug != debug {
			t.Fatalf("Config.Debug is %t, expected %t", cfg.Debug, debug)
		} else if common.Debug != debug {
			t.Fatalf("common.Debug is %t after loading debug = %t",
				common.Debug,
				debug)
		}
	}
} // func TestDebugFlag(t *testing.T)
