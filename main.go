// /home/krylon/go/src/github.com/blicero/tweak/main.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-09 19:02:37 krylon>

package main

import (
	"bytes"
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/blicero/krylib"
	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/config"
	"github.com/blicero/tweak/database"
	"github.com/blicero/tweak/settings"
	"github.com/blicero/tweak/ui"
)

//go:embed schema.conf
var defaultSchema []byte

func main() {
	var (
		err      error
		cfgPath  string
		backend  string
		cfg      *config.Config
		db       *database.Database
		entries  []settings.SchemaEntry
		win      *ui.GUI
		exists   bool
		schemaRd io.Reader = bytes.NewReader(defaultSchema)
	)

	flag.StringVar(&cfgPath, "config", "", "Path of the configuration file")
	flag.StringVar(&backend, "backend", "", "Preference store to use (legacy or modern)")
	flag.Parse()

	if err = common.InitApp(); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot initialize application environment: %s\n",
			err.Error())
		os.Exit(1)
	} else if cfg, err = config.Load(cfgPath); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot load configuration: %s\n",
			err.Error())
		os.Exit(1)
	}

	if backend != "" {
		if cfg.Backend, err = settings.ParseBackend(backend); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err.Error())
			os.Exit(1)
		}
	}

	if exists, err = krylib.Fexists(cfg.Schema); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot check if %s exists: %s\n",
			cfg.Schema,
			err.Error())
		os.Exit(1)
	} else if exists {
		var fh *os.File
		if fh, err = os.Open(cfg.Schema); err != nil {
			fmt.Fprintf(os.Stderr,
				"Cannot open schema %s: %s\n",
				cfg.Schema,
				err.Error())
			os.Exit(1)
		}
		defer fh.Close() // nolint: errcheck
		schemaRd = fh
	}

	if entries, err = settings.ParseSchema(schemaRd); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot parse schema: %s\n",
			err.Error())
		os.Exit(1)
	} else if db, err = database.Open(cfg.Database); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot open database %s: %s\n",
			cfg.Database,
			err.Error())
		os.Exit(1)
	}

	defer db.Close() // nolint: errcheck

	if err = db.SchemaLoad(entries); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot load schema into database: %s\n",
			err.Error())
		return
	} else if cfg.Watch {
		if err = db.Watch(); err != nil {
			fmt.Fprintf(os.Stderr,
				"Cannot watch database for changes: %s\n",
				err.Error())
		}
	}

	if win, err = ui.Create(cfg, db, settings.NewSchema(entries)); err != nil {
		fmt.Fprintf(os.Stderr,
			"Cannot create GUI: %s\n",
			err.Error())
		return
	}

	win.ShowAndRun()
} // func main()
