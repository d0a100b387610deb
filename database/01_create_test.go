// /home/krylon/go/src/github.com/blicero/tweak/database/01_create_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 04. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-26 14:05:51 krylon>

package database

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/database/query"
)

var tdb *Database

func TestMain(m *testing.M) {
	var (
		err     error
		result  int
		baseDir = time.Now().Format("/tmp/tweak_db_test_20060102_150405")
	)

	if err = common.SetBaseDir(baseDir); err != nil {
		fmt.Printf("Cannot set base directory to %s: %s\n",
			baseDir,
			err.Error())
		os.Exit(1)
	} else if result = m.Run(); result == 0 {
		// If any test failed, we keep the test directory (and the
		// database inside it) around, so we can manually inspect it
		// if needed.
		// If all tests pass, OTOH, we can safely remove the directory.
		fmt.Printf("Removing BaseDir %s\n",
			baseDir)
		_ = os.RemoveAll(baseDir)
	} else {
		fmt.Printf(">>> TEST DIRECTORY: %s\n", baseDir)
	}

	os.Exit(result)
} // func TestMain(m *testing.M)

func TestDBCreate(t *testing.T) {
	var err error

	if tdb, err = Open(common.DbPath); err != nil {
		tdb = nil
		t.Fatalf("Cannot create Database: %s",
			err.Error())
	}
} // func TestDBCreate(t *testing.T)

func TestQueryPrepare(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	tdb.lock.Lock()
	defer tdb.lock.Unlock()

	for qid := range dbQueries {
		if _, err := tdb.getQuery(qid); err != nil {
			t.Errorf("Cannot prepare query %s: %s",
				qid,
				err.Error())
		}
	}

	if _, err := tdb.getQuery(query.ID(255)); err == nil {
		t.Errorf("Preparing an unknown query should have failed")
	}
} // func TestQueryPrepare(t *testing.T)

func TestDBReopen(t *testing.T) {
	var (
		err  error
		db2  *Database
		path = filepath.Join(common.BaseDir, "reopen.db")
	)

	if db2, err = Open(path); err != nil {
		t.Fatalf("Cannot create Database %s: %s",
			path,
			err.Error())
	} else if err = db2.Close(); err != nil {
		t.Fatalf("Cannot close Database %s: %s",
			path,
			err.Error())
	} else if db2, err = Open(path); err != nil {
		t.Fatalf("Cannot re-open existing Database %s: %s",
			path,
			err.Error())
	}

	defer db2.Close() // nolint: errcheck

	if _, _, err = db2.Get("/apps/tweak/nothing", 0); err != nil {
		t.Errorf("Get on re-opened Database failed: %s", err.Error())
	}
} // func TestDBReopen(t *testing.T)
