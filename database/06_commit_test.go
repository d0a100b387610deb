// /home/krylon/go/src/github.com/blicero/tweak/database/06_commit_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-12 19:04:51 krylon>

package database

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/blicero/tweak/settings"
)

const commitKey = "/apps/tweak/commit"

var errCommit = errors.New("commit refused")

// failCommit makes every ad-hoc transaction fail at commit, the changes are
// rolled back instead.
func failCommit(tx *sql.Tx) error {
	tx.Rollback() // nolint: errcheck
	return errCommit
} // func failCommit(tx *sql.Tx) error

func TestCommitFailure(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err   error
		calls int
		found bool
	)

	if err = tdb.Set(commitKey, settings.Int, 1); err != nil {
		t.Fatalf("Cannot set %s: %s", commitKey, err.Error())
	}

	if hdl, nerr := tdb.Notify(commitKey, func(string) { calls++ }); nerr != nil {
		t.Fatalf("Cannot register listener: %s", nerr.Error())
	} else {
		defer tdb.StopNotify(commitKey, hdl)
	}

	commitTx = failCommit
	err = tdb.Set(commitKey, settings.Int, 2)
	commitTx = func(tx *sql.Tx) error { return tx.Commit() }

	if err == nil {
		t.Fatalf("Set succeeded although the commit failed")
	} else if !errors.Is(err, errCommit) {
		t.Fatalf("Set returned unexpected error: %s", err.Error())
	} else if calls != 0 {
		t.Fatalf("Listener was called for a write that did not land")
	}

	var val interface{}
	if val, found, err = tdb.Get(commitKey, settings.Int); err != nil {
		t.Fatalf("Cannot get %s: %s", commitKey, err.Error())
	} else if !found || val != int64(1) {
		t.Fatalf("Value of %s changed by failed commit: %v (found = %t)",
			commitKey,
			val,
			found)
	}

	commitTx = failCommit
	err = tdb.Unset(commitKey)
	commitTx = func(tx *sql.Tx) error { return tx.Commit() }

	if err == nil {
		t.Fatalf("Unset succeeded although the commit failed")
	} else if calls != 0 {
		t.Fatalf("Listener was called for an unset that did not land")
	}

	// The cache must still match the store, so a real change is reported.
	if err = tdb.Set(commitKey, settings.Int, 3); err != nil {
		t.Fatalf("Cannot set %s: %s", commitKey, err.Error())
	} else if calls != 1 {
		t.Errorf("Expected 1 notification after successful Set, got %d", calls)
	}
} // func TestCommitFailure(t *testing.T)
