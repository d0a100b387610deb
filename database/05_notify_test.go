// /home/krylon/go/src/github.com/blicero/tweak/database/05_notify_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 26. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-26 16:40:13 krylon>

package database

import (
	"testing"
	"time"

	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/settings"
)

const notifyKey = "/apps/tweak/notify"

func TestNotify(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		calls []string
		h, err = tdb.Notify(notifyKey, func(k string) { calls = append(calls, k) })
	)

	if err != nil {
		t.Fatalf("Cannot register listener: %s", err.Error())
	}

	defer tdb.StopNotify(notifyKey, h)

	tdb.Set(notifyKey, settings.Int, 1)           // nolint: errcheck
	tdb.Set(notifyKey, settings.Int, 1)           // no change, no call
	tdb.Set(notifyKey, settings.Int, 2)           // nolint: errcheck
	tdb.Set("/apps/tweak/other", settings.Int, 2) // nolint: errcheck
	tdb.Unset(notifyKey)                          // nolint: errcheck
	tdb.Unset(notifyKey)                          // no change, no call

	if len(calls) != 3 {
		t.Fatalf("Expected 3 notifications, got %d: %v", len(calls), calls)
	}

	for _, k := range calls {
		if k != notifyKey {
			t.Errorf("Listener was called for wrong key %s", k)
		}
	}
} // func TestNotify(t *testing.T)

func TestNotifyTransaction(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		calls  int
		h, err = tdb.Notify(notifyKey, func(string) { calls++ })
	)

	if err != nil {
		t.Fatalf("Cannot register listener: %s", err.Error())
	}

	defer tdb.StopNotify(notifyKey, h)

	if err = tdb.Begin(); err != nil {
		t.Fatalf("Cannot begin transaction: %s", err.Error())
	}

	tdb.Set(notifyKey, settings.Int, 10) // nolint: errcheck
	tdb.Set(notifyKey, settings.Int, 11) // nolint: errcheck

	if calls != 0 {
		t.Fatalf("Listener was called before Commit")
	} else if err = tdb.Commit(); err != nil {
		t.Fatalf("Cannot commit: %s", err.Error())
	} else if calls != 1 {
		t.Errorf("Expected 1 notification after Commit, got %d", calls)
	}
} // func TestNotifyTransaction(t *testing.T)

func TestDispatcher(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		queue []func()
		calls int
	)

	tdb.SetDispatcher(func(f func()) { queue = append(queue, f) })
	defer tdb.SetDispatcher(nil)

	var h, err = tdb.Notify(notifyKey, func(string) { calls++ })
	if err != nil {
		t.Fatalf("Cannot register listener: %s", err.Error())
	}

	defer tdb.StopNotify(notifyKey, h)

	tdb.Set(notifyKey, settings.Int, 99) // nolint: errcheck

	if calls != 0 {
		t.Fatalf("Listener was called directly, not through the dispatcher")
	} else if len(queue) != 1 {
		t.Fatalf("Expected 1 queued call, got %d", len(queue))
	}

	queue[0]()

	if calls != 1 {
		t.Errorf("Dispatched call did not reach the listener")
	}
} // func TestDispatcher(t *testing.T)

func TestWatch(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err    error
		other  *Database
		called = make(chan string, 8)
	)

	if other, err = Open(common.DbPath); err != nil {
		t.Fatalf("Cannot open second connection: %s", err.Error())
	}

	defer other.Close() // nolint: errcheck

	if err = tdb.Watch(); err != nil {
		t.Fatalf("Cannot watch database: %s", err.Error())
	}

	var h, _ = tdb.Notify(notifyKey, func(k string) { called <- k })
	defer tdb.StopNotify(notifyKey, h)

	if err = other.Set(notifyKey, settings.Int, 12345); err != nil {
		t.Fatalf("Cannot set value through second connection: %s", err.Error())
	}

	select {
	case k := <-called:
		if k != notifyKey {
			t.Errorf("Listener was called for wrong key %s", k)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Change made through second connection was not noticed")
	}

	if val, _, _ := tdb.Get(notifyKey, settings.Int); val != int64(12345) {
		t.Errorf("Unexpected value after external change: %#v", val)
	}
} // func TestWatch(t *testing.T)

func TestClose(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	if err := tdb.Close(); err != nil {
		t.Fatalf("Cannot close database: %s", err.Error())
	} else if _, _, err = tdb.Get(notifyKey, settings.Int); err != ErrClosed {
		t.Errorf("Get on closed Database should return ErrClosed, got %v", err)
	}

	tdb = nil
} // func TestClose(t *testing.T)
