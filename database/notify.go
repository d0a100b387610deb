// /home/krylon/go/src/github.com/blicero/tweak/database/notify.go
// -*- mode: go; coding: utf-8; -*-
// Created on 25. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-26 13:22:09 krylon>

package database

import (
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/blicero/tweak/settings"
	"github.com/blicero/tweak/signal"
	"github.com/fsnotify/fsnotify"
)

// watchDelay is how long we wait for the file system to settle down after
// the database files have been touched before we look for changes.
const watchDelay = 200 * time.Millisecond

// Notify registers fn to be called whenever the value stored for key
// changes, either through this Database, or, if Watch is active, through
// another connection to the same file.
func (db *Database) Notify(key string, fn settings.Listener) (signal.Handle, error) {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.db == nil {
		return "", ErrClosed
	}

	var sig, ok = db.listeners[key]

	if !ok {
		var (
			err   error
			raw   string
			found bool
		)

		if _, raw, found, err = db.loadValue(key); err != nil {
			return "", err
		}

		sig = new(signal.Signal[string])
		db.listeners[key] = sig
		db.cache[key] = observed{value: raw, present: found}
	}

	return sig.Connect(func(k string) { fn(k) }), nil
} // func (db *Database) Notify(key string, fn settings.Listener) (signal.Handle, error)

// StopNotify removes a listener added with Notify.
func (db *Database) StopNotify(key string, h signal.Handle) {
	db.lock.Lock()
	defer db.lock.Unlock()

	if sig, ok := db.listeners[key]; ok {
		sig.Disconnect(h)
		if sig.Len() == 0 {
			delete(db.listeners, key)
			delete(db.cache, key)
		}
	}
} // func (db *Database) StopNotify(key string, h signal.Handle)

// updateCache records the new value of an observed key and reports whether
// it differs from the previous one. Writes inside an explicit transaction
// are picked up by Commit instead.
// It must be called with db.lock held.
func (db *Database) updateCache(key string, val observed) bool {
	if db.tx != nil {
		return false
	} else if _, ok := db.listeners[key]; !ok {
		return false
	} else if db.cache[key] == val {
		return false
	}

	db.cache[key] = val
	return true
} // func (db *Database) updateCache(key string, val observed) bool

func (db *Database) fire(keys ...string) {
	db.lock.Lock()
	var (
		dispatch = db.dispatch
		sigs     = make([]*signal.Signal[string], 0, len(keys))
		names    = make([]string, 0, len(keys))
	)

	for _, k := range keys {
		if sig, ok := db.listeners[k]; ok {
			sigs = append(sigs, sig)
			names = append(names, k)
		}
	}
	db.lock.Unlock()

	for idx, sig := range sigs {
		var (
			s   = sig
			key = names[idx]
		)

		dispatch(func() { s.Emit(key) })
	}
} // func (db *Database) fire(keys ...string)

// Refresh re-reads all observed keys and notifies the listeners of those
// whose value has changed since we last looked.
func (db *Database) Refresh() {
	var changed []string

	db.lock.Lock()

	for key, old := range db.cache {
		var (
			err error
			cur observed
		)

		if _, cur.value, cur.present, err = db.loadValue(key); err != nil {
			db.log.Printf("[ERROR] Cannot refresh %s: %s\n",
				key,
				err.Error())
			continue
		} else if cur != old {
			db.cache[key] = cur
			changed = append(changed, key)
		}
	}

	db.lock.Unlock()

	if len(changed) > 0 {
		sort.Strings(changed)
		db.log.Printf("[DEBUG] %d observed key(s) changed: %s\n",
			len(changed),
			strings.Join(changed, ", "))
		db.fire(changed...)
	}
} // func (db *Database) Refresh()

// Watch starts watching the database files for modifications made by other
// processes. Calling Watch on a Database that is already watched does
// nothing.
func (db *Database) Watch() error {
	var err error

	db.lock.Lock()
	defer db.lock.Unlock()

	if db.watcher != nil {
		return nil
	} else if db.db == nil {
		return ErrClosed
	} else if db.watcher, err = fsnotify.NewWatcher(); err != nil {
		db.log.Printf("[ERROR] Cannot create file system watcher: %s\n",
			err.Error())
		db.watcher = nil
		return err
	} else if err = db.watcher.Add(filepath.Dir(db.path)); err != nil {
		db.log.Printf("[ERROR] Cannot watch %s: %s\n",
			filepath.Dir(db.path),
			err.Error())
		db.watcher.Close() // nolint: errcheck
		db.watcher = nil
		return err
	}

	db.done = make(chan struct{})
	go db.watchLoop(db.watcher, db.done)

	return nil
} // func (db *Database) Watch() error

func (db *Database) stopWatch() {
	db.lock.Lock()
	var (
		w    = db.watcher
		done = db.done
	)
	db.watcher = nil
	db.done = nil
	db.lock.Unlock()

	if w != nil {
		close(done)
		w.Close() // nolint: errcheck
	}
} // func (db *Database) stopWatch()

func (db *Database) watchLoop(w *fsnotify.Watcher, done <-chan struct{}) {
	var (
		base    = filepath.Base(db.path)
		pending bool
		timer   = time.NewTimer(watchDelay)
	)

	if !timer.Stop() {
		<-timer.C
	}

	defer timer.Stop()

	db.log.Printf("[DEBUG] Watching %s for changes\n", db.path)

	for {
		select {
		case <-done:
			return
		case evt, ok := <-w.Events:
			if !ok {
				return
			} else if !strings.HasPrefix(filepath.Base(evt.Name), base) {
				continue
			} else if !evt.Has(fsnotify.Write) && !evt.Has(fsnotify.Create) {
				continue
			} else if !pending {
				pending = true
				timer.Reset(watchDelay)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			db.log.Printf("[ERROR] File system watcher: %s\n",
				err.Error())
		case <-timer.C:
			pending = false
			db.lock.Lock()
			var dispatch = db.dispatch
			db.lock.Unlock()
			dispatch(db.Refresh)
		}
	}
} // func (db *Database) watchLoop(w *fsnotify.Watcher, done <-chan struct{})
