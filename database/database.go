// /home/krylon/go/src/github.com/blicero/tweak/database/database.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-25 16:48:21 krylon>

// Package database implements the legacy preference backend, a flat
// key-value store in the spirit of GConf.
// For the time being, we use SQLite, because it is awesome.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/database/query"
	"github.com/blicero/tweak/logdomain"
	"github.com/blicero/tweak/settings"
	"github.com/blicero/tweak/signal"
	"github.com/fsnotify/fsnotify"
	_ "github.com/mattn/go-sqlite3" // Import the database driver
)

var (
	openLock sync.Mutex
	idCnt    int64
)

// ErrTxInProgress indicates that an attempt to initiate a transaction failed
// because there is already one in progress.
var ErrTxInProgress = errors.New("A Transaction is already in progress")

// ErrNoTxInProgress indicates that an attempt was made to finish a
// transaction when none was active.
var ErrNoTxInProgress = errors.New("There is no transaction in progress")

// ErrClosed is returned by operations on a Database that has been closed.
var ErrClosed = errors.New("database is closed")

// commitTx commits the ad-hoc transactions opened by exec.
var commitTx = func(tx *sql.Tx) error { return tx.Commit() }

// If a query returns an error and the error text is matched by this regex, we
// consider the error as transient and try again after a short delay.
var retryPat = regexp.MustCompile("(?i)database is (?:locked|busy)")

// worthARetry returns true if an error returned from the database
// is matched by the retryPat regex.
func worthARetry(e error) bool {
	return retryPat.MatchString(e.Error())
} // func worthARetry(e error) bool

// retryDelay is the amount of time we wait before we repeat a database
// operation that failed due to a transient error.
const retryDelay = 25 * time.Millisecond

func waitForRetry() {
	time.Sleep(retryDelay)
} // func waitForRetry()

// observed is the last value of a key that has listeners.
type observed struct {
	value   string
	present bool
}

// Database is the legacy preference store.
//
// Methods may be called from several goroutines, but listeners are invoked
// through the Dispatcher, which the GUI points at the Gtk main loop.
// Opening multiple connections to the same Database is safe, changes made
// through one of them reach the listeners of the others via Watch.
type Database struct {
	id        int64
	db        *sql.DB
	tx        *sql.Tx
	log       *log.Logger
	path      string
	lock      sync.Mutex
	queries   map[query.ID]*sql.Stmt
	listeners map[string]*signal.Signal[string]
	cache     map[string]observed
	dispatch  func(func())
	watcher   *fsnotify.Watcher
	done      chan struct{}
}

// Open opens a Database. If the database specified by the path does not exist,
// yet, it is created and initialized.
func Open(path string) (*Database, error) {
	var (
		err      error
		dbExists bool
		db       = &Database{
			path:      path,
			queries:   make(map[query.ID]*sql.Stmt),
			listeners: make(map[string]*signal.Signal[string]),
			cache:     make(map[string]observed),
			dispatch:  func(f func()) { f() },
		}
	)

	openLock.Lock()
	defer openLock.Unlock()
	idCnt++
	db.id = idCnt

	if db.log, err = common.GetLogger(logdomain.Database); err != nil {
		return nil, err
	} else if common.Debug {
		db.log.Printf("[DEBUG] Open database %s\n", path)
	}

	var connstring = fmt.Sprintf("%s?_locking=NORMAL&_journal=WAL&_fk=1&recursive_triggers=0&_busy_timeout=250",
		path)

	if dbExists, err = krylib.Fexists(path); err != nil {
		db.log.Printf("[ERROR] Failed to check if %s already exists: %s\n",
			path,
			err.Error())
		return nil, err
	} else if db.db, err = sql.Open("sqlite3", connstring); err != nil {
		db.log.Printf("[ERROR] Failed to open %s: %s\n",
			path,
			err.Error())
		return nil, err
	}

	if !dbExists {
		if err = db.initialize(); err != nil {
			var e2 error
			if e2 = db.db.Close(); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to close database: %s\n",
					e2.Error())
				return nil, e2
			} else if e2 = os.Remove(path); e2 != nil {
				db.log.Printf("[CRITICAL] Failed to remove database file %s: %s\n",
					db.path,
					e2.Error())
			}
			return nil, err
		}
		db.log.Printf("[INFO] Database at %s has been initialized\n",
			path)
	}

	return db, nil
} // func Open(path string) (*Database, error)

func (db *Database) initialize() error {
	var err error
	var tx *sql.Tx

	if common.Debug {
		db.log.Printf("[DEBUG] Initialize fresh database at %s\n",
			db.path)
	}

	if tx, err = db.db.Begin(); err != nil {
		db.log.Printf("[ERROR] Cannot begin transaction: %s\n",
			err.Error())
		return err
	}

	for _, q := range initQueries {
		db.log.Printf("[TRACE] Execute init query:\n%s\n",
			q)
		if _, err = tx.Exec(q); err != nil {
			db.log.Printf("[ERROR] Cannot execute init query: %s\n%s\n",
				err.Error(),
				q)
			if rbErr := tx.Rollback(); rbErr != nil {
				db.log.Printf("[CANTHAPPEN] Cannot rollback transaction: %s\n",
					rbErr.Error())
				return rbErr
			}
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		db.log.Printf("[CANTHAPPEN] Failed to commit init transaction: %s\n",
			err.Error())
		return err
	}

	return nil
} // func (db *Database) initialize() error

// Path returns the path of the database file.
func (db *Database) Path() string { return db.path }

// SetDispatcher sets the function used to invoke listeners.
// By default, listeners are called directly.
func (db *Database) SetDispatcher(d func(func())) {
	db.lock.Lock()
	if d == nil {
		d = func(f func()) { f() }
	}
	db.dispatch = d
	db.lock.Unlock()
} // func (db *Database) SetDispatcher(d func(func()))

// Close closes the database.
// If there is a pending transaction, it is rolled back.
func (db *Database) Close() error {
	var err error

	db.stopWatch()

	db.lock.Lock()
	defer db.lock.Unlock()

	if db.db == nil {
		return nil
	}

	if db.tx != nil {
		if err = db.tx.Rollback(); err != nil {
			db.log.Printf("[CRITICAL] Cannot roll back pending transaction: %s\n",
				err.Error())
			return err
		}
		db.tx = nil
	}

	for key, stmt := range db.queries {
		if err = stmt.Close(); err != nil {
			db.log.Printf("[CRITICAL] Cannot close statement handle %s: %s\n",
				key,
				err.Error())
			return err
		}
		delete(db.queries, key)
	}

	if err = db.db.Close(); err != nil {
		db.log.Printf("[CRITICAL] Cannot close database: %s\n",
			err.Error())
	}

	db.db = nil
	return nil
} // func (db *Database) Close() error

// getQuery must be called with db.lock held.
func (db *Database) getQuery(id query.ID) (*sql.Stmt, error) {
	var (
		stmt  *sql.Stmt
		found bool
		err   error
	)

	if db.db == nil {
		return nil, ErrClosed
	} else if stmt, found = db.queries[id]; found {
		return stmt, nil
	} else if _, found = dbQueries[id]; !found {
		return nil, fmt.Errorf("Unknown Query %d",
			id)
	}

	db.log.Printf("[TRACE] Prepare query %s\n", id)

PREPARE_QUERY:
	if stmt, err = db.db.Prepare(dbQueries[id]); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto PREPARE_QUERY
		}

		db.log.Printf("[ERROR] Cannor parse query %s: %s\n%s\n",
			id,
			err.Error(),
			dbQueries[id])
		return nil, err
	}

	db.queries[id] = stmt
	return stmt, nil
} // func (db *Database) getQuery(query.ID) (*sql.Stmt, error)

// Begin begins an explicit database transaction.
// Only one transaction can be in progress at once, attempting to start one,
// while another transaction is already in progress will yield ErrTxInProgress.
//
// Listeners are not notified about writes made inside an explicit
// transaction until Commit.
func (db *Database) Begin() error {
	var err error

	db.lock.Lock()
	defer db.lock.Unlock()

	db.log.Printf("[DEBUG] Database#%d Begin Transaction\n",
		db.id)

	if db.db == nil {
		return ErrClosed
	} else if db.tx != nil {
		return ErrTxInProgress
	}

BEGIN_TX:
	for db.tx == nil {
		if db.tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				continue BEGIN_TX
			} else {
				db.log.Printf("[ERROR] Failed to start transaction: %s\n",
					err.Error())
				return err
			}
		}
	}

	return nil
} // func (db *Database) Begin() error

// Rollback terminates a pending transaction, undoing any changes to the
// database made during that transaction.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Rollback() error {
	var err error

	db.lock.Lock()
	defer db.lock.Unlock()

	db.log.Printf("[DEBUG] Database#%d Roll back Transaction\n",
		db.id)

	if db.tx == nil {
		return ErrNoTxInProgress
	} else if err = db.tx.Rollback(); err != nil {
		return fmt.Errorf("Cannot roll back database transaction: %s",
			err.Error())
	}

	db.tx = nil

	return nil
} // func (db *Database) Rollback() error

// Commit ends the active transaction, making any changes made during that
// transaction permanent and visible to other connections.
// If no transaction is active, it returns ErrNoTxInProgress
func (db *Database) Commit() error {
	var err error

	db.lock.Lock()

	db.log.Printf("[DEBUG] Database#%d Commit Transaction\n",
		db.id)

	if db.tx == nil {
		db.lock.Unlock()
		return ErrNoTxInProgress
	} else if err = db.tx.Commit(); err != nil {
		db.lock.Unlock()
		return fmt.Errorf("Cannot commit transaction: %s",
			err.Error())
	}

	db.tx = nil
	db.lock.Unlock()

	db.Refresh()
	return nil
} // func (db *Database) Commit() error

// PerformMaintenance performs some maintenance operations on the database.
// It cannot be called while a transaction is in progress and will block
// pretty much all access to the database while it is running.
func (db *Database) PerformMaintenance() error {
	var mQueries = []string{
		"PRAGMA wal_checkpoint(TRUNCATE)",
		"VACUUM",
		"REINDEX",
		"ANALYZE",
	}
	var err error

	db.lock.Lock()
	defer db.lock.Unlock()

	if db.db == nil {
		return ErrClosed
	} else if db.tx != nil {
		return ErrTxInProgress
	}

	for _, q := range mQueries {
		if _, err = db.db.Exec(q); err != nil {
			db.log.Printf("[ERROR] Failed to execute %s: %s\n",
				q,
				err.Error())
		}
	}

	return nil
} // func (db *Database) PerformMaintenance() error

// exec runs a statement that modifies the database, inside the pending
// transaction, or an ad-hoc transaction if there is none.
// It must be called with db.lock held.
func (db *Database) exec(qid query.ID, args ...interface{}) (cnt int64, err error) {
	var (
		msg    string
		stmt   *sql.Stmt
		tx     *sql.Tx
		res    sql.Result
		status bool
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return 0, err
	} else if db.tx != nil {
		tx = db.tx
	} else {
	BEGIN_AD_HOC:
		if tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_AD_HOC
			} else {
				msg = fmt.Sprintf("Error starting transaction: %s\n",
					err.Error())
				db.log.Printf("[ERROR] %s\n", msg)
				return 0, errors.New(msg)
			}

		} else {
			defer func() {
				var err2 error
				if status {
					if err2 = commitTx(tx); err2 != nil {
						db.log.Printf("[ERROR] Failed to commit ad-hoc transaction: %s\n",
							err2.Error())
						cnt = 0
						err = fmt.Errorf("Cannot commit %s: %w", qid, err2)
					}
				} else if err2 = tx.Rollback(); err2 != nil {
					db.log.Printf("[ERROR] Rollback of ad-hoc transaction failed: %s\n",
						err2.Error())
				}
			}()
		}
	}

	stmt = tx.Stmt(stmt)

EXEC_QUERY:
	if res, err = stmt.Exec(args...); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		err = fmt.Errorf("Cannot execute query %s: %s",
			qid,
			err.Error())
		db.log.Printf("[ERROR] %s\n", err.Error())
		return 0, err
	}

	status = true

	cnt, _ = res.RowsAffected()
	return cnt, nil
} // func (db *Database) exec(qid query.ID, args ...interface{}) (cnt int64, err error)

// loadValue reads the raw value stored for key.
// It must be called with db.lock held.
func (db *Database) loadValue(key string) (settings.Type, string, bool, error) {
	const qid query.ID = query.ValueGet
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
	)

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return 0, "", false, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if rows, err = stmt.Query(key); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query value of %s: %s\n",
			key,
			err.Error())
		return 0, "", false, err
	}

	defer rows.Close() // nolint: errcheck

	if rows.Next() {
		var (
			t   settings.Type
			val string
		)

		if err = rows.Scan(&t, &val); err != nil {
			db.log.Printf("[ERROR] Cannot scan row for %s: %s\n",
				key,
				err.Error())
			return 0, "", false, err
		}

		return t, val, true, nil
	}

	return 0, "", false, rows.Err()
} // func (db *Database) loadValue(key string) (settings.Type, string, bool, error)

// convert parses a raw value stored as type st into a value of type t.
func convert(key string, st, t settings.Type, raw string) (interface{}, error) {
	var (
		err error
		val interface{}
	)

	if st == t {
		return t.Parse(raw)
	} else if val, err = t.Parse(raw); err == nil {
		return val, nil
	} else if val, err = st.Parse(raw); err != nil {
		return nil, err
	}

	if val, err = t.Coerce(val); err != nil {
		return nil, fmt.Errorf("%s is stored as %s: %w",
			key,
			st,
			err)
	}

	return val, nil
} // func convert(key string, st, t settings.Type, raw string) (interface{}, error)

// Backend returns settings.Legacy.
func (db *Database) Backend() settings.Backend { return settings.Legacy }

// Get returns the value stored for key, converted to t.
// If no value is stored, found is false.
func (db *Database) Get(key string, t settings.Type) (interface{}, bool, error) {
	var (
		err   error
		st    settings.Type
		raw   string
		found bool
		val   interface{}
	)

	db.lock.Lock()
	st, raw, found, err = db.loadValue(key)
	db.lock.Unlock()

	if err != nil || !found {
		return nil, false, err
	} else if val, err = convert(key, st, t, raw); err != nil {
		db.log.Printf("[ERROR] Cannot convert value of %s (%q) to %s: %s\n",
			key,
			raw,
			t,
			err.Error())
		return nil, false, err
	}

	return val, true, nil
} // func (db *Database) Get(key string, t settings.Type) (interface{}, bool, error)

// Set stores val under key.
func (db *Database) Set(key string, t settings.Type, val interface{}) error {
	var (
		err error
		raw string
	)

	if raw, err = t.Format(val); err != nil {
		db.log.Printf("[ERROR] Cannot store %#v as %s in %s: %s\n",
			val,
			t,
			key,
			err.Error())
		return err
	}

	db.lock.Lock()
	if _, err = db.exec(query.ValueSet, key, int64(t), raw); err != nil {
		db.lock.Unlock()
		return err
	}

	var changed = db.updateCache(key, observed{value: raw, present: true})
	db.lock.Unlock()

	if changed {
		db.fire(key)
	}

	return nil
} // func (db *Database) Set(key string, t settings.Type, val interface{}) error

// Unset removes the value stored for key.
func (db *Database) Unset(key string) error {
	var err error

	db.lock.Lock()
	if _, err = db.exec(query.ValueDelete, key); err != nil {
		db.lock.Unlock()
		return err
	}

	var changed = db.updateCache(key, observed{})
	db.lock.Unlock()

	if changed {
		db.fire(key)
	}

	return nil
} // func (db *Database) Unset(key string) error

// KeyGetAll returns the keys that currently have a value, sorted.
func (db *Database) KeyGetAll() ([]string, error) {
	const qid query.ID = query.ValueGetAll
	var (
		err  error
		stmt *sql.Stmt
		rows *sql.Rows
		keys []string
	)

	db.lock.Lock()
	defer db.lock.Unlock()

	if stmt, err = db.getQuery(qid); err != nil {
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return nil, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	if rows, err = stmt.Query(); err != nil {
		if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	for rows.Next() {
		var (
			key, val string
			t        settings.Type
		)

		if err = rows.Scan(&key, &t, &val); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		}

		keys = append(keys, key)
	}

	return keys, rows.Err()
} // func (db *Database) KeyGetAll() ([]string, error)
