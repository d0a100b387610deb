// /home/krylon/go/src/github.com/blicero/tweak/database/user.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-24 20:31:12 krylon>

package database

import (
	"database/sql"

	"github.com/blicero/tweak/database/query"
	"github.com/blicero/tweak/settings"
)

// Per-user values live in a table of their own. They are not observed,
// there is no notification for them.

// GetUser returns the value stored for key on behalf of user.
func (db *Database) GetUser(user, key string, t settings.Type) (interface{}, bool, error) {
	const qid query.ID = query.UserValueGet
	var (
		err  error
		stmt *sql.Stmt
		row  *sql.Row
		st   settings.Type
		raw  string
		val  interface{}
	)

	db.lock.Lock()

	if stmt, err = db.getQuery(qid); err != nil {
		db.lock.Unlock()
		db.log.Printf("[ERROR] Cannot prepare query %s: %s\n",
			qid.String(),
			err.Error())
		return nil, false, err
	} else if db.tx != nil {
		stmt = db.tx.Stmt(stmt)
	}

EXEC_QUERY:
	row = stmt.QueryRow(user, key)
	if err = row.Scan(&st, &raw); err != nil {
		if err == sql.ErrNoRows {
			db.lock.Unlock()
			return nil, false, nil
		} else if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.lock.Unlock()
		db.log.Printf("[ERROR] Cannot query %s for user %s: %s\n",
			key,
			user,
			err.Error())
		return nil, false, err
	}

	db.lock.Unlock()

	if val, err = convert(key, st, t, raw); err != nil {
		db.log.Printf("[ERROR] Cannot convert value of %s for %s (%q) to %s: %s\n",
			key,
			user,
			raw,
			t,
			err.Error())
		return nil, false, err
	}

	return val, true, nil
} // func (db *Database) GetUser(user, key string, t settings.Type) (interface{}, bool, error)

// SetUser stores val under key on behalf of user.
func (db *Database) SetUser(user, key string, t settings.Type, val interface{}) error {
	var (
		err error
		raw string
	)

	if raw, err = t.Format(val); err != nil {
		db.log.Printf("[ERROR] Cannot store %#v as %s in %s for %s: %s\n",
			val,
			t,
			key,
			user,
			err.Error())
		return err
	}

	db.lock.Lock()
	defer db.lock.Unlock()

	_, err = db.exec(query.UserValueSet, user, key, int64(t), raw)
	return err
} // func (db *Database) SetUser(user, key string, t settings.Type, val interface{}) error

// UnsetUser removes the value stored under key for user.
func (db *Database) UnsetUser(user, key string) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	var _, err = db.exec(query.UserValueDelete, user, key)
	return err
} // func (db *Database) UnsetUser(user, key string) error
