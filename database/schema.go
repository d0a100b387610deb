// /home/krylon/go/src/github.com/blicero/tweak/database/schema.go
// -*- mode: go; coding: utf-8; -*-
// Created on 24. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-25 15:07:48 krylon>

package database

import (
	"database/sql"
	"fmt"

	"github.com/blicero/tweak/database/query"
	"github.com/blicero/tweak/settings"
)

// SchemaLoad adds the given entries to the schema table, replacing entries
// for keys that are already known. All entries are stored in one
// transaction, if one of them fails, none are stored.
func (db *Database) SchemaLoad(entries []settings.SchemaEntry) error {
	var (
		err     error
		adHoc   bool
		success bool
	)

	db.lock.Lock()
	defer db.lock.Unlock()

	if db.db == nil {
		return ErrClosed
	} else if db.tx == nil {
		adHoc = true
	BEGIN_TX:
		if db.tx, err = db.db.Begin(); err != nil {
			if worthARetry(err) {
				waitForRetry()
				goto BEGIN_TX
			}

			db.log.Printf("[ERROR] Cannot start transaction: %s\n",
				err.Error())
			return err
		}

		defer func() {
			var err2 error
			if success {
				if err2 = db.tx.Commit(); err2 != nil {
					db.log.Printf("[ERROR] Failed to commit schema: %s\n",
						err2.Error())
				}
			} else if err2 = db.tx.Rollback(); err2 != nil {
				db.log.Printf("[ERROR] Rollback of schema transaction failed: %s\n",
					err2.Error())
			}
			db.tx = nil
		}()
	}

	for _, e := range entries {
		var raw string

		if raw, err = e.Type.Format(e.Default); err != nil {
			db.log.Printf("[ERROR] Invalid default for %s: %s\n",
				e.Key,
				err.Error())
			return fmt.Errorf("invalid default for %s: %w", e.Key, err)
		} else if _, err = db.exec(query.SchemaAdd, e.Key, int64(e.Type), raw, e.Summary); err != nil {
			return err
		}
	}

	success = true

	if adHoc {
		db.log.Printf("[DEBUG] Loaded %d schema entries\n", len(entries))
	}

	return nil
} // func (db *Database) SchemaLoad(entries []settings.SchemaEntry) error

// SchemaGet returns the schema entry for key.
func (db *Database) SchemaGet(key string) (*settings.SchemaEntry, error) {
	const qid query.ID = query.SchemaGet
	var (
		err  error
		stmt *sql.Stmt
		row  *sql.Row
		raw  string
		e    = &settings.SchemaEntry{Key: key}
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
	row = stmt.QueryRow(key)
	if err = row.Scan(&e.Type, &raw, &e.Summary); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", settings.ErrNoSchema, key)
		} else if worthARetry(err) {
			waitForRetry()
			goto EXEC_QUERY
		}

		db.log.Printf("[ERROR] Cannot query schema for %s: %s\n",
			key,
			err.Error())
		return nil, err
	} else if e.Default, err = e.Type.Parse(raw); err != nil {
		db.log.Printf("[ERROR] Invalid default for %s in schema table (%q): %s\n",
			key,
			raw,
			err.Error())
		return nil, err
	}

	return e, nil
} // func (db *Database) SchemaGet(key string) (*settings.SchemaEntry, error)

// SchemaGetAll returns all schema entries, ordered by key.
func (db *Database) SchemaGetAll() ([]settings.SchemaEntry, error) {
	const qid query.ID = query.SchemaGetAll
	var (
		err     error
		stmt    *sql.Stmt
		rows    *sql.Rows
		entries []settings.SchemaEntry
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

		db.log.Printf("[ERROR] Cannot query schema: %s\n", err.Error())
		return nil, err
	}

	defer rows.Close() // nolint: errcheck

	for rows.Next() {
		var (
			raw string
			e   settings.SchemaEntry
		)

		if err = rows.Scan(&e.Key, &e.Type, &raw, &e.Summary); err != nil {
			db.log.Printf("[ERROR] Cannot scan row: %s\n", err.Error())
			return nil, err
		} else if e.Default, err = e.Type.Parse(raw); err != nil {
			db.log.Printf("[ERROR] Invalid default for %s in schema table (%q): %s\n",
				e.Key,
				raw,
				err.Error())
			return nil, err
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
} // func (db *Database) SchemaGetAll() ([]settings.SchemaEntry, error)

// SchemaDefault returns the default value of key, converted to t.
func (db *Database) SchemaDefault(key string, t settings.Type) (interface{}, error) {
	var (
		err error
		e   *settings.SchemaEntry
	)

	if e, err = db.SchemaGet(key); err != nil {
		return nil, err
	}

	return t.Coerce(e.Default)
} // func (db *Database) SchemaDefault(key string, t settings.Type) (interface{}, error)
