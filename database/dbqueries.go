// /home/krylon/go/src/github.com/blicero/tweak/database/dbqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-23 18:20:03 krylon>

package database

import "github.com/blicero/tweak/database/query"

var dbQueries = map[query.ID]string{
	query.ValueGet:    "SELECT type, value FROM value WHERE key = ?",
	query.ValueGetAll: "SELECT key, type, value FROM value ORDER BY key",
	query.ValueSet: `
INSERT INTO value (key, type, value)
VALUES            (  ?,    ?,     ?)
ON CONFLICT(key) DO UPDATE SET type = excluded.type, value = excluded.value
`,
	query.ValueDelete:  "DELETE FROM value WHERE key = ?",
	query.UserValueGet: "SELECT type, value FROM user_value WHERE user = ? AND key = ?",
	query.UserValueSet: `
INSERT INTO user_value (user, key, type, value)
VALUES                 (   ?,   ?,    ?,     ?)
ON CONFLICT(user, key) DO UPDATE SET type = excluded.type, value = excluded.value
`,
	query.UserValueDelete: "DELETE FROM user_value WHERE user = ? AND key = ?",
	query.SchemaAdd: `
INSERT INTO schema (key, type, value, summary)
VALUES             (  ?,    ?,     ?,       ?)
ON CONFLICT(key) DO UPDATE SET
    type = excluded.type,
    value = excluded.value,
    summary = excluded.summary
`,
	query.SchemaGet:    "SELECT type, value, summary FROM schema WHERE key = ?",
	query.SchemaGetAll: "SELECT key, type, value, summary FROM schema ORDER BY key",
}
