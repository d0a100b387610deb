// /home/krylon/go/src/github.com/blicero/tweak/database/initqueries.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-23 18:16:55 krylon>

package database

var initQueries = []string{
	`
CREATE TABLE value (
    key TEXT PRIMARY KEY,
    type INTEGER NOT NULL,
    value TEXT NOT NULL,
    CHECK (type BETWEEN 0 AND 3)
)`,

	`
CREATE TABLE user_value (
    id INTEGER PRIMARY KEY,
    user TEXT NOT NULL,
    key TEXT NOT NULL,
    type INTEGER NOT NULL,
    value TEXT NOT NULL,
    UNIQUE (user, key),
    CHECK (type BETWEEN 0 AND 3)
)`,

	"CREATE INDEX user_value_user_idx ON user_value (user)",

	`
CREATE TABLE schema (
    key TEXT PRIMARY KEY,
    type INTEGER NOT NULL,
    value TEXT NOT NULL,
    summary TEXT NOT NULL DEFAULT '',
    CHECK (type BETWEEN 0 AND 3)
)`,
}
