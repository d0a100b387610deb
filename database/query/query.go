// /home/krylon/go/src/github.com/blicero/tweak/database/query/query.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-23 18:12:40 krylon>

//go:generate stringer -type=ID

// Package query provides symbolic constants for the various queries we are
// going to run on the database.
package query

// ID represents a specific database query.
type ID uint8

const (
	ValueGet ID = iota
	ValueGetAll
	ValueSet
	ValueDelete
	UserValueGet
	UserValueSet
	UserValueDelete
	SchemaAdd
	SchemaGet
	SchemaGetAll
)
