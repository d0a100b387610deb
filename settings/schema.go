// /home/krylon/go/src/github.com/blicero/tweak/settings/schema.go
// -*- mode: go; coding: utf-8; -*-
// Created on 21. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-22 20:58:31 krylon>

package settings

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/anmitsu/go-shlex"
)

// SchemaEntry declares the type and default value of a key.
type SchemaEntry struct {
	Key     string
	Type    Type
	Default interface{}
	Summary string
}

// ParseSchema reads schema entries, one per line:
//
//	KEY TYPE DEFAULT [SUMMARY]
//
// Fields are split the way a POSIX shell would split them, so values with
// blanks need quoting. Empty lines and lines starting with # are skipped.
func ParseSchema(r io.Reader) ([]SchemaEntry, error) {
	var (
		lineNo  int
		entries []SchemaEntry
		scanner = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		var (
			err    error
			fields []string
			entry  SchemaEntry
			line   = strings.TrimSpace(scanner.Text())
		)

		lineNo++

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		} else if fields, err = shlex.Split(line, true); err != nil {
			return nil, fmt.Errorf("schema line %d: %s", lineNo, err.Error())
		} else if len(fields) < 3 || len(fields) > 4 {
			return nil, fmt.Errorf("schema line %d: expected 3 or 4 fields, got %d",
				lineNo,
				len(fields))
		}

		entry.Key = fields[0]

		if entry.Type, err = ParseType(fields[1]); err != nil {
			return nil, fmt.Errorf("schema line %d: %w", lineNo, err)
		} else if entry.Default, err = entry.Type.Parse(fields[2]); err != nil {
			return nil, fmt.Errorf("schema line %d: invalid default %q for %s: %s",
				lineNo,
				fields[2],
				entry.Type,
				err.Error())
		}

		if len(fields) == 4 {
			entry.Summary = fields[3]
		}

		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
} // func ParseSchema(r io.Reader) ([]SchemaEntry, error)

// Schema is a registry of SchemaEntries, indexed by key.
type Schema struct {
	lock    sync.RWMutex
	entries map[string]SchemaEntry
}

// NewSchema creates a Schema from a list of entries. Later entries for the
// same key replace earlier ones.
func NewSchema(entries []SchemaEntry) *Schema {
	var s = &Schema{entries: make(map[string]SchemaEntry, len(entries))}
	s.Add(entries...)
	return s
} // func NewSchema(entries []SchemaEntry) *Schema

// Add adds entries to the Schema.
func (s *Schema) Add(entries ...SchemaEntry) {
	s.lock.Lock()
	for _, e := range entries {
		s.entries[e.Key] = e
	}
	s.lock.Unlock()
} // func (s *Schema) Add(entries ...SchemaEntry)

// Lookup returns the entry for key.
func (s *Schema) Lookup(key string) (SchemaEntry, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	var e, ok = s.entries[key]
	return e, ok
} // func (s *Schema) Lookup(key string) (SchemaEntry, bool)

// Default returns the schema default of key, converted to t.
func (s *Schema) Default(key string, t Type) (interface{}, error) {
	var e, ok = s.Lookup(key)

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoSchema, key)
	}

	return t.Coerce(e.Default)
} // func (s *Schema) Default(key string, t Type) (interface{}, error)

// Keys returns all keys in the Schema, sorted.
func (s *Schema) Keys() []string {
	s.lock.RLock()
	var keys = make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	s.lock.RUnlock()

	sort.Strings(keys)
	return keys
} // func (s *Schema) Keys() []string
