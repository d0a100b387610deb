// /home/krylon/go/src/github.com/blicero/tweak/database/03_schema_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 26. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-26 15:01:44 krylon>

package database

import (
	"errors"
	"strings"
	"testing"

	"github.com/blicero/tweak/settings"
)

const schemaText = `
/apps/tweak/theme       string "Ambiance"  "Name of the theme"
/apps/tweak/icon_size   int    32
/apps/tweak/use_compiz  bool   false
`

func TestSchemaLoad(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var entries, err = settings.ParseSchema(strings.NewReader(schemaText))

	if err != nil {
		t.Fatalf("Cannot parse schema: %s", err.Error())
	} else if err = tdb.SchemaLoad(entries); err != nil {
		t.Fatalf("Cannot load schema: %s", err.Error())
	}

	// Loading twice replaces
	entries[1].Default = int64(24)
	if err = tdb.SchemaLoad(entries); err != nil {
		t.Fatalf("Cannot load schema a second time: %s", err.Error())
	}

	var all []settings.SchemaEntry
	if all, err = tdb.SchemaGetAll(); err != nil {
		t.Fatalf("SchemaGetAll failed: %s", err.Error())
	} else if len(all) != 3 {
		t.Fatalf("Unexpected number of schema entries: %d (expected 3)", len(all))
	}
} // func TestSchemaLoad(t *testing.T)

func TestSchemaDefault(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	if val, err := tdb.SchemaDefault("/apps/tweak/icon_size", settings.Int); err != nil {
		t.Fatalf("Cannot get schema default: %s", err.Error())
	} else if val != int64(24) {
		t.Errorf("Unexpected schema default for icon_size: %#v", val)
	}

	if e, err := tdb.SchemaGet("/apps/tweak/theme"); err != nil {
		t.Fatalf("Cannot get schema entry: %s", err.Error())
	} else if e.Summary != "Name of the theme" || e.Default != "Ambiance" {
		t.Errorf("Unexpected schema entry: %#v", e)
	}

	if _, err := tdb.SchemaDefault("/apps/tweak/nope", settings.Bool); !errors.Is(err, settings.ErrNoSchema) {
		t.Errorf("Expected ErrNoSchema for unknown key, got %v", err)
	}
} // func TestSchemaDefault(t *testing.T)

func TestSettingOnDatabase(t *testing.T) {
	if tdb == nil {
		t.SkipNow()
	}

	var (
		err error
		s   *settings.Setting
	)

	// theme was unset by TestValueUnset, so we get the schema default.
	if s, err = settings.New(tdb, "/apps/tweak/theme", settings.String, nil); err != nil {
		t.Fatalf("Cannot create Setting: %s", err.Error())
	} else if s.Str() != "Ambiance" {
		t.Errorf("Expected schema default Ambiance, got %q", s.Str())
	} else if err = s.SetValue("Radiance"); err != nil {
		t.Fatalf("Cannot set theme: %s", err.Error())
	} else if s.Str() != "Radiance" {
		t.Errorf("Expected Radiance, got %q", s.Str())
	}
} // func TestSettingOnDatabase(t *testing.T)
