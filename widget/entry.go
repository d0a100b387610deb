// /home/krylon/go/src/github.com/blicero/tweak/widget/entry.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-02 15:40:08 krylon>

package widget

import (
	"github.com/blicero/tweak/settings"
)

// Entry binds a TextField to a string key. A key without a value is
// displayed as "Unset", even if it has a default, activating the field while
// it is empty unsets the key.
type Entry struct {
	*binding
	native TextField
}

// NewEntry creates an Entry.
func NewEntry(native TextField, c settings.Client, key string, def interface{}) (*Entry, error) {
	var (
		err error
		e   = &Entry{native: native}
	)

	if e.binding, err = newBinding(KindEntry, c, key, settings.String, def); err != nil {
		return nil, err
	}

	e.update()
	native.OnActivate(e.activated)

	if err = e.watch(e.update); err != nil {
		return nil, err
	}

	return e, nil
} // func NewEntry(...) (*Entry, error)

// Unset returns the text displayed for a key without a value.
func Unset() string { return Gettext("Unset") }

// stored returns the value stored for the key, or "" if there is none.
// Defaults are not displayed, a key without a value always shows Unset.
func (e *Entry) stored() string {
	if set, err := e.setting.IsSet(); err != nil {
		e.log.Printf("[ERROR] Cannot check if %s is set: %s\n",
			e.setting.Key,
			err.Error())
		return ""
	} else if !set {
		return ""
	}

	return e.setting.Str()
} // func (e *Entry) stored() string

func (e *Entry) update() {
	var text = e.stored()

	if text == "" {
		text = Unset()
	}

	e.push(func() { e.native.SetText(text) })
} // func (e *Entry) update()

// IsChanged returns true if the text in the field differs from the value
// stored for the key.
func (e *Entry) IsChanged() bool {
	var text = e.native.Text()

	if text == Unset() {
		text = ""
	}

	return text != e.stored()
} // func (e *Entry) IsChanged() bool

func (e *Entry) activated() {
	if e.isSyncing() {
		return
	}

	var text = e.native.Text()

	if text != "" && text != Unset() {
		e.write(text)
		return
	}

	if err := e.setting.Unset(); err != nil {
		e.log.Printf("[ERROR] Cannot unset %s: %s\n",
			e.setting.Key,
			err.Error())
	}

	e.update()
} // func (e *Entry) activated()
