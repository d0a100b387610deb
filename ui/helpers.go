// /home/krylon/go/src/github.com/blicero/tweak/ui/helpers.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-06 19:02:17 krylon>

package ui

import (
	"github.com/blicero/tweak/accel"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

// textRenderer packs a CellRendererText displaying column id into a
// ComboBox.
func textRenderer(combo *gtk.ComboBox, id int) (*gtk.CellRendererText, error) {
	renderer, err := gtk.CellRendererTextNew()
	if err != nil {
		return nil, err
	}

	combo.PackStart(renderer, true)
	combo.AddAttribute(renderer, "text", id)

	return renderer, nil
} // func textRenderer(combo *gtk.ComboBox, id int) (*gtk.CellRendererText, error)

// dispatch runs fn on the Gtk main loop. The legacy store uses it to call
// its listeners.
func dispatch(fn func()) {
	glib.IdleAdd(func() bool {
		fn()
		return false
	})
} // func dispatch(fn func())

// gtkAccelerators implements accel.Accelerators on top of Gtk.
type gtkAccelerators struct{}

func (gtkAccelerators) Valid(key uint, mods accel.Modifier) bool {
	return gtk.AcceleratorValid(key, gdk.ModifierType(mods))
}

func (gtkAccelerators) Name(key uint, mods accel.Modifier) string {
	return gtk.AcceleratorName(key, gdk.ModifierType(mods))
}

func (gtkAccelerators) ToLower(key uint) uint {
	return gdk.KeyvalToLower(key)
}

// parseChord turns an accelerator name like "<Primary><Alt>t" into a
// Chord. An empty or unparseable name yields the empty Chord.
func parseChord(name string) accel.Chord {
	if name == "" {
		return accel.Chord{}
	}

	var key, mods = gtk.AcceleratorParse(name)

	return accel.Chord{Key: key, Mods: accel.Modifier(mods)}
} // func parseChord(name string) accel.Chord
