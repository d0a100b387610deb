// /home/krylon/go/src/github.com/blicero/tweak/ui/native.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-07 18:44:20 krylon>

package ui

import (
	"log"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

// The types in this file wrap Gtk widgets so the controls in the widget
// package can use them.

type checkNative struct {
	*gtk.CheckButton
}

func newCheckNative(label string) (*checkNative, error) {
	var cb, err = gtk.CheckButtonNewWithLabel(label)
	if err != nil {
		return nil, err
	}
	return &checkNative{cb}, nil
} // func newCheckNative(label string) (*checkNative, error)

func (c *checkNative) Active() bool          { return c.GetActive() }
func (c *checkNative) SetTooltip(tip string) { c.SetTooltipText(tip) }
func (c *checkNative) OnToggled(fn func())   { c.Connect("toggled", fn) }

type entryNative struct {
	*gtk.Entry
}

func newEntryNative() (*entryNative, error) {
	var e, err = gtk.EntryNew()
	if err != nil {
		return nil, err
	}
	return &entryNative{e}, nil
} // func newEntryNative() (*entryNative, error)

func (e *entryNative) Text() string {
	var txt, _ = e.GetText()
	return txt
} // func (e *entryNative) Text() string

func (e *entryNative) OnActivate(fn func()) { e.Connect("activate", fn) }

// comboNative is a ComboBox with a one-column ListStore holding the texts.
type comboNative struct {
	*gtk.ComboBox
	store *gtk.ListStore
}

func newComboNative() (*comboNative, error) {
	var (
		err error
		c   = new(comboNative)
	)

	if c.store, err = gtk.ListStoreNew(glib.TYPE_STRING); err != nil {
		return nil, err
	} else if c.ComboBox, err = gtk.ComboBoxNewWithModel(c.store); err != nil {
		return nil, err
	} else if _, err = textRenderer(c.ComboBox, 0); err != nil {
		return nil, err
	}

	return c, nil
} // func newComboNative() (*comboNative, error)

func (c *comboNative) Append(text string) {
	var iter = c.store.Append()
	c.store.SetValue(iter, 0, text) // nolint: errcheck
} // func (c *comboNative) Append(text string)

func (c *comboNative) Selected() int       { return c.GetActive() }
func (c *comboNative) SetSelected(idx int) { c.SetActive(idx) }
func (c *comboNative) OnChanged(fn func()) { c.Connect("changed", fn) }

// gtk.Scale has no setter for the number of digits, it is set through the
// "digits" property.
type scaleNative struct {
	*gtk.Scale
	log *log.Logger
}

func newScaleNative(l *log.Logger) (*scaleNative, error) {
	var s, err = gtk.ScaleNewWithRange(gtk.ORIENTATION_HORIZONTAL, 0, 100, 1)
	if err != nil {
		return nil, err
	}
	s.SetDrawValue(true)
	s.SetHExpand(true)
	return &scaleNative{Scale: s, log: l}, nil
} // func newScaleNative(l *log.Logger) (*scaleNative, error)

func (s *scaleNative) Value() float64           { return s.GetValue() }
func (s *scaleNative) OnValueChanged(fn func()) { s.Connect("value-changed", fn) }

func (s *scaleNative) SetDigits(digits int) {
	if err := s.SetProperty("digits", digits); err != nil {
		s.log.Printf("[ERROR] Cannot set digits of Scale to %d: %s\n",
			digits,
			err.Error())
	}
} // func (s *scaleNative) SetDigits(digits int)

// Digits returns the number of decimal places the Scale displays.
func (s *scaleNative) Digits() int {
	var val, err = s.GetProperty("digits")
	if err != nil {
		s.log.Printf("[ERROR] Cannot get digits of Scale: %s\n",
			err.Error())
		return -1
	} else if d, ok := val.(int); ok {
		return d
	}
	return -1
} // func (s *scaleNative) Digits() int

type spinNative struct {
	*gtk.SpinButton
}

func newSpinNative() (*spinNative, error) {
	var s, err = gtk.SpinButtonNewWithRange(0, 100, 1)
	if err != nil {
		return nil, err
	}
	return &spinNative{s}, nil
} // func newSpinNative() (*spinNative, error)

func (s *spinNative) Value() float64           { return s.GetValue() }
func (s *spinNative) SetDigits(digits int)     { s.SpinButton.SetDigits(uint(digits)) }
func (s *spinNative) OnValueChanged(fn func()) { s.Connect("value-changed", fn) }

type buttonNative struct {
	*gtk.Button
}

func newButtonNative() (*buttonNative, error) {
	var b, err = gtk.ButtonNew()
	if err != nil {
		return nil, err
	}
	return &buttonNative{b}, nil
} // func newButtonNative() (*buttonNative, error)

func (b *buttonNative) SetTooltip(tip string) { b.SetTooltipText(tip) }
func (b *buttonNative) OnClicked(fn func())   { b.Connect("clicked", fn) }

func (b *buttonNative) SetIcon(name string) {
	var img, err = gtk.ImageNewFromIconName(name, gtk.ICON_SIZE_MENU)
	if err != nil {
		return
	}
	b.SetImage(img)
} // func (b *buttonNative) SetIcon(name string)
