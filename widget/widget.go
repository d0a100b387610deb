// /home/krylon/go/src/github.com/blicero/tweak/widget/widget.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-03 17:52:30 krylon>

// Package widget implements controls that keep their state in sync with a
// single key in a preference backend.
//
// A control in this package does not draw anything itself. It owns a native
// control, described by one of the small interfaces below, and a
// settings.Setting, and shuffles values back and forth between the two.
// The ui package provides the native controls on top of Gtk.
package widget

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/logdomain"
	"github.com/blicero/tweak/settings"
)

// Gettext is used to translate the strings the controls display themselves.
// The GUI replaces it with the real thing.
var Gettext = func(s string) string { return s }

// ErrUnsupportedBackend is returned when a control is created for a backend
// it does not work with.
var ErrUnsupportedBackend = errors.New("unsupported backend")

// Toggle is a control with an on/off state, e.g. a check button.
type Toggle interface {
	Active() bool
	SetActive(bool)
	SetTooltip(string)
	OnToggled(func())
}

// TextField is a single line text entry.
type TextField interface {
	Text() string
	SetText(string)
	OnActivate(func())
}

// Chooser lets the user pick one of a list of items, e.g. a combo box.
// Selected returns -1 if nothing is selected.
type Chooser interface {
	Append(text string)
	Selected() int
	SetSelected(idx int)
	OnChanged(func())
}

// Range is a control for a number within bounds, e.g. a scale or a spin
// button.
type Range interface {
	SetRange(min, max float64)
	SetIncrements(step, page float64)
	SetDigits(digits int)
	Value() float64
	SetValue(float64)
	OnValueChanged(func())
}

// Button is a plain push button.
type Button interface {
	SetLabel(string)
	SetTooltip(string)
	OnClicked(func())
}

// IconButton is a Button that displays an icon.
type IconButton interface {
	Button
	SetIcon(name string)
}

// Kind identifies the type of a control.
//
//go:generate stringer -type=Kind -trimprefix=Kind
type Kind uint8

// These are the kinds of controls we have.
const (
	KindCheckButton Kind = iota
	KindStringCheckButton
	KindUserCheckButton
	KindResetButton
	KindEntry
	KindComboBox
	KindScale
	KindSpinButton
)

// capabilities lists which control works with which backend.
var capabilities = map[Kind]map[settings.Backend]bool{
	KindCheckButton:       {settings.Legacy: true, settings.Modern: true},
	KindStringCheckButton: {settings.Legacy: true, settings.Modern: true},
	KindUserCheckButton:   {settings.Legacy: true},
	KindResetButton:       {settings.Legacy: true, settings.Modern: true},
	KindEntry:             {settings.Legacy: true, settings.Modern: true},
	KindComboBox:          {settings.Legacy: true},
	KindScale:             {settings.Legacy: true},
	KindSpinButton:        {settings.Legacy: true},
}

// Supports returns true if a control of the given Kind can be used with the
// given Backend.
func Supports(k Kind, b settings.Backend) bool {
	return capabilities[k][b]
} // func Supports(k Kind, b settings.Backend) bool

func checkBackend(k Kind, c settings.Client) error {
	if c == nil {
		return fmt.Errorf("no client given for %s", k)
	} else if !Supports(k, c.Backend()) {
		return fmt.Errorf("%w %s for control kind %s",
			ErrUnsupportedBackend,
			c.Backend(),
			k)
	}

	return nil
} // func checkBackend(k Kind, c settings.Client) error

// binding is the part all bound controls share: the Setting, a logger and
// the guard that keeps us from writing back values we have just read.
type binding struct {
	kind    Kind
	setting *settings.Setting
	log     *log.Logger
	lock    sync.Mutex
	syncing bool
}

func newBinding(k Kind, c settings.Client, key string, t settings.Type, def interface{}) (*binding, error) {
	var (
		err error
		b   = &binding{kind: k}
	)

	if err = checkBackend(k, c); err != nil {
		return nil, err
	} else if b.log, err = common.GetLogger(logdomain.Widget); err != nil {
		return nil, err
	} else if b.setting, err = settings.New(c, key, t, def); err != nil {
		b.log.Printf("[ERROR] Cannot create Setting for %s: %s\n",
			key,
			err.Error())
		return nil, err
	}

	return b, nil
} // func newBinding(...) (*binding, error)

// Setting returns the Setting the control is bound to.
func (b *binding) Setting() *settings.Setting { return b.setting }

// Kind returns the Kind of the control.
func (b *binding) Kind() Kind { return b.kind }

// push runs fn with the guard up, so change events caused by fn are
// ignored.
func (b *binding) push(fn func()) {
	b.lock.Lock()
	b.syncing = true
	b.lock.Unlock()

	defer func() {
		b.lock.Lock()
		b.syncing = false
		b.lock.Unlock()
	}()

	fn()
} // func (b *binding) push(fn func())

func (b *binding) isSyncing() bool {
	b.lock.Lock()
	defer b.lock.Unlock()
	return b.syncing
} // func (b *binding) isSyncing() bool

// watch arranges for fn to be called whenever the value of the key changes.
func (b *binding) watch(fn func()) error {
	var _, err = b.setting.ConnectNotify(fn)
	if err != nil {
		b.log.Printf("[ERROR] Cannot watch %s: %s\n",
			b.setting.Key,
			err.Error())
	}
	return err
} // func (b *binding) watch(fn func()) error

// write stores val, logging failure.
func (b *binding) write(val interface{}) {
	if err := b.setting.SetValue(val); err != nil {
		b.log.Printf("[ERROR] Cannot set %s to %v: %s\n",
			b.setting.Key,
			val,
			err.Error())
	}
} // func (b *binding) write(val interface{})

// Close stops listening for changes of the key.
func (b *binding) Close() {
	b.setting.Disconnect()
} // func (b *binding) Close()
