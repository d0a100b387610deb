// /home/krylon/go/src/github.com/blicero/tweak/ui/grab.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-08 20:15:36 krylon>

package ui

import (
	"errors"
	"log"
	"time"

	"github.com/blicero/krylib"
	"github.com/blicero/tweak/accel"
	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

const popupPadding = 20

// grabHost provides the popup window and the keyboard grab for a
// KeyGrabber. Each KeyGrabber gets its own.
type grabHost struct {
	log    *log.Logger
	parent *gtk.Window
	popup  *gtk.Window
	kbd    *keyboardGrab
}

func newGrabHost(parent *gtk.Window, l *log.Logger) *grabHost {
	return &grabHost{
		log:    l,
		parent: parent,
	}
} // func newGrabHost(parent *gtk.Window, l *log.Logger) *grabHost

func (h *grabHost) OpenPopup(text string, onKey func(uint, accel.Modifier), onDestroy func()) error {
	krylib.Trace()
	var (
		err error
		win *gtk.Window
		lbl *gtk.Label
	)

	if h.popup != nil {
		return errors.New("popup is already open")
	} else if win, err = gtk.WindowNew(gtk.WINDOW_TOPLEVEL); err != nil {
		h.log.Printf("[ERROR] Cannot create popup Window: %s\n",
			err.Error())
		return err
	} else if lbl, err = gtk.LabelNew(text); err != nil {
		h.log.Printf("[ERROR] Cannot create Label for popup: %s\n",
			err.Error())
		return err
	}

	win.SetTypeHint(gdk.WINDOW_TYPE_HINT_UTILITY)
	win.SetPosition(gtk.WIN_POS_CENTER_ALWAYS)
	if h.parent != nil {
		win.SetTransientFor(h.parent)
	}
	win.SetModal(true)
	win.SetDecorated(true)
	win.SetTitle("")

	lbl.SetMarginTop(popupPadding)
	lbl.SetMarginBottom(popupPadding)
	lbl.SetMarginStart(popupPadding)
	lbl.SetMarginEnd(popupPadding)
	win.Add(lbl)

	win.AddEvents(int(gdk.KEY_PRESS_MASK))
	win.Connect("key-press-event", func(_ *gtk.Window, evt *gdk.Event) bool {
		var key = gdk.EventKeyNewFromEvent(evt)
		onKey(key.KeyVal(), accel.Modifier(key.State()))
		return true
	})

	// ClosePopup clears h.popup before destroying the window, so this
	// only fires if somebody else destroys it.
	win.Connect("destroy", func() {
		if h.popup == win {
			h.popup = nil
			onDestroy()
		}
	})

	h.popup = win
	win.ShowAll()

	return nil
} // func (h *grabHost) OpenPopup(...) error

func (h *grabHost) ClosePopup() {
	if h.popup == nil {
		return
	}

	var win = h.popup
	h.popup = nil
	win.Destroy()
} // func (h *grabHost) ClosePopup()

func (h *grabHost) Grab() bool {
	var (
		err    error
		gwin   *gdk.Window
		kbd    *keyboardGrab
		status int
	)

	if h.popup == nil {
		return false
	} else if h.kbd != nil {
		return true
	} else if gwin, err = h.popup.GetWindow(); err != nil {
		h.log.Printf("[ERROR] Popup has no GdkWindow: %s\n",
			err.Error())
		return false
	} else if kbd, status = grabKeyboard(gwin); kbd == nil {
		h.log.Printf("[TRACE] Keyboard grab failed with status %d\n",
			status)
		return false
	}

	h.kbd = kbd
	return true
} // func (h *grabHost) Grab() bool

func (h *grabHost) Ungrab() {
	h.kbd.release()
	h.kbd = nil
} // func (h *grabHost) Ungrab()

func (h *grabHost) After(d time.Duration, fn func()) func() {
	var (
		done bool
		id   glib.SourceHandle
	)

	id = glib.TimeoutAdd(uint(d/time.Millisecond), func() bool {
		done = true
		fn()
		return false
	})

	return func() {
		if !done {
			done = true
			glib.SourceRemove(id)
		}
	}
} // func (h *grabHost) After(d time.Duration, fn func()) func()
