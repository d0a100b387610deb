// /home/krylon/go/src/github.com/blicero/tweak/ui/seat.go
// -*- mode: go; coding: utf-8; -*-
// Created on 12. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-12 21:37:02 krylon>

package ui

// gotk3 does not wrap gdk_seat_grab/gdk_seat_ungrab, so we call them
// ourselves.

// #cgo pkg-config: gdk-3.0
// #include <gdk/gdk.h>
import "C"

import (
	"unsafe"

	"github.com/gotk3/gotk3/gdk"
)

// keyboardGrab is a keyboard grab held on a seat. The seat belongs to the
// display, we do not hold a reference to it.
type keyboardGrab struct {
	seat *C.GdkSeat
}

// grabKeyboard grabs the keyboard of the default seat of the display win
// is on. If the grab is refused, it returns nil and the GdkGrabStatus.
func grabKeyboard(win *gdk.Window) (*keyboardGrab, int) {
	var (
		gwin   = (*C.GdkWindow)(unsafe.Pointer(win.Native()))
		disp   *C.GdkDisplay
		seat   *C.GdkSeat
		status C.GdkGrabStatus
	)

	if disp = C.gdk_window_get_display(gwin); disp == nil {
		return nil, int(C.GDK_GRAB_NOT_VIEWABLE)
	} else if seat = C.gdk_display_get_default_seat(disp); seat == nil {
		return nil, int(C.GDK_GRAB_NOT_VIEWABLE)
	}

	status = C.gdk_seat_grab(seat,
		gwin,
		C.GDK_SEAT_CAPABILITY_KEYBOARD,
		C.gboolean(1),
		nil,
		nil,
		nil,
		nil)

	if status != C.GDK_GRAB_SUCCESS {
		return nil, int(status)
	}

	return &keyboardGrab{seat: seat}, int(status)
} // func grabKeyboard(win *gdk.Window) (*keyboardGrab, int)

// release gives up the grab. Calling it more than once is harmless.
func (g *keyboardGrab) release() {
	if g == nil || g.seat == nil {
		return
	}

	C.gdk_seat_ungrab(g.seat)
	g.seat = nil
} // func (g *keyboardGrab) release()
