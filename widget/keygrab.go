// /home/krylon/go/src/github.com/blicero/tweak/widget/keygrab.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-04 19:37:02 krylon>

package widget

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/blicero/tweak/accel"
	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/logdomain"
	"github.com/blicero/tweak/signal"
)

// ErrGrabTimeout is emitted through KeyGrabber.GrabFailed if we could not
// get hold of the keyboard in time.
var ErrGrabTimeout = errors.New("timed out waiting for keyboard grab")

// GrabState is the state a KeyGrabber is in.
type GrabState uint8

// Idle means the KeyGrabber shows its chord and waits to be clicked,
// Grabbing means the popup is open and we wait for a key press.
const (
	Idle GrabState = iota
	Grabbing
)

func (s GrabState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Grabbing:
		return "Grabbing"
	default:
		return fmt.Sprintf("GrabState(%d)", uint8(s))
	}
} // func (s GrabState) String() string

// GrabHost is the part of the toolkit a KeyGrabber needs to capture a key
// chord. All methods are called on the main loop, and the callbacks passed
// in must be called there, too.
type GrabHost interface {
	// OpenPopup shows the popup that asks the user to press a key.
	// onKey is called for every key pressed while the popup is open,
	// onDestroy if the popup is destroyed by anyone but ClosePopup.
	OpenPopup(text string, onKey func(key uint, mods accel.Modifier), onDestroy func()) error
	// ClosePopup destroys the popup.
	ClosePopup()
	// Grab tries once to grab the keyboard for the popup.
	Grab() bool
	// Ungrab releases the keyboard.
	Ungrab()
	// After calls fn after d has passed. The returned function cancels
	// the call if it has not happened, yet.
	After(d time.Duration, fn func()) (cancel func())
}

// GrabOptions control how hard a KeyGrabber tries to grab the keyboard.
type GrabOptions struct {
	Timeout       time.Duration
	RetryInterval time.Duration
}

// DefaultGrabOptions are used when a KeyGrabber is given zero GrabOptions.
var DefaultGrabOptions = GrabOptions{
	Timeout:       2 * time.Second,
	RetryInterval: 100 * time.Millisecond,
}

func (o GrabOptions) maxAttempts() int {
	var n = int(o.Timeout / o.RetryInterval)

	if n < 1 {
		return 1
	}

	return n
} // func (o GrabOptions) maxAttempts() int

// KeyGrabber is a button that lets the user pick a key chord. When clicked,
// it opens a popup, grabs the keyboard and waits for a valid accelerator.
//
// Changed is emitted when a chord is committed, or with the previous
// chord when the user cancels with Escape. CurrentChanged is emitted for
// every other key press with the chord as it stands. GrabFailed is emitted
// if the keyboard could not be grabbed.
//
// A KeyGrabber must only be used from the main loop.
type KeyGrabber struct {
	Changed        signal.Signal[accel.Chord]
	CurrentChanged signal.Signal[accel.Chord]
	GrabFailed     signal.Signal[error]

	log      *log.Logger
	native   Button
	host     GrabHost
	acc      accel.Accelerators
	opt      GrabOptions
	chord    accel.Chord
	label    string
	state    GrabState
	popup    bool
	grabbed  bool
	attempts int
	cancel   func()
}

// NewKeyGrabber creates a KeyGrabber showing chord. If label is not empty,
// the button always displays label instead of the chord. acc may be nil, in
// which case accel.Default is used.
func NewKeyGrabber(native Button, host GrabHost, acc accel.Accelerators, chord accel.Chord, label string, opt GrabOptions) (*KeyGrabber, error) {
	var (
		err error
		kg  = &KeyGrabber{
			native: native,
			host:   host,
			acc:    acc,
			opt:    opt,
			chord:  chord,
			label:  label,
		}
	)

	if native == nil || host == nil {
		return nil, errors.New("KeyGrabber needs a button and a host")
	} else if kg.log, err = common.GetLogger(logdomain.KeyGrab); err != nil {
		return nil, err
	}

	if kg.acc == nil {
		kg.acc = accel.Default
	}

	if kg.opt.Timeout <= 0 {
		kg.opt.Timeout = DefaultGrabOptions.Timeout
	}

	if kg.opt.RetryInterval <= 0 {
		kg.opt.RetryInterval = DefaultGrabOptions.RetryInterval
	}

	kg.setLabel(chord)
	native.OnClicked(kg.Begin)

	return kg, nil
} // func NewKeyGrabber(...) (*KeyGrabber, error)

// State returns the current state.
func (kg *KeyGrabber) State() GrabState { return kg.state }

// Chord returns the last committed chord.
func (kg *KeyGrabber) Chord() accel.Chord { return kg.chord }

// SetChord replaces the chord without emitting any signal.
func (kg *KeyGrabber) SetChord(c accel.Chord) {
	kg.chord = c
	if kg.state == Idle {
		kg.setLabel(c)
	}
} // func (kg *KeyGrabber) SetChord(c accel.Chord)

// IsGrabbed returns true while we hold the keyboard grab.
func (kg *KeyGrabber) IsGrabbed() bool { return kg.grabbed }

// Begin opens the popup and starts grabbing the keyboard. It is what
// happens when the button is clicked.
func (kg *KeyGrabber) Begin() {
	var err error

	if kg.state != Idle {
		kg.log.Printf("[DEBUG] Begin called while %s\n", kg.state)
		return
	}

	kg.state = Grabbing
	kg.attempts = 0

	if err = kg.host.OpenPopup(Gettext("Please press the new key combination"),
		kg.keyPressed,
		kg.popupDestroyed); err != nil {
		kg.log.Printf("[ERROR] Cannot open popup: %s\n", err.Error())
		kg.state = Idle
		kg.GrabFailed.Emit(err)
		return
	}

	kg.popup = true
	kg.tryGrab()
} // func (kg *KeyGrabber) Begin()

// tryGrab attempts to grab the keyboard and schedules another attempt if
// that fails, until we run out of time.
func (kg *KeyGrabber) tryGrab() {
	kg.cancel = nil

	if kg.state != Grabbing || kg.grabbed {
		return
	} else if kg.host.Grab() {
		kg.grabbed = true
		kg.log.Printf("[TRACE] Got keyboard after %d failed attempt(s)\n",
			kg.attempts)
		return
	}

	kg.attempts++

	if kg.attempts >= kg.opt.maxAttempts() {
		kg.log.Printf("[ERROR] Could not grab keyboard after %d attempts\n",
			kg.attempts)
		kg.end()
		kg.setLabel(kg.chord)
		kg.GrabFailed.Emit(ErrGrabTimeout)
		return
	}

	kg.cancel = kg.host.After(kg.opt.RetryInterval, kg.tryGrab)
} // func (kg *KeyGrabber) tryGrab()

// end releases everything we acquired in Begin and returns to Idle.
// The state changes first, so a destroy notification caused by closing the
// popup finds us Idle.
func (kg *KeyGrabber) end() {
	kg.state = Idle

	if kg.cancel != nil {
		kg.cancel()
		kg.cancel = nil
	}

	if kg.grabbed {
		kg.host.Ungrab()
		kg.grabbed = false
	}

	if kg.popup {
		kg.popup = false
		kg.host.ClosePopup()
	}
} // func (kg *KeyGrabber) end()

func (kg *KeyGrabber) popupDestroyed() {
	kg.popup = false

	if kg.state == Grabbing {
		kg.log.Println("[DEBUG] Popup was destroyed while grabbing")
		kg.end()
		kg.setLabel(kg.chord)
	}
} // func (kg *KeyGrabber) popupDestroyed()

func (kg *KeyGrabber) keyPressed(key uint, mods accel.Modifier) {
	if kg.state != Grabbing {
		return
	}

	mods &= accel.DefaultModMask

	if (key == accel.KeyEscape || key == accel.KeyReturn) && mods == 0 {
		kg.end()
		kg.setLabel(kg.chord)
		if key == accel.KeyEscape {
			kg.Changed.Emit(kg.chord)
		}
		return
	}

	key = kg.acc.ToLower(key)
	if key == accel.KeyISOLeftTab {
		key = accel.KeyTab
	}

	var c = accel.Chord{Key: key, Mods: mods}

	kg.CurrentChanged.Emit(c)
	kg.setLabel(c)

	if kg.acc.Valid(key, mods) || (key == accel.KeyTab && mods != 0) {
		kg.end()
		kg.chord = c
		kg.log.Printf("[DEBUG] New key chord: %s\n",
			kg.acc.Name(c.Key, c.Mods))
		kg.Changed.Emit(c)
	}
} // func (kg *KeyGrabber) keyPressed(key uint, mods accel.Modifier)

func (kg *KeyGrabber) setLabel(c accel.Chord) {
	if kg.label != "" {
		kg.native.SetLabel(kg.label)
		return
	}

	var name = kg.acc.Name(c.Key, c.Mods)

	if name == "" {
		name = Gettext("Disabled")
	}

	kg.native.SetLabel(name)
} // func (kg *KeyGrabber) setLabel(c accel.Chord)

// Dispose releases the keyboard and closes the popup if we are grabbing,
// and disconnects all handlers.
func (kg *KeyGrabber) Dispose() {
	if kg.state == Grabbing {
		kg.end()
	}

	kg.Changed.Clear()
	kg.CurrentChanged.Clear()
	kg.GrabFailed.Clear()
} // func (kg *KeyGrabber) Dispose()
