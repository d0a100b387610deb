// /home/krylon/go/src/github.com/blicero/tweak/accel/accel.go
// -*- mode: go; coding: utf-8; -*-
// Created on 29. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-01 21:03:49 krylon>

// Package accel deals with key chords, i.e. a key plus a set of modifiers.
// The constants have the same values as their GDK counterparts, so they can
// be passed back and forth without conversion.
package accel

import (
	"fmt"
	"strings"
)

// Modifier is a bitmask of modifier keys, it matches GdkModifierType.
type Modifier uint

// These are the modifiers GDK knows about.
const (
	Shift   Modifier = 1 << 0
	Lock    Modifier = 1 << 1
	Control Modifier = 1 << 2
	Mod1    Modifier = 1 << 3
	Mod2    Modifier = 1 << 4
	Mod3    Modifier = 1 << 5
	Mod4    Modifier = 1 << 6
	Mod5    Modifier = 1 << 7
	Super   Modifier = 1 << 26
	Hyper   Modifier = 1 << 27
	Meta    Modifier = 1 << 28
	Release Modifier = 1 << 30

	// Alt is what most keyboards put on Mod1.
	Alt = Mod1

	// ModifierMask covers every modifier bit.
	ModifierMask Modifier = 0x5c001fff

	// DefaultModMask is the set of modifiers that matter for accelerators,
	// the same as gtk_accelerator_get_default_mod_mask. Lock and NumLock
	// (Mod2) are not part of it.
	DefaultModMask = Shift | Control | Mod1 | Super | Hyper | Meta
)

// Key symbols the grabber cares about.
const (
	KeySpace       uint = 0x020
	KeyTab         uint = 0xff09
	KeyReturn      uint = 0xff0d
	KeyEscape      uint = 0xff1b
	KeyDelete      uint = 0xffff
	KeyBackSpace   uint = 0xff08
	KeyHome        uint = 0xff50
	KeyLeft        uint = 0xff51
	KeyUp          uint = 0xff52
	KeyRight       uint = 0xff53
	KeyDown        uint = 0xff54
	KeyPageUp      uint = 0xff55
	KeyPageDown    uint = 0xff56
	KeyEnd         uint = 0xff57
	KeyInsert      uint = 0xff63
	KeyMultiKey    uint = 0xff20
	KeyModeSwitch  uint = 0xff7e
	KeyNumLock     uint = 0xff7f
	KeyKPTab       uint = 0xff89
	KeyKPLeft      uint = 0xff96
	KeyKPUp        uint = 0xff97
	KeyKPRight     uint = 0xff98
	KeyKPDown      uint = 0xff99
	KeyF1          uint = 0xffbe
	KeyF12         uint = 0xffc9
	KeyShiftL      uint = 0xffe1
	KeyShiftR      uint = 0xffe2
	KeyControlL    uint = 0xffe3
	KeyControlR    uint = 0xffe4
	KeyCapsLock    uint = 0xffe5
	KeyShiftLock   uint = 0xffe6
	KeyMetaL       uint = 0xffe7
	KeyMetaR       uint = 0xffe8
	KeyAltL        uint = 0xffe9
	KeyAltR        uint = 0xffea
	KeySuperL      uint = 0xffeb
	KeySuperR      uint = 0xffec
	KeyHyperL      uint = 0xffed
	KeyHyperR      uint = 0xffee
	KeyISOLock     uint = 0xfe01
	KeyISOLevel3   uint = 0xfe03
	KeyISONextGrp  uint = 0xfe08
	KeyISOPrevGrp  uint = 0xfe0a
	KeyISOFirstGrp uint = 0xfe0c
	KeyISOLastGrp  uint = 0xfe0e
	KeyISOLeftTab  uint = 0xfe20
	KeyScrollLock  uint = 0xff14
	KeySysReq      uint = 0xff15
	KeyTerminate   uint = 0xfed5
	KeyBellEnable  uint = 0xfe7a
	KeyFirstScreen uint = 0xfed0
	KeyPrevScreen  uint = 0xfed1
	KeyNextScreen  uint = 0xfed2
	KeyLastScreen  uint = 0xfed4
)

// Chord is a key together with the modifiers held down while pressing it.
type Chord struct {
	Key  uint
	Mods Modifier
}

// IsEmpty returns true if the Chord does not have a key.
func (c Chord) IsEmpty() bool { return c.Key == 0 }

func (c Chord) String() string {
	return Default.Name(c.Key, c.Mods)
} // func (c Chord) String() string

// Accelerators validates and names chords. The Gtk front end has an
// implementation backed by the real thing.
type Accelerators interface {
	Valid(key uint, mods Modifier) bool
	Name(key uint, mods Modifier) string
	ToLower(key uint) uint
}

// Default implements Accelerators without talking to Gtk, following the
// rules of Gtk 3.
var Default Accelerators = builtin{}

type builtin struct{}

var invalidKeys = map[uint]bool{
	KeyShiftL: true, KeyShiftR: true, KeyShiftLock: true, KeyCapsLock: true,
	KeyISOLock: true, KeyControlL: true, KeyControlR: true, KeyMetaL: true,
	KeyMetaR: true, KeyAltL: true, KeyAltR: true, KeySuperL: true,
	KeySuperR: true, KeyHyperL: true, KeyHyperR: true, KeyISOLevel3: true,
	KeyISONextGrp: true, KeyISOPrevGrp: true, KeyISOFirstGrp: true,
	KeyISOLastGrp: true, KeyModeSwitch: true, KeyNumLock: true,
	KeyMultiKey: true, KeyScrollLock: true, KeySysReq: true, KeyTab: true,
	KeyISOLeftTab: true, KeyKPTab: true, KeyFirstScreen: true,
	KeyPrevScreen: true, KeyNextScreen: true, KeyLastScreen: true,
	KeyTerminate: true, KeyBellEnable: true,
}

var invalidUnmodified = map[uint]bool{
	KeyUp: true, KeyDown: true, KeyLeft: true, KeyRight: true,
	KeyKPUp: true, KeyKPDown: true, KeyKPLeft: true, KeyKPRight: true,
}

// IsModifierKey returns true if key is one of the modifier keys themselves.
func IsModifierKey(key uint) bool {
	return key >= KeyShiftL && key <= KeyHyperR
} // func IsModifierKey(key uint) bool

func (builtin) Valid(key uint, mods Modifier) bool {
	mods &= ModifierMask

	if key <= 0xff {
		return key >= 0x20
	} else if invalidKeys[key] {
		return false
	} else if mods == 0 && invalidUnmodified[key] {
		return false
	}

	return true
} // func (builtin) Valid(key uint, mods Modifier) bool

func (builtin) ToLower(key uint) uint {
	switch {
	case key >= 'A' && key <= 'Z':
		return key + ('a' - 'A')
	case key >= 0xc0 && key <= 0xde && key != 0xd7:
		// Latin-1 capitals, except the multiplication sign
		return key + 0x20
	default:
		return key
	}
} // func (builtin) ToLower(key uint) uint

var modNames = []struct {
	mod  Modifier
	name string
}{
	{Release, "<Release>"},
	{Control, "<Primary>"},
	{Shift, "<Shift>"},
	{Mod1, "<Alt>"},
	{Mod2, "<Mod2>"},
	{Mod3, "<Mod3>"},
	{Mod4, "<Mod4>"},
	{Mod5, "<Mod5>"},
	{Meta, "<Meta>"},
	{Super, "<Super>"},
	{Hyper, "<Hyper>"},
}

var keyNames = map[uint]string{
	KeySpace:      "space",
	KeyTab:        "Tab",
	KeyReturn:     "Return",
	KeyEscape:     "Escape",
	KeyDelete:     "Delete",
	KeyBackSpace:  "BackSpace",
	KeyHome:       "Home",
	KeyLeft:       "Left",
	KeyUp:         "Up",
	KeyRight:      "Right",
	KeyDown:       "Down",
	KeyPageUp:     "Page_Up",
	KeyPageDown:   "Page_Down",
	KeyEnd:        "End",
	KeyInsert:     "Insert",
	KeyISOLeftTab: "ISO_Left_Tab",
	KeyShiftL:     "Shift_L",
	KeyShiftR:     "Shift_R",
	KeyControlL:   "Control_L",
	KeyControlR:   "Control_R",
	KeyAltL:       "Alt_L",
	KeyAltR:       "Alt_R",
	KeySuperL:     "Super_L",
	KeySuperR:     "Super_R",
	'!':           "exclam",
	'"':           "quotedbl",
	'#':           "numbersign",
	'$':           "dollar",
	'%':           "percent",
	'&':           "ampersand",
	'\'':          "apostrophe",
	'(':           "parenleft",
	')':           "parenright",
	'*':           "asterisk",
	'+':           "plus",
	',':           "comma",
	'-':           "minus",
	'.':           "period",
	'/':           "slash",
	':':           "colon",
	';':           "semicolon",
	'<':           "less",
	'=':           "equal",
	'>':           "greater",
	'?':           "question",
	'@':           "at",
	'[':           "bracketleft",
	'\\':          "backslash",
	']':           "bracketright",
	'^':           "asciicircum",
	'_':           "underscore",
	'`':           "grave",
	'{':           "braceleft",
	'|':           "bar",
	'}':           "braceright",
	'~':           "asciitilde",
}

// KeyName returns the name of a key symbol, as gdk_keyval_name would.
func KeyName(key uint) string {
	if name, ok := keyNames[key]; ok {
		return name
	} else if (key >= '0' && key <= '9') || (key >= 'a' && key <= 'z') || (key >= 'A' && key <= 'Z') {
		return string(rune(key))
	} else if key >= KeyF1 && key <= KeyF12 {
		return fmt.Sprintf("F%d", key-KeyF1+1)
	} else if key == 0 {
		return ""
	}

	return fmt.Sprintf("%#x", key)
} // func KeyName(key uint) string

func (b builtin) Name(key uint, mods Modifier) string {
	if key == 0 {
		return ""
	}

	var sb strings.Builder

	mods &= ModifierMask

	for _, m := range modNames {
		if mods&m.mod != 0 {
			sb.WriteString(m.name)
		}
	}

	sb.WriteString(KeyName(b.ToLower(key)))
	return sb.String()
} // func (b builtin) Name(key uint, mods Modifier) string
