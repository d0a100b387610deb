// /home/krylon/go/src/github.com/blicero/tweak/accel/accel_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 29. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-01 20:44:17 krylon>

package accel

import "testing"

func TestValid(t *testing.T) {
	type testCase struct {
		key   uint
		mods  Modifier
		valid bool
	}

	var cases = []testCase{
		{key: 't', mods: Control | Alt, valid: true},
		{key: 'a', valid: true},
		{key: 0x1f, valid: false},
		{key: KeyShiftL, valid: false},
		{key: KeyShiftL, mods: Shift, valid: false},
		{key: KeyControlR, mods: Control, valid: false},
		{key: KeyTab, valid: false},
		{key: KeyTab, mods: Control, valid: false},
		{key: KeyISOLeftTab, mods: Shift, valid: false},
		{key: KeyLeft, valid: false},
		{key: KeyLeft, mods: Control, valid: true},
		{key: KeyF1, valid: true},
		{key: KeyEscape, valid: true},
	}

	for _, c := range cases {
		if v := Default.Valid(c.key, c.mods); v != c.valid {
			t.Errorf("Valid(%#x, %#x) = %t, expected %t",
				c.key,
				c.mods,
				v,
				c.valid)
		}
	}
} // func TestValid(t *testing.T)

func TestName(t *testing.T) {
	type testCase struct {
		key  uint
		mods Modifier
		name string
	}

	var cases = []testCase{
		{key: 'T', mods: Control | Alt, name: "<Primary><Alt>t"},
		{key: 't', mods: Control | Shift | Alt, name: "<Primary><Shift><Alt>t"},
		{key: KeyF1, name: "F1"},
		{key: KeyF12, mods: Super, name: "<Super>F12"},
		{key: KeyReturn, mods: Control, name: "<Primary>Return"},
		{key: '/', mods: Mod4, name: "<Mod4>slash"},
		{key: 0, mods: Control, name: ""},
	}

	for _, c := range cases {
		if n := Default.Name(c.key, c.mods); n != c.name {
			t.Errorf("Name(%#x, %#x) = %q, expected %q",
				c.key,
				c.mods,
				n,
				c.name)
		}
	}
} // func TestName(t *testing.T)

func TestToLower(t *testing.T) {
	var cases = map[uint]uint{
		'A':    'a',
		'z':    'z',
		'5':    '5',
		0xc4:   0xe4, // Adiaeresis
		0xd7:   0xd7, // multiply
		KeyTab: KeyTab,
	}

	for in, out := range cases {
		if l := Default.ToLower(in); l != out {
			t.Errorf("ToLower(%#x) = %#x, expected %#x",
				in,
				l,
				out)
		}
	}
} // func TestToLower(t *testing.T)

func TestDefaultModMask(t *testing.T) {
	if DefaultModMask&Mod2 != 0 {
		t.Error("NumLock is part of the default modifier mask")
	} else if DefaultModMask&Lock != 0 {
		t.Error("CapsLock is part of the default modifier mask")
	} else if DefaultModMask&(Control|Alt|Shift) != Control|Alt|Shift {
		t.Error("Default modifier mask is missing Control, Alt or Shift")
	}
} // func TestDefaultModMask(t *testing.T)

func TestChord(t *testing.T) {
	var c Chord

	if !c.IsEmpty() {
		t.Fatal("Zero Chord is not empty")
	}

	c = Chord{Key: 'q', Mods: Control}

	if c.IsEmpty() {
		t.Fatal("Chord with a key is empty")
	} else if s := c.String(); s != "<Primary>q" {
		t.Errorf("Unexpected name for %#v: %q", c, s)
	}
} // func TestChord(t *testing.T)
