// /home/krylon/go/src/github.com/blicero/tweak/widget/scale.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-03 11:02:45 krylon>

package widget

import (
	"fmt"

	"github.com/blicero/tweak/settings"
)

// Scale binds a Range to a numeric key. With zero digits the key is an
// integer, otherwise a float.
//
// A reversed Scale displays max - value, so that moving the slider to
// the right makes the stored value smaller.
type Scale struct {
	*binding
	native   Range
	min, max float64
	reversed bool
}

// NewScale creates a Scale.
func NewScale(native Range, c settings.Client, key string, min, max float64, digits int, reversed bool) (*Scale, error) {
	var (
		err error
		t   = settings.Int
		s   = &Scale{
			native:   native,
			min:      min,
			max:      max,
			reversed: reversed,
		}
	)

	if digits > 0 {
		t = settings.Float
	}

	if min > max {
		return nil, fmt.Errorf("Scale for %s: min %g is greater than max %g",
			key,
			min,
			max)
	} else if s.binding, err = newBinding(KindScale, c, key, t, nil); err != nil {
		return nil, err
	}

	s.push(func() {
		native.SetRange(min, max)
		native.SetDigits(digits)
	})

	s.update()
	native.OnValueChanged(s.changed)

	if err = s.watch(s.update); err != nil {
		return nil, err
	}

	return s, nil
} // func NewScale(...) (*Scale, error)

// Reversed returns true if the Scale displays its value reversed.
func (s *Scale) Reversed() bool { return s.reversed }

// display converts a stored value to the one displayed, and vice versa,
// the transformation is its own inverse.
func (s *Scale) display(v float64) float64 {
	if s.reversed {
		return s.max - v
	}
	return v
} // func (s *Scale) display(v float64) float64

func (s *Scale) update() {
	var val = s.display(s.setting.Float())
	s.push(func() { s.native.SetValue(val) })
} // func (s *Scale) update()

func (s *Scale) changed() {
	if s.isSyncing() {
		return
	}

	s.write(s.display(s.native.Value()))
} // func (s *Scale) changed()

// SpinButton binds a Range to an integer key.
type SpinButton struct {
	*binding
	native Range
}

// NewSpinButton creates a SpinButton.
func NewSpinButton(native Range, c settings.Client, key string, min, max, step float64) (*SpinButton, error) {
	var (
		err error
		sb  = &SpinButton{native: native}
	)

	if min > max {
		return nil, fmt.Errorf("SpinButton for %s: min %g is greater than max %g",
			key,
			min,
			max)
	} else if sb.binding, err = newBinding(KindSpinButton, c, key, settings.Int, nil); err != nil {
		return nil, err
	}

	sb.push(func() {
		native.SetRange(min, max)
		native.SetIncrements(step, step*10)
		native.SetDigits(0)
	})

	sb.update()
	native.OnValueChanged(sb.changed)

	if err = sb.watch(sb.update); err != nil {
		return nil, err
	}

	return sb, nil
} // func NewSpinButton(...) (*SpinButton, error)

func (sb *SpinButton) update() {
	var val = float64(sb.setting.Int())
	sb.push(func() { sb.native.SetValue(val) })
} // func (sb *SpinButton) update()

func (sb *SpinButton) changed() {
	if sb.isSyncing() {
		return
	}

	sb.write(sb.native.Value())
} // func (sb *SpinButton) changed()
