// /home/krylon/go/src/github.com/blicero/tweak/widget/bound_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 02. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-04 20:31:55 krylon>

package widget

import (
	"testing"

	"github.com/blicero/tweak/settings"
)

func TestCheckButton(t *testing.T) {
	for _, b := range []settings.Backend{settings.Legacy, settings.Modern} {
		var (
			err error
			cb  *CheckButton
			c   = newFakeClient(b)
			tg  = &fakeToggle{}
		)

		c.values["check"] = true

		if cb, err = NewCheckButton(tg, c, "check", nil, "Tooltip"); err != nil {
			t.Fatalf("Cannot create CheckButton for %s: %s", b, err.Error())
		} else if !tg.active {
			t.Fatalf("CheckButton for %s does not display the stored value", b)
		} else if tg.tooltip != "Tooltip" {
			t.Errorf("Unexpected tooltip: %q", tg.tooltip)
		} else if len(c.writes) != 0 {
			t.Fatalf("Creating a CheckButton wrote %d value(s)", len(c.writes))
		}

		tg.click()

		if len(c.writes) != 1 {
			t.Fatalf("Expected 1 write after toggling, got %d", len(c.writes))
		} else if c.writes[0] != false {
			t.Fatalf("Toggling wrote %v, expected false", c.writes[0])
		} else if tg.active {
			t.Fatal("CheckButton flipped back after toggling")
		}

		// A change made elsewhere
		c.Set("check", settings.Bool, true) // nolint: errcheck

		if !tg.active {
			t.Fatal("CheckButton did not follow external change")
		} else if len(c.writes) != 2 {
			t.Fatalf("External change caused the CheckButton to write back")
		}

		cb.Close()

		if n := c.listenerCount("check"); n != 0 {
			t.Errorf("%d listener(s) left after Close", n)
		}
	}
} // func TestCheckButton(t *testing.T)

func TestCheckButtonDefault(t *testing.T) {
	var (
		c  = newFakeClient(settings.Legacy)
		tg = &fakeToggle{}
	)

	if _, err := NewCheckButton(tg, c, "check", true, ""); err != nil {
		t.Fatalf("Cannot create CheckButton: %s", err.Error())
	} else if !tg.active {
		t.Fatal("CheckButton does not display its default value")
	}
} // func TestCheckButtonDefault(t *testing.T)

func TestStringCheckButton(t *testing.T) {
	var (
		err error
		c   = newFakeClient(settings.Modern)
		tg  = &fakeToggle{}
	)

	c.values["str"] = "true"

	if _, err = NewStringCheckButton(tg, c, "str", ""); err != nil {
		t.Fatalf("Cannot create StringCheckButton: %s", err.Error())
	} else if !tg.active {
		t.Fatal("StringCheckButton is not active for a true value")
	}

	tg.click()
	tg.click()
	tg.click()

	if len(c.writes) != 0 {
		t.Fatalf("StringCheckButton wrote %d value(s)", len(c.writes))
	}

	c.Set("str", settings.String, "false") // nolint: errcheck

	if tg.active {
		t.Fatal("StringCheckButton is active for a false value")
	}

	c.Set("str", settings.String, "/usr/bin/foo") // nolint: errcheck

	if !tg.active {
		t.Fatal("StringCheckButton is not active for a non-empty value")
	}
} // func TestStringCheckButton(t *testing.T)

func TestUserCheckButton(t *testing.T) {
	var (
		err error
		ub  *UserCheckButton
		c   = newFakeClient(settings.Legacy)
		tg  = &fakeToggle{}
	)

	c.user["alice/user"] = true

	if ub, err = NewUserCheckButton(tg, c, "alice", "user", nil, ""); err != nil {
		t.Fatalf("Cannot create UserCheckButton: %s", err.Error())
	} else if !tg.active {
		t.Fatal("UserCheckButton does not display the stored value")
	} else if ub.User() != "alice" {
		t.Fatalf("Unexpected user %q", ub.User())
	}

	tg.click()

	if len(c.writes) != 1 {
		t.Fatalf("Expected 1 write, got %d", len(c.writes))
	} else if c.user["alice/user"] != false {
		t.Fatalf("Value for alice is %v, expected false", c.user["alice/user"])
	} else if _, ok := c.user["bob/user"]; ok {
		t.Fatal("Toggling for alice set a value for bob")
	}
} // func TestUserCheckButton(t *testing.T)

func TestEntry(t *testing.T) {
	var (
		err error
		e   *Entry
		c   = newFakeClient(settings.Legacy)
		tf  = &fakeText{}
	)

	if e, err = NewEntry(tf, c, "entry", nil); err != nil {
		t.Fatalf("Cannot create Entry: %s", err.Error())
	} else if tf.text != Unset() {
		t.Fatalf("Entry for unset key displays %q", tf.text)
	} else if e.IsChanged() {
		t.Fatal("Fresh Entry claims to be changed")
	}

	tf.text = "hello"

	if !e.IsChanged() {
		t.Fatal("Entry does not notice it was edited")
	}

	tf.activate()

	if len(c.writes) != 1 || c.writes[0] != "hello" {
		t.Fatalf("Unexpected writes after activate: %v", c.writes)
	} else if tf.text != "hello" {
		t.Fatalf("Entry displays %q after activate", tf.text)
	} else if e.IsChanged() {
		t.Fatal("Entry is changed after activate")
	}

	c.Set("entry", settings.String, "world") // nolint: errcheck

	if tf.text != "world" {
		t.Fatalf("Entry did not follow external change: %q", tf.text)
	}

	tf.text = ""
	tf.activate()

	if _, ok := c.values["entry"]; ok {
		t.Fatal("Clearing the Entry did not unset the key")
	} else if c.unsets != 1 {
		t.Fatalf("Expected 1 unset, got %d", c.unsets)
	} else if tf.text != Unset() {
		t.Fatalf("Cleared Entry displays %q", tf.text)
	} else if len(c.writes) != 2 {
		t.Fatalf("Clearing the Entry wrote a value: %v", c.writes)
	}
} // func TestEntry(t *testing.T)

func TestEntryDefaultNotShown(t *testing.T) {
	var (
		c  = newFakeClient(settings.Modern)
		tf = &fakeText{}
	)

	c.schema["entry"] = "Adwaita"

	if _, err := NewEntry(tf, c, "entry", "Raleigh"); err != nil {
		t.Fatalf("Cannot create Entry: %s", err.Error())
	} else if tf.text != Unset() {
		t.Fatalf("Entry for unset key with a default displays %q", tf.text)
	}
} // func TestEntryDefaultNotShown(t *testing.T)

func TestEntryClearWithDefault(t *testing.T) {
	for _, deferred := range []bool{false, true} {
		var (
			err error
			e   *Entry
			c   = newFakeClient(settings.Legacy)
			tf  = &fakeText{}
		)

		c.deferred = deferred
		c.values["entry"] = "Mint"

		if e, err = NewEntry(tf, c, "entry", "Adwaita"); err != nil {
			t.Fatalf("Cannot create Entry: %s", err.Error())
		} else if tf.text != "Mint" {
			t.Fatalf("Entry displays %q instead of the stored value", tf.text)
		}

		tf.text = ""
		tf.activate()
		c.flush()

		if _, ok := c.values["entry"]; ok {
			t.Fatalf("Clearing the Entry (deferred = %t) did not unset the key",
				deferred)
		} else if tf.text != Unset() {
			t.Fatalf("Cleared Entry (deferred = %t) displays %q",
				deferred,
				tf.text)
		} else if e.IsChanged() {
			t.Fatalf("Cleared Entry (deferred = %t) claims to be changed",
				deferred)
		}
	}
} // func TestEntryClearWithDefault(t *testing.T)

func TestComboBox(t *testing.T) {
	var (
		err error
		c   = newFakeClient(settings.Legacy)
		ch  = &fakeChooser{selected: -1}
	)

	c.values["combo"] = int64(24)

	if _, err = NewComboBox(ch, c, "combo",
		[]string{"Small", "Medium", "Large"},
		[]interface{}{16, 24, 32},
		settings.Int); err != nil {
		t.Fatalf("Cannot create ComboBox: %s", err.Error())
	} else if len(ch.items) != 3 || ch.items[2] != "Large" {
		t.Fatalf("Unexpected items: %v", ch.items)
	} else if ch.selected != 1 {
		t.Fatalf("ComboBox selected item %d, expected 1", ch.selected)
	} else if len(c.writes) != 0 {
		t.Fatalf("Creating a ComboBox wrote %d value(s)", len(c.writes))
	}

	ch.SetSelected(2)

	if len(c.writes) != 1 || c.writes[0] != int64(32) {
		t.Fatalf("Unexpected writes after selecting: %v", c.writes)
	} else if ch.selected != 2 {
		t.Fatalf("ComboBox jumped to item %d", ch.selected)
	}

	c.Set("combo", settings.Int, 16) // nolint: errcheck

	if ch.selected != 0 {
		t.Fatalf("ComboBox did not follow external change: %d", ch.selected)
	}

	c.Set("combo", settings.Int, 20) // nolint: errcheck

	if ch.selected != -1 {
		t.Fatalf("ComboBox selected %d for a value that is not a choice", ch.selected)
	} else if len(c.writes) != 3 {
		t.Fatalf("ComboBox wrote back external changes: %v", c.writes)
	}
} // func TestComboBox(t *testing.T)

func TestComboBoxInvalid(t *testing.T) {
	var c = newFakeClient(settings.Legacy)

	if _, err := NewComboBox(&fakeChooser{selected: -1}, c, "combo",
		[]string{"One", "Two"},
		[]interface{}{1},
		settings.Int); err == nil {
		t.Error("ComboBox with more texts than values was created")
	}

	if _, err := NewComboBox(&fakeChooser{selected: -1}, c, "combo",
		[]string{"One"},
		[]interface{}{"one"},
		settings.Int); err == nil {
		t.Error("ComboBox with values of the wrong type was created")
	}
} // func TestComboBoxInvalid(t *testing.T)

func TestScaleReversed(t *testing.T) {
	var (
		err error
		s   *Scale
		c   = newFakeClient(settings.Legacy)
		r   = &fakeRange{}
	)

	c.values["scale"] = int64(30)

	if s, err = NewScale(r, c, "scale", 0, 100, 0, true); err != nil {
		t.Fatalf("Cannot create Scale: %s", err.Error())
	} else if !s.Reversed() {
		t.Fatal("Scale is not reversed")
	} else if r.value != 70 {
		t.Fatalf("Reversed Scale displays %g for 30, expected 70", r.value)
	} else if r.min != 0 || r.max != 100 {
		t.Fatalf("Unexpected range: [%g, %g]", r.min, r.max)
	}

	r.SetValue(20)

	if len(c.writes) != 1 {
		t.Fatalf("Expected 1 write, got %d", len(c.writes))
	} else if c.values["scale"] != int64(80) {
		t.Fatalf("Stored value is %v, expected 80", c.values["scale"])
	} else if r.value != 20 {
		t.Fatalf("Scale moved to %g after writing", r.value)
	}
} // func TestScaleReversed(t *testing.T)

func TestScaleFloat(t *testing.T) {
	var (
		err error
		s   *Scale
		c   = newFakeClient(settings.Legacy)
		r   = &fakeRange{}
	)

	c.values["scale"] = 0.25

	if s, err = NewScale(r, c, "scale", 0, 1, 2, false); err != nil {
		t.Fatalf("Cannot create Scale: %s", err.Error())
	} else if s.Setting().Type != settings.Float {
		t.Fatalf("Scale with digits has type %s", s.Setting().Type)
	} else if r.value != 0.25 || r.digits != 2 {
		t.Fatalf("Scale displays %g with %d digits", r.value, r.digits)
	}

	r.SetValue(0.5)

	if c.values["scale"] != 0.5 {
		t.Fatalf("Stored value is %v, expected 0.5", c.values["scale"])
	}

	c.Set("scale", settings.Float, 0.75) // nolint: errcheck

	if r.value != 0.75 {
		t.Fatalf("Scale did not follow external change: %g", r.value)
	} else if len(c.writes) != 2 {
		t.Fatalf("Unexpected writes: %v", c.writes)
	}
} // func TestScaleFloat(t *testing.T)

func TestSpinButton(t *testing.T) {
	var (
		err error
		c   = newFakeClient(settings.Legacy)
		r   = &fakeRange{}
	)

	c.values["spin"] = int64(5)

	if _, err = NewSpinButton(r, c, "spin", 0, 10, 1); err != nil {
		t.Fatalf("Cannot create SpinButton: %s", err.Error())
	} else if r.value != 5 {
		t.Fatalf("SpinButton displays %g, expected 5", r.value)
	} else if r.step != 1 {
		t.Fatalf("SpinButton step is %g", r.step)
	}

	r.SetValue(7)

	if len(c.writes) != 1 || c.writes[0] != int64(7) {
		t.Fatalf("Unexpected writes: %v", c.writes)
	}

	if _, err = NewSpinButton(&fakeRange{}, c, "spin", 10, 0, 1); err == nil {
		t.Error("SpinButton with min > max was created")
	}
} // func TestSpinButton(t *testing.T)

func TestResetButton(t *testing.T) {
	var (
		err error
		rb  *ResetButton
		c   = newFakeClient(settings.Legacy)
		btn = &fakeButton{}
	)

	c.schema["reset"] = int64(24)
	c.values["reset"] = int64(48)

	if rb, err = NewResetButton(btn, c, "reset", settings.Int); err != nil {
		t.Fatalf("Cannot create ResetButton: %s", err.Error())
	} else if btn.icon != ResetIcon {
		t.Errorf("ResetButton shows icon %q", btn.icon)
	} else if btn.tooltip != "Reset setting to default value: 24" {
		t.Errorf("Unexpected tooltip: %q", btn.tooltip)
	} else if v := rb.GetDefaultValue(); v != int64(24) {
		t.Fatalf("GetDefaultValue returned %v", v)
	} else if err = rb.Reset(); err != nil {
		t.Fatalf("Reset failed: %s", err.Error())
	} else if c.values["reset"] != int64(24) {
		t.Fatalf("Value after Reset is %v", c.values["reset"])
	}

	if rb, err = NewResetButton(&fakeButton{}, c, "noschema", settings.String); err != nil {
		t.Fatalf("Cannot create ResetButton: %s", err.Error())
	} else if v := rb.GetDefaultValue(); v != "" {
		t.Fatalf("GetDefaultValue for key without schema returned %v", v)
	}
} // func TestResetButton(t *testing.T)
