// /home/krylon/go/src/github.com/blicero/tweak/widget/combo.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-02 16:11:53 krylon>

package widget

import (
	"fmt"

	"github.com/blicero/tweak/settings"
)

// ComboBox lets the user pick the value of a key from a fixed list. Each
// item has a text, which is displayed, and a value, which is stored.
type ComboBox struct {
	*binding
	native Chooser
	values []interface{}
}

// NewComboBox creates a ComboBox. texts and values must be of equal length,
// the values must be convertible to t.
func NewComboBox(native Chooser, c settings.Client, key string, texts []string, values []interface{}, t settings.Type) (*ComboBox, error) {
	var (
		err error
		cb  = &ComboBox{
			native: native,
			values: make([]interface{}, len(values)),
		}
	)

	if err = checkBackend(KindComboBox, c); err != nil {
		return nil, err
	} else if len(texts) != len(values) {
		return nil, fmt.Errorf("ComboBox for %s: got %d texts, but %d values",
			key,
			len(texts),
			len(values))
	} else if cb.binding, err = newBinding(KindComboBox, c, key, t, nil); err != nil {
		return nil, err
	}

	for idx, v := range values {
		if cb.values[idx], err = t.Coerce(v); err != nil {
			cb.log.Printf("[ERROR] Invalid value for item %q of %s: %s\n",
				texts[idx],
				key,
				err.Error())
			return nil, err
		}
	}

	cb.push(func() {
		for _, txt := range texts {
			native.Append(txt)
		}
	})

	cb.update()
	native.OnChanged(cb.changed)

	if err = cb.watch(cb.update); err != nil {
		return nil, err
	}

	return cb, nil
} // func NewComboBox(...) (*ComboBox, error)

// index returns the position of the item with the given value, or -1.
func (cb *ComboBox) index(val interface{}) int {
	for idx, v := range cb.values {
		if v == val {
			return idx
		}
	}

	return -1
} // func (cb *ComboBox) index(val interface{}) int

func (cb *ComboBox) update() {
	var (
		err error
		val interface{}
		idx = -1
	)

	if val, err = cb.setting.GetValue(); err != nil {
		cb.log.Printf("[ERROR] Cannot get value of %s: %s\n",
			cb.setting.Key,
			err.Error())
	} else if idx = cb.index(val); idx == -1 {
		cb.log.Printf("[DEBUG] Value of %s (%v) is not one of the choices\n",
			cb.setting.Key,
			val)
	}

	cb.push(func() { cb.native.SetSelected(idx) })
} // func (cb *ComboBox) update()

func (cb *ComboBox) changed() {
	if cb.isSyncing() {
		return
	}

	var idx = cb.native.Selected()

	if idx < 0 || idx >= len(cb.values) {
		return
	}

	cb.log.Printf("[DEBUG] ComboBox value of %s changed to %v\n",
		cb.setting.Key,
		cb.values[idx])

	cb.write(cb.values[idx])
} // func (cb *ComboBox) changed()
