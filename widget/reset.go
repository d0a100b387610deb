// /home/krylon/go/src/github.com/blicero/tweak/widget/reset.go
// -*- mode: go; coding: utf-8; -*-
// Created on 01. 10. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-02 18:30:19 krylon>

package widget

import (
	"fmt"

	"github.com/blicero/tweak/settings"
)

// ResetIcon is the name of the icon a ResetButton displays.
const ResetIcon = "document-revert"

// ResetButton displays the schema default of a key in its tooltip. It does
// not follow the key's value. What happens when it is clicked is up to the
// caller, Reset is there to help.
type ResetButton struct {
	*binding
	native IconButton
}

// NewResetButton creates a ResetButton.
func NewResetButton(native IconButton, c settings.Client, key string, t settings.Type) (*ResetButton, error) {
	var (
		err error
		rb  = &ResetButton{native: native}
	)

	if rb.binding, err = newBinding(KindResetButton, c, key, t, nil); err != nil {
		return nil, err
	}

	native.SetIcon(ResetIcon)
	native.SetTooltip(fmt.Sprintf(Gettext("Reset setting to default value: %v"),
		rb.GetDefaultValue()))

	return rb, nil
} // func NewResetButton(...) (*ResetButton, error)

// GetDefaultValue returns the default value of the key as declared by the
// schema. If there is none, it returns the zero value of the key's type.
func (rb *ResetButton) GetDefaultValue() interface{} {
	var val, err = rb.setting.GetSchemaValue()

	if err != nil {
		rb.log.Printf("[INFO] No default value for %s: %s\n",
			rb.setting.Key,
			err.Error())
		return rb.setting.Type.Zero()
	}

	return val
} // func (rb *ResetButton) GetDefaultValue() interface{}

// Reset stores the default value for the key.
func (rb *ResetButton) Reset() error {
	var val = rb.GetDefaultValue()

	if err := rb.setting.SetValue(val); err != nil {
		rb.log.Printf("[ERROR] Cannot reset %s to %v: %s\n",
			rb.setting.Key,
			val,
			err.Error())
		return err
	}

	return nil
} // func (rb *ResetButton) Reset() error
