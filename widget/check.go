// /home/krylon/go/src/github.com/blicero/tweak/widget/check.go
// -*- mode: go; coding: utf-8; -*-
// Created on 30. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-02 14:26:11 krylon>

package widget

import (
	"log"

	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/logdomain"
	"github.com/blicero/tweak/settings"
)

// CheckButton binds a Toggle to a boolean key.
type CheckButton struct {
	*binding
	native Toggle
}

// NewCheckButton creates a CheckButton. def, if not nil, is used when the
// key has no value.
func NewCheckButton(native Toggle, c settings.Client, key string, def interface{}, tooltip string) (*CheckButton, error) {
	var (
		err error
		cb  = &CheckButton{native: native}
	)

	if cb.binding, err = newBinding(KindCheckButton, c, key, settings.Bool, def); err != nil {
		return nil, err
	}

	cb.update()

	if tooltip != "" {
		native.SetTooltip(tooltip)
	}

	native.OnToggled(cb.toggled)

	if err = cb.watch(cb.update); err != nil {
		return nil, err
	}

	return cb, nil
} // func NewCheckButton(...) (*CheckButton, error)

func (cb *CheckButton) update() {
	var active = cb.setting.Bool()
	cb.push(func() { cb.native.SetActive(active) })
} // func (cb *CheckButton) update()

func (cb *CheckButton) toggled() {
	if cb.isSyncing() {
		return
	}

	cb.write(cb.native.Active())
} // func (cb *CheckButton) toggled()

// StringCheckButton displays whether a string key holds a true-ish value.
// It only observes the key, toggling it does not change anything.
type StringCheckButton struct {
	*binding
	native Toggle
}

// NewStringCheckButton creates a StringCheckButton.
func NewStringCheckButton(native Toggle, c settings.Client, key, tooltip string) (*StringCheckButton, error) {
	var (
		err error
		sb  = &StringCheckButton{native: native}
	)

	if sb.binding, err = newBinding(KindStringCheckButton, c, key, settings.String, nil); err != nil {
		return nil, err
	}

	sb.update()

	if tooltip != "" {
		native.SetTooltip(tooltip)
	}

	native.OnToggled(sb.toggled)

	if err = sb.watch(sb.update); err != nil {
		return nil, err
	}

	return sb, nil
} // func NewStringCheckButton(...) (*StringCheckButton, error)

func (sb *StringCheckButton) update() {
	var (
		err    error
		val    interface{}
		active bool
	)

	if val, err = sb.setting.GetValue(); err != nil {
		sb.log.Printf("[ERROR] Cannot get value of %s: %s\n",
			sb.setting.Key,
			err.Error())
	} else {
		active = settings.Truthy(val)
	}

	sb.push(func() { sb.native.SetActive(active) })
} // func (sb *StringCheckButton) update()

func (sb *StringCheckButton) toggled() {
	if sb.isSyncing() {
		return
	}

	sb.log.Printf("[TRACE] %s was toggled, not writing it back\n",
		sb.setting.Key)
} // func (sb *StringCheckButton) toggled()

// UserCheckButton binds a Toggle to a boolean key stored on behalf of one
// user. There is no notification for per-user values, so the button does
// not follow changes made elsewhere.
type UserCheckButton struct {
	log     *log.Logger
	user    string
	setting *settings.UserSetting
	native  Toggle
	syncing bool
}

// NewUserCheckButton creates a UserCheckButton for user.
func NewUserCheckButton(native Toggle, c settings.UserClient, user, key string, def interface{}, tooltip string) (*UserCheckButton, error) {
	var (
		err error
		val interface{}
		ub  = &UserCheckButton{
			user:   user,
			native: native,
		}
	)

	if err = checkBackend(KindUserCheckButton, c); err != nil {
		return nil, err
	} else if ub.log, err = common.GetLogger(logdomain.Widget); err != nil {
		return nil, err
	} else if ub.setting, err = settings.NewUser(c, key, settings.Bool, def); err != nil {
		ub.log.Printf("[ERROR] Cannot create Setting for %s: %s\n",
			key,
			err.Error())
		return nil, err
	} else if val, err = ub.setting.GetValue(user); err != nil {
		ub.log.Printf("[ERROR] Cannot get value of %s for %s: %s\n",
			key,
			user,
			err.Error())
		return nil, err
	}

	ub.syncing = true
	native.SetActive(settings.Truthy(val))
	ub.syncing = false

	if tooltip != "" {
		native.SetTooltip(tooltip)
	}

	native.OnToggled(ub.toggled)

	return ub, nil
} // func NewUserCheckButton(...) (*UserCheckButton, error)

// User returns the name of the user the button stores its value for.
func (ub *UserCheckButton) User() string { return ub.user }

// Setting returns the Setting the control is bound to.
func (ub *UserCheckButton) Setting() *settings.UserSetting { return ub.setting }

// Kind returns KindUserCheckButton.
func (ub *UserCheckButton) Kind() Kind { return KindUserCheckButton }

// Close does nothing, a UserCheckButton does not listen for changes.
func (ub *UserCheckButton) Close() {}

func (ub *UserCheckButton) toggled() {
	if ub.syncing {
		return
	}

	var active = ub.native.Active()

	if err := ub.setting.SetValue(ub.user, active); err != nil {
		ub.log.Printf("[ERROR] Cannot set %s for %s to %t: %s\n",
			ub.setting.Key,
			ub.user,
			active,
			err.Error())
	}
} // func (ub *UserCheckButton) toggled()
