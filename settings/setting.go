// /home/krylon/go/src/github.com/blicero/tweak/settings/setting.go
// -*- mode: go; coding: utf-8; -*-
// Created on 20. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-22 21:37:19 krylon>

package settings

import (
	"errors"
	"fmt"

	"github.com/blicero/tweak/signal"
)

// Setting mediates between a control and one key in a Client.
type Setting struct {
	Key     string
	Type    Type
	Default interface{}
	client  Client
	handles []signal.Handle
}

// New creates a Setting. If def is not nil, it takes precedence over the
// schema default when the key is unset.
func New(c Client, key string, t Type, def interface{}) (*Setting, error) {
	var s = &Setting{
		Key:    key,
		Type:   t,
		client: c,
	}

	if c == nil {
		return nil, errors.New("settings.New: client is nil")
	} else if key == "" {
		return nil, errors.New("settings.New: key is empty")
	}

	if def != nil {
		var err error
		if s.Default, err = t.Coerce(def); err != nil {
			return nil, fmt.Errorf("invalid default for %s: %w", key, err)
		}
	}

	return s, nil
} // func New(c Client, key string, t Type, def interface{}) (*Setting, error)

func (s *Setting) String() string {
	return fmt.Sprintf("Setting{%s %s %s}",
		s.client.Backend(),
		s.Type,
		s.Key)
} // func (s *Setting) String() string

// Backend returns the Backend the Setting talks to.
func (s *Setting) Backend() Backend { return s.client.Backend() }

// Client returns the backend client.
func (s *Setting) Client() Client { return s.client }

// GetValue returns the current value. For an unset key it falls back to the
// Setting's default, then to the schema default, then to the zero value.
func (s *Setting) GetValue() (interface{}, error) {
	var (
		err   error
		val   interface{}
		found bool
	)

	if val, found, err = s.client.Get(s.Key, s.Type); err != nil {
		return nil, err
	} else if found {
		return val, nil
	} else if s.Default != nil {
		return s.Default, nil
	} else if val, err = s.client.SchemaDefault(s.Key, s.Type); err == nil {
		return val, nil
	} else if errors.Is(err, ErrNoSchema) {
		return s.Type.Zero(), nil
	}

	return nil, err
} // func (s *Setting) GetValue() (interface{}, error)

// IsSet returns true if a value is stored for the key.
func (s *Setting) IsSet() (bool, error) {
	var _, found, err = s.client.Get(s.Key, s.Type)
	return found, err
} // func (s *Setting) IsSet() (bool, error)

// Bool returns the value as a bool, false on error.
func (s *Setting) Bool() bool {
	var v, err = s.GetValue()
	if err != nil {
		return false
	}
	return Truthy(v)
} // func (s *Setting) Bool() bool

// Int returns the value as an int64, 0 on error.
func (s *Setting) Int() int64 {
	var v, err = s.GetValue()
	if err != nil {
		return 0
	} else if v, err = Int.Coerce(v); err != nil {
		return 0
	}
	return v.(int64)
} // func (s *Setting) Int() int64

// Float returns the value as a float64, 0 on error.
func (s *Setting) Float() float64 {
	var v, err = s.GetValue()
	if err != nil {
		return 0
	} else if v, err = Float.Coerce(v); err != nil {
		return 0
	}
	return v.(float64)
} // func (s *Setting) Float() float64

// Str returns the value as a string, "" on error.
func (s *Setting) Str() string {
	var v, err = s.GetValue()
	if err != nil {
		return ""
	} else if str, ok := v.(string); ok {
		return str
	}
	return fmt.Sprint(v)
} // func (s *Setting) Str() string

// SetValue stores val, converted to the Setting's Type.
func (s *Setting) SetValue(val interface{}) error {
	var (
		err error
		v   interface{}
	)

	if v, err = s.Type.Coerce(val); err != nil {
		return fmt.Errorf("cannot set %s: %w", s.Key, err)
	}

	return s.client.Set(s.Key, s.Type, v)
} // func (s *Setting) SetValue(val interface{}) error

// Unset removes the stored value, the key reverts to its default.
func (s *Setting) Unset() error {
	return s.client.Unset(s.Key)
} // func (s *Setting) Unset() error

// GetSchemaValue returns the default value declared in the schema.
func (s *Setting) GetSchemaValue() (interface{}, error) {
	return s.client.SchemaDefault(s.Key, s.Type)
} // func (s *Setting) GetSchemaValue() (interface{}, error)

// ConnectNotify arranges for fn to be called when the value changes.
func (s *Setting) ConnectNotify(fn func()) (signal.Handle, error) {
	var h, err = s.client.Notify(s.Key, func(string) { fn() })
	if err != nil {
		return "", err
	}

	s.handles = append(s.handles, h)
	return h, nil
} // func (s *Setting) ConnectNotify(fn func()) (signal.Handle, error)

// Disconnect removes all listeners registered through ConnectNotify.
func (s *Setting) Disconnect() {
	for _, h := range s.handles {
		s.client.StopNotify(s.Key, h)
	}
	s.handles = nil
} // func (s *Setting) Disconnect()

// UserSetting is the per-user variant of Setting.
type UserSetting struct {
	Key     string
	Type    Type
	Default interface{}
	client  UserClient
}

// NewUser creates a UserSetting.
func NewUser(c UserClient, key string, t Type, def interface{}) (*UserSetting, error) {
	var s = &UserSetting{
		Key:    key,
		Type:   t,
		client: c,
	}

	if c == nil {
		return nil, errors.New("settings.NewUser: client is nil")
	} else if def != nil {
		var err error
		if s.Default, err = t.Coerce(def); err != nil {
			return nil, fmt.Errorf("invalid default for %s: %w", key, err)
		}
	}

	return s, nil
} // func NewUser(c UserClient, key string, t Type, def interface{}) (*UserSetting, error)

// GetValue returns the value stored for user, with the same fallbacks as
// Setting.GetValue.
func (s *UserSetting) GetValue(user string) (interface{}, error) {
	var (
		err   error
		val   interface{}
		found bool
	)

	if val, found, err = s.client.GetUser(user, s.Key, s.Type); err != nil {
		return nil, err
	} else if found {
		return val, nil
	} else if s.Default != nil {
		return s.Default, nil
	} else if val, err = s.client.SchemaDefault(s.Key, s.Type); err == nil {
		return val, nil
	} else if errors.Is(err, ErrNoSchema) {
		return s.Type.Zero(), nil
	}

	return nil, err
} // func (s *UserSetting) GetValue(user string) (interface{}, error)

// SetValue stores val for user.
func (s *UserSetting) SetValue(user string, val interface{}) error {
	var v, err = s.Type.Coerce(val)
	if err != nil {
		return fmt.Errorf("cannot set %s for %s: %w", s.Key, user, err)
	}

	return s.client.SetUser(user, s.Key, s.Type, v)
} // func (s *UserSetting) SetValue(user string, val interface{}) error
