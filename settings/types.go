// /home/krylon/go/src/github.com/blicero/tweak/settings/types.go
// -*- mode: go; coding: utf-8; -*-
// Created on 20. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-21 19:14:02 krylon>

package settings

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrUnknownType indicates a type name or tag we do not know about.
var ErrUnknownType = errors.New("unknown setting type")

// ErrTypeMismatch indicates that a value cannot be converted to the type of
// the setting it was meant for.
var ErrTypeMismatch = errors.New("value does not match the type of the setting")

// ErrNoSchema indicates that a key has no schema entry, hence no default.
var ErrNoSchema = errors.New("no schema entry for key")

// Backend identifies the preference service a control talks to.
type Backend uint8

// Legacy is the key-value store modelled on GConf, Modern is GSettings.
const (
	Legacy Backend = iota
	Modern
)

func (b Backend) String() string {
	switch b {
	case Legacy:
		return "legacy"
	case Modern:
		return "modern"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
} // func (b Backend) String() string

// ParseBackend returns the Backend with the given name.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "legacy", "gconf":
		return Legacy, nil
	case "modern", "gsettings", "gio":
		return Modern, nil
	default:
		return 0, fmt.Errorf("unknown backend %q", name)
	}
} // func ParseBackend(name string) (Backend, error)

// Type is the type of value stored under a key.
type Type uint8

// These are the types a setting can have. Values are represented by bool,
// int64, float64 and string, respectively.
const (
	Bool Type = iota
	Int
	Float
	String
)

var typeNames = map[Type]string{
	Bool:   "bool",
	Int:    "int",
	Float:  "float",
	String: "string",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
} // func (t Type) String() string

// ParseType returns the Type for the given name.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(name) {
	case "bool", "boolean", "b":
		return Bool, nil
	case "int", "integer", "i":
		return Int, nil
	case "float", "double", "d":
		return Float, nil
	case "string", "str", "s":
		return String, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
} // func ParseType(name string) (Type, error)

// Zero returns the zero value of the Type.
func (t Type) Zero() interface{} {
	switch t {
	case Bool:
		return false
	case Int:
		return int64(0)
	case Float:
		return float64(0)
	default:
		return ""
	}
} // func (t Type) Zero() interface{}

// Coerce converts v to the canonical representation of t.
// Numbers are converted between integer and floating point, integers are
// accepted for booleans, nothing but strings is accepted for strings.
func (t Type) Coerce(v interface{}) (interface{}, error) {
	switch t {
	case Bool:
		switch x := v.(type) {
		case bool:
			return x, nil
		case int:
			return x != 0, nil
		case int64:
			return x != 0, nil
		}
	case Int:
		switch x := v.(type) {
		case int:
			return int64(x), nil
		case int32:
			return int64(x), nil
		case int64:
			return x, nil
		case uint:
			return int64(x), nil
		case float64:
			return int64(math.Round(x)), nil
		case float32:
			return int64(math.Round(float64(x))), nil
		}
	case Float:
		switch x := v.(type) {
		case float64:
			return x, nil
		case float32:
			return float64(x), nil
		case int:
			return float64(x), nil
		case int64:
			return float64(x), nil
		}
	case String:
		if s, ok := v.(string); ok {
			return s, nil
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}

	return nil, fmt.Errorf("%w: %T for %s", ErrTypeMismatch, v, t)
} // func (t Type) Coerce(v interface{}) (interface{}, error)

// Format renders a value for storage in a text column.
func (t Type) Format(v interface{}) (string, error) {
	var (
		err error
		val interface{}
	)

	if val, err = t.Coerce(v); err != nil {
		return "", err
	}

	switch x := val.(type) {
	case bool:
		return strconv.FormatBool(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	default:
		return val.(string), nil
	}
} // func (t Type) Format(v interface{}) (string, error)

// Parse is the inverse of Format.
func (t Type) Parse(s string) (interface{}, error) {
	switch t {
	case Bool:
		return strconv.ParseBool(s)
	case Int:
		return strconv.ParseInt(s, 10, 64)
	case Float:
		return strconv.ParseFloat(s, 64)
	case String:
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
} // func (t Type) Parse(s string) (interface{}, error)

// Truthy interprets a value of any Type as a boolean. Strings that look like
// booleans are parsed, any other non-empty string counts as true.
func Truthy(v interface{}) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int64:
		return x != 0
	case float64:
		return x != 0
	case string:
		if b, err := strconv.ParseBool(x); err == nil {
			return b
		}
		return x != ""
	default:
		return false
	}
} // func Truthy(v interface{}) bool
