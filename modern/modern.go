// /home/krylon/go/src/github.com/blicero/tweak/modern/modern.go
// -*- mode: go; coding: utf-8; -*-
// Created on 27. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-28 19:55:36 krylon>

// Package modern implements the modern preference backend on top of
// GSettings.
//
// Keys are written as the schema ID and the key name, joined by a dot, e.g.
// org.gnome.desktop.interface.gtk-theme. GSettings has no notion of an unset
// key, so Get always finds a value, and the defaults are taken from the
// Schema we are given, since the GSettings schema might not be installed on
// the machine we run on.
package modern

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/logdomain"
	"github.com/blicero/tweak/settings"
	"github.com/blicero/tweak/signal"
	"github.com/gotk3/gotk3/glib"
)

// ErrInvalidKey indicates a key that does not contain a schema ID.
var ErrInvalidKey = errors.New("key must be of the form schema.id.key-name")

// ErrNoSuchSchema indicates a GSettings schema that is not installed.
var ErrNoSuchSchema = errors.New("GSettings schema is not installed")

// SplitKey splits a key into the schema ID and the name of the key.
func SplitKey(key string) (string, string, error) {
	var idx = strings.LastIndexByte(key, '.')

	if idx <= 0 || idx == len(key)-1 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}

	return key[:idx], key[idx+1:], nil
} // func SplitKey(key string) (string, string, error)

type watch struct {
	obj    *glib.Settings
	handle glib.SignalHandle
	sig    *signal.Signal[string]
}

// Client talks to GSettings.
// Like everything else that touches GLib objects, it must only be used from
// the thread running the Gtk main loop.
type Client struct {
	log     *log.Logger
	schema  *settings.Schema
	lock    sync.Mutex
	objects map[string]*glib.Settings
	watches map[string]*watch
}

// New creates a Client. schema supplies the default values.
func New(schema *settings.Schema) (*Client, error) {
	var (
		err error
		c   = &Client{
			schema:  schema,
			objects: make(map[string]*glib.Settings),
			watches: make(map[string]*watch),
		}
	)

	if c.log, err = common.GetLogger(logdomain.Settings); err != nil {
		return nil, err
	} else if c.schema == nil {
		c.schema = settings.NewSchema(nil)
	}

	return c, nil
} // func New(schema *settings.Schema) (*Client, error)

// Backend returns settings.Modern
func (c *Client) Backend() settings.Backend { return settings.Modern }

// object returns the GSettings object for the schema the key belongs to and
// the name of the key.
func (c *Client) object(key string) (*glib.Settings, string, error) {
	var (
		err          error
		schemaID, nm string
		obj          *glib.Settings
		ok           bool
	)

	if schemaID, nm, err = SplitKey(key); err != nil {
		return nil, "", err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if obj, ok = c.objects[schemaID]; ok {
		return obj, nm, nil
	}

	// g_settings_new aborts the process if the schema does not exist, so we
	// have to check first.
	var src = glib.SettingsSchemaSourceGetDefault()
	if src == nil || src.Lookup(schemaID, true) == nil {
		c.log.Printf("[ERROR] GSettings schema %s is not installed\n",
			schemaID)
		return nil, "", fmt.Errorf("%w: %s", ErrNoSuchSchema, schemaID)
	}

	obj = glib.SettingsNew(schemaID)
	c.objects[schemaID] = obj
	return obj, nm, nil
} // func (c *Client) object(key string) (*glib.Settings, string, error)

// Get returns the value of key.
func (c *Client) Get(key string, t settings.Type) (interface{}, bool, error) {
	var obj, name, err = c.object(key)

	if err != nil {
		return nil, false, err
	}

	switch t {
	case settings.Bool:
		return obj.GetBoolean(name), true, nil
	case settings.Int:
		return int64(obj.GetInt(name)), true, nil
	case settings.Float:
		return obj.GetDouble(name), true, nil
	case settings.String:
		return obj.GetString(name), true, nil
	default:
		return nil, false, fmt.Errorf("%w: %d", settings.ErrUnknownType, t)
	}
} // func (c *Client) Get(key string, t settings.Type) (interface{}, bool, error)

// Set stores val under key.
func (c *Client) Set(key string, t settings.Type, val interface{}) error {
	var (
		err  error
		ok   bool
		name string
		obj  *glib.Settings
		v    interface{}
	)

	if v, err = t.Coerce(val); err != nil {
		return err
	} else if obj, name, err = c.object(key); err != nil {
		return err
	}

	switch t {
	case settings.Bool:
		ok = obj.SetBoolean(name, v.(bool))
	case settings.Int:
		ok = obj.SetInt(name, int(v.(int64)))
	case settings.Float:
		ok = obj.SetDouble(name, v.(float64))
	case settings.String:
		ok = obj.SetString(name, v.(string))
	}

	if !ok {
		c.log.Printf("[ERROR] GSettings refused to set %s to %#v\n",
			key,
			val)
		return fmt.Errorf("cannot set %s: key is not writable or has a different type", key)
	}

	return nil
} // func (c *Client) Set(key string, t settings.Type, val interface{}) error

// Unset resets key to its default.
func (c *Client) Unset(key string) error {
	var obj, name, err = c.object(key)

	if err != nil {
		return err
	}

	obj.Reset(name)
	return nil
} // func (c *Client) Unset(key string) error

// SchemaDefault returns the default value of key from our Schema.
func (c *Client) SchemaDefault(key string, t settings.Type) (interface{}, error) {
	return c.schema.Default(key, t)
} // func (c *Client) SchemaDefault(key string, t settings.Type) (interface{}, error)

// Notify calls fn each time GSettings announces a change of key.
func (c *Client) Notify(key string, fn settings.Listener) (signal.Handle, error) {
	var (
		err  error
		name string
		obj  *glib.Settings
	)

	if obj, name, err = c.object(key); err != nil {
		return "", err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	var w, ok = c.watches[key]

	if !ok {
		w = &watch{
			obj: obj,
			sig: new(signal.Signal[string]),
		}

		var sig = w.sig
		w.handle = obj.Connect("changed::"+name, func() {
			sig.Emit(key)
		})

		c.watches[key] = w
	}

	return w.sig.Connect(func(k string) { fn(k) }), nil
} // func (c *Client) Notify(key string, fn settings.Listener) (signal.Handle, error)

// StopNotify removes a listener added with Notify.
func (c *Client) StopNotify(key string, h signal.Handle) {
	c.lock.Lock()
	defer c.lock.Unlock()

	var w, ok = c.watches[key]

	if !ok {
		return
	}

	w.sig.Disconnect(h)

	if w.sig.Len() == 0 {
		w.obj.HandlerDisconnect(w.handle)
		delete(c.watches, key)
	}
} // func (c *Client) StopNotify(key string, h signal.Handle)
