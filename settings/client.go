// /home/krylon/go/src/github.com/blicero/tweak/settings/client.go
// -*- mode: go; coding: utf-8; -*-
// Created on 20. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-21 19:20:44 krylon>

// Package settings provides the adapters that connect a control to a single
// key in a preference backend, plus the contract the backends implement.
package settings

import "github.com/blicero/tweak/signal"

// Listener is called with the key whose value has changed.
type Listener func(key string)

// Client is a preference backend.
//
// Get reports whether a value is stored for the key at all; an unset key is
// not an error. Implementations must only call Listeners from the thread
// the controls live on, see the Dispatcher of the legacy store.
type Client interface {
	Backend() Backend
	Get(key string, t Type) (interface{}, bool, error)
	Set(key string, t Type, val interface{}) error
	Unset(key string) error
	SchemaDefault(key string, t Type) (interface{}, error)
	Notify(key string, fn Listener) (signal.Handle, error)
	StopNotify(key string, h signal.Handle)
}

// UserClient is a backend that can store values per user.
type UserClient interface {
	Client
	GetUser(user, key string, t Type) (interface{}, bool, error)
	SetUser(user, key string, t Type, val interface{}) error
}
