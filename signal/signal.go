// /home/krylon/go/src/github.com/blicero/tweak/signal/signal.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-19 11:42:50 krylon>

// Package signal provides a minimal observer type, so that our controls can
// announce changes without depending on the GObject signal machinery.
package signal

import (
	"sync"

	"github.com/odeke-em/go-uuid"
)

// Handle identifies a connected handler, so it can be disconnected later.
type Handle string

type handler[T any] struct {
	id Handle
	fn func(T)
}

// Signal is a list of handlers that receive a value of type T each time the
// Signal is emitted. The zero value is ready to use.
//
// Handlers are called synchronously, in the order they were connected.
// A handler may connect or disconnect handlers while the Signal is being
// emitted, such changes take effect with the next emission.
type Signal[T any] struct {
	lock     sync.Mutex
	handlers []handler[T]
}

// Connect adds a handler and returns its Handle.
func (s *Signal[T]) Connect(fn func(T)) Handle {
	var id = Handle(uuid.New())

	s.lock.Lock()
	s.handlers = append(s.handlers, handler[T]{id: id, fn: fn})
	s.lock.Unlock()

	return id
} // func (s *Signal[T]) Connect(fn func(T)) Handle

// Disconnect removes the handler identified by id. It returns false if no
// such handler was connected.
func (s *Signal[T]) Disconnect(id Handle) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	for idx, h := range s.handlers {
		if h.id == id {
			var list = make([]handler[T], 0, len(s.handlers)-1)
			list = append(list, s.handlers[:idx]...)
			s.handlers = append(list, s.handlers[idx+1:]...)
			return true
		}
	}

	return false
} // func (s *Signal[T]) Disconnect(id Handle) bool

// Emit calls all connected handlers with val.
func (s *Signal[T]) Emit(val T) {
	s.lock.Lock()
	var list = s.handlers
	s.lock.Unlock()

	for _, h := range list {
		h.fn(val)
	}
} // func (s *Signal[T]) Emit(val T)

// Len returns the number of connected handlers.
func (s *Signal[T]) Len() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.handlers)
} // func (s *Signal[T]) Len() int

// Clear disconnects all handlers.
func (s *Signal[T]) Clear() {
	s.lock.Lock()
	s.handlers = nil
	s.lock.Unlock()
} // func (s *Signal[T]) Clear()
