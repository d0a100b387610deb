// /home/krylon/go/src/github.com/blicero/tweak/signal/signal_test.go
// -*- mode: go; coding: utf-8; -*-
// Created on 19. 09. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-09-19 12:03:17 krylon>

package signal

import "testing"

func TestEmitOrder(t *testing.T) {
	var (
		sig   Signal[int]
		calls []string
	)

	sig.Connect(func(v int) { calls = append(calls, "a") })
	sig.Connect(func(v int) { calls = append(calls, "b") })
	sig.Emit(42)

	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("Unexpected order of handler calls: %v", calls)
	}
} // func TestEmitOrder(t *testing.T)

func TestDisconnect(t *testing.T) {
	var (
		sig      Signal[string]
		received []string
	)

	var h1 = sig.Connect(func(v string) { received = append(received, "1:"+v) })
	sig.Connect(func(v string) { received = append(received, "2:"+v) })

	if !sig.Disconnect(h1) {
		t.Fatalf("Disconnect(%s) did not find handler", h1)
	} else if sig.Disconnect(h1) {
		t.Fatalf("Disconnect(%s) succeeded twice", h1)
	} else if sig.Len() != 1 {
		t.Fatalf("Unexpected number of handlers: %d (expected 1)", sig.Len())
	}

	sig.Emit("x")

	if len(received) != 1 || received[0] != "2:x" {
		t.Fatalf("Unexpected values received: %v", received)
	}
} // func TestDisconnect(t *testing.T)

func TestDisconnectDuringEmit(t *testing.T) {
	var (
		sig  Signal[int]
		cnt  int
		self Handle
	)

	self = sig.Connect(func(int) {
		cnt++
		sig.Disconnect(self)
	})
	sig.Connect(func(int) { cnt++ })

	sig.Emit(1)
	sig.Emit(2)

	if cnt != 3 {
		t.Fatalf("Unexpected number of calls: %d (expected 3)", cnt)
	}
} // func TestDisconnectDuringEmit(t *testing.T)

func TestHandlesAreUnique(t *testing.T) {
	var (
		sig  Signal[bool]
		seen = make(map[Handle]bool)
	)

	for i := 0; i < 100; i++ {
		var h = sig.Connect(func(bool) {})
		if seen[h] {
			t.Fatalf("Handle %s was handed out twice", h)
		}
		seen[h] = true
	}

	sig.Clear()

	if sig.Len() != 0 {
		t.Errorf("Clear left %d handlers behind", sig.Len())
	}
} // func TestHandlesAreUnique(t *testing.T)
