// /home/krylon/go/src/github.com/blicero/tweak/ui/freeze.go
// -*- mode: go; coding: utf-8; -*-
// Created on 23. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-09 17:48:50 krylon>

package ui

import (
	"os"
	"time"

	"github.com/gotk3/gotk3/glib"
)

// A keyboard grab that is never released locks up the whole desktop. If the
// main loop stops responding while we might be holding one, exiting is the
// only way to give the keyboard back.

const (
	heartbeatInterval = time.Second
	heartbeatTimeout  = time.Second * 5
	maxMiss           = 5
)

type heartbeatCounter int64

func (g *GUI) startHeartbeat() {
	g.heartbeatQ = make(chan heartbeatCounter, 1)
	glib.TimeoutAdd(uint(heartbeatInterval/time.Millisecond), g.heartbeat)
	go g.heartbeatLoop()
} // func (g *GUI) startHeartbeat()

func (g *GUI) heartbeat() bool {
	g.aliveCnt++
	select {
	case g.heartbeatQ <- g.aliveCnt:
	default:
	}
	return true
} // func (g *GUI) heartbeat() bool

func (g *GUI) heartbeatLoop() {
	var (
		timeout = time.NewTicker(heartbeatTimeout)
		cnt     heartbeatCounter
		missCnt = 0
	)

	defer timeout.Stop()

	for {
		select {
		case cnt = <-g.heartbeatQ:
			missCnt = 0
		case <-timeout.C:
			missCnt++
			if missCnt > maxMiss {
				g.log.Printf("[CRITICAL] It would seem the GUI has frozen after %d heartbeats: %d missed heartbeats\n",
					cnt,
					missCnt)
				os.Exit(1)
			} else if missCnt > 1 {
				g.log.Printf("[ERROR] Missed %d heartbeats in a row\n",
					missCnt)
			}
		}
	}
} // func (g *GUI) heartbeatLoop()
