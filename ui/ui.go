// /home/krylon/go/src/github.com/blicero/tweak/ui/ui.go
// -*- mode: go; coding: utf-8; -*-
// Created on 05. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-09 18:40:12 krylon>

// Package ui provides the Gtk front end: a window with a notebook of pages,
// each holding controls bound to preference keys.
package ui

import (
	"log"
	"os"
	"os/user"

	"github.com/blicero/tweak/common"
	"github.com/blicero/tweak/config"
	"github.com/blicero/tweak/database"
	"github.com/blicero/tweak/logdomain"
	"github.com/blicero/tweak/modern"
	"github.com/blicero/tweak/settings"
	"github.com/blicero/tweak/widget"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"
)

const (
	textDomain = "tweak"
	localeDir  = "/usr/share/locale"
)

type closer interface {
	Close()
}

// GUI is the main window of the application.
type GUI struct {
	cfg        *config.Config
	db         *database.Database
	client     settings.Client
	user       string
	log        *log.Logger
	win        *gtk.Window
	mainBox    *gtk.Box
	menubar    *gtk.MenuBar
	notebook   *gtk.Notebook
	statusbar  *gtk.Statusbar
	statusCtx  uint
	controls   []closer
	aliveCnt   heartbeatCounter
	heartbeatQ chan heartbeatCounter
}

// Create creates the GUI. Controls are bound to the backend named in cfg,
// the legacy store db is used for it, and for per-user values in any case.
func Create(cfg *config.Config, db *database.Database, schema *settings.Schema) (*GUI, error) {
	var (
		err error
		g   = &GUI{
			cfg: cfg,
			db:  db,
		}
	)

	if g.log, err = common.GetLogger(logdomain.GUI); err != nil {
		return nil, err
	}

	gtk.Init(nil)
	glib.InitI18n(textDomain, localeDir)
	widget.Gettext = glib.Local

	db.SetDispatcher(dispatch)

	switch cfg.Backend {
	case settings.Legacy:
		g.client = db
	case settings.Modern:
		var mc *modern.Client
		if mc, err = modern.New(schema); err != nil {
			g.log.Printf("[ERROR] Cannot create client for modern backend: %s\n",
				err.Error())
			return nil, err
		}
		g.client = mc
	default:
		g.log.Printf("[CANTHAPPEN] Invalid backend %s\n", cfg.Backend)
		return nil, widget.ErrUnsupportedBackend
	}

	if u, uerr := user.Current(); uerr == nil {
		g.user = u.Username
	} else {
		g.user = os.Getenv("USER")
	}

	if g.win, err = gtk.WindowNew(gtk.WINDOW_TOPLEVEL); err != nil {
		g.log.Printf("[ERROR] Cannot create Toplevel Window: %s\n",
			err.Error())
		return nil, err
	} else if g.mainBox, err = gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 1); err != nil {
		g.log.Printf("[ERROR] Cannot create Box: %s\n",
			err.Error())
		return nil, err
	} else if g.menubar, err = gtk.MenuBarNew(); err != nil {
		g.log.Printf("[ERROR] Cannot create MenuBar: %s\n",
			err.Error())
		return nil, err
	} else if g.notebook, err = gtk.NotebookNew(); err != nil {
		g.log.Printf("[ERROR] Cannot create Notebook: %s\n",
			err.Error())
		return nil, err
	} else if g.statusbar, err = gtk.StatusbarNew(); err != nil {
		g.log.Printf("[ERROR] Cannot create Statusbar: %s\n",
			err.Error())
		return nil, err
	}

	g.statusCtx = g.statusbar.GetContextId(common.AppName)

	if err = g.initMenu(); err != nil {
		g.log.Printf("[ERROR] Failed to create menu: %s\n",
			err.Error())
		return nil, err
	}

	for idx := range pageList {
		var (
			p   = &pageList[idx]
			scr *gtk.ScrolledWindow
			lbl *gtk.Label
		)

		if scr, err = g.buildPage(p); err != nil {
			return nil, err
		} else if lbl, err = gtk.LabelNew(widget.Gettext(p.title)); err != nil {
			g.log.Printf("[ERROR] Cannot create title Label for %q: %s\n",
				p.title,
				err.Error())
			return nil, err
		}

		g.notebook.AppendPage(scr, lbl)
	}

	g.win.Connect("destroy", func() {
		g.closeControls()
		gtk.MainQuit()
	})

	g.mainBox.PackStart(g.menubar, false, false, 0)
	g.mainBox.PackStart(g.notebook, true, true, 0)
	g.mainBox.PackStart(g.statusbar, false, false, 0)
	g.win.Add(g.mainBox)
	g.win.SetTitle(common.AppName + " " + common.Version)
	g.win.SetSizeRequest(640, 480)

	g.setStatus(widget.Gettext("Using the " + cfg.Backend.String() + " backend"))

	return g, nil
} // func Create(...) (*GUI, error)

// ShowAndRun displays the GUI and runs the Gtk event loop.
func (g *GUI) ShowAndRun() {
	if g.cfg.Heartbeat {
		g.startHeartbeat()
	}

	g.win.ShowAll()
	gtk.Main()
} // func (g *GUI) ShowAndRun()

func (g *GUI) setStatus(msg string) {
	g.log.Printf("[INFO] %s\n", msg)
	g.statusbar.Push(g.statusCtx, msg)
} // func (g *GUI) setStatus(msg string)

func (g *GUI) closeControls() {
	for _, c := range g.controls {
		c.Close()
	}
	g.controls = nil
} // func (g *GUI) closeControls()

// reload re-reads the values of all keys the controls display from the
// legacy store, in case the file watcher missed something.
func (g *GUI) reload() {
	g.db.Refresh()
	g.setStatus(widget.Gettext("Reloaded settings"))
} // func (g *GUI) reload()

// resetAll resets every key that has a reset button to its default value.
func (g *GUI) resetAll() {
	var (
		err    error
		cnt    int
		useTx  = g.client.Backend() == settings.Legacy
		failed bool
	)

	if useTx {
		if err = g.db.Begin(); err != nil {
			g.setStatus("Cannot start transaction: " + err.Error())
			return
		}
	}

	for _, c := range g.controls {
		if rb, ok := c.(*widget.ResetButton); ok {
			if err = rb.Reset(); err != nil {
				failed = true
				break
			}
			cnt++
		}
	}

	if useTx {
		if failed {
			g.db.Rollback() // nolint: errcheck
			g.setStatus("Cannot reset settings: " + err.Error())
			return
		} else if err = g.db.Commit(); err != nil {
			g.setStatus("Cannot commit transaction: " + err.Error())
			return
		}
	} else if failed {
		g.setStatus("Cannot reset settings: " + err.Error())
		return
	}

	g.log.Printf("[DEBUG] Reset %d setting(s)\n", cnt)
	g.setStatus(widget.Gettext("All settings were reset to their defaults"))
} // func (g *GUI) resetAll()

func (g *GUI) compact() {
	if err := g.db.PerformMaintenance(); err != nil {
		g.setStatus("Cannot compact store: " + err.Error())
		return
	}

	g.setStatus(widget.Gettext("Store was compacted"))
} // func (g *GUI) compact()
