// /home/krylon/go/src/github.com/blicero/tweak/ui/view.go
// -*- mode: go; coding: utf-8; -*-
// Created on 06. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-09 16:27:03 krylon>

// Building a page full of controls by hand is tedious and error-prone, so
// the pages are described by a table, and the GUI builds them from that.

package ui

import (
	"fmt"

	"github.com/blicero/krylib"
	"github.com/blicero/tweak/accel"
	"github.com/blicero/tweak/settings"
	"github.com/blicero/tweak/widget"
	"github.com/gotk3/gotk3/gtk"
)

type tweakKind uint8

const (
	tkCheck tweakKind = iota
	tkStringCheck
	tkUserCheck
	tkEntry
	tkCombo
	tkScale
	tkSpin
	tkKeyGrab
)

// widgetKind returns the Kind of control the tweak is built from. The key
// grabber stores its chord through a string Setting, which works with any
// backend, so it does not have one.
func (k tweakKind) widgetKind() (widget.Kind, bool) {
	switch k {
	case tkCheck:
		return widget.KindCheckButton, true
	case tkStringCheck:
		return widget.KindStringCheckButton, true
	case tkUserCheck:
		return widget.KindUserCheckButton, true
	case tkEntry:
		return widget.KindEntry, true
	case tkCombo:
		return widget.KindComboBox, true
	case tkScale:
		return widget.KindScale, true
	case tkSpin:
		return widget.KindSpinButton, true
	default:
		return 0, false
	}
} // func (k tweakKind) widgetKind() (widget.Kind, bool)

// hasLabel is true for controls that display their label themselves.
func (k tweakKind) hasLabel() bool {
	return k == tkCheck || k == tkStringCheck || k == tkUserCheck
} // func (k tweakKind) hasLabel() bool

type tweak struct {
	kind     tweakKind
	label    string
	tooltip  string
	key      [2]string // indexed by settings.Backend
	typ      settings.Type
	texts    []string
	values   []interface{}
	min, max float64
	step     float64
	digits   int
	reversed bool
	noReset  bool
}

type page struct {
	title  string
	tweaks []tweak
}

func (g *GUI) buildPage(p *page) (*gtk.ScrolledWindow, error) {
	krylib.Trace()
	defer krylib.Trace()
	var (
		err  error
		grid *gtk.Grid
		scr  *gtk.ScrolledWindow
	)

	if grid, err = gtk.GridNew(); err != nil {
		g.log.Printf("[ERROR] Cannot create Grid for page %q: %s\n",
			p.title,
			err.Error())
		return nil, err
	} else if scr, err = gtk.ScrolledWindowNew(nil, nil); err != nil {
		g.log.Printf("[ERROR] Cannot create ScrolledWindow for page %q: %s\n",
			p.title,
			err.Error())
		return nil, err
	}

	grid.SetRowSpacing(6)
	grid.SetColumnSpacing(12)
	grid.SetBorderWidth(12)

	for idx := range p.tweaks {
		if err = g.buildTweak(&p.tweaks[idx], grid, idx); err != nil {
			g.log.Printf("[ERROR] Cannot create control for %q on page %q: %s\n",
				p.tweaks[idx].label,
				p.title,
				err.Error())
			return nil, err
		}
	}

	scr.Add(grid)
	return scr, nil
} // func (g *GUI) buildPage(p *page) (*gtk.ScrolledWindow, error)

// buildTweak creates the controls for t and puts them in row of grid.
// Controls that cannot work with the backend we use are replaced by a
// label saying so.
func (g *GUI) buildTweak(t *tweak, grid *gtk.Grid, row int) error {
	var (
		err     error
		backend = g.client.Backend()
		key     = t.key[backend]
		ctl     gtk.IWidget
		lbl     *gtk.Label
	)

	if !t.kind.hasLabel() {
		if lbl, err = gtk.LabelNew(t.label); err != nil {
			return err
		}
		lbl.SetHAlign(gtk.ALIGN_START)
		grid.Attach(lbl, 0, row, 1, 1)
	}

	if k, ok := t.kind.widgetKind(); key == "" || (ok && !widget.Supports(k, backend)) {
		var msg = fmt.Sprintf(widget.Gettext("%s: not available with the %s backend"),
			t.label,
			backend)

		if lbl, err = gtk.LabelNew(msg); err != nil {
			return err
		}

		lbl.SetSensitive(false)
		lbl.SetHAlign(gtk.ALIGN_START)
		grid.Attach(lbl, 1, row, 1, 1)
		return nil
	}

	switch t.kind {
	case tkCheck, tkStringCheck, tkUserCheck:
		ctl, err = g.buildToggle(t, key)
	case tkEntry:
		var (
			n *entryNative
			e *widget.Entry
		)

		if n, err = newEntryNative(); err != nil {
			return err
		} else if e, err = widget.NewEntry(n, g.client, key, nil); err != nil {
			return err
		}

		g.controls = append(g.controls, e)
		ctl = n
	case tkCombo:
		var (
			n *comboNative
			c *widget.ComboBox
		)

		if n, err = newComboNative(); err != nil {
			return err
		} else if c, err = widget.NewComboBox(n, g.client, key, t.texts, t.values, t.typ); err != nil {
			return err
		}

		g.controls = append(g.controls, c)
		ctl = n
	case tkScale:
		var (
			n *scaleNative
			s *widget.Scale
		)

		if n, err = newScaleNative(g.log); err != nil {
			return err
		} else if s, err = widget.NewScale(n, g.client, key, t.min, t.max, t.digits, t.reversed); err != nil {
			return err
		}

		g.controls = append(g.controls, s)
		ctl = n
	case tkSpin:
		var (
			n *spinNative
			s *widget.SpinButton
		)

		if n, err = newSpinNative(); err != nil {
			return err
		} else if s, err = widget.NewSpinButton(n, g.client, key, t.min, t.max, t.step); err != nil {
			return err
		}

		g.controls = append(g.controls, s)
		ctl = n
	case tkKeyGrab:
		ctl, err = g.buildKeyGrabber(t, key)
	default:
		err = fmt.Errorf("invalid tweak kind %d", t.kind)
	}

	if err != nil {
		return err
	}

	grid.Attach(ctl, 1, row, 1, 1)

	if t.noReset || t.kind == tkUserCheck {
		return nil
	}

	var (
		rb *widget.ResetButton
		bn *buttonNative
	)

	if bn, err = newButtonNative(); err != nil {
		return err
	} else if rb, err = widget.NewResetButton(bn, g.client, key, t.typ); err != nil {
		return err
	}

	bn.OnClicked(func() {
		if err := rb.Reset(); err != nil {
			g.setStatus(fmt.Sprintf("Cannot reset %s: %s", key, err.Error()))
		}
	})

	grid.Attach(bn, 2, row, 1, 1)
	g.controls = append(g.controls, rb)

	return nil
} // func (g *GUI) buildTweak(t *tweak, grid *gtk.Grid, row int) error

func (g *GUI) buildToggle(t *tweak, key string) (gtk.IWidget, error) {
	var (
		err error
		n   *checkNative
		c   closer
	)

	if n, err = newCheckNative(t.label); err != nil {
		return nil, err
	}

	switch t.kind {
	case tkCheck:
		c, err = widget.NewCheckButton(n, g.client, key, nil, t.tooltip)
	case tkStringCheck:
		c, err = widget.NewStringCheckButton(n, g.client, key, t.tooltip)
	case tkUserCheck:
		var uc, ok = g.client.(settings.UserClient)
		if !ok {
			return nil, fmt.Errorf("%w %s for per-user values",
				widget.ErrUnsupportedBackend,
				g.client.Backend())
		}
		c, err = widget.NewUserCheckButton(n, uc, g.user, key, nil, t.tooltip)
	}

	if err != nil {
		return nil, err
	}

	g.controls = append(g.controls, c)
	return n, nil
} // func (g *GUI) buildToggle(t *tweak, key string) (gtk.IWidget, error)

// buildKeyGrabber creates a KeyGrabber that stores its chord as an
// accelerator name in key.
func (g *GUI) buildKeyGrabber(t *tweak, key string) (gtk.IWidget, error) {
	var (
		err error
		s   *settings.Setting
		kg  *widget.KeyGrabber
		bn  *buttonNative
		acc = gtkAccelerators{}
	)

	if s, err = settings.New(g.client, key, settings.String, nil); err != nil {
		return nil, err
	} else if bn, err = newButtonNative(); err != nil {
		return nil, err
	} else if kg, err = widget.NewKeyGrabber(bn,
		newGrabHost(g.win, g.log),
		acc,
		parseChord(s.Str()),
		"",
		g.cfg.Grab); err != nil {
		return nil, err
	}

	if t.tooltip != "" {
		bn.SetTooltip(t.tooltip)
	}

	kg.Changed.Connect(func(c accel.Chord) {
		var name = acc.Name(c.Key, c.Mods)

		if name == s.Str() {
			return
		} else if err := s.SetValue(name); err != nil {
			g.setStatus(fmt.Sprintf("Cannot set %s: %s", key, err.Error()))
		}
	})

	kg.CurrentChanged.Connect(func(c accel.Chord) {
		g.setStatus(fmt.Sprintf(widget.Gettext("New shortcut for %s: %s"),
			t.label,
			acc.Name(c.Key, c.Mods)))
	})

	kg.GrabFailed.Connect(func(e error) {
		g.setStatus(fmt.Sprintf(widget.Gettext("Cannot grab the keyboard: %s"),
			e.Error()))
	})

	if _, err = s.ConnectNotify(func() { kg.SetChord(parseChord(s.Str())) }); err != nil {
		return nil, err
	}

	g.controls = append(g.controls, grabberCloser{kg, s})
	return bn, nil
} // func (g *GUI) buildKeyGrabber(t *tweak, key string) (gtk.IWidget, error)

// grabberCloser releases a KeyGrabber together with the Setting that
// holds its chord.
type grabberCloser struct {
	kg *widget.KeyGrabber
	s  *settings.Setting
}

func (gc grabberCloser) Close() {
	gc.kg.Dispose()
	gc.s.Disconnect()
}

func keys(legacyKey, modernKey string) [2]string {
	var k [2]string
	k[settings.Legacy] = legacyKey
	k[settings.Modern] = modernKey
	return k
} // func keys(legacyKey, modernKey string) [2]string

var pageList = []page{
	{
		title: "Desktop",
		tweaks: []tweak{
			{
				kind:    tkCheck,
				label:   "Show icons on the desktop",
				tooltip: "Let the file manager draw the desktop",
				key: keys("/apps/nautilus/preferences/show_desktop",
					"org.gnome.desktop.background.show-desktop-icons"),
				typ: settings.Bool,
			},
			{
				kind:  tkStringCheck,
				label: "Wallpaper is set",
				key: keys("/desktop/gnome/background/picture_filename",
					"org.gnome.desktop.background.picture-uri"),
				typ: settings.String,
			},
			{
				kind:  tkCombo,
				label: "Default icon size",
				key:   keys("/apps/nautilus/icon_view/default_zoom_level", ""),
				typ:   settings.String,
				texts: []string{"Small", "Standard", "Large", "Larger"},
				values: []interface{}{
					"small",
					"standard",
					"large",
					"larger",
				},
			},
			{
				kind:    tkUserCheck,
				label:   "Show me in the login screen",
				key:     keys("/apps/gdm/simple-greeter/show_user", ""),
				typ:     settings.Bool,
				noReset: true,
			},
		},
	},
	{
		title: "Interface",
		tweaks: []tweak{
			{
				kind:  tkEntry,
				label: "Gtk theme",
				key: keys("/desktop/gnome/interface/gtk_theme",
					"org.gnome.desktop.interface.gtk-theme"),
				typ: settings.String,
			},
			{
				kind:  tkEntry,
				label: "Icon theme",
				key: keys("/desktop/gnome/interface/icon_theme",
					"org.gnome.desktop.interface.icon-theme"),
				typ: settings.String,
			},
			{
				kind:    tkCheck,
				label:   "Show seconds in the clock",
				tooltip: "The clock in the panel displays seconds",
				key: keys("/apps/panel/applets/clock/prefs/show_seconds",
					"org.gnome.desktop.interface.clock-show-seconds"),
				typ: settings.Bool,
			},
			{
				kind:  tkSpin,
				label: "Cursor size",
				key: keys("/desktop/gnome/peripherals/mouse/cursor_size",
					"org.gnome.desktop.interface.cursor-size"),
				typ:  settings.Int,
				min:  16,
				max:  128,
				step: 1,
			},
		},
	},
	{
		title: "Window Manager",
		tweaks: []tweak{
			{
				kind:    tkCheck,
				label:   "Enable compositing",
				tooltip: "Let the window manager draw shadows and transparency",
				key:     keys("/apps/metacity/general/compositing_manager", ""),
				typ:     settings.Bool,
			},
			{
				kind:  tkSpin,
				label: "Number of workspaces",
				key: keys("/apps/metacity/general/num_workspaces",
					"org.gnome.desktop.wm.preferences.num-workspaces"),
				typ:  settings.Int,
				min:  1,
				max:  36,
				step: 1,
			},
			{
				kind:     tkScale,
				label:    "Mouse sensitivity",
				tooltip:  "Move to the right to make the pointer react to smaller movements",
				key:      keys("/desktop/gnome/peripherals/mouse/motion_threshold", ""),
				typ:      settings.Int,
				min:      1,
				max:      10,
				reversed: true,
			},
			{
				kind:   tkScale,
				label:  "Mouse acceleration",
				key:    keys("/desktop/gnome/peripherals/mouse/motion_acceleration", "org.gnome.desktop.peripherals.mouse.speed"),
				typ:    settings.Float,
				min:    1,
				max:    10,
				digits: 1,
			},
			{
				kind:    tkKeyGrab,
				label:   "Open a terminal",
				tooltip: "Click, then press the new key combination",
				key: keys("/apps/metacity/global_keybindings/run_command_terminal",
					"org.gnome.settings-daemon.plugins.media-keys.terminal"),
				typ: settings.String,
			},
			{
				kind:  tkKeyGrab,
				label: "Show the run dialog",
				key:   keys("/apps/metacity/global_keybindings/panel_run_dialog", ""),
				typ:   settings.String,
			},
		},
	},
}
