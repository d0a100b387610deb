// /home/krylon/go/src/github.com/blicero/tweak/ui/menu.go
// -*- mode: go; coding: utf-8; -*-
// Created on 09. 08. 2021 by Benjamin Walkenhorst
// (c) 2021 Benjamin Walkenhorst
// Time-stamp: <2021-10-09 18:02:31 krylon>

package ui

import (
	"github.com/blicero/krylib"
	"github.com/blicero/tweak/widget"
	"github.com/gotk3/gotk3/gtk"
)

// Creating the menu is so tedious and verbose I am putting that part into a
// separate file.

type menuItem struct {
	label   string
	handler func()
}

type menu struct {
	label string
	items []menuItem
}

func (g *GUI) menuList() []menu {
	return []menu{
		{
			label: widget.Gettext("_File"),
			items: []menuItem{
				{label: widget.Gettext("_Reload"), handler: g.reload},
				{label: widget.Gettext("_Quit"), handler: gtk.MainQuit},
			},
		},
		{
			label: widget.Gettext("_Edit"),
			items: []menuItem{
				{label: widget.Gettext("Reset _all"), handler: g.resetAll},
				{label: widget.Gettext("_Compact store"), handler: g.compact},
			},
		},
	}
} // func (g *GUI) menuList() []menu

func (g *GUI) initMenu() error {
	krylib.Trace()
	defer g.log.Printf("[TRACE] EXIT %s\n",
		krylib.TraceInfo())

	for _, m := range g.menuList() {
		var (
			err     error
			sub     *gtk.Menu
			topItem *gtk.MenuItem
		)

		if sub, err = gtk.MenuNew(); err != nil {
			g.log.Printf("[ERROR] Cannot create menu %s: %s\n",
				m.label,
				err.Error())
			return err
		} else if topItem, err = gtk.MenuItemNewWithMnemonic(m.label); err != nil {
			g.log.Printf("[ERROR] Cannot create menu item %s/: %s\n",
				m.label,
				err.Error())
			return err
		}

		for _, i := range m.items {
			var item *gtk.MenuItem

			if item, err = gtk.MenuItemNewWithMnemonic(i.label); err != nil {
				g.log.Printf("[ERROR] Cannot create menu item %s/%s: %s\n",
					m.label,
					i.label,
					err.Error())
				return err
			}

			item.Connect("activate", i.handler)
			sub.Append(item)
		}

		topItem.SetSubmenu(sub)
		g.menubar.Append(topItem)
	}

	return nil
} // func (g *GUI) initMenu() error
