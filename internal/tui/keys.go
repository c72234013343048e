// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	next     key.Binding
	prev     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	reload   key.Binding
	delete   key.Binding
	copy     key.Binding
	remember key.Binding
	yes      key.Binding
	no       key.Binding
	users    key.Binding
	products key.Binding
	orders   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	next:     key.NewBinding(key.WithKeys("right", "tab")),
	prev:     key.NewBinding(key.WithKeys("left", "shift+tab")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("L")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	reload:   key.NewBinding(key.WithKeys("r")),
	delete:   key.NewBinding(key.WithKeys("ctrl+d", "d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	remember: key.NewBinding(key.WithKeys("ctrl+r")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
	users:    key.NewBinding(key.WithKeys("1")),
	products: key.NewBinding(key.WithKeys("2")),
	orders:   key.NewBinding(key.WithKeys("3")),
}
