// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// formModel is the create form of one section. It keeps its values while
// hidden; only a successful create resets it.
type formModel struct {
	section models.Section
	fields  []render.FormField
	inputs  []textinput.Model
	focus   int
}

func newFormModel(section models.Section) *formModel {
	fields := render.FormFields(section)
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.CharLimit = 256
		in.Width = 32
		if f.Kind == render.InputSecret {
			in.EchoMode = textinput.EchoPassword
			in.EchoCharacter = '*'
		}
		inputs[i] = in
	}

	return &formModel{section: section, fields: fields, inputs: inputs}
}

func (f *formModel) open() tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	return f.inputs[f.focus].Focus()
}

func (f *formModel) blur() {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
}

func (f *formModel) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.blur()
	f.focus = 0
}

func (f *formModel) moveFocus(delta int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	return f.inputs[f.focus].Focus()
}

func (f *formModel) values() models.Form {
	form := make(models.Form, len(f.fields))
	for i, field := range f.fields {
		form[field.Name] = f.inputs[i].Value()
	}
	return form
}

func (f *formModel) update(msg tea.Msg) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *formModel) View() string {
	var b strings.Builder
	b.WriteString("New " + strings.ToLower(strings.TrimSuffix(f.section.Title(), "s")) + "\n\n")
	for i, field := range f.fields {
		b.WriteString(padRight(field.Label, 12))
		b.WriteString("│ [")
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
	b.WriteString("\nenter: save │ tab: next field │ esc: close")
	return overlayBoxStyle.Render(b.String())
}

func padRight(v string, width int) string {
	if n := len([]rune(v)); n < width {
		return v + strings.Repeat(" ", width-n)
	}
	return v
}
