// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type confirmModel struct {
	prompt string
	reply  chan<- bool
}

// answer replies once; the channel is buffered so Update never blocks.
func (m *confirmModel) answer(ok bool) {
	if m.reply == nil {
		return
	}
	m.reply <- ok
	m.reply = nil
}

func (m confirmModel) View() string {
	content := m.prompt + "\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
