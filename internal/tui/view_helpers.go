// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
)

const (
	panelWidth = 56
	indent     = "  "
)

// renderPage frames body between a title and a footer of key hints.
// An empty body renders as a single dash so the frame never collapses.
func renderPage(title, body, hints string) string {
	rule := indent + strings.Repeat("─", panelWidth) + "\n"

	var b strings.Builder
	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(rule + "\n")

	if strings.TrimSpace(body) == "" {
		body = "-"
	}
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(indent + line + "\n")
	}

	b.WriteString("\n" + rule)
	if hints = strings.TrimSpace(hints); hints != "" {
		b.WriteString(indent + helpStyle.Render(hints) + "\n")
	}
	b.WriteString(helpStyle.Render(indent + "ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// fitText truncates s to width runes, marking the cut with an ellipsis.
func fitText(s string, width int) string {
	runes := []rune(s)
	switch {
	case width <= 0 || len(runes) <= width:
		return s
	case width <= 3:
		return string(runes[:width])
	default:
		return string(runes[:width-3]) + "..."
	}
}
