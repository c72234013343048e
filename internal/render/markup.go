// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/shop-panel/models"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces the four HTML-significant characters. Every interpolated
// string passes through it.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Markup renders the grid content of section for v.
func Markup(section models.Section, v View) string {
	var b strings.Builder

	switch v.Kind {
	case KindLoading:
		for range SkeletonCount {
			b.WriteString(`<div class="skeleton-card"></div>`)
		}
	case KindEmpty, KindError:
		fmt.Fprintf(&b, `<div class="empty"><span class="empty-icon">%s</span>%s</div>`,
			Escape(v.Icon), Escape(v.Message))
	case KindPopulated:
		for _, c := range v.Cards {
			writeCard(&b, section, c)
		}
	}

	return b.String()
}

func writeCard(b *strings.Builder, section models.Section, c Card) {
	b.WriteString(`<div class="card">`)
	fmt.Fprintf(b, `<span class="card-id">%s</span>`, Escape(c.Label))
	fmt.Fprintf(b, `<div class="card-title">%s</div>`, Escape(c.Title))

	b.WriteString(`<div class="card-meta">`)
	for _, f := range c.Meta {
		writeField(b, f)
	}
	b.WriteString(`</div>`)

	b.WriteString(`<div class="card-footer">`)
	if c.Deletable {
		fmt.Fprintf(b, `<button class="btn-danger" data-section="%s" data-id="%d" data-prompt="%s">Delete</button>`,
			Escape(string(section)), c.ID, Escape(DeletePrompt(section, c.ID)))
	}
	if c.Badge != "" {
		fmt.Fprintf(b, `<span class="badge">%s</span>`, Escape(c.Badge))
	}
	b.WriteString(`</div></div>`)
}

func writeField(b *strings.Builder, f Field) {
	if f.Plain {
		fmt.Fprintf(b, `<span>%s</span>`, Escape(f.Value))
		return
	}

	b.WriteString(`<span>`)
	if f.Icon != "" {
		b.WriteString(Escape(f.Icon) + " ")
	}
	if f.Label != "" {
		b.WriteString(Escape(f.Label) + ": ")
	}
	fmt.Fprintf(b, `<strong>%s</strong></span>`, Escape(f.Value))
}

// DeletePrompt is the confirmation question for deleting record id.
func DeletePrompt(section models.Section, id int64) string {
	switch section {
	case models.SectionUsers:
		return fmt.Sprintf("Delete user #%d?", id)
	case models.SectionOrders:
		return fmt.Sprintf("Delete order #%d?", id)
	default:
		return fmt.Sprintf("Delete #%d?", id)
	}
}

// Text renders a field for plain-text surfaces.
func (f Field) Text() string {
	var parts []string
	if f.Icon != "" {
		parts = append(parts, f.Icon)
	}
	if f.Label != "" {
		parts = append(parts, f.Label+":")
	}
	parts = append(parts, f.Value)
	return strings.Join(parts, " ")
}
