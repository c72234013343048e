// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Section identifies one of the dashboard resource sections.
type Section string

const (
	SectionUsers    Section = "users"
	SectionProducts Section = "products"
	SectionOrders   Section = "orders"
)

// Sections lists every section in navigation order. The first one is active
// on startup.
func Sections() []Section {
	return []Section{SectionUsers, SectionProducts, SectionOrders}
}

// ParseSection converts a raw name (e.g. a URL segment) into a Section.
func ParseSection(raw string) (Section, error) {
	for _, s := range Sections() {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown section %q", raw)
}

// Title is the human readable section name.
func (s Section) Title() string {
	switch s {
	case SectionUsers:
		return "Users"
	case SectionProducts:
		return "Products"
	case SectionOrders:
		return "Orders"
	default:
		return string(s)
	}
}

// Form holds raw input values of a create form keyed by field name.
type Form map[string]string
