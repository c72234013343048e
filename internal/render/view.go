// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package render maps resource collections to surface-neutral views and
// those views to HTML markup.
//
// A [View] is a tagged variant: Loading, Empty, Error or Populated. Every
// builder here is pure; nothing is painted until a surface receives the view.
package render

// Kind tags the variant held by a View.
type Kind uint8

const (
	KindLoading Kind = iota + 1
	KindEmpty
	KindError
	KindPopulated
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindEmpty:
		return "empty"
	case KindError:
		return "error"
	case KindPopulated:
		return "populated"
	default:
		return "unknown"
	}
}

// SkeletonCount is the number of placeholder cards shown while loading.
const SkeletonCount = 3

const errorIcon = "⚠️"

// View is what a section currently displays. Icon and Message are set for
// Empty and Error, Cards only for Populated.
type View struct {
	Kind    Kind
	Icon    string
	Message string
	Cards   []Card
}

// Card is one rendered record.
type Card struct {
	ID    int64
	Label string
	Title string
	Meta  []Field

	// Deletable cards expose a delete action keyed by ID.
	Deletable bool
	Badge     string
}

// Field is a line of card metadata. Plain fields are shown without an icon
// or emphasis.
type Field struct {
	Icon  string
	Label string
	Value string
	Plain bool
}

// Loading is the placeholder shown from the start of a fetch until it
// settles.
func Loading() View {
	return View{Kind: KindLoading}
}

// Empty is shown for an absent or zero-length collection.
func Empty(icon, message string) View {
	return View{Kind: KindEmpty, Icon: icon, Message: message}
}

// Failure is shown when a fetch failed. message is a fixed user-facing text;
// callers never pass raw error details.
func Failure(message string) View {
	return View{Kind: KindError, Icon: errorIcon, Message: message}
}

// Populated wraps at least one card.
func Populated(cards []Card) View {
	return View{Kind: KindPopulated, Cards: cards}
}

// Settled reports whether the view is the outcome of a finished fetch.
func (v View) Settled() bool {
	return v.Kind != KindLoading && v.Kind != 0
}
