// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ToastKind selects the toast styling.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
)

// Toast is a transient notification shown after a mutation or a failed load.
type Toast struct {
	Message string
	Kind    ToastKind
}

// Success builds a success toast.
func Success(msg string) Toast { return Toast{Message: msg, Kind: ToastSuccess} }

// Failure builds an error toast.
func Failure(msg string) Toast { return Toast{Message: msg, Kind: ToastError} }
