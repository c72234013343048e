// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/models"
)

type loginResultMsg struct {
	session models.Session
	err     error
}

type loginRedirectMsg struct{}

type paintMsg struct {
	section models.Section
	view    render.View
}

type toastMsg struct {
	toast models.Toast
}

type clearToastMsg struct {
	seq int
}

type closeFormMsg struct {
	section models.Section
}

type resetFormMsg struct {
	section models.Section
}

type confirmRequestMsg struct {
	prompt string
	reply  chan<- bool
}

type logoutDoneMsg struct {
	err error
}
