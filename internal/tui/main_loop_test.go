// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/shop-panel/internal/dashboard"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/mock"
	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDispatcher struct {
	mu       sync.Mutex
	started  bool
	commands []dashboard.Command
	err      error
}

func (f *fakeDispatcher) Start(context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
}

func (f *fakeDispatcher) Dispatch(_ context.Context, cmd dashboard.Command) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, cmd)
	return f.err
}

func (f *fakeDispatcher) Deletable(section models.Section) bool {
	return section != models.SectionProducts
}

func newTestMainLoop(t *testing.T) (*mainLoopModel, *fakeDispatcher, *mock.MockClientAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	dash := &fakeDispatcher{}
	session := models.Session{ID: 1, Name: "Asha", Email: "asha@shop.com"}

	m := newMainLoopModel(context.Background(), auth, dash, session, time.Millisecond, logger.Nop())
	return m, dash, auth
}

func usersView() render.View {
	return render.Users([]models.User{
		{ID: 1, Name: "Asha", Email: "asha@shop.com"},
		{ID: 2, Name: "Ravi", Email: "ravi@shop.com", Phone: "555-0101"},
	})
}

func TestMainLoop_InitStartsDashboard(t *testing.T) {
	m, dash, _ := newTestMainLoop(t)

	cmd := m.Init()
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())
	assert.True(t, dash.started)
}

func TestMainLoop_PaintShowsCards(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	m.Update(paintMsg{section: models.SectionUsers, view: usersView()})

	out := m.View()
	assert.Contains(t, out, "Asha")
	assert.Contains(t, out, "ravi@shop.com")
	assert.Contains(t, out, "d: delete")
}

func TestMainLoop_ErrorAndEmptyViews(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	m.Update(paintMsg{section: models.SectionUsers, view: render.FailureFor(models.SectionUsers)})
	assert.Contains(t, m.View(), "Could not load users")

	m.Update(paintMsg{section: models.SectionUsers, view: render.EmptyFor(models.SectionUsers)})
	assert.Contains(t, m.View(), "No users registered yet")
}

func TestMainLoop_ActivateSwitchesSectionAndDispatches(t *testing.T) {
	m, dash, _ := newTestMainLoop(t)

	_, cmd := m.Update(runesMsg("2"))
	require.NotNil(t, cmd)
	assert.Nil(t, cmd())

	assert.Equal(t, models.SectionProducts, m.active)
	assert.Equal(t, []dashboard.Command{{Action: dashboard.ActionActivate, Section: models.SectionProducts}}, dash.commands)
	assert.NotContains(t, m.View(), "d: delete")
}

func TestMainLoop_ArrowKeysCycleSections(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	m.Update(keyMsg(tea.KeyLeft))
	assert.Equal(t, models.SectionOrders, m.active)

	m.Update(keyMsg(tea.KeyRight))
	assert.Equal(t, models.SectionUsers, m.active)
}

func TestMainLoop_ReloadDispatchesLoad(t *testing.T) {
	m, dash, _ := newTestMainLoop(t)

	_, cmd := m.Update(runesMsg("r"))
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []dashboard.Command{{Action: dashboard.ActionLoad, Section: models.SectionUsers}}, dash.commands)
}

func TestMainLoop_DeleteSelectedCard(t *testing.T) {
	m, dash, _ := newTestMainLoop(t)
	m.Update(paintMsg{section: models.SectionUsers, view: usersView()})

	m.Update(keyMsg(tea.KeyDown))
	_, cmd := m.Update(runesMsg("d"))
	require.NotNil(t, cmd)
	cmd()

	assert.Equal(t, []dashboard.Command{{Action: dashboard.ActionDelete, Section: models.SectionUsers, ID: 2}}, dash.commands)
}

func TestMainLoop_DeleteIgnoredForProducts(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.active = models.SectionProducts
	m.Update(paintMsg{section: models.SectionProducts, view: render.Products([]models.Product{{ID: 3, Name: "Lamp"}})})

	_, cmd := m.Update(runesMsg("d"))
	assert.Nil(t, cmd)
}

func TestMainLoop_DeleteIgnoredWithoutCards(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.Update(paintMsg{section: models.SectionUsers, view: render.Loading()})

	_, cmd := m.Update(runesMsg("d"))
	assert.Nil(t, cmd)
}

func TestMainLoop_DispatchErrorBecomesToast(t *testing.T) {
	m, dash, _ := newTestMainLoop(t)
	dash.err = dashboard.ErrUnknownAction

	_, cmd := m.Update(runesMsg("r"))
	require.NotNil(t, cmd)

	msg, ok := cmd().(toastMsg)
	require.True(t, ok)
	assert.Equal(t, models.ToastError, msg.toast.Kind)
}

func TestMainLoop_ConfirmOverlay(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	reply := make(chan bool, 1)

	m.Update(confirmRequestMsg{prompt: "Delete user #2?", reply: reply})
	assert.Contains(t, m.View(), "Delete user #2?")

	m.Update(runesMsg("y"))
	assert.True(t, <-reply)
	assert.Nil(t, m.confirm)
}

func TestMainLoop_ConfirmDeclined(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	reply := make(chan bool, 1)

	m.Update(confirmRequestMsg{prompt: "Delete order #4?", reply: reply})
	m.Update(keyMsg(tea.KeyEsc))

	assert.False(t, <-reply)
}

func TestMainLoop_SecondConfirmIsRefused(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	first := make(chan bool, 1)
	second := make(chan bool, 1)

	m.Update(confirmRequestMsg{prompt: "first", reply: first})
	m.Update(confirmRequestMsg{prompt: "second", reply: second})

	assert.False(t, <-second)
	assert.Equal(t, "first", m.confirm.prompt)
}

func TestMainLoop_ToastExpiresBySequence(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	m.Update(toastMsg{toast: models.Success("User added")})
	m.Update(toastMsg{toast: models.Failure("Failed to add user")})
	assert.Contains(t, m.View(), "Failed to add user")

	m.Update(clearToastMsg{seq: 1})
	require.NotNil(t, m.toast)

	m.Update(clearToastMsg{seq: 2})
	assert.Nil(t, m.toast)
}

func TestMainLoop_CreateFormSubmitResetAndClose(t *testing.T) {
	m, dash, _ := newTestMainLoop(t)

	m.Update(runesMsg("n"))
	require.True(t, m.formOpen)

	typeInto(m, "Jane")
	_, cmd := m.Update(keyMsg(tea.KeyEnter))
	require.NotNil(t, cmd)
	cmd()

	require.Len(t, dash.commands, 1)
	got := dash.commands[0]
	assert.Equal(t, dashboard.ActionCreate, got.Action)
	assert.Equal(t, models.SectionUsers, got.Section)
	assert.Equal(t, "Jane", got.Form[validators.FieldName])
	assert.Equal(t, "", got.Form[validators.FieldEmail])

	m.Update(resetFormMsg{section: models.SectionUsers})
	m.Update(closeFormMsg{section: models.SectionUsers})

	assert.False(t, m.formOpen)
	assert.Equal(t, "", m.forms[models.SectionUsers].values()[validators.FieldName])
}

func TestMainLoop_FormKeepsValuesWhenClosedByUser(t *testing.T) {
	m, _, _ := newTestMainLoop(t)

	m.Update(runesMsg("n"))
	typeInto(m, "Jane")
	m.Update(keyMsg(tea.KeyEsc))

	assert.False(t, m.formOpen)
	assert.Equal(t, "Jane", m.forms[models.SectionUsers].values()[validators.FieldName])
}

func TestMainLoop_CopySelectedCard(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.Update(paintMsg{section: models.SectionUsers, view: usersView()})

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	m.Update(runesMsg("c"))

	assert.Contains(t, copied, "asha@shop.com")
	require.NotNil(t, m.toast)
	assert.Equal(t, "Copied #1", m.toast.Message)
}

func TestMainLoop_CopyFailureToasts(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.Update(paintMsg{section: models.SectionUsers, view: usersView()})

	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { copyToClipboard = orig })

	m.Update(runesMsg("c"))

	require.NotNil(t, m.toast)
	assert.Equal(t, models.ToastError, m.toast.Kind)
}

func TestMainLoop_Logout(t *testing.T) {
	m, _, auth := newTestMainLoop(t)
	auth.EXPECT().Logout(gomock.Any()).Return(nil)

	_, cmd := m.Update(runesMsg("L"))
	require.NotNil(t, cmd)

	_, cmd = m.Update(cmd())
	assert.NotNil(t, cmd)
	assert.True(t, m.logout)
}

func TestMainLoop_QuitAnswersPendingConfirm(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	reply := make(chan bool, 1)
	m.Update(confirmRequestMsg{prompt: "Delete user #1?", reply: reply})

	_, cmd := m.Update(keyMsg(tea.KeyCtrlC))

	assert.NotNil(t, cmd)
	assert.True(t, m.quitByUser)
	assert.False(t, <-reply)
}

func TestMainLoop_CursorClampedOnRepaint(t *testing.T) {
	m, _, _ := newTestMainLoop(t)
	m.Update(paintMsg{section: models.SectionUsers, view: usersView()})
	m.Update(keyMsg(tea.KeyDown))
	require.Equal(t, 1, m.cursor[models.SectionUsers])

	m.Update(paintMsg{section: models.SectionUsers, view: render.Users([]models.User{{ID: 1, Name: "Asha"}})})
	assert.Equal(t, 0, m.cursor[models.SectionUsers])
}
