// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/shop-panel/internal/dashboard"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/render"
	"github.com/MKhiriev/shop-panel/internal/service"
	"github.com/MKhiriev/shop-panel/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dispatcher is the part of [dashboard.Dashboard] the main loop drives.
type dispatcher interface {
	Start(ctx context.Context)
	Dispatch(ctx context.Context, cmd dashboard.Command) error
	Deletable(section models.Section) bool
}

var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx           context.Context
	auth          service.ClientAuthService
	dash          dispatcher
	session       models.Session
	toastDuration time.Duration
	logger        *logger.Logger

	active   models.Section
	views    map[models.Section]render.View
	cursor   map[models.Section]int
	forms    map[models.Section]*formModel
	formOpen bool
	confirm  *confirmModel

	toast    *models.Toast
	toastSeq int

	logout     bool
	quitByUser bool
}

func newMainLoopModel(ctx context.Context, auth service.ClientAuthService, dash dispatcher, session models.Session, toastDuration time.Duration, log *logger.Logger) *mainLoopModel {
	forms := make(map[models.Section]*formModel)
	for _, s := range models.Sections() {
		forms[s] = newFormModel(s)
	}

	return &mainLoopModel{
		ctx:           ctx,
		auth:          auth,
		dash:          dash,
		session:       session,
		toastDuration: toastDuration,
		logger:        log,
		active:        models.Sections()[0],
		views:         make(map[models.Section]render.View),
		cursor:        make(map[models.Section]int),
		forms:         forms,
	}
}

func (m *mainLoopModel) Init() tea.Cmd {
	ctx := m.ctx
	dash := m.dash
	return func() tea.Msg {
		dash.Start(ctx)
		return nil
	}
}

func (m *mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case paintMsg:
		m.views[msg.section] = msg.view
		m.clampCursor(msg.section)
		return m, nil
	case toastMsg:
		return m, m.showToast(msg.toast)
	case clearToastMsg:
		if msg.seq == m.toastSeq {
			m.toast = nil
		}
		return m, nil
	case closeFormMsg:
		if msg.section == m.active && m.formOpen {
			m.forms[msg.section].blur()
			m.formOpen = false
		}
		return m, nil
	case resetFormMsg:
		m.forms[msg.section].reset()
		return m, nil
	case confirmRequestMsg:
		if m.confirm != nil {
			msg.reply <- false
			return m, nil
		}
		m.confirm = &confirmModel{prompt: msg.prompt, reply: msg.reply}
		return m, nil
	case logoutDoneMsg:
		if msg.err != nil {
			return m, m.showToast(models.Failure(msg.err.Error()))
		}
		m.logout = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.answerConfirm(false)
			m.quitByUser = true
			return m, tea.Quit
		}
		switch {
		case m.confirm != nil:
			return m.updateConfirm(msg)
		case m.formOpen:
			return m.updateForm(msg)
		default:
			return m.updateDashboard(msg)
		}
	}

	if m.formOpen {
		return m, m.forms[m.active].update(msg)
	}
	return m, nil
}

func (m *mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.answerConfirm(true)
	case key.Matches(msg, keys.no):
		m.answerConfirm(false)
	}
	return m, nil
}

func (m *mainLoopModel) answerConfirm(ok bool) {
	if m.confirm == nil {
		return
	}
	m.confirm.answer(ok)
	m.confirm = nil
}

func (m *mainLoopModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.forms[m.active]

	switch {
	case key.Matches(msg, keys.esc):
		form.blur()
		m.formOpen = false
		return m, nil
	case key.Matches(msg, keys.tab), msg.Type == tea.KeyDown:
		return m, form.moveFocus(1)
	case key.Matches(msg, keys.backtab), msg.Type == tea.KeyUp:
		return m, form.moveFocus(-1)
	case key.Matches(msg, keys.enter):
		return m, m.cmdDispatch(dashboard.Command{
			Action:  dashboard.ActionCreate,
			Section: m.active,
			Form:    form.values(),
		})
	}

	return m, form.update(msg)
}

func (m *mainLoopModel) updateDashboard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		return m, m.cmdLogout()
	case key.Matches(msg, keys.users):
		return m, m.activate(models.SectionUsers)
	case key.Matches(msg, keys.products):
		return m, m.activate(models.SectionProducts)
	case key.Matches(msg, keys.orders):
		return m, m.activate(models.SectionOrders)
	case key.Matches(msg, keys.next):
		return m, m.activate(m.neighbour(1))
	case key.Matches(msg, keys.prev):
		return m, m.activate(m.neighbour(-1))
	case key.Matches(msg, keys.up):
		if m.cursor[m.active] > 0 {
			m.cursor[m.active]--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.cursor[m.active] < len(m.views[m.active].Cards)-1 {
			m.cursor[m.active]++
		}
		return m, nil
	case key.Matches(msg, keys.reload):
		return m, m.cmdDispatch(dashboard.Command{Action: dashboard.ActionLoad, Section: m.active})
	case key.Matches(msg, keys.newItem):
		m.formOpen = true
		return m, m.forms[m.active].open()
	case key.Matches(msg, keys.delete):
		card, ok := m.selectedCard()
		if !ok || !card.Deletable || !m.dash.Deletable(m.active) {
			return m, nil
		}
		return m, m.cmdDispatch(dashboard.Command{Action: dashboard.ActionDelete, Section: m.active, ID: card.ID})
	case key.Matches(msg, keys.copy):
		card, ok := m.selectedCard()
		if !ok {
			return m, nil
		}
		if err := copyToClipboard(cardText(card)); err != nil {
			m.logger.Err(err).Str("func", "mainLoopModel.updateDashboard").Msg("clipboard write failed")
			return m, m.showToast(models.Failure("Could not copy to clipboard"))
		}
		return m, m.showToast(models.Success("Copied " + card.Label))
	}

	return m, nil
}

// activate switches the visible section locally and asks the dashboard to
// reload it.
func (m *mainLoopModel) activate(section models.Section) tea.Cmd {
	if m.formOpen {
		m.forms[m.active].blur()
		m.formOpen = false
	}
	m.active = section
	return m.cmdDispatch(dashboard.Command{Action: dashboard.ActionActivate, Section: section})
}

func (m *mainLoopModel) neighbour(delta int) models.Section {
	sections := models.Sections()
	for i, s := range sections {
		if s == m.active {
			return sections[(i+delta+len(sections))%len(sections)]
		}
	}
	return sections[0]
}

func (m *mainLoopModel) selectedCard() (render.Card, bool) {
	v := m.views[m.active]
	if v.Kind != render.KindPopulated {
		return render.Card{}, false
	}
	idx := m.cursor[m.active]
	if idx < 0 || idx >= len(v.Cards) {
		return render.Card{}, false
	}
	return v.Cards[idx], true
}

func (m *mainLoopModel) clampCursor(section models.Section) {
	n := len(m.views[section].Cards)
	if m.cursor[section] >= n {
		m.cursor[section] = max(n-1, 0)
	}
}

func (m *mainLoopModel) showToast(toast models.Toast) tea.Cmd {
	m.toastSeq++
	m.toast = &toast
	seq := m.toastSeq
	return tea.Tick(m.toastDuration, func(time.Time) tea.Msg { return clearToastMsg{seq: seq} })
}

func (m *mainLoopModel) cmdDispatch(cmd dashboard.Command) tea.Cmd {
	ctx := m.ctx
	dash := m.dash
	log := m.logger

	return func() tea.Msg {
		if err := dash.Dispatch(ctx, cmd); err != nil {
			log.Err(err).Str("func", "mainLoopModel.cmdDispatch").Msg("command rejected")
			return toastMsg{toast: models.Failure(err.Error())}
		}
		return nil
	}
}

func (m *mainLoopModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return logoutDoneMsg{err: auth.Logout(ctx)}
	}
}

func (m *mainLoopModel) View() string {
	var b strings.Builder
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	switch {
	case m.confirm != nil:
		b.WriteString(m.confirm.View())
	case m.formOpen:
		b.WriteString(m.forms[m.active].View())
	default:
		b.WriteString(m.sectionView())
	}

	if m.toast != nil {
		b.WriteString("\n\n")
		if m.toast.Kind == models.ToastError {
			b.WriteString(errorStyle.Render(m.toast.Message))
		} else {
			b.WriteString(successStyle.Render(m.toast.Message))
		}
	}

	title := fmt.Sprintf("SHOP ADMIN │ %s", m.session.DisplayName())
	return renderPage(title, b.String(), m.hotKeys())
}

func (m *mainLoopModel) tabsView() string {
	tabs := make([]string, 0, len(models.Sections()))
	for i, s := range models.Sections() {
		label := fmt.Sprintf("%d %s", i+1, s.Title())
		if s == m.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, "   ")
}

func (m *mainLoopModel) sectionView() string {
	v, ok := m.views[m.active]
	if !ok {
		v = render.Loading()
	}

	switch v.Kind {
	case render.KindPopulated:
		cards := make([]string, 0, len(v.Cards))
		for i, c := range v.Cards {
			style := cardStyle
			if i == m.cursor[m.active] {
				style = selectedStyle
			}
			cards = append(cards, style.Render(cardText(c)))
		}
		return strings.Join(cards, "\n")
	case render.KindEmpty, render.KindError:
		return v.Icon + "  " + v.Message
	default:
		rows := make([]string, render.SkeletonCount)
		for i := range rows {
			rows[i] = skeletonStyle.Render(cardStyle.Render("░░░░░░░░░░░░░░░░\n░░░░░░░░"))
		}
		return strings.Join(rows, "\n")
	}
}

func (m *mainLoopModel) hotKeys() string {
	switch {
	case m.confirm != nil:
		return "y: confirm │ n: cancel"
	case m.formOpen:
		return "enter: save │ tab: next field │ esc: close"
	}

	hints := []string{"1-3/←→: section", "↑↓: select", "r: reload", "n: new", "c: copy"}
	if m.dash.Deletable(m.active) {
		hints = append(hints, "d: delete")
	}
	hints = append(hints, "L: logout", "q: quit")
	return strings.Join(hints, " │ ")
}

func cardText(c render.Card) string {
	var b strings.Builder
	b.WriteString(c.Label)
	if c.Badge != "" {
		b.WriteString("  [" + c.Badge + "]")
	}
	b.WriteString("\n")
	b.WriteString(fitText(c.Title, 40))
	for _, f := range c.Meta {
		b.WriteString("\n")
		b.WriteString(fitText(f.Text(), 40))
	}
	return b.String()
}
