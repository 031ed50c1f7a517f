package tui

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/dashboard"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/editor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// OrderDashboard is the part of the dashboard the view drives.
type OrderDashboard interface {
	Mount(ctx context.Context) error
	Loading() bool
	User() entity.UserSummary
	Count() int
	Orders(query string) iter.Seq[entity.Order]
	BeginEdit(id entity.OrderID) error
	UpdateField(field editor.Field, value string) error
	Cancel()
	Commit(ctx context.Context) (entity.Order, error)
	Remove(ctx context.Context, id entity.OrderID) error
	Editing() (entity.OrderID, bool)
	Busy(op dashboard.Operation, id entity.OrderID) bool
	Close()
}

type focusRegion int

const (
	focusList focusRegion = iota
	focusSearch
	focusForm
)

type mountedMsg struct {
	err error
}

type committedMsg struct {
	id    entity.OrderID
	order entity.Order
	err   error
}

type removedMsg struct {
	id  entity.OrderID
	err error
}

// noticeExpiredMsg clears the notice it was scheduled for. A newer notice
// bumps the sequence and outlives older timers.
type noticeExpiredMsg struct {
	seq int
}

type notice struct {
	text  string
	isErr bool
}

type Model struct {
	ctx       context.Context
	dashboard OrderDashboard
	keys      keyMap

	spinner spinner.Model
	search  textinput.Model
	inputs  []textinput.Model
	invalid map[editor.Field]bool

	focus  focusRegion
	field  int
	cursor int
	rows   entity.Orders

	notice        notice
	noticeSeq     int
	noticeTimeout time.Duration

	width    int
	quitting bool
}

func New(ctx context.Context, d OrderDashboard, noticeTimeout time.Duration) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = titleStyle

	search := textinput.New()
	search.Prompt = "Search: "
	search.Placeholder = "product name"

	inputs := make([]textinput.Model, len(editor.Fields))
	for i, field := range editor.Fields {
		input := textinput.New()
		input.Prompt = labelStyle.Render(fieldLabel(field))
		inputs[i] = input
	}

	return Model{
		ctx:           ctx,
		dashboard:     d,
		keys:          defaultKeyMap(),
		spinner:       s,
		search:        search,
		inputs:        inputs,
		invalid:       make(map[editor.Field]bool),
		noticeTimeout: noticeTimeout,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.mount())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.search.Width = max(msg.Width-len(m.search.Prompt)-2, 10)
		return m, nil

	case spinner.TickMsg:
		if !m.dashboard.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case mountedMsg:
		return m.handleMounted(msg)

	case committedMsg:
		return m.handleCommitted(msg)

	case removedMsg:
		return m.handleRemoved(msg)

	case noticeExpiredMsg:
		if msg.seq == m.noticeSeq {
			m.notice = notice{}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleMounted(msg mountedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, dashboard.ErrClosed) {
			return m, nil
		}

		zap.L().Error("error while loading dashboard", zap.Error(msg.err))
		cmd := m.setNotice(fmt.Sprintf("Failed to load orders: %v", msg.err), true)
		return m, cmd
	}

	m.refresh()
	return m, nil
}

func (m Model) handleCommitted(msg committedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, dashboard.ErrClosed) || errors.Is(msg.err, dashboard.ErrBusy) {
		return m, nil
	}
	if msg.err != nil {
		cmd := m.setNotice(fmt.Sprintf("Failed to update order: %v", msg.err), true)
		return m, cmd
	}

	m.refresh()
	m.syncFocus()

	cmd := m.setNotice("Order updated successfully", false)
	return m, cmd
}

func (m Model) handleRemoved(msg removedMsg) (tea.Model, tea.Cmd) {
	if errors.Is(msg.err, dashboard.ErrClosed) || errors.Is(msg.err, dashboard.ErrBusy) {
		return m, nil
	}
	if msg.err != nil {
		cmd := m.setNotice(fmt.Sprintf("Failed to delete order: %v", msg.err), true)
		return m, cmd
	}

	m.refresh()
	m.syncFocus()

	cmd := m.setNotice("Order deleted successfully", false)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}

	if m.dashboard.Loading() {
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		return m, nil
	}

	switch m.focus {
	case focusSearch:
		return m.updateSearch(msg)
	case focusForm:
		return m.updateForm(msg)
	}

	return m.updateList(msg)
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Edit):
		order, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m.beginEdit(order)

	case key.Matches(msg, m.keys.Remove):
		order, ok := m.selected()
		if !ok || m.dashboard.Busy(dashboard.OperationRemove, order.ID) {
			return m, nil
		}
		return m, m.remove(order.ID)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Save):
		m.search.Blur()
		m.focus = focusList
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		m.search.Blur()
		m.search.SetValue("")
		m.focus = focusList
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refresh()

	return m, cmd
}

func (m Model) beginEdit(order entity.Order) (tea.Model, tea.Cmd) {
	err := m.dashboard.BeginEdit(order.ID)
	if err != nil {
		cmd := m.setNotice(fmt.Sprintf("Can't edit order: %v", err), true)
		return m, cmd
	}

	for i, field := range editor.Fields {
		m.inputs[i].SetValue(editor.FieldValue(order, field))
	}
	clear(m.invalid)

	m.focus = focusForm
	m.field = 0

	cmd := m.focusField()
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.dashboard.Cancel()
		m.blurFields()
		m.focus = focusList
		return m, nil

	case key.Matches(msg, m.keys.Save):
		id, editing := m.dashboard.Editing()
		if !editing {
			m.blurFields()
			m.focus = focusList
			return m, nil
		}
		if m.dashboard.Busy(dashboard.OperationCommit, id) {
			return m, nil
		}
		for _, field := range editor.Fields {
			if m.invalid[field] {
				cmd := m.setNotice(fmt.Sprintf("Invalid value for %s", fieldLabel(field)), true)
				return m, cmd
			}
		}
		return m, m.commit(id)

	case key.Matches(msg, m.keys.NextField):
		m.field = (m.field + 1) % len(m.inputs)
		cmd := m.focusField()
		return m, cmd

	case key.Matches(msg, m.keys.PrevField):
		m.field = (m.field + len(m.inputs) - 1) % len(m.inputs)
		cmd := m.focusField()
		return m, cmd
	}

	var cmd tea.Cmd
	m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)

	field := editor.Fields[m.field]
	err := m.dashboard.UpdateField(field, m.inputs[m.field].Value())
	m.invalid[field] = errors.Is(err, editor.ErrFieldValue)
	if err != nil && !errors.Is(err, editor.ErrFieldValue) {
		zap.L().Error("error while updating draft", zap.String("field", string(field)), zap.Error(err))
	}

	return m, cmd
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case focusSearch:
		m.search, cmd = m.search.Update(msg)
	case focusForm:
		m.inputs[m.field], cmd = m.inputs[m.field].Update(msg)
	}

	return m, cmd
}

func (m Model) mount() tea.Cmd {
	ctx, d := m.ctx, m.dashboard

	return func() tea.Msg {
		return mountedMsg{err: d.Mount(ctx)}
	}
}

func (m Model) commit(id entity.OrderID) tea.Cmd {
	ctx, d := m.ctx, m.dashboard

	return func() tea.Msg {
		order, err := d.Commit(ctx)
		return committedMsg{id: id, order: order, err: err}
	}
}

func (m Model) remove(id entity.OrderID) tea.Cmd {
	ctx, d := m.ctx, m.dashboard

	return func() tea.Msg {
		return removedMsg{id: id, err: d.Remove(ctx, id)}
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.dashboard.Close()

	return m, tea.Quit
}

func (m *Model) setNotice(text string, isErr bool) tea.Cmd {
	m.noticeSeq++
	m.notice = notice{text: text, isErr: isErr}

	if m.noticeTimeout <= 0 {
		return nil
	}

	seq := m.noticeSeq
	return tea.Tick(m.noticeTimeout, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}

func (m *Model) refresh() {
	m.rows = slices.Collect(m.dashboard.Orders(m.search.Value()))
	m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
}

// syncFocus leaves the form once the dashboard has stopped editing.
func (m *Model) syncFocus() {
	if _, editing := m.dashboard.Editing(); !editing && m.focus == focusForm {
		m.blurFields()
		m.focus = focusList
	}
}

func (m *Model) focusField() tea.Cmd {
	m.blurFields()
	return m.inputs[m.field].Focus()
}

func (m *Model) blurFields() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m Model) selected() (entity.Order, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return entity.Order{}, false
	}

	return m.rows[m.cursor], true
}

func fieldLabel(field editor.Field) string {
	switch field {
	case editor.FieldProductName:
		return "Product name"
	case editor.FieldProductPrice:
		return "Price"
	case editor.FieldQuantity:
		return "Quantity"
	case editor.FieldProductImage:
		return "Image"
	case editor.FieldStatus:
		return "Status"
	}

	return string(field)
}
