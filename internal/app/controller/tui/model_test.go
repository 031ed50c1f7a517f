package tui

import (
	"context"
	"testing"
	"time"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	err_gateway "github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/api/errors"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/gateway/mock"
	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/usecase/dashboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUserID = entity.UserID("6650a1f2c3")

var (
	t1 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 = t1.Add(time.Hour)
)

func testOrders() entity.Orders {
	return entity.Orders{
		{ID: "1", ProductName: "Mug", ProductPrice: decimal.NewFromInt(5), Quantity: 1, Status: "pending", CreatedAt: t1},
		{ID: "2", ProductName: "Cup", ProductPrice: decimal.NewFromInt(3), Quantity: 2, Status: "pending", CreatedAt: t2},
	}
}

func press(keys ...string) []tea.KeyMsg {
	msgs := make([]tea.KeyMsg, 0, len(keys))
	for _, k := range keys {
		switch k {
		case "enter":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEnter})
		case "esc":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyEsc})
		case "tab":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyTab})
		case "down":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyDown})
		case "backspace":
			msgs = append(msgs, tea.KeyMsg{Type: tea.KeyBackspace})
		default:
			for _, r := range k {
				msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
			}
		}
	}

	return msgs
}

// send feeds key presses and returns the model and the command of the last one.
func send(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()

	var cmd tea.Cmd
	for _, msg := range press(keys...) {
		var updated tea.Model
		updated, cmd = m.Update(msg)

		var ok bool
		m, ok = updated.(Model)
		require.True(t, ok)
	}

	return m, cmd
}

func deliver(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	updated, _ := m.Update(msg)
	model, ok := updated.(Model)
	require.True(t, ok)

	return model
}

func mountedModel(t *testing.T, gateway *mock.MockGateway, userOrders entity.UserOrders) (Model, *dashboard.Dashboard) {
	t.Helper()

	gateway.EXPECT().FetchUserOrders(gomock.Any(), testUserID).Return(userOrders, nil)

	d := dashboard.New(gateway, testUserID)
	m := New(context.Background(), d, 0)

	return deliver(t, m, m.mount()()), d
}

func TestLoading(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	gateway.EXPECT().FetchUserOrders(gomock.Any(), testUserID).Return(entity.UserOrders{}, err_gateway.ErrNetwork)

	d := dashboard.New(gateway, testUserID)
	m := New(context.Background(), d, 0)
	assert.Contains(t, m.View(), "Loading orders")

	m = deliver(t, m, m.mount()())

	view := m.View()
	assert.Contains(t, view, "Loading orders")
	assert.Contains(t, view, "Failed to load orders")

	m, cmd := send(t, m, "e", "x")
	assert.Nil(t, cmd)
	assert.Equal(t, focusList, m.focus)
}

func TestHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		userOrders entity.UserOrders

		want []string
	}{
		{
			name: "user with orders",
			userOrders: entity.UserOrders{
				User:   entity.UserSummary{ID: testUserID, Username: "admin", Avatar: "https://cdn.shop.io/a.png"},
				Orders: testOrders(),
			},

			want: []string{"admin", "https://cdn.shop.io/a.png", "Total Orders: 2", "Mug", "Cup"},
		},
		{
			name: "user without profile and orders",
			userOrders: entity.UserOrders{
				User: entity.UserSummary{ID: testUserID},
			},

			want: []string{entity.DefaultUsername, entity.DefaultAvatar, "Total Orders: N/A", "No orders found."},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, _ := mountedModel(t, mock.NewMockGateway(ctrl), test.userOrders)

			view := m.View()
			for _, want := range test.want {
				assert.Contains(t, view, want)
			}
		})
	}
}

func TestRowsNewestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := mountedModel(t, mock.NewMockGateway(ctrl), entity.UserOrders{Orders: testOrders()})

	require.Len(t, m.rows, 2)
	assert.Equal(t, entity.OrderID("2"), m.rows[0].ID)
	assert.Equal(t, entity.OrderID("1"), m.rows[1].ID)
}

func TestSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := mountedModel(t, mock.NewMockGateway(ctrl), entity.UserOrders{Orders: testOrders()})

	m, _ = send(t, m, "/", "MU")
	require.Len(t, m.rows, 1)
	assert.Equal(t, entity.OrderID("1"), m.rows[0].ID)
	assert.Equal(t, focusSearch, m.focus)

	m, _ = send(t, m, "enter")
	assert.Equal(t, focusList, m.focus)
	assert.Len(t, m.rows, 1)

	m, _ = send(t, m, "/", "esc")
	assert.Len(t, m.rows, 2)
}

func TestEditCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	m, d := mountedModel(t, gateway, entity.UserOrders{Orders: testOrders()})

	m, _ = send(t, m, "down", "e")
	require.Equal(t, focusForm, m.focus)

	id, editing := d.Editing()
	require.True(t, editing)
	assert.Equal(t, entity.OrderID("1"), id)

	gateway.EXPECT().
		UpdateOrder(gomock.Any(), entity.OrderID("1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ entity.OrderID, patch entity.OrderPatch) (entity.OrderPatch, error) {
			require.NotNil(t, patch.Quantity)
			assert.Equal(t, 5, *patch.Quantity)
			return entity.OrderPatch{}, nil
		})

	m, _ = send(t, m, "tab", "backspace", "5")
	m, cmd := send(t, m, "enter")
	require.NotNil(t, cmd)

	m = deliver(t, m, cmd())

	stored, ok := d.Order("1")
	require.True(t, ok)
	assert.Equal(t, 5, stored.Quantity)
	assert.Equal(t, focusList, m.focus)
	assert.Contains(t, m.View(), "Order updated successfully")

	_, editing = d.Editing()
	assert.False(t, editing)
}

func TestEditCommitFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	m, d := mountedModel(t, gateway, entity.UserOrders{Orders: testOrders()})

	gateway.EXPECT().
		UpdateOrder(gomock.Any(), entity.OrderID("2"), gomock.Any()).
		Return(entity.OrderPatch{}, &err_gateway.StatusError{StatusCode: 500})

	m, _ = send(t, m, "e", "tab", "backspace", "9")
	m, cmd := send(t, m, "enter")
	require.NotNil(t, cmd)

	m = deliver(t, m, cmd())

	assert.Equal(t, focusForm, m.focus)
	assert.Contains(t, m.View(), "Failed to update order")

	stored, _ := d.Order("2")
	assert.Equal(t, 2, stored.Quantity)

	draft, editing := d.Draft()
	require.True(t, editing)
	assert.Equal(t, 9, draft.Quantity)
}

func TestInvalidFieldBlocksSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gateway := mock.NewMockGateway(ctrl)
	gateway.EXPECT().UpdateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	m, _ := mountedModel(t, gateway, entity.UserOrders{Orders: testOrders()})

	m, _ = send(t, m, "e", "tab", "backspace", "abc")
	assert.True(t, m.invalid["quantity"])

	m, cmd := send(t, m, "enter")
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Invalid value for Quantity")
}

func TestCancelEdit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, d := mountedModel(t, mock.NewMockGateway(ctrl), entity.UserOrders{Orders: testOrders()})

	m, _ = send(t, m, "e", "X", "esc")

	assert.Equal(t, focusList, m.focus)
	_, editing := d.Editing()
	assert.False(t, editing)

	stored, _ := d.Order("2")
	assert.Equal(t, "Cup", stored.ProductName)
}

func TestRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		deleteErr error

		wantRows   int
		wantNotice string
	}{
		{
			name: "removed",

			wantRows:   1,
			wantNotice: "Order deleted successfully",
		},
		{
			name:      "backend failure",
			deleteErr: &err_gateway.StatusError{StatusCode: 500},

			wantRows:   2,
			wantNotice: "Failed to delete order",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gateway := mock.NewMockGateway(ctrl)
			m, _ := mountedModel(t, gateway, entity.UserOrders{Orders: testOrders()})

			gateway.EXPECT().DeleteOrder(gomock.Any(), entity.OrderID("2")).Return(test.deleteErr)

			m, cmd := send(t, m, "x")
			require.NotNil(t, cmd)

			m = deliver(t, m, cmd())

			assert.Len(t, m.rows, test.wantRows)
			assert.Contains(t, m.View(), test.wantNotice)
		})
	}
}

func TestQuitClosesDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, d := mountedModel(t, mock.NewMockGateway(ctrl), entity.UserOrders{Orders: testOrders()})

	m, cmd := send(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())

	assert.ErrorIs(t, d.BeginEdit("1"), dashboard.ErrClosed)

	m = deliver(t, m, committedMsg{id: "1", err: dashboard.ErrClosed})
	assert.Empty(t, m.notice.text)
}

func TestNoticeExpires(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := mountedModel(t, mock.NewMockGateway(ctrl), entity.UserOrders{Orders: testOrders()})

	m.setNotice("first", false)
	stale := m.noticeSeq
	m.setNotice("second", true)

	m = deliver(t, m, noticeExpiredMsg{seq: stale})
	assert.Equal(t, "second", m.notice.text)

	m = deliver(t, m, noticeExpiredMsg{seq: m.noticeSeq})
	assert.Empty(t, m.notice.text)
}
