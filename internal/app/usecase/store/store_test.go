package store

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t1 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 = t1.Add(time.Hour)
	t3 = t1.Add(2 * time.Hour)
)

func testOrders() entity.Orders {
	return entity.Orders{
		{ID: "1", ProductName: "Mug", ProductPrice: decimal.NewFromInt(5), Quantity: 1, CreatedAt: t1},
		{ID: "2", ProductName: "Cup", ProductPrice: decimal.NewFromInt(3), Quantity: 2, CreatedAt: t2},
		{ID: "3", ProductName: "Coffee CUP lid", ProductPrice: decimal.NewFromInt(1), Quantity: 10, CreatedAt: t3},
	}
}

func ids(orders entity.Orders) []entity.OrderID {
	out := make([]entity.OrderID, 0, len(orders))
	for _, order := range orders {
		out = append(out, order.ID)
	}

	return out
}

func TestView(t *testing.T) {
	tests := []struct {
		name   string
		orders entity.Orders
		query  string

		want []entity.OrderID
	}{
		{
			name:   "mug and cup scenario",
			orders: testOrders()[:2],
			query:  "cup",

			want: []entity.OrderID{"2"},
		},
		{
			name:   "empty query returns newest first",
			orders: testOrders()[:2],
			query:  "",

			want: []entity.OrderID{"2", "1"},
		},
		{
			name:   "case insensitive substring",
			orders: testOrders(),
			query:  "CuP",

			want: []entity.OrderID{"3", "2"},
		},
		{
			name:   "no match",
			orders: testOrders(),
			query:  "plate",

			want: []entity.OrderID{},
		},
		{
			name:   "empty store",
			orders: nil,
			query:  "",

			want: []entity.OrderID{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := New()
			s.Load(test.orders)

			got := slices.Collect(s.View(test.query))
			assert.Equal(t, test.want, ids(got))

			for _, order := range got {
				assert.Contains(t, strings.ToLower(order.ProductName), strings.ToLower(test.query))
			}
		})
	}
}

func TestViewSortedDescending(t *testing.T) {
	s := New()
	orders := testOrders()
	slices.Reverse(orders)
	s.Load(append(orders, entity.Order{ID: "4", ProductName: "Plate", CreatedAt: t1.Add(-time.Hour)}))

	got := slices.Collect(s.View(""))
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.True(t, got[i-1].CreatedAt.After(got[i].CreatedAt), "orders must be newest first")
	}
}

func TestViewIsRestartable(t *testing.T) {
	s := New()
	s.Load(testOrders())

	view := s.View("")
	first := slices.Collect(view)

	s.Remove("3")
	second := slices.Collect(view)

	assert.Len(t, first, 3)
	assert.Equal(t, []entity.OrderID{"2", "1"}, ids(second))
}

func TestViewStopsEarly(t *testing.T) {
	s := New()
	s.Load(testOrders())

	count := 0
	for range s.View("") {
		count++
		break
	}

	assert.Equal(t, 1, count)
}

func TestLoadCopiesInput(t *testing.T) {
	orders := testOrders()

	s := New()
	s.Load(orders)
	orders[0].ProductName = "Changed"

	order, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "Mug", order.ProductName)
}

func TestReplace(t *testing.T) {
	updated := entity.Order{ID: "1", ProductName: "Mug", Quantity: 5, CreatedAt: t1}

	tests := []struct {
		name    string
		id      entity.OrderID
		updated entity.Order

		want entity.Orders
	}{
		{
			name:    "known id",
			id:      "1",
			updated: updated,

			want: entity.Orders{testOrders()[2], testOrders()[1], updated},
		},
		{
			name:    "unknown id leaves store unchanged",
			id:      "42",
			updated: entity.Order{ID: "42", ProductName: "Ghost"},

			want: entity.Orders{testOrders()[2], testOrders()[1], testOrders()[0]},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := New()
			s.Load(testOrders())

			s.Replace(test.id, test.updated)

			assert.Equal(t, test.want, entity.Orders(slices.Collect(s.View(""))))
		})
	}
}

func TestRemove(t *testing.T) {
	s := New()
	s.Load(testOrders())

	s.Remove("2")
	assert.Equal(t, []entity.OrderID{"3", "1"}, ids(slices.Collect(s.View(""))))
	assert.Equal(t, 2, s.Len())

	s.Remove("2")
	assert.Equal(t, []entity.OrderID{"3", "1"}, ids(slices.Collect(s.View(""))))

	s.Remove("unknown")
	assert.Equal(t, 2, s.Len())
}
