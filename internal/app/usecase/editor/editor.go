package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Innocent-Developer/ecommerce-website-adminside-frontend/internal/app/entity"
	"github.com/shopspring/decimal"
)

type State int

const (
	StateIdle State = iota
	StateEditing
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	default:
		return "idle"
	}
}

type Field string

const (
	FieldProductName  Field = "productName"
	FieldProductPrice Field = "productPrice"
	FieldQuantity     Field = "quantity"
	FieldProductImage Field = "productImage"
	FieldStatus       Field = "status"
)

// Fields lists the editable fields in form order.
var Fields = []Field{FieldProductName, FieldQuantity, FieldProductPrice, FieldStatus, FieldProductImage}

var (
	ErrNotEditing   = errors.New("no order is being edited")
	ErrUnknownField = errors.New("unknown or immutable order field")
	ErrFieldValue   = errors.New("value can't be converted to field type")
)

// Editor holds at most one draft. It belongs to a single dashboard instance.
type Editor struct {
	state   State
	orderID entity.OrderID
	draft   entity.Order
}

func New() *Editor {
	return &Editor{}
}

// BeginEdit starts editing order. An unsaved draft of another order is dropped.
func (e *Editor) BeginEdit(order entity.Order) {
	e.state = StateEditing
	e.orderID = order.ID
	e.draft = order
}

// UpdateField changes one draft field. Values are only converted, not validated:
// an empty name or a negative quantity are accepted here and left to the backend.
func (e *Editor) UpdateField(field Field, value string) error {
	if e.state != StateEditing {
		return ErrNotEditing
	}

	switch field {
	case FieldProductName:
		e.draft.ProductName = value
	case FieldProductImage:
		e.draft.ProductImage = value
	case FieldStatus:
		e.draft.Status = value
	case FieldQuantity:
		quantity, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrFieldValue, field, value)
		}
		e.draft.Quantity = quantity
	case FieldProductPrice:
		price, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrFieldValue, field, value)
		}
		e.draft.ProductPrice = price
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	return nil
}

func (e *Editor) Cancel() {
	e.state = StateIdle
	e.orderID = ""
	e.draft = entity.Order{}
}

// Reset returns to idle only when id is still the order being edited.
func (e *Editor) Reset(id entity.OrderID) bool {
	if e.state != StateEditing || e.orderID != id {
		return false
	}

	e.Cancel()
	return true
}

func (e *Editor) State() State {
	return e.state
}

func (e *Editor) Editing() (entity.OrderID, bool) {
	return e.orderID, e.state == StateEditing
}

func (e *Editor) Draft() (entity.Order, bool) {
	return e.draft, e.state == StateEditing
}

// FieldValue renders a draft field as form text.
func FieldValue(order entity.Order, field Field) string {
	switch field {
	case FieldProductName:
		return order.ProductName
	case FieldProductPrice:
		return order.ProductPrice.String()
	case FieldQuantity:
		return strconv.Itoa(order.Quantity)
	case FieldProductImage:
		return order.ProductImage
	case FieldStatus:
		return order.Status
	}

	return ""
}
